// Copyright (c) 2026 ToeiRei
// Addressbook - prefix-searchable contact book
// This source code is licensed under the MIT license found in the LICENSE file.

package model

import (
	"fmt"
	"regexp"
)

var (
	phonePattern = regexp.MustCompile(`^(?:\+|00)[\d\s\-\(\)]{10,}$`)
	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9_.+-]+@[a-zA-Z0-9-]+\.[a-zA-Z0-9\-.]+$`)
)

// ValidationError reports a field value rejected by its pattern.
type ValidationError struct {
	Field string
	Value string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s is not valid", e.Field, e.Value)
}

// ValidatePhone accepts international numbers starting with "+" or "00"
// followed by at least ten digits, spaces, dashes or parentheses.
func ValidatePhone(phone string) error {
	if !phonePattern.MatchString(phone) {
		return &ValidationError{Field: "Phone", Value: phone}
	}
	return nil
}

// ValidateEmail performs a loose syntactic email check.
func ValidateEmail(email string) error {
	if !emailPattern.MatchString(email) {
		return &ValidationError{Field: "Email", Value: email}
	}
	return nil
}
