// Copyright (c) 2026 ToeiRei
// Addressbook - prefix-searchable contact book
// This source code is licensed under the MIT license found in the LICENSE file.

// package model defines the records kept in the address book.
package model // import "github.com/toeirei/addressbook/internal/model"

import (
	"fmt"
	"slices"
	"strings"
)

// Person is a single contact. Construct it with NewPerson so the first phone
// and email are validated.
type Person struct {
	FirstName string   `json:"first_name"`
	LastName  string   `json:"last_name"`
	Addresses []string `json:"addresses"`
	Phones    []string `json:"phones"`
	Emails    []string `json:"emails"`
	// Groups holds the names of the groups this person belongs to.
	Groups []string `json:"groups,omitempty"`
}

// NewPerson creates a person with one address, phone and email.
func NewPerson(firstName, lastName, address, phone, email string) (*Person, error) {
	p := &Person{FirstName: firstName, LastName: lastName}
	p.AddAddress(address)
	if err := p.AddPhone(phone); err != nil {
		return nil, err
	}
	if err := p.AddEmail(email); err != nil {
		return nil, err
	}
	return p, nil
}

// Key returns the composite key identifying p in the book: first and last
// name concatenated and lower-cased.
func (p *Person) Key() string {
	return strings.ToLower(p.FirstName + p.LastName)
}

// FullName returns "<first> <last>".
func (p *Person) FullName() string {
	return fmt.Sprintf("%s %s", p.FirstName, p.LastName)
}

// AddAddress appends an address. Addresses are free text.
func (p *Person) AddAddress(address string) {
	p.Addresses = append(p.Addresses, address)
}

// AddPhone validates and appends a phone number.
func (p *Person) AddPhone(phone string) error {
	if err := ValidatePhone(phone); err != nil {
		return err
	}
	p.Phones = append(p.Phones, phone)
	return nil
}

// AddEmail validates and appends an email address.
func (p *Person) AddEmail(email string) error {
	if err := ValidateEmail(email); err != nil {
		return err
	}
	p.Emails = append(p.Emails, email)
	return nil
}

// IsMemberOf reports whether p belongs to the named group.
func (p *Person) IsMemberOf(groupName string) bool {
	return slices.Contains(p.Groups, groupName)
}

// AddGroup records membership in groupName. Use Group.AddPerson to keep both
// sides in sync.
func (p *Person) AddGroup(groupName string) {
	if !p.IsMemberOf(groupName) {
		p.Groups = append(p.Groups, groupName)
	}
}

// RemoveGroup drops membership in groupName.
func (p *Person) RemoveGroup(groupName string) {
	p.Groups = slices.DeleteFunc(p.Groups, func(g string) bool { return g == groupName })
}

// String returns "<full name> (<phone>) <address> <email>" using the first
// entry of each list.
func (p *Person) String() string {
	return fmt.Sprintf("%s (%s) %s %s", p.FullName(), first(p.Phones), first(p.Addresses), first(p.Emails))
}

func first(s []string) string {
	if len(s) == 0 {
		return ""
	}
	return s[0]
}
