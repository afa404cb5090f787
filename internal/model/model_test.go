// Copyright (c) 2026 ToeiRei
// Addressbook - prefix-searchable contact book
// This source code is licensed under the MIT license found in the LICENSE file.

package model

import (
	"errors"
	"testing"
)

func newTestPerson(t *testing.T) *Person {
	t.Helper()
	p, err := NewPerson("Test", "Person", "Test address", "+18005555555", "test@example.com")
	if err != nil {
		t.Fatalf("NewPerson failed: %v", err)
	}
	return p
}

func TestPersonString(t *testing.T) {
	p := newTestPerson(t)
	if got := p.FullName(); got != "Test Person" {
		t.Errorf("unexpected FullName(): %q", got)
	}
	want := "Test Person (+18005555555) Test address test@example.com"
	if got := p.String(); got != want {
		t.Errorf("unexpected Person.String(): got %q want %q", got, want)
	}
	if got := p.Key(); got != "testperson" {
		t.Errorf("unexpected Key(): %q", got)
	}
}

func TestNewPersonInvalidPhone(t *testing.T) {
	_, err := NewPerson("Test", "Person", "Test address", "+180055555", "test@example.com")
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %T %v", err, err)
	}
	if err.Error() != "Phone +180055555 is not valid" {
		t.Errorf("unexpected message: %q", err.Error())
	}
}

func TestNewPersonInvalidEmail(t *testing.T) {
	_, err := NewPerson("Test", "Person", "Test address", "+18005555555", "testexample.com")
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %T %v", err, err)
	}
	if err.Error() != "Email testexample.com is not valid" {
		t.Errorf("unexpected message: %q", err.Error())
	}
}

func TestValidatePhone(t *testing.T) {
	valid := []string{"+18005555555", "0049 (30) 123-4567", "+44 20 7946 0958"}
	for _, p := range valid {
		if err := ValidatePhone(p); err != nil {
			t.Errorf("expected %q to be valid: %v", p, err)
		}
	}
	invalid := []string{"", "18005555555", "+1800", "+1800555555x", "0-800-555-5555"}
	for _, p := range invalid {
		if err := ValidatePhone(p); err == nil {
			t.Errorf("expected %q to be rejected", p)
		}
	}
}

func TestValidateEmail(t *testing.T) {
	valid := []string{"test@example.com", "a.b+c@mail-host.co.uk", "x_y@d.io"}
	for _, e := range valid {
		if err := ValidateEmail(e); err != nil {
			t.Errorf("expected %q to be valid: %v", e, err)
		}
	}
	invalid := []string{"", "testexample.com", "a@b", "a b@example.com", "@example.com"}
	for _, e := range invalid {
		if err := ValidateEmail(e); err == nil {
			t.Errorf("expected %q to be rejected", e)
		}
	}
}

func TestPersonAddPhoneKeepsListOnError(t *testing.T) {
	p := newTestPerson(t)
	if err := p.AddPhone("nope"); err == nil {
		t.Fatalf("expected error for invalid phone")
	}
	if len(p.Phones) != 1 {
		t.Errorf("invalid phone must not be stored, got %v", p.Phones)
	}
	if err := p.AddEmail("second@example.org"); err != nil {
		t.Fatalf("AddEmail failed: %v", err)
	}
	if len(p.Emails) != 2 {
		t.Errorf("expected two emails, got %v", p.Emails)
	}
}

func TestGroupMembership(t *testing.T) {
	p := newTestPerson(t)
	g := NewGroup("Test group")

	if p.IsMemberOf("Test group") {
		t.Fatalf("fresh person must not be a member")
	}
	g.AddPerson(p)
	g.AddPerson(p)
	if !p.IsMemberOf("Test group") {
		t.Fatalf("expected membership after AddPerson")
	}
	if n := len(g.Members()); n != 1 {
		t.Fatalf("expected one member, got %d", n)
	}

	g.RemovePerson(p)
	if p.IsMemberOf("Test group") {
		t.Fatalf("expected membership to be gone after RemovePerson")
	}
	if n := len(g.Members()); n != 0 {
		t.Fatalf("expected no members, got %d", n)
	}
}

func TestGroupIsMemberOf(t *testing.T) {
	p := newTestPerson(t)
	g := NewGroup("friends")
	if g.IsMemberOf("Test") {
		t.Fatalf("empty group must not match")
	}
	g.AddPerson(p)

	for _, name := range []string{"Test", "Person", "Test Person", "test@example.com"} {
		if !g.IsMemberOf(name) {
			t.Errorf("expected %q to match a member", name)
		}
	}
	for _, name := range []string{"test", "Nobody", "other@example.com"} {
		if g.IsMemberOf(name) {
			t.Errorf("expected %q not to match", name)
		}
	}
}

func TestGroupRecord(t *testing.T) {
	g := NewGroup("friends")
	g.AddPerson(newTestPerson(t))
	rec := g.Record()
	if rec.Name != "friends" || len(rec.Members) != 1 || rec.Members[0] != "testperson" {
		t.Errorf("unexpected record: %+v", rec)
	}
}
