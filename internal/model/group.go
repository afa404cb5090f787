// Copyright (c) 2026 ToeiRei
// Addressbook - prefix-searchable contact book
// This source code is licensed under the MIT license found in the LICENSE file.

package model

import (
	"slices"
)

// Group is a named collection of persons.
type Group struct {
	Name    string
	members []*Person
}

// GroupRecord is the flat form of a group used for storage and backups.
// Members holds composite person keys.
type GroupRecord struct {
	Name    string   `json:"name"`
	Members []string `json:"members"`
}

// NewGroup returns an empty group.
func NewGroup(name string) *Group {
	return &Group{Name: name}
}

// AddPerson adds p to the group and the group to p. Adding twice is a no-op.
func (g *Group) AddPerson(p *Person) {
	if !slices.Contains(g.members, p) {
		g.members = append(g.members, p)
	}
	p.AddGroup(g.Name)
}

// RemovePerson removes p from the group and the group from p.
func (g *Group) RemovePerson(p *Person) {
	g.members = slices.DeleteFunc(g.members, func(m *Person) bool { return m == p })
	p.RemoveGroup(g.Name)
}

// IsMemberOf reports whether some member is called name, by first, last or
// full name, or uses name as one of their email addresses.
func (g *Group) IsMemberOf(name string) bool {
	return slices.ContainsFunc(g.members, func(p *Person) bool {
		return p.FirstName == name ||
			p.LastName == name ||
			p.FullName() == name ||
			slices.Contains(p.Emails, name)
	})
}

// Members returns the group's members in insertion order.
func (g *Group) Members() []*Person {
	return slices.Clone(g.members)
}

// Record flattens g for storage.
func (g *Group) Record() GroupRecord {
	rec := GroupRecord{Name: g.Name, Members: make([]string, 0, len(g.members))}
	for _, p := range g.members {
		rec.Members = append(rec.Members, p.Key())
	}
	return rec
}
