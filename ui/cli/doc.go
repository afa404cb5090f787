// Copyright (c) 2026 ToeiRei
// Addressbook - prefix-searchable contact book
// This source code is licensed under the MIT license found in the LICENSE file.

// Package cli implements the addressbook command line with Cobra. Commands
// stay thin: they open the book, call one operation and print the outcome
// through i18n.
package cli
