// Copyright (c) 2026 ToeiRei
// Addressbook - prefix-searchable contact book
// This source code is licensed under the MIT license found in the LICENSE file.

// Command addressbook keeps persons and groups and finds them by prefix.
//
// Usage:
//
//	addressbook                 open the interactive search
//	addressbook search <query>  print matching persons
//	addressbook --help          list all commands
package main

import (
	"os"

	"github.com/toeirei/addressbook/ui/cli"
)

func main() {
	// Cobra has already printed the error.
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
