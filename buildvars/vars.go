// Copyright (c) 2026 ToeiRei
// Addressbook - prefix-searchable contact book
// This source code is licensed under the MIT license found in the LICENSE file.

// Package buildvars contains variables injected at build time.
package buildvars

import "runtime/debug"

// modulePath is used to find our own version when built as a dependency.
const modulePath = "github.com/toeirei/addressbook"

// Set at link time, e.g.
// -ldflags "-X github.com/toeirei/addressbook/buildvars.Version=v1.2.3".
var (
	Version = "dev"
	Commit  = "dev"
	Date    = ""
)

// Resolve computes the best available version, commit and build date. With a
// nil info the running binary's build info is used.
func Resolve(info *debug.BuildInfo) (version, commit, date string) {
	version, commit, date = Version, Commit, Date

	if info == nil {
		if local, ok := debug.ReadBuildInfo(); ok {
			info = local
		}
	}
	if info != nil {
		if info.Main.Version != "" && info.Main.Version != "(devel)" {
			version = info.Main.Version
		}
		if version == "dev" || version == "(devel)" {
			for _, dep := range info.Deps {
				if dep.Path == modulePath && dep.Version != "" {
					version = dep.Version
					break
				}
			}
		}
		for _, s := range info.Settings {
			switch s.Key {
			case "vcs.revision":
				if s.Value != "" {
					commit = s.Value
				}
			case "vcs.time":
				if s.Value != "" {
					date = s.Value
				}
			}
		}
	}

	// A commit given through ldflags beats an unknown version.
	if version == "dev" && Commit != "dev" && Commit != "" {
		version = Commit
	}
	return version, commit, date
}
