// SPDX-License-Identifier: MIT
// Copyright (c) 2026 ctxzones contributors
// Source: github.com/ctxzones/ctxzones

package ctxzones

// BuiltinZones returns the built-in zone table in precedence order.
//
// More specific zones are listed before broader ones: "development" matches
// all of ~/Projects, so career/finance/research pattern hits must come
// first. "parallel" targets worktree checkouts and composes development
// behavior through inheritance.
func BuiltinZones() *ZoneSet {
	set := &ZoneSet{}

	set.Set(Zone{
		Name: "career",
		Patterns: []string{
			"~/Documents/Career",
			"~/Projects/*job*",
			"~/Projects/*resume*",
		},
		Config: "zones/career.md",
	})

	set.Set(Zone{
		Name: "finance",
		Patterns: []string{
			"~/Documents/Finance",
			"~/Projects/*budget*",
			"~/Projects/*tax*",
		},
		Config: "zones/finance.md",
	})

	set.Set(Zone{
		Name: "research",
		Patterns: []string{
			"~/Documents/Research",
			"~/Projects/*research*",
			"~/Projects/*analysis*",
		},
		Config: "zones/research.md",
	})

	set.Set(Zone{
		Name: "parallel",
		Patterns: []string{
			"~/Projects/.worktrees/*",
			"*/.worktrees/*",
		},
		Inherits: []string{"development"},
		Config:   "zones/parallel.md",
	})

	set.Set(Zone{
		Name: "development",
		Patterns: []string{
			"~/Projects",
			"~/Code",
			"~/Developer",
		},
		Config: "zones/development.md",
	})

	return set
}
