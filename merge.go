// SPDX-License-Identifier: MIT
// Copyright (c) 2026 ctxzones contributors
// Source: github.com/ctxzones/ctxzones

package ctxzones

// MergeZones overlays zone sets left to right into a new ordered set.
//
// A later set's zone fully replaces an earlier one with the same name while
// keeping the earlier position; zones with new names append in input order.
// There is no deep merge of individual definitions.
func MergeZones(sets ...*ZoneSet) *ZoneSet {
	merged := &ZoneSet{}
	for _, set := range sets {
		if set == nil {
			continue
		}

		for _, zone := range set.Zones() {
			merged.Set(zone)
		}
	}

	return merged
}
