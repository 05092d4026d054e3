// SPDX-License-Identifier: MIT
// Copyright (c) 2026 ctxzones contributors
// Source: github.com/ctxzones/ctxzones

package ctxzones

// ResolveChain computes the inheritance chain for a zone, most specific
// first: the zone itself, then each declared parent's chain depth-first in
// declaration order.
//
// The visited set is shared across the whole recursion, so every zone name
// appears at most once and self-referencing or mutually-referencing zones
// produce finite chains instead of recursing forever. Parents absent from
// the registry are silently skipped.
func ResolveChain(zoneName string, registry *ZoneSet) []string {
	return resolveChain(zoneName, registry, make(map[string]bool))
}

func resolveChain(zoneName string, registry *ZoneSet, visited map[string]bool) []string {
	if visited[zoneName] {
		return nil
	}

	visited[zoneName] = true
	chain := []string{zoneName}

	zone, ok := registry.Get(zoneName)
	if !ok {
		return chain
	}

	for _, parent := range zone.Inherits {
		if !registry.Has(parent) {
			continue
		}

		chain = append(chain, resolveChain(parent, registry, visited)...)
	}

	return chain
}
