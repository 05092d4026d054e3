// SPDX-License-Identifier: MIT
// Copyright (c) 2026 ctxzones contributors
// Source: github.com/ctxzones/ctxzones

package ctxzones

import (
	"embed"
	"os"
	"strings"
)

// bundledConfigs carries the default zone configuration content shipped
// with the distribution.
//
//go:embed zones/*.md
var bundledConfigs embed.FS

// lookupConfig resolves one configuration reference.
//
// Resolution order: bundled content first, then the per-user tree.
func (d *Detector) lookupConfig(ref string) (string, bool) {
	if content, err := bundledConfigs.ReadFile(ref); err == nil {
		return string(content), true
	}

	if content, err := os.ReadFile(d.Config.ConfigPath(ref)); err == nil {
		return string(content), true
	}

	return "", false
}

// ConfigContent loads the configuration content behind one reference.
//
// A missing reference yields a placeholder naming it instead of an error:
// a zone without content is still a usable zone.
func (d *Detector) ConfigContent(ref string) string {
	if content, ok := d.lookupConfig(ref); ok {
		return content
	}

	return "# Zone config not found: " + ref
}

// InheritedConfig concatenates configuration content across a zone's
// inheritance chain, most specific zone first. Each found section is
// prefixed with a header naming its zone; chain entries without content
// are skipped.
func (d *Detector) InheritedConfig(zoneName string, registry *ZoneSet) string {
	if registry == nil {
		registry = d.Config.Registry()
	}

	var b strings.Builder
	for _, name := range ResolveChain(zoneName, registry) {
		content, ok := d.lookupConfig(registry.ConfigRef(name))
		if !ok {
			continue
		}

		b.WriteString("# === Zone: " + name + " ===\n")
		b.WriteString(content)
		if !strings.HasSuffix(content, "\n") {
			b.WriteString("\n")
		}

		b.WriteString("\n")
	}

	if b.Len() == 0 {
		return "# No config found for zone: " + zoneName
	}

	return strings.TrimSuffix(b.String(), "\n")
}
