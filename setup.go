// SPDX-License-Identifier: MIT
// Copyright (c) 2026 ctxzones contributors
// Source: github.com/ctxzones/ctxzones

package ctxzones

import (
	"fmt"
	"os"
	"path/filepath"
)

// exampleZonesJSON seeds a new user zones file with editable definitions.
const exampleZonesJSON = `{
  "career": {
    "paths": ["~/Documents/Career", "~/Projects/*resume*"],
    "config": "zones/career.md"
  },
  "finance": {
    "paths": ["~/Documents/Finance"],
    "config": "zones/finance.md"
  },
  "development": {
    "paths": ["~/Projects", "~/Code"],
    "config": "zones/development.md"
  },
  "research": {
    "paths": ["~/Documents/Research"],
    "config": "zones/research.md"
  }
}
`

// HookScript returns a shell hook that loads the active zone configuration
// at session start. Users copy it into their shell or agent hook directory.
func HookScript() string {
	return `#!/bin/bash
# ctxzones hook: automatic zone loading at session start.
# Install: cp this file to your hooks directory and chmod +x it.

if command -v ctxzones &> /dev/null; then
    echo "# Zone Context"
    echo "# Current zone: $(ctxzones --zone-only)"
    echo ""
    ctxzones --config --with-inheritance
fi
`
}

// Init scaffolds the per-user configuration tree: the zones directory, an
// example zones file, and an example session hook. Existing files are left
// untouched, so repeated runs are safe.
//
// Returns the list of created paths, empty when everything already existed.
func (c UserConfig) Init() ([]string, error) {
	zonesDir := filepath.Join(c.Dir, "zones")
	if err := os.MkdirAll(zonesDir, 0o755); err != nil {
		return nil, fmt.Errorf("create %s: %w", zonesDir, err)
	}

	hooksDir := filepath.Join(c.Dir, "hooks")
	if err := os.MkdirAll(hooksDir, 0o755); err != nil {
		return nil, fmt.Errorf("create %s: %w", hooksDir, err)
	}

	var created []string

	zonesPath := c.ZonesPath()
	if _, err := os.Stat(zonesPath); os.IsNotExist(err) {
		if err := os.WriteFile(zonesPath, []byte(exampleZonesJSON), 0o644); err != nil {
			return created, fmt.Errorf("write %s: %w", zonesPath, err)
		}

		created = append(created, zonesPath)
	}

	hookPath := filepath.Join(hooksDir, "session-start.sh.example")
	if _, err := os.Stat(hookPath); os.IsNotExist(err) {
		if err := os.WriteFile(hookPath, []byte(HookScript()), 0o644); err != nil {
			return created, fmt.Errorf("write %s: %w", hookPath, err)
		}

		created = append(created, hookPath)
	}

	return created, nil
}
