// SPDX-License-Identifier: MIT
// Copyright (c) 2026 ctxzones contributors
// Source: github.com/ctxzones/ctxzones

package ctxzones

import "errors"

// Sentinel errors for ctxzones operations.
var (
	// ErrInvalidZoneName indicates an empty or malformed zone name.
	ErrInvalidZoneName = errors.New("invalid zone name")
	// ErrInvalidZonesFile indicates an unparseable user zones document.
	ErrInvalidZonesFile = errors.New("invalid zones file")
	// ErrNilDetector indicates a nil Detector receiver.
	ErrNilDetector = errors.New("detector is nil")
)
