// SPDX-License-Identifier: MIT
// Copyright (c) 2026 ctxzones contributors
// Source: github.com/ctxzones/ctxzones

/*
Package ctxzones detects which named behavioral zone a filesystem path
belongs to and resolves that zone's inherited configuration chain.

A zone is a named context (career, finance, development, ...) described by
ordered path patterns, optional parent zones, and a reference to
configuration content. Detection precedence:

  - explicit per-project override via a .ctxzone marker file
  - first matching pattern across the registry, in registry order
  - the reserved "default" zone

Basic flow:
  - build a detector (`NewDetector`)
  - detect a path (`Detector.Detect`)
  - load zone configuration content (`Detector.InheritedConfig`)
  - inspect usage metrics (`MetricsStore.Summarize`)

Pattern semantics: a pattern without wildcards matches the pattern path
itself and any descendant (whole-segment containment, so /home/user never
matches /home/userX). A pattern containing "*" is matched segment by
segment, case-insensitively, with wildcards never crossing a "/" boundary.

The interactive MCP server exposing detection over stdio lives in
internal/mcp and is reachable through the ctxzones binary.
*/
package ctxzones
