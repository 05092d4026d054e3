// SPDX-License-Identifier: MIT
// Copyright (c) 2026 ctxzones contributors
// Source: github.com/ctxzones/ctxzones

package mcp

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/ctxzones/ctxzones"
)

// maxLineSize bounds one protocol line.
const maxLineSize = 1024 * 1024

// errUnknownTool marks a tools/call naming no registered operation.
var errUnknownTool = errors.New("unknown tool")

// Server is a stateful single-session request handler over one duplex
// line-oriented stream. It processes strictly one request at a time; the
// only mutable session state is the manual zone override.
type Server struct {
	detector *ctxzones.Detector
	// override is the manually selected zone, empty when cleared.
	override string
	in       io.Reader
	out      io.Writer
	errLog   io.Writer
}

// NewServer builds a stdio-transport server around a detector.
func NewServer(detector *ctxzones.Detector) *Server {
	return NewServerIO(detector, os.Stdin, os.Stdout, os.Stderr)
}

// NewServerIO builds a server over explicit streams; tests use buffers.
func NewServerIO(detector *ctxzones.Detector, in io.Reader, out io.Writer, errLog io.Writer) *Server {
	return &Server{
		detector: detector,
		in:       in,
		out:      out,
		errLog:   errLog,
	}
}

// Run reads one JSON request per line, dispatches it, and writes at most
// one JSON response per line until the transport closes.
//
// Lines that fail to parse are dropped silently and per-request failures
// are answered in-band, so no single request ends the session.
func (s *Server) Run() error {
	scanner := bufio.NewScanner(s.in)
	scanner.Buffer(make([]byte, maxLineSize), maxLineSize)

	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}

		var req Request
		if err := json.Unmarshal([]byte(line), &req); err != nil {
			continue
		}

		resp := s.Handle(req)
		if resp == nil {
			continue
		}

		payload, err := json.Marshal(resp)
		if err != nil {
			fmt.Fprintf(s.errLog, "[ctxzones] marshal response: %v\n", err)
			continue
		}

		fmt.Fprintln(s.out, string(payload))
	}

	return scanner.Err()
}

// Handle dispatches one request. A nil result means the message was a
// notification and expects no response.
func (s *Server) Handle(req Request) *Response {
	switch req.Method {
	case "initialize":
		return okResponse(req.ID, map[string]any{
			"protocolVersion": protocolVersion,
			"capabilities": map[string]any{
				"tools": map[string]any{},
			},
			"serverInfo": map[string]any{
				"name":    "ctxzones",
				"version": ctxzones.Version,
			},
		})

	case "tools/list":
		return okResponse(req.ID, map[string]any{
			"tools": toolDefinitions(),
		})

	case "tools/call":
		return s.handleToolCall(req)

	case "notifications/initialized":
		return nil

	default:
		return errResponse(req.ID, codeMethodNotFound, "Method not found: "+req.Method)
	}
}

// handleToolCall executes one operation and wraps its outcome as a
// tools/call result. Handler errors and panics surface as internal-error
// responses; the session keeps running.
func (s *Server) handleToolCall(req Request) *Response {
	var params callParams
	if len(req.Params) > 0 {
		if err := json.Unmarshal(req.Params, &params); err != nil {
			return errResponse(req.ID, codeInternalError, "invalid tools/call params: "+err.Error())
		}
	}

	result, err := s.callTool(params.Name, params.Arguments)
	if err != nil {
		if errors.Is(err, errUnknownTool) {
			return errResponse(req.ID, codeMethodNotFound, "Unknown tool: "+params.Name)
		}

		return errResponse(req.ID, codeInternalError, err.Error())
	}

	text, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return errResponse(req.ID, codeInternalError, "marshal tool result: "+err.Error())
	}

	return okResponse(req.ID, toolResult{
		Content: []contentBlock{{
			Type: "text",
			Text: string(text),
		}},
	})
}

// callTool selects one operation by explicit match so the operation set is
// exhaustively checkable. The recover keeps a handler programming error
// from tearing down the session.
func (s *Server) callTool(name string, args json.RawMessage) (result any, err error) {
	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = fmt.Errorf("tool %s: %v", name, r)
		}
	}()

	switch name {
	case "detect_zone":
		return s.detectZone(args)
	case "get_zone_config":
		return s.getZoneConfig(args)
	case "switch_zone":
		return s.switchZone(args)
	case "list_zones":
		return s.listZones()
	case "get_metrics":
		return s.getMetrics()
	case "clear_override":
		return s.clearOverride()
	default:
		return nil, errUnknownTool
	}
}
