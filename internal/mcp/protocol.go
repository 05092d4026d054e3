// SPDX-License-Identifier: MIT
// Copyright (c) 2026 ctxzones contributors
// Source: github.com/ctxzones/ctxzones

// Package mcp implements a single-session MCP server exposing zone
// detection and switching over a newline-delimited JSON-RPC 2.0 stream.
package mcp

import "encoding/json"

// protocolVersion is the MCP protocol revision this server speaks.
const protocolVersion = "2024-11-05"

// JSON-RPC 2.0 error codes used by the dispatch boundary.
const (
	codeMethodNotFound = -32601
	codeInternalError  = -32603
)

// Request is an incoming JSON-RPC 2.0 request.
type Request struct {
	JSONRPC string `json:"jsonrpc"`
	// ID may be a string, a number, or absent for notifications.
	ID     any             `json:"id"`
	Method string          `json:"method"`
	Params json.RawMessage `json:"params,omitempty"`
}

// Response is an outgoing JSON-RPC 2.0 response.
type Response struct {
	JSONRPC string `json:"jsonrpc"`
	ID      any    `json:"id"`
	Result  any    `json:"result,omitempty"`
	Error   *Error `json:"error,omitempty"`
}

// Error is a JSON-RPC 2.0 error object.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Tool describes one callable operation advertised by tools/list.
type Tool struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	InputSchema map[string]any `json:"inputSchema"`
}

// toolResult is the tools/call result payload.
type toolResult struct {
	Content []contentBlock `json:"content"`
}

// contentBlock is one piece of tool output.
type contentBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// callParams is the tools/call parameter shape.
type callParams struct {
	Name      string          `json:"name"`
	Arguments json.RawMessage `json:"arguments"`
}

// okResponse builds a success response echoing the request identifier.
func okResponse(id any, result any) *Response {
	return &Response{
		JSONRPC: "2.0",
		ID:      id,
		Result:  result,
	}
}

// errResponse builds an error response echoing the request identifier.
func errResponse(id any, code int, message string) *Response {
	return &Response{
		JSONRPC: "2.0",
		ID:      id,
		Error: &Error{
			Code:    code,
			Message: message,
		},
	}
}
