// Package mcp provides an MCP (Model Context Protocol) server adapter for leetlens.
// It lets AI assistants check whether a problem statement matches a known
// catalog problem, and read or change the similarity threshold.
package mcp

import "errors"

// ErrMissingMatchService is returned when the match service is not provided.
var ErrMissingMatchService = errors.New("mcp: match service is required")

// errNoInput is returned by find_matches when neither text nor url is given.
var errNoInput = errors.New("mcp: text or url is required")
