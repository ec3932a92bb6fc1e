// Package driving defines the interfaces presenters (CLI, TUI, MCP, HTTP)
// use to run searches, read the catalog and change settings.
//
// Implementations live in internal/core/services.
package driving
