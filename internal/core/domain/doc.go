// Package domain defines the core business entities for leetlens.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Problem: A catalog entry (a LeetCode-style problem record)
//   - MatchResult: A scored catalog entry produced by a single search
//   - Settings: User-configurable matching and display options
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
