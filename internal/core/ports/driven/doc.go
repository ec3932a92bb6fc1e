// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - CatalogStore: Cached catalog persistence (SQLite)
//   - CatalogSource: Supplies a fresh catalog (bundled file, GitHub)
//   - ConfigStore: Application configuration (TOML)
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - PageScraper: Extracts page text from a URL. Without it, only raw text can be matched.
//   - Watcher: Reports catalog file changes. Without it, the catalog is only loaded on demand.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
