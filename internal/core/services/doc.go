// Package services implements the driving port interfaces.
// Services hold session state (the loaded catalog, the active threshold,
// the search guard) and orchestrate calls to driven ports. The scoring
// itself is delegated to the stateless matcher package.
package services
