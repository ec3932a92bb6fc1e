// Package matcher scores page text against a problem catalog.
//
// The engine is lexical only: text is normalised, compared by substring
// containment and by Jaccard overlap of word sets, and the catalog is
// scanned in full on every call. Every function is pure and synchronous.
// Callers own the catalog and threshold; nothing here keeps state between
// calls, so concurrent searches over a shared read-only catalog are safe.
package matcher
