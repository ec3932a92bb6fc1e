// Package file reads a problem catalog from a JSON or YAML file.
//
// The file holds a top-level list of problem records in the same shape as
// the bundled dataset:
//
//	[{"title": "Two Sum", "description": "...", "difficulty": "Easy", "topics": ["Array"]}]
//
// Fields are decoded one at a time. A field of the wrong type is left at its
// zero value and logged, while the rest of the record is kept. Entries that
// are not objects are skipped with a warning. Neither aborts the load.
package file
