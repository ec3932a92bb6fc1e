package driven

// Watcher reports changes to a file.
type Watcher interface {
	// Watch calls onChange after path is written or replaced.
	// Rapid successive events are coalesced.
	Watch(path string, onChange func(path string)) error

	// Close stops watching.
	Close() error
}
