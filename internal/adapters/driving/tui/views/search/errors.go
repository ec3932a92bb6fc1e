package search

import "errors"

// ErrNoMatchService indicates that no match service was provided.
var ErrNoMatchService = errors.New("match service is required")
