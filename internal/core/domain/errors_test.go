package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestErrors_Existence tests that all error variables exist and are not nil
func TestErrors_Existence(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"ErrNotFound", ErrNotFound},
		{"ErrInvalidInput", ErrInvalidInput},
		{"ErrSearchInProgress", ErrSearchInProgress},
		{"ErrCatalogUnavailable", ErrCatalogUnavailable},
		{"ErrScrapeFailed", ErrScrapeFailed},
		{"ErrRateLimited", ErrRateLimited},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, tt.err)
			assert.NotEmpty(t, tt.err.Error())
		})
	}
}

func TestErrSearchInProgress(t *testing.T) {
	assert.Equal(t, "search in progress", ErrSearchInProgress.Error())
	assert.False(t, errors.Is(ErrSearchInProgress, ErrInvalidInput))
}

func TestErrors_Wrapped(t *testing.T) {
	wrapped := fmt.Errorf("load catalog: %w", ErrCatalogUnavailable)
	assert.True(t, errors.Is(wrapped, ErrCatalogUnavailable))
	assert.False(t, errors.Is(wrapped, ErrNotFound))
}
