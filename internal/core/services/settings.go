package services

import (
	"fmt"

	"github.com/custodia-labs/leetlens/internal/core/domain"
	"github.com/custodia-labs/leetlens/internal/core/ports/driven"
	"github.com/custodia-labs/leetlens/internal/core/ports/driving"
	"github.com/custodia-labs/leetlens/internal/logger"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyThreshold       = "matching.similarity_threshold"
	keyLastResultCount = "matching.last_result_count"
	keyVisible         = "display.visible"
)

// SettingsService manages user settings backed by a config store.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current settings, filling in defaults for unset keys.
func (s *SettingsService) Get() (domain.Settings, error) {
	return domain.Settings{
		Threshold:       s.Threshold(),
		Visible:         s.visible(),
		LastResultCount: s.configStore.GetInt(keyLastResultCount),
	}, nil
}

// Threshold returns the stored threshold. A missing key gives the default;
// a stored value outside [0,1] is ignored with a warning. A stored 0 is kept.
func (s *SettingsService) Threshold() float64 {
	if _, ok := s.configStore.Get(keyThreshold); !ok {
		return domain.DefaultThreshold
	}
	value := s.configStore.GetFloat(keyThreshold)
	if err := domain.ValidateThreshold(value); err != nil {
		logger.Warn("Ignoring stored threshold: %v", err)
		return domain.DefaultThreshold
	}
	return value
}

// SetThreshold validates and persists a new threshold.
func (s *SettingsService) SetThreshold(value float64) error {
	if err := domain.ValidateThreshold(value); err != nil {
		return err
	}
	if err := s.configStore.Set(keyThreshold, value); err != nil {
		return fmt.Errorf("save threshold: %w", err)
	}
	logger.Info("Similarity threshold set to %.2f", value)
	return nil
}

// ToggleVisibility flips the visibility flag and returns the new value.
func (s *SettingsService) ToggleVisibility() (bool, error) {
	next := !s.visible()
	if err := s.configStore.Set(keyVisible, next); err != nil {
		return !next, fmt.Errorf("save visibility: %w", err)
	}
	return next, nil
}

// RecordResultCount stores the size of the latest result list.
func (s *SettingsService) RecordResultCount(n int) error {
	if err := s.configStore.Set(keyLastResultCount, n); err != nil {
		return fmt.Errorf("save result count: %w", err)
	}
	return nil
}

func (s *SettingsService) visible() bool {
	if _, ok := s.configStore.Get(keyVisible); !ok {
		return true
	}
	return s.configStore.GetBool(keyVisible)
}
