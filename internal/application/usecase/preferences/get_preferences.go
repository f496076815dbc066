// Package preferences contains user settings use cases.
package preferences

import (
	"context"
	"fmt"

	"github.com/pennywise/backend/internal/application/adapter"
)

// GetPreferencesUseCase retrieves the current user preferences.
type GetPreferencesUseCase struct {
	gateway adapter.PreferencesGateway
}

// NewGetPreferencesUseCase creates a new GetPreferencesUseCase instance.
func NewGetPreferencesUseCase(gateway adapter.PreferencesGateway) *GetPreferencesUseCase {
	return &GetPreferencesUseCase{gateway: gateway}
}

// Execute retrieves the preferences.
func (uc *GetPreferencesUseCase) Execute(ctx context.Context) (*adapter.Preferences, error) {
	prefs, err := uc.gateway.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load preferences: %w", err)
	}
	return prefs, nil
}
