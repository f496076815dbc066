package preferences

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/pennywise/backend/internal/application/adapter"
)

// UpdatePreferencesInput represents a partial preferences update. Nil
// pointers leave the corresponding setting untouched.
type UpdatePreferencesInput struct {
	DefaultCurrency *string
	DailyLimit      *decimal.Decimal
	MonthlyLimit    *decimal.Decimal
}

// UpdatePreferencesUseCase applies a partial update to the stored
// preferences. Changed limits only affect expenses created afterwards;
// existing limit snapshots are never rewritten.
type UpdatePreferencesUseCase struct {
	gateway adapter.PreferencesGateway
}

// NewUpdatePreferencesUseCase creates a new UpdatePreferencesUseCase instance.
func NewUpdatePreferencesUseCase(gateway adapter.PreferencesGateway) *UpdatePreferencesUseCase {
	return &UpdatePreferencesUseCase{gateway: gateway}
}

// Execute merges the input into the stored preferences and persists them.
func (uc *UpdatePreferencesUseCase) Execute(ctx context.Context, input UpdatePreferencesInput) (*adapter.Preferences, error) {
	prefs, err := uc.gateway.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load preferences: %w", err)
	}

	if input.DefaultCurrency != nil {
		prefs.DefaultCurrency = *input.DefaultCurrency
	}
	if input.DailyLimit != nil {
		prefs.DailyLimit = *input.DailyLimit
	}
	if input.MonthlyLimit != nil {
		prefs.MonthlyLimit = *input.MonthlyLimit
	}

	if err := uc.gateway.Set(ctx, prefs); err != nil {
		return nil, fmt.Errorf("failed to store preferences: %w", err)
	}

	slog.Debug("Updated preferences", "defaultCurrency", prefs.DefaultCurrency)
	return prefs, nil
}
