// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/shopspring/decimal"
)

// Preferences holds the user-level settings consulted by the core. The core
// reads them only to snapshot limits at expense creation time; recurrence and
// projection math never depend on them.
type Preferences struct {
	DefaultCurrency string
	DailyLimit      decimal.Decimal
	MonthlyLimit    decimal.Decimal
}

// PreferencesGateway defines the interface for the user preferences store.
type PreferencesGateway interface {
	// Get retrieves the current preferences.
	Get(ctx context.Context) (*Preferences, error)

	// Set replaces the stored preferences.
	Set(ctx context.Context, prefs *Preferences) error
}
