package preferences

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/pennywise/backend/internal/application/adapter"
)

type fakeGateway struct {
	prefs adapter.Preferences
}

func (g *fakeGateway) Get(_ context.Context) (*adapter.Preferences, error) {
	clone := g.prefs
	return &clone, nil
}

func (g *fakeGateway) Set(_ context.Context, prefs *adapter.Preferences) error {
	g.prefs = *prefs
	return nil
}

func TestUpdatePreferences_PartialUpdate(t *testing.T) {
	gateway := &fakeGateway{prefs: adapter.Preferences{
		DefaultCurrency: "EUR",
		DailyLimit:      decimal.NewFromInt(50),
		MonthlyLimit:    decimal.NewFromInt(1500),
	}}

	uc := NewUpdatePreferencesUseCase(gateway)
	daily := decimal.NewFromInt(75)
	updated, err := uc.Execute(context.Background(), UpdatePreferencesInput{DailyLimit: &daily})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !updated.DailyLimit.Equal(daily) {
		t.Errorf("daily limit %s, want 75", updated.DailyLimit)
	}
	if updated.DefaultCurrency != "EUR" {
		t.Errorf("default currency was clobbered: %s", updated.DefaultCurrency)
	}
	if !updated.MonthlyLimit.Equal(decimal.NewFromInt(1500)) {
		t.Errorf("monthly limit was clobbered: %s", updated.MonthlyLimit)
	}

	stored, _ := NewGetPreferencesUseCase(gateway).Execute(context.Background())
	if !stored.DailyLimit.Equal(daily) {
		t.Errorf("stored daily limit %s, want 75", stored.DailyLimit)
	}
}
