package adapters

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"github.com/pennywise/backend/internal/application/adapter"
)

func newTestRedis(t *testing.T) *redis.Client {
	t.Helper()
	mini := miniredis.RunT(t)
	return redis.NewClient(&redis.Options{Addr: mini.Addr()})
}

func TestRedisPreferencesService_DefaultsUntilWritten(t *testing.T) {
	defaults := adapter.Preferences{
		DefaultCurrency: "EUR",
		DailyLimit:      decimal.NewFromInt(50),
		MonthlyLimit:    decimal.NewFromInt(1500),
	}
	service := NewRedisPreferencesService(newTestRedis(t), defaults)

	prefs, err := service.Get(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if prefs.DefaultCurrency != "EUR" || !prefs.DailyLimit.Equal(decimal.NewFromInt(50)) {
		t.Errorf("expected defaults, got %+v", prefs)
	}
}

func TestRedisPreferencesService_RoundTrip(t *testing.T) {
	service := NewRedisPreferencesService(newTestRedis(t), adapter.Preferences{DefaultCurrency: "EUR"})

	want := &adapter.Preferences{
		DefaultCurrency: "USD",
		DailyLimit:      decimal.NewFromFloat(75.50),
		MonthlyLimit:    decimal.NewFromInt(2000),
	}
	if err := service.Set(context.Background(), want); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	got, err := service.Get(context.Background())
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.DefaultCurrency != "USD" || !got.DailyLimit.Equal(want.DailyLimit) || !got.MonthlyLimit.Equal(want.MonthlyLimit) {
		t.Errorf("round trip mismatch: %+v", got)
	}
}

func TestStaticPreferencesService(t *testing.T) {
	service := NewStaticPreferencesService(adapter.Preferences{DefaultCurrency: "EUR"})

	prefs, err := service.Get(context.Background())
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	prefs.DefaultCurrency = "GBP"
	if err := service.Set(context.Background(), prefs); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	stored, _ := service.Get(context.Background())
	if stored.DefaultCurrency != "GBP" {
		t.Errorf("currency %s, want GBP", stored.DefaultCurrency)
	}
}
