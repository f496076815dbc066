package adapters

import (
	"context"
	"fmt"
	"sync"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"github.com/pennywise/backend/internal/application/adapter"
)

const (
	preferencesKey = "pennywise:preferences"

	fieldDefaultCurrency = "default_currency"
	fieldDailyLimit      = "daily_limit"
	fieldMonthlyLimit    = "monthly_limit"
)

// redisPreferencesService stores preferences in a Redis hash. Defaults fill
// in any field that has never been written.
type redisPreferencesService struct {
	client   *redis.Client
	defaults adapter.Preferences
}

// NewRedisPreferencesService creates a Redis-backed preferences gateway.
func NewRedisPreferencesService(client *redis.Client, defaults adapter.Preferences) adapter.PreferencesGateway {
	return &redisPreferencesService{
		client:   client,
		defaults: defaults,
	}
}

// Get retrieves the current preferences, filling unset fields from defaults.
func (s *redisPreferencesService) Get(ctx context.Context) (*adapter.Preferences, error) {
	fields, err := s.client.HGetAll(ctx, preferencesKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read preferences: %w", err)
	}

	prefs := s.defaults
	if currency, ok := fields[fieldDefaultCurrency]; ok {
		prefs.DefaultCurrency = currency
	}
	if raw, ok := fields[fieldDailyLimit]; ok {
		if limit, err := decimal.NewFromString(raw); err == nil {
			prefs.DailyLimit = limit
		}
	}
	if raw, ok := fields[fieldMonthlyLimit]; ok {
		if limit, err := decimal.NewFromString(raw); err == nil {
			prefs.MonthlyLimit = limit
		}
	}
	return &prefs, nil
}

// Set replaces the stored preferences.
func (s *redisPreferencesService) Set(ctx context.Context, prefs *adapter.Preferences) error {
	err := s.client.HSet(ctx, preferencesKey,
		fieldDefaultCurrency, prefs.DefaultCurrency,
		fieldDailyLimit, prefs.DailyLimit.String(),
		fieldMonthlyLimit, prefs.MonthlyLimit.String(),
	).Err()
	if err != nil {
		return fmt.Errorf("failed to store preferences: %w", err)
	}
	return nil
}

// staticPreferencesService keeps preferences in process memory. Used when no
// Redis instance is configured; settings then reset on restart.
type staticPreferencesService struct {
	mu    sync.RWMutex
	prefs adapter.Preferences
}

// NewStaticPreferencesService creates an in-memory preferences gateway seeded
// with the given defaults.
func NewStaticPreferencesService(defaults adapter.Preferences) adapter.PreferencesGateway {
	return &staticPreferencesService{prefs: defaults}
}

// Get retrieves the current preferences.
func (s *staticPreferencesService) Get(_ context.Context) (*adapter.Preferences, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	clone := s.prefs
	return &clone, nil
}

// Set replaces the stored preferences.
func (s *staticPreferencesService) Set(_ context.Context, prefs *adapter.Preferences) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prefs = *prefs
	return nil
}
