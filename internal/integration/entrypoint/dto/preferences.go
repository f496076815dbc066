package dto

import (
	"github.com/pennywise/backend/internal/application/adapter"
)

// UpdatePreferencesRequest represents a partial preferences update.
type UpdatePreferencesRequest struct {
	DefaultCurrency *string  `json:"default_currency,omitempty" binding:"omitempty,len=3"`
	DailyLimit      *float64 `json:"daily_limit,omitempty" binding:"omitempty,gte=0"`
	MonthlyLimit    *float64 `json:"monthly_limit,omitempty" binding:"omitempty,gte=0"`
}

// PreferencesResponse represents the stored preferences.
type PreferencesResponse struct {
	DefaultCurrency string `json:"default_currency"`
	DailyLimit      string `json:"daily_limit"`
	MonthlyLimit    string `json:"monthly_limit"`
}

// ToPreferencesResponse converts preferences to a response DTO.
func ToPreferencesResponse(prefs *adapter.Preferences) *PreferencesResponse {
	return &PreferencesResponse{
		DefaultCurrency: prefs.DefaultCurrency,
		DailyLimit:      prefs.DailyLimit.String(),
		MonthlyLimit:    prefs.MonthlyLimit.String(),
	}
}
