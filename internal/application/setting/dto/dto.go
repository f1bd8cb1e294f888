package dto

import (
	"time"
)

// Setting value sources, in precedence order.
const (
	SourceDatabase    = "database"
	SourceEnvironment = "environment"
	SourceDefault     = "default"
)

// SettingWithSource carries a resolved value together with where it came from.
type SettingWithSource struct {
	Value  any    `json:"value"`
	Source string `json:"source"`
}

// SettingResponse represents a single setting response
type SettingResponse struct {
	ID          uint      `json:"id"`
	Category    string    `json:"category"`
	Key         string    `json:"key"`
	Value       any       `json:"value"`
	ValueType   string    `json:"value_type"`
	Description string    `json:"description"`
	IsSensitive bool      `json:"is_sensitive"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CategorySettingsResponse represents a category settings response
type CategorySettingsResponse struct {
	Category string            `json:"category"`
	Settings []SettingResponse `json:"settings"`
}

// UpdateCategorySettingsRequest represents the request to batch update category settings
type UpdateCategorySettingsRequest struct {
	Settings map[string]any `json:"settings" binding:"required"`
}

// MaskSensitiveValue masks a sensitive value for display
// Returns "***...***" format for non-empty values
func MaskSensitiveValue(value string) string {
	if value == "" {
		return ""
	}
	if len(value) <= 6 {
		return "***"
	}
	return "***...***"
}

// SensitiveKeys defines keys that should be masked in responses
var SensitiveKeys = map[string]bool{
	"smtp_password": true,
	"api_key":       true,
	"secret_key":    true,
	"password":      true,
}

// IsSensitiveKey checks if a key should be masked
func IsSensitiveKey(key string) bool {
	return SensitiveKeys[key]
}
