package setting

import "errors"

var (
	// ErrSettingNotFound is returned when no row exists for a category/key pair
	ErrSettingNotFound = errors.New("setting not found")

	// ErrInvalidSettingKey is returned when the key is empty or malformed
	ErrInvalidSettingKey = errors.New("invalid setting key")

	// ErrInvalidValueType is returned when a value does not match the declared type
	ErrInvalidValueType = errors.New("invalid value type")
)
