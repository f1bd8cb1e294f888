// Package setting models panel configuration stored in the database.
// Database values take precedence over environment configuration; the
// application-layer provider merges the two.
package setting

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/tansyhq/tansy/internal/shared/biztime"
)

// ValueType defines the type of a setting value
type ValueType string

const (
	ValueTypeString ValueType = "string"
	ValueTypeInt    ValueType = "int"
	ValueTypeBool   ValueType = "bool"
	ValueTypeJSON   ValueType = "json"
)

// Well-known setting categories.
const (
	CategoryEmail  = "email"
	CategorySystem = "system"
)

// Setting is one category/key row of panel configuration.
type Setting struct {
	id          uint
	category    string
	key         string
	value       string
	valueType   ValueType
	description string
	version     int
	createdAt   time.Time
	updatedAt   time.Time
}

// NewSetting creates a setting definition without a value.
func NewSetting(category, key string, valueType ValueType, description string) (*Setting, error) {
	if category == "" {
		return nil, fmt.Errorf("category is required")
	}
	if key == "" {
		return nil, fmt.Errorf("key is required")
	}
	if !isValidValueType(valueType) {
		return nil, fmt.Errorf("invalid value type: %s", valueType)
	}

	now := biztime.NowUTC()
	return &Setting{
		category:    category,
		key:         key,
		valueType:   valueType,
		description: description,
		version:     1,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// ReconstructSetting rebuilds a setting from the persistence layer.
func ReconstructSetting(
	id uint,
	category string,
	key string,
	value string,
	valueType ValueType,
	description string,
	version int,
	createdAt, updatedAt time.Time,
) *Setting {
	return &Setting{
		id:          id,
		category:    category,
		key:         key,
		value:       value,
		valueType:   valueType,
		description: description,
		version:     version,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (s *Setting) ID() uint             { return s.id }
func (s *Setting) Category() string     { return s.category }
func (s *Setting) Key() string          { return s.key }
func (s *Setting) Value() string        { return s.value }
func (s *Setting) ValueType() ValueType { return s.valueType }
func (s *Setting) Description() string  { return s.description }
func (s *Setting) Version() int         { return s.version }
func (s *Setting) CreatedAt() time.Time { return s.createdAt }
func (s *Setting) UpdatedAt() time.Time { return s.updatedAt }

// SetID sets the setting ID (only for persistence layer use)
func (s *Setting) SetID(id uint) {
	s.id = id
}

// HasValue checks if the setting has a non-empty value
func (s *Setting) HasValue() bool {
	return s.value != ""
}

// GetStringValue returns the value as a string
func (s *Setting) GetStringValue() string {
	return s.value
}

// GetIntValue returns the value as an integer
func (s *Setting) GetIntValue() (int, error) {
	if s.value == "" {
		return 0, nil
	}
	return strconv.Atoi(s.value)
}

// GetBoolValue returns the value as a boolean
func (s *Setting) GetBoolValue() (bool, error) {
	if s.value == "" {
		return false, nil
	}
	return strconv.ParseBool(s.value)
}

// GetJSONValue unmarshals the value into the provided target
func (s *Setting) GetJSONValue(target any) error {
	if s.value == "" {
		return nil
	}
	return json.Unmarshal([]byte(s.value), target)
}

// SetStringValue sets the value as a string
func (s *Setting) SetStringValue(value string) error {
	if s.valueType != ValueTypeString {
		return fmt.Errorf("value type mismatch: expected %s, got string", s.valueType)
	}
	s.setRaw(value)
	return nil
}

// SetIntValue sets the value as an integer
func (s *Setting) SetIntValue(value int) error {
	if s.valueType != ValueTypeInt {
		return fmt.Errorf("value type mismatch: expected %s, got int", s.valueType)
	}
	s.setRaw(strconv.Itoa(value))
	return nil
}

// SetBoolValue sets the value as a boolean
func (s *Setting) SetBoolValue(value bool) error {
	if s.valueType != ValueTypeBool {
		return fmt.Errorf("value type mismatch: expected %s, got bool", s.valueType)
	}
	s.setRaw(strconv.FormatBool(value))
	return nil
}

// SetJSONValue sets the value as JSON
func (s *Setting) SetJSONValue(value any) error {
	if s.valueType != ValueTypeJSON {
		return fmt.Errorf("value type mismatch: expected %s, got json", s.valueType)
	}
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal JSON value: %w", err)
	}
	s.setRaw(string(data))
	return nil
}

// SetRawValue stores an already-typed string, used by the settings API when
// writing operator input.
func (s *Setting) SetRawValue(value string) error {
	switch s.valueType {
	case ValueTypeInt:
		if value != "" {
			if _, err := strconv.Atoi(value); err != nil {
				return fmt.Errorf("value %q is not an integer", value)
			}
		}
	case ValueTypeBool:
		if value != "" {
			if _, err := strconv.ParseBool(value); err != nil {
				return fmt.Errorf("value %q is not a boolean", value)
			}
		}
	case ValueTypeJSON:
		if value != "" && !json.Valid([]byte(value)) {
			return fmt.Errorf("value is not valid JSON")
		}
	}
	s.setRaw(value)
	return nil
}

func (s *Setting) setRaw(value string) {
	s.value = value
	s.version++
	s.updatedAt = biztime.NowUTC()
}

// isValidValueType checks if the value type is valid
func isValidValueType(vt ValueType) bool {
	switch vt {
	case ValueTypeString, ValueTypeInt, ValueTypeBool, ValueTypeJSON:
		return true
	default:
		return false
	}
}
