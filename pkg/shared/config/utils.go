package config

import (
	"reflect"
	"strings"
)

// GetBoolValue retrieves a boolean value from a nested struct based on a dot-separated path.
// It returns the provided defaultValue if the specified field is not explicitly set or is nil.
func GetBoolValue(config interface{}, fieldPath string, defaultValue bool) bool {
	if config == nil {
		return defaultValue
	}

	fields := strings.Split(fieldPath, ".")
	val := reflect.ValueOf(config)

	for _, field := range fields {
		if val.Kind() == reflect.Ptr {
			if val.IsNil() {
				return defaultValue
			}
			val = val.Elem()
		}

		val = val.FieldByName(field)
		if !val.IsValid() {
			return defaultValue
		}
	}

	// Check if the field is a pointer to a bool and is not nil
	if val.Kind() == reflect.Ptr && !val.IsNil() {
		return val.Elem().Bool()
	} else if val.Kind() == reflect.Bool {
		return val.Bool()
	}

	return defaultValue
}

// SetThen returns value unless it is the zero value, in which case defaultValue is returned.
func SetThen[T any](value T, defaultValue T) T {
	if reflect.ValueOf(value).IsZero() {
		return defaultValue
	}
	return value
}

// SingleLineCommentEnabled reports whether the single line comment rule runs. Defaults to true.
func SingleLineCommentEnabled(cfg *Config) bool {
	return GetBoolValue(cfg, "Rules.SingleLineComment.Enabled", true)
}

// MethodBodyCommentsEnabled reports whether the method body comment rule runs. Defaults to true.
func MethodBodyCommentsEnabled(cfg *Config) bool {
	return GetBoolValue(cfg, "Rules.MethodBodyComments.Enabled", true)
}
