package utils

import (
	"os"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
)

// LoadTOMLFile decodes a TOML file into the provided struct. Keys the struct
// does not know are reported at debug level.
func LoadTOMLFile(configPath string, config any) error {
	meta, err := toml.DecodeFile(configPath, config)
	if err != nil {
		log.Warnf("TOML parsing error in config file %s: %v. Attempting partial recovery...", configPath, err)
		return err
	}
	for _, key := range meta.Undecoded() {
		log.Debugf("Unknown config key %s in %s", key, configPath)
	}
	return nil
}

// ParseTOMLWithRecovery decodes a TOML file into a generic map, so that
// values of the wrong type can be skipped field by field.
func ParseTOMLWithRecovery(configPath string) (map[string]any, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	tempConfig := make(map[string]any)
	if _, err := toml.Decode(string(data), &tempConfig); err != nil {
		log.Warnf("Could not parse any valid configuration from %s: %v", configPath, err)
		return nil, err
	}
	return tempConfig, nil
}

// ExtractSection returns a [section] table from parsed TOML data.
func ExtractSection(data map[string]any, sectionName string) (map[string]any, bool) {
	return Extract[map[string]any](data, sectionName)
}

// Extract returns data[key] when it holds a T.
func Extract[T any](data map[string]any, key string) (T, bool) {
	val, ok := data[key].(T)
	return val, ok
}

// ExtractInt returns data[key] as an int. TOML integers decode as int64.
func ExtractInt(data map[string]any, key string) (int, bool) {
	val, ok := Extract[int64](data, key)
	return int(val), ok
}

// Assign copies data[key] into dst when it holds a T, leaving dst unchanged
// otherwise.
func Assign[T any](data map[string]any, key string, dst *T) {
	if val, ok := Extract[T](data, key); ok {
		*dst = val
	}
}

// AssignInt is Assign for TOML integers.
func AssignInt(data map[string]any, key string, dst *int) {
	if val, ok := ExtractInt(data, key); ok {
		*dst = val
	}
}
