package rates

import (
	"errors"
	"fmt"
)

// ErrConfiguration matches every *ConfigurationError via errors.Is.
var ErrConfiguration = errors.New("configuration error")

// ConfigurationError reports an internal reference (scope id, component key, enum value)
// that does not exist in the rate tables. It signals a table/UI mismatch, not a user mistake.
type ConfigurationError struct {
	Kind string
	Key  string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("unknown %s %q", e.Kind, e.Key)
}

func (e *ConfigurationError) Is(target error) bool {
	return target == ErrConfiguration
}

func configErr(kind, key string) error {
	return &ConfigurationError{Kind: kind, Key: key}
}
