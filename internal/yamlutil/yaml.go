// Package yamlutil decodes the YAML configuration files resume2pdf accepts.
// Decoding is always strict: an unknown key in a config file is rejected
// rather than silently ignored, since a misspelled option would otherwise
// change generation behavior without any warning.
package yamlutil

import (
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"
)

// MaxConfigSize caps config input. Real config files run a few hundred
// bytes; anything past this limit is a mistake, not a configuration.
const MaxConfigSize = 64 << 10

var (
	ErrEmptyInput     = errors.New("yamlutil: empty config data")
	ErrNilDestination = errors.New("yamlutil: nil destination pointer")
	ErrConfigTooLarge = errors.New("yamlutil: config exceeds maximum size")
)

// UnmarshalStrict decodes config YAML into v, rejecting unknown fields and
// oversized input.
func UnmarshalStrict(data []byte, v any) error {
	if len(data) == 0 {
		return ErrEmptyInput
	}
	if len(data) > MaxConfigSize {
		return fmt.Errorf("%w: %d bytes (max %d)", ErrConfigTooLarge, len(data), MaxConfigSize)
	}
	if v == nil {
		return ErrNilDestination
	}
	if err := yaml.UnmarshalWithOptions(data, v, yaml.Strict()); err != nil {
		return fmt.Errorf("yamlutil: %w", err)
	}
	return nil
}
