package assets

import (
	"fmt"
	"strings"
)

// ValidateAssetName rejects names that could escape the asset directory.
// Names must be plain identifiers: no separators, no traversal, no hidden files.
func ValidateAssetName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	}
	if strings.ContainsAny(name, "/\\") {
		return fmt.Errorf("%w: %q contains path separator", ErrInvalidAssetName, name)
	}
	if strings.Contains(name, "..") {
		return fmt.Errorf("%w: %q contains traversal sequence", ErrInvalidAssetName, name)
	}
	if strings.HasPrefix(name, ".") {
		return fmt.Errorf("%w: %q is a hidden name", ErrInvalidAssetName, name)
	}
	return nil
}
