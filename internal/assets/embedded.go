// Package assets provides the fixed HTML template sources for résumé rendering.
// Templates are embedded into the binary; rendering never touches the
// filesystem or the network.
package assets

import (
	"embed"
	"fmt"
	"strings"
)

//go:embed templates/*
var templates embed.FS

// Loader defines the contract for loading template sources.
// Implementations may load from embedded files, filesystem, etc.
type Loader interface {
	// LoadTemplate loads an HTML template source by name (without .html extension).
	// Returns ErrTemplateNotFound if the template doesn't exist.
	// Returns ErrInvalidAssetName if the name contains invalid characters.
	LoadTemplate(name string) (string, error)
}

// EmbeddedLoader loads templates from the embedded filesystem.
type EmbeddedLoader struct{}

// NewEmbeddedLoader creates an EmbeddedLoader.
func NewEmbeddedLoader() *EmbeddedLoader {
	return &EmbeddedLoader{}
}

// LoadTemplate loads an HTML template from embedded assets by name.
// The name should not include the .html extension.
func (e *EmbeddedLoader) LoadTemplate(name string) (string, error) {
	if err := ValidateAssetName(name); err != nil {
		return "", err
	}

	content, err := templates.ReadFile("templates/" + name + ".html")
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrTemplateNotFound, name)
	}

	return string(content), nil
}

// ListTemplates returns the names of all embedded templates, without extensions.
func ListTemplates() []string {
	entries, err := templates.ReadDir("templates")
	if err != nil {
		return nil
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		names = append(names, strings.TrimSuffix(entry.Name(), ".html"))
	}
	return names
}

// Compile-time interface check.
var _ Loader = (*EmbeddedLoader)(nil)
