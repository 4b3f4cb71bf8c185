// Package schema validates résumé JSON against the embedded resume schema.
//
// Validation happens once, at the input boundary. The rendering core
// assumes a validated document and never re-validates.
package schema

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed resume.schema.json
var resumeSchema []byte

// ErrSchemaLoad indicates the embedded schema itself failed to parse.
// This is a build defect, not a user error.
var ErrSchemaLoad = errors.New("failed to load resume schema")

// FieldError is a single validation failure at a specific field path.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError aggregates all field-level failures for one document.
type ValidationError struct {
	Errors []FieldError
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("resume validation failed:")
	for _, fe := range ve.Errors {
		sb.WriteString("\n  ")
		sb.WriteString(fe.Field)
		sb.WriteString(": ")
		sb.WriteString(fe.Message)
	}
	return sb.String()
}

// Validate checks raw résumé JSON against the embedded schema.
// Returns *ValidationError listing every violation, or nil when valid.
func Validate(data []byte) error {
	schemaLoader := gojsonschema.NewBytesLoader(resumeSchema)
	documentLoader := gojsonschema.NewBytesLoader(data)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		// Distinguish a broken embedded schema from broken input: the schema
		// is compiled first, so try it alone.
		if _, schemaErr := gojsonschema.NewSchema(schemaLoader); schemaErr != nil {
			return fmt.Errorf("%w: %v", ErrSchemaLoad, schemaErr)
		}
		return fmt.Errorf("parsing resume JSON: %w", err)
	}

	if result.Valid() {
		return nil
	}

	ve := &ValidationError{Errors: make([]FieldError, 0, len(result.Errors()))}
	for _, desc := range result.Errors() {
		ve.Errors = append(ve.Errors, FieldError{
			Field:   desc.Field(),
			Message: desc.Description(),
		})
	}
	return ve
}
