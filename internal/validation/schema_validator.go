package validation

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// SchemaValidator validates JSON documents against JSON schemas.
type SchemaValidator interface {
	ValidateFile(dataPath, schemaPath string) error
	ValidateBytes(data []byte, schemaPath string) error
}

type schemaValidator struct {
	compiler *jsonschema.Compiler
	compiled map[string]*jsonschema.Schema
}

// NewSchemaValidator creates a validator that compiles schemas on first use
// and caches the compiled form for later validations.
func NewSchemaValidator() SchemaValidator {
	return &schemaValidator{
		compiler: jsonschema.NewCompiler(),
		compiled: make(map[string]*jsonschema.Schema),
	}
}

// ValidateFile validates a JSON file against a schema file.
func (v *schemaValidator) ValidateFile(dataPath, schemaPath string) error {
	data, err := os.ReadFile(dataPath)
	if err != nil {
		return fmt.Errorf("reading data file %s: %w", dataPath, err)
	}
	return v.ValidateBytes(data, schemaPath)
}

// ValidateBytes validates JSON bytes against a schema file.
func (v *schemaValidator) ValidateBytes(data []byte, schemaPath string) error {
	schema, err := v.schemaFor(schemaPath)
	if err != nil {
		return fmt.Errorf("loading schema %s: %w", schemaPath, err)
	}

	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parsing JSON data: %w", err)
	}

	if err := schema.Validate(doc); err != nil {
		return describeValidationError(err)
	}
	return nil
}

// schemaFor returns the compiled schema for the given path, compiling and
// caching it on first use.
func (v *schemaValidator) schemaFor(schemaPath string) (*jsonschema.Schema, error) {
	if schema, ok := v.compiled[schemaPath]; ok {
		return schema, nil
	}

	resolved, err := resolveSchemaPath(schemaPath)
	if err != nil {
		return nil, err
	}
	schemaDoc, err := decodeJSONFile(resolved)
	if err != nil {
		return nil, err
	}

	if err := v.compiler.AddResource(schemaPath, schemaDoc); err != nil {
		return nil, fmt.Errorf("registering schema resource: %w", err)
	}
	schema, err := v.compiler.Compile(schemaPath)
	if err != nil {
		return nil, fmt.Errorf("compiling schema: %w", err)
	}

	v.compiled[schemaPath] = schema
	return schema, nil
}

func decodeJSONFile(path string) (interface{}, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	var doc interface{}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return doc, nil
}

// describeValidationError flattens a jsonschema validation error tree into
// one readable error, one line per failing location.
func describeValidationError(err error) error {
	validationErr, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return fmt.Errorf("validation error: %w", err)
	}

	var lines []string
	var walk func(e *jsonschema.ValidationError)
	walk = func(e *jsonschema.ValidationError) {
		lines = append(lines, "  - at "+describeLocation(e))
		for _, cause := range e.Causes {
			walk(cause)
		}
	}
	walk(validationErr)

	return fmt.Errorf("schema validation failed:\n%s", strings.Join(lines, "\n"))
}

func describeLocation(e *jsonschema.ValidationError) string {
	location := "(root)"
	if len(e.InstanceLocation) > 0 {
		location = "/" + strings.Join(e.InstanceLocation, "/")
	}

	if e.ErrorKind != nil {
		if path := e.ErrorKind.KeywordPath(); len(path) > 0 {
			return fmt.Sprintf("%s: %s validation failed", location, strings.Join(path, "."))
		}
	}
	return location + ": validation failed"
}

// resolveSchemaPath locates a schema file. Absolute paths are used as
// given; relative paths are tried against the working directory and then
// each ancestor up to the module root (marked by go.mod), so package
// tests can reference repo-level schemas.
func resolveSchemaPath(schemaPath string) (string, error) {
	if filepath.IsAbs(schemaPath) {
		return schemaPath, nil
	}

	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("resolving working directory: %w", err)
	}

	for {
		candidate := filepath.Join(dir, schemaPath)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}

		_, statErr := os.Stat(filepath.Join(dir, "go.mod"))
		atModuleRoot := statErr == nil
		parent := filepath.Dir(dir)
		if atModuleRoot || parent == dir {
			return "", fmt.Errorf("schema file not found: %s", schemaPath)
		}
		dir = parent
	}
}
