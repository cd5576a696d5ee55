package plan

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

//go:embed schema/package.schema.json
var manifestSchemaBytes []byte

var (
	manifestSchema     *jsonschema.Schema
	manifestSchemaOnce sync.Once
	manifestSchemaErr  error
)

// ErrInvalidManifest is returned when a rendered package.json does not
// satisfy the embedded manifest schema.
var ErrInvalidManifest = errors.New("invalid package manifest")

func getManifestSchema() (*jsonschema.Schema, error) {
	manifestSchemaOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(manifestSchemaBytes))
		if err != nil {
			manifestSchemaErr = fmt.Errorf("unmarshaling schema JSON: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource("package.schema.json", doc); err != nil {
			manifestSchemaErr = fmt.Errorf("adding schema resource: %w", err)
			return
		}
		manifestSchema, manifestSchemaErr = c.Compile("package.schema.json")
		if manifestSchemaErr != nil {
			manifestSchemaErr = fmt.Errorf("compiling schema: %w", manifestSchemaErr)
		}
	})
	return manifestSchema, manifestSchemaErr
}

// ValidateManifest checks rendered package.json content against the schema.
func ValidateManifest(data []byte) error {
	schema, err := getManifestSchema()
	if err != nil {
		return fmt.Errorf("loading schema: %w", err)
	}

	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidManifest, err)
	}

	if err := schema.Validate(inst); err != nil {
		var validationErr *jsonschema.ValidationError
		if errors.As(err, &validationErr) {
			return fmt.Errorf("%w: %s", ErrInvalidManifest, strings.TrimSpace(validationErr.Error()))
		}
		return fmt.Errorf("%w: %v", ErrInvalidManifest, err)
	}

	return nil
}

// Validate checks the plan's package.json entry before anything is written.
func (p Plan) Validate() error {
	entry, ok := p.File("package.json")
	if !ok {
		return fmt.Errorf("%w: package.json missing from plan", ErrInvalidManifest)
	}
	return ValidateManifest([]byte(entry.Content))
}
