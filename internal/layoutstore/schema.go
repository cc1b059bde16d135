package layoutstore

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

//go:embed snapshot.schema.json
var snapshotSchemaJSON []byte

var (
	schemaOnce sync.Once
	schemaVal  *jsonschema.Schema
	schemaErr  error
)

func compiledSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		var doc any
		if err := json.Unmarshal(snapshotSchemaJSON, &doc); err != nil {
			schemaErr = fmt.Errorf("layoutstore: parse schema json: %w", err)
			return
		}
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource("snapshot.schema.json", doc); err != nil {
			schemaErr = fmt.Errorf("layoutstore: load schema: %w", err)
			return
		}
		schemaVal, schemaErr = compiler.Compile("snapshot.schema.json")
		if schemaErr != nil {
			schemaErr = fmt.Errorf("layoutstore: compile schema: %w", schemaErr)
		}
	})
	return schemaVal, schemaErr
}

// ValidateJSON checks a decoded (ungzipped) snapshot document against
// the embedded schema.
func ValidateJSON(data []byte) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return errors.New("layoutstore: snapshot is empty")
	}
	schema, err := compiledSchema()
	if err != nil {
		return err
	}
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("layoutstore: parse snapshot json: %w", err)
	}
	if err := schema.Validate(doc); err != nil {
		return fmt.Errorf("layoutstore: snapshot schema validation: %w", err)
	}
	return nil
}
