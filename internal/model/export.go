package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	_ "embed"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

const exportSchemaVersion = "v0.1.0"

//go:embed model.schema.json
var modelSchemaJSON []byte

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

// Export is the JSON snapshot of one parsed diagram.
type Export struct {
	SchemaVersion string         `json:"schema_version"`
	Declarations  []*Declaration `json:"declarations"`
	Relationships *Relationships `json:"relationships"`
}

// NewExport builds a snapshot from a declaration table and its relationships.
func NewExport(m *Model, rels *Relationships) *Export {
	if rels == nil {
		rels = NewRelationships()
	}
	return &Export{
		SchemaVersion: exportSchemaVersion,
		Declarations:  m.Declarations(),
		Relationships: rels,
	}
}

func loadCompiledSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource("model.schema.json", bytes.NewReader(modelSchemaJSON)); err != nil {
			schemaErr = err
			return
		}
		compiledSchema, schemaErr = compiler.Compile("model.schema.json")
	})
	return compiledSchema, schemaErr
}

// Validate checks the snapshot against the embedded JSON schema.
func (e *Export) Validate() error {
	schema, err := loadCompiledSchema()
	if err != nil {
		return fmt.Errorf("failed to compile model schema: %w", err)
	}

	raw, err := json.Marshal(e)
	if err != nil {
		return err
	}
	var doc interface{}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return err
	}

	if err := schema.Validate(doc); err != nil {
		return fmt.Errorf("schema validation: %w", err)
	}
	return nil
}

// Save validates the snapshot and writes it as indented JSON to path.
func (e *Export) Save(path string) error {
	if err := e.Validate(); err != nil {
		return err
	}
	data, err := json.MarshalIndent(e, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
