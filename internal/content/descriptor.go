package content

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// descriptorSchema constrains structured job descriptors submitted at job
// creation. The ledger itself only ever sees the opaque ref.
var descriptorSchema = map[string]any{
	"type":                 "object",
	"additionalProperties": false,
	"required":             []any{"title", "summary"},
	"properties": map[string]any{
		"title": map[string]any{
			"type":      "string",
			"minLength": 1,
			"maxLength": 140,
		},
		"summary": map[string]any{
			"type":      "string",
			"minLength": 1,
		},
		"skills": map[string]any{
			"type":  "array",
			"items": map[string]any{"type": "string", "minLength": 1},
		},
		"tags": map[string]any{
			"type":  "array",
			"items": map[string]any{"type": "string", "minLength": 1},
		},
	},
}

var compiledDescriptor = mustCompile(descriptorSchema)

func mustCompile(schemaMap map[string]any) *jsonschema.Schema {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		panic(fmt.Sprintf("marshal schema: %v", err))
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("descriptor.json", bytes.NewReader(b)); err != nil {
		panic(fmt.Sprintf("add schema: %v", err))
	}
	schema, err := compiler.Compile("descriptor.json")
	if err != nil {
		panic(fmt.Sprintf("compile schema: %v", err))
	}
	return schema
}

// ValidateDescriptor checks a raw JSON descriptor document.
func ValidateDescriptor(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal descriptor: %w", err)
	}
	if err := compiledDescriptor.Validate(v); err != nil {
		return fmt.Errorf("descriptor does not match schema: %w", err)
	}
	return nil
}

// DescriptorRef returns the content ref stored on the job: the hex SHA-256 of
// the document, prefixed so refs are recognizable in logs.
func DescriptorRef(data []byte) string {
	sum := sha256.Sum256(data)
	return "sha256:" + hex.EncodeToString(sum[:])
}
