// Package fixture persists the shared test-case set. Fixtures are JSON
// arrays, optionally gzip-compressed, and are validated against a schema
// on load so a hand-edited or truncated file fails the run up front
// instead of skewing a measurement.
package fixture

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/errsig/errbench/internal/models"
)

const schemaJSON = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "array",
  "items": {
    "type": "object",
    "required": ["id", "raw_message", "expect_success"],
    "properties": {
      "id": {"type": "integer", "minimum": 0},
      "raw_message": {"type": "string"},
      "expect_success": {"type": "boolean"}
    },
    "additionalProperties": false
  }
}`

func compileSchema() (*jsonschema.Schema, error) {
	doc, err := jsonschema.UnmarshalJSON(strings.NewReader(schemaJSON))
	if err != nil {
		return nil, fmt.Errorf("fixture: decoding schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("fixture.json", doc); err != nil {
		return nil, fmt.Errorf("fixture: registering schema: %w", err)
	}
	return compiler.Compile("fixture.json")
}

// Save writes the set to path as pretty-printed JSON. A path ending in
// .gz is gzip-compressed.
func Save(path string, set models.TestCaseSet) error {
	data, err := json.MarshalIndent(set, "", "  ")
	if err != nil {
		return fmt.Errorf("fixture: encoding %s: %w", path, err)
	}

	if strings.HasSuffix(path, ".gz") {
		var buf bytes.Buffer
		zw := gzip.NewWriter(&buf)
		if _, err := zw.Write(data); err != nil {
			return fmt.Errorf("fixture: compressing %s: %w", path, err)
		}
		if err := zw.Close(); err != nil {
			return fmt.Errorf("fixture: compressing %s: %w", path, err)
		}
		data = buf.Bytes()
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("fixture: writing %s: %w", path, err)
	}
	return nil
}

// Load reads, schema-validates, and decodes a fixture.
func Load(path string) (models.TestCaseSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("fixture: reading %s: %w", path, err)
	}

	if strings.HasSuffix(path, ".gz") {
		zr, err := gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("fixture: decompressing %s: %w", path, err)
		}
		data, err = io.ReadAll(zr)
		if err != nil {
			return nil, fmt.Errorf("fixture: decompressing %s: %w", path, err)
		}
		if err := zr.Close(); err != nil {
			return nil, fmt.Errorf("fixture: decompressing %s: %w", path, err)
		}
	}

	schema, err := compileSchema()
	if err != nil {
		return nil, err
	}
	instance, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("fixture: parsing %s: %w", path, err)
	}
	if err := schema.Validate(instance); err != nil {
		return nil, fmt.Errorf("fixture: %s does not match the fixture schema: %w", path, err)
	}

	var set models.TestCaseSet
	if err := json.Unmarshal(data, &set); err != nil {
		return nil, fmt.Errorf("fixture: decoding %s: %w", path, err)
	}
	if len(set) == 0 {
		return nil, fmt.Errorf("fixture: %s contains no test cases", path)
	}
	return set, nil
}
