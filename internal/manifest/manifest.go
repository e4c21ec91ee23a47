// Package manifest describes the puzzle set: each day's input file and,
// optionally, the expected answers for verification. The JSON document is
// validated against an embedded schema before use.
package manifest

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

type Manifest struct {
	Puzzles []Puzzle `json:"puzzles"`
}

type Puzzle struct {
	Day   int    `json:"day"`
	Input string `json:"input"`

	Part1 *int64 `json:"part1,omitempty"`
	Part2 *int64 `json:"part2,omitempty"`
}

const schemaJSON = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["puzzles"],
  "additionalProperties": false,
  "properties": {
    "puzzles": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["day", "input"],
        "additionalProperties": false,
        "properties": {
          "day": {"type": "integer", "minimum": 1, "maximum": 25},
          "input": {"type": "string", "minLength": 1},
          "part1": {"type": "integer"},
          "part2": {"type": "integer"}
        }
      }
    }
  }
}`

func compileSchema() (*jsonschema.Schema, error) {
	c := jsonschema.NewCompiler()
	if err := c.AddResource("puzzles.schema.json", strings.NewReader(schemaJSON)); err != nil {
		return nil, err
	}
	return c.Compile("puzzles.schema.json")
}

// Parse validates and decodes a manifest document.
func Parse(raw []byte) (Manifest, error) {
	var m Manifest

	sch, err := compileSchema()
	if err != nil {
		return m, fmt.Errorf("manifest schema: %w", err)
	}

	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return m, fmt.Errorf("manifest: %w", err)
	}
	if err := sch.Validate(doc); err != nil {
		return m, fmt.Errorf("manifest: %w", err)
	}

	if err := json.Unmarshal(raw, &m); err != nil {
		return m, err
	}
	return m, nil
}

func Load(path string) (Manifest, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Manifest{}, err
	}
	return Parse(raw)
}
