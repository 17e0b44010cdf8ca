/*
Package save is the persisted-state boundary.

PURPOSE:
  The engine consumes and produces a single serializable state value; this
  package encodes it to JSON and, more importantly, validates imports BEFORE
  the engine ever sees them. A payload missing required top-level sections,
  or whose resource fields are not numeric, is rejected as a whole - the
  engine never operates on partial data.

DESIGN:
  Validation is a JSON Schema (schema.json, embedded) compiled once at
  package init. Schema failure, JSON failure, anything - the caller gets
  core.ErrInvalidSave and no state. Save-file obfuscation is out of scope;
  this boundary is shape-checking, not security.
*/
package save

import (
	"bytes"
	"encoding/json"
	"fmt"

	_ "embed"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/warp/hangar-engine/core"
)

//go:embed schema.json
var schemaJSON string

var schema = jsonschema.MustCompileString("save/schema.json", schemaJSON)

// Encode serializes a state for persistence.
func Encode(st core.State) ([]byte, error) {
	return json.Marshal(st)
}

// Decode validates and deserializes a persisted payload. Any defect yields
// core.ErrInvalidSave; there is no partial import.
func Decode(data []byte) (core.State, error) {
	var raw any
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil {
		return core.State{}, fmt.Errorf("%w: %v", core.ErrInvalidSave, err)
	}
	if err := schema.Validate(raw); err != nil {
		return core.State{}, fmt.Errorf("%w: %v", core.ErrInvalidSave, err)
	}

	var st core.State
	if err := json.Unmarshal(data, &st); err != nil {
		return core.State{}, fmt.Errorf("%w: %v", core.ErrInvalidSave, err)
	}
	if st.Inventory == nil {
		st.Inventory = core.Inventory{}
	}
	if st.Flags == nil {
		st.Flags = map[string]bool{}
	}
	if st.Proficiency == nil {
		st.Proficiency = map[string]int{}
	}
	if st.Ledger.Materials == nil {
		st.Ledger.Materials = map[string]int{}
	}
	return st, nil
}
