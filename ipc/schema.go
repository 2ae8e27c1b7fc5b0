package ipc

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/nstehr/harvest/model"
)

//go:embed schemas/snapshot.schema.json
var snapshotSchemaSrc string

var snapshotSchema = jsonschema.MustCompileString("snapshot.schema.json", snapshotSchemaSrc)

// DecodeSnapshot validates a state payload against the snapshot schema and
// decodes it. Shape errors and structural invariant violations both wrap
// model.ErrMalformedSnapshot.
func DecodeSnapshot(raw json.RawMessage) (model.Snapshot, error) {
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return model.Snapshot{}, fmt.Errorf("%w: %v", model.ErrMalformedSnapshot, err)
	}
	if err := snapshotSchema.Validate(doc); err != nil {
		return model.Snapshot{}, fmt.Errorf("%w: %v", model.ErrMalformedSnapshot, err)
	}

	var snap model.Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return model.Snapshot{}, fmt.Errorf("%w: %v", model.ErrMalformedSnapshot, err)
	}
	if err := snap.Validate(); err != nil {
		return model.Snapshot{}, err
	}
	return snap, nil
}
