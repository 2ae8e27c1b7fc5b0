package ipc

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/nstehr/harvest/model"
)

const validState = `{
  "tick": 4,
  "player": 0,
  "gold": 120,
  "wood": 30,
  "ownedUnitIds": [1, 2],
  "allUnitIds": [1, 2, 3],
  "units": [
    {"id": 1, "type": "TownHall"},
    {"id": 2, "type": "Peasant", "cargoType": "GOLD", "cargoAmount": 10}
  ],
  "resourceNodes": [{"id": 7, "type": "GOLD_MINE", "amount": 5000}],
  "templates": {"Peasant": 11}
}`

func TestDecodeSnapshot(t *testing.T) {
	snap, err := DecodeSnapshot(json.RawMessage(validState))
	if err != nil {
		t.Fatalf("DecodeSnapshot: %v", err)
	}
	if snap.Tick != 4 || snap.Gold != 120 || len(snap.Units) != 2 {
		t.Errorf("decoded = %+v", snap)
	}
	u, ok := snap.Unit(2)
	if !ok || u.CargoType != model.Gold || u.CargoAmount != 10 {
		t.Errorf("unit 2 = %+v", u)
	}
	if ids := snap.ResourceNodeIDs(model.GoldMine); len(ids) != 1 || ids[0] != 7 {
		t.Errorf("gold mines = %v", ids)
	}
}

func TestDecodeSnapshotRejectsMalformed(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not json", `{"tick":`},
		{"missing units", `{"tick":1,"gold":0,"wood":0,"ownedUnitIds":[],"allUnitIds":[]}`},
		{"negative gold", `{"tick":1,"gold":-1,"wood":0,"ownedUnitIds":[],"allUnitIds":[],"units":[]}`},
		{"string id", `{"tick":1,"gold":0,"wood":0,"ownedUnitIds":["a"],"allUnitIds":[],"units":[]}`},
		{"unknown node type", `{"tick":1,"gold":0,"wood":0,"ownedUnitIds":[],"allUnitIds":[],"units":[],"resourceNodes":[{"id":1,"type":"STONE"}]}`},
		{"owned without unit", `{"tick":1,"gold":0,"wood":0,"ownedUnitIds":[1],"allUnitIds":[1],"units":[]}`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := DecodeSnapshot(json.RawMessage(tc.raw))
			if !errors.Is(err, model.ErrMalformedSnapshot) {
				t.Errorf("err = %v, want ErrMalformedSnapshot", err)
			}
		})
	}
}
