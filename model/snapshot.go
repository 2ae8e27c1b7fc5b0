package model

import (
	"fmt"
	"slices"
)

// ResourceType names a harvestable resource carried by workers and
// accumulated by the player.
type ResourceType string

const (
	Gold ResourceType = "GOLD"
	Wood ResourceType = "WOOD"
)

// NodeType names a kind of resource node on the map.
type NodeType string

const (
	Tree     NodeType = "TREE"
	GoldMine NodeType = "GOLD_MINE"
)

// NodeFor returns the node type that yields r.
func NodeFor(r ResourceType) NodeType {
	if r == Wood {
		return Tree
	}
	return GoldMine
}

// StateView is the read-only view of the world the simulator hands the
// controller each tick. Snapshot is the wire-backed implementation; tests
// and embedders can supply their own.
type StateView interface {
	ResourceAmount(r ResourceType) int
	OwnedUnitIDs() []int
	AllUnitIDs() []int
	Unit(id int) (Unit, bool)
	ResourceNodeIDs(t NodeType) []int
	TemplateID(name string) (int, bool)
}

type Snapshot struct {
	Tick          int            `json:"tick"`
	Player        int            `json:"player"`
	Gold          int            `json:"gold"`
	Wood          int            `json:"wood"`
	OwnedIDs      []int          `json:"ownedUnitIds"`
	AllIDs        []int          `json:"allUnitIds"`
	Units         []Unit         `json:"units"`
	ResourceNodes []ResourceNode `json:"resourceNodes"`
	Templates     map[string]int `json:"templates"`
}

type Unit struct {
	ID          int          `json:"id"`
	Type        string       `json:"type"`
	CargoType   ResourceType `json:"cargoType,omitempty"`
	CargoAmount int          `json:"cargoAmount"`
}

func (u Unit) TypeName() string { return u.Type }

// Carrying reports whether the unit holds more than threshold of r.
func (u Unit) Carrying(r ResourceType, threshold int) bool {
	return u.CargoType == r && u.CargoAmount > threshold
}

type ResourceNode struct {
	ID     int      `json:"id"`
	Type   NodeType `json:"type"`
	Amount int      `json:"amount"`
}

func (s Snapshot) ResourceAmount(r ResourceType) int {
	switch r {
	case Gold:
		return s.Gold
	case Wood:
		return s.Wood
	}
	return 0
}

func (s Snapshot) OwnedUnitIDs() []int { return slices.Clone(s.OwnedIDs) }

func (s Snapshot) AllUnitIDs() []int { return slices.Clone(s.AllIDs) }

func (s Snapshot) Unit(id int) (Unit, bool) {
	for _, u := range s.Units {
		if u.ID == id {
			return u, true
		}
	}
	return Unit{}, false
}

// ResourceNodeIDs lists nodes of type t in snapshot order.
func (s Snapshot) ResourceNodeIDs(t NodeType) []int {
	var out []int
	for _, n := range s.ResourceNodes {
		if n.Type == t {
			out = append(out, n.ID)
		}
	}
	return out
}

func (s Snapshot) TemplateID(name string) (int, bool) {
	id, ok := s.Templates[name]
	return id, ok
}

// Validate checks the structural invariants the decision logic relies on.
// Failures wrap ErrMalformedSnapshot.
func (s Snapshot) Validate() error {
	if s.Gold < 0 || s.Wood < 0 {
		return fmt.Errorf("%w: negative resource totals (gold=%d wood=%d)", ErrMalformedSnapshot, s.Gold, s.Wood)
	}

	units := make(map[int]bool, len(s.Units))
	for _, u := range s.Units {
		if units[u.ID] {
			return fmt.Errorf("%w: duplicate unit %d", ErrMalformedSnapshot, u.ID)
		}
		if u.CargoAmount < 0 {
			return fmt.Errorf("%w: unit %d has negative cargo", ErrMalformedSnapshot, u.ID)
		}
		units[u.ID] = true
	}

	world := make(map[int]bool, len(s.AllIDs))
	for _, id := range s.AllIDs {
		if world[id] {
			return fmt.Errorf("%w: duplicate world unit id %d", ErrMalformedSnapshot, id)
		}
		world[id] = true
	}

	owned := make(map[int]bool, len(s.OwnedIDs))
	for _, id := range s.OwnedIDs {
		if owned[id] {
			return fmt.Errorf("%w: duplicate owned unit id %d", ErrMalformedSnapshot, id)
		}
		owned[id] = true
		if !world[id] {
			return fmt.Errorf("%w: owned unit %d missing from world", ErrMalformedSnapshot, id)
		}
		if !units[id] {
			return fmt.Errorf("%w: owned unit %d has no attributes", ErrMalformedSnapshot, id)
		}
	}
	return nil
}
