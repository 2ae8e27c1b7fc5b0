package rules

import (
	"fmt"
	"log/slog"

	"github.com/nstehr/harvest/model"
)

// RoleBuckets holds owned unit ids grouped by role, in the order the units
// appear in the snapshot's owned list. Position matters: slot 0 of the
// workers bucket is the builder, slots 0..2 get the routine harvest tasks.
type RoleBuckets struct {
	Workers        []int
	CommandCenters []int
	Farms          []int
	Barracks       []int
	CombatUnits    []int
	Unknown        []int
}

func (b *RoleBuckets) bucket(r model.Role) *[]int {
	switch r {
	case model.RoleWorker:
		return &b.Workers
	case model.RoleCommandCenter:
		return &b.CommandCenters
	case model.RoleFarm:
		return &b.Farms
	case model.RoleBarracks:
		return &b.Barracks
	case model.RoleCombat:
		return &b.CombatUnits
	}
	return &b.Unknown
}

func (b RoleBuckets) Count(r model.Role) int {
	return len(*b.bucket(r))
}

// Slot returns the i-th unit of role r, or false when the bucket is shorter.
func (b RoleBuckets) Slot(r model.Role, i int) (int, bool) {
	ids := *b.bucket(r)
	if i < 0 || i >= len(ids) {
		return 0, false
	}
	return ids[i], true
}

func (b RoleBuckets) First(r model.Role) (int, bool) {
	return b.Slot(r, 0)
}

// Classification is the per-tick result of partitioning the world.
type Classification struct {
	Buckets RoleBuckets
	Enemies []int // world order
	enemy   map[int]bool
}

func (c Classification) IsEnemy(id int) bool { return c.enemy[id] }

// FirstEnemy is the fixed attack target: the first enemy in world order.
func (c Classification) FirstEnemy() (int, bool) {
	if len(c.Enemies) == 0 {
		return 0, false
	}
	return c.Enemies[0], true
}

// Classify partitions the controller's units into role buckets and derives
// the enemy set as every world unit that is not owned. It does not modify
// the view.
func Classify(view model.StateView) (Classification, error) {
	var c Classification

	owned := view.OwnedUnitIDs()
	ownedSet := make(map[int]bool, len(owned))
	for _, id := range owned {
		ownedSet[id] = true
		u, ok := view.Unit(id)
		if !ok {
			return Classification{}, fmt.Errorf("%w: owned unit %d not found", model.ErrMalformedSnapshot, id)
		}
		role := model.ParseRole(u.TypeName())
		if role == model.RoleUnknown {
			slog.Debug("unrecognized unit type", "id", id, "type", u.TypeName())
		}
		bucket := c.Buckets.bucket(role)
		*bucket = append(*bucket, id)
	}

	c.enemy = make(map[int]bool)
	for _, id := range view.AllUnitIDs() {
		if !ownedSet[id] {
			c.Enemies = append(c.Enemies, id)
			c.enemy[id] = true
		}
	}
	return c, nil
}
