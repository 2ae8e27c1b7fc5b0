package rules

import (
	"testing"

	"github.com/nstehr/harvest/model"
)

// Template ids handed out by testWorld.
const (
	tplPeasant  = 100
	tplFarm     = 101
	tplBarracks = 102
	tplFootman  = 103
)

// testWorld builds snapshots for rule tests. Ids are allocated in call
// order so bucket positions follow the order units are added.
type testWorld struct {
	snap   model.Snapshot
	nextID int
}

func newTestWorld(gold, wood int) *testWorld {
	return &testWorld{
		snap: model.Snapshot{
			Gold: gold,
			Wood: wood,
			Templates: map[string]int{
				model.Peasant:  tplPeasant,
				model.Farm:     tplFarm,
				model.Barracks: tplBarracks,
				model.Footman:  tplFootman,
			},
		},
		nextID: 1,
	}
}

func (w *testWorld) own(typ string) int {
	return w.ownCarrying(typ, "", 0)
}

func (w *testWorld) ownCarrying(typ string, cargo model.ResourceType, amount int) int {
	id := w.nextID
	w.nextID++
	w.snap.Units = append(w.snap.Units, model.Unit{ID: id, Type: typ, CargoType: cargo, CargoAmount: amount})
	w.snap.OwnedIDs = append(w.snap.OwnedIDs, id)
	w.snap.AllIDs = append(w.snap.AllIDs, id)
	return id
}

func (w *testWorld) enemy() int {
	id := w.nextID
	w.nextID++
	w.snap.AllIDs = append(w.snap.AllIDs, id)
	return id
}

func (w *testWorld) node(t model.NodeType) int {
	id := w.nextID
	w.nextID++
	w.snap.ResourceNodes = append(w.snap.ResourceNodes, model.ResourceNode{ID: id, Type: t, Amount: 1000})
	return id
}

// growthBase returns a world with a town hall, three empty-handed workers
// and one node of each type.
func growthBase(gold, wood int) (w *testWorld, hall int, workers []int, mine, tree int) {
	w = newTestWorld(gold, wood)
	hall = w.own(model.TownHall)
	for i := 0; i < 3; i++ {
		workers = append(workers, w.own(model.Peasant))
	}
	mine = w.node(model.GoldMine)
	tree = w.node(model.Tree)
	return w, hall, workers, mine, tree
}

func mustEngine(t *testing.T) *Engine {
	t.Helper()
	p := DefaultPolicy()
	e, err := NewEngine(CompileStrategy(p), p)
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	return e
}
