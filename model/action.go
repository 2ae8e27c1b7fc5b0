package model

import "fmt"

type ActionKind string

const (
	ActionBuild   ActionKind = "build"
	ActionProduce ActionKind = "produce"
	ActionGather  ActionKind = "gather"
	ActionDeposit ActionKind = "deposit"
	ActionAttack  ActionKind = "attack"
)

// Action is a single unit-level command. TargetID depends on Kind: a
// template for build/produce, a resource node for gather, a depot for
// deposit, an enemy unit for attack.
type Action struct {
	Kind     ActionKind `json:"kind"`
	UnitID   int        `json:"unitId"`
	TargetID int        `json:"targetId"`
}

func Build(builderID, templateID int) Action {
	return Action{Kind: ActionBuild, UnitID: builderID, TargetID: templateID}
}

func Produce(producerID, templateID int) Action {
	return Action{Kind: ActionProduce, UnitID: producerID, TargetID: templateID}
}

func Gather(unitID, nodeID int) Action {
	return Action{Kind: ActionGather, UnitID: unitID, TargetID: nodeID}
}

func Deposit(unitID, depotID int) Action {
	return Action{Kind: ActionDeposit, UnitID: unitID, TargetID: depotID}
}

func Attack(unitID, targetID int) Action {
	return Action{Kind: ActionAttack, UnitID: unitID, TargetID: targetID}
}

func (a Action) String() string {
	return fmt.Sprintf("%s(%d, %d)", a.Kind, a.UnitID, a.TargetID)
}

// Assignment is the action batch for one tick: at most one action per owned
// unit. Insertion order is preserved so batches are deterministic.
type Assignment struct {
	owned   map[int]bool
	order   []int
	actions map[int]Action
}

// NewAssignment binds an empty batch to the tick's owned units.
func NewAssignment(owned []int) *Assignment {
	a := &Assignment{
		owned:   make(map[int]bool, len(owned)),
		actions: make(map[int]Action),
	}
	for _, id := range owned {
		a.owned[id] = true
	}
	return a
}

// Put records act for its unit. A second action for the same unit or an
// action for a unit the controller does not own is rejected.
func (a *Assignment) Put(act Action) error {
	if !a.owned[act.UnitID] {
		return fmt.Errorf("%w: %s", ErrUnownedUnit, act)
	}
	if prev, ok := a.actions[act.UnitID]; ok {
		return fmt.Errorf("%w: %s conflicts with %s", ErrDuplicateAssignment, act, prev)
	}
	a.actions[act.UnitID] = act
	a.order = append(a.order, act.UnitID)
	return nil
}

func (a *Assignment) Get(unitID int) (Action, bool) {
	act, ok := a.actions[unitID]
	return act, ok
}

func (a *Assignment) Has(unitID int) bool {
	_, ok := a.actions[unitID]
	return ok
}

func (a *Assignment) Len() int { return len(a.order) }

// Actions returns the batch in insertion order.
func (a *Assignment) Actions() []Action {
	out := make([]Action, 0, len(a.order))
	for _, id := range a.order {
		out = append(out, a.actions[id])
	}
	return out
}
