package model

import (
	"errors"
	"testing"
)

func TestAssignmentPut(t *testing.T) {
	a := NewAssignment([]int{1, 2, 3})

	if err := a.Put(Gather(2, 20)); err != nil {
		t.Fatalf("Put gather: %v", err)
	}
	if err := a.Put(Deposit(1, 3)); err != nil {
		t.Fatalf("Put deposit: %v", err)
	}

	err := a.Put(Attack(2, 9))
	if !errors.Is(err, ErrDuplicateAssignment) {
		t.Errorf("second action for unit 2: got %v, want ErrDuplicateAssignment", err)
	}
	if got, _ := a.Get(2); got != Gather(2, 20) {
		t.Errorf("first action overwritten: %v", got)
	}

	if err := a.Put(Attack(9, 1)); !errors.Is(err, ErrUnownedUnit) {
		t.Errorf("unowned unit: got %v, want ErrUnownedUnit", err)
	}

	if a.Len() != 2 {
		t.Errorf("Len() = %d, want 2", a.Len())
	}
	if !a.Has(1) || a.Has(3) {
		t.Error("Has reports wrong membership")
	}

	acts := a.Actions()
	if len(acts) != 2 || acts[0].UnitID != 2 || acts[1].UnitID != 1 {
		t.Errorf("Actions() not in insertion order: %v", acts)
	}
}

func TestActionConstructors(t *testing.T) {
	tests := []struct {
		act  Action
		kind ActionKind
		str  string
	}{
		{Build(1, 10), ActionBuild, "build(1, 10)"},
		{Produce(2, 11), ActionProduce, "produce(2, 11)"},
		{Gather(3, 12), ActionGather, "gather(3, 12)"},
		{Deposit(4, 13), ActionDeposit, "deposit(4, 13)"},
		{Attack(5, 14), ActionAttack, "attack(5, 14)"},
	}
	for _, tc := range tests {
		if tc.act.Kind != tc.kind {
			t.Errorf("%v: kind = %s, want %s", tc.act, tc.act.Kind, tc.kind)
		}
		if tc.act.String() != tc.str {
			t.Errorf("String() = %q, want %q", tc.act.String(), tc.str)
		}
	}
}

func TestNodeFor(t *testing.T) {
	if NodeFor(Gold) != GoldMine {
		t.Error("gold should come from gold mines")
	}
	if NodeFor(Wood) != Tree {
		t.Error("wood should come from trees")
	}
}
