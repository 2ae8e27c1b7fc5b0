package rules

import (
	"fmt"
	"log/slog"

	"github.com/nstehr/harvest/model"
)

// NodeSelector picks the resource node of type t that workerID should
// gather from. It returns false when no node is available.
type NodeSelector func(view model.StateView, t model.NodeType, workerID int) (int, bool)

// FirstNode picks the first node of the type in snapshot order. There is no
// load balancing: every worker of a type goes to the same node.
func FirstNode(view model.StateView, t model.NodeType, _ int) (int, bool) {
	ids := view.ResourceNodeIDs(t)
	if len(ids) == 0 {
		return 0, false
	}
	return ids[0], true
}

// harvestTask resolves the gather or deposit action for one worker.
func harvestTask(env RuleEnv, workerID int, slot Slot) (model.Action, error) {
	u, ok := env.State.Unit(workerID)
	if !ok {
		return model.Action{}, fmt.Errorf("%w: worker %d", model.ErrMissingEntity, workerID)
	}

	if slot.ShouldDeposit(u) {
		depot, ok := env.Class.Buckets.First(model.RoleCommandCenter)
		if !ok {
			return model.Action{}, fmt.Errorf("%w: no command center to deposit at", model.ErrMissingEntity)
		}
		return model.Deposit(workerID, depot), nil
	}

	nodeType := model.NodeFor(slot.Gather)
	node, ok := env.selectNode(nodeType, workerID)
	if !ok {
		return model.Action{}, fmt.Errorf("%w: no %s node", model.ErrMissingEntity, nodeType)
	}
	return model.Gather(workerID, node), nil
}

// AssignRoutineHarvest hands each configured worker slot its gather/deposit
// task. Slots are bound to bucket positions, not to whichever worker happens
// to be idle. Workers that already hold an action this tick are left alone;
// a worker whose task cannot be resolved is omitted and the rest continue.
func AssignRoutineHarvest(env RuleEnv, out *model.Assignment) {
	for i, slot := range env.Policy.RoutineSlots {
		id, ok := env.Class.Buckets.Slot(model.RoleWorker, i)
		if !ok {
			slog.Debug("routine slot unfilled", "tick", env.Tick, "slot", i, "reason", model.ErrInsufficientUnits)
			continue
		}
		if out.Has(id) {
			continue
		}
		act, err := harvestTask(env, id, slot)
		if err != nil {
			env.omit(id, err)
			continue
		}
		if err := out.Put(act); err != nil {
			env.omit(id, err)
		}
	}
}

// AssignAttacks sends every combat unit at the first enemy once the army
// reaches its target size. Target choice is fixed, not tactical.
func AssignAttacks(env RuleEnv, out *model.Assignment) {
	if env.CombatUnitCount() < env.Policy.CombatTarget {
		return
	}
	target, hasTarget := env.Class.FirstEnemy()
	if hasTarget {
		slog.Info("attacking enemies", "tick", env.Tick, "units", env.CombatUnitCount(), "target", target)
	}
	for _, id := range env.Class.Buckets.CombatUnits {
		if out.Has(id) {
			continue
		}
		if !hasTarget {
			env.omit(id, fmt.Errorf("%w: no enemy to attack", model.ErrMissingEntity))
			continue
		}
		if err := out.Put(model.Attack(id, target)); err != nil {
			env.omit(id, err)
		}
	}
}
