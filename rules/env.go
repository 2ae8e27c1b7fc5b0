package rules

import (
	"log/slog"

	"github.com/nstehr/harvest/model"
)

// RuleEnv wraps one tick's state and exposes helper methods callable from
// expr expressions. It is rebuilt every tick; nothing in it survives to
// the next one.
type RuleEnv struct {
	Tick   int
	State  model.StateView
	Class  Classification
	Policy Policy
	Select NodeSelector

	report *Report
}

func (e RuleEnv) Gold() int { return e.State.ResourceAmount(model.Gold) }
func (e RuleEnv) Wood() int { return e.State.ResourceAmount(model.Wood) }

func (e RuleEnv) WorkerCount() int        { return e.Class.Buckets.Count(model.RoleWorker) }
func (e RuleEnv) CommandCenterCount() int { return e.Class.Buckets.Count(model.RoleCommandCenter) }
func (e RuleEnv) FarmCount() int          { return e.Class.Buckets.Count(model.RoleFarm) }
func (e RuleEnv) BarracksCount() int      { return e.Class.Buckets.Count(model.RoleBarracks) }
func (e RuleEnv) CombatUnitCount() int    { return e.Class.Buckets.Count(model.RoleCombat) }
func (e RuleEnv) EnemyCount() int         { return len(e.Class.Enemies) }

// RoleCount counts owned units of a logical role ("worker", "farm", ...).
func (e RuleEnv) RoleCount(name string) int {
	r := model.RoleByName(name)
	if r == model.RoleUnknown {
		return 0
	}
	return e.Class.Buckets.Count(r)
}

func (e RuleEnv) HasRole(name string) bool {
	return e.RoleCount(name) > 0
}

func (e RuleEnv) Phase() string {
	return PhaseOf(e.WorkerCount(), e.Policy.WorkerTarget).String()
}

func (e RuleEnv) selectNode(t model.NodeType, workerID int) (int, bool) {
	sel := e.Select
	if sel == nil {
		sel = FirstNode
	}
	return sel(e.State, t, workerID)
}

// omit records a unit that gets no action this tick.
func (e RuleEnv) omit(unitID int, err error) {
	slog.Warn("unit left without action", "tick", e.Tick, "unit", unitID, "reason", err)
	if e.report != nil {
		e.report.omit(unitID, err)
	}
}
