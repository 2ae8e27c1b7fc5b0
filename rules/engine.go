package rules

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/nstehr/harvest/model"
)

// diagnosticInterval throttles the idle diagnostics to one dump per N ticks.
const diagnosticInterval = 100

// Tick is the per-call context threaded through classification, rule
// selection and task assignment. The engine keeps nothing from it.
type Tick struct {
	Number int
	State  model.StateView
}

// Engine runs compiled rules against the world each tick.
// Rules fire in priority order; an exclusive rule that acts blocks
// lower-priority rules in the same category.
type Engine struct {
	mu         sync.RWMutex
	rules      []*Rule
	policy     Policy
	selectNode NodeSelector
}

// NewEngine compiles all rule conditions into expr bytecode and sorts by priority.
func NewEngine(rules []*Rule, p Policy) (*Engine, error) {
	p.Validate()
	compiled, err := compileRules(rules)
	if err != nil {
		return nil, err
	}
	return &Engine{
		rules:      compiled,
		policy:     p,
		selectNode: FirstNode,
	}, nil
}

// Evaluate produces the action batch for one tick. Only a malformed
// snapshot fails the tick; rules that cannot act are skipped and units
// whose task cannot be resolved are omitted, both recorded in the Report.
func (e *Engine) Evaluate(t Tick) (*model.Assignment, Report, error) {
	e.mu.RLock()
	rules := e.rules
	policy := e.policy
	sel := e.selectNode
	e.mu.RUnlock()

	if t.State == nil {
		return nil, Report{Tick: t.Number}, fmt.Errorf("%w: nil state", model.ErrMalformedSnapshot)
	}
	if v, ok := t.State.(interface{ Validate() error }); ok {
		if err := v.Validate(); err != nil {
			return nil, Report{Tick: t.Number}, err
		}
	}

	class, err := Classify(t.State)
	if err != nil {
		return nil, Report{Tick: t.Number}, fmt.Errorf("classify: %w", err)
	}

	report := Report{
		Tick:    t.Number,
		Phase:   PhaseOf(class.Buckets.Count(model.RoleWorker), policy.WorkerTarget),
		Unknown: class.Buckets.Unknown,
	}
	out := model.NewAssignment(t.State.OwnedUnitIDs())
	env := RuleEnv{
		Tick:   t.Number,
		State:  t.State,
		Class:  class,
		Policy: policy,
		Select: sel,
		report: &report,
	}
	fired := make(map[string]bool) // category → exclusive rule already acted

	for _, r := range rules {
		if fired[r.Category] {
			continue
		}

		result, err := vm.Run(r.program, env)
		if err != nil {
			slog.Warn("rule condition error", "rule", r.Name, "error", err)
			continue
		}

		match, ok := result.(bool)
		if !ok || !match {
			continue
		}

		if err := r.Action(env, out); err != nil {
			report.skip(r.Name, err)
			if errors.Is(err, model.ErrMissingEntity) || errors.Is(err, model.ErrInsufficientUnits) {
				slog.Debug("rule skipped", "rule", r.Name, "tick", t.Number, "reason", err)
			} else {
				slog.Error("rule action error", "rule", r.Name, "tick", t.Number, "error", err)
			}
			continue
		}

		report.Fired = append(report.Fired, r.Name)
		slog.Debug("rule fired", "rule", r.Name, "priority", r.Priority, "category", r.Category)

		if r.Exclusive {
			fired[r.Category] = true
		}
	}

	if len(report.Fired) == 0 {
		logIdleDiagnostics(env)
	}

	return out, report, nil
}

// Swap atomically replaces the rule set and policy (called when the policy
// file is reloaded). Compiles first; if compilation fails the old rules
// remain active.
func (e *Engine) Swap(newRules []*Rule, p Policy) error {
	p.Validate()
	compiled, err := compileRules(newRules)
	if err != nil {
		return err
	}
	names := make([]string, len(compiled))
	for i, r := range compiled {
		names[i] = r.Name
	}
	e.mu.Lock()
	e.rules = compiled
	e.policy = p
	e.mu.Unlock()
	slog.Info("rule set swapped", "count", len(compiled), "rules", names)
	return nil
}

// SetNodeSelector replaces the gather-target choice. nil restores FirstNode.
func (e *Engine) SetNodeSelector(sel NodeSelector) {
	if sel == nil {
		sel = FirstNode
	}
	e.mu.Lock()
	e.selectNode = sel
	e.mu.Unlock()
}

func (e *Engine) Policy() Policy {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.policy
}

// logIdleDiagnostics helps debug "why isn't the controller doing anything?".
// Throttled by tick number to avoid log spam.
func logIdleDiagnostics(env RuleEnv) {
	if env.Tick%diagnosticInterval != 0 {
		return
	}
	slog.Warn("idle diagnostics",
		"tick", env.Tick,
		"phase", env.Phase(),
		"gold", env.Gold(),
		"wood", env.Wood(),
		"workers", env.WorkerCount(),
		"commandCenters", env.CommandCenterCount(),
		"farms", env.FarmCount(),
		"barracks", env.BarracksCount(),
		"combatUnits", env.CombatUnitCount(),
		"enemies", env.EnemyCount(),
	)
}

func compileRules(rules []*Rule) ([]*Rule, error) {
	for _, r := range rules {
		if r.Action == nil {
			return nil, fmt.Errorf("compile rule %q: no action", r.Name)
		}
		prog, err := expr.Compile(r.ConditionSrc, expr.Env(RuleEnv{}), expr.AsBool())
		if err != nil {
			return nil, fmt.Errorf("compile rule %q: %w", r.Name, err)
		}
		r.program = prog
	}
	sort.SliceStable(rules, func(i, j int) bool {
		return rules[i].Priority > rules[j].Priority
	})
	return rules, nil
}
