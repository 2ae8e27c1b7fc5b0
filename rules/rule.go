package rules

import (
	"github.com/expr-lang/expr/vm"
	"github.com/nstehr/harvest/model"
)

// ActionFunc writes a rule's commands into the tick's batch when its
// condition holds. Returning an error wrapping model.ErrMissingEntity or
// model.ErrInsufficientUnits skips the rule and lets evaluation fall
// through to the next one; an action must resolve every lookup before it
// writes anything.
type ActionFunc func(env RuleEnv, out *model.Assignment) error

// Rule is the atomic unit of controller behavior: a condition → action pair.
// The engine evaluates rules by priority and uses Category + Exclusive so
// that only one macro decision is made per tick.
type Rule struct {
	Name         string      // human-readable identifier
	Priority     int         // higher = evaluated first
	Category     string      // grouping for exclusive semantics
	Exclusive    bool        // if true, blocks lower-priority rules in same category once it succeeds
	ConditionSrc string      // expr source (preserved for serialization)
	program      *vm.Program // compiled bytecode
	Action       ActionFunc
}
