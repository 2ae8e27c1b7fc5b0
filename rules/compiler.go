package rules

import "fmt"

// CategoryMacro groups the build-order rules; only one of them acts per tick.
const CategoryMacro = "macro"

// CompileStrategy generates the build-order rule set from a policy.
// Conditions are built via fmt.Sprintf with interpolated thresholds, so the
// compiler never generates invalid expr.
func CompileStrategy(p Policy) []*Rule {
	p.Validate()
	var rules []*Rule

	// --- Expansion: reach the worker target ---

	rules = append(rules, &Rule{
		Name:         "produce-worker",
		Priority:     1000,
		Category:     CategoryMacro,
		Exclusive:    true,
		ConditionSrc: fmt.Sprintf(`WorkerCount() < %d && Gold() >= %d`, p.WorkerTarget, p.WorkerGold),
		Action:       ActionProduceWorker,
	})

	rules = append(rules, &Rule{
		Name:         "expansion-harvest",
		Priority:     900,
		Category:     CategoryMacro,
		Exclusive:    true,
		ConditionSrc: fmt.Sprintf(`WorkerCount() < %d`, p.WorkerTarget),
		Action:       ActionExpansionHarvest,
	})

	// --- Growth: farm → barracks → army ---

	rules = append(rules, &Rule{
		Name:         "build-farm",
		Priority:     800,
		Category:     CategoryMacro,
		Exclusive:    true,
		ConditionSrc: fmt.Sprintf(`WorkerCount() >= %d && FarmCount() == 0 && Gold() >= %d && Wood() >= %d`, p.WorkerTarget, p.FarmGold, p.FarmWood),
		Action:       ActionBuildFarm,
	})

	rules = append(rules, &Rule{
		Name:         "build-barracks",
		Priority:     700,
		Category:     CategoryMacro,
		Exclusive:    true,
		ConditionSrc: fmt.Sprintf(`WorkerCount() >= %d && BarracksCount() == 0 && Gold() >= %d && Wood() >= %d`, p.WorkerTarget, p.BarracksGold, p.BarracksWood),
		Action:       ActionBuildBarracks,
	})

	rules = append(rules, &Rule{
		Name:         "produce-combat-unit",
		Priority:     600,
		Category:     CategoryMacro,
		Exclusive:    true,
		ConditionSrc: fmt.Sprintf(`WorkerCount() >= %d && BarracksCount() > 0 && CombatUnitCount() < %d && Gold() >= %d`, p.WorkerTarget, p.CombatTarget, p.CombatGold),
		Action:       ActionProduceCombatUnit,
	})

	// --- Routine: attack and harvest ---

	rules = append(rules, &Rule{
		Name:         "routine",
		Priority:     100,
		Category:     CategoryMacro,
		Exclusive:    true,
		ConditionSrc: fmt.Sprintf(`WorkerCount() >= %d`, p.WorkerTarget),
		Action:       ActionRoutine,
	})

	return rules
}
