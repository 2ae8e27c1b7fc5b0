package rules

import (
	"fmt"
	"log/slog"

	"github.com/nstehr/harvest/model"
)

func ActionProduceWorker(env RuleEnv, out *model.Assignment) error {
	return produceAt(env, out, model.RoleCommandCenter, env.Policy.Templates.Worker)
}

func ActionProduceCombatUnit(env RuleEnv, out *model.Assignment) error {
	return produceAt(env, out, model.RoleBarracks, env.Policy.Templates.Combat)
}

func ActionBuildFarm(env RuleEnv, out *model.Assignment) error {
	return buildWithFirstWorker(env, out, env.Policy.Templates.Farm)
}

func ActionBuildBarracks(env RuleEnv, out *model.Assignment) error {
	return buildWithFirstWorker(env, out, env.Policy.Templates.Barracks)
}

// ActionExpansionHarvest keeps the lone early worker alternating between the
// gold mine and the command center.
func ActionExpansionHarvest(env RuleEnv, out *model.Assignment) error {
	id, ok := env.Class.Buckets.First(model.RoleWorker)
	if !ok {
		return fmt.Errorf("%w: no worker", model.ErrInsufficientUnits)
	}
	act, err := harvestTask(env, id, env.Policy.ExpansionSlot)
	if err != nil {
		return err
	}
	return out.Put(act)
}

// ActionRoutine is the fallback once no build or production gate is met:
// attack with a full army and keep the worker slots harvesting.
func ActionRoutine(env RuleEnv, out *model.Assignment) error {
	AssignAttacks(env, out)
	AssignRoutineHarvest(env, out)
	return nil
}

func produceAt(env RuleEnv, out *model.Assignment, producer model.Role, template string) error {
	id, ok := env.Class.Buckets.First(producer)
	if !ok {
		return fmt.Errorf("%w: no %s to produce %s", model.ErrMissingEntity, producer, template)
	}
	tpl, ok := env.State.TemplateID(template)
	if !ok {
		return fmt.Errorf("%w: template %q", model.ErrMissingEntity, template)
	}
	slog.Info("producing unit", "tick", env.Tick, "template", template, "producer", id)
	return out.Put(model.Produce(id, tpl))
}

func buildWithFirstWorker(env RuleEnv, out *model.Assignment, template string) error {
	id, ok := env.Class.Buckets.First(model.RoleWorker)
	if !ok {
		return fmt.Errorf("%w: no worker to build %s", model.ErrInsufficientUnits, template)
	}
	tpl, ok := env.State.TemplateID(template)
	if !ok {
		return fmt.Errorf("%w: template %q", model.ErrMissingEntity, template)
	}
	slog.Info("building", "tick", env.Tick, "template", template, "builder", id)
	return out.Put(model.Build(id, tpl))
}
