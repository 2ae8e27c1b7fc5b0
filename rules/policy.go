package rules

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/nstehr/harvest/model"
)

// AnyCargo matches a worker carrying any resource.
const AnyCargo model.ResourceType = "ANY"

// Slot describes the routine harvest task of one worker position.
// The worker deposits when its cargo matches Deposit and exceeds Threshold,
// otherwise it gathers from a node yielding Gather.
type Slot struct {
	Gather    model.ResourceType `yaml:"gather"`
	Deposit   model.ResourceType `yaml:"deposit"`
	Threshold int                `yaml:"threshold"`
}

// ShouldDeposit reports whether u should head back to the depot.
func (s Slot) ShouldDeposit(u model.Unit) bool {
	if s.Deposit == AnyCargo {
		return u.CargoAmount > s.Threshold
	}
	return u.Carrying(s.Deposit, s.Threshold)
}

type Templates struct {
	Worker   string `yaml:"worker"`
	Farm     string `yaml:"farm"`
	Barracks string `yaml:"barracks"`
	Combat   string `yaml:"combat"`
}

// Policy holds the fixed build-order thresholds. Gates are hard: a rule
// unlocks on the tick its resources are met, with no hysteresis.
type Policy struct {
	WorkerTarget int `yaml:"worker_target"`
	CombatTarget int `yaml:"combat_target"`

	WorkerGold   int `yaml:"worker_gold"`
	FarmGold     int `yaml:"farm_gold"`
	FarmWood     int `yaml:"farm_wood"`
	BarracksGold int `yaml:"barracks_gold"`
	BarracksWood int `yaml:"barracks_wood"`
	CombatGold   int `yaml:"combat_gold"`

	Templates Templates `yaml:"templates"`

	ExpansionSlot Slot   `yaml:"expansion_slot"`
	RoutineSlots  []Slot `yaml:"routine_slots"`
}

// DefaultPolicy returns the stock build order: three workers, a farm,
// a barracks, two footmen, then attack.
func DefaultPolicy() Policy {
	return Policy{
		WorkerTarget: 3,
		CombatTarget: 2,
		WorkerGold:   400,
		FarmGold:     500,
		FarmWood:     250,
		BarracksGold: 700,
		BarracksWood: 400,
		CombatGold:   600,
		Templates: Templates{
			Worker:   model.Peasant,
			Farm:     model.Farm,
			Barracks: model.Barracks,
			Combat:   model.Footman,
		},
		ExpansionSlot: Slot{Gather: model.Gold, Deposit: model.Gold, Threshold: 0},
		RoutineSlots: []Slot{
			{Gather: model.Gold, Deposit: model.Gold, Threshold: 2},
			{Gather: model.Wood, Deposit: AnyCargo, Threshold: 0},
			{Gather: model.Gold, Deposit: model.Gold, Threshold: 0},
		},
	}
}

// Validate clamps values into usable ranges and fills blank names.
func (p *Policy) Validate() {
	d := DefaultPolicy()

	p.WorkerTarget = clampInt(p.WorkerTarget, 1, 50)
	p.CombatTarget = clampInt(p.CombatTarget, 1, 50)
	p.WorkerGold = max(p.WorkerGold, 0)
	p.FarmGold = max(p.FarmGold, 0)
	p.FarmWood = max(p.FarmWood, 0)
	p.BarracksGold = max(p.BarracksGold, 0)
	p.BarracksWood = max(p.BarracksWood, 0)
	p.CombatGold = max(p.CombatGold, 0)

	if p.Templates.Worker == "" {
		p.Templates.Worker = d.Templates.Worker
	}
	if p.Templates.Farm == "" {
		p.Templates.Farm = d.Templates.Farm
	}
	if p.Templates.Barracks == "" {
		p.Templates.Barracks = d.Templates.Barracks
	}
	if p.Templates.Combat == "" {
		p.Templates.Combat = d.Templates.Combat
	}

	p.ExpansionSlot.validate()
	for i := range p.RoutineSlots {
		p.RoutineSlots[i].validate()
	}
}

func (s *Slot) validate() {
	if s.Gather != model.Wood {
		s.Gather = model.Gold
	}
	switch s.Deposit {
	case model.Gold, model.Wood, AnyCargo:
	default:
		s.Deposit = s.Gather
	}
	s.Threshold = max(s.Threshold, 0)
}

// LoadPolicy reads a YAML policy file over the defaults. Keys absent from
// the file keep their default values.
func LoadPolicy(path string) (Policy, error) {
	p := DefaultPolicy()
	raw, err := os.ReadFile(path)
	if err != nil {
		return p, err
	}
	if err := yaml.Unmarshal(raw, &p); err != nil {
		return p, fmt.Errorf("policy %s: %w", path, err)
	}
	p.Validate()
	return p, nil
}

// clampInt restricts v to [min, max].
func clampInt(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
