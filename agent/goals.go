package agent

import (
	"fmt"
	"strconv"
)

// Usage describes the controller's positional arguments.
const Usage = "Two arguments, amount of gold to gather and amount of wood to gather"

// Goals are the resource totals an episode is meant to reach. They are
// reported when the episode ends; the build-order rules never read them.
type Goals struct {
	Gold int
	Wood int
}

// Met reports whether both totals reached their goals.
func (g Goals) Met(gold, wood int) bool {
	return gold >= g.Gold && wood >= g.Wood
}

// ParseGoals reads the gold and wood goals from positional arguments.
// No arguments means no goals.
func ParseGoals(args []string) (Goals, error) {
	if len(args) == 0 {
		return Goals{}, nil
	}
	if len(args) != 2 {
		return Goals{}, fmt.Errorf("expected 2 arguments, got %d: %s", len(args), Usage)
	}
	gold, err := strconv.Atoi(args[0])
	if err != nil {
		return Goals{}, fmt.Errorf("gold goal %q: %w", args[0], err)
	}
	wood, err := strconv.Atoi(args[1])
	if err != nil {
		return Goals{}, fmt.Errorf("wood goal %q: %w", args[1], err)
	}
	if gold < 0 || wood < 0 {
		return Goals{}, fmt.Errorf("goals must be non-negative (gold=%d wood=%d)", gold, wood)
	}
	return Goals{Gold: gold, Wood: wood}, nil
}
