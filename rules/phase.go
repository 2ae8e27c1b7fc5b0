package rules

// Phase is the macro stage derived from the worker count.
type Phase int

const (
	Expansion Phase = iota // building up to the worker target
	Growth                 // farm, barracks, army, attack
)

// PhaseOf derives the phase for a tick. It is a pure function of the
// current worker count; once the target is reached every following tick
// evaluates in Growth for as long as the workers survive.
func PhaseOf(workers, target int) Phase {
	if workers < target {
		return Expansion
	}
	return Growth
}

func (p Phase) String() string {
	if p == Growth {
		return "growth"
	}
	return "expansion"
}
