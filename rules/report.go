package rules

// Report describes what the engine decided for one tick and why.
type Report struct {
	Tick    int
	Phase   Phase
	Fired   []string   // rules whose action succeeded
	Skipped []Skip     // rules that matched but could not act
	Omitted []Omission // units left without an action
	Unknown []int      // owned units with an unrecognized type
}

type Skip struct {
	Rule   string
	Reason string
}

type Omission struct {
	UnitID int
	Reason string
}

func (r *Report) skip(rule string, err error) {
	r.Skipped = append(r.Skipped, Skip{Rule: rule, Reason: err.Error()})
}

func (r *Report) omit(unitID int, err error) {
	r.Omitted = append(r.Omitted, Omission{UnitID: unitID, Reason: err.Error()})
}
