package ipc

// These constants must stay in sync with the host's message types.
const (
	TypeHello        = "hello"
	TypeAck          = "ack"
	TypeInitialState = "initial_state"
	TypeState        = "state"
	TypeTerminal     = "terminal_state"
	TypeActions      = "actions"
	TypeSummary      = "summary"
	TypeError        = "error"
)

// HelloMessage identifies the controller's player. Goals, when present,
// override the ones given on the command line.
type HelloMessage struct {
	Player   int  `json:"player"`
	GoldGoal *int `json:"goldGoal,omitempty"`
	WoodGoal *int `json:"woodGoal,omitempty"`
}

type AckMessage struct {
	Status string `json:"status"`
}

// ActionsMessage is the controller's reply to a state message: the full
// command batch for that tick.
type ActionsMessage struct {
	Tick     int             `json:"tick"`
	Commands []ActionCommand `json:"commands"`
}

// SummaryMessage answers the terminal state.
type SummaryMessage struct {
	Steps    int  `json:"steps"`
	Gold     int  `json:"gold"`
	Wood     int  `json:"wood"`
	GoalsMet bool `json:"goalsMet"`
}

// ErrorMessage reports a message the controller could not process.
type ErrorMessage struct {
	Type  string `json:"type"`
	Error string `json:"error"`
}
