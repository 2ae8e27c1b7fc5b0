package agent

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/nstehr/harvest/ipc"
	"github.com/nstehr/harvest/journal"
	"github.com/nstehr/harvest/model"
	"github.com/nstehr/harvest/rules"
)

// Agent owns the decision-making for a single player session. Apart from
// the step counter and the highest phase reached, both diagnostics, it
// carries nothing from one tick to the next.
type Agent struct {
	Conn    *ipc.Connection
	Player  int
	Goals   Goals
	Engine  *rules.Engine
	Journal *journal.Writer // optional

	step  int
	phase rules.Phase // high-water mark, never lowered within an episode
}

func New(conn *ipc.Connection, engine *rules.Engine, goals Goals) *Agent {
	return &Agent{Conn: conn, Engine: engine, Goals: goals}
}

// Summary is reported at the end of an episode.
type Summary struct {
	Steps    int
	Gold     int
	Wood     int
	GoalsMet bool
}

// OnInitialStep starts a new episode and decides its first tick.
func (a *Agent) OnInitialStep(view model.StateView) (*model.Assignment, error) {
	a.step = 0
	a.phase = rules.Expansion
	return a.OnTick(view)
}

// OnTick decides one tick. Only a malformed snapshot returns an error.
func (a *Agent) OnTick(view model.StateView) (*model.Assignment, error) {
	a.step++

	out, report, err := a.Engine.Evaluate(rules.Tick{Number: a.step, State: view})
	if err != nil {
		return nil, fmt.Errorf("step %d: %w", a.step, err)
	}

	slog.Debug("tick decided",
		"player", a.Player,
		"step", a.step,
		"phase", report.Phase,
		"fired", report.Fired,
		"actions", out.Len(),
		"omitted", len(report.Omitted),
	)
	if len(report.Unknown) > 0 {
		slog.Debug("unrecognized units ignored", "step", a.step, "units", report.Unknown)
	}

	transition := a.raisePhase(report.Phase)
	a.record(view, out, report, transition)
	return out, nil
}

// PhaseReached is the highest phase seen this episode. Losing workers lowers
// the per-tick phase but not this mark.
func (a *Agent) PhaseReached() rules.Phase { return a.phase }

// raisePhase moves the high-water mark and reports whether it changed.
func (a *Agent) raisePhase(p rules.Phase) bool {
	if p <= a.phase {
		return false
	}
	slog.Info("phase transition", "player", a.Player, "step", a.step, "from", a.phase.String(), "to", p.String())
	a.phase = p
	return true
}

// OnTerminalStep closes the episode. It only reports; there is nothing to
// decide once the simulation has ended.
func (a *Agent) OnTerminalStep(view model.StateView) Summary {
	a.step++

	s := Summary{
		Steps: a.step,
		Gold:  view.ResourceAmount(model.Gold),
		Wood:  view.ResourceAmount(model.Wood),
	}
	s.GoalsMet = a.Goals.Met(s.Gold, s.Wood)

	slog.Info("episode finished",
		"player", a.Player,
		"steps", s.Steps,
		"gold", s.Gold,
		"wood", s.Wood,
		"goldGoal", a.Goals.Gold,
		"woodGoal", a.Goals.Wood,
		"goalsMet", s.GoalsMet,
	)
	return s
}

// Save is a no-op: the controller does not learn, so it has nothing to persist.
func (a *Agent) Save(w io.Writer) error { return nil }

// Load is a no-op for the same reason as Save.
func (a *Agent) Load(r io.Reader) error { return nil }

// HandleHello completes the handshake so the host knows the controller is ready.
func (a *Agent) HandleHello(env ipc.Envelope) (*ipc.Envelope, error) {
	var hello ipc.HelloMessage
	if err := json.Unmarshal(env.Data, &hello); err != nil {
		return nil, fmt.Errorf("unmarshal hello: %w", err)
	}

	a.Player = hello.Player
	if a.Conn != nil {
		a.Conn.Player = hello.Player
	}
	if hello.GoldGoal != nil {
		a.Goals.Gold = *hello.GoldGoal
	}
	if hello.WoodGoal != nil {
		a.Goals.Wood = *hello.WoodGoal
	}
	slog.Info("player identified", "player", a.Player, "goldGoal", a.Goals.Gold, "woodGoal", a.Goals.Wood)

	ack, err := ipc.NewEnvelope(ipc.TypeAck, ipc.AckMessage{Status: "ok"})
	if err != nil {
		return nil, err
	}
	return &ack, nil
}

func (a *Agent) HandleInitialState(env ipc.Envelope) (*ipc.Envelope, error) {
	snap, err := ipc.DecodeSnapshot(env.Data)
	if err != nil {
		return nil, fmt.Errorf("initial state: %w", err)
	}
	out, err := a.OnInitialStep(snap)
	if err != nil {
		return nil, err
	}
	return actionsEnvelope(snap.Tick, out)
}

func (a *Agent) HandleState(env ipc.Envelope) (*ipc.Envelope, error) {
	snap, err := ipc.DecodeSnapshot(env.Data)
	if err != nil {
		return nil, fmt.Errorf("state: %w", err)
	}
	out, err := a.OnTick(snap)
	if err != nil {
		return nil, err
	}
	return actionsEnvelope(snap.Tick, out)
}

func (a *Agent) HandleTerminal(env ipc.Envelope) (*ipc.Envelope, error) {
	snap, err := ipc.DecodeSnapshot(env.Data)
	if err != nil {
		return nil, fmt.Errorf("terminal state: %w", err)
	}
	s := a.OnTerminalStep(snap)
	summary, err := ipc.NewEnvelope(ipc.TypeSummary, ipc.SummaryMessage{
		Steps:    s.Steps,
		Gold:     s.Gold,
		Wood:     s.Wood,
		GoalsMet: s.GoalsMet,
	})
	if err != nil {
		return nil, err
	}
	return &summary, nil
}

// Register wires the agent's handlers onto its connection.
func (a *Agent) Register() {
	a.Conn.RegisterHandler(ipc.TypeHello, a.HandleHello)
	a.Conn.RegisterHandler(ipc.TypeInitialState, a.HandleInitialState)
	a.Conn.RegisterHandler(ipc.TypeState, a.HandleState)
	a.Conn.RegisterHandler(ipc.TypeTerminal, a.HandleTerminal)
}

func (a *Agent) record(view model.StateView, out *model.Assignment, report rules.Report, transition bool) {
	if a.Journal == nil {
		return
	}
	e := journal.Entry{
		Tick:         a.step,
		Phase:        report.Phase.String(),
		PhaseReached: a.phase.String(),
		Transition:   transition,
		Gold:    view.ResourceAmount(model.Gold),
		Wood:    view.ResourceAmount(model.Wood),
		Fired:   report.Fired,
		Actions: out.Actions(),
	}
	for _, s := range report.Skipped {
		e.Skipped = append(e.Skipped, s.Rule)
	}
	for _, o := range report.Omitted {
		e.Omitted = append(e.Omitted, o.UnitID)
	}
	if err := a.Journal.Write(e); err != nil {
		slog.Warn("journal write failed", "step", a.step, "error", err)
	}
}
