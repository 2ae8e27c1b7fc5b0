package agent

import (
	"github.com/nstehr/harvest/ipc"
	"github.com/nstehr/harvest/model"
)

var commandTypes = map[model.ActionKind]string{
	model.ActionBuild:   ipc.CommandBuild,
	model.ActionProduce: ipc.CommandProduce,
	model.ActionGather:  ipc.CommandGather,
	model.ActionDeposit: ipc.CommandDeposit,
	model.ActionAttack:  ipc.CommandAttack,
}

// toCommands converts a tick's batch into wire commands, keeping batch order.
func toCommands(out *model.Assignment) []ipc.ActionCommand {
	acts := out.Actions()
	cmds := make([]ipc.ActionCommand, 0, len(acts))
	for _, act := range acts {
		cmd := ipc.ActionCommand{Type: commandTypes[act.Kind], ActorID: act.UnitID}
		switch act.Kind {
		case model.ActionBuild, model.ActionProduce:
			cmd.TemplateID = act.TargetID
		default:
			cmd.TargetID = act.TargetID
		}
		cmds = append(cmds, cmd)
	}
	return cmds
}

func actionsEnvelope(tick int, out *model.Assignment) (*ipc.Envelope, error) {
	env, err := ipc.NewEnvelope(ipc.TypeActions, ipc.ActionsMessage{
		Tick:     tick,
		Commands: toCommands(out),
	})
	if err != nil {
		return nil, err
	}
	return &env, nil
}
