package ipc

// Command type constants. These must stay in sync with the host's action executor.
const (
	CommandBuild   = "build"
	CommandProduce = "produce"
	CommandGather  = "gather"
	CommandDeposit = "deposit"
	CommandAttack  = "attack"
)

// ActionCommand is one unit order. TemplateID is set for build/produce,
// TargetID for gather/deposit/attack.
type ActionCommand struct {
	Type       string `json:"type"`
	ActorID    int    `json:"actor_id"`
	TargetID   int    `json:"target_id,omitempty"`
	TemplateID int    `json:"template_id,omitempty"`
}
