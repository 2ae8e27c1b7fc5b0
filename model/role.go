package model

import "strings"

// Role is the closed set of unit and building roles the controller acts on.
type Role int

const (
	RoleUnknown Role = iota
	RoleWorker
	RoleCommandCenter
	RoleFarm
	RoleBarracks
	RoleCombat
)

// Template names used by the simulator.
const (
	Peasant  = "Peasant"
	TownHall = "TownHall"
	Farm     = "Farm"
	Barracks = "Barracks"
	Footman  = "Footman"
)

// roleTypes is the static registry of roles to concrete template names.
var roleTypes = map[Role][]string{
	RoleWorker:        {Peasant},
	RoleCommandCenter: {TownHall},
	RoleFarm:          {Farm},
	RoleBarracks:      {Barracks},
	RoleCombat:        {Footman},
}

var roleNames = map[Role]string{
	RoleUnknown:       "unknown",
	RoleWorker:        "worker",
	RoleCommandCenter: "command_center",
	RoleFarm:          "farm",
	RoleBarracks:      "barracks",
	RoleCombat:        "combat_unit",
}

// Roles lists the known roles in bucket order.
var Roles = []Role{RoleWorker, RoleCommandCenter, RoleFarm, RoleBarracks, RoleCombat}

// ParseRole maps a template name (case-insensitive) to its role.
// Unrecognized names map to RoleUnknown.
func ParseRole(typeName string) Role {
	for _, r := range Roles {
		for _, t := range roleTypes[r] {
			if strings.EqualFold(t, typeName) {
				return r
			}
		}
	}
	return RoleUnknown
}

// RoleByName resolves a role by its logical name ("worker", "farm", ...).
func RoleByName(name string) Role {
	for r, n := range roleNames {
		if strings.EqualFold(n, name) {
			return r
		}
	}
	return RoleUnknown
}

func (r Role) String() string {
	if n, ok := roleNames[r]; ok {
		return n
	}
	return roleNames[RoleUnknown]
}
