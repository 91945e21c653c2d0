package model

import "time"

// Role is the account type assigned to every user record.
type Role string

const (
	RoleAdmin   Role = "Admin"
	RoleOfficer Role = "Officer"
	RolePrimer  Role = "Primer"
	RoleBoy     Role = "Boy"
)

// AllRoles is the default allow-list for operations that only require a
// known role.
var AllRoles = []Role{RoleAdmin, RoleOfficer, RolePrimer, RoleBoy}

type User struct {
	ID                 string
	Name               string
	Role               Role
	CurrentAppointment string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
