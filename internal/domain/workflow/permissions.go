package workflow

import (
	"github.com/opsgrid/workforce-backend-go/internal/domain/user"
)

// entityRoles is the static role allow-list: which roles may request
// transitions on which entity type. Roles absent from an entry are denied;
// unknown roles are denied everywhere.
//
// Employees appear only under leave requests (to cancel their own);
// ownership of the request is enforced by the leave service, not here.
var entityRoles = map[EntityType][]user.Role{
	EntityApplication: {user.RoleOwner, user.RoleHR},
	EntityLeave:       {user.RoleOwner, user.RoleHR, user.RoleManager, user.RoleEmployee},
	EntityPayroll:     {user.RoleOwner},
	EntityAttendance:  {user.RoleOwner, user.RoleHR},
	EntityLead:        {user.RoleOwner, user.RoleHR},
}

func roleAllowed(role user.Role, entity EntityType) bool {
	for _, r := range entityRoles[entity] {
		if r == role {
			return true
		}
	}
	return false
}
