package policy

import (
	"github.com/leadflow-simple/models"
)

// Operation identifies an API operation gated by the access policy
type Operation string

const (
	OpLogin            Operation = "login"
	OpOwnProfile       Operation = "own_profile"
	OpCreateLead       Operation = "create_lead"
	OpListOwnLeads     Operation = "list_own_leads"
	OpOwnStats         Operation = "own_stats"
	OpListAllLeads     Operation = "list_all_leads"
	OpUpdateLead       Operation = "update_lead"
	OpDashboard        Operation = "dashboard"
	OpExportLeads      Operation = "export_leads"
	OpBackup           Operation = "backup"
	OpListUsers        Operation = "list_users"
	OpCreateUser       Operation = "create_user"
	OpUpdateUser       Operation = "update_user"
	OpListCourses      Operation = "list_courses"
	OpCreateCourse     Operation = "create_course"
	OpListLeadStatus   Operation = "list_lead_status"
	OpCreateLeadStatus Operation = "create_lead_status"
	OpListAuditLogs    Operation = "list_audit_logs"
)

// table maps each operation to the roles allowed to perform it.
// A nil entry means the operation is public (no credential required).
var table = map[Operation][]models.Role{
	OpLogin:            nil,
	OpOwnProfile:       {models.RoleSeller, models.RoleCoordinator, models.RoleAdministrator},
	OpCreateLead:       {models.RoleSeller},
	OpListOwnLeads:     {models.RoleSeller},
	OpOwnStats:         {models.RoleSeller},
	OpListAllLeads:     {models.RoleCoordinator, models.RoleAdministrator},
	OpUpdateLead:       {models.RoleCoordinator, models.RoleAdministrator},
	OpDashboard:        {models.RoleCoordinator, models.RoleAdministrator},
	OpExportLeads:      {models.RoleCoordinator, models.RoleAdministrator},
	OpBackup:           {models.RoleCoordinator, models.RoleAdministrator},
	OpListUsers:        {models.RoleAdministrator},
	OpCreateUser:       {models.RoleAdministrator},
	OpUpdateUser:       {models.RoleAdministrator},
	OpListCourses:      nil,
	OpCreateCourse:     {models.RoleAdministrator},
	OpListLeadStatus:   nil,
	OpCreateLeadStatus: {models.RoleAdministrator},
	OpListAuditLogs:    {models.RoleAdministrator},
}

// Allowed reports whether the given role may perform the operation.
// Unknown operations are denied.
func Allowed(role models.Role, op Operation) bool {
	roles, ok := table[op]
	if !ok {
		return false
	}
	if roles == nil {
		return true
	}
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}

// Public reports whether the operation requires no credential at all
func Public(op Operation) bool {
	roles, ok := table[op]
	return ok && roles == nil
}
