package user

type Permission string

const (
	// Self Management
	PermissionViewOwnProfile Permission = "profile.view_own"

	// Recruitment
	PermissionJobManage          Permission = "job.manage"
	PermissionApplicationViewAll Permission = "application.view_all"
	PermissionApplicationManage  Permission = "application.manage"

	// Leave Management
	PermissionLeaveViewOwn Permission = "leave.view_own"
	PermissionLeaveCreate  Permission = "leave.create"
	PermissionLeaveViewAll Permission = "leave.view_all"
	PermissionLeaveApprove Permission = "leave.approve"

	// Attendance Management
	PermissionAttendanceViewOwn Permission = "attendance.view_own"
	PermissionAttendanceCreate  Permission = "attendance.create"
	PermissionAttendanceViewAll Permission = "attendance.view_all"
	PermissionAttendanceCorrect Permission = "attendance.correct"

	// Payroll
	PermissionPayrollView    Permission = "payroll.view"
	PermissionPayrollRun     Permission = "payroll.run"
	PermissionPayrollApprove Permission = "payroll.approve"

	// Leads
	PermissionLeadViewAll Permission = "lead.view_all"
	PermissionLeadManage  Permission = "lead.manage"

	// Content resources
	PermissionResourceManage Permission = "resource.manage"

	// Employee Management
	PermissionEmployeeViewAll Permission = "employee.view_all"
	PermissionEmployeeManage  Permission = "employee.manage"

	// Dashboard
	PermissionDashboardView Permission = "dashboard.view"
)

// RolePermissions maps roles to their permissions
var RolePermissions = map[Role][]Permission{
	RoleOwner: {
		// Owner has all permissions
		PermissionViewOwnProfile,
		PermissionJobManage,
		PermissionApplicationViewAll,
		PermissionApplicationManage,
		PermissionLeaveViewOwn,
		PermissionLeaveCreate,
		PermissionLeaveViewAll,
		PermissionLeaveApprove,
		PermissionAttendanceViewOwn,
		PermissionAttendanceCreate,
		PermissionAttendanceViewAll,
		PermissionAttendanceCorrect,
		PermissionPayrollView,
		PermissionPayrollRun,
		PermissionPayrollApprove,
		PermissionLeadViewAll,
		PermissionLeadManage,
		PermissionResourceManage,
		PermissionEmployeeViewAll,
		PermissionEmployeeManage,
		PermissionDashboardView,
	},
	RoleHR: {
		// HR runs recruitment, attendance, leads and content
		PermissionViewOwnProfile,
		PermissionJobManage,
		PermissionApplicationViewAll,
		PermissionApplicationManage,
		PermissionLeaveViewOwn,
		PermissionLeaveCreate,
		PermissionLeaveViewAll,
		PermissionLeaveApprove,
		PermissionAttendanceViewOwn,
		PermissionAttendanceCreate,
		PermissionAttendanceViewAll,
		PermissionAttendanceCorrect,
		PermissionPayrollView,
		PermissionLeadViewAll,
		PermissionLeadManage,
		PermissionResourceManage,
		PermissionEmployeeViewAll,
		PermissionEmployeeManage,
		PermissionDashboardView,
	},
	RoleManager: {
		// Manager approves leave and views team data
		PermissionViewOwnProfile,
		PermissionLeaveViewOwn,
		PermissionLeaveCreate,
		PermissionLeaveViewAll,
		PermissionLeaveApprove,
		PermissionAttendanceViewOwn,
		PermissionAttendanceCreate,
		PermissionAttendanceViewAll,
		PermissionEmployeeViewAll,
		PermissionDashboardView,
	},
	RoleEmployee: {
		// Employee has basic access
		PermissionViewOwnProfile,
		PermissionLeaveViewOwn,
		PermissionLeaveCreate,
		PermissionAttendanceViewOwn,
		PermissionAttendanceCreate,
	},
}

// HasPermission checks if a role has a specific permission
func HasPermission(role Role, permission Permission) bool {
	permissions, exists := RolePermissions[role]
	if !exists {
		return false
	}

	for _, p := range permissions {
		if p == permission {
			return true
		}
	}

	return false
}
