package workflow

import (
	"testing"

	"github.com/opsgrid/workforce-backend-go/internal/domain/application"
	"github.com/opsgrid/workforce-backend-go/internal/domain/attendance"
	"github.com/opsgrid/workforce-backend-go/internal/domain/lead"
	"github.com/opsgrid/workforce-backend-go/internal/domain/leave"
	"github.com/opsgrid/workforce-backend-go/internal/domain/payroll"
	"github.com/opsgrid/workforce-backend-go/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// expectedEdges re-declares the legal edge sets independently of the graph
// tables so a typo in either shows up as a failure.
var expectedEdges = map[EntityType]map[string][]string{
	EntityApplication: {
		"PENDING":     {"REVIEWING", "SHORTLISTED", "REJECTED", "HIRED"},
		"REVIEWING":   {"SHORTLISTED", "REJECTED", "HIRED"},
		"SHORTLISTED": {"INTERVIEW", "REJECTED", "HIRED"},
		"INTERVIEW":   {"OFFERED", "REJECTED", "HIRED"},
		"OFFERED":     {"HIRED", "REJECTED"},
		"HIRED":       {},
		"REJECTED":    {},
	},
	EntityLeave: {
		"PENDING":   {"APPROVED", "REJECTED", "CANCELLED"},
		"APPROVED":  {},
		"REJECTED":  {},
		"CANCELLED": {},
	},
	EntityPayroll: {
		"PENDING":  {"APPROVED"},
		"APPROVED": {},
	},
	EntityLead: {
		"NEW":       {"CONTACTED", "ARCHIVED"},
		"CONTACTED": {"CONVERTED", "ARCHIVED"},
		"CONVERTED": {"ARCHIVED"},
		"ARCHIVED":  {},
	},
}

func contains(haystack []string, needle string) bool {
	for _, s := range haystack {
		if s == needle {
			return true
		}
	}
	return false
}

func allowedRole(entity EntityType) user.Role {
	if entity == EntityPayroll {
		return user.RoleOwner
	}
	return user.RoleHR
}

func TestTransition_GraphExhaustive(t *testing.T) {
	t.Parallel()

	for entity, edges := range expectedEdges {
		statuses := knownStatuses[entity]
		require.NotEmpty(t, statuses, "no statuses registered for %s", entity)

		for _, current := range statuses {
			for _, target := range statuses {
				got, err := Transition(Request{
					Entity:  entity,
					Current: current,
					Target:  target,
					Role:    allowedRole(entity),
				})

				switch {
				case current == target:
					assert.NoError(t, err, "%s %s->%s should be an idempotent no-op", entity, current, target)
					assert.Equal(t, current, got)
				case contains(edges[current], target):
					assert.NoError(t, err, "%s %s->%s should be legal", entity, current, target)
					assert.Equal(t, target, got)
				default:
					assert.ErrorIs(t, err, ErrInvalidTransition, "%s %s->%s should be illegal", entity, current, target)
				}
			}
		}
	}
}

func TestTransition_ApplicationFastPaths(t *testing.T) {
	t.Parallel()

	nonTerminal := []string{"PENDING", "REVIEWING", "SHORTLISTED", "INTERVIEW", "OFFERED"}
	for _, current := range nonTerminal {
		for _, target := range []string{"REJECTED", "HIRED"} {
			got, err := Transition(Request{
				Entity:  EntityApplication,
				Current: current,
				Target:  target,
				Role:    user.RoleHR,
			})
			require.NoError(t, err, "%s->%s", current, target)
			assert.Equal(t, target, got)
		}
	}
}

func TestTransition_TerminalStatusesExhausted(t *testing.T) {
	t.Parallel()

	for _, current := range []string{"HIRED", "REJECTED"} {
		for _, target := range knownStatuses[EntityApplication] {
			if target == current {
				continue
			}
			_, err := Transition(Request{
				Entity:  EntityApplication,
				Current: current,
				Target:  target,
				Role:    user.RoleHR,
			})
			assert.ErrorIs(t, err, ErrInvalidTransition, "%s->%s", current, target)
		}
	}
}

func TestTransition_PendingToInterviewRejected(t *testing.T) {
	t.Parallel()

	// No direct edge; the screening stages cannot be skipped except via the
	// hire/reject fast paths.
	_, err := Transition(Request{
		Entity:  EntityApplication,
		Current: string(application.StatusPending),
		Target:  string(application.StatusInterview),
		Role:    user.RoleHR,
	})
	assert.ErrorIs(t, err, ErrInvalidTransition)

	got, err := Transition(Request{
		Entity:  EntityApplication,
		Current: string(application.StatusPending),
		Target:  string(application.StatusRejected),
		Role:    user.RoleHR,
	})
	require.NoError(t, err)
	assert.Equal(t, string(application.StatusRejected), got)
}

func TestTransition_RoleDeniedByDefault(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		entity EntityType
		role   user.Role
	}{
		{"employee cannot move applications", EntityApplication, user.RoleEmployee},
		{"manager cannot move applications", EntityApplication, user.RoleManager},
		{"hr cannot approve payroll", EntityPayroll, user.RoleHR},
		{"manager cannot approve payroll", EntityPayroll, user.RoleManager},
		{"employee cannot correct attendance", EntityAttendance, user.RoleEmployee},
		{"employee cannot touch leads", EntityLead, user.RoleEmployee},
		{"unknown role denied", EntityLeave, user.Role("auditor")},
		{"empty role denied", EntityLead, user.Role("")},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Transition(Request{
				Entity:    tc.entity,
				Current:   "PENDING",
				Target:    "APPROVED",
				Role:      tc.role,
				AuditNote: "n/a",
			})
			assert.ErrorIs(t, err, ErrForbidden)
		})
	}
}

func TestTransition_EmployeeMayCancelLeave(t *testing.T) {
	t.Parallel()

	got, err := Transition(Request{
		Entity:  EntityLeave,
		Current: string(leave.StatusPending),
		Target:  string(leave.StatusCancelled),
		Role:    user.RoleEmployee,
	})
	require.NoError(t, err)
	assert.Equal(t, string(leave.StatusCancelled), got)
}

func TestTransition_AttendanceCorrection(t *testing.T) {
	t.Parallel()

	// Any status to any other status, note given.
	for _, current := range attendance.Statuses {
		for _, target := range attendance.Statuses {
			got, err := Transition(Request{
				Entity:    EntityAttendance,
				Current:   string(current),
				Target:    string(target),
				Role:      user.RoleHR,
				AuditNote: "wrong clock, corrected against door log",
			})
			require.NoError(t, err, "%s->%s", current, target)
			assert.Equal(t, string(target), got)
		}
	}
}

func TestTransition_AttendanceEmptyNoteFails(t *testing.T) {
	t.Parallel()

	for _, note := range []string{"", "   ", "\t"} {
		for _, target := range attendance.Statuses {
			_, err := Transition(Request{
				Entity:    EntityAttendance,
				Current:   string(attendance.StatusPresent),
				Target:    string(target),
				Role:      user.RoleHR,
				AuditNote: note,
			})
			assert.ErrorIs(t, err, ErrAuditNoteRequired, "target %s, note %q", target, note)
		}
	}
}

func TestTransition_UnknownStatus(t *testing.T) {
	t.Parallel()

	_, err := Transition(Request{
		Entity:  EntityLead,
		Current: string(lead.StatusNew),
		Target:  "SNOOZED",
		Role:    user.RoleHR,
	})
	assert.ErrorIs(t, err, ErrUnknownStatus)

	// lowercase is not the canonical value; status matching is
	// case-sensitive
	_, err = Transition(Request{
		Entity:  EntityPayroll,
		Current: "pending",
		Target:  string(payroll.StatusApproved),
		Role:    user.RoleOwner,
	})
	assert.ErrorIs(t, err, ErrUnknownStatus)
}

func TestIsTerminal(t *testing.T) {
	t.Parallel()

	assert.True(t, IsTerminal(EntityApplication, "HIRED"))
	assert.True(t, IsTerminal(EntityApplication, "REJECTED"))
	assert.False(t, IsTerminal(EntityApplication, "OFFERED"))
	assert.True(t, IsTerminal(EntityLeave, "CANCELLED"))
	assert.True(t, IsTerminal(EntityPayroll, "APPROVED"))
	assert.True(t, IsTerminal(EntityLead, "ARCHIVED"))
	assert.False(t, IsTerminal(EntityAttendance, "ABSENT"))
}

func TestLegalTargets(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"CONTACTED", "ARCHIVED"}, LegalTargets(EntityLead, "NEW"))
	assert.Empty(t, LegalTargets(EntityLead, "ARCHIVED"))

	// the application detail payload exposes these as allowed_statuses
	assert.Equal(t,
		[]string{"REVIEWING", "SHORTLISTED", "REJECTED", "HIRED"},
		LegalTargets(EntityApplication, "PENDING"))
	assert.Empty(t, LegalTargets(EntityApplication, "HIRED"))

	// attendance offers every other status
	targets := LegalTargets(EntityAttendance, "PRESENT")
	assert.Len(t, targets, len(attendance.Statuses)-1)
	assert.NotContains(t, targets, "PRESENT")
}
