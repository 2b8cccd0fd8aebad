// Package workflow is the single place status transitions are validated.
// Every business object moves through a fixed directed graph. Which button a
// dashboard renders is irrelevant: an illegal edge is rejected here no
// matter which surface asked for it.
//
// Transition is pure: it never touches storage. Callers persist the returned
// status on success and roll back any optimistic UI state on failure.
package workflow

import (
	"strings"

	"github.com/opsgrid/workforce-backend-go/internal/domain/application"
	"github.com/opsgrid/workforce-backend-go/internal/domain/attendance"
	"github.com/opsgrid/workforce-backend-go/internal/domain/lead"
	"github.com/opsgrid/workforce-backend-go/internal/domain/leave"
	"github.com/opsgrid/workforce-backend-go/internal/domain/payroll"
	"github.com/opsgrid/workforce-backend-go/internal/domain/user"
)

// EntityType identifies which transition graph applies.
type EntityType string

const (
	EntityApplication EntityType = "job_application"
	EntityLeave       EntityType = "leave_request"
	EntityPayroll     EntityType = "payroll_run"
	EntityAttendance  EntityType = "attendance_record"
	EntityLead        EntityType = "chatbot_lead"
)

// Request is one transition attempt against a snapshot of the record.
type Request struct {
	Entity  EntityType
	Current string
	Target  string
	Role    user.Role

	// AuditNote is required when Entity is EntityAttendance; ignored
	// otherwise.
	AuditNote string
}

// graph maps current status to its legal targets. Statuses absent from the
// map are terminal.
type graph map[string][]string

// Application edges: the forward pipeline plus two fast paths the HR board
// exposes everywhere. Reject is always available, and hire short-circuits
// the pipeline from any non-terminal status.
var applicationGraph = graph{
	string(application.StatusPending): {
		string(application.StatusReviewing),
		string(application.StatusShortlisted),
		string(application.StatusRejected),
		string(application.StatusHired),
	},
	string(application.StatusReviewing): {
		string(application.StatusShortlisted),
		string(application.StatusRejected),
		string(application.StatusHired),
	},
	string(application.StatusShortlisted): {
		string(application.StatusInterview),
		string(application.StatusRejected),
		string(application.StatusHired),
	},
	string(application.StatusInterview): {
		string(application.StatusOffered),
		string(application.StatusRejected),
		string(application.StatusHired),
	},
	string(application.StatusOffered): {
		string(application.StatusHired),
		string(application.StatusRejected),
	},
}

var leaveGraph = graph{
	string(leave.StatusPending): {
		string(leave.StatusApproved),
		string(leave.StatusRejected),
		string(leave.StatusCancelled),
	},
}

var payrollGraph = graph{
	string(payroll.StatusPending): {
		string(payroll.StatusApproved),
	},
}

var leadGraph = graph{
	string(lead.StatusNew): {
		string(lead.StatusContacted),
		string(lead.StatusArchived),
	},
	string(lead.StatusContacted): {
		string(lead.StatusConverted),
		string(lead.StatusArchived),
	},
	string(lead.StatusConverted): {
		string(lead.StatusArchived),
	},
}

var graphs = map[EntityType]graph{
	EntityApplication: applicationGraph,
	EntityLeave:       leaveGraph,
	EntityPayroll:     payrollGraph,
	EntityLead:        leadGraph,
	// EntityAttendance has no graph: HR correction is unrestricted, gated
	// only by the audit note requirement.
}

var knownStatuses = map[EntityType][]string{
	EntityApplication: statusStrings(application.Statuses),
	EntityLeave:       statusStrings(leave.Statuses),
	EntityPayroll:     statusStrings(payroll.Statuses),
	EntityAttendance:  statusStrings(attendance.Statuses),
	EntityLead:        statusStrings(lead.Statuses),
}

func statusStrings[S ~string](statuses []S) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = string(s)
	}
	return out
}

// Transition validates a transition request and returns the new status.
//
// Check order: role allow-list, audit note (attendance only), idempotent
// no-op, known status, graph edge. Requesting the record's current status is
// a success so retried UI actions stay safe.
func Transition(req Request) (string, error) {
	if !roleAllowed(req.Role, req.Entity) {
		return "", ErrForbidden
	}

	if req.Entity == EntityAttendance && strings.TrimSpace(req.AuditNote) == "" {
		return "", ErrAuditNoteRequired
	}

	if !isKnownStatus(req.Entity, req.Target) || !isKnownStatus(req.Entity, req.Current) {
		return "", ErrUnknownStatus
	}

	if req.Current == req.Target {
		return req.Current, nil
	}

	// Attendance is a data-correction entity: any known status may be
	// corrected to any other, provided the audit note above was given.
	if req.Entity == EntityAttendance {
		return req.Target, nil
	}

	g, ok := graphs[req.Entity]
	if !ok {
		return "", ErrInvalidTransition
	}

	for _, target := range g[req.Current] {
		if target == req.Target {
			return req.Target, nil
		}
	}

	return "", ErrInvalidTransition
}

// IsTerminal reports whether the status has no outgoing edges in the
// entity's graph.
func IsTerminal(entity EntityType, status string) bool {
	if entity == EntityAttendance {
		return false
	}
	g, ok := graphs[entity]
	if !ok {
		return true
	}
	return len(g[status]) == 0
}

// LegalTargets returns the statuses reachable from the given one, in graph
// declaration order. The application detail handler attaches these to its
// payload so the UI offers only valid actions.
func LegalTargets(entity EntityType, current string) []string {
	if entity == EntityAttendance {
		var out []string
		for _, s := range knownStatuses[entity] {
			if s != current {
				out = append(out, s)
			}
		}
		return out
	}
	g, ok := graphs[entity]
	if !ok {
		return nil
	}
	return append([]string(nil), g[current]...)
}

func isKnownStatus(entity EntityType, status string) bool {
	for _, s := range knownStatuses[entity] {
		if s == status {
			return true
		}
	}
	return false
}
