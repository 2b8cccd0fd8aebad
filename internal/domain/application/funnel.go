package application

import (
	"github.com/opsgrid/workforce-backend-go/internal/pkg/analytics"
)

// FunnelStages defines the recruitment funnel rendered on the owner
// dashboard. Stages are computed from current status membership, not from
// transition history, so applicants who already moved past a stage are not
// counted in it. Known limitation, kept to match the reported numbers.
var FunnelStages = []analytics.FunnelStage{
	{Name: "Applied"}, // nil status set counts every record
	{Name: "Screening", Statuses: []string{
		string(StatusPending),
		string(StatusReviewing),
		string(StatusShortlisted),
	}},
	{Name: "Interview", Statuses: []string{string(StatusInterview)}},
	{Name: "Hired", Statuses: []string{string(StatusHired)}},
}
