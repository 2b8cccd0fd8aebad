package job

import (
	"time"
)

// Job is a public job posting applications are submitted against.
type Job struct {
	ID             string
	Title          string
	Department     *string
	Location       *string
	EmploymentType *string
	Description    string
	IsOpen         bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
