package application

import (
	"time"
)

// Status values mirror the application_status enum in the database.
type Status string

const (
	StatusPending     Status = "PENDING"
	StatusReviewing   Status = "REVIEWING"
	StatusShortlisted Status = "SHORTLISTED"
	StatusInterview   Status = "INTERVIEW"
	StatusOffered     Status = "OFFERED"
	StatusHired       Status = "HIRED"
	StatusRejected    Status = "REJECTED"
)

// Statuses lists every legal application status in pipeline order.
var Statuses = []Status{
	StatusPending,
	StatusReviewing,
	StatusShortlisted,
	StatusInterview,
	StatusOffered,
	StatusHired,
	StatusRejected,
}

// IsTerminal reports whether the status has no outgoing transitions.
func (s Status) IsTerminal() bool {
	return s == StatusHired || s == StatusRejected
}

// Note is one entry of the append-only note log on an application.
type Note struct {
	Author    string    `json:"author"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

type Application struct {
	ID            string
	JobID         string
	ApplicantName string
	Email         string
	Phone         *string
	ResumeURL     *string
	Status        Status
	Notes         []Note
	CreatedAt     time.Time
	UpdatedAt     time.Time // bumped on every status change; hire-time signal

	// Joined fields
	JobTitle      *string
	JobDepartment *string
}
