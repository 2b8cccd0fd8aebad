package lead

import (
	"time"
)

type Status string

const (
	StatusNew       Status = "NEW"
	StatusContacted Status = "CONTACTED"
	StatusConverted Status = "CONVERTED"
	StatusArchived  Status = "ARCHIVED"
)

// Statuses lists every legal chatbot lead status.
var Statuses = []Status{StatusNew, StatusContacted, StatusConverted, StatusArchived}

// IsTerminal reports whether the lead can no longer change.
func (s Status) IsTerminal() bool {
	return s == StatusArchived
}

// Lead is an inbound chatbot capture from the marketing site.
type Lead struct {
	ID          string
	Name        string
	Email       string
	Phone       *string
	Requirement string
	Status      Status
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
