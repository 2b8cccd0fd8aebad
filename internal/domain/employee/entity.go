package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID          string
	UserID      *string
	FullName    string
	Email       string
	Department  *string
	Position    *string
	BaseSalary  *decimal.Decimal
	JoiningDate time.Time
	Status      EmploymentStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time
}

type EmploymentStatus string

const (
	EmploymentStatusActive   EmploymentStatus = "active"
	EmploymentStatusResigned EmploymentStatus = "resigned"
)
