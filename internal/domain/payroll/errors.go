package payroll

import "errors"

var (
	ErrPayrollRunNotFound = errors.New("payroll run not found")
	ErrRunAlreadyExists   = errors.New("payroll run already exists for this period")
	ErrNoActiveEmployees  = errors.New("no active employees to run payroll for")
)
