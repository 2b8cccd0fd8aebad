package employee

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/opsgrid/workforce-backend-go/internal/domain/employee"
)

type EmployeeService interface {
	Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.Employee, error)
	Get(ctx context.Context, id string) (employee.Employee, error)
	List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.Employee, int64, error)
	Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.Employee, error)
	Resign(ctx context.Context, id string) error
}

type employeeService struct {
	employees employee.EmployeeRepository
}

func NewEmployeeService(employees employee.EmployeeRepository) EmployeeService {
	return &employeeService{employees: employees}
}

func (s *employeeService) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.Employee, error) {
	joiningDate, err := time.Parse("2006-01-02", req.JoiningDate)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("invalid joining date: %w", err)
	}

	emp := employee.Employee{
		FullName:    req.FullName,
		Email:       req.Email,
		Department:  req.Department,
		Position:    req.Position,
		JoiningDate: joiningDate,
		Status:      employee.EmploymentStatusActive,
	}

	if req.BaseSalary != nil {
		salary, err := decimal.NewFromString(*req.BaseSalary)
		if err != nil {
			return employee.Employee{}, fmt.Errorf("invalid base salary: %w", err)
		}
		emp.BaseSalary = &salary
	}

	created, err := s.employees.Create(ctx, emp)
	if err != nil {
		return employee.Employee{}, err
	}

	return created, nil
}

func (s *employeeService) Get(ctx context.Context, id string) (employee.Employee, error) {
	return s.employees.GetByID(ctx, id)
}

func (s *employeeService) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.Employee, int64, error) {
	return s.employees.List(ctx, filter)
}

func (s *employeeService) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.Employee, error) {
	return s.employees.Update(ctx, req)
}

func (s *employeeService) Resign(ctx context.Context, id string) error {
	return s.employees.Resign(ctx, id, time.Now().UTC())
}
