package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/aussiebroadwan/empdir/internal/empdir/domain"
	"github.com/aussiebroadwan/empdir/internal/empdir/store"
	"github.com/aussiebroadwan/empdir/pkg/idx"
	"github.com/aussiebroadwan/empdir/pkg/slogx"
)

// EmployeeService implements the employee CRUD operations.
type EmployeeService struct {
	Store store.Store
}

// AddEmployeeParams carries the wire-shaped input for AddEmployee. Gender
// and DateOfJoining arrive as strings and are parsed here.
type AddEmployeeParams struct {
	FirstName     string
	LastName      string
	Email         string
	Gender        string
	Designation   string
	Salary        float64
	DateOfJoining string
	Department    string
	EmployeePhoto string
}

// UpdateEmployeeParams carries a partial update: nil means "leave as is".
type UpdateEmployeeParams struct {
	FirstName     *string
	LastName      *string
	Email         *string
	Gender        *string
	Designation   *string
	Salary        *float64
	DateOfJoining *string
	Department    *string
	EmployeePhoto *string
}

// ListEmployees returns every record, most recently created first.
func (s *EmployeeService) ListEmployees(ctx context.Context) ([]domain.Employee, error) {
	list, err := s.Store.Employees().ListEmployees(ctx)
	if err != nil {
		return nil, internal(err)
	}
	return list, nil
}

// GetEmployeeByID returns a single record or a not-found failure.
func (s *EmployeeService) GetEmployeeByID(ctx context.Context, id string) (domain.Employee, error) {
	e, err := s.Store.Employees().GetEmployeeByID(ctx, strings.TrimSpace(id))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Employee{}, notFoundf("employee not found")
		}
		return domain.Employee{}, internal(err)
	}
	return e, nil
}

// FilterEmployees matches on designation and/or department; at least one
// must be supplied.
func (s *EmployeeService) FilterEmployees(
	ctx context.Context,
	designation, department string,
) ([]domain.Employee, error) {
	designation = strings.TrimSpace(designation)
	department = strings.TrimSpace(department)

	if designation == "" && department == "" {
		return nil, validationf("either designation or department must be provided")
	}

	list, err := s.Store.Employees().FilterEmployees(ctx, designation, department)
	if err != nil {
		return nil, internal(err)
	}
	return list, nil
}

// AddEmployee validates and persists a new record, returning it with the
// server-assigned id and timestamps.
func (s *EmployeeService) AddEmployee(
	ctx context.Context,
	params AddEmployeeParams,
) (domain.Employee, error) {
	gender, err := domain.ParseGender(params.Gender)
	if err != nil {
		return domain.Employee{}, validationf("%s", err)
	}

	joined, err := domain.ParseDate(params.DateOfJoining)
	if err != nil {
		return domain.Employee{}, validationf("%s", err)
	}

	e := domain.Employee{
		ID:            idx.New().String(),
		FirstName:     params.FirstName,
		LastName:      params.LastName,
		Email:         params.Email,
		Gender:        gender,
		Designation:   params.Designation,
		Salary:        params.Salary,
		DateOfJoining: joined,
		Department:    params.Department,
		EmployeePhoto: params.EmployeePhoto,
	}
	e.Normalize()
	if err := e.Validate(); err != nil {
		return domain.Employee{}, validationf("%s", err)
	}

	if _, err := s.Store.Employees().GetEmployeeByEmail(ctx, e.Email); err == nil {
		return domain.Employee{}, validationf("employee with this email already exists")
	} else if !errors.Is(err, store.ErrNotFound) {
		return domain.Employee{}, internal(err)
	}

	if err := s.Store.Employees().CreateEmployee(ctx, e); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.Employee{}, validationf("employee with this email already exists")
		}
		return domain.Employee{}, internal(err)
	}

	created, err := s.Store.Employees().GetEmployeeByID(ctx, e.ID)
	if err != nil {
		return domain.Employee{}, internal(err)
	}

	slogx.FromContext(ctx).Info("employee added",
		slog.String("employee_id", created.ID),
		slog.String("department", created.Department),
	)

	return created, nil
}

// UpdateEmployee merges the supplied fields over the existing record,
// re-validates the whole result and persists it. The check-then-write runs
// in a transaction so the email pre-check and the update see one state.
func (s *EmployeeService) UpdateEmployee(
	ctx context.Context,
	id string,
	params UpdateEmployeeParams,
) (domain.Employee, error) {
	patch, err := buildPatch(params)
	if err != nil {
		return domain.Employee{}, err
	}

	var updated domain.Employee
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		existing, err := tx.Employees().GetEmployeeByID(ctx, strings.TrimSpace(id))
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return notFoundf("employee not found")
			}
			return internal(err)
		}

		if patch.Email != nil && strings.TrimSpace(*patch.Email) != existing.Email {
			other, err := tx.Employees().GetEmployeeByEmail(ctx, strings.TrimSpace(*patch.Email))
			if err == nil && other.ID != existing.ID {
				return validationf("email already in use by another employee")
			}
			if err != nil && !errors.Is(err, store.ErrNotFound) {
				return internal(err)
			}
		}

		patch.Apply(&existing)
		existing.Normalize()
		if err := existing.Validate(); err != nil {
			return validationf("%s", err)
		}

		if err := tx.Employees().UpdateEmployee(ctx, existing); err != nil {
			if errors.Is(err, store.ErrAlreadyExists) {
				return validationf("email already in use by another employee")
			}
			return internal(err)
		}

		updated, err = tx.Employees().GetEmployeeByID(ctx, existing.ID)
		if err != nil {
			return internal(err)
		}
		return nil
	})
	if err != nil {
		var se *Error
		if errors.As(err, &se) {
			return domain.Employee{}, se
		}
		return domain.Employee{}, internal(err)
	}

	return updated, nil
}

// DeleteEmployee removes a record, reporting not-found for unknown ids so
// a second delete of the same id fails observably.
func (s *EmployeeService) DeleteEmployee(ctx context.Context, id string) (bool, error) {
	if err := s.Store.Employees().DeleteEmployee(ctx, strings.TrimSpace(id)); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return false, notFoundf("employee not found")
		}
		return false, internal(err)
	}

	slogx.FromContext(ctx).Info("employee deleted", slog.String("employee_id", id))
	return true, nil
}

// buildPatch converts the wire-shaped params into a typed patch, parsing
// gender and date when present.
func buildPatch(params UpdateEmployeeParams) (domain.EmployeePatch, error) {
	patch := domain.EmployeePatch{
		FirstName:     params.FirstName,
		LastName:      params.LastName,
		Email:         params.Email,
		Designation:   params.Designation,
		Salary:        params.Salary,
		Department:    params.Department,
		EmployeePhoto: params.EmployeePhoto,
	}

	if params.Gender != nil {
		gender, err := domain.ParseGender(*params.Gender)
		if err != nil {
			return domain.EmployeePatch{}, validationf("%s", err)
		}
		patch.Gender = &gender
	}

	if params.DateOfJoining != nil {
		joined, err := domain.ParseDate(*params.DateOfJoining)
		if err != nil {
			return domain.EmployeePatch{}, validationf("%s", err)
		}
		patch.DateOfJoining = &joined
	}

	return patch, nil
}
