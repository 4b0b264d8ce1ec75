package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/aussiebroadwan/empdir/internal/empdir/domain"
	"github.com/aussiebroadwan/empdir/internal/empdir/store"
)

type employeesRepo struct {
	db dbtx
}

const employeeColumns = `id, first_name, last_name, email, gender, designation,
	salary, date_of_joining, department, employee_photo, created_at, updated_at`

func scanEmployee(row interface{ Scan(...any) error }) (domain.Employee, error) {
	var e domain.Employee
	var gender string
	err := row.Scan(
		&e.ID, &e.FirstName, &e.LastName, &e.Email, &gender, &e.Designation,
		&e.Salary, &e.DateOfJoining, &e.Department, &e.EmployeePhoto,
		&e.CreatedAt, &e.UpdatedAt,
	)
	e.Gender = domain.Gender(gender)
	return e, err
}

func (r *employeesRepo) GetEmployeeByID(ctx context.Context, id string) (domain.Employee, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+employeeColumns+` FROM employees WHERE id = ?`, id)

	e, err := scanEmployee(row)
	if err != nil {
		return domain.Employee{}, mapNotFound(err)
	}
	return e, nil
}

func (r *employeesRepo) GetEmployeeByEmail(ctx context.Context, email string) (domain.Employee, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+employeeColumns+` FROM employees WHERE email = ?`, email)

	e, err := scanEmployee(row)
	if err != nil {
		return domain.Employee{}, mapNotFound(err)
	}
	return e, nil
}

func (r *employeesRepo) ListEmployees(ctx context.Context) ([]domain.Employee, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+employeeColumns+` FROM employees ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	return collectEmployees(rows)
}

func (r *employeesRepo) FilterEmployees(
	ctx context.Context,
	designation, department string,
) ([]domain.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE 1=1`
	args := make([]any, 0, 2)
	if designation != "" {
		query += ` AND designation = ?`
		args = append(args, designation)
	}
	if department != "" {
		query += ` AND department = ?`
		args = append(args, department)
	}
	query += ` ORDER BY created_at DESC, id DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return collectEmployees(rows)
}

func collectEmployees(rows *sql.Rows) ([]domain.Employee, error) {
	defer rows.Close()

	out := make([]domain.Employee, 0)
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *employeesRepo) CreateEmployee(ctx context.Context, e domain.Employee) error {
	now := time.Now().UTC()
	if e.CreatedAt.IsZero() {
		e.CreatedAt = now
	}
	if e.UpdatedAt.IsZero() {
		e.UpdatedAt = now
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO employees (id, first_name, last_name, email, gender, designation,
			salary, date_of_joining, department, employee_photo, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.FirstName, e.LastName, e.Email, string(e.Gender), e.Designation,
		e.Salary, e.DateOfJoining, e.Department, e.EmployeePhoto, e.CreatedAt, e.UpdatedAt)
	return mapConstraint(err)
}

func (r *employeesRepo) UpdateEmployee(ctx context.Context, e domain.Employee) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE employees SET
			first_name = ?, last_name = ?, email = ?, gender = ?, designation = ?,
			salary = ?, date_of_joining = ?, department = ?, employee_photo = ?,
			updated_at = ?
		 WHERE id = ?`,
		e.FirstName, e.LastName, e.Email, string(e.Gender), e.Designation,
		e.Salary, e.DateOfJoining, e.Department, e.EmployeePhoto,
		time.Now().UTC(), e.ID)
	if err != nil {
		return mapConstraint(err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *employeesRepo) DeleteEmployee(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM employees WHERE id = ?`, id)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *employeesRepo) CountEmployees(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM employees`).Scan(&count)
	return count, err
}
