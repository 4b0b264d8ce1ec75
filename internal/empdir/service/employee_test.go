package service_test

import (
	"context"
	"testing"

	"github.com/aussiebroadwan/empdir/internal/empdir/domain"
	"github.com/aussiebroadwan/empdir/internal/empdir/service"
	"github.com/aussiebroadwan/empdir/internal/empdir/store/drivers/sqlite"
	"github.com/stretchr/testify/require"
)

func newEmployeeService(t *testing.T) *service.EmployeeService {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	return &service.EmployeeService{Store: st}
}

func addParams(email string) service.AddEmployeeParams {
	return service.AddEmployeeParams{
		FirstName:     "Bob",
		LastName:      "Stone",
		Email:         email,
		Gender:        "Male",
		Designation:   "Engineer",
		Salary:        1200,
		DateOfJoining: "2023-04-01",
		Department:    "Eng",
	}
}

func TestAddEmployee(t *testing.T) {
	ctx := context.Background()
	svc := newEmployeeService(t)

	created, err := svc.AddEmployee(ctx, addParams("bob@x.com"))
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	require.Equal(t, 1200.0, created.Salary)
	require.Equal(t, domain.GenderMale, created.Gender)
	require.Equal(t, "2023-04-01", created.DateOfJoining.Format("2006-01-02"))
	require.False(t, created.CreatedAt.IsZero())

	t.Run("trims string fields", func(t *testing.T) {
		params := addParams("carol@x.com")
		params.FirstName = "  Carol "
		params.Department = " Sales\t"

		got, err := svc.AddEmployee(ctx, params)
		require.NoError(t, err)
		require.Equal(t, "Carol", got.FirstName)
		require.Equal(t, "Sales", got.Department)
	})
}

func TestAddEmployeeValidation(t *testing.T) {
	ctx := context.Background()
	svc := newEmployeeService(t)

	cases := map[string]func(*service.AddEmployeeParams){
		"salary below minimum": func(p *service.AddEmployeeParams) { p.Salary = 999 },
		"unknown gender":       func(p *service.AddEmployeeParams) { p.Gender = "Unknown" },
		"bad date":             func(p *service.AddEmployeeParams) { p.DateOfJoining = "April 1st" },
		"missing first name":   func(p *service.AddEmployeeParams) { p.FirstName = " " },
		"malformed email":      func(p *service.AddEmployeeParams) { p.Email = "nope" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			params := addParams("new@x.com")
			mutate(&params)

			_, err := svc.AddEmployee(ctx, params)
			require.Error(t, err)
			require.Equal(t, service.KindValidation, service.KindOf(err))
		})
	}

	// No record slipped in through a failed add.
	count, err := svc.Store.Employees().CountEmployees(ctx)
	require.NoError(t, err)
	require.Zero(t, count)
}

func TestAddEmployeeDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	svc := newEmployeeService(t)

	_, err := svc.AddEmployee(ctx, addParams("bob@x.com"))
	require.NoError(t, err)

	_, err = svc.AddEmployee(ctx, addParams("bob@x.com"))
	require.Equal(t, service.KindValidation, service.KindOf(err))

	list, err := svc.ListEmployees(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
}

func TestGetEmployeeByID(t *testing.T) {
	ctx := context.Background()
	svc := newEmployeeService(t)

	created, err := svc.AddEmployee(ctx, addParams("bob@x.com"))
	require.NoError(t, err)

	got, err := svc.GetEmployeeByID(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, created.Email, got.Email)

	_, err = svc.GetEmployeeByID(ctx, "missing-id")
	require.Equal(t, service.KindNotFound, service.KindOf(err))
}

func TestFilterEmployees(t *testing.T) {
	ctx := context.Background()
	svc := newEmployeeService(t)

	eng := addParams("eng@x.com")
	eng.Department = "Eng"
	sales := addParams("sales@x.com")
	sales.Department = "Sales"
	sales.Designation = "Manager"

	_, err := svc.AddEmployee(ctx, eng)
	require.NoError(t, err)
	_, err = svc.AddEmployee(ctx, sales)
	require.NoError(t, err)

	t.Run("requires at least one filter", func(t *testing.T) {
		_, err := svc.FilterEmployees(ctx, "", "")
		require.Equal(t, service.KindValidation, service.KindOf(err))

		_, err = svc.FilterEmployees(ctx, "  ", " ")
		require.Equal(t, service.KindValidation, service.KindOf(err))
	})

	t.Run("department only", func(t *testing.T) {
		got, err := svc.FilterEmployees(ctx, "", "Eng")
		require.NoError(t, err)
		require.Len(t, got, 1)
		require.Equal(t, "eng@x.com", got[0].Email)
	})

	t.Run("designation only", func(t *testing.T) {
		got, err := svc.FilterEmployees(ctx, "Engineer", "")
		require.NoError(t, err)
		require.Len(t, got, 1)
		require.Equal(t, "eng@x.com", got[0].Email)
	})

	t.Run("both AND", func(t *testing.T) {
		got, err := svc.FilterEmployees(ctx, "Manager", "Eng")
		require.NoError(t, err)
		require.Empty(t, got)
	})
}

func TestUpdateEmployee(t *testing.T) {
	ctx := context.Background()
	svc := newEmployeeService(t)

	created, err := svc.AddEmployee(ctx, addParams("bob@x.com"))
	require.NoError(t, err)

	t.Run("partial update keeps other fields", func(t *testing.T) {
		dept := "Platform"
		salary := 2000.0
		got, err := svc.UpdateEmployee(ctx, created.ID, service.UpdateEmployeeParams{
			Department: &dept,
			Salary:     &salary,
		})
		require.NoError(t, err)
		require.Equal(t, "Platform", got.Department)
		require.Equal(t, 2000.0, got.Salary)
		require.Equal(t, "Bob", got.FirstName)
		require.Equal(t, "bob@x.com", got.Email)
	})

	t.Run("date re-parsed", func(t *testing.T) {
		date := "2024-01-15"
		got, err := svc.UpdateEmployee(ctx, created.ID, service.UpdateEmployeeParams{
			DateOfJoining: &date,
		})
		require.NoError(t, err)
		require.Equal(t, "2024-01-15", got.DateOfJoining.Format("2006-01-02"))
	})

	t.Run("unknown id", func(t *testing.T) {
		dept := "Eng"
		_, err := svc.UpdateEmployee(ctx, "missing-id", service.UpdateEmployeeParams{Department: &dept})
		require.Equal(t, service.KindNotFound, service.KindOf(err))
	})

	t.Run("merged record re-validated", func(t *testing.T) {
		salary := 500.0
		_, err := svc.UpdateEmployee(ctx, created.ID, service.UpdateEmployeeParams{Salary: &salary})
		require.Equal(t, service.KindValidation, service.KindOf(err))

		// Rolled back: the record keeps its previous salary.
		got, err := svc.GetEmployeeByID(ctx, created.ID)
		require.NoError(t, err)
		require.Equal(t, 2000.0, got.Salary)
	})

	t.Run("email collision", func(t *testing.T) {
		other, err := svc.AddEmployee(ctx, addParams("other@x.com"))
		require.NoError(t, err)

		email := "bob@x.com"
		_, err = svc.UpdateEmployee(ctx, other.ID, service.UpdateEmployeeParams{Email: &email})
		require.Equal(t, service.KindValidation, service.KindOf(err))

		// Original record untouched.
		got, err := svc.GetEmployeeByID(ctx, other.ID)
		require.NoError(t, err)
		require.Equal(t, "other@x.com", got.Email)
	})

	t.Run("setting own email is not a collision", func(t *testing.T) {
		email := "bob@x.com"
		got, err := svc.UpdateEmployee(ctx, created.ID, service.UpdateEmployeeParams{Email: &email})
		require.NoError(t, err)
		require.Equal(t, "bob@x.com", got.Email)
	})
}

func TestDeleteEmployee(t *testing.T) {
	ctx := context.Background()
	svc := newEmployeeService(t)

	created, err := svc.AddEmployee(ctx, addParams("bob@x.com"))
	require.NoError(t, err)

	ok, err := svc.DeleteEmployee(ctx, created.ID)
	require.NoError(t, err)
	require.True(t, ok)

	// Second delete of the same id observably fails.
	_, err = svc.DeleteEmployee(ctx, created.ID)
	require.Equal(t, service.KindNotFound, service.KindOf(err))

	_, err = svc.GetEmployeeByID(ctx, created.ID)
	require.Equal(t, service.KindNotFound, service.KindOf(err))
}

func TestListEmployeesNewestFirst(t *testing.T) {
	ctx := context.Background()
	svc := newEmployeeService(t)

	_, err := svc.AddEmployee(ctx, addParams("first@x.com"))
	require.NoError(t, err)
	_, err = svc.AddEmployee(ctx, addParams("second@x.com"))
	require.NoError(t, err)

	list, err := svc.ListEmployees(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, "second@x.com", list[0].Email)
	require.Equal(t, "first@x.com", list[1].Email)
}
