package store

import (
	"context"
	"errors"

	"github.com/aussiebroadwan/empdir/internal/empdir/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers implement
// this. Uniqueness of users.username, users.email and employees.email is
// the driver's responsibility to enforce with real constraints — the
// services only pre-check for friendlier error messages.
type Store interface {
	Users() Users
	Employees() Employees

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction. If fn returns an error the
	// transaction is rolled back, otherwise it is committed. Preferred over
	// Tx for multi-step check-then-write operations.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds
// Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByUsername is used during login and the signup pre-check.
	GetUserByUsername(ctx context.Context, username string) (domain.User, error)

	// GetUserByEmail is used during login and the signup pre-check.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// CreateUser inserts a new user (id is provided by the app via ULID).
	// Returns ErrAlreadyExists when username or email is taken.
	CreateUser(ctx context.Context, u domain.User) error

	// CountUsers returns the total number of user records.
	CountUsers(ctx context.Context) (int64, error)
}

type Employees interface {
	// GetEmployeeByID returns an employee by id.
	GetEmployeeByID(ctx context.Context, id string) (domain.Employee, error)

	// GetEmployeeByEmail is used for the duplicate-email pre-checks.
	GetEmployeeByEmail(ctx context.Context, email string) (domain.Employee, error)

	// ListEmployees returns every record ordered by creation time,
	// most recent first.
	ListEmployees(ctx context.Context) ([]domain.Employee, error)

	// FilterEmployees applies equality matches on whichever of designation
	// and department is non-empty (AND semantics when both are set).
	FilterEmployees(ctx context.Context, designation, department string) ([]domain.Employee, error)

	// CreateEmployee inserts a new employee. Returns ErrAlreadyExists when
	// the email is taken.
	CreateEmployee(ctx context.Context, e domain.Employee) error

	// UpdateEmployee rewrites the mutable fields of an existing record and
	// bumps updated_at. Returns ErrNotFound when the id does not exist and
	// ErrAlreadyExists when the new email collides.
	UpdateEmployee(ctx context.Context, e domain.Employee) error

	// DeleteEmployee removes a record. Returns ErrNotFound when the id
	// does not exist.
	DeleteEmployee(ctx context.Context, id string) error

	// CountEmployees returns the total number of employee records.
	CountEmployees(ctx context.Context) (int64, error)
}
