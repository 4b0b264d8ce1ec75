package graph

import (
	"time"

	"github.com/aussiebroadwan/empdir/internal/empdir/domain"
)

// Wire shapes for the GraphQL boundary. The json tags are the literal
// external field names the default resolver matches against; the password
// hash deliberately has no representation here.

type userOut struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

type authPayloadOut struct {
	Token string  `json:"token"`
	User  userOut `json:"user"`
}

type employeeOut struct {
	ID            string  `json:"id"`
	FirstName     string  `json:"first_name"`
	LastName      string  `json:"last_name"`
	Email         string  `json:"email"`
	Gender        string  `json:"gender"`
	Designation   string  `json:"designation"`
	Salary        float64 `json:"salary"`
	DateOfJoining string  `json:"date_of_joining"`
	Department    string  `json:"department"`
	EmployeePhoto string  `json:"employee_photo"`
	CreatedAt     string  `json:"created_at"`
	UpdatedAt     string  `json:"updated_at"`
}

func outUser(u domain.User) userOut {
	return userOut{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		CreatedAt: formatTime(u.CreatedAt),
		UpdatedAt: formatTime(u.UpdatedAt),
	}
}

func outAuthPayload(p domain.AuthPayload) authPayloadOut {
	return authPayloadOut{Token: p.Token, User: outUser(p.User)}
}

func outEmployee(e domain.Employee) employeeOut {
	return employeeOut{
		ID:            e.ID,
		FirstName:     e.FirstName,
		LastName:      e.LastName,
		Email:         e.Email,
		Gender:        string(e.Gender),
		Designation:   e.Designation,
		Salary:        e.Salary,
		DateOfJoining: formatTime(e.DateOfJoining),
		Department:    e.Department,
		EmployeePhoto: e.EmployeePhoto,
		CreatedAt:     formatTime(e.CreatedAt),
		UpdatedAt:     formatTime(e.UpdatedAt),
	}
}

func outEmployees(list []domain.Employee) []employeeOut {
	out := make([]employeeOut, 0, len(list))
	for _, e := range list {
		out = append(out, outEmployee(e))
	}
	return out
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
