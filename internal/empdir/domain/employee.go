package domain

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Gender is the fixed enumeration for the employee gender field.
type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderOther  Gender = "Other"
)

// ParseGender validates a raw string against the enumeration.
func ParseGender(s string) (Gender, error) {
	switch g := Gender(strings.TrimSpace(s)); g {
	case GenderMale, GenderFemale, GenderOther:
		return g, nil
	default:
		return "", fmt.Errorf("gender must be one of Male, Female or Other, got %q", s)
	}
}

// MinSalary is the lowest salary the schema accepts.
const MinSalary = 1000

var emailPattern = regexp.MustCompile(`.+@.+\..+`)

type Employee struct {
	ID            string
	FirstName     string
	LastName      string
	Email         string
	Gender        Gender
	Designation   string
	Salary        float64
	DateOfJoining time.Time
	Department    string
	EmployeePhoto string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Normalize trims surrounding whitespace off every string field.
func (e *Employee) Normalize() {
	e.FirstName = strings.TrimSpace(e.FirstName)
	e.LastName = strings.TrimSpace(e.LastName)
	e.Email = strings.TrimSpace(e.Email)
	e.Designation = strings.TrimSpace(e.Designation)
	e.Department = strings.TrimSpace(e.Department)
	e.EmployeePhoto = strings.TrimSpace(e.EmployeePhoto)
}

// Validate checks the full record against the schema constraints and
// returns the first violation. Callers are expected to Normalize first.
func (e *Employee) Validate() error {
	switch {
	case e.FirstName == "":
		return errors.New("first_name is required")
	case e.LastName == "":
		return errors.New("last_name is required")
	case e.Email == "":
		return errors.New("email is required")
	case !emailPattern.MatchString(e.Email):
		return fmt.Errorf("%q is not a valid email address", e.Email)
	case e.Designation == "":
		return errors.New("designation is required")
	case e.Department == "":
		return errors.New("department is required")
	case e.Salary < MinSalary:
		return fmt.Errorf("salary must be at least %d", MinSalary)
	case e.DateOfJoining.IsZero():
		return errors.New("date_of_joining is required")
	}

	if _, err := ParseGender(string(e.Gender)); err != nil {
		return err
	}

	return nil
}

// EmployeePatch is an explicit partial update: nil means "not supplied".
// Apply merges the supplied fields over an existing record; the merged
// record must then be validated as a whole.
type EmployeePatch struct {
	FirstName     *string
	LastName      *string
	Email         *string
	Gender        *Gender
	Designation   *string
	Salary        *float64
	DateOfJoining *time.Time
	Department    *string
	EmployeePhoto *string
}

// IsZero reports whether the patch carries no fields at all.
func (p EmployeePatch) IsZero() bool {
	return p.FirstName == nil && p.LastName == nil && p.Email == nil &&
		p.Gender == nil && p.Designation == nil && p.Salary == nil &&
		p.DateOfJoining == nil && p.Department == nil && p.EmployeePhoto == nil
}

func (p EmployeePatch) Apply(e *Employee) {
	if p.FirstName != nil {
		e.FirstName = *p.FirstName
	}
	if p.LastName != nil {
		e.LastName = *p.LastName
	}
	if p.Email != nil {
		e.Email = *p.Email
	}
	if p.Gender != nil {
		e.Gender = *p.Gender
	}
	if p.Designation != nil {
		e.Designation = *p.Designation
	}
	if p.Salary != nil {
		e.Salary = *p.Salary
	}
	if p.DateOfJoining != nil {
		e.DateOfJoining = *p.DateOfJoining
	}
	if p.Department != nil {
		e.Department = *p.Department
	}
	if p.EmployeePhoto != nil {
		e.EmployeePhoto = *p.EmployeePhoto
	}
}

// ParseDate parses the wire representation of date_of_joining. RFC 3339
// timestamps and bare calendar dates are accepted; everything else is an
// error.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), nil
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t.UTC(), nil
	}
	return time.Time{}, fmt.Errorf("%q is not a valid date, want RFC 3339 or YYYY-MM-DD", s)
}
