package graph

import (
	"github.com/graphql-go/graphql"

	"github.com/aussiebroadwan/empdir/internal/empdir/service"
)

// Resolver is the root resolver for the GraphQL schema. It holds the
// services the named operations dispatch into.
type Resolver struct {
	Auth      *service.AuthService
	Employees *service.EmployeeService
}

func (r *Resolver) resolveLogin(p graphql.ResolveParams) (interface{}, error) {
	payload, err := r.Auth.Login(p.Context,
		stringArg(p, "username"),
		stringArg(p, "email"),
		stringArg(p, "password"),
	)
	if err != nil {
		return nil, wrapErr(err)
	}
	return outAuthPayload(payload), nil
}

func (r *Resolver) resolveSignup(p graphql.ResolveParams) (interface{}, error) {
	payload, err := r.Auth.Signup(p.Context,
		stringArg(p, "username"),
		stringArg(p, "email"),
		stringArg(p, "password"),
	)
	if err != nil {
		return nil, wrapErr(err)
	}
	return outAuthPayload(payload), nil
}

func (r *Resolver) resolveGetAllEmployees(p graphql.ResolveParams) (interface{}, error) {
	list, err := r.Employees.ListEmployees(p.Context)
	if err != nil {
		return nil, wrapErr(err)
	}
	return outEmployees(list), nil
}

func (r *Resolver) resolveGetEmployeeByID(p graphql.ResolveParams) (interface{}, error) {
	e, err := r.Employees.GetEmployeeByID(p.Context, stringArg(p, "id"))
	if err != nil {
		return nil, wrapErr(err)
	}
	return outEmployee(e), nil
}

func (r *Resolver) resolveGetEmployeesByFilter(p graphql.ResolveParams) (interface{}, error) {
	list, err := r.Employees.FilterEmployees(p.Context,
		stringArg(p, "designation"),
		stringArg(p, "department"),
	)
	if err != nil {
		return nil, wrapErr(err)
	}
	return outEmployees(list), nil
}

func (r *Resolver) resolveAddEmployee(p graphql.ResolveParams) (interface{}, error) {
	params := service.AddEmployeeParams{
		FirstName:     stringArg(p, "first_name"),
		LastName:      stringArg(p, "last_name"),
		Email:         stringArg(p, "email"),
		Gender:        stringArg(p, "gender"),
		Designation:   stringArg(p, "designation"),
		Salary:        floatArg(p, "salary"),
		DateOfJoining: stringArg(p, "date_of_joining"),
		Department:    stringArg(p, "department"),
		EmployeePhoto: stringArg(p, "employee_photo"),
	}

	e, err := r.Employees.AddEmployee(p.Context, params)
	if err != nil {
		return nil, wrapErr(err)
	}
	return outEmployee(e), nil
}

func (r *Resolver) resolveUpdateEmployee(p graphql.ResolveParams) (interface{}, error) {
	params := service.UpdateEmployeeParams{
		FirstName:     optStringArg(p, "first_name"),
		LastName:      optStringArg(p, "last_name"),
		Email:         optStringArg(p, "email"),
		Gender:        optStringArg(p, "gender"),
		Designation:   optStringArg(p, "designation"),
		Salary:        optFloatArg(p, "salary"),
		DateOfJoining: optStringArg(p, "date_of_joining"),
		Department:    optStringArg(p, "department"),
		EmployeePhoto: optStringArg(p, "employee_photo"),
	}

	e, err := r.Employees.UpdateEmployee(p.Context, stringArg(p, "id"), params)
	if err != nil {
		return nil, wrapErr(err)
	}
	return outEmployee(e), nil
}

func (r *Resolver) resolveDeleteEmployee(p graphql.ResolveParams) (interface{}, error) {
	ok, err := r.Employees.DeleteEmployee(p.Context, stringArg(p, "id"))
	if err != nil {
		return nil, wrapErr(err)
	}
	return ok, nil
}

// stringArg returns the named argument or "" when absent.
func stringArg(p graphql.ResolveParams, name string) string {
	if v, ok := p.Args[name].(string); ok {
		return v
	}
	return ""
}

// floatArg returns the named argument or 0 when absent.
func floatArg(p graphql.ResolveParams, name string) float64 {
	switch v := p.Args[name].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	default:
		return 0
	}
}

// optStringArg distinguishes "absent" (nil) from "present".
func optStringArg(p graphql.ResolveParams, name string) *string {
	if v, ok := p.Args[name].(string); ok {
		return &v
	}
	return nil
}

// optFloatArg distinguishes "absent" (nil) from "present".
func optFloatArg(p graphql.ResolveParams, name string) *float64 {
	switch v := p.Args[name].(type) {
	case float64:
		return &v
	case int:
		f := float64(v)
		return &f
	default:
		return nil
	}
}
