package graph

import "github.com/graphql-go/graphql"

// NewSchema builds the executable schema around the given root resolver.
// Field and operation names are the external contract; renaming any of
// them is a breaking change.
func NewSchema(r *Resolver) (graphql.Schema, error) {
	genderEnum := graphql.NewEnum(graphql.EnumConfig{
		Name: "Gender",
		Values: graphql.EnumValueConfigMap{
			"Male":   &graphql.EnumValueConfig{Value: "Male"},
			"Female": &graphql.EnumValueConfig{Value: "Female"},
			"Other":  &graphql.EnumValueConfig{Value: "Other"},
		},
	})

	userType := graphql.NewObject(graphql.ObjectConfig{
		Name: "User",
		Fields: graphql.Fields{
			"id":         &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"username":   &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"email":      &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"created_at": &graphql.Field{Type: graphql.String},
			"updated_at": &graphql.Field{Type: graphql.String},
		},
	})

	authPayloadType := graphql.NewObject(graphql.ObjectConfig{
		Name: "AuthPayload",
		Fields: graphql.Fields{
			"token": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"user":  &graphql.Field{Type: graphql.NewNonNull(userType)},
		},
	})

	employeeType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Employee",
		Fields: graphql.Fields{
			"id":              &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"first_name":      &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"last_name":       &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"email":           &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"gender":          &graphql.Field{Type: graphql.NewNonNull(genderEnum)},
			"designation":     &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"salary":          &graphql.Field{Type: graphql.NewNonNull(graphql.Float)},
			"date_of_joining": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"department":      &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"employee_photo":  &graphql.Field{Type: graphql.String},
			"created_at":      &graphql.Field{Type: graphql.String},
			"updated_at":      &graphql.Field{Type: graphql.String},
		},
	})

	queryType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"login": &graphql.Field{
				Type: authPayloadType,
				Args: graphql.FieldConfigArgument{
					"username": &graphql.ArgumentConfig{Type: graphql.String},
					"email":    &graphql.ArgumentConfig{Type: graphql.String},
					"password": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: r.resolveLogin,
			},
			"getAllEmployees": &graphql.Field{
				Type:    graphql.NewList(graphql.NewNonNull(employeeType)),
				Resolve: r.resolveGetAllEmployees,
			},
			"getEmployeeById": &graphql.Field{
				Type: employeeType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: r.resolveGetEmployeeByID,
			},
			"getEmployeesByFilter": &graphql.Field{
				Type: graphql.NewList(graphql.NewNonNull(employeeType)),
				Args: graphql.FieldConfigArgument{
					"designation": &graphql.ArgumentConfig{Type: graphql.String},
					"department":  &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: r.resolveGetEmployeesByFilter,
			},
		},
	})

	mutationType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"signup": &graphql.Field{
				Type: authPayloadType,
				Args: graphql.FieldConfigArgument{
					"username": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"email":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"password": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: r.resolveSignup,
			},
			"addEmployee": &graphql.Field{
				Type: employeeType,
				Args: graphql.FieldConfigArgument{
					"first_name":      &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"last_name":       &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"email":           &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"gender":          &graphql.ArgumentConfig{Type: graphql.NewNonNull(genderEnum)},
					"designation":     &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"salary":          &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Float)},
					"date_of_joining": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"department":      &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"employee_photo":  &graphql.ArgumentConfig{Type: graphql.String, DefaultValue: ""},
				},
				Resolve: r.resolveAddEmployee,
			},
			"updateEmployee": &graphql.Field{
				Type: employeeType,
				Args: graphql.FieldConfigArgument{
					"id":              &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"first_name":      &graphql.ArgumentConfig{Type: graphql.String},
					"last_name":       &graphql.ArgumentConfig{Type: graphql.String},
					"email":           &graphql.ArgumentConfig{Type: graphql.String},
					"gender":          &graphql.ArgumentConfig{Type: genderEnum},
					"designation":     &graphql.ArgumentConfig{Type: graphql.String},
					"salary":          &graphql.ArgumentConfig{Type: graphql.Float},
					"date_of_joining": &graphql.ArgumentConfig{Type: graphql.String},
					"department":      &graphql.ArgumentConfig{Type: graphql.String},
					"employee_photo":  &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: r.resolveUpdateEmployee,
			},
			"deleteEmployee": &graphql.Field{
				Type: graphql.Boolean,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: r.resolveDeleteEmployee,
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    queryType,
		Mutation: mutationType,
	})
}
