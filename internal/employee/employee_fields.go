package employee

import (
	"go-hris-graphql/internal/shared/gqltype"

	"github.com/graphql-go/graphql"
)

var EmployeeType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Employee",
	Fields: graphql.Fields{
		"id":              &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
		"first_name":      &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"last_name":       &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"email":           &graphql.Field{Type: graphql.String},
		"gender":          &graphql.Field{Type: graphql.String},
		"designation":     &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"salary":          &graphql.Field{Type: graphql.NewNonNull(graphql.Float)},
		"date_of_joining": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"department":      &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"employee_photo":  &graphql.Field{Type: graphql.String},
		"created_at":      &graphql.Field{Type: graphql.String},
		"updated_at":      &graphql.Field{Type: graphql.String},
	},
})

var EmployeeResponseType = gqltype.Envelope("EmployeeResponse", "employee", EmployeeType)

func RegisterFields(query, mutation graphql.Fields, resolver *Resolver) {
	query["getAllEmployees"] = &graphql.Field{
		Type:    graphql.NewList(EmployeeType),
		Resolve: resolver.GetAllEmployees,
	}

	query["getEmployeeById"] = &graphql.Field{
		Type: EmployeeType,
		Args: graphql.FieldConfigArgument{
			"eid": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
		},
		Resolve: resolver.GetEmployeeByID,
	}

	query["searchEmployees"] = &graphql.Field{
		Type: graphql.NewList(EmployeeType),
		Args: graphql.FieldConfigArgument{
			"designation": &graphql.ArgumentConfig{Type: graphql.String},
			"department":  &graphql.ArgumentConfig{Type: graphql.String},
		},
		Resolve: resolver.SearchEmployees,
	}

	mutation["addNewEmployee"] = &graphql.Field{
		Type: EmployeeResponseType,
		Args: graphql.FieldConfigArgument{
			"first_name":      &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
			"last_name":       &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
			"email":           &graphql.ArgumentConfig{Type: graphql.String},
			"gender":          &graphql.ArgumentConfig{Type: graphql.String},
			"designation":     &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
			"salary":          &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Float)},
			"date_of_joining": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
			"department":      &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
			"employee_photo":  &graphql.ArgumentConfig{Type: graphql.String},
		},
		Resolve: resolver.AddNewEmployee,
	}

	mutation["updateEmployeeById"] = &graphql.Field{
		Type: EmployeeResponseType,
		Args: graphql.FieldConfigArgument{
			"eid":             &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
			"first_name":      &graphql.ArgumentConfig{Type: graphql.String},
			"last_name":       &graphql.ArgumentConfig{Type: graphql.String},
			"email":           &graphql.ArgumentConfig{Type: graphql.String},
			"gender":          &graphql.ArgumentConfig{Type: graphql.String},
			"designation":     &graphql.ArgumentConfig{Type: graphql.String},
			"salary":          &graphql.ArgumentConfig{Type: graphql.Float},
			"date_of_joining": &graphql.ArgumentConfig{Type: graphql.String},
			"department":      &graphql.ArgumentConfig{Type: graphql.String},
			"employee_photo":  &graphql.ArgumentConfig{Type: graphql.String},
		},
		Resolve: resolver.UpdateEmployeeByID,
	}

	mutation["deleteEmployeeById"] = &graphql.Field{
		Type: EmployeeResponseType,
		Args: graphql.FieldConfigArgument{
			"eid": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
		},
		Resolve: resolver.DeleteEmployeeByID,
	}
}
