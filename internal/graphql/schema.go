package graphql

import (
	"fmt"

	"github.com/graphql-go/graphql"
)

// FieldRegistrar adds a module's root fields to the Query and Mutation maps.
type FieldRegistrar func(query, mutation graphql.Fields)

const helloMessage = "GraphQL is working!"

func BuildSchema(registrars ...FieldRegistrar) (graphql.Schema, error) {
	queryFields := graphql.Fields{
		"hello": &graphql.Field{
			Type: graphql.String,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return helloMessage, nil
			},
		},
	}
	mutationFields := graphql.Fields{}

	for _, register := range registrars {
		register(queryFields, mutationFields)
	}

	schemaConfig := graphql.SchemaConfig{
		Query: graphql.NewObject(graphql.ObjectConfig{Name: "Query", Fields: queryFields}),
	}
	if len(mutationFields) > 0 {
		schemaConfig.Mutation = graphql.NewObject(graphql.ObjectConfig{Name: "Mutation", Fields: mutationFields})
	}

	schema, err := graphql.NewSchema(schemaConfig)
	if err != nil {
		return graphql.Schema{}, fmt.Errorf("failed to create schema: %w", err)
	}
	return schema, nil
}
