package gqltype

import "github.com/graphql-go/graphql"

// envelope is satisfied by response.Result[T] for any T.
type envelope interface {
	IsSuccess() bool
	GetMessage() string
	Payload() any
}

// Envelope builds the {success, message, <entityField>} object type shared by
// mutations and login.
func Envelope(name, entityField string, entity graphql.Output) *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: name,
		Fields: graphql.Fields{
			"success": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Boolean),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if e, ok := p.Source.(envelope); ok {
						return e.IsSuccess(), nil
					}
					return false, nil
				},
			},
			"message": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if e, ok := p.Source.(envelope); ok {
						return e.GetMessage(), nil
					}
					return "", nil
				},
			},
			entityField: &graphql.Field{
				Type: entity,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if e, ok := p.Source.(envelope); ok {
						return e.Payload(), nil
					}
					return nil, nil
				},
			},
		},
	})
}
