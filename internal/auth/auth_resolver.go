package auth

import (
	"go-hris-graphql/internal/shared/gqltype"
	"go-hris-graphql/internal/shared/response"

	"github.com/graphql-go/graphql"
	"go.uber.org/zap"
)

const (
	msgSignupSuccess = "User created successfully"
	msgLoginSuccess  = "Login successful"
)

type Resolver struct {
	service Service
	logger  *zap.Logger
}

func NewResolver(service Service, logger ...*zap.Logger) *Resolver {
	l := zap.L().Named("auth.resolver")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.resolver")
	}
	return &Resolver{service: service, logger: l}
}

func (r *Resolver) Signup(p graphql.ResolveParams) (interface{}, error) {
	req := SignupRequest{
		Username: gqltype.String(p.Args, "username"),
		Email:    gqltype.String(p.Args, "email"),
		Password: gqltype.String(p.Args, "password"),
	}

	user, err := r.service.Signup(p.Context, req)
	if err != nil {
		return r.fail("signup", err)
	}
	return response.Ok(user, msgSignupSuccess), nil
}

func (r *Resolver) Login(p graphql.ResolveParams) (interface{}, error) {
	req := LoginRequest{
		Username: gqltype.String(p.Args, "username"),
		Email:    gqltype.String(p.Args, "email"),
		Password: gqltype.String(p.Args, "password"),
	}

	user, err := r.service.Login(p.Context, req)
	if err != nil {
		return r.fail("login", err)
	}
	return response.Ok(user, msgLoginSuccess), nil
}

func (r *Resolver) fail(op string, err error) (interface{}, error) {
	res, err := response.FromError[UserResponse](err)
	if err != nil {
		r.logger.Error("graphql auth operation failed", zap.String("operation", op), zap.Error(err))
		return nil, err
	}
	r.logger.Debug("graphql auth operation rejected",
		zap.String("operation", op),
		zap.String("message", res.Message),
	)
	return res, nil
}
