package response

import "go-hris-graphql/internal/shared/apperror"

// Result is the {success, message, entity} envelope returned by GraphQL
// mutations and login. A failed Result never carries an entity.
type Result[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Entity  *T     `json:"-"`
}

func Ok[T any](entity T, message string) Result[T] {
	return Result[T]{Success: true, Message: message, Entity: &entity}
}

func Fail[T any](message string) Result[T] {
	return Result[T]{Success: false, Message: message}
}

// Payload returns the entity as an untyped value, nil when absent.
func (r Result[T]) Payload() any {
	if r.Entity == nil {
		return nil
	}
	return *r.Entity
}

func (r Result[T]) IsSuccess() bool { return r.Success }

func (r Result[T]) GetMessage() string { return r.Message }

// FromError turns a domain error into a failed Result. Errors that are not
// *apperror.AppError are returned as-is so they surface as operation errors.
func FromError[T any](err error) (Result[T], error) {
	if appErr, ok := apperror.As(err); ok {
		return Fail[T](appErr.Message), nil
	}
	return Result[T]{}, err
}
