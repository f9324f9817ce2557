package autherrors

import (
	"go-hris-graphql/internal/shared/apperror"
	"net/http"
)

var (
	ErrAllFieldsRequired = apperror.New(
		apperror.CodeInvalidInput,
		"All fields are required",
		http.StatusBadRequest,
	)

	ErrCredentialsRequired = apperror.New(
		apperror.CodeInvalidInput,
		"Username or email and password are required",
		http.StatusBadRequest,
	)

	ErrUserAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Username or email already exists",
		http.StatusConflict,
	)

	ErrUserNotFound = apperror.New(
		apperror.CodeNotFound,
		"User not found",
		http.StatusNotFound,
	)

	ErrInvalidPassword = apperror.New(
		apperror.CodeUnauthorized,
		"Invalid password",
		http.StatusUnauthorized,
	)
)
