package apperror

import "net/http"

var ErrInvalidInput = New(
	CodeInvalidInput,
	"The provided input is invalid",
	http.StatusBadRequest,
)

func RequiredField(field string) *AppError {
	return New(CodeInvalidInput, field+" is required", http.StatusBadRequest)
}

func InvalidField(field string) *AppError {
	return New(CodeInvalidInput, field+" is invalid", http.StatusBadRequest)
}
