package employee

import (
	"errors"

	employeeerrors "go-hris-graphql/internal/employee/errors"
	"go-hris-graphql/internal/shared/apperror"

	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const checkViolation = "23514"

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return employeeerrors.ErrEmployeeNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == checkViolation && pgErr.ConstraintName == "chk_employees_salary" {
		return employeeerrors.ErrSalaryTooLow
	}

	return err
}

// mapValidationError reports the salary floor ahead of any other field.
func mapValidationError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			if fe.StructField() == "Salary" {
				return employeeerrors.ErrSalaryTooLow
			}
		}
	}
	return apperror.MapValidationError(err)
}
