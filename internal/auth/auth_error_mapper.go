package auth

import (
	"errors"
	"strings"

	autherrors "go-hris-graphql/internal/auth/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const uniqueViolation = "23505"

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return autherrors.ErrUserNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return autherrors.ErrUserAlreadyExists
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") &&
		(strings.Contains(errMsg, "uq_users_username") || strings.Contains(errMsg, "uq_users_email")) {
		return autherrors.ErrUserAlreadyExists
	}

	return err
}
