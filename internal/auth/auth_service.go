package auth

import (
	"context"
	"errors"
	"time"

	autherrors "go-hris-graphql/internal/auth/errors"
	"go-hris-graphql/internal/shared/apperror"
	"go-hris-graphql/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	Signup(ctx context.Context, req SignupRequest) (UserResponse, error)
	Login(ctx context.Context, req LoginRequest) (UserResponse, error)
}

type service struct {
	repo   Repository
	hasher PasswordHasher
	logger *zap.Logger
}

func NewService(repo Repository, hasher PasswordHasher, logger ...*zap.Logger) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	if hasher == nil {
		hasher = NewBcryptHasher(PasswordCost)
	}
	return &service{repo: repo, hasher: hasher, logger: l}
}

func (s *service) Signup(ctx context.Context, req SignupRequest) (UserResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	if err := apperror.Validate(req); err != nil {
		log.Debug("signup rejected, missing fields", zap.Error(err))
		return UserResponse{}, autherrors.ErrAllFieldsRequired
	}

	// 1. Username and email are both unique
	existing, err := s.repo.FindByUsernameOrEmail(ctx, req.Username, req.Email)
	if err == nil && existing != nil {
		log.Info("signup rejected, user exists",
			zap.String("username", req.Username),
			zap.String("email", req.Email),
		)
		return UserResponse{}, autherrors.ErrUserAlreadyExists
	}
	if mapped := mapRepositoryError(err); mapped != nil && !errors.Is(mapped, autherrors.ErrUserNotFound) {
		log.Error("signup lookup failed", zap.Error(err))
		return UserResponse{}, mapped
	}

	// 2. Hash password
	hashed, err := s.hasher.Hash(req.Password)
	if err != nil {
		log.Error("signup hash password failed", zap.Error(err))
		return UserResponse{}, err
	}

	// 3. Persist
	user := &User{
		ID:       uuid.New(),
		Username: req.Username,
		Email:    req.Email,
		Password: hashed,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		log.Error("signup persist failed", zap.Error(err))
		return UserResponse{}, mapRepositoryError(err)
	}

	log.Info("signup success", zap.String("user_id", user.ID.String()))
	return mapToResponse(*user), nil
}

func (s *service) Login(ctx context.Context, req LoginRequest) (UserResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	if (req.Username == "" && req.Email == "") || req.Password == "" {
		return UserResponse{}, autherrors.ErrCredentialsRequired
	}

	user, err := s.repo.FindByUsernameOrEmail(ctx, req.Username, req.Email)
	if err != nil {
		mapped := mapRepositoryError(err)
		if !errors.Is(mapped, autherrors.ErrUserNotFound) {
			log.Error("login lookup failed", zap.Error(err))
		}
		return UserResponse{}, mapped
	}

	if err := s.hasher.Compare(user.Password, req.Password); err != nil {
		log.Info("login rejected, password mismatch", zap.String("user_id", user.ID.String()))
		return UserResponse{}, autherrors.ErrInvalidPassword
	}

	log.Info("login success", zap.String("user_id", user.ID.String()))
	return mapToResponse(*user), nil
}

func mapToResponse(u User) UserResponse {
	return UserResponse{
		ID:        u.ID.String(),
		Username:  u.Username,
		Email:     u.Email,
		CreatedAt: formatTime(u.CreatedAt),
		UpdatedAt: formatTime(u.UpdatedAt),
	}
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
