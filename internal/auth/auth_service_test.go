package auth_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"go-hris-graphql/internal/auth"
	autherrors "go-hris-graphql/internal/auth/errors"
	authMock "go-hris-graphql/internal/auth/mock"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func newTestService(t *testing.T) (auth.Service, *authMock.MockRepository) {
	ctrl := gomock.NewController(t)
	mockRepo := authMock.NewMockRepository(ctrl)
	return auth.NewService(mockRepo, auth.NewBcryptHasher(bcrypt.MinCost)), mockRepo
}

func TestService_Signup(t *testing.T) {
	ctx := context.Background()

	t.Run("success hashes password", func(t *testing.T) {
		service, mockRepo := newTestService(t)
		req := auth.SignupRequest{Username: "jdoe", Email: "jdoe@example.com", Password: "secret123"}

		mockRepo.EXPECT().
			FindByUsernameOrEmail(ctx, req.Username, req.Email).
			Return(nil, gorm.ErrRecordNotFound)

		mockRepo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, u *auth.User) error {
				assert.Equal(t, req.Username, u.Username)
				assert.Equal(t, req.Email, u.Email)
				assert.NotEqual(t, req.Password, u.Password)
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(req.Password)))
				u.CreatedAt = time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
				return nil
			})

		resp, err := service.Signup(ctx, req)

		assert.NoError(t, err)
		assert.Equal(t, "jdoe", resp.Username)
		assert.Equal(t, "jdoe@example.com", resp.Email)
		assert.Equal(t, "2026-01-02T03:04:05Z", resp.CreatedAt)
		_, parseErr := uuid.Parse(resp.ID)
		assert.NoError(t, parseErr)
	})

	t.Run("empty fields never reach the store", func(t *testing.T) {
		cases := map[string]auth.SignupRequest{
			"username": {Email: "a@example.com", Password: "x"},
			"email":    {Username: "a", Password: "x"},
			"password": {Username: "a", Email: "a@example.com"},
		}
		for name, req := range cases {
			t.Run(name, func(t *testing.T) {
				service, _ := newTestService(t)
				_, err := service.Signup(ctx, req)
				assert.Equal(t, autherrors.ErrAllFieldsRequired, err)
				assert.Equal(t, "All fields are required", err.Error())
			})
		}
	})

	t.Run("duplicate username or email", func(t *testing.T) {
		for _, existing := range []*auth.User{
			{ID: uuid.New(), Username: "jdoe", Email: "other@example.com"},
			{ID: uuid.New(), Username: "other", Email: "jdoe@example.com"},
		} {
			service, mockRepo := newTestService(t)
			mockRepo.EXPECT().
				FindByUsernameOrEmail(ctx, "jdoe", "jdoe@example.com").
				Return(existing, nil)

			_, err := service.Signup(ctx, auth.SignupRequest{Username: "jdoe", Email: "jdoe@example.com", Password: "pw"})
			assert.Equal(t, autherrors.ErrUserAlreadyExists, err)
			assert.Equal(t, "Username or email already exists", err.Error())
		}
	})

	t.Run("unique violation on insert", func(t *testing.T) {
		service, mockRepo := newTestService(t)
		mockRepo.EXPECT().FindByUsernameOrEmail(ctx, gomock.Any(), gomock.Any()).Return(nil, gorm.ErrRecordNotFound)
		mockRepo.EXPECT().Create(ctx, gomock.Any()).Return(&pgconn.PgError{Code: "23505", ConstraintName: "uq_users_email"})

		_, err := service.Signup(ctx, auth.SignupRequest{Username: "jdoe", Email: "jdoe@example.com", Password: "pw"})
		assert.Equal(t, autherrors.ErrUserAlreadyExists, err)
	})

	t.Run("lookup failure propagates", func(t *testing.T) {
		service, mockRepo := newTestService(t)
		dbErr := errors.New("connection refused")
		mockRepo.EXPECT().FindByUsernameOrEmail(ctx, gomock.Any(), gomock.Any()).Return(nil, dbErr)

		_, err := service.Signup(ctx, auth.SignupRequest{Username: "jdoe", Email: "jdoe@example.com", Password: "pw"})
		assert.ErrorIs(t, err, dbErr)
	})
}

func TestService_Login(t *testing.T) {
	ctx := context.Background()
	password := "password123"
	pw, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)

	mockUser := &auth.User{
		ID:       uuid.New(),
		Username: "admin",
		Email:    "admin@example.com",
		Password: string(pw),
	}

	t.Run("success by username", func(t *testing.T) {
		service, mockRepo := newTestService(t)
		mockRepo.EXPECT().FindByUsernameOrEmail(ctx, "admin", "").Return(mockUser, nil)

		resp, err := service.Login(ctx, auth.LoginRequest{Username: "admin", Password: password})

		assert.NoError(t, err)
		assert.Equal(t, mockUser.ID.String(), resp.ID)
		assert.Equal(t, mockUser.Email, resp.Email)
	})

	t.Run("success by email", func(t *testing.T) {
		service, mockRepo := newTestService(t)
		mockRepo.EXPECT().FindByUsernameOrEmail(ctx, "", "admin@example.com").Return(mockUser, nil)

		resp, err := service.Login(ctx, auth.LoginRequest{Email: "admin@example.com", Password: password})

		assert.NoError(t, err)
		assert.Equal(t, "admin", resp.Username)
	})

	t.Run("missing identifiers or password", func(t *testing.T) {
		service, _ := newTestService(t)

		_, err := service.Login(ctx, auth.LoginRequest{Password: password})
		assert.Equal(t, autherrors.ErrCredentialsRequired, err)

		_, err = service.Login(ctx, auth.LoginRequest{Username: "admin"})
		assert.Equal(t, autherrors.ErrCredentialsRequired, err)
	})

	t.Run("user not found", func(t *testing.T) {
		service, mockRepo := newTestService(t)
		mockRepo.EXPECT().FindByUsernameOrEmail(ctx, "ghost", "").Return(nil, gorm.ErrRecordNotFound)

		_, err := service.Login(ctx, auth.LoginRequest{Username: "ghost", Password: password})
		assert.Equal(t, autherrors.ErrUserNotFound, err)
		assert.Equal(t, "User not found", err.Error())
	})

	t.Run("wrong password", func(t *testing.T) {
		service, mockRepo := newTestService(t)
		mockRepo.EXPECT().FindByUsernameOrEmail(ctx, "admin", "").Return(mockUser, nil)

		_, err := service.Login(ctx, auth.LoginRequest{Username: "admin", Password: "wrongpass"})
		assert.Equal(t, autherrors.ErrInvalidPassword, err)
		assert.Equal(t, "Invalid password", err.Error())
	})
}

func TestService_SignupUsesHasher(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRepo := authMock.NewMockRepository(ctrl)
	mockHasher := authMock.NewMockPasswordHasher(ctrl)
	service := auth.NewService(mockRepo, mockHasher)
	ctx := context.Background()

	mockRepo.EXPECT().FindByUsernameOrEmail(ctx, "jdoe", "j@example.com").Return(nil, gorm.ErrRecordNotFound)
	mockHasher.EXPECT().Hash("pw").Return("hashed-pw", nil)
	mockRepo.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(ctx context.Context, u *auth.User) error {
			assert.Equal(t, "hashed-pw", u.Password)
			return nil
		})

	_, err := service.Signup(ctx, auth.SignupRequest{Username: "jdoe", Email: "j@example.com", Password: "pw"})
	assert.NoError(t, err)
}

func TestBcryptHasher(t *testing.T) {
	h := auth.NewBcryptHasher(bcrypt.MinCost)
	hash, err := h.Hash("s3cret")
	assert.NoError(t, err)
	assert.NoError(t, h.Compare(hash, "s3cret"))
	assert.Error(t, h.Compare(hash, "other"))

	// out of range cost falls back to the default
	def := auth.NewBcryptHasher(0)
	hash, err = def.Hash("x")
	assert.NoError(t, err)
	cost, _ := bcrypt.Cost([]byte(hash))
	assert.Equal(t, auth.PasswordCost, cost)
}
