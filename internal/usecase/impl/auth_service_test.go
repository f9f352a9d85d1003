package impl

import (
	"context"
	"testing"

	"encontro/internal/domain/entity"
	domainerrors "encontro/internal/domain/errors"
	"encontro/internal/domain/repository"
	"encontro/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service      usecase.AuthUsecase
	userRepo     *mockUserRepository
	hasher       *mockPasswordHasher
	tokenService *mockTokenService
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	t.Helper()

	userRepo := &mockUserRepository{}
	hasher := &mockPasswordHasher{}
	tokenService := &mockTokenService{}

	service := NewAuthService(AuthServiceParams{
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       discardLogger(),
	})

	return authServiceFixtures{
		service:      service,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func TestAuthService_Register_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	input := usecase.RegisterInput{
		FullName: "Maria Veras",
		Email:    "maria@example.com",
		Password: "senha-secreta",
		Descent:  "veras",
		Age:      34,
		City:     "Fortaleza",
	}

	fx.hasher.On("Hash", "senha-secreta").Return("hashed", nil)
	fx.userRepo.On("Create", ctx, mock.AnythingOfType("*entity.User")).Return(nil)
	fx.tokenService.On("IssueUserToken", mock.AnythingOfType("uuid.UUID")).Return("token-123", nil)

	out, err := fx.service.Register(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, "token-123", out.Token)
	assert.Equal(t, "maria@example.com", out.User.Email)
	assert.Equal(t, entity.DescentVeras, out.User.Descent)
	assert.Equal(t, "hashed", out.User.PasswordHash)
	assert.True(t, out.User.Active)
}

func TestAuthService_Register_InvalidDescent(t *testing.T) {
	fx := createTestAuthService(t)

	_, err := fx.service.Register(context.Background(), usecase.RegisterInput{
		FullName: "Maria",
		Email:    "maria@example.com",
		Password: "senha",
		Descent:  "outra-familia",
		Age:      34,
	})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), appErr.ErrorCode())

	fx.userRepo.AssertNotCalled(t, "Create")
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.hasher.On("Hash", mock.Anything).Return("hashed", nil)
	fx.userRepo.On("Create", ctx, mock.AnythingOfType("*entity.User")).
		Return(domainerrors.ErrEmailAlreadyRegistered)

	_, err := fx.service.Register(ctx, usecase.RegisterInput{
		FullName: "Maria",
		Email:    "maria@example.com",
		Password: "senha",
		Descent:  "saldanha",
		Age:      34,
	})
	assert.ErrorIs(t, err, domainerrors.ErrEmailAlreadyRegistered)
}

func TestAuthService_Login_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	userID := uuid.New()

	user := &entity.User{
		ID:           userID,
		Email:        "joao@example.com",
		PasswordHash: "hashed",
		Active:       true,
	}

	fx.userRepo.On("FindByEmail", ctx, "joao@example.com").Return(user, nil)
	fx.hasher.On("Check", "senha", "hashed").Return(true)
	fx.tokenService.On("IssueUserToken", userID).Return("token-456", nil)

	out, err := fx.service.Login(ctx, usecase.LoginInput{Email: "joao@example.com", Password: "senha"})
	require.NoError(t, err)
	assert.Equal(t, "token-456", out.Token)
	assert.Equal(t, userID, out.User.ID)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.userRepo.On("FindByEmail", ctx, "ghost@example.com").
		Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.Login(ctx, usecase.LoginInput{Email: "ghost@example.com", Password: "senha"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_BadPassword(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	user := &entity.User{ID: uuid.New(), PasswordHash: "hashed", Active: true}
	fx.userRepo.On("FindByEmail", ctx, mock.Anything).Return(user, nil)
	fx.hasher.On("Check", "errada", "hashed").Return(false)

	_, err := fx.service.Login(ctx, usecase.LoginInput{Email: "a@b.com", Password: "errada"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	fx.tokenService.AssertNotCalled(t, "IssueUserToken")
}

func TestAuthService_Login_DisabledAccount(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	user := &entity.User{ID: uuid.New(), PasswordHash: "hashed", Active: false}
	fx.userRepo.On("FindByEmail", ctx, mock.Anything).Return(user, nil)
	fx.hasher.On("Check", "senha", "hashed").Return(true)

	_, err := fx.service.Login(ctx, usecase.LoginInput{Email: "a@b.com", Password: "senha"})
	assert.ErrorIs(t, err, domainerrors.ErrAccountDisabled)
}

func TestAuthService_Profile(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.On("FindByID", ctx, userID).
		Return(&entity.User{ID: userID, Email: "joao@example.com"}, nil)

	user, err := fx.service.Profile(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, "joao@example.com", user.Email)
}

func TestAuthService_Profile_NotFound(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.On("FindByID", ctx, userID).Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.Profile(ctx, userID)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}
