// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	deliverycontext "restaurant/internal/delivery/context"
	"restaurant/internal/domain/entity"
	domainerrors "restaurant/internal/domain/errors"
	"restaurant/internal/domain/repository"
	"restaurant/internal/domain/service"
	"restaurant/internal/errors"
	"restaurant/internal/usecase"

	"go.uber.org/fx"
)

const minPasswordLength = 8

// userService implements the UserUsecase interface.
type userService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateUser registers a new waiter account.
func (srv *userService) CreateUser(ctx context.Context, input usecase.CreateUserInput) (*entity.User, error) {
	email := strings.TrimSpace(input.Email)

	user, err := entity.NewUser(email, input.Name)
	if err != nil {
		return nil, err
	}
	if len(input.Password) < minPasswordLength {
		return nil, domainerrors.NewValidationError("password", "Password must be at least 8 characters long")
	}

	_, err = srv.userRepo.FindByEmail(ctx, email)
	if err == nil {
		return nil, srv.duplicateEmail(email)
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to check existing user")
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password", slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed
	}
	user.PasswordHash = hash

	if err := srv.userRepo.Create(ctx, user); err != nil {
		// Lost a race against a concurrent registration.
		if errors.Is(err, domainerrors.ErrUserAlreadyExists) {
			return nil, srv.duplicateEmail(email)
		}

		return nil, errors.Wrap(err, "failed to create user")
	}

	srv.log(ctx).Info("Waiter registered", slog.Int64("userID", user.ID), slog.String("email", email))

	return user, nil
}

func (srv *userService) duplicateEmail(email string) error {
	return domainerrors.ErrUserAlreadyExists.WithMessage(fmt.Sprintf("Email %s is already registered", email))
}

// GetUserByEmail returns the waiter registered under email.
func (srv *userService) GetUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	user, err := srv.userRepo.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrUserNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to get user")
	}

	return user, nil
}

// Login checks the credentials and issues an access token.
func (srv *userService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	user, err := srv.userRepo.FindByEmail(ctx, strings.TrimSpace(input.Email))
	if errors.Is(err, repository.ErrUserNotFound) {
		srv.log(ctx).Warn("Login attempt for unknown email", slog.String("email", input.Email))

		return nil, domainerrors.ErrInvalidCredentials
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user for login")
	}

	if user.PasswordHash == "" || !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login attempt with wrong password", slog.Int64("userID", user.ID))

		return nil, domainerrors.ErrInvalidCredentials
	}

	token, err := srv.tokenService.GenerateAccessToken(user.ID, user.Email)
	if err != nil {
		srv.log(ctx).Error("Failed to generate access token", slog.Int64("userID", user.ID), slog.Any("error", err))

		return nil, domainerrors.ErrTokenGenerationFailed
	}

	return &usecase.LoginOutput{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   int64(srv.tokenService.GetAccessTokenDuration().Seconds()),
		User:        user,
	}, nil
}

// Authenticate validates the token and loads the waiter it names.
func (srv *userService) Authenticate(ctx context.Context, token string) (*entity.User, error) {
	claims, err := srv.tokenService.ValidateToken(token)
	if err != nil {
		srv.log(ctx).Debug("Rejected access token", slog.Any("error", err))

		return nil, domainerrors.ErrInvalidToken
	}

	user, err := srv.userRepo.FindByEmail(ctx, claims.Email())
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrInvalidToken
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load token subject")
	}
	if user.ID != claims.UserID {
		srv.log(ctx).Warn("Token user id does not match subject", slog.Int64("tokenUserID", claims.UserID), slog.Int64("userID", user.ID))

		return nil, domainerrors.ErrInvalidToken
	}

	return user, nil
}
