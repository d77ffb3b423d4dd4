// Package app реализует прикладные сценарии маркетплейса.
package app

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"notemarket/internal/marketplace/domain/entities"
	"notemarket/internal/marketplace/ports/api"
	"notemarket/internal/marketplace/ports/repositories"
	svc "notemarket/internal/marketplace/ports/services"
	"notemarket/pkg/logger"
)

const (
	methodRegister = "Register"
	methodLogin    = "Login"

	msgStartRegistration = "starting user registration"
	msgMissingUserFields = "registration request with missing fields"
	msgUnknownRole       = "registration request with unknown role"
	msgEmailExists       = "user with this email already exists"
	msgUserRegistered    = "user registered successfully"
	msgLoginAttempt      = "login attempt"
	msgLoginNonExistent  = "login attempt with non-existent email"
	msgLoginBadPassword  = "login attempt with invalid password"
	msgUserLoggedIn      = "user logged in successfully"

	msgErrCheckExistingUser = "failed to check existing user"
	msgErrHashPassword      = "failed to hash password"
	msgErrCreateUser        = "failed to create user"
	msgErrFindingUser       = "error finding user by email"
	msgErrVerifyingPassword = "error verifying password"

	errCtxValidatingUser    = "validating registration request"
	errCtxCheckingUser      = "checking existing user"
	errCtxEmailRegistered   = "email already registered"
	errCtxHashingPassword   = "hashing password"
	errCtxCreatingUser      = "creating user"
	errCtxFindingUser       = "finding user"
	errCtxVerifyingPassword = "verifying password"
)

// AccountUseCaseImpl реализует интерфейс AccountUseCase.
type AccountUseCaseImpl struct {
	userRepo    repositories.UserRepository
	passwordSvc svc.PasswordService
}

// NewAccountUseCase создает новый экземпляр сценариев учетных записей.
func NewAccountUseCase(
	userRepo repositories.UserRepository,
	passwordSvc svc.PasswordService,
) api.AccountUseCase {
	return &AccountUseCaseImpl{
		userRepo:    userRepo,
		passwordSvc: passwordSvc,
	}
}

// Register создает нового пользователя с предоставленными данными.
func (a *AccountUseCaseImpl) Register(ctx context.Context, name, email, password, role string) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("method", methodRegister), zap.String("email", email))
	log.Debug(ctx, msgStartRegistration)

	if name == "" || email == "" || password == "" || role == "" {
		log.Debug(ctx, msgMissingUserFields)
		return nil, fmt.Errorf("%s: %w", errCtxValidatingUser, entities.ErrMissingUserFields)
	}
	if !entities.ValidRole(role) {
		log.Debug(ctx, msgUnknownRole, zap.String("role", role))
		return nil, fmt.Errorf("%s: %w", errCtxValidatingUser, entities.ErrInvalidRole)
	}

	existingUser, err := a.userRepo.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, entities.ErrUserNotFound) {
		log.Error(ctx, msgErrCheckExistingUser, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxCheckingUser, err)
	}
	if existingUser != nil {
		log.Debug(ctx, msgEmailExists)
		return nil, fmt.Errorf("%s: %w", errCtxEmailRegistered, entities.ErrEmailAlreadyExists)
	}

	hashedPassword, err := a.passwordSvc.Hash(ctx, password)
	if err != nil {
		log.Error(ctx, msgErrHashPassword, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxHashingPassword, err)
	}

	newUser := &entities.User{
		Name:         name,
		Email:        email,
		PasswordHash: hashedPassword,
		Role:         role,
	}

	createdUser, err := a.userRepo.Create(ctx, newUser)
	if err != nil {
		log.Error(ctx, msgErrCreateUser, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxCreatingUser, err)
	}

	log.Info(ctx, msgUserRegistered, zap.Int64("user_id", createdUser.ID), zap.String("role", createdUser.Role))
	return createdUser, nil
}

// Login проверяет учетные данные пользователя. Несуществующий email и
// неверный пароль дают один и тот же результат.
func (a *AccountUseCaseImpl) Login(ctx context.Context, email, password string) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("method", methodLogin), zap.String("email", email))
	log.Debug(ctx, msgLoginAttempt)

	if email == "" || password == "" {
		return nil, fmt.Errorf("%s: %w", errCtxValidatingUser, entities.ErrMissingUserFields)
	}

	user, err := a.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, entities.ErrUserNotFound) {
			log.Debug(ctx, msgLoginNonExistent)
			return nil, fmt.Errorf("%s: %w", errCtxFindingUser, entities.ErrInvalidCredentials)
		}
		log.Error(ctx, msgErrFindingUser, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxFindingUser, err)
	}

	valid, err := a.passwordSvc.Verify(ctx, password, user.PasswordHash)
	if err != nil {
		log.Error(ctx, msgErrVerifyingPassword, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxVerifyingPassword, err)
	}
	if !valid {
		log.Debug(ctx, msgLoginBadPassword)
		return nil, fmt.Errorf("%s: %w", errCtxVerifyingPassword, entities.ErrInvalidCredentials)
	}

	log.Info(ctx, msgUserLoggedIn, zap.Int64("user_id", user.ID))
	return user, nil
}
