// Package app реализует бизнес-логику сервиса заметок.
package app

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"go.uber.org/zap"

	"notesapi/internal/domain/entities"
	"notesapi/internal/ports/repositories"
	svc "notesapi/internal/ports/services"
	"notesapi/pkg/logger"
)

const (
	methodRegister   = "Register"
	methodLogin      = "Login"
	methodGetUser    = "GetUser"
	methodListUsers  = "ListUsers"
	methodUpdateUser = "UpdateUser"
	methodDeleteUser = "DeleteUser"

	msgStartRegistration  = "starting user registration"
	msgInvalidEmailFormat = "invalid email format"
	msgInvalidPassword    = "invalid password"
	msgEmailExists        = "user with this email already exists"
	msgUserRegistered     = "user registered successfully"
	msgLoginAttempt       = "login attempt"
	msgLoginNonExistent   = "login attempt with non-existent email"
	msgLoginBadPassword   = "invalid password provided"
	msgUserLoggedIn       = "user logged in successfully"
	msgTokenIssuedLogin   = "access token issued for user"

	msgErrCheckExistingUser = "failed to check existing user"
	msgErrHashPassword      = "failed to hash password"
	msgErrCreateUser        = "failed to create user"
	msgErrFindingUser       = "error finding user by email"
	msgErrIssueToken        = "failed to issue access token"
	msgErrListUsers         = "failed to list users"
	msgErrUpdateUser        = "failed to update user"
	msgErrDeleteUser        = "failed to delete user"

	errCtxValidatingEmail    = "validating email"
	errCtxValidatingPassword = "validating password"
	errCtxCheckingUser       = "checking existing user"
	errCtxEmailRegistered    = "email already registered"
	errCtxHashingPassword    = "hashing password"
	errCtxCreatingUser       = "creating user"
	errCtxInvalidCredentials = "invalid credentials"
	errCtxFindingUser        = "finding user"
	errCtxIssuingToken       = "issuing token"
	errCtxListingUsers       = "listing users"
	errCtxUpdatingUser       = "updating user"
	errCtxDeletingUser       = "deleting user"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// AuthUseCase реализует регистрацию, аутентификацию и управление пользователями.
type AuthUseCase struct {
	userRepo    repositories.UserRepository
	passwordSvc svc.PasswordService
	tokenSvc    svc.TokenService
}

// NewAuthUseCase создает новый экземпляр сервиса аутентификации.
func NewAuthUseCase(
	userRepo repositories.UserRepository,
	passwordSvc svc.PasswordService,
	tokenSvc svc.TokenService,
) *AuthUseCase {
	return &AuthUseCase{
		userRepo:    userRepo,
		passwordSvc: passwordSvc,
		tokenSvc:    tokenSvc,
	}
}

// Register создает нового пользователя с указанными учетными данными.
func (a *AuthUseCase) Register(ctx context.Context, email, password string) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("method", methodRegister), zap.String("email", email))
	log.Debug(ctx, msgStartRegistration)

	if err := validateEmail(email); err != nil {
		log.Debug(ctx, msgInvalidEmailFormat, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxValidatingEmail, err)
	}
	if err := validatePassword(password); err != nil {
		log.Debug(ctx, msgInvalidPassword, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxValidatingPassword, err)
	}

	exists, err := a.userRepo.ExistsByEmail(ctx, email)
	if err != nil {
		log.Error(ctx, msgErrCheckExistingUser, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxCheckingUser, err)
	}
	if exists {
		log.Debug(ctx, msgEmailExists)
		return nil, fmt.Errorf("%s: %w", errCtxEmailRegistered, entities.ErrUserExists)
	}

	hashedPassword, err := a.passwordSvc.Hash(ctx, password)
	if err != nil {
		log.Error(ctx, msgErrHashPassword, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxHashingPassword, err)
	}

	newUser := &entities.User{
		Email:        email,
		PasswordHash: hashedPassword,
	}

	createdUser, err := a.userRepo.Create(ctx, newUser)
	if err != nil {
		if errors.Is(err, entities.ErrUserExists) {
			log.Debug(ctx, msgEmailExists)
			return nil, fmt.Errorf("%s: %w", errCtxEmailRegistered, err)
		}
		log.Error(ctx, msgErrCreateUser, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxCreatingUser, err)
	}

	log.Info(ctx, msgUserRegistered, zap.String("userID", createdUser.ID))
	return createdUser, nil
}

// Login аутентифицирует пользователя и выпускает bearer токен.
// Неизвестный email и неверный пароль дают одну и ту же ошибку,
// чтобы не раскрывать существование учетной записи.
func (a *AuthUseCase) Login(ctx context.Context, email, password string) (string, time.Time, error) {
	log := logger.Log(ctx).With(zap.String("method", methodLogin), zap.String("email", email))
	log.Debug(ctx, msgLoginAttempt)

	user, err := a.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, entities.ErrUserNotFound) {
			log.Debug(ctx, msgLoginNonExistent)
			return "", time.Time{}, fmt.Errorf("%s: %w", errCtxInvalidCredentials, entities.ErrInvalidCredentials)
		}
		log.Error(ctx, msgErrFindingUser, zap.Error(err))
		return "", time.Time{}, fmt.Errorf("%s: %w", errCtxFindingUser, err)
	}

	if !a.passwordSvc.Verify(ctx, password, user.PasswordHash) {
		log.Debug(ctx, msgLoginBadPassword, zap.String("userID", user.ID))
		return "", time.Time{}, fmt.Errorf("%s: %w", errCtxInvalidCredentials, entities.ErrInvalidCredentials)
	}

	log.Info(ctx, msgUserLoggedIn, zap.String("userID", user.ID))

	token, expiresAt, err := a.tokenSvc.Issue(ctx, user)
	if err != nil {
		log.Error(ctx, msgErrIssueToken, zap.Error(err), zap.String("userID", user.ID))
		return "", time.Time{}, fmt.Errorf("%s: %w", errCtxIssuingToken, err)
	}

	log.Info(ctx, msgTokenIssuedLogin, zap.String("userID", user.ID))
	return token, expiresAt, nil
}

// GetUser возвращает пользователя по ID.
func (a *AuthUseCase) GetUser(ctx context.Context, id string) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("method", methodGetUser), zap.String("userID", id))

	user, err := a.userRepo.FindByID(ctx, id)
	if err != nil {
		log.Debug(ctx, msgErrFindingUser, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxFindingUser, err)
	}

	return user, nil
}

// ListUsers возвращает всех зарегистрированных пользователей.
func (a *AuthUseCase) ListUsers(ctx context.Context) ([]*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("method", methodListUsers))

	users, err := a.userRepo.FindAll(ctx)
	if err != nil {
		log.Error(ctx, msgErrListUsers, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxListingUsers, err)
	}

	return users, nil
}

// UpdateUser обновляет email и пароль пользователя.
func (a *AuthUseCase) UpdateUser(ctx context.Context, id, email, password string) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("method", methodUpdateUser), zap.String("userID", id))

	if err := validateEmail(email); err != nil {
		log.Debug(ctx, msgInvalidEmailFormat, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxValidatingEmail, err)
	}
	if err := validatePassword(password); err != nil {
		log.Debug(ctx, msgInvalidPassword, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxValidatingPassword, err)
	}

	existingUser, err := a.userRepo.FindByID(ctx, id)
	if err != nil {
		log.Debug(ctx, msgErrFindingUser, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxFindingUser, err)
	}

	hashedPassword, err := a.passwordSvc.Hash(ctx, password)
	if err != nil {
		log.Error(ctx, msgErrHashPassword, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxHashingPassword, err)
	}

	existingUser.Email = email
	existingUser.PasswordHash = hashedPassword

	updatedUser, err := a.userRepo.Update(ctx, existingUser)
	if err != nil {
		log.Error(ctx, msgErrUpdateUser, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxUpdatingUser, err)
	}

	return updatedUser, nil
}

// DeleteUser удаляет пользователя по ID.
func (a *AuthUseCase) DeleteUser(ctx context.Context, id string) error {
	log := logger.Log(ctx).With(zap.String("method", methodDeleteUser), zap.String("userID", id))

	if err := a.userRepo.Delete(ctx, id); err != nil {
		log.Debug(ctx, msgErrDeleteUser, zap.Error(err))
		return fmt.Errorf("%s: %w", errCtxDeletingUser, err)
	}

	return nil
}

// Валидация email.
func validateEmail(email string) error {
	if email == "" || !emailRegex.MatchString(email) {
		return entities.ErrInvalidEmail
	}
	return nil
}

// Валидация пароля.
func validatePassword(password string) error {
	if len(password) < 8 {
		return entities.ErrPasswordTooShort
	}
	return nil
}
