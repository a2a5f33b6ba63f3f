package service

import (
	"errors"
	"strings"

	"go.uber.org/zap"

	"auction-admin/internal/models"
	"auction-admin/internal/repository"
	"auction-admin/internal/utils"
	"auction-admin/pkg/logger"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountInactive    = errors.New("account is inactive, contact an administrator")
	ErrEmailTaken         = errors.New("email is already registered")
	ErrStorageFailure     = errors.New("registration could not be completed, please try again")

	errNameTooShort     = errors.New("name must be at least 2 characters")
	errInvalidEmail     = errors.New("enter a valid email address")
	errPasswordTooShort = errors.New("password must be at least 8 characters")
	errPasswordMismatch = errors.New("passwords do not match")
	errRoleRequired     = errors.New("select a role")
)

// Default administrator created on first startup. An operational shortcut,
// not meant for production use.
const (
	DefaultAdminName     = "Admin"
	DefaultAdminEmail    = "admin@example.com"
	defaultAdminPassword = "admin123"
)

type AuthService struct {
	userRepo *repository.UserRepository
}

func NewAuthService(userRepo *repository.UserRepository) *AuthService {
	return &AuthService{userRepo: userRepo}
}

// Register validates the submitted form in a fixed order and creates the
// user on first pass. The first failing check is returned as-is for the
// form to redisplay; nothing is written unless every check passes.
func (s *AuthService) Register(name, email, password, confirm string, role models.Role) (*models.User, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))

	if err := validateRegistration(name, email, password, confirm, role); err != nil {
		logger.Log.Warn("Registration validation failed",
			zap.String("email", email),
			zap.Error(err),
		)
		return nil, err
	}

	existing, err := s.userRepo.GetByEmail(email)
	if err != nil {
		logger.Log.Error("Failed to check email existence",
			zap.String("email", email),
			zap.Error(err),
		)
		return nil, ErrStorageFailure
	}
	if existing != nil {
		logger.Log.Warn("Email already registered",
			zap.String("email", email),
		)
		return nil, ErrEmailTaken
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		logger.Log.Error("Failed to hash password", zap.Error(err))
		return nil, ErrStorageFailure
	}

	user := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Status:       models.UserActive,
		Role:         role,
	}

	if err := s.userRepo.CreateTx(user); err != nil {
		logger.Log.Error("Failed to create user",
			zap.String("email", email),
			zap.Error(err),
		)
		return nil, ErrStorageFailure
	}

	logger.Log.Info("User registered",
		zap.Uint("user_id", user.ID),
		zap.String("email", email),
		zap.String("role", string(role)),
	)

	return user, nil
}

// Login checks credentials first and account status second, so an inactive
// account with a correct password still gets its own distinct error.
func (s *AuthService) Login(email, password string) (*models.User, error) {
	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		logger.Log.Error("Failed to get user by email",
			zap.String("email", email),
			zap.Error(err),
		)
		return nil, err
	}
	if user == nil {
		logger.Log.Warn("Login failed: user not found",
			zap.String("email", email),
		)
		return nil, ErrInvalidCredentials
	}

	valid, err := utils.VerifyPassword(password, user.PasswordHash)
	if err != nil {
		logger.Log.Error("Failed to verify password",
			zap.String("email", email),
			zap.Error(err),
		)
		return nil, err
	}
	if !valid {
		logger.Log.Warn("Login failed: invalid password",
			zap.String("email", email),
			zap.Uint("user_id", user.ID),
		)
		return nil, ErrInvalidCredentials
	}

	if user.Status != models.UserActive {
		logger.Log.Warn("Login rejected: inactive account",
			zap.String("email", email),
			zap.Uint("user_id", user.ID),
		)
		return nil, ErrAccountInactive
	}

	logger.Log.Info("User logged in",
		zap.Uint("user_id", user.ID),
		zap.String("email", email),
	)

	return user, nil
}

// EnsureDefaultAdmin creates the bootstrap administrator account if no user
// with the fixed admin email exists. Idempotent across restarts.
func (s *AuthService) EnsureDefaultAdmin() error {
	existing, err := s.userRepo.GetByEmail(DefaultAdminEmail)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	hash, err := utils.HashPassword(defaultAdminPassword)
	if err != nil {
		return err
	}

	admin := &models.User{
		Name:         DefaultAdminName,
		Email:        DefaultAdminEmail,
		PasswordHash: hash,
		Status:       models.UserActive,
		Role:         models.RoleAdmin,
	}

	if err := s.userRepo.Create(admin); err != nil {
		return err
	}

	logger.Log.Info("Default admin account created",
		zap.String("email", DefaultAdminEmail),
	)

	return nil
}

func validateRegistration(name, email, password, confirm string, role models.Role) error {
	if len(name) < 2 {
		return errNameTooShort
	}
	if !strings.Contains(email, "@") {
		return errInvalidEmail
	}
	if len(password) < 8 {
		return errPasswordTooShort
	}
	if password != confirm {
		return errPasswordMismatch
	}
	if role == "" {
		return errRoleRequired
	}
	return nil
}
