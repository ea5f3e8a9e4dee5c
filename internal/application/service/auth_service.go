package service

import (
	"context"
	"regexp"
	"time"

	"github.com/google/uuid"
	"github.com/receipthub/receipthub-api/internal/domain/entity"
	"github.com/receipthub/receipthub-api/internal/domain/repository"
	"github.com/receipthub/receipthub-api/pkg/apperror"
	"github.com/receipthub/receipthub-api/pkg/utils"
)

var (
	fullNamePattern  = regexp.MustCompile(`^[A-Za-z ]+$`)
	usernamePattern  = regexp.MustCompile(`^[A-Za-z0-9]+$`)
	upperCasePattern = regexp.MustCompile(`[A-Z]`)
	lowerCasePattern = regexp.MustCompile(`[a-z]`)
	digitPattern     = regexp.MustCompile(`\d`)
)

// AuthService handles registration, login and token-based identity
type AuthService struct {
	userRepo     repository.UserRepository
	jwtManager   *utils.JWTManager
	queryTimeout time.Duration
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo repository.UserRepository, jwtManager *utils.JWTManager, queryTimeout time.Duration) *AuthService {
	return &AuthService{
		userRepo:     userRepo,
		jwtManager:   jwtManager,
		queryTimeout: queryTimeout,
	}
}

// RegisterInput represents the registration input
type RegisterInput struct {
	FullName string
	Username string
	Password string
}

// LoginInput represents the login input
type LoginInput struct {
	Username string
	Password string
}

// LoginOutput represents the login output
type LoginOutput struct {
	User        *entity.User
	AccessToken string
}

// Register creates a new user account. The username must be unique; the
// password is stored only as a bcrypt hash.
func (s *AuthService) Register(ctx context.Context, input *RegisterInput) (*entity.User, error) {
	if err := validateRegistration(input); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	existing, err := s.userRepo.GetByUsername(ctx, input.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.ErrUsernameTaken
	}

	hashedPassword, err := utils.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		FullName: input.FullName,
		Username: input.Username,
		Password: hashedPassword,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// Login authenticates a user and returns an access token. Unknown usernames
// and wrong passwords produce the same error so neither factor is revealed.
func (s *AuthService) Login(ctx context.Context, input *LoginInput) (*LoginOutput, error) {
	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	user, err := s.userRepo.GetByUsername(ctx, input.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.ErrInvalidCredentials
	}

	if !utils.CheckPasswordHash(input.Password, user.Password) {
		return nil, apperror.ErrInvalidCredentials
	}

	accessToken, err := s.jwtManager.GenerateAccessToken(user.ID, user.Username)
	if err != nil {
		return nil, err
	}

	return &LoginOutput{
		User:        user,
		AccessToken: accessToken,
	}, nil
}

// GetCurrentUser returns the user identified by a validated token's user ID
func (s *AuthService) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.ErrUnauthorized
	}
	return user, nil
}

// validateRegistration enforces the account field rules:
// full name is letters and spaces up to 50 chars, username is alphanumeric
// up to 20 chars, password is at least 6 chars with an upper-case letter,
// a lower-case letter and a digit.
func validateRegistration(input *RegisterInput) error {
	var fieldErrors []apperror.FieldError

	switch {
	case input.FullName == "":
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "full_name", Message: "Full name is required"})
	case len(input.FullName) > 50:
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "full_name", Message: "Full name cannot be longer than 50 characters"})
	case !fullNamePattern.MatchString(input.FullName):
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "full_name", Message: "Full name must contain only letters"})
	}

	switch {
	case input.Username == "":
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "username", Message: "Username is required"})
	case len(input.Username) > 20:
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "username", Message: "Username cannot be longer than 20 characters"})
	case !usernamePattern.MatchString(input.Username):
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "username", Message: "Username must contain only letters and digits"})
	}

	switch {
	case len(input.Password) < 6:
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "password", Message: "Password must be at least 6 characters long"})
	case !upperCasePattern.MatchString(input.Password):
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "password", Message: "Password must contain at least one uppercase letter"})
	case !lowerCasePattern.MatchString(input.Password):
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "password", Message: "Password must contain at least one lowercase letter"})
	case !digitPattern.MatchString(input.Password):
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "password", Message: "Password must contain at least one digit"})
	}

	if len(fieldErrors) > 0 {
		return apperror.NewValidationError(fieldErrors)
	}
	return nil
}
