package services

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/yukikurage/todo-list/internal/constants"
	apierrors "github.com/yukikurage/todo-list/internal/errors"
	"github.com/yukikurage/todo-list/internal/models"
	"github.com/yukikurage/todo-list/internal/repository"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Messages surfaced on the registration and login forms.
const (
	MsgUsernameTaken      = "User is already in use!"
	MsgEmailTaken         = "Email is already in use!"
	MsgPasswordMismatch   = "Password Fields Not Matching!"
	MsgAccountTaken       = "User or email is already in use!"
	MsgInvalidCredentials = "Wrong username or password!"
)

var (
	ErrInvalidCredentials   = errors.New("invalid username or password")
	ErrUserNotFound         = errors.New("user not found")
	ErrFailedToHashPassword = errors.New("failed to hash password")
	ErrFailedToCreateUser   = errors.New("failed to create user")
)

// AuthService handles registration and authentication.
type AuthService struct {
	userRepo repository.UserRepository
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repository.UserRepository) *AuthService {
	return &AuthService{
		userRepo: userRepo,
	}
}

// RegisterInput represents the registration form.
type RegisterInput struct {
	Username        string
	Email           string
	Password        string
	ConfirmPassword string
}

// Register validates the input and creates the account. Validation
// failures are returned as *apierrors.FormErrors and create nothing.
func (s *AuthService) Register(input RegisterInput) (*models.User, error) {
	formErrors, err := s.ValidateRegistration(input)
	if err != nil {
		return nil, err
	}
	if err := formErrors.Err(); err != nil {
		return nil, err
	}

	username := strings.TrimSpace(input.Username)
	email := strings.TrimSpace(input.Email)

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, ErrFailedToHashPassword
	}

	user := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hashedPassword),
	}

	if err := s.userRepo.Create(user); err != nil {
		// A concurrent registration won the race past the existence checks.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			formErrors.AddNonField(MsgAccountTaken)
			return nil, formErrors
		}
		return nil, fmt.Errorf("%w: %v", ErrFailedToCreateUser, err)
	}

	return user, nil
}

// ValidateRegistration collects every registration error without creating
// anything: bounds, availability of username and email, and the password
// confirmation.
func (s *AuthService) ValidateRegistration(input RegisterInput) (*apierrors.FormErrors, error) {
	username := strings.TrimSpace(input.Username)
	email := strings.TrimSpace(input.Email)

	formErrors := apierrors.NewFormErrors()
	if username == "" {
		formErrors.Add("username", "This field is required.")
	} else if utf8.RuneCountInString(username) > constants.MaxUsernameLength {
		formErrors.Add("username", fmt.Sprintf("Ensure this value has at most %d characters.", constants.MaxUsernameLength))
	}
	if email == "" {
		formErrors.Add("email", "This field is required.")
	}
	if len(input.Password) < constants.MinPasswordLength {
		formErrors.Add("password", fmt.Sprintf("Ensure this value has at least %d characters.", constants.MinPasswordLength))
	}

	if username != "" {
		taken, err := s.userRepo.ExistsByUsername(username)
		if err != nil {
			return nil, fmt.Errorf("failed to check username: %w", err)
		}
		if taken {
			formErrors.Add("username", MsgUsernameTaken)
		}
	}

	if email != "" {
		taken, err := s.userRepo.ExistsByEmail(email)
		if err != nil {
			return nil, fmt.Errorf("failed to check email: %w", err)
		}
		if taken {
			formErrors.Add("email", MsgEmailTaken)
		}
	}

	if input.Password != input.ConfirmPassword {
		formErrors.AddNonField(MsgPasswordMismatch)
	}

	return formErrors, nil
}

// LoginInput holds the credentials for authentication.
type LoginInput struct {
	Username string
	Password string
}

// Login verifies credentials and returns the authenticated user. Unknown
// usernames and wrong passwords both yield ErrInvalidCredentials.
func (s *AuthService) Login(input LoginInput) (*models.User, error) {
	user, err := s.userRepo.FindByUsername(strings.TrimSpace(input.Username))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// GetUser retrieves a user by ID.
func (s *AuthService) GetUser(id uint64) (*models.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return user, nil
}
