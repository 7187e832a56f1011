package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"entry-tracker-backend/internal/database/models"
	apperrors "entry-tracker-backend/internal/errors"
	"entry-tracker-backend/internal/logger"
	"entry-tracker-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// SignupRequest represents the request to register a new account
type SignupRequest struct {
	Username string `json:"username" form:"username" validate:"required,max=150" example:"alice"`
	Email    string `json:"email" form:"email" validate:"required,email,max=150" example:"a@x.io"`
	Password string `json:"password" form:"password" validate:"required,max=128" example:"s3cret-passphrase"`
}

// LoginRequest represents the request to log in with email and password
type LoginRequest struct {
	Email    string `json:"email" form:"email" validate:"required,max=150" example:"a@x.io"`
	Password string `json:"password" form:"password" validate:"required,max=128" example:"s3cret-passphrase"`
}

// UserResponse represents the public view of a user
type UserResponse struct {
	ID        uint      `json:"id" example:"1"`
	Username  string    `json:"username" example:"alice"`
	Email     string    `json:"email" example:"a@x.io"`
	CreatedAt time.Time `json:"created_at"`
}

// AuthResponse is returned by signup and login
type AuthResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}

// AuthLogoutResponse represents the response from the logout endpoint
type AuthLogoutResponse struct {
	Message string `json:"message" example:"Logged out successfully"`
}

// AuthService provides signup, login and session resolution
type AuthService struct {
	userRepo  repository.UserRepositoryInterface
	hasher    *PasswordHasher
	sessions  *SessionManager
	validator *validator.Validate
}

// NewAuthService creates a new authentication service
func NewAuthService(userRepo repository.UserRepositoryInterface, hasher *PasswordHasher, sessions *SessionManager, validator *validator.Validate) *AuthService {
	return &AuthService{
		userRepo:  userRepo,
		hasher:    hasher,
		sessions:  sessions,
		validator: validator,
	}
}

// Signup creates an account and opens a session for it
func (s *AuthService) Signup(ctx context.Context, req *SignupRequest) (*AuthResponse, error) {
	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.TrimSpace(req.Email)
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.FromValidator(err)
	}

	if err := s.ensureAvailable(ctx, req.Username, req.Email); err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
	}
	// Create still reports ErrUserExists when a concurrent signup wins the race
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, apperrors.ErrUserExists) {
			return nil, apperrors.ErrUserExists
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	token, err := s.sessions.Start(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to start session: %w", err)
	}

	logger.WithContext(logger.ContextWithUser(ctx, user.ID, user.Username)).Info("User signed up")
	return &AuthResponse{User: toUserResponse(user), Token: token}, nil
}

// Login checks credentials and opens a session. Unknown email and wrong
// password both return ErrInvalidCredentials after the same amount of work.
func (s *AuthService) Login(ctx context.Context, req *LoginRequest) (*AuthResponse, error) {
	req.Email = strings.TrimSpace(req.Email)
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.FromValidator(err)
	}

	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to look up user: %w", err)
		}
		s.hasher.DummyVerify(req.Password)
		return nil, apperrors.ErrInvalidCredentials
	}

	if !s.hasher.Verify(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.sessions.Start(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to start session: %w", err)
	}

	logger.WithContext(logger.ContextWithUser(ctx, user.ID, user.Username)).Info("User logged in")
	return &AuthResponse{User: toUserResponse(user), Token: token}, nil
}

// Logout ends the session behind token
func (s *AuthService) Logout(ctx context.Context, token string) error {
	if err := s.sessions.End(ctx, token); err != nil {
		return fmt.Errorf("failed to end session: %w", err)
	}
	return nil
}

// CurrentUser resolves token to the user that owns it
func (s *AuthService) CurrentUser(ctx context.Context, token string) (*UserResponse, error) {
	userID, err := s.sessions.CurrentUser(ctx, token)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// The session outlived its user; drop it so it never resolves again
			if endErr := s.sessions.End(ctx, token); endErr != nil {
				logger.WithContext(ctx).WithError(endErr).Warn("Failed to end orphaned session")
			}
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	resp := toUserResponse(user)
	return &resp, nil
}

func (s *AuthService) ensureAvailable(ctx context.Context, username, email string) error {
	if _, err := s.userRepo.GetByUsername(ctx, username); err == nil {
		return apperrors.ErrUserExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check existing username: %w", err)
	}

	if _, err := s.userRepo.GetByEmail(ctx, email); err == nil {
		return apperrors.ErrUserExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check existing email: %w", err)
	}

	return nil
}

func toUserResponse(user *models.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}
}
