// Package service implements the application's business rules on top of the
// repository layer.
package service

import (
	"context"
	"fmt"
	"net/mail"
	"strconv"
	"strings"
	"time"

	"github.com/prasad-s-h/dev-connector/internal/gravatar"
	"github.com/prasad-s-h/dev-connector/internal/models"
	"github.com/prasad-s-h/dev-connector/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// bcryptCost is the work factor applied to new password hashes.
const bcryptCost = 11

const tokenLifetime = 7 * 24 * time.Hour

// AuthService handles registration, login and token issuance. Password
// hashing happens here, as an explicit step before persistence, so it runs
// exactly once per password change.
type AuthService struct {
	userRepo  repository.UserRepository
	jwtSecret string
}

// RegisterInput carries a registration request.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// NewAuthService returns an AuthService signing tokens with jwtSecret.
func NewAuthService(userRepo repository.UserRepository, jwtSecret string) *AuthService {
	return &AuthService{userRepo: userRepo, jwtSecret: jwtSecret}
}

// Register creates an account and returns a signed token for it.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (string, error) {
	var problems []string
	if strings.TrimSpace(in.Name) == "" {
		problems = append(problems, "Name is required")
	}
	if _, err := mail.ParseAddress(in.Email); err != nil {
		problems = append(problems, "Please include a valid email")
	}
	if len(in.Password) < 6 {
		problems = append(problems, "Please enter a password with 6 or more characters")
	}
	if len(problems) > 0 {
		return "", models.NewValidationError(problems...)
	}

	existing, err := s.userRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return "", err
	}
	if existing != nil {
		return "", models.NewConflictError("User already exists")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcryptCost)
	if err != nil {
		return "", models.NewInternalError(err)
	}

	user := &models.User{
		Name:     strings.TrimSpace(in.Name),
		Email:    in.Email,
		Password: string(hashed),
		Avatar:   gravatar.URL(in.Email),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return "", err
	}

	return s.GenerateToken(user.ID)
}

// Login verifies credentials and returns a fresh token. Unknown email and
// wrong password produce the same response so neither is leaked.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	var problems []string
	if _, err := mail.ParseAddress(email); err != nil {
		problems = append(problems, "Please include a valid email")
	}
	if password == "" {
		problems = append(problems, "Password is required")
	}
	if len(problems) > 0 {
		return "", models.NewValidationError(problems...)
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", models.NewUnauthenticatedError("Invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", models.NewUnauthenticatedError("Invalid credentials")
	}

	return s.GenerateToken(user.ID)
}

// GetCurrentUser resolves the authenticated identity to its user record.
func (s *AuthService) GetCurrentUser(ctx context.Context, userID uint) (*models.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}

// GenerateToken creates a signed JWT embedding the user's identifier.
func (s *AuthService) GenerateToken(userID uint) (string, error) {
	if s.jwtSecret == "" {
		return "", models.NewInternalError(fmt.Errorf("JWT secret not configured"))
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub": strconv.FormatUint(uint64(userID), 10),
		"iss": "dev-connector-api",
		"exp": now.Add(tokenLifetime).Unix(),
		"iat": now.Unix(),
		"nbf": now.Unix(),
		"jti": generateJTI(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}

// generateJTI creates a unique JWT ID to prevent replay attacks.
func generateJTI() string {
	return fmt.Sprintf("%d-%s", time.Now().Unix(), uuid.New().String()[:8])
}
