package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"os"
	"regexp"
	"time"

	"backend/internal/model"
	"backend/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// DTOs for Request validation
type RegisterRequest struct {
	Name       string `json:"name" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required,min=6"`
	Role       string `json:"role" binding:"required"`
	Department string `json:"department"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

type TokenResponse struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refresh_token"`
}

// AuthService defines the interface for registration and session management
type AuthService interface {
	Register(ctx context.Context, req RegisterRequest) (*TokenResponse, error)
	Login(ctx context.Context, req LoginRequest) (*TokenResponse, error)
	RefreshToken(ctx context.Context, req RefreshTokenRequest) (*TokenResponse, error)
	Logout(ctx context.Context, refreshToken string) error
}

type authService struct {
	users  repository.UserRepository
	tokens repository.RefreshTokenRepository
}

// NewAuthService returns a new instance of AuthService
func NewAuthService(users repository.UserRepository, tokens repository.RefreshTokenRepository) AuthService {
	return &authService{users: users, tokens: tokens}
}

var emailRegex = regexp.MustCompile(`^[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,4}$`)

const (
	accessTokenTTL  = 24 * time.Hour
	refreshTokenTTL = 7 * 24 * time.Hour
)

func jwtSecret() []byte {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "default_super_secret_key"
	}
	return []byte(secret)
}

// issueTokens builds a signed access token carrying the identity claims the
// middleware relies on, plus a persisted refresh token.
func (s *authService) issueTokens(ctx context.Context, user *model.User) (*TokenResponse, error) {
	claims := jwt.MapClaims{
		"sub":  user.ID.String(),
		"role": user.Role.String(),
		"name": user.Name,
		"exp":  time.Now().Add(accessTokenTTL).Unix(),
	}
	if user.Department != nil {
		claims["department"] = *user.Department
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(jwtSecret())
	if err != nil {
		return nil, errors.New("failed to generate token")
	}

	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return nil, errors.New("failed to generate refresh token")
	}
	refreshString := hex.EncodeToString(raw)

	refresh := &model.RefreshToken{
		UserID:    user.ID,
		Token:     refreshString,
		ExpiresAt: time.Now().Add(refreshTokenTTL),
	}
	if err := s.tokens.Create(ctx, refresh); err != nil {
		return nil, err
	}

	return &TokenResponse{Token: tokenString, RefreshToken: refreshString}, nil
}

func (s *authService) Register(ctx context.Context, req RegisterRequest) (*TokenResponse, error) {
	role, ok := model.ParseRole(req.Role)
	if !ok {
		return nil, ErrInvalidRole
	}

	// Department heads must carry a department; it scopes their review queue
	// and statistics.
	var department *string
	if req.Department != "" {
		department = &req.Department
	}
	if role == model.RoleDepartmentHead && department == nil {
		return nil, ErrDepartmentRequired
	}

	// Basic Email format validation fallback
	if !emailRegex.MatchString(req.Email) {
		return nil, ErrInvalidEmail
	}

	if _, err := s.users.GetByEmail(ctx, req.Email); err == nil {
		return nil, ErrEmailTaken
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.New("failed to hash password")
	}

	user := &model.User{
		Name:       req.Name,
		Email:      req.Email,
		Password:   string(hashedPassword),
		Role:       role,
		Department: department,
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	return s.issueTokens(ctx, user)
}

func (s *authService) Login(ctx context.Context, req LoginRequest) (*TokenResponse, error) {
	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.issueTokens(ctx, user)
}

func (s *authService) RefreshToken(ctx context.Context, req RefreshTokenRequest) (*TokenResponse, error) {
	stored, err := s.tokens.GetByToken(ctx, req.RefreshToken)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if time.Now().After(stored.ExpiresAt) {
		_ = s.tokens.Delete(ctx, stored.Token)
		return nil, ErrInvalidCredentials
	}

	user, err := s.users.GetByID(ctx, stored.UserID.String())
	if err != nil {
		return nil, ErrUserNotFound
	}

	// Rotate: the used token is spent
	if err := s.tokens.Delete(ctx, stored.Token); err != nil {
		return nil, err
	}

	return s.issueTokens(ctx, user)
}

func (s *authService) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}
	return s.tokens.Delete(ctx, refreshToken)
}
