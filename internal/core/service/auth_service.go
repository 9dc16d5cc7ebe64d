package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/storekit/commerce-api/internal/api/metrics"
	"github.com/storekit/commerce-api/internal/core/domain"
	"github.com/storekit/commerce-api/internal/core/ports"
)

// AuthService implements registration, login and logout. Every minted
// token is recorded in the TokenStore; a token stays valid only while its
// jti is present there, so revocation on logout is terminal.
type AuthService struct {
	repo      ports.AuthRepository
	tokens    ports.TokenStore
	jwtSecret string
	tokenTTL  time.Duration
}

func NewAuthService(repo ports.AuthRepository, tokens ports.TokenStore, jwtSecret string, tokenTTL time.Duration) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{repo: repo, tokens: tokens, jwtSecret: jwtSecret, tokenTTL: tokenTTL}
}

func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return "", err
	}

	return s.mintToken(ctx, created)
}

func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			metrics.LoginsTotal.WithLabelValues("failure").Inc()
			return "", domain.ErrInvalidCredentials
		}
		return "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return "", domain.ErrInvalidCredentials
	}

	token, err := s.mintToken(ctx, user)
	if err != nil {
		return "", err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return token, nil
}

func (s *AuthService) Logout(ctx context.Context, userID string) error {
	return s.tokens.RevokeAll(ctx, userID)
}

func (s *AuthService) mintToken(ctx context.Context, user *domain.User) (string, error) {
	jti := uuid.NewString()
	claims := jwt.MapClaims{
		"sub":   user.ID,
		"email": user.Email,
		"jti":   jti,
		"exp":   time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return "", err
	}

	if err := s.tokens.Save(ctx, user.ID, jti, s.tokenTTL); err != nil {
		return "", err
	}

	return signed, nil
}
