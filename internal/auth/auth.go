// Package auth provides the registry's minimal account check: sign-up,
// password login and bearer token verification.
package auth

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/JustJay7/court-registry/internal/apperr"
	"github.com/JustJay7/court-registry/internal/database"
	"github.com/JustJay7/court-registry/pkg/logger"
)

const issuer = "court-registry"

type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

type Service struct {
	db     *gorm.DB
	secret []byte
	ttl    time.Duration
	logger *logger.Logger
	now    func() time.Time
}

func NewService(db *gorm.DB, secret string, ttl time.Duration, logger *logger.Logger) *Service {
	return &Service{
		db:     db,
		secret: []byte(secret),
		ttl:    ttl,
		logger: logger.With("service", "auth"),
		now:    time.Now,
	}
}

func (s *Service) Register(ctx context.Context, name, email, password string) (*database.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	switch {
	case email == "":
		return nil, apperr.Required("email")
	case password == "":
		return nil, apperr.Required("password")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, apperr.Invalid("email", "is not a valid address")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &database.User{
		Name:         strings.TrimSpace(name),
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := s.db.WithContext(ctx).Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) || strings.Contains(err.Error(), "UNIQUE constraint failed") ||
			strings.Contains(err.Error(), "duplicate key value") {
			return nil, &apperr.ConflictError{Field: "email", Value: email}
		}
		s.logger.Error("Failed to create user", "error", err)
		return nil, apperr.Store("create user", err)
	}

	s.logger.Info("Account created", "user_id", user.ID)
	return user, nil
}

// Login checks the credentials and returns a signed token.
func (s *Service) Login(ctx context.Context, email, password string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return "", apperr.Required("email")
	}
	if password == "" {
		return "", apperr.Required("password")
	}

	var user database.User
	if err := s.db.WithContext(ctx).First(&user, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", apperr.ErrUnauthorized
		}
		s.logger.Error("Failed to load user", "error", err)
		return "", apperr.Store("load user", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", apperr.ErrUnauthorized
	}

	return s.issue(user)
}

func (s *Service) issue(user database.User) (string, error) {
	now := s.now()
	claims := Claims{
		Email: user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify parses a bearer token and returns its claims.
func (s *Service) Verify(token string) (*Claims, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperr.ErrUnauthorized, err)
	}
	return claims, nil
}
