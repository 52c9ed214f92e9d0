package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"fleetservice/internal/entities"
)

// Auth verifies credentials and mints session tokens. Passwords are bcrypt
// only; the legacy MySQL PASSWORD() fallback of the old system is not
// carried over, accounts are re-created with bcrypt hashes.
type Auth struct {
	repository Repository
	jwtSecret  []byte
	tokenTTL   time.Duration
	bcryptCost int
}

type Claims struct {
	Username string `json:"username"`
	UserType string `json:"userType"`
	jwt.RegisteredClaims
}

func New(repository Repository, jwtSecret string, tokenTTL time.Duration, bcryptCost int) *Auth {
	return &Auth{
		repository: repository,
		jwtSecret:  []byte(jwtSecret),
		tokenTTL:   tokenTTL,
		bcryptCost: bcryptCost,
	}
}

func (s *Auth) Login(ctx context.Context, username, password string) (*entities.Session, error) {
	if strings.TrimSpace(username) == "" || password == "" {
		return nil, ErrMissingCredentials
	}

	user, err := s.repository.GetByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidPassword
	}

	token, err := s.signToken(user)
	if err != nil {
		return nil, fmt.Errorf("sign session token: %w", err)
	}

	return &entities.Session{
		Token:    token,
		UserType: user.UserType,
	}, nil
}

func (s *Auth) CreateUser(ctx context.Context, username, password string, userType entities.UserType) (int64, error) {
	if strings.TrimSpace(username) == "" || password == "" {
		return 0, ErrMissingCredentials
	}
	if !isValidUserType(userType) {
		return 0, ErrInvalidUserType
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return 0, fmt.Errorf("hash password: %w", err)
	}

	id, err := s.repository.Create(ctx, username, string(hash), userType)
	if err != nil {
		return 0, fmt.Errorf("create user: %w", err)
	}

	return id, nil
}

// VerifyToken parses and validates a session token, returning its claims.
func (s *Auth) VerifyToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("parse token: %w", err)
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	return claims, nil
}

func (s *Auth) signToken(user *entities.User) (string, error) {
	now := time.Now().UTC()
	claims := &Claims{
		Username: user.Username,
		UserType: user.UserType.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

func isValidUserType(userType entities.UserType) bool {
	switch userType {
	case entities.UserAdmin, entities.UserSupervisor, entities.UserCapturist:
		return true
	default:
		return false
	}
}
