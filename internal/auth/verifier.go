// Package auth resolves the admin console's session token to a user and
// checks the admin role.
package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("admin role required")
)

// RoleChecker answers whether a user holds the admin role.
type RoleChecker interface {
	IsAdmin(ctx context.Context, userID uuid.UUID) (bool, error)
}

type Claims struct {
	Email string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

type User struct {
	ID    uuid.UUID
	Email string
}

type Verifier struct {
	secret []byte
	roles  RoleChecker
}

func NewVerifier(secret string, roles RoleChecker) (*Verifier, error) {
	if secret == "" {
		return nil, fmt.Errorf("secret is empty")
	}
	if roles == nil {
		return nil, fmt.Errorf("roles is nil")
	}

	return &Verifier{secret: []byte(secret), roles: roles}, nil
}

// Authenticate validates an HS256 session token, optionally prefixed with
// "Bearer ", and returns the user named by its subject.
func (v *Verifier) Authenticate(token string) (User, error) {
	token = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(token), "Bearer "))
	if token == "" {
		return User{}, fmt.Errorf("%w: token is empty", ErrUnauthorized)
	}

	claims := &Claims{}
	_, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return v.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return User{}, fmt.Errorf("%w: %w", ErrUnauthorized, err)
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return User{}, fmt.Errorf("%w: subject[%s] is not a user id", ErrUnauthorized, claims.Subject)
	}

	return User{ID: userID, Email: claims.Email}, nil
}

func (v *Verifier) RequireAdmin(ctx context.Context, token string) (User, error) {
	user, err := v.Authenticate(token)
	if err != nil {
		return User{}, err
	}

	isAdmin, err := v.roles.IsAdmin(ctx, user.ID)
	if err != nil {
		return User{}, fmt.Errorf("roles.IsAdmin: %w", err)
	}

	if !isAdmin {
		return User{}, ErrForbidden
	}

	return user, nil
}
