// Package scope issues and verifies the bearer tokens that carry the caller's
// identity, and moves that identity through a request context.
package scope

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"smart-todo/internal/model"
)

var (
	ErrInvalidToken = errors.New("invalid or expired token")
	ErrMissingOwner = errors.New("token has no subject")
)

// Manager issues and verifies bearer tokens.
type Manager interface {
	Verify(token string) (model.Scope, error)
	CreateToken(userID string) (string, error)
}

type implManager struct {
	secret []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

// New creates an HS256 token Manager.
func New(secret, issuer string, ttl time.Duration) Manager {
	return &implManager{
		secret: []byte(secret),
		issuer: issuer,
		ttl:    ttl,
		now:    time.Now,
	}
}

func (m *implManager) CreateToken(userID string) (string, error) {
	now := m.now()
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		Issuer:    m.issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("scope.CreateToken: %w", err)
	}
	return token, nil
}

func (m *implManager) Verify(tokenString string) (model.Scope, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return model.Scope{}, ErrInvalidToken
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok {
		return model.Scope{}, ErrInvalidToken
	}
	if m.issuer != "" && !claims.VerifyIssuer(m.issuer, true) {
		return model.Scope{}, ErrInvalidToken
	}
	if claims.Subject == "" {
		return model.Scope{}, ErrMissingOwner
	}
	return model.Scope{UserID: claims.Subject}, nil
}

type ctxKey struct{}

// SetScopeToContext stores sc in ctx.
func SetScopeToContext(ctx context.Context, sc model.Scope) context.Context {
	return context.WithValue(ctx, ctxKey{}, sc)
}

// GetScopeFromContext returns the scope stored by SetScopeToContext.
func GetScopeFromContext(ctx context.Context) (model.Scope, bool) {
	sc, ok := ctx.Value(ctxKey{}).(model.Scope)
	return sc, ok && sc.UserID != ""
}
