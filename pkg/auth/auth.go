// Package auth issues and checks the bearer tokens that guard the admin API.
package auth

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"net/http"
	"slices"
	"strings"
	"time"

	connect_go "github.com/bufbuild/connect-go"
	"github.com/golang-jwt/jwt/v4"
	"go.uber.org/zap"

	"droscher.com/BeerFinder/configs"
)

const adminSubject = "admin"

var (
	ErrInvalidPassword = errors.New("invalid password")
	ErrInvalidToken    = errors.New("invalid token")
)

// AdminKey holds the verified claims of the caller once the interceptor lets a request through.
type AdminKey struct{}

type Manager struct {
	conf   configs.Auth
	logger *zap.Logger
	now    func() time.Time
}

func NewAuthManager(conf configs.Auth, logger *zap.Logger) *Manager {
	return &Manager{conf: conf, logger: logger, now: time.Now}
}

// Login checks the shared admin password and returns a signed token together with its expiry.
func (a *Manager) Login(password string) (string, time.Time, error) {
	if subtle.ConstantTimeCompare([]byte(password), []byte(a.conf.AdminPassword)) != 1 {
		a.logger.Warn("rejected admin login")

		return "", time.Time{}, ErrInvalidPassword
	}

	issued := a.now()
	expires := issued.Add(a.conf.SessionTTL)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   adminSubject,
		IssuedAt:  jwt.NewNumericDate(issued),
		ExpiresAt: jwt.NewNumericDate(expires),
	})

	signed, err := token.SignedString([]byte(a.conf.SecretKey))
	if err != nil {
		return "", time.Time{}, fmt.Errorf("signing token: %w", err)
	}

	a.logger.Info("admin logged in", zap.Time("expires", expires))

	return signed, expires, nil
}

func (a *Manager) Verify(accessToken string) (*jwt.RegisteredClaims, error) {
	keyFunc := func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("%w: unexpected signing method: %v", ErrInvalidToken, token.Header["alg"])
		}

		return []byte(a.conf.SecretKey), nil
	}

	claims := &jwt.RegisteredClaims{}

	token, err := jwt.ParseWithClaims(accessToken, claims, keyFunc)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	if !token.Valid || claims.Subject != adminSubject {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// AdminInterceptor rejects every call without a valid admin token, except for the listed procedures.
func (a *Manager) AdminInterceptor(public ...string) connect_go.UnaryInterceptorFunc {
	return func(next connect_go.UnaryFunc) connect_go.UnaryFunc {
		return func(ctx context.Context, req connect_go.AnyRequest) (connect_go.AnyResponse, error) {
			if slices.Contains(public, req.Spec().Procedure) {
				return next(ctx, req)
			}

			accessToken, err := a.extractTokenFromHeader(req.Header())
			if err != nil {
				return nil, err
			}

			claims, err := a.Verify(*accessToken)
			if err != nil {
				a.logger.Error("error parsing token", zap.Error(err))

				return nil, connect_go.NewError(connect_go.CodeUnauthenticated, err)
			}

			ctx = context.WithValue(ctx, AdminKey{}, claims)

			return next(ctx, req)
		}
	}
}

func (a *Manager) extractTokenFromHeader(header http.Header) (*string, error) {
	authorization := header.Get("Authorization")
	if len(authorization) == 0 {
		a.logger.Error("No authorization header found")

		return nil, connect_go.NewError(connect_go.CodeUnauthenticated, errors.New("authorization header not found"))
	}

	prefix := "Bearer "
	if !strings.HasPrefix(authorization, prefix) {
		prefix = "bearer "
	}

	token, found := strings.CutPrefix(authorization, prefix)
	if !found {
		return nil, connect_go.NewError(connect_go.CodeUnauthenticated, errors.New("authorization format must be Bearer {token}"))
	}

	return &token, nil
}
