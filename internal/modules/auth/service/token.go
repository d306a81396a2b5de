package auth

import (
	"context"
	"fmt"

	"anoa.com/askify/internal/entity"
	"anoa.com/askify/pkg/apperror"
	"github.com/golang-jwt/jwt/v5"
)

// Claims binds a token to the client scope whose store holds the session.
type Claims struct {
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

func (s *authService) generateToken(userID, scope string) (string, error) {
	now := s.now()
	expiresAt := now.Add(s.opts.TokenTTL)

	claims := Claims{
		SessionID: scope,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.opts.Secret))
}

func (s *authService) VerifyToken(ctx context.Context, tokenString string) (*entity.User, string, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.opts.Secret), nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil || !token.Valid {
		return nil, "", fmt.Errorf("invalid or expired token: %w", apperror.ErrUnauthorized)
	}
	if claims.SessionID == "" {
		return nil, "", fmt.Errorf("token has no session: %w", apperror.ErrUnauthorized)
	}

	user, err := s.CurrentUser(ctx, claims.SessionID)
	if err != nil {
		return nil, "", err
	}
	if user == nil || user.ID != claims.Subject {
		return nil, "", fmt.Errorf("session ended: %w", apperror.ErrUnauthorized)
	}

	return user, claims.SessionID, nil
}
