package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/atlasdoors/backoffice/internal/config"
	ierr "github.com/atlasdoors/backoffice/internal/errors"
	"github.com/atlasdoors/backoffice/internal/types"
	"github.com/golang-jwt/jwt/v4"
)

// Claims are extracted from a validated staff token.
type Claims struct {
	UserID   string
	TenantID string
	Roles    []string
}

// Provider validates and issues staff JWT tokens.
type Provider interface {
	ValidateToken(ctx context.Context, token string) (*Claims, error)
	GenerateToken(userID, tenantID string, roles []string) (string, error)
}

type jwtProvider struct {
	authConfig config.AuthConfig
}

func NewProvider(cfg *config.Configuration) Provider {
	return &jwtProvider{authConfig: cfg.Auth}
}

func (p *jwtProvider) ValidateToken(ctx context.Context, token string) (*Claims, error) {
	parsedToken, err := jwt.Parse(token, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ierr.NewError("unexpected signing method").
				WithHint(fmt.Sprintf("unexpected signing method: %v", token.Header["alg"])).
				Mark(ierr.ErrPermissionDenied)
		}
		return []byte(p.authConfig.Secret), nil
	})

	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Token parse error").
			Mark(ierr.ErrPermissionDenied)
	}

	claims, ok := parsedToken.Claims.(jwt.MapClaims)
	if !ok || !parsedToken.Valid {
		return nil, ierr.NewError("invalid token claims").
			WithHint("Invalid token claims").
			Mark(ierr.ErrPermissionDenied)
	}

	userID, userOk := claims["user_id"].(string)
	if !userOk {
		return nil, ierr.NewError("token missing user ID").
			WithHint("Token missing user ID").
			Mark(ierr.ErrPermissionDenied)
	}

	tenantID, tenantOk := claims["tenant_id"].(string)
	if !tenantOk {
		tenantID = types.DefaultTenantID
	}

	return &Claims{
		UserID:   userID,
		TenantID: tenantID,
		Roles:    rolesFromClaims(claims),
	}, nil
}

func (p *jwtProvider) GenerateToken(userID, tenantID string, roles []string) (string, error) {
	// 30 days expiration, same as a staff session on the dashboard
	expiration := time.Now().Add(30 * 24 * time.Hour)

	claims := jwt.MapClaims{
		"user_id":   userID,
		"tenant_id": tenantID,
		"roles":     roles,
		"exp":       expiration.Unix(),
		"iat":       time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(p.authConfig.Secret))
}

func rolesFromClaims(claims jwt.MapClaims) []string {
	raw, ok := claims["roles"].([]interface{})
	if !ok {
		return []string{}
	}
	roles := make([]string, 0, len(raw))
	for _, r := range raw {
		if s, ok := r.(string); ok {
			roles = append(roles, s)
		}
	}
	return roles
}
