package service

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/golang-jwt/jwt/v5"
	"github.com/yaboywf/bb-website-v3/internal/config"
	"github.com/yaboywf/bb-website-v3/internal/model"
)

var (
	ErrMissingToken   = errors.New("no token provided")
	ErrInvalidToken   = errors.New("invalid token")
	ErrTokenExpired   = errors.New("token expired")
	ErrTokenUsed      = errors.New("token already used")
	ErrMissingRole    = errors.New("role is required")
	ErrRoleNotAllowed = errors.New("role not allowed")
	ErrMisconfigured  = errors.New("auth config invalid")
)

// TokenLedger is the read side of the consumed-token log. Tokens are
// single-use; the issuer records consumption, this service only checks.
type TokenLedger interface {
	WasConsumed(ctx context.Context, token string) (bool, error)
}

type AuthService struct {
	ledger    TokenLedger
	jwtSecret []byte
}

type tokenClaims struct {
	ID string `json:"id"`
	jwt.RegisteredClaims
}

func NewAuthService(ledger TokenLedger, cfg config.AuthConfig) (*AuthService, error) {
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("%w: JWT_SECRET is required", ErrMisconfigured)
	}
	return &AuthService{
		ledger:    ledger,
		jwtSecret: []byte(cfg.JWTSecret),
	}, nil
}

// ValidateToken checks signature, expiry and single-use status, in that
// order, and returns the claims embedded in the token.
func (s *AuthService) ValidateToken(ctx context.Context, tokenStr string) (*model.AuthClaims, error) {
	if tokenStr == "" {
		return nil, ErrMissingToken
	}

	claims := &tokenClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrInvalidToken
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}

	used, err := s.ledger.WasConsumed(ctx, tokenStr)
	if err != nil {
		return nil, err
	}
	if used {
		return nil, ErrTokenUsed
	}

	accountID := claims.ID
	if accountID == "" {
		accountID = claims.Subject
	}
	if accountID == "" {
		return nil, ErrInvalidToken
	}

	return &model.AuthClaims{AccountID: accountID}, nil
}

// Authorize is the role gate: pure membership check of role against the
// allowed set. An empty allowed set means any known role passes.
func Authorize(role model.Role, allowed ...model.Role) error {
	if role == "" {
		return ErrMissingRole
	}
	if len(allowed) == 0 {
		allowed = model.AllRoles
	}
	if !slices.Contains(allowed, role) {
		return ErrRoleNotAllowed
	}
	return nil
}
