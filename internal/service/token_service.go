package service

import (
	"errors"
	"fmt"
	"time"

	"ramp-gateway/internal/core/ports"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// clockSkew tolerates small drift between this host and the auth service.
const clockSkew = 30 * time.Second

// RoleAdmin marks operator tokens allowed to override or fail transactions.
const RoleAdmin = "admin"

type rampClaims struct {
	Role string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// JWTTokenService implements ports.TokenService. It only verifies tokens;
// minting belongs to the external auth service that shares the HMAC secret.
type JWTTokenService struct {
	secret []byte
	parser *jwt.Parser
}

// NewJWTTokenService creates a validator. An empty issuer accepts any issuer.
func NewJWTTokenService(secret, issuer string) *JWTTokenService {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{"HS256", "HS384", "HS512"}),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(clockSkew),
	}
	if issuer != "" {
		opts = append(opts, jwt.WithIssuer(issuer))
	}
	return &JWTTokenService{
		secret: []byte(secret),
		parser: jwt.NewParser(opts...),
	}
}

// Validate checks the signature, expiry and issuer and returns the user the
// token was issued to. The subject must be a user UUID.
func (s *JWTTokenService) Validate(tokenString string) (*ports.TokenClaims, error) {
	var claims rampClaims
	if _, err := s.parser.ParseWithClaims(tokenString, &claims, func(*jwt.Token) (interface{}, error) {
		return s.secret, nil
	}); err != nil {
		return nil, fmt.Errorf("parsing token: %w", err)
	}

	if claims.Subject == "" {
		return nil, errors.New("missing subject claim")
	}
	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, fmt.Errorf("subject is not a user id: %w", err)
	}

	return &ports.TokenClaims{UserID: userID, Admin: claims.Role == RoleAdmin}, nil
}
