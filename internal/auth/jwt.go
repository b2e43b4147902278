package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ErrInvalidToken is returned for any token that fails verification.
var ErrInvalidToken = errors.New("invalid token")

// Identity is the caller resolved from a verified access token.
type Identity struct {
	UserID uuid.UUID
	Role   string
}

// JWTManager verifies HS256 access tokens issued by the hosted auth provider
// and can mint compatible tokens for local tooling and tests.
type JWTManager struct {
	secret   []byte
	issuer   string
	audience string
}

// NewJWTManager creates a new JWT manager.
// secret must be at least 32 characters for HS256 security.
// Empty issuer or audience disables that check.
func NewJWTManager(secret, issuer, audience string) *JWTManager {
	return &JWTManager{
		secret:   []byte(secret),
		issuer:   issuer,
		audience: audience,
	}
}

type appMetadata struct {
	Role string `json:"role,omitempty"`
}

// accessClaims mirrors the provider's token layout. The dashboard role may sit
// at the top level or under app_metadata.
type accessClaims struct {
	jwt.RegisteredClaims
	Role        string      `json:"role,omitempty"`
	AppMetadata appMetadata `json:"app_metadata,omitempty"`
}

func (c *accessClaims) effectiveRole() string {
	if c.AppMetadata.Role != "" {
		return c.AppMetadata.Role
	}
	return c.Role
}

// GenerateAccessToken creates a signed HS256 JWT with the user ID as subject.
// The role is written to app_metadata.role, the top-level role claim stays
// "authenticated" like the provider's own tokens.
func (m *JWTManager) GenerateAccessToken(userID uuid.UUID, role string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := accessClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			Issuer:    m.issuer,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Role:        "authenticated",
		AppMetadata: appMetadata{Role: role},
	}
	if m.audience != "" {
		claims.Audience = jwt.ClaimStrings{m.audience}
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return signed, nil
}

// ValidateAccessToken parses and validates a JWT access token.
// Any failure wraps ErrInvalidToken.
func (m *JWTManager) ValidateAccessToken(tokenString string) (Identity, error) {
	if tokenString == "" {
		return Identity{}, fmt.Errorf("%w: token is empty", ErrInvalidToken)
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if m.issuer != "" {
		opts = append(opts, jwt.WithIssuer(m.issuer))
	}
	if m.audience != "" {
		opts = append(opts, jwt.WithAudience(m.audience))
	}

	token, err := jwt.ParseWithClaims(tokenString, &accessClaims{}, func(*jwt.Token) (any, error) {
		return m.secret, nil
	}, opts...)
	if err != nil {
		return Identity{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*accessClaims)
	if !ok || !token.Valid {
		return Identity{}, fmt.Errorf("%w: invalid claims", ErrInvalidToken)
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return Identity{}, fmt.Errorf("%w: subject: %w", ErrInvalidToken, err)
	}

	return Identity{UserID: userID, Role: claims.effectiveRole()}, nil
}
