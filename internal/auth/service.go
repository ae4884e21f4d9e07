package auth

import (
	"errors"
	"fmt"
	"time"

	apperrors "portfolio-backend/internal/errors"

	"github.com/golang-jwt/jwt/v5"
)

// RoleAdmin is the role claim required for back-office mutations
const RoleAdmin = "admin"

// Identity is the decoded caller identity passed explicitly into the
// services, so the pipeline is testable without a request context.
type Identity struct {
	Subject string
	Role    string
}

// IsAdmin reports whether the identity carries the administrative role
func (i *Identity) IsAdmin() bool {
	return i != nil && i.Role == RoleAdmin
}

// Claims represents JWT token claims
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// AuthService verifies opaque bearer credentials. Token issuance lives in a
// separate login flow; this service only guards the admin surface.
type AuthService struct {
	secret []byte
	issuer string
}

// NewAuthService creates a new authentication service
func NewAuthService(secret string) *AuthService {
	return &AuthService{
		secret: []byte(secret),
		issuer: "portfolio-backend",
	}
}

// GenerateToken issues a signed token carrying the given subject and role
func (s *AuthService) GenerateToken(subject, role string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify parses and validates a credential, returning the decoded identity.
// Missing, malformed and expired credentials each map to a distinct
// authentication error.
func (s *AuthService) Verify(tokenString string) (*Identity, error) {
	if tokenString == "" {
		return nil, apperrors.ErrTokenMissing
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperrors.ErrTokenExpired
		}
		return nil, apperrors.ErrTokenMalformed
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, apperrors.ErrTokenMalformed
	}

	return &Identity{Subject: claims.Subject, Role: claims.Role}, nil
}

// VerifyAdmin validates the credential and requires the administrative role
func (s *AuthService) VerifyAdmin(tokenString string) (*Identity, error) {
	identity, err := s.Verify(tokenString)
	if err != nil {
		return nil, err
	}
	if !identity.IsAdmin() {
		return nil, apperrors.ErrNotAdmin
	}
	return identity, nil
}
