package token

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/dtroode/marketplace-auth/internal/model"
)

// Claims represents access token claims.
type Claims struct {
	jwt.RegisteredClaims
	TenantID    string   `json:"tid,omitempty"`
	Roles       []string `json:"roles,omitempty"`
	Permissions []string `json:"perms,omitempty"`
	TokenType   string   `json:"typ"`
}

// JWT implements model.TokenIssuer backed by symmetric HMAC.
type JWT struct {
	secretKey []byte
	issuer    string
	accessTTL time.Duration
	now       func() time.Time
}

var _ model.TokenIssuer = (*JWT)(nil)

// NewJWT creates a new JWT token issuer. An empty secret is accepted here and
// reported as model.ErrSigning by every signing attempt.
func NewJWT(secretKey, issuer string, accessTTL time.Duration) *JWT {
	return &JWT{
		secretKey: []byte(secretKey),
		issuer:    issuer,
		accessTTL: accessTTL,
		now:       time.Now,
	}
}

const (
	typeAccess = "access"

	refreshCodeBytes = 32
)

// IssueAccessToken creates a short-lived access token for the principal.
func (j *JWT) IssueAccessToken(principal model.Principal) (string, time.Time, error) {
	if len(j.secretKey) == 0 {
		return "", time.Time{}, fmt.Errorf("%w: signing key is not configured", model.ErrSigning)
	}

	now := j.now()
	expiresAt := now.Add(j.accessTTL)
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   principal.UserID.String(),
			Issuer:    j.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		Roles:       principal.Roles,
		Permissions: principal.Permissions,
		TokenType:   typeAccess,
	}
	if principal.TenantID.Valid {
		claims.TenantID = principal.TenantID.UUID.String()
	}

	tokenString, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(j.secretKey)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("%w: %v", model.ErrSigning, err)
	}

	return tokenString, expiresAt, nil
}

// ParseAccessToken validates an access token and extracts the principal.
func (j *JWT) ParseAccessToken(tokenString string) (model.Principal, error) {
	if len(j.secretKey) == 0 {
		return model.Principal{}, fmt.Errorf("%w: signing key is not configured", model.ErrSigning)
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(j.now),
	}
	if j.issuer != "" {
		opts = append(opts, jwt.WithIssuer(j.issuer))
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return j.secretKey, nil
	}, opts...)
	if err != nil {
		return model.Principal{}, fmt.Errorf("failed to parse access token: %w", err)
	}
	if !token.Valid {
		return model.Principal{}, errors.New("access token is invalid")
	}
	if claims.TokenType != typeAccess {
		return model.Principal{}, fmt.Errorf("token type mismatch: %s", claims.TokenType)
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil || userID == uuid.Nil {
		return model.Principal{}, fmt.Errorf("invalid subject claim")
	}

	principal := model.Principal{
		UserID:      userID,
		Roles:       claims.Roles,
		Permissions: claims.Permissions,
	}
	if claims.TenantID != "" {
		tenantID, err := uuid.Parse(claims.TenantID)
		if err != nil {
			return model.Principal{}, fmt.Errorf("invalid tenant claim")
		}
		principal.TenantID = uuid.NullUUID{UUID: tenantID, Valid: true}
	}

	return principal, nil
}

// NewRefreshCode returns an opaque refresh code carrying 256 bits of entropy.
func NewRefreshCode() (string, error) {
	buf := make([]byte, refreshCodeBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
