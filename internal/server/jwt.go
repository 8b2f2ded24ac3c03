package server

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/jonathan/resume-builder/internal/config"
	"github.com/jonathan/resume-builder/internal/server/middleware"
)

// tokenIssuer is written into tokens minted by GenerateToken. It is not
// checked on verification; tokens from the account service carry their own.
const tokenIssuer = "resume-export"

// Token verification failures. Each is wrapped with the underlying jwt error.
var (
	ErrEmptyToken       = errors.New("token string is empty")
	ErrMalformedToken   = errors.New("malformed token")
	ErrInvalidSignature = errors.New("invalid token signature")
	ErrTokenExpired     = errors.New("token expired")
	ErrMissingUserID    = errors.New("token has no user ID")
)

// Claims identifies the caller of an export request.
type Claims struct {
	UserID uuid.UUID `json:"user_id"`
	jwt.RegisteredClaims
}

// GetUserID satisfies middleware.UserIDGetter.
func (c *Claims) GetUserID() uuid.UUID {
	return c.UserID
}

// JWTService verifies the HS256 bearer tokens that guard the export routes.
// GenerateToken is used by the token command and tests.
type JWTService struct {
	key []byte
	ttl time.Duration
	now func() time.Time
}

// NewJWTService builds a service from validated JWT settings.
func NewJWTService(cfg *config.JWTConfig) *JWTService {
	return &JWTService{
		key: []byte(cfg.Secret),
		ttl: time.Duration(cfg.ExpirationHours) * time.Hour,
		now: time.Now,
	}
}

// GenerateToken signs a token for userID that expires after the configured
// number of hours.
func (s *JWTService) GenerateToken(userID uuid.UUID) (string, error) {
	issued := s.now()

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(issued),
			NotBefore: jwt.NewNumericDate(issued),
			ExpiresAt: jwt.NewNumericDate(issued.Add(s.ttl)),
		},
	}).SignedString(s.key)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// ValidateToken checks signature, algorithm and expiry, and requires a user
// ID claim.
func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	if tokenString == "" {
		return nil, ErrEmptyToken
	}

	claims := &Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, s.keyFunc,
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, classifyTokenError(err)
	}
	if claims.UserID == uuid.Nil {
		return nil, ErrMissingUserID
	}

	return claims, nil
}

func (s *JWTService) keyFunc(*jwt.Token) (any, error) {
	return s.key, nil
}

func classifyTokenError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return fmt.Errorf("%w: %w", ErrInvalidSignature, err)
	case errors.Is(err, jwt.ErrTokenExpired):
		return fmt.Errorf("%w: %w", ErrTokenExpired, err)
	case errors.Is(err, jwt.ErrTokenMalformed):
		return fmt.Errorf("%w: %w", ErrMalformedToken, err)
	default:
		return fmt.Errorf("failed to parse token: %w", err)
	}
}

// validatorFunc adapts a verification function to middleware.TokenValidator
// so the middleware package does not import this one.
type validatorFunc func(string) (*Claims, error)

func (f validatorFunc) ValidateToken(tokenString string) (middleware.UserIDGetter, error) {
	claims, err := f(tokenString)
	if err != nil {
		return nil, err
	}
	return claims, nil
}

// AsTokenValidator returns s as a middleware.TokenValidator.
func (s *JWTService) AsTokenValidator() middleware.TokenValidator {
	return validatorFunc(s.ValidateToken)
}
