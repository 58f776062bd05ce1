package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/portalhq/jobboard/pkg/errx"
	"github.com/portalhq/jobboard/pkg/kernel"
)

// TokenService issues and validates HMAC-signed access tokens. Each token
// carries a unique token ID (jti) so sessions can be revoked server-side.
type TokenService struct {
	secret []byte
	issuer string
	ttl    time.Duration
}

func NewTokenService(secret, issuer string, ttl time.Duration) *TokenService {
	return &TokenService{secret: []byte(secret), issuer: issuer, ttl: ttl}
}

// TokenClaims is the validated content of an access token.
type TokenClaims struct {
	TokenID   string
	UserID    kernel.UserID
	Role      Role
	Email     kernel.Email
	FullName  string
	ExpiresAt time.Time
}

// TTL is the configured token lifetime, shared with the session store.
func (s *TokenService) TTL() time.Duration { return s.ttl }

// Generate signs a token for the user and returns the token plus its ID.
func (s *TokenService) Generate(userID kernel.UserID, role Role, email kernel.Email, fullName string) (string, string, error) {
	now := time.Now()
	tokenID := uuid.NewString()

	claims := jwt.MapClaims{
		"jti":       tokenID,
		"sub":       userID.String(),
		"role":      role.String(),
		"email":     email.String(),
		"full_name": fullName,
		"iss":       s.issuer,
		"iat":       now.Unix(),
		"exp":       now.Add(s.ttl).Unix(),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", "", errx.Wrap(err, "failed to sign access token", errx.TypeInternal)
	}
	return token, tokenID, nil
}

// Validate parses and verifies a token string.
func (s *TokenService) Validate(tokenString string) (*TokenClaims, error) {
	parsed, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	}, jwt.WithIssuer(s.issuer), jwt.WithExpirationRequired())
	if err != nil {
		return nil, errx.Wrap(err, "invalid or expired token", errx.TypeAuthentication)
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok || !parsed.Valid {
		return nil, errx.Wrap(jwt.ErrTokenInvalidClaims, "invalid token claims", errx.TypeAuthentication)
	}

	role, ok := ParseRole(stringClaim(claims, "role"))
	if !ok {
		return nil, errx.Wrap(jwt.ErrTokenInvalidClaims, "unknown role in token", errx.TypeAuthentication)
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return nil, errx.Wrap(jwt.ErrTokenInvalidClaims, "missing expiry in token", errx.TypeAuthentication)
	}

	return &TokenClaims{
		TokenID:   stringClaim(claims, "jti"),
		UserID:    kernel.UserID(stringClaim(claims, "sub")),
		Role:      role,
		Email:     kernel.Email(stringClaim(claims, "email")),
		FullName:  stringClaim(claims, "full_name"),
		ExpiresAt: exp.Time,
	}, nil
}

func stringClaim(claims jwt.MapClaims, key string) string {
	if v, ok := claims[key].(string); ok {
		return v
	}
	return ""
}
