package auth

import (
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"taskly.com/internal/config"
	"taskly.com/internal/model"
)

// Claims is the fixed claim set carried by a session token. The subject is
// the username; the numeric user id travels as a string.
type Claims struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	UserID   string `json:"userId"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// TokenManager mints and verifies HMAC-SHA256 signed session tokens. Issue
// and Verify are pure computations and safe for concurrent use.
type TokenManager struct {
	secret   []byte
	issuer   string
	audience string
	validity time.Duration

	now func() time.Time
}

func NewTokenManager(cfg config.JWTConfig) *TokenManager {
	validity := time.Duration(cfg.ExpiryHours) * time.Hour
	if validity <= 0 {
		validity = 7 * 24 * time.Hour
	}
	return &TokenManager{
		secret:   []byte(cfg.Secret),
		issuer:   cfg.Issuer,
		audience: cfg.Audience,
		validity: validity,
		now:      time.Now,
	}
}

// Issue mints a signed token for the user, expiring after the configured
// validity window.
func (m *TokenManager) Issue(user *model.User) (string, error) {
	role := user.Role
	if role == "" {
		role = "user"
	}

	issuedAt := m.now()
	claims := Claims{
		Username: user.Username,
		Email:    user.Email,
		UserID:   strconv.FormatUint(uint64(user.ID), 10),
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Username,
			Issuer:    m.issuer,
			Audience:  jwt.ClaimStrings{m.audience},
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(m.validity)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// Verify checks signature, issuer, audience and expiry, and returns the
// embedded claims.
func (m *TokenManager) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (interface{}, error) { return m.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(m.issuer),
		jwt.WithAudience(m.audience),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenSignatureInvalid
	}
	return claims, nil
}
