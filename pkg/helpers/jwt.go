package helpers

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// JWTManager handles generation and validation of the doctor access tokens.
// The signing key is process-wide configuration, constructed once at startup.
type JWTManager struct {
	Secret    []byte
	AccessTTL time.Duration
}

var defaultManager *JWTManager

func NewJWTManager(secret string, accessTTL time.Duration) *JWTManager {
	m := &JWTManager{
		Secret:    []byte(secret),
		AccessTTL: accessTTL,
	}
	defaultManager = m
	return m
}

// DefaultJWT returns the last constructed JWTManager (used for auto-wiring routes)
func DefaultJWT() *JWTManager { return defaultManager }

type Claims struct {
	DoctorID string `json:"doctor_id"`
	jwt.RegisteredClaims
}

func (m *JWTManager) GenerateAccessToken(doctorID string) (string, time.Time, error) {
	exp := time.Now().Add(m.AccessTTL)
	claims := &Claims{
		DoctorID: doctorID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(exp),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := t.SignedString(m.Secret)
	return s, exp, err
}

// ParseAccessToken validates signature and expiry and returns the claims.
// Malformed, expired or mis-signed tokens return an error.
func (m *JWTManager) ParseAccessToken(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	tkn, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return m.Secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !tkn.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}
