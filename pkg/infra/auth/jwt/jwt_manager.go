package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("expired token")
	ErrNoOperator   = errors.New("token carries no operator identity")
)

//go:generate mockery --name=Manager --dir=. --output=mocks/ --filename=jwt_manager_mock.go --case=underscore
type (
	Manager interface {
		CreateToken(userID, userEmail string, ttl time.Duration) (string, error)
		DecodeToken(tokenString string) (*Claims, error)
	}
	manager struct {
		secret []byte
		issuer string
	}
)

func NewJwtManager(secretKey, issuer string) Manager {
	return &manager{
		secret: []byte(secretKey),
		issuer: issuer,
	}
}

type Claims struct {
	UserID    string `json:"user_id,omitempty"`
	UserEmail string `json:"user_email,omitempty"`
	jwt.RegisteredClaims
}

// Operator is the identity recorded against workflow actions.
func (c *Claims) Operator() string {
	if c.UserEmail != "" {
		return c.UserEmail
	}
	return c.UserID
}

func (m *manager) CreateToken(userID, userEmail string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID:    userID,
		UserEmail: userEmail,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:   m.issuer,
			IssuedAt: jwt.NewNumericDate(now),
		},
	}
	if ttl > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(ttl))
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return tokenString, nil
}

// DecodeToken verifies the HS256 signature and expiry and requires an
// operator identity.
func (m *manager) DecodeToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(
		tokenString,
		&Claims{},
		func(token *jwt.Token) (interface{}, error) {
			return m.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.Operator() == "" {
		return nil, ErrNoOperator
	}
	return claims, nil
}
