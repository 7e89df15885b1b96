package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/nico/guidepanel/internal/admin"
	"github.com/nico/guidepanel/internal/guide"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")
)

// Claims carry the session user inside the token so request handling never
// needs a user lookup.
type Claims struct {
	UserID      string `json:"user_id"`
	Name        string `json:"name"`
	Role        string `json:"role"`
	AccessLevel string `json:"access_level"`
	Email       string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// SessionUser rebuilds the session identity embedded in the claims.
func (c *Claims) SessionUser() admin.SessionUser {
	return admin.SessionUser{
		ID:          c.UserID,
		Name:        c.Name,
		Role:        c.Role,
		AccessLevel: guide.AccessLevel(c.AccessLevel),
		Email:       c.Email,
	}
}

type JWTService struct {
	secret []byte
	expiry time.Duration
}

func NewJWTService(secret string, expiry time.Duration) *JWTService {
	return &JWTService{
		secret: []byte(secret),
		expiry: expiry,
	}
}

func (s *JWTService) GenerateToken(user admin.SessionUser) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:      user.ID,
		Name:        user.Name,
		Role:        user.Role,
		AccessLevel: string(user.AccessLevel),
		Email:       user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    "guidepanel",
			Subject:   user.ID,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	})

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

	return claims, nil
}
