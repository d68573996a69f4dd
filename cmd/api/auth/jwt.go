package auth

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const RoleAdmin = "admin"

var ErrBadPassword = errors.New("password does not match")

// AdminGate verifies the shared admin password server-side and issues HS256
// session tokens for the CMS. The password never ships to the browser; the
// client only ever holds a short-lived token.
type AdminGate struct {
	password []byte
	secret   []byte
	issuer   string
	ttl      time.Duration
}

// NewAdminGateFromEnv reads the credential material from the environment.
//
// - ADMIN_PASSWORD: the shared admin password (required)
// - JWT_SECRET: HS256 signing secret (required)
// - JWT_ISSUER: iss claim value, defaults to "trustgate"
func NewAdminGateFromEnv() (*AdminGate, error) {
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		return nil, fmt.Errorf("ADMIN_PASSWORD is required")
	}
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	issuer := os.Getenv("JWT_ISSUER")
	if issuer == "" {
		issuer = "trustgate"
	}

	return &AdminGate{
		password: []byte(password),
		secret:   []byte(secret),
		issuer:   issuer,
		ttl:      12 * time.Hour,
	}, nil
}

// NewAdminGate builds a gate with explicit material. Tests use this.
func NewAdminGate(password, secret, issuer string, ttl time.Duration) *AdminGate {
	if issuer == "" {
		issuer = "trustgate"
	}
	if ttl == 0 {
		ttl = 12 * time.Hour
	}
	return &AdminGate{
		password: []byte(password),
		secret:   []byte(secret),
		issuer:   issuer,
		ttl:      ttl,
	}
}

// Login checks the password in constant time and returns a signed token.
func (g *AdminGate) Login(password string) (string, error) {
	if subtle.ConstantTimeCompare([]byte(password), g.password) != 1 {
		return "", ErrBadPassword
	}
	return g.sign()
}

func (g *AdminGate) sign() (string, error) {
	claims := jwt.MapClaims{
		"sub":  "admin",
		"role": RoleAdmin,
		"iss":  g.issuer,
		"exp":  time.Now().Add(g.ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(g.secret)
}

// Verify parses the token and confirms the admin role.
func (g *AdminGate) Verify(tokenString string) error {
	parsed, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return g.secret, nil
	})
	if err != nil {
		return err
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok || !parsed.Valid {
		return fmt.Errorf("invalid token claims")
	}

	role, _ := claims["role"].(string)
	if role != RoleAdmin {
		return fmt.Errorf("token missing admin role")
	}
	return nil
}
