package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 8 * time.Hour

// dummyHash keeps the cost of a rejected login constant when the username is
// unknown or no password is configured. The plaintext it hashes never grants
// access; the username check rejects first.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("serviceatlas-login-pad"), bcrypt.DefaultCost)

// AuthService gates the admin surface behind a single configured identity.
// The password is hashed once at construction; the plaintext is not retained.
type AuthService struct {
	username string
	passHash []byte
	secret   string
	ttl      time.Duration
}

func NewAuthService(username, password, secret string) *AuthService {
	var passHash []byte
	if password == "" {
		slog.Warn("auth: no admin password configured, login disabled")
	} else {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			slog.Error("auth: failed to hash admin password, login disabled", "err", err)
		} else {
			passHash = hash
		}
	}

	return &AuthService{
		username: username,
		passHash: passHash,
		secret:   secret,
		ttl:      tokenTTL,
	}
}

// Login issues a signed credential valid for eight hours. Unknown username,
// wrong password and an unconfigured gate all fail with the same sentinel,
// and a hash comparison runs on every path so timing does not reveal which
// check missed.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	hash := s.passHash
	if hash == nil || username != s.username {
		hash = dummyHash
	}
	if err := bcrypt.CompareHashAndPassword(hash, []byte(password)); err != nil || s.passHash == nil || username != s.username {
		return "", ErrInvalidCredentials
	}

	claims := jwt.MapClaims{
		"sub": s.username,
		"exp": time.Now().Add(s.ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.secret))
	if err != nil {
		slog.Error("auth: failed to sign token", "err", err)
		return "", err
	}
	return signed, nil
}

func (s *AuthService) Username() string {
	return s.username
}
