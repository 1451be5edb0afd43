package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/dgrijalva/jwt-go"
)

func parseTestToken(t *testing.T, secret, token string) (jwt.MapClaims, error) {
	t.Helper()
	parsed, err := jwt.Parse(token, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok || !parsed.Valid {
		return nil, errors.New("invalid claims")
	}
	return claims, nil
}

func TestLoginIssuesTokenWithIdentityAndExpiry(t *testing.T) {
	svc := NewAuthService("admin", "s3cret", "test-secret")

	token, err := svc.Login(context.Background(), "admin", "s3cret")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	claims, err := parseTestToken(t, "test-secret", token)
	if err != nil {
		t.Fatalf("parse issued token: %v", err)
	}
	if claims["sub"] != "admin" {
		t.Fatalf("expected sub admin, got %v", claims["sub"])
	}

	exp := int64(claims["exp"].(float64))
	remaining := time.Until(time.Unix(exp, 0))
	if remaining < 7*time.Hour+59*time.Minute || remaining > 8*time.Hour {
		t.Fatalf("expected roughly 8h validity, got %s", remaining)
	}
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	svc := NewAuthService("admin", "s3cret", "test-secret")

	_, wrongPass := svc.Login(context.Background(), "admin", "nope")
	_, unknownUser := svc.Login(context.Background(), "someone", "s3cret")

	if !errors.Is(wrongPass, ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", wrongPass)
	}
	if !errors.Is(unknownUser, ErrInvalidCredentials) {
		t.Fatalf("unknown user: expected ErrInvalidCredentials, got %v", unknownUser)
	}
	if wrongPass.Error() != unknownUser.Error() {
		t.Fatalf("failure modes leak detail: %q vs %q", wrongPass, unknownUser)
	}

	// The padding hash must never authenticate anyone.
	if _, err := svc.Login(context.Background(), "someone", "serviceatlas-login-pad"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("padding plaintext: expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLoginComparesHashOnEveryPath(t *testing.T) {
	svc := NewAuthService("admin", "s3cret", "test-secret")

	// A hash comparison runs even for an unknown username, so the rejection
	// cost is in the same band as a wrong-password rejection.
	start := time.Now()
	svc.Login(context.Background(), "admin", "nope")
	knownCost := time.Since(start)

	start = time.Now()
	svc.Login(context.Background(), "someone", "nope")
	unknownCost := time.Since(start)

	if unknownCost < knownCost/10 {
		t.Fatalf("unknown-user rejection returned too fast: %s vs %s", unknownCost, knownCost)
	}
}

func TestLoginDisabledWithoutConfiguredPassword(t *testing.T) {
	svc := NewAuthService("admin", "", "test-secret")

	if _, err := svc.Login(context.Background(), "admin", ""); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestExpiredTokenDoesNotVerify(t *testing.T) {
	svc := NewAuthService("admin", "s3cret", "test-secret")
	svc.ttl = -time.Minute

	token, err := svc.Login(context.Background(), "admin", "s3cret")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	if _, err := parseTestToken(t, "test-secret", token); err == nil {
		t.Fatal("expected expired token to fail verification")
	}
}

func TestTokenSignedWithOtherSecretDoesNotVerify(t *testing.T) {
	svc := NewAuthService("admin", "s3cret", "another-secret")

	token, err := svc.Login(context.Background(), "admin", "s3cret")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	if _, err := parseTestToken(t, "test-secret", token); err == nil {
		t.Fatal("expected signature mismatch to fail verification")
	}
}
