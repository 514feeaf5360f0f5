package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	"mobilehut/internal/docstore"
	"mobilehut/internal/repos"
	"mobilehut/internal/services"
)

func newAuth(t *testing.T) *services.AuthService {
	t.Helper()
	s := memstore(t)
	users := repos.NewUserRepo(s)
	if _, err := users.Create(context.Background(), docstore.Document{"email": "seller@x.com", "user": "Seller"}); err != nil {
		t.Fatal(err)
	}
	return services.NewAuthService(users, "test-secret", 24*time.Hour)
}

func TestIssueToken_KnownEmail(t *testing.T) {
	auth := newAuth(t)
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	auth.Now = func() time.Time { return now }

	tok, err := auth.IssueToken(context.Background(), "seller@x.com")
	if err != nil {
		t.Fatal(err)
	}
	if tok == "" {
		t.Fatal("empty token")
	}
	claims, err := auth.Verify(tok)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if claims.Email != "seller@x.com" {
		t.Fatalf("want email claim, got %q", claims.Email)
	}
	if got := claims.ExpiresAt.Time.Sub(now); got != 24*time.Hour {
		t.Fatalf("want 24h expiry, got %v", got)
	}
}

func TestIssueToken_UnknownEmail(t *testing.T) {
	auth := newAuth(t)
	_, err := auth.IssueToken(context.Background(), "ghost@x.com")
	if !errors.Is(err, services.ErrUnknownUser) {
		t.Fatalf("want ErrUnknownUser, got %v", err)
	}
}

func TestVerify_Expired(t *testing.T) {
	auth := newAuth(t)
	issued := time.Now().Add(-48 * time.Hour)
	auth.Now = func() time.Time { return issued }
	tok, err := auth.IssueToken(context.Background(), "seller@x.com")
	if err != nil {
		t.Fatal(err)
	}
	auth.Now = time.Now
	if _, err := auth.Verify(tok); !errors.Is(err, services.ErrInvalidToken) {
		t.Fatalf("want ErrInvalidToken for expired token, got %v", err)
	}
}

func TestVerify_WrongSecret(t *testing.T) {
	auth := newAuth(t)
	tok, err := auth.IssueToken(context.Background(), "seller@x.com")
	if err != nil {
		t.Fatal(err)
	}
	other := services.NewAuthService(auth.Users, "another-secret", time.Hour)
	if _, err := other.Verify(tok); !errors.Is(err, services.ErrInvalidToken) {
		t.Fatalf("want ErrInvalidToken, got %v", err)
	}
}

func TestVerify_RejectsOtherAlgorithms(t *testing.T) {
	auth := newAuth(t)
	claims := services.Claims{Email: "seller@x.com", RegisteredClaims: jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString(auth.Secret)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := auth.Verify(tok); !errors.Is(err, services.ErrInvalidToken) {
		t.Fatalf("want HS512 token rejected, got %v", err)
	}
}
