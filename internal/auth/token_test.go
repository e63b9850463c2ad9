package auth

import (
	"errors"
	"testing"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	tok, err := NewAccessToken("secret", "user-123", RoleCreator, 15)
	if err != nil {
		t.Fatalf("NewAccessToken: %v", err)
	}
	if tok.Token == "" {
		t.Fatal("empty token")
	}

	sub, err := ParseSubject("secret", tok.Token)
	if err != nil {
		t.Fatalf("ParseSubject: %v", err)
	}
	if sub != "user-123" {
		t.Errorf("subject: got %q, want %q", sub, "user-123")
	}
}

func TestParseSubjectWrongSecret(t *testing.T) {
	tok, err := NewAccessToken("secret-a", "user-123", RoleViewer, 15)
	if err != nil {
		t.Fatalf("NewAccessToken: %v", err)
	}
	if _, err := ParseSubject("secret-b", tok.Token); !errors.Is(err, ErrUnauthenticated) {
		t.Errorf("wrong secret: got %v, want ErrUnauthenticated", err)
	}
}

func TestParseSubjectGarbage(t *testing.T) {
	for _, raw := range []string{"", "not-a-jwt", "a.b.c"} {
		if _, err := ParseSubject("secret", raw); !errors.Is(err, ErrUnauthenticated) {
			t.Errorf("ParseSubject(%q): got %v, want ErrUnauthenticated", raw, err)
		}
	}
}

func TestParseSubjectExpired(t *testing.T) {
	tok, err := NewAccessToken("secret", "user-123", RoleViewer, -1)
	if err != nil {
		t.Fatalf("NewAccessToken: %v", err)
	}
	if _, err := ParseSubject("secret", tok.Token); !errors.Is(err, ErrUnauthenticated) {
		t.Errorf("expired token: got %v, want ErrUnauthenticated", err)
	}
}

func TestRefreshTokenHashing(t *testing.T) {
	a, err := NewRefreshToken(30)
	if err != nil {
		t.Fatalf("NewRefreshToken: %v", err)
	}
	b, err := NewRefreshToken(30)
	if err != nil {
		t.Fatalf("NewRefreshToken: %v", err)
	}
	if a.Raw == b.Raw {
		t.Error("two refresh tokens must differ")
	}
	if HashRefreshRaw(a.Raw) != HashRefreshRaw(a.Raw) {
		t.Error("hash must be deterministic")
	}
	if HashRefreshRaw(a.Raw) == HashRefreshRaw(b.Raw) {
		t.Error("different tokens must hash differently")
	}
	if HashRefreshRaw(a.Raw) == a.Raw {
		t.Error("hash must not equal the raw token")
	}
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("hunter2", 4)
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if !VerifyPassword(hash, "hunter2") {
		t.Error("correct password rejected")
	}
	if VerifyPassword(hash, "hunter3") {
		t.Error("wrong password accepted")
	}
}
