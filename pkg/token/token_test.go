package token

import (
	"testing"
	"time"

	paseto "aidanwoods.dev/go-paseto"
)

func newTestManager(t *testing.T, ttl time.Duration) *Manager {
	t.Helper()
	m, err := New(Config{
		Issuer:    "medisage",
		Audience:  "medisage-clients",
		AccessTTL: ttl,
	}, paseto.NewV4SymmetricKey())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return m
}

func TestIssueAndVerify(t *testing.T) {
	m := newTestManager(t, time.Hour)

	tok, err := m.Issue("64f1c0ffee0000000000aaaa", KindUser)
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	claims, err := m.Verify(tok)
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}
	if claims.AccountID != "64f1c0ffee0000000000aaaa" {
		t.Errorf("AccountID = %q", claims.AccountID)
	}
	if claims.Kind != KindUser {
		t.Errorf("Kind = %q, want %q", claims.Kind, KindUser)
	}
	if !claims.ExpiresAt.After(time.Now()) {
		t.Error("fresh token reported as expired")
	}
}

func TestVerifyKinds(t *testing.T) {
	m := newTestManager(t, time.Hour)

	for _, kind := range []Kind{KindUser, KindClinic} {
		tok, err := m.Issue("abc123", kind)
		if err != nil {
			t.Fatalf("Issue(%q) error = %v", kind, err)
		}
		claims, err := m.Verify(tok)
		if err != nil {
			t.Fatalf("Verify(%q) error = %v", kind, err)
		}
		if claims.Kind != kind {
			t.Errorf("Kind = %q, want %q", claims.Kind, kind)
		}
	}
}

func TestIssueRejectsUnknownKind(t *testing.T) {
	m := newTestManager(t, time.Hour)

	if _, err := m.Issue("abc123", Kind("admin")); err == nil {
		t.Fatal("Issue() with unknown kind should fail")
	}
}

func TestVerifyExpired(t *testing.T) {
	m := newTestManager(t, -time.Minute)

	tok, err := m.Issue("abc123", KindClinic)
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}
	if _, err := m.Verify(tok); err == nil {
		t.Fatal("Verify() should reject an expired token")
	}
}

func TestVerifyWrongKey(t *testing.T) {
	m1 := newTestManager(t, time.Hour)
	m2 := newTestManager(t, time.Hour)

	tok, err := m1.Issue("abc123", KindUser)
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}
	if _, err := m2.Verify(tok); err == nil {
		t.Fatal("Verify() should reject a token encrypted with a different key")
	}
}

func TestVerifyGarbage(t *testing.T) {
	m := newTestManager(t, time.Hour)

	for _, s := range []string{"", "not-a-token", "v4.local.zzzz"} {
		if _, err := m.Verify(s); err == nil {
			t.Errorf("Verify(%q) should fail", s)
		}
	}
}
