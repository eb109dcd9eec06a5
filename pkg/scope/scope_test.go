package scope

import (
	"testing"
	"time"
)

func TestManager_RoundTrip(t *testing.T) {
	m := NewManager("test-secret", time.Hour)

	token, err := m.Generate(Payload{UserID: "user-1", Username: "alice", Role: "USER"})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	p, err := m.Verify(token)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if p.UserID != "user-1" || p.Username != "alice" || p.Role != "USER" {
		t.Errorf("unexpected payload: %+v", p)
	}
}

func TestManager_WrongSecret(t *testing.T) {
	m := NewManager("secret-a", time.Hour)
	other := NewManager("secret-b", time.Hour)

	token, err := m.Generate(Payload{UserID: "user-1"})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if _, err := other.Verify(token); err == nil {
		t.Error("expected verification to fail with wrong secret")
	}
}

func TestManager_Expired(t *testing.T) {
	m := NewManager("test-secret", -time.Minute)

	token, err := m.Generate(Payload{UserID: "user-1"})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if _, err := m.Verify(token); err != ErrExpiredToken {
		t.Errorf("expected ErrExpiredToken, got %v", err)
	}
}
