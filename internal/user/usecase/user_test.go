package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"taskmate/internal/user"
)

func fixedNow() time.Time {
	return time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
}

func register(t *testing.T, uc *implUseCase, email string) user.User {
	t.Helper()
	u, err := uc.Register(context.Background(), user.RegisterInput{
		Username: strings.Split(email, "@")[0],
		Email:    email,
		Password: "correct-horse",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	return u
}

func TestRegister_DuplicateEmailAndUsername(t *testing.T) {
	now := fixedNow()
	uc := newTestUseCase(newMockRepository(func() time.Time { return now }), &mockMailer{}, now)

	register(t, uc, "alice@example.com")

	_, err := uc.Register(context.Background(), user.RegisterInput{
		Username: "alice2",
		Email:    "ALICE@example.com",
		Password: "correct-horse",
	})
	if !errors.Is(err, user.ErrEmailTaken) {
		t.Errorf("got %v, want ErrEmailTaken", err)
	}

	_, err = uc.Register(context.Background(), user.RegisterInput{
		Username: "alice",
		Email:    "other@example.com",
		Password: "correct-horse",
	})
	if !errors.Is(err, user.ErrUsernameTaken) {
		t.Errorf("got %v, want ErrUsernameTaken", err)
	}
}

func TestRegister_WeakPassword(t *testing.T) {
	now := fixedNow()
	uc := newTestUseCase(newMockRepository(func() time.Time { return now }), &mockMailer{}, now)

	_, err := uc.Register(context.Background(), user.RegisterInput{
		Username: "bob",
		Email:    "bob@example.com",
		Password: "short",
	})
	if !errors.Is(err, user.ErrWeakPassword) {
		t.Fatalf("got %v, want ErrWeakPassword", err)
	}
}

func TestLogin(t *testing.T) {
	now := fixedNow()
	repo := newMockRepository(func() time.Time { return now })
	uc := newTestUseCase(repo, &mockMailer{}, now)

	registered := register(t, uc, "alice@example.com")

	got, token, err := uc.Login(context.Background(), user.LoginInput{
		Email:    "Alice@Example.com",
		Password: "correct-horse",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != registered.ID {
		t.Errorf("logged in as %s, want %s", got.ID, registered.ID)
	}
	if token == "" {
		t.Error("expected a session token")
	}

	if _, _, err := uc.Login(context.Background(), user.LoginInput{
		Email:    "alice@example.com",
		Password: "wrong-password",
	}); !errors.Is(err, user.ErrInvalidCredentials) {
		t.Errorf("got %v, want ErrInvalidCredentials", err)
	}

	if _, _, err := uc.Login(context.Background(), user.LoginInput{
		Email:    "nobody@example.com",
		Password: "correct-horse",
	}); !errors.Is(err, user.ErrInvalidCredentials) {
		t.Errorf("got %v, want ErrInvalidCredentials", err)
	}
}

func TestLogin_DisabledAccount(t *testing.T) {
	now := fixedNow()
	repo := newMockRepository(func() time.Time { return now })
	uc := newTestUseCase(repo, &mockMailer{}, now)

	registered := register(t, uc, "alice@example.com")
	disabled := registered
	disabled.Enabled = false
	repo.users[registered.ID] = disabled

	_, _, err := uc.Login(context.Background(), user.LoginInput{
		Email:    "alice@example.com",
		Password: "correct-horse",
	})
	if !errors.Is(err, user.ErrAccountDisabled) {
		t.Fatalf("got %v, want ErrAccountDisabled", err)
	}
}

func TestForgotPassword_SendsToken(t *testing.T) {
	now := fixedNow()
	repo := newMockRepository(func() time.Time { return now })
	m := &mockMailer{}
	uc := newTestUseCase(repo, m, now)

	register(t, uc, "alice@example.com")

	if err := uc.ForgotPassword(context.Background(), "alice@example.com"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(m.sent) != 1 {
		t.Fatalf("expected 1 mail, got %d", len(m.sent))
	}
	if !strings.Contains(m.sent[0].body, "123456") {
		t.Errorf("mail body missing token: %q", m.sent[0].body)
	}
}

func TestForgotPassword_UnknownEmailSilent(t *testing.T) {
	now := fixedNow()
	m := &mockMailer{}
	uc := newTestUseCase(newMockRepository(func() time.Time { return now }), m, now)

	if err := uc.ForgotPassword(context.Background(), "ghost@example.com"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(m.sent) != 0 {
		t.Errorf("expected no mail, got %d", len(m.sent))
	}
}

func TestResetPassword(t *testing.T) {
	now := fixedNow()
	repo := newMockRepository(func() time.Time { return now })
	uc := newTestUseCase(repo, &mockMailer{}, now)

	register(t, uc, "alice@example.com")
	if err := uc.ForgotPassword(context.Background(), "alice@example.com"); err != nil {
		t.Fatalf("forgot: %v", err)
	}

	if err := uc.ResetPassword(context.Background(), user.ResetPasswordInput{
		Token:       "123456",
		NewPassword: "brand-new-password",
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, _, err := uc.Login(context.Background(), user.LoginInput{
		Email:    "alice@example.com",
		Password: "brand-new-password",
	}); err != nil {
		t.Errorf("login with new password failed: %v", err)
	}

	// Token is single use.
	err := uc.ResetPassword(context.Background(), user.ResetPasswordInput{
		Token:       "123456",
		NewPassword: "another-password",
	})
	if !errors.Is(err, user.ErrInvalidResetToken) {
		t.Errorf("got %v, want ErrInvalidResetToken", err)
	}
}

func TestResetPassword_ExpiredToken(t *testing.T) {
	now := fixedNow()
	repo := newMockRepository(func() time.Time { return now })
	uc := newTestUseCase(repo, &mockMailer{}, now)

	register(t, uc, "alice@example.com")
	if err := uc.ForgotPassword(context.Background(), "alice@example.com"); err != nil {
		t.Fatalf("forgot: %v", err)
	}

	later := now.Add(31 * time.Minute)
	repo.now = func() time.Time { return later }

	err := uc.ResetPassword(context.Background(), user.ResetPasswordInput{
		Token:       "123456",
		NewPassword: "brand-new-password",
	})
	if !errors.Is(err, user.ErrInvalidResetToken) {
		t.Fatalf("got %v, want ErrInvalidResetToken", err)
	}
}

func TestEnsureAdmin_Idempotent(t *testing.T) {
	now := fixedNow()
	repo := newMockRepository(func() time.Time { return now })
	uc := newTestUseCase(repo, &mockMailer{}, now)

	if err := uc.EnsureAdmin(context.Background(), "admin@example.com", "admin", "very-secret-pass"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := uc.EnsureAdmin(context.Background(), "admin@example.com", "admin", "very-secret-pass"); err != nil {
		t.Fatalf("unexpected error on second call: %v", err)
	}
	if len(repo.users) != 1 {
		t.Fatalf("expected 1 user, got %d", len(repo.users))
	}
	for _, u := range repo.users {
		if u.Role != user.RoleAdmin {
			t.Errorf("expected ADMIN role, got %s", u.Role)
		}
	}
}
