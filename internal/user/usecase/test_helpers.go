package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"taskmate/internal/user"
	repo "taskmate/internal/user/repository"
	"taskmate/pkg/scope"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// In-memory repository mock
type mockRepository struct {
	users  map[string]user.User
	tokens map[string]repo.ResetToken
	now    func() time.Time
}

func newMockRepository(now func() time.Time) *mockRepository {
	return &mockRepository{
		users:  make(map[string]user.User),
		tokens: make(map[string]repo.ResetToken),
		now:    now,
	}
}

func (m *mockRepository) CreateUser(ctx context.Context, opt repo.CreateUserOptions) (user.User, error) {
	for _, u := range m.users {
		if u.Email == opt.Email || u.Username == opt.Username {
			return user.User{}, repo.ErrUniqueViolation
		}
	}
	u := user.User{
		ID:        uuid.NewString(),
		Username:  opt.Username,
		Email:     opt.Email,
		Password:  opt.Password,
		Role:      opt.Role,
		Enabled:   true,
		CreatedAt: m.now(),
	}
	m.users[u.ID] = u
	return u, nil
}

func (m *mockRepository) GetOneUser(ctx context.Context, opt repo.GetOneUserOptions) (user.User, error) {
	for _, u := range m.users {
		if opt.ID != "" && u.ID != opt.ID {
			continue
		}
		if opt.Email != "" && u.Email != opt.Email {
			continue
		}
		if opt.Username != "" && u.Username != opt.Username {
			continue
		}
		return u, nil
	}
	return user.User{}, nil
}

func (m *mockRepository) ListUsers(ctx context.Context) ([]user.User, error) {
	var out []user.User
	for _, u := range m.users {
		out = append(out, u)
	}
	return out, nil
}

func (m *mockRepository) UpdateUser(ctx context.Context, opt repo.UpdateUserOptions) (user.User, error) {
	u, ok := m.users[opt.ID]
	if !ok {
		return user.User{}, nil
	}
	if opt.Password != "" {
		u.Password = opt.Password
	}
	if opt.Enabled != nil {
		u.Enabled = *opt.Enabled
	}
	m.users[opt.ID] = u
	return u, nil
}

func (m *mockRepository) CreateResetToken(ctx context.Context, opt repo.CreateResetTokenOptions) error {
	m.tokens[opt.Token] = repo.ResetToken{Token: opt.Token, UserID: opt.UserID, ExpiresAt: opt.ExpiresAt}
	return nil
}

func (m *mockRepository) ConsumeResetToken(ctx context.Context, token string) (repo.ResetToken, error) {
	rt, ok := m.tokens[token]
	if !ok || !rt.ExpiresAt.After(m.now()) {
		return repo.ResetToken{}, nil
	}
	delete(m.tokens, token)
	return rt, nil
}

// Mailer mock recording sent mail.
type mockMailer struct {
	sent []sentMail
}

type sentMail struct {
	to, subject, body string
}

func (m *mockMailer) Send(to, subject, body string) error {
	m.sent = append(m.sent, sentMail{to, subject, body})
	return nil
}

func newTestUseCase(repo *mockRepository, m *mockMailer, now time.Time) *implUseCase {
	return &implUseCase{
		l:           &mockLogger{},
		repo:        repo,
		jwtManager:  scope.NewManager("test-secret", time.Hour),
		mailer:      m,
		resetTTL:    30 * time.Minute,
		now:         func() time.Time { return now },
		tokenDigits: func() (string, error) { return "123456", nil },
	}
}
