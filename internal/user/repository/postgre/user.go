package postgre

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"taskmate/internal/user"
	repo "taskmate/internal/user/repository"
)

const userColumns = `id, username, email, password, role, enabled, created_at`

// CreateUser inserts a new User row. A username or email unique violation
// maps to ErrUniqueViolation.
func (r *implRepository) CreateUser(ctx context.Context, opt repo.CreateUserOptions) (user.User, error) {
	const query = `
		INSERT INTO users (id, username, email, password, role)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + userColumns

	var u user.User
	err := r.db.QueryRowContext(ctx, query,
		uuid.NewString(), opt.Username, opt.Email, opt.Password, string(opt.Role),
	).Scan(scanDest(&u)...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return user.User{}, repo.ErrUniqueViolation
		}
		r.l.Errorf(ctx, "user/repository/postgre.CreateUser: %v", err)
		return user.User{}, repo.ErrFailedToInsert
	}
	return u, nil
}

// GetOneUser retrieves a single User by the provided filters (AND condition).
// Returns zero-value User (ID == "") when not found — do NOT return error for not-found.
func (r *implRepository) GetOneUser(ctx context.Context, opt repo.GetOneUserOptions) (user.User, error) {
	mods := make([]string, 0, 3)
	args := make([]any, 0, 3)

	if opt.ID != "" {
		args = append(args, opt.ID)
		mods = append(mods, fmt.Sprintf("id = $%d", len(args)))
	}
	if opt.Email != "" {
		args = append(args, opt.Email)
		mods = append(mods, fmt.Sprintf("email = $%d", len(args)))
	}
	if opt.Username != "" {
		args = append(args, opt.Username)
		mods = append(mods, fmt.Sprintf("username = $%d", len(args)))
	}

	query := fmt.Sprintf("SELECT %s FROM users WHERE %s LIMIT 1",
		userColumns, strings.Join(mods, " AND "))

	var u user.User
	err := r.db.QueryRowContext(ctx, query, args...).Scan(scanDest(&u)...)
	if err == sql.ErrNoRows {
		return user.User{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "user/repository/postgre.GetOneUser: %v", err)
		return user.User{}, repo.ErrFailedToGet
	}
	return u, nil
}

// ListUsers returns all users ordered by creation time.
func (r *implRepository) ListUsers(ctx context.Context) ([]user.User, error) {
	query := fmt.Sprintf("SELECT %s FROM users ORDER BY created_at", userColumns)

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.l.Errorf(ctx, "user/repository/postgre.ListUsers: %v", err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var out []user.User
	for rows.Next() {
		var u user.User
		if err := rows.Scan(scanDest(&u)...); err != nil {
			return nil, repo.ErrFailedToList
		}
		out = append(out, u)
	}
	if err := rows.Err(); err != nil {
		return nil, repo.ErrFailedToList
	}
	return out, nil
}

// UpdateUser writes the non-zero fields of opt.
func (r *implRepository) UpdateUser(ctx context.Context, opt repo.UpdateUserOptions) (user.User, error) {
	sets := make([]string, 0, 2)
	args := make([]any, 0, 3)

	if opt.Password != "" {
		args = append(args, opt.Password)
		sets = append(sets, fmt.Sprintf("password = $%d", len(args)))
	}
	if opt.Enabled != nil {
		args = append(args, *opt.Enabled)
		sets = append(sets, fmt.Sprintf("enabled = $%d", len(args)))
	}
	if len(sets) == 0 {
		return r.GetOneUser(ctx, repo.GetOneUserOptions{ID: opt.ID})
	}

	args = append(args, opt.ID)
	query := fmt.Sprintf("UPDATE users SET %s WHERE id = $%d RETURNING %s",
		strings.Join(sets, ", "), len(args), userColumns)

	var u user.User
	err := r.db.QueryRowContext(ctx, query, args...).Scan(scanDest(&u)...)
	if err == sql.ErrNoRows {
		return user.User{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "user/repository/postgre.UpdateUser: %v", err)
		return user.User{}, repo.ErrFailedToUpdate
	}
	return u, nil
}

// CreateResetToken stores a password reset token.
func (r *implRepository) CreateResetToken(ctx context.Context, opt repo.CreateResetTokenOptions) error {
	const query = `
		INSERT INTO password_reset_tokens (token, user_id, expires_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (token) DO UPDATE SET user_id = $2, expires_at = $3`

	if _, err := r.db.ExecContext(ctx, query, opt.Token, opt.UserID, opt.ExpiresAt); err != nil {
		r.l.Errorf(ctx, "user/repository/postgre.CreateResetToken: %v", err)
		return repo.ErrFailedToInsert
	}
	return nil
}

// ConsumeResetToken atomically deletes and returns an unexpired token.
// Unknown or expired tokens return the zero value.
func (r *implRepository) ConsumeResetToken(ctx context.Context, token string) (repo.ResetToken, error) {
	const query = `
		DELETE FROM password_reset_tokens
		WHERE token = $1 AND expires_at > $2
		RETURNING token, user_id, expires_at`

	var rt repo.ResetToken
	err := r.db.QueryRowContext(ctx, query, token, time.Now()).Scan(&rt.Token, &rt.UserID, &rt.ExpiresAt)
	if err == sql.ErrNoRows {
		return repo.ResetToken{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "user/repository/postgre.ConsumeResetToken: %v", err)
		return repo.ResetToken{}, repo.ErrFailedToGet
	}
	return rt, nil
}

func scanDest(u *user.User) []any {
	return []any{&u.ID, &u.Username, &u.Email, &u.Password, &u.Role, &u.Enabled, &u.CreatedAt}
}
