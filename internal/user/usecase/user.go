package usecase

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"taskmate/internal/model"
	"taskmate/internal/user"
	"taskmate/internal/user/repository"
	"taskmate/pkg/scope"
)

const minPasswordLength = 8

func (uc *implUseCase) Register(ctx context.Context, input user.RegisterInput) (user.User, error) {
	username := strings.TrimSpace(input.Username)
	email := strings.ToLower(strings.TrimSpace(input.Email))

	if len(input.Password) < minPasswordLength {
		return user.User{}, user.ErrWeakPassword
	}

	if existing, err := uc.repo.GetOneUser(ctx, repository.GetOneUserOptions{Email: email}); err != nil {
		return user.User{}, err
	} else if existing.ID != "" {
		return user.User{}, user.ErrEmailTaken
	}
	if existing, err := uc.repo.GetOneUser(ctx, repository.GetOneUserOptions{Username: username}); err != nil {
		return user.User{}, err
	} else if existing.ID != "" {
		return user.User{}, user.ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		uc.l.Errorf(ctx, "user.usecase.Register: hash: %v", err)
		return user.User{}, err
	}

	created, err := uc.repo.CreateUser(ctx, repository.CreateUserOptions{
		Username: username,
		Email:    email,
		Password: string(hash),
		Role:     user.RoleUser,
	})
	if err == repository.ErrUniqueViolation {
		// Lost the race against a concurrent registration.
		return user.User{}, user.ErrEmailTaken
	}
	if err != nil {
		uc.l.Errorf(ctx, "user.usecase.Register: %v", err)
		return user.User{}, err
	}

	uc.l.Infof(ctx, "user.usecase: registered %s", created.ID)
	return created, nil
}

func (uc *implUseCase) Login(ctx context.Context, input user.LoginInput) (user.User, string, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	found, err := uc.repo.GetOneUser(ctx, repository.GetOneUserOptions{Email: email})
	if err != nil {
		uc.l.Errorf(ctx, "user.usecase.Login: %v", err)
		return user.User{}, "", err
	}
	if found.ID == "" {
		return user.User{}, "", user.ErrInvalidCredentials
	}
	if !found.Enabled {
		return user.User{}, "", user.ErrAccountDisabled
	}
	if bcrypt.CompareHashAndPassword([]byte(found.Password), []byte(input.Password)) != nil {
		return user.User{}, "", user.ErrInvalidCredentials
	}

	token, err := uc.jwtManager.Generate(scope.Payload{
		UserID:   found.ID,
		Username: found.Username,
		Role:     string(found.Role),
	})
	if err != nil {
		uc.l.Errorf(ctx, "user.usecase.Login: token: %v", err)
		return user.User{}, "", err
	}
	return found, token, nil
}

func (uc *implUseCase) Me(ctx context.Context, sc model.Scope) (user.User, error) {
	found, err := uc.repo.GetOneUser(ctx, repository.GetOneUserOptions{ID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "user.usecase.Me: %v", err)
		return user.User{}, err
	}
	if found.ID == "" {
		return user.User{}, user.ErrNotFound
	}
	return found, nil
}

func (uc *implUseCase) ForgotPassword(ctx context.Context, email string) error {
	email = strings.ToLower(strings.TrimSpace(email))

	found, err := uc.repo.GetOneUser(ctx, repository.GetOneUserOptions{Email: email})
	if err != nil {
		uc.l.Errorf(ctx, "user.usecase.ForgotPassword: %v", err)
		return err
	}
	if found.ID == "" {
		// Report success for unknown addresses, the endpoint must not leak
		// which emails have accounts.
		return nil
	}

	token, err := uc.tokenDigits()
	if err != nil {
		uc.l.Errorf(ctx, "user.usecase.ForgotPassword: token: %v", err)
		return err
	}

	if err := uc.repo.CreateResetToken(ctx, repository.CreateResetTokenOptions{
		Token:     token,
		UserID:    found.ID,
		ExpiresAt: uc.now().Add(uc.resetTTL),
	}); err != nil {
		uc.l.Errorf(ctx, "user.usecase.ForgotPassword: store: %v", err)
		return err
	}

	body := fmt.Sprintf(
		"Hello %s,\n\nYour password reset code is: %s\n\nIt expires in %d minutes. If you did not request a reset, ignore this mail.",
		found.Username, token, int(uc.resetTTL.Minutes()),
	)
	if uc.mailer == nil {
		uc.l.Warnf(ctx, "user.usecase.ForgotPassword: no mailer configured, reset code for %s not sent", found.ID)
		return nil
	}
	if err := uc.mailer.Send(found.Email, "Password reset code", body); err != nil {
		uc.l.Errorf(ctx, "user.usecase.ForgotPassword: send: %v", err)
		return err
	}
	return nil
}

func (uc *implUseCase) ResetPassword(ctx context.Context, input user.ResetPasswordInput) error {
	if len(input.NewPassword) < minPasswordLength {
		return user.ErrWeakPassword
	}

	rt, err := uc.repo.ConsumeResetToken(ctx, strings.TrimSpace(input.Token))
	if err != nil {
		uc.l.Errorf(ctx, "user.usecase.ResetPassword: %v", err)
		return err
	}
	if rt.Token == "" {
		return user.ErrInvalidResetToken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		uc.l.Errorf(ctx, "user.usecase.ResetPassword: hash: %v", err)
		return err
	}

	updated, err := uc.repo.UpdateUser(ctx, repository.UpdateUserOptions{
		ID:       rt.UserID,
		Password: string(hash),
	})
	if err != nil {
		uc.l.Errorf(ctx, "user.usecase.ResetPassword: update: %v", err)
		return err
	}
	if updated.ID == "" {
		return user.ErrNotFound
	}

	uc.l.Infof(ctx, "user.usecase: password reset for %s", rt.UserID)
	return nil
}

func (uc *implUseCase) ListUsers(ctx context.Context, sc model.Scope) ([]user.User, error) {
	users, err := uc.repo.ListUsers(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "user.usecase.ListUsers: %v", err)
		return nil, err
	}
	return users, nil
}

func (uc *implUseCase) EnsureAdmin(ctx context.Context, email, username, password string) error {
	email = strings.ToLower(strings.TrimSpace(email))

	existing, err := uc.repo.GetOneUser(ctx, repository.GetOneUserOptions{Email: email})
	if err != nil {
		return err
	}
	if existing.ID != "" {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	created, err := uc.repo.CreateUser(ctx, repository.CreateUserOptions{
		Username: username,
		Email:    email,
		Password: string(hash),
		Role:     user.RoleAdmin,
	})
	if err == repository.ErrUniqueViolation {
		return nil
	}
	if err != nil {
		return err
	}

	uc.l.Infof(ctx, "user.usecase: seeded admin %s", created.ID)
	return nil
}

func (uc *implUseCase) SetEnabled(ctx context.Context, sc model.Scope, id string, enabled bool) (user.User, error) {
	updated, err := uc.repo.UpdateUser(ctx, repository.UpdateUserOptions{
		ID:      id,
		Enabled: &enabled,
	})
	if err != nil {
		uc.l.Errorf(ctx, "user.usecase.SetEnabled: %v", err)
		return user.User{}, err
	}
	if updated.ID == "" {
		return user.User{}, user.ErrNotFound
	}
	return updated, nil
}
