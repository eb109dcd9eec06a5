package usecase

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"taskmate/internal/user"
	"taskmate/internal/user/repository"
	"taskmate/pkg/log"
	"taskmate/pkg/mailer"
	"taskmate/pkg/scope"
)

type implUseCase struct {
	l          log.Logger
	repo       repository.Repository
	jwtManager *scope.Manager
	mailer     mailer.Mailer
	resetTTL   time.Duration

	now         func() time.Time
	tokenDigits func() (string, error)
}

// New creates a new user UseCase. mailer may be nil, in which case password
// reset mails are only logged.
func New(l log.Logger, repo repository.Repository, jwtManager *scope.Manager, m mailer.Mailer, resetTTL time.Duration) user.UseCase {
	if resetTTL == 0 {
		resetTTL = 30 * time.Minute
	}
	return &implUseCase{
		l:           l,
		repo:        repo,
		jwtManager:  jwtManager,
		mailer:      m,
		resetTTL:    resetTTL,
		now:         time.Now,
		tokenDigits: randomSixDigits,
	}
}

// randomSixDigits produces a zero-padded 6-digit numeric token.
func randomSixDigits() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
