package usecase

import (
	"time"

	"taskmate/internal/category"
	"taskmate/internal/task"
	"taskmate/internal/task/repository"
	"taskmate/pkg/gcalendar"
	"taskmate/pkg/log"
)

type implUseCase struct {
	l          log.Logger
	repo       repository.Repository
	categoryUC category.UseCase
	calendar   *gcalendar.Client

	now func() time.Time
}

// New creates a new task UseCase. calendar may be nil, in which case no
// calendar events are created.
func New(l log.Logger, repo repository.Repository, categoryUC category.UseCase, calendar *gcalendar.Client) task.UseCase {
	return &implUseCase{
		l:          l,
		repo:       repo,
		categoryUC: categoryUC,
		calendar:   calendar,
		now:        time.Now,
	}
}
