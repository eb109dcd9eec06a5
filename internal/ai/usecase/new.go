package usecase

import (
	"time"

	"taskmate/internal/ai"
	"taskmate/internal/category"
	"taskmate/internal/task"
	"taskmate/pkg/log"
)

const (
	dateTimeLayout = "2006-01-02 15:04"
	dateLayout     = "January 2, 2006"
)

type implUseCase struct {
	l          log.Logger
	gateway    ai.Gateway
	taskUC     task.UseCase
	categoryUC category.UseCase

	now func() time.Time
}

// New creates a new AI UseCase on top of the model gateway and the task and
// category domains.
func New(l log.Logger, gateway ai.Gateway, taskUC task.UseCase, categoryUC category.UseCase) ai.UseCase {
	return &implUseCase{
		l:          l,
		gateway:    gateway,
		taskUC:     taskUC,
		categoryUC: categoryUC,
		now:        time.Now,
	}
}
