package ai

import (
	"context"
	"time"

	"taskmate/internal/model"
	"taskmate/internal/task"
)

// Gateway is the opaque boundary to the language model. Rendered prompt in,
// raw text out, no guaranteed output format.
type Gateway interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// UseCase defines the natural-language task operations.
//
// Error policy is asymmetric: ParseAndCreateTask surfaces gateway, parse,
// and validation failures; CategorizeTask degrades to returning the
// unmodified task; the summary operations always return text, falling back
// to deterministic local strings.
type UseCase interface {
	ParseAndCreateTask(ctx context.Context, sc model.Scope, text string) (task.Task, error)
	CategorizeTask(ctx context.Context, sc model.Scope, taskID string) (task.Task, error)

	SummarizeTasks(ctx context.Context, sc model.Scope, taskIDs []string) string
	SummarizeDailyTasks(ctx context.Context, sc model.Scope, date time.Time) string
	SummarizeAllTasks(ctx context.Context, sc model.Scope) string

	DetermineUserIntent(ctx context.Context, text string) UserIntent
	// HandleUserInput classifies the text and routes to the matching
	// operation. The result is either a task.Task or a summary string.
	HandleUserInput(ctx context.Context, sc model.Scope, text string, taskIDs []string, date *time.Time) (any, error)

	HealthCheck(ctx context.Context) string
}
