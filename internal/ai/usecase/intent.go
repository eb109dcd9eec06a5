package usecase

import (
	"context"
	"strings"
	"time"

	"taskmate/internal/ai"
	"taskmate/internal/model"
	"taskmate/internal/task"
)

// DetermineUserIntent classifies free text into the closed intent set.
// Classification never fails outward, any gateway error yields UNKNOWN.
func (uc *implUseCase) DetermineUserIntent(ctx context.Context, text string) ai.UserIntent {
	prompt := ai.RenderIntentDetectionPrompt(text)

	raw, err := uc.gateway.Complete(ctx, prompt)
	if err != nil {
		uc.l.Errorf(ctx, "ai.usecase.DetermineUserIntent: %v", err)
		return ai.IntentUnknown
	}

	label := strings.ToUpper(strings.TrimSpace(raw))
	return ai.ParseIntent(label)
}

// HandleUserInput classifies the text and routes to the matching operation.
func (uc *implUseCase) HandleUserInput(ctx context.Context, sc model.Scope, text string, taskIDs []string, date *time.Time) (any, error) {
	switch uc.DetermineUserIntent(ctx, text) {
	case ai.IntentCreateTask:
		return uc.ParseAndCreateTask(ctx, sc, text)
	case ai.IntentSummarizeTask:
		return uc.handleSummarize(ctx, sc, taskIDs, date), nil
	case ai.IntentCategorizeTask:
		return uc.handleCategorize(ctx, sc, text)
	default:
		return ai.FallbackUnknownIntent, nil
	}
}

func (uc *implUseCase) handleSummarize(ctx context.Context, sc model.Scope, taskIDs []string, date *time.Time) string {
	switch {
	case len(taskIDs) > 0:
		return uc.SummarizeTasks(ctx, sc, taskIDs)
	case date != nil:
		return uc.SummarizeDailyTasks(ctx, sc, *date)
	default:
		return uc.SummarizeAllTasks(ctx, sc)
	}
}

// handleCategorize resolves the text as an exact task title. No match is a
// caller error and surfaces as NotFound.
func (uc *implUseCase) handleCategorize(ctx context.Context, sc model.Scope, text string) (any, error) {
	found, err := uc.taskUC.FindByExactTitle(ctx, sc, text)
	if err != nil {
		return nil, err
	}
	if found.ID == "" {
		return nil, task.ErrNotFound
	}
	return uc.CategorizeTask(ctx, sc, found.ID)
}
