package usecase

import (
	"context"
	"fmt"
	"time"

	"taskmate/internal/ai"
	"taskmate/internal/model"
	"taskmate/internal/task"
)

// SummarizeTasks summarizes an explicit id list. Failing ids are skipped and
// the rest summarized; gateway failures fall back to a fixed string.
func (uc *implUseCase) SummarizeTasks(ctx context.Context, sc model.Scope, taskIDs []string) string {
	if len(taskIDs) == 0 {
		return "No tasks to summarize."
	}

	tasks := make([]task.Task, 0, len(taskIDs))
	for _, id := range taskIDs {
		t, err := uc.taskUC.Detail(ctx, sc, id)
		if err != nil {
			uc.l.Warnf(ctx, "ai.usecase.SummarizeTasks: skipping task %s: %v", id, err)
			continue
		}
		tasks = append(tasks, t)
	}
	if len(tasks) == 0 {
		return "No valid tasks found to summarize."
	}

	prompt := ai.RenderTaskSummaryPrompt(uc.tasksToJSON(ctx, sc, tasks))
	summary, err := uc.complete(ctx, prompt, "SummarizeTasks")
	if err != nil || summary == "" {
		uc.l.Errorf(ctx, "ai.usecase.SummarizeTasks: gateway: %v", err)
		return "Unable to generate task summary at this time."
	}
	return summary
}

// SummarizeDailyTasks summarizes the tasks due on one calendar day. The
// fallback is computed from locally known data.
func (uc *implUseCase) SummarizeDailyTasks(ctx context.Context, sc model.Scope, date time.Time) string {
	dateFormatted := date.Format(dateLayout)

	tasks, err := uc.taskUC.GetByDate(ctx, sc, date)
	if err != nil {
		uc.l.Errorf(ctx, "ai.usecase.SummarizeDailyTasks: fetch: %v", err)
		return fmt.Sprintf("No tasks scheduled for %s.", dateFormatted)
	}
	if len(tasks) == 0 {
		return fmt.Sprintf("No tasks scheduled for %s.", dateFormatted)
	}

	prompt := ai.RenderDailySummaryPrompt(dateFormatted, uc.tasksToJSON(ctx, sc, tasks))
	summary, err := uc.complete(ctx, prompt, "SummarizeDailyTasks")
	if err != nil || summary == "" {
		uc.l.Errorf(ctx, "ai.usecase.SummarizeDailyTasks: gateway: %v", err)
		return fmt.Sprintf("You have %d task(s) scheduled for %s.", len(tasks), dateFormatted)
	}
	return summary
}

// SummarizeAllTasks summarizes the user's tasks, capped at the most recent
// ones so the prompt stays bounded.
func (uc *implUseCase) SummarizeAllTasks(ctx context.Context, sc model.Scope) string {
	out, err := uc.taskUC.List(ctx, sc, task.ListTasksInput{Page: 1, PageSize: ai.MaxTasksForSummary})
	if err != nil {
		uc.l.Errorf(ctx, "ai.usecase.SummarizeAllTasks: fetch: %v", err)
		return "Unable to generate comprehensive task summary at this time."
	}
	if len(out.Tasks) == 0 {
		return "You don't have any tasks yet. Start by creating your first task!"
	}

	prompt := ai.RenderAllTasksSummaryPrompt(uc.tasksToJSON(ctx, sc, out.Tasks))
	summary, err := uc.complete(ctx, prompt, "SummarizeAllTasks")
	if err != nil || summary == "" {
		uc.l.Errorf(ctx, "ai.usecase.SummarizeAllTasks: gateway: %v", err)
		return "Unable to generate comprehensive task summary at this time."
	}
	return summary
}
