package usecase

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"taskmate/internal/ai"
	"taskmate/internal/model"
	"taskmate/internal/task"
)

// draft dueDate layouts the model is allowed to use.
var dueDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
}

// ParseAndCreateTask turns free text into a persisted task. Unlike the other
// operations this one surfaces failures: the user explicitly asked for a
// task, so a silently dropped creation would be worse than an error.
func (uc *implUseCase) ParseAndCreateTask(ctx context.Context, sc model.Scope, text string) (task.Task, error) {
	categoriesJSON := uc.categoriesToJSON(ctx, sc)
	currentDateTime := uc.now().Format(dateTimeLayout)

	prompt := ai.RenderTaskParsingPrompt(categoriesJSON, currentDateTime, text)
	cleaned, err := uc.complete(ctx, prompt, "ParseAndCreateTask")
	if err != nil {
		uc.l.Errorf(ctx, "ai.usecase.ParseAndCreateTask: gateway: %v", err)
		return task.Task{}, ai.ErrUnavailable
	}

	input, err := uc.parseAndRepairDraft(ctx, cleaned)
	if err != nil {
		return task.Task{}, err
	}

	created, err := uc.taskUC.Create(ctx, sc, input)
	if err != nil {
		uc.l.Errorf(ctx, "ai.usecase.ParseAndCreateTask: create: %v", err)
		return task.Task{}, ai.ErrUnavailable
	}
	return created, nil
}

// parseAndRepairDraft decodes model JSON into a draft and clamps it to the
// domain invariants before anything touches storage.
func (uc *implUseCase) parseAndRepairDraft(ctx context.Context, cleaned string) (task.CreateTaskInput, error) {
	var draft ai.TaskDraft
	if err := json.Unmarshal([]byte(cleaned), &draft); err != nil {
		uc.l.Errorf(ctx, "ai.usecase.parseAndRepairDraft: unmarshal %q: %v", cleaned, err)
		return task.CreateTaskInput{}, ai.ErrParse
	}

	if isBlank(draft.Title) {
		return task.CreateTaskInput{}, ai.ErrInvalidTitle
	}
	draft.Title = truncateRunes(draft.Title, ai.MaxDraftTitleLength)
	draft.Content = truncateRunes(draft.Content, ai.MaxDraftContentLength)

	status := task.Status(draft.Status)
	if draft.Status == "" {
		status = task.StatusPending
	} else if !status.IsValid() {
		return task.CreateTaskInput{}, ai.ErrParse
	}

	priority := task.Priority(draft.Priority)
	if draft.Priority == "" {
		priority = task.PriorityMedium
	} else if !priority.IsValid() {
		return task.CreateTaskInput{}, ai.ErrParse
	}

	dueDate, err := uc.repairDueDate(ctx, draft.DueDate)
	if err != nil {
		return task.CreateTaskInput{}, err
	}

	return task.CreateTaskInput{
		Title:       draft.Title,
		Content:     draft.Content,
		DueDate:     dueDate,
		Status:      status,
		Priority:    priority,
		IsFavorite:  draft.IsFavorite,
		CategoryIDs: draft.CategoryIDs,
	}, nil
}

// repairDueDate parses a model-provided due date. A past date is nulled with
// a warning, not rejected, since the rest of the draft is still usable.
func (uc *implUseCase) repairDueDate(ctx context.Context, raw *string) (*time.Time, error) {
	if raw == nil || isBlank(*raw) || *raw == "null" {
		return nil, nil
	}

	var parsed time.Time
	var err error
	for _, layout := range dueDateLayouts {
		if parsed, err = time.Parse(layout, *raw); err == nil {
			break
		}
	}
	if err != nil {
		uc.l.Errorf(ctx, "ai.usecase.repairDueDate: unparseable %q: %v", *raw, err)
		return nil, ai.ErrParse
	}

	if parsed.Before(uc.now()) {
		uc.l.Warnf(ctx, "ai.usecase.repairDueDate: model generated past due date %s, setting to null", parsed)
		return nil, nil
	}
	return &parsed, nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// truncateRunes clamps s to at most max characters, never splitting a rune.
func truncateRunes(s string, max int) string {
	if len(s) <= max {
		return s
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
