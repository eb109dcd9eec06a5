package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"taskmate/internal/model"
	"taskmate/internal/task"
)

var testScope = model.Scope{UserID: "user-1", Username: "alice", Role: "USER"}

func TestCreate_NormalizesAndDefaults(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	uc := newTestUseCase(newMockRepository(), newMockCategoryUC(), now)

	due := now.Add(24 * time.Hour)
	created, err := uc.Create(context.Background(), testScope, task.CreateTaskInput{
		Title:   "  Buy   groceries  ",
		Content: "milk\n\nand   eggs",
		DueDate: &due,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.Title != "Buy groceries" {
		t.Errorf("title not normalized, got %q", created.Title)
	}
	if created.Content != "milk and eggs" {
		t.Errorf("content not normalized, got %q", created.Content)
	}
	if created.Status != task.StatusPending {
		t.Errorf("expected default status PENDING, got %s", created.Status)
	}
	if created.Priority != task.PriorityMedium {
		t.Errorf("expected default priority MEDIUM, got %s", created.Priority)
	}
}

func TestCreate_Validation(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	tests := []struct {
		name    string
		input   task.CreateTaskInput
		wantErr error
	}{
		{"empty title", task.CreateTaskInput{Title: "   "}, task.ErrInvalidTitle},
		{"title too long", task.CreateTaskInput{Title: strings.Repeat("a", 101)}, task.ErrInvalidTitle},
		{"content too long", task.CreateTaskInput{Title: "ok", Content: strings.Repeat("b", 1001)}, task.ErrContentTooLong},
		{"bad status", task.CreateTaskInput{Title: "ok", Status: "SOMEDAY"}, task.ErrInvalidStatus},
		{"bad priority", task.CreateTaskInput{Title: "ok", Priority: "URGENT"}, task.ErrInvalidPriority},
		{"past due date", task.CreateTaskInput{Title: "ok", DueDate: &past}, task.ErrDueDateInPast},
		{"valid", task.CreateTaskInput{Title: "ok", DueDate: &future}, nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			uc := newTestUseCase(newMockRepository(), newMockCategoryUC(), now)
			_, err := uc.Create(context.Background(), testScope, tc.input)
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("got %v, want %v", err, tc.wantErr)
			}
		})
	}
}

func TestCreate_RejectsForeignCategories(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	catUC := newMockCategoryUC()
	other, _ := catUC.Create(context.Background(), model.Scope{UserID: "user-2"}, taskCategoryInput("Work"))

	uc := newTestUseCase(newMockRepository(), catUC, now)
	_, err := uc.Create(context.Background(), testScope, task.CreateTaskInput{
		Title:       "Report",
		CategoryIDs: []string{other.ID},
	})
	if !errors.Is(err, task.ErrCategoryNotOwned) {
		t.Fatalf("got %v, want ErrCategoryNotOwned", err)
	}
}

func TestDetail_RollsOverMissed(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	repo := newMockRepository()
	uc := newTestUseCase(repo, newMockCategoryUC(), now)

	overdue := now.Add(-48 * time.Hour)
	created, _ := repo.CreateTask(context.Background(), createOpts("Overdue", &overdue, task.StatusPending))

	got, err := uc.Detail(context.Background(), testScope, created.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Status != task.StatusMissed {
		t.Errorf("expected MISSED, got %s", got.Status)
	}
	if repo.tasks[created.ID].Status != task.StatusMissed {
		t.Error("missed status not persisted")
	}
}

func TestDetail_DoneTasksStayDone(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	repo := newMockRepository()
	uc := newTestUseCase(repo, newMockCategoryUC(), now)

	overdue := now.Add(-time.Hour)
	created, _ := repo.CreateTask(context.Background(), createOpts("Finished", &overdue, task.StatusDone))

	got, err := uc.Detail(context.Background(), testScope, created.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Status != task.StatusDone {
		t.Errorf("expected DONE, got %s", got.Status)
	}
	if repo.statusSets != 0 {
		t.Error("unexpected bulk status update")
	}
}

func TestDetail_NotFound(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	uc := newTestUseCase(newMockRepository(), newMockCategoryUC(), now)

	_, err := uc.Detail(context.Background(), testScope, "missing")
	if !errors.Is(err, task.ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
}

func TestUpdate_KeepsUnchangedPastDueDate(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	repo := newMockRepository()
	uc := newTestUseCase(repo, newMockCategoryUC(), now)

	past := now.Add(-24 * time.Hour)
	created, _ := repo.CreateTask(context.Background(), createOpts("Old", &past, task.StatusMissed))

	updated, err := uc.Update(context.Background(), testScope, task.UpdateTaskInput{
		ID:       created.ID,
		Title:    "Old but renamed",
		DueDate:  &past,
		Status:   task.StatusMissed,
		Priority: task.PriorityMedium,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Title != "Old but renamed" {
		t.Errorf("title not updated, got %q", updated.Title)
	}
}

func TestUpdate_RejectsNewPastDueDate(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	repo := newMockRepository()
	uc := newTestUseCase(repo, newMockCategoryUC(), now)

	future := now.Add(24 * time.Hour)
	created, _ := repo.CreateTask(context.Background(), createOpts("Soon", &future, task.StatusPending))

	past := now.Add(-time.Hour)
	_, err := uc.Update(context.Background(), testScope, task.UpdateTaskInput{
		ID:       created.ID,
		Title:    "Soon",
		DueDate:  &past,
		Status:   task.StatusPending,
		Priority: task.PriorityMedium,
	})
	if !errors.Is(err, task.ErrDueDateInPast) {
		t.Fatalf("got %v, want ErrDueDateInPast", err)
	}
}

func TestChangeStatus_Invalid(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	uc := newTestUseCase(newMockRepository(), newMockCategoryUC(), now)

	_, err := uc.ChangeStatus(context.Background(), testScope, "any", "ARCHIVED")
	if !errors.Is(err, task.ErrInvalidStatus) {
		t.Fatalf("got %v, want ErrInvalidStatus", err)
	}
}

func TestToggleFavorite(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	repo := newMockRepository()
	uc := newTestUseCase(repo, newMockCategoryUC(), now)

	created, _ := repo.CreateTask(context.Background(), createOpts("Star me", nil, task.StatusPending))

	got, err := uc.ToggleFavorite(context.Background(), testScope, created.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.IsFavorite {
		t.Error("expected favorite after first toggle")
	}

	got, err = uc.ToggleFavorite(context.Background(), testScope, created.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.IsFavorite {
		t.Error("expected not favorite after second toggle")
	}
}

func TestGetByDate_DayWindow(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	repo := newMockRepository()
	uc := newTestUseCase(repo, newMockCategoryUC(), now)

	inDayEarly := time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC)
	inDayLate := time.Date(2026, 3, 12, 23, 59, 59, 0, time.UTC)
	nextDay := time.Date(2026, 3, 13, 0, 0, 0, 0, time.UTC)

	repo.CreateTask(context.Background(), createOpts("early", &inDayEarly, task.StatusPending))
	repo.CreateTask(context.Background(), createOpts("late", &inDayLate, task.StatusPending))
	repo.CreateTask(context.Background(), createOpts("next", &nextDay, task.StatusPending))
	repo.CreateTask(context.Background(), createOpts("no due", nil, task.StatusPending))

	got, err := uc.GetByDate(context.Background(), testScope, time.Date(2026, 3, 12, 15, 30, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(got))
	}
}

func TestFindByExactTitle(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	repo := newMockRepository()
	uc := newTestUseCase(repo, newMockCategoryUC(), now)

	repo.CreateTask(context.Background(), createOpts("Buy groceries", nil, task.StatusPending))

	got, err := uc.FindByExactTitle(context.Background(), testScope, "  Buy groceries  ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID == "" {
		t.Fatal("expected a match")
	}

	absent, err := uc.FindByExactTitle(context.Background(), testScope, "Nothing here")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if absent.ID != "" {
		t.Errorf("expected zero value for missing title, got %+v", absent)
	}
}

func TestReplaceCategories_OwnershipChecked(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	repo := newMockRepository()
	catUC := newMockCategoryUC()
	uc := newTestUseCase(repo, catUC, now)

	created, _ := repo.CreateTask(context.Background(), createOpts("Tag me", nil, task.StatusPending))
	mine, _ := catUC.Create(context.Background(), testScope, taskCategoryInput("Errands"))

	got, err := uc.ReplaceCategories(context.Background(), testScope, created.ID, []string{mine.ID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got.CategoryIDs) != 1 || got.CategoryIDs[0] != mine.ID {
		t.Errorf("categories not replaced, got %v", got.CategoryIDs)
	}

	foreign, _ := catUC.Create(context.Background(), model.Scope{UserID: "user-2"}, taskCategoryInput("Secret"))
	_, err = uc.ReplaceCategories(context.Background(), testScope, created.ID, []string{foreign.ID})
	if !errors.Is(err, task.ErrCategoryNotOwned) {
		t.Fatalf("got %v, want ErrCategoryNotOwned", err)
	}
}
