package usecase

import (
	"context"
	"errors"
	"testing"

	"taskmate/internal/task"
)

func TestCategorizeTask_CreatesAndAttaches(t *testing.T) {
	taskUC := newMockTaskUC()
	gym := taskUC.add(task.Task{Title: "Go to gym", Content: "leg day", Status: task.StatusPending, Priority: task.PriorityMedium})

	gw := parseGateway(`[{"name":"Fitness","icon":"heart","color":"#FF5733"}]`)
	catUC := newMockCategoryUC()
	uc := newTestUseCase(gw, taskUC, catUC, testNow())

	updated, err := uc.CategorizeTask(context.Background(), testScope, gym.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(updated.CategoryIDs) != 1 {
		t.Fatalf("expected 1 attached category, got %d", len(updated.CategoryIDs))
	}
	if catUC.created != 1 {
		t.Errorf("expected 1 created category, got %d", catUC.created)
	}
}

func TestCategorizeTask_Idempotent(t *testing.T) {
	taskUC := newMockTaskUC()
	gym := taskUC.add(task.Task{Title: "Go to gym", Status: task.StatusPending, Priority: task.PriorityMedium})

	gw := parseGateway(`[{"name":"Fitness","icon":"heart","color":"#FF5733"}]`)
	catUC := newMockCategoryUC()
	uc := newTestUseCase(gw, taskUC, catUC, testNow())

	first, err := uc.CategorizeTask(context.Background(), testScope, gym.ID)
	if err != nil {
		t.Fatalf("first call: %v", err)
	}
	second, err := uc.CategorizeTask(context.Background(), testScope, gym.ID)
	if err != nil {
		t.Fatalf("second call: %v", err)
	}

	if catUC.created != 1 {
		t.Errorf("second call should resolve by lookup, created = %d", catUC.created)
	}
	if len(first.CategoryIDs) != 1 || len(second.CategoryIDs) != 1 || first.CategoryIDs[0] != second.CategoryIDs[0] {
		t.Errorf("category set changed between calls: %v vs %v", first.CategoryIDs, second.CategoryIDs)
	}
}

func TestCategorizeTask_DegradesToExistingTask(t *testing.T) {
	tests := []struct {
		name     string
		response string
		gwErr    error
	}{
		{"empty response", "", nil},
		{"blank response", "   \n ", nil},
		{"not json", "no categories came to mind", nil},
		{"empty array", "[]", nil},
		{"gateway down", "", errors.New("connection refused")},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			taskUC := newMockTaskUC()
			existing := taskUC.add(task.Task{Title: "Plain task", Status: task.StatusPending, Priority: task.PriorityMedium})

			gw := &mockGateway{respond: func(string) (string, error) { return tc.response, tc.gwErr }}
			catUC := newMockCategoryUC()
			uc := newTestUseCase(gw, taskUC, catUC, testNow())

			got, err := uc.CategorizeTask(context.Background(), testScope, existing.ID)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.ID != existing.ID || len(got.CategoryIDs) != 0 {
				t.Errorf("expected unchanged task, got %+v", got)
			}
			if catUC.created != 0 {
				t.Errorf("expected no categories created, got %d", catUC.created)
			}
		})
	}
}

func TestCategorizeTask_SkipsBadSuggestions(t *testing.T) {
	taskUC := newMockTaskUC()
	existing := taskUC.add(task.Task{Title: "Mixed bag", Status: task.StatusPending, Priority: task.PriorityMedium})

	// First suggestion has an icon outside the allowed set and is dropped.
	gw := parseGateway(`[{"name":"Gym","icon":"dumbbell","color":"#FF5733"},{"name":"Health","icon":"heart","color":"#00AA00"}]`)
	catUC := newMockCategoryUC()
	uc := newTestUseCase(gw, taskUC, catUC, testNow())

	updated, err := uc.CategorizeTask(context.Background(), testScope, existing.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(updated.CategoryIDs) != 1 {
		t.Fatalf("expected 1 attached category, got %d", len(updated.CategoryIDs))
	}
	if catUC.created != 1 {
		t.Errorf("expected only the valid suggestion created, got %d", catUC.created)
	}
}

func TestCategorizeTask_MissingTaskPropagates(t *testing.T) {
	gw := parseGateway("[]")
	uc := newTestUseCase(gw, newMockTaskUC(), newMockCategoryUC(), testNow())

	_, err := uc.CategorizeTask(context.Background(), testScope, "no-such-task")
	if !errors.Is(err, task.ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
}

func TestCategorizeTask_AllSuggestionsFail(t *testing.T) {
	taskUC := newMockTaskUC()
	existing := taskUC.add(task.Task{Title: "Unlucky", Status: task.StatusPending, Priority: task.PriorityMedium})

	gw := parseGateway(`[{"name":"Broken","icon":"sword","color":"oops"}]`)
	catUC := newMockCategoryUC()
	uc := newTestUseCase(gw, taskUC, catUC, testNow())

	got, err := uc.CategorizeTask(context.Background(), testScope, existing.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got.CategoryIDs) != 0 {
		t.Errorf("expected unchanged task, got %+v", got)
	}
}
