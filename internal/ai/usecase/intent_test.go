package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"taskmate/internal/ai"
	"taskmate/internal/model"
	"taskmate/internal/task"
)

var testScope = model.Scope{UserID: "user-1", Username: "alice", Role: "USER"}

func testNow() time.Time {
	return time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
}

func TestDetermineUserIntent(t *testing.T) {
	tests := []struct {
		name     string
		response string
		err      error
		want     ai.UserIntent
	}{
		{"exact label", "CREATE_TASK", nil, ai.IntentCreateTask},
		{"lowercase with whitespace", "  create_task \n", nil, ai.IntentCreateTask},
		{"summarize", "SUMMARIZE_TASK", nil, ai.IntentSummarizeTask},
		{"categorize", "categorize_task", nil, ai.IntentCategorizeTask},
		{"explicit unknown", "UNKNOWN", nil, ai.IntentUnknown},
		{"chatty answer", "The intent is CREATE_TASK", nil, ai.IntentUnknown},
		{"empty", "", nil, ai.IntentUnknown},
		{"gateway failure", "", errors.New("boom"), ai.IntentUnknown},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			gw := &mockGateway{respond: func(string) (string, error) { return tc.response, tc.err }}
			uc := newTestUseCase(gw, newMockTaskUC(), newMockCategoryUC(), testNow())

			if got := uc.DetermineUserIntent(context.Background(), "whatever"); got != tc.want {
				t.Errorf("got %s, want %s", got, tc.want)
			}
		})
	}
}

func TestHandleUserInput_CreateFlow(t *testing.T) {
	gw := &mockGateway{respond: intentThen("CREATE_TASK", func(prompt string) (string, error) {
		return "```json\n" + `{"title":"Buy milk","content":"","dueDate":"2026-03-11T17:00:00Z","status":"PENDING","priority":"MEDIUM","isFavorite":false,"categoryIds":[]}` + "\n```", nil
	})}
	taskUC := newMockTaskUC()
	uc := newTestUseCase(gw, taskUC, newMockCategoryUC(), testNow())

	result, err := uc.HandleUserInput(context.Background(), testScope, "Buy milk tomorrow at 5pm", nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	created, ok := result.(task.Task)
	if !ok {
		t.Fatalf("expected a task.Task, got %T", result)
	}
	if created.Title != "Buy milk" {
		t.Errorf("title = %q, want %q", created.Title, "Buy milk")
	}
	if created.DueDate == nil {
		t.Error("expected a due date")
	}
}

func TestHandleUserInput_SummarizeByIDs(t *testing.T) {
	taskUC := newMockTaskUC()
	t1 := taskUC.add(task.Task{Title: "Write report", Status: task.StatusPending, Priority: task.PriorityHigh})
	t2 := taskUC.add(task.Task{Title: "Call dentist", Status: task.StatusDone, Priority: task.PriorityLow})

	var summaryPrompt string
	gw := &mockGateway{respond: intentThen("SUMMARIZE_TASK", func(prompt string) (string, error) {
		summaryPrompt = prompt
		return "Two tasks, one pending.", nil
	})}
	uc := newTestUseCase(gw, taskUC, newMockCategoryUC(), testNow())

	result, err := uc.HandleUserInput(context.Background(), testScope, "summarize my tasks", []string{t1.ID, t2.ID}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result != "Two tasks, one pending." {
		t.Errorf("result = %v", result)
	}
	if !strings.Contains(summaryPrompt, "Write report") || !strings.Contains(summaryPrompt, "Call dentist") {
		t.Error("summary prompt missing the selected tasks' snapshot")
	}
}

func TestHandleUserInput_CategorizeByTitle(t *testing.T) {
	taskUC := newMockTaskUC()
	gym := taskUC.add(task.Task{Title: "Go to gym", Status: task.StatusPending, Priority: task.PriorityMedium})

	gw := &mockGateway{respond: intentThen("CATEGORIZE_TASK", func(prompt string) (string, error) {
		return `[{"name":"Fitness","icon":"heart","color":"#FF5733"}]`, nil
	})}
	catUC := newMockCategoryUC()
	uc := newTestUseCase(gw, taskUC, catUC, testNow())

	result, err := uc.HandleUserInput(context.Background(), testScope, "Go to gym", nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	updated, ok := result.(task.Task)
	if !ok {
		t.Fatalf("expected a task.Task, got %T", result)
	}
	if updated.ID != gym.ID || len(updated.CategoryIDs) != 1 {
		t.Errorf("expected one attached category on %s, got %+v", gym.ID, updated)
	}
	if catUC.created != 1 {
		t.Errorf("expected 1 created category, got %d", catUC.created)
	}
}

func TestHandleUserInput_CategorizeUnknownTitle(t *testing.T) {
	gw := &mockGateway{respond: intentThen("CATEGORIZE_TASK", func(string) (string, error) {
		return "[]", nil
	})}
	uc := newTestUseCase(gw, newMockTaskUC(), newMockCategoryUC(), testNow())

	_, err := uc.HandleUserInput(context.Background(), testScope, "No such task", nil, nil)
	if !errors.Is(err, task.ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
}

func TestHandleUserInput_Unknown(t *testing.T) {
	gw := &mockGateway{respond: func(string) (string, error) { return "UNKNOWN", nil }}
	uc := newTestUseCase(gw, newMockTaskUC(), newMockCategoryUC(), testNow())

	result, err := uc.HandleUserInput(context.Background(), testScope, "what's the weather", nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result != ai.FallbackUnknownIntent {
		t.Errorf("result = %v, want fallback message", result)
	}
}
