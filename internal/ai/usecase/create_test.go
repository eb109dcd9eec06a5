package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"taskmate/internal/ai"
	"taskmate/internal/task"
)

func parseGateway(response string) *mockGateway {
	return &mockGateway{respond: func(string) (string, error) { return response, nil }}
}

func TestParseAndCreateTask_ValidDraft(t *testing.T) {
	gw := parseGateway(`{"title":"Buy milk","content":"2 liters","dueDate":"2026-03-11T17:00:00Z","status":"PENDING","priority":"HIGH","isFavorite":true,"categoryIds":[]}`)
	taskUC := newMockTaskUC()
	uc := newTestUseCase(gw, taskUC, newMockCategoryUC(), testNow())

	created, err := uc.ParseAndCreateTask(context.Background(), testScope, "buy milk tomorrow at 5pm, important")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.Title != "Buy milk" || created.Content != "2 liters" {
		t.Errorf("unexpected draft fields: %+v", created)
	}
	if created.Priority != task.PriorityHigh || !created.IsFavorite {
		t.Errorf("priority/favorite not carried: %+v", created)
	}
	if created.DueDate == nil {
		t.Error("expected due date to survive repair")
	}
}

func TestParseAndCreateTask_RepairRules(t *testing.T) {
	longTitle := strings.Repeat("t", 80)
	longContent := strings.Repeat("c", 1200)

	gw := parseGateway(`{"title":"` + longTitle + `","content":"` + longContent + `","dueDate":null}`)
	taskUC := newMockTaskUC()
	uc := newTestUseCase(gw, taskUC, newMockCategoryUC(), testNow())

	created, err := uc.ParseAndCreateTask(context.Background(), testScope, "do the thing")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(created.Title) != ai.MaxDraftTitleLength {
		t.Errorf("title length = %d, want %d", len(created.Title), ai.MaxDraftTitleLength)
	}
	if len(created.Content) != ai.MaxDraftContentLength {
		t.Errorf("content length = %d, want %d", len(created.Content), ai.MaxDraftContentLength)
	}
	if created.Status != task.StatusPending {
		t.Errorf("status = %s, want default PENDING", created.Status)
	}
	if created.Priority != task.PriorityMedium {
		t.Errorf("priority = %s, want default MEDIUM", created.Priority)
	}
}

func TestParseAndCreateTask_TruncatesOnRuneBoundary(t *testing.T) {
	longTitle := strings.Repeat("ü", 80)
	longContent := strings.Repeat("日", 1200)

	gw := parseGateway(`{"title":"` + longTitle + `","content":"` + longContent + `","dueDate":null}`)
	uc := newTestUseCase(gw, newMockTaskUC(), newMockCategoryUC(), testNow())

	created, err := uc.ParseAndCreateTask(context.Background(), testScope, "non-ascii draft")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !utf8.ValidString(created.Title) || !utf8.ValidString(created.Content) {
		t.Fatal("truncation produced invalid UTF-8")
	}
	if n := utf8.RuneCountInString(created.Title); n != ai.MaxDraftTitleLength {
		t.Errorf("title runes = %d, want %d", n, ai.MaxDraftTitleLength)
	}
	if n := utf8.RuneCountInString(created.Content); n != ai.MaxDraftContentLength {
		t.Errorf("content runes = %d, want %d", n, ai.MaxDraftContentLength)
	}
}

func TestParseAndCreateTask_PastDueDateNulled(t *testing.T) {
	gw := parseGateway(`{"title":"Old plans","dueDate":"2026-03-09T08:00:00Z"}`)
	uc := newTestUseCase(gw, newMockTaskUC(), newMockCategoryUC(), testNow())

	created, err := uc.ParseAndCreateTask(context.Background(), testScope, "remind me about old plans")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.DueDate != nil {
		t.Errorf("expected past due date to be nulled, got %v", created.DueDate)
	}
}

func TestParseAndCreateTask_FencedResponse(t *testing.T) {
	gw := parseGateway("```json\n{\"title\":\"Fenced\"}\n```")
	uc := newTestUseCase(gw, newMockTaskUC(), newMockCategoryUC(), testNow())

	created, err := uc.ParseAndCreateTask(context.Background(), testScope, "fenced")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.Title != "Fenced" {
		t.Errorf("title = %q", created.Title)
	}
}

func TestParseAndCreateTask_Failures(t *testing.T) {
	tests := []struct {
		name     string
		response string
		gwErr    error
		wantErr  error
	}{
		{"not json", "I could not parse that.", nil, ai.ErrParse},
		{"blank title", `{"title":"   "}`, nil, ai.ErrInvalidTitle},
		{"missing title", `{"content":"no title"}`, nil, ai.ErrInvalidTitle},
		{"unknown status", `{"title":"x","status":"SOMEDAY"}`, nil, ai.ErrParse},
		{"unknown priority", `{"title":"x","priority":"URGENT"}`, nil, ai.ErrParse},
		{"garbled due date", `{"title":"x","dueDate":"next tuesday"}`, nil, ai.ErrParse},
		{"gateway down", "", errors.New("connection refused"), ai.ErrUnavailable},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			gw := &mockGateway{respond: func(string) (string, error) { return tc.response, tc.gwErr }}
			uc := newTestUseCase(gw, newMockTaskUC(), newMockCategoryUC(), testNow())

			_, err := uc.ParseAndCreateTask(context.Background(), testScope, "anything")
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("got %v, want %v", err, tc.wantErr)
			}
		})
	}
}

func TestParseAndCreateTask_DomainCreateFails(t *testing.T) {
	gw := parseGateway(`{"title":"ok"}`)
	taskUC := newMockTaskUC()
	taskUC.createErr = errors.New("db down")
	uc := newTestUseCase(gw, taskUC, newMockCategoryUC(), testNow())

	_, err := uc.ParseAndCreateTask(context.Background(), testScope, "anything")
	if !errors.Is(err, ai.ErrUnavailable) {
		t.Fatalf("got %v, want ErrUnavailable", err)
	}
}
