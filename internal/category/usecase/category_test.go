package usecase

import (
	"context"
	"testing"

	"taskmate/internal/category"
	"taskmate/internal/model"
)

var testScope = model.Scope{UserID: "user-1", Username: "alice", Role: "USER"}

func TestCreate_Validation(t *testing.T) {
	uc := New(newMockRepository(), &mockLogger{})
	ctx := context.Background()

	tests := []struct {
		name    string
		input   category.CreateCategoryInput
		wantErr error
	}{
		{
			name:    "empty name",
			input:   category.CreateCategoryInput{Name: "", Icon: "heart", Color: "#FF5733"},
			wantErr: category.ErrInvalidName,
		},
		{
			name:    "name too long",
			input:   category.CreateCategoryInput{Name: "this category name is way too long to fit", Icon: "heart", Color: "#FF5733"},
			wantErr: category.ErrInvalidName,
		},
		{
			name:    "unknown icon",
			input:   category.CreateCategoryInput{Name: "Fitness", Icon: "dumbbell", Color: "#FF5733"},
			wantErr: category.ErrInvalidIcon,
		},
		{
			name:    "bad color",
			input:   category.CreateCategoryInput{Name: "Fitness", Icon: "heart", Color: "red"},
			wantErr: category.ErrInvalidColor,
		},
		{
			name:  "short hex color accepted",
			input: category.CreateCategoryInput{Name: "Fitness", Icon: "heart", Color: "#F53"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Create(ctx, testScope, tt.input)
			if err != tt.wantErr {
				t.Errorf("Create() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestCreate_DuplicateName(t *testing.T) {
	uc := New(newMockRepository(), &mockLogger{})
	ctx := context.Background()

	input := category.CreateCategoryInput{Name: "Work", Icon: "briefcase", Color: "#0000FF"}
	if _, err := uc.Create(ctx, testScope, input); err != nil {
		t.Fatalf("first Create: %v", err)
	}

	if _, err := uc.Create(ctx, testScope, input); err != category.ErrDuplicateName {
		t.Errorf("second Create error = %v, want ErrDuplicateName", err)
	}

	// Same name for a different user is fine.
	otherScope := model.Scope{UserID: "user-2"}
	if _, err := uc.Create(ctx, otherScope, input); err != nil {
		t.Errorf("Create for other user: %v", err)
	}
}

func TestList_CacheInvalidation(t *testing.T) {
	uc := New(newMockRepository(), &mockLogger{})
	ctx := context.Background()

	first, err := uc.List(ctx, testScope)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(first) != 0 {
		t.Fatalf("expected empty list, got %d", len(first))
	}

	if _, err := uc.Create(ctx, testScope, category.CreateCategoryInput{Name: "Home", Icon: "home", Color: "#00FF00"}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	second, err := uc.List(ctx, testScope)
	if err != nil {
		t.Fatalf("List after create: %v", err)
	}
	if len(second) != 1 {
		t.Errorf("expected cache to be invalidated after create, got %d categories", len(second))
	}
}

func TestFindByExactName_Absent(t *testing.T) {
	uc := New(newMockRepository(), &mockLogger{})

	found, err := uc.FindByExactName(context.Background(), testScope, "Nope")
	if err != nil {
		t.Fatalf("FindByExactName: %v", err)
	}
	if found.ID != "" {
		t.Errorf("expected zero-value category, got %+v", found)
	}
}

func TestGetByIDs_Ownership(t *testing.T) {
	repo := newMockRepository()
	uc := New(repo, &mockLogger{})
	ctx := context.Background()

	mine, _ := uc.Create(ctx, testScope, category.CreateCategoryInput{Name: "Mine", Icon: "user", Color: "#123456"})
	theirs, _ := uc.Create(ctx, model.Scope{UserID: "user-2"}, category.CreateCategoryInput{Name: "Theirs", Icon: "car", Color: "#654321"})

	if _, err := uc.GetByIDs(ctx, testScope, []string{mine.ID}); err != nil {
		t.Errorf("GetByIDs own category: %v", err)
	}

	if _, err := uc.GetByIDs(ctx, testScope, []string{mine.ID, theirs.ID}); err != category.ErrNotOwned {
		t.Errorf("GetByIDs foreign category error = %v, want ErrNotOwned", err)
	}
}
