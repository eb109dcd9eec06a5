package ai

// UserIntent is the classified goal behind a free-text user message.
type UserIntent string

const (
	IntentCreateTask     UserIntent = "CREATE_TASK"
	IntentSummarizeTask  UserIntent = "SUMMARIZE_TASK"
	IntentCategorizeTask UserIntent = "CATEGORIZE_TASK"
	IntentUnknown        UserIntent = "UNKNOWN"
)

// ParseIntent maps a model label to the closed intent set. Anything outside
// the set is UNKNOWN.
func ParseIntent(label string) UserIntent {
	switch UserIntent(label) {
	case IntentCreateTask, IntentSummarizeTask, IntentCategorizeTask:
		return UserIntent(label)
	default:
		return IntentUnknown
	}
}

// TaskDraft is the untrusted structure decoded from model output. It is
// repaired before it ever reaches the task domain.
type TaskDraft struct {
	Title       string   `json:"title"`
	Content     string   `json:"content"`
	DueDate     *string  `json:"dueDate"`
	Status      string   `json:"status"`
	Priority    string   `json:"priority"`
	IsFavorite  bool     `json:"isFavorite"`
	CategoryIDs []string `json:"categoryIds"`
}

// CategorySuggestion is one model-proposed category.
type CategorySuggestion struct {
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

const (
	// MaxDraftTitleLength bounds titles in repaired drafts. Tighter than the
	// task domain limit so model output stays terse.
	MaxDraftTitleLength = 50
	// MaxDraftContentLength bounds content in repaired drafts.
	MaxDraftContentLength = 1000
	// MaxTasksForSummary caps how many tasks feed a single summary prompt.
	MaxTasksForSummary = 50
)

// FallbackUnknownIntent is returned by the dispatcher when no intent matches.
const FallbackUnknownIntent = "Sorry, I couldn't understand your request."
