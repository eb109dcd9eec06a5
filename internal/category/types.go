package category

// Category groups tasks for one user.
type Category struct {
	ID     string
	UserID string
	Name   string
	Icon   string
	Color  string
}

// AllowedIcons is the closed set of icons a category may use.
var AllowedIcons = map[string]struct{}{
	"briefcase":     {},
	"user":          {},
	"shopping-cart": {},
	"heart":         {},
	"home":          {},
	"car":           {},
	"book":          {},
	"music":         {},
	"camera":        {},
	"phone":         {},
}

// --- UseCase Inputs ---

type CreateCategoryInput struct {
	Name  string
	Icon  string
	Color string
}

type UpdateCategoryInput struct {
	ID    string
	Name  string
	Icon  string
	Color string
}
