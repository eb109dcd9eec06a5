package usecase

import "testing"

func TestSanitizeResponse(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain json", `{"title":"x"}`, `{"title":"x"}`},
		{"json fence", "```json\n{\"title\":\"x\"}\n```", `{"title":"x"}`},
		{"bare fence", "```\n[1,2]\n```", "[1,2]"},
		{"surrounding whitespace", "  \n CREATE_TASK \n ", "CREATE_TASK"},
		{"blank", "   \n\t ", ""},
		{"empty", "", ""},
		{"fence marker only", "```json```", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := sanitizeResponse(tc.in); got != tc.want {
				t.Errorf("sanitizeResponse(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}
