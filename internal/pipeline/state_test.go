package pipeline

import (
	"path/filepath"
	"testing"
	"time"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"AI-powered recipe app that suggests meals from fridge photos", "ai-powered-recipe-app-that-sug"},
		{"Simple App", "simple-app"},
		{"app/with/slashes", "app-with-slashes"},
		{"Emoji 🚀 & symbols!", "emoji---symbols"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Slugify(tt.in); got != tt.want {
			t.Errorf("Slugify(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNewState(t *testing.T) {
	now := time.Date(2025, 6, 15, 14, 30, 0, 0, time.UTC)
	st := NewState(Inputs{Idea: "Recipe App"}, "output", now)

	if st.UserID != "user-20250615-1430" {
		t.Errorf("UserID = %q", st.UserID)
	}
	want := filepath.Join("output", "recipe-app-20250615-1430")
	if st.OutputDir != want {
		t.Errorf("OutputDir = %q, want %q", st.OutputDir, want)
	}
	if !st.CreatedAt.Equal(now) {
		t.Errorf("CreatedAt = %v", st.CreatedAt)
	}

	// Output fields start empty.
	if st.IdeaValidation != "" || st.LandingPageCopy != "" || st.TechStack != "" {
		t.Error("output fields must start empty")
	}
}
