// Package insight turns a reflection into a short summary and theme list
// by calling Gemini. A failed call is never surfaced as an error: callers
// always get a usable Result.
package insight

import "context"

// Result is the generated insight attached to an entry.
type Result struct {
	Summary string   `json:"summary"`
	Themes  []string `json:"themes"`
}

// Generator produces an insight for one reflection. Implementations must
// absorb every internal failure and fall back to a fixed Result.
type Generator interface {
	Generate(ctx context.Context, reflection, emotion string) Result
}

var fallbackThemes = []string{"Reflection", "Mindfulness", "Self-awareness"}

// FallbackNoKey is returned when no API key is configured.
func FallbackNoKey() Result {
	return Result{
		Summary: "Your reflection has been saved. Add your Google Gemini API key to generate personalized insights.",
		Themes:  append([]string(nil), fallbackThemes...),
	}
}

// FallbackError is returned when the call or the response decode fails.
func FallbackError() Result {
	return Result{
		Summary: "Your reflection has been saved. There was an issue generating insights, but your entry is stored safely.",
		Themes:  append([]string(nil), fallbackThemes...),
	}
}
