package privacy

import (
	"testing"
)

func TestCompile_Valid(t *testing.T) {
	patterns, err := Compile([]string{`(?i)token`, `\b\d{3}-\d{4}\b`})
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if len(patterns) != 2 {
		t.Errorf("got %d patterns, want 2", len(patterns))
	}
}

func TestCompile_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
	}{
		{"syntax", `[invalid`},
		{"blank", "  "},
		{"matches empty", `a*`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Compile([]string{tt.pattern}); err == nil {
				t.Fatalf("expected error for %q", tt.pattern)
			}
		})
	}
}

func TestCompile_Empty(t *testing.T) {
	patterns, err := Compile(nil)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if len(patterns) != 0 {
		t.Errorf("got %d patterns, want 0", len(patterns))
	}
}

func TestApply(t *testing.T) {
	tests := []struct {
		name     string
		patterns []string
		input    string
		want     string
	}{
		{"single", []string{`(?i)token`}, "My API Token is abc123", "My API [REDACTED] is abc123"},
		{"multiple patterns", []string{`(?i)token`, `(?i)secret`}, "Token and Secret values", "[REDACTED] and [REDACTED] values"},
		{"phone", []string{`\b\d{3}-\d{4}\b`}, "call 555-1234 now", "call [REDACTED] now"},
		{"dollar in placeholder position", []string{`\$\d+`}, "costs $40", "costs [REDACTED]"},
		{"no match", []string{`(?i)token`}, "nothing to redact here", "nothing to redact here"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			patterns, err := Compile(tt.patterns)
			if err != nil {
				t.Fatalf("compile: %v", err)
			}
			if got := Apply(tt.input, patterns); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestApply_EmptyPatterns(t *testing.T) {
	text := "should not change"
	if got := Apply(text, nil); got != text {
		t.Errorf("got %q, want unchanged", got)
	}
}
