package ui

import (
	"os"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func TestFormatterWithColor(t *testing.T) {
	os.Unsetenv("NO_COLOR")
	color.NoColor = false

	result := Letter.Sprint("H")
	if strings.Contains(result, "'") {
		t.Errorf("Letter.Sprint should not contain quotes when color is enabled, got: %s", result)
	}
	if !strings.Contains(result, "\x1b[") {
		t.Errorf("Letter.Sprint should contain ANSI escape codes when color is enabled, got: %s", result)
	}
}

func TestFormatterWithNoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	tests := []struct {
		name      string
		formatter Formatter
		input     string
		want      string
	}{
		{"Letter adds quotes", Letter, "H", "'H'"},
		{"Number has no decoration", Number, "28", "28"},
		{"Trace has no decoration", Trace, "(7^7) mod 77 = 28", "(7^7) mod 77 = 28"},
		{"Key has no decoration", Key, "(n=77, e=7)", "(n=77, e=7)"},
		{"Party has no decoration", Party, "Alice", "Alice"},
		{"Code adds backticks", Code, "rsatrace session start", "`rsatrace session start`"},
		{"Success has no decoration", Success, "✓", "✓"},
		{"Error has no decoration", Error, "✗", "✗"},
		{"Warning has no decoration", Warning, "⚠", "⚠"},
		{"Info has no decoration", Info, "→", "→"},
		{"Muted adds parentheses", Muted, "note", "(note)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.formatter.Sprint(tt.input); got != tt.want {
				t.Errorf("%s.Sprint(%q) = %q, want %q", tt.name, tt.input, got, tt.want)
			}
		})
	}
}

func TestFormatterSprintf(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	if got := Key.Sprintf("(n=%d, e=%d)", 77, 7); got != "(n=77, e=7)" {
		t.Errorf("Key.Sprintf() = %q, want %q", got, "(n=77, e=7)")
	}
	if got := Letter.Sprintf("%c", 'Z'); got != "'Z'" {
		t.Errorf("Letter.Sprintf() = %q, want %q", got, "'Z'")
	}
}

func TestNoColorFunction(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	if !noColor() {
		t.Error("noColor() should return true when NO_COLOR is set")
	}
	os.Unsetenv("NO_COLOR")

	originalNoColor := color.NoColor
	color.NoColor = true
	if !noColor() {
		t.Error("noColor() should return true when color.NoColor is true")
	}
	color.NoColor = originalNoColor
}

func TestEnsureNewline(t *testing.T) {
	tests := map[string]string{
		"":       "\n",
		"done":   "done\n",
		"done\n": "done\n",
	}
	for in, want := range tests {
		if got := EnsureNewline(in); got != want {
			t.Errorf("EnsureNewline(%q) = %q, want %q", in, got, want)
		}
	}
}
