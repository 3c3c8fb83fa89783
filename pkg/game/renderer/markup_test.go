package renderer

import (
	"fmt"
	"testing"
)

// bracket marks styled runs so tests can see where styles landed.
func bracket(text string, style TextStyle) string {
	return fmt.Sprintf("[%d:%s]", style, text)
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name  string
		msg   string
		args  []any
		style Styler
		want  string
	}{
		{"plain passthrough", "hello", nil, Plain, "hello"},
		{"sprintf", "score %d", []any{4}, Plain, "score 4"},
		{"item", "Score: ITEM{%d}", []any{7}, bracket, fmt.Sprintf("Score: [%d:7]", StyleItem)},
		{"action", "go ACTION{north}", nil, bracket,
			fmt.Sprintf("go [%d:n][%d:orth]", StyleActionShort, StyleAction)},
		{"treasure", "TREASURE{found}!", nil, bracket, fmt.Sprintf("[%d:found]!", StyleTreasure)},
		{"unknown kept", "NOPE{x}", nil, bracket, "NOPE{x}"},
		{"untranslated key", "GT{NO_SUCH_KEY}", nil, Plain, "NO_SUCH_KEY"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Format(tt.style, tt.msg, tt.args...)
			if got != tt.want {
				t.Errorf("Format(%q) = %q, want %q", tt.msg, got, tt.want)
			}
		})
	}
}

func TestFormatText_NoRenderer(t *testing.T) {
	SetRenderer(nil)
	if got := FormatText("ACTION{west} ITEM{%d}", 2); got != "west 2" {
		t.Errorf("FormatText without renderer = %q, want %q", got, "west 2")
	}
	if got := StyleText("x", StyleWall); got != "x" {
		t.Errorf("StyleText without renderer = %q, want x", got)
	}
}
