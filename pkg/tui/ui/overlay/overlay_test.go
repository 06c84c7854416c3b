package overlay

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss/v2"
)

func TestComposeCentered(t *testing.T) {
	bg := "aaaa\naaaa\naaaa"
	got := Compose(bg, 4, 3, "XX", Placement{})
	want := "aaaa\naXXa\naaaa"
	if got != want {
		t.Fatalf("Compose = %q, want %q", got, want)
	}
}

func TestComposeBottomRight(t *testing.T) {
	bg := strings.Repeat("....\n", 2) + "...."
	got := Compose(bg, 4, 3, "X", Placement{
		Horizontal: lipgloss.Right,
		Vertical:   lipgloss.Bottom,
	})
	lines := strings.Split(got, "\n")
	if lines[2] != "...X" {
		t.Fatalf("bottom line = %q, want ...X", lines[2])
	}
}

func TestComposeClampsOversizedPane(t *testing.T) {
	got := Compose("ab\nab", 2, 2, "XXXXXX\nYYYYYY\nZZZZZZ", Placement{})
	lines := strings.Split(got, "\n")
	if len(lines) != 2 {
		t.Fatalf("frame grew to %d lines", len(lines))
	}
	for _, line := range lines {
		if lipgloss.Width(line) != 2 {
			t.Fatalf("line %q wider than frame", line)
		}
	}
}

func TestComposeEmptyForegroundKeepsBackground(t *testing.T) {
	bg := "hello"
	got := Compose(bg, 5, 1, "", Placement{})
	if got != "hello" {
		t.Fatalf("Compose = %q, want background untouched", got)
	}
}

func TestComposePadsShortBackground(t *testing.T) {
	got := Compose("hi", 4, 2, "", Placement{})
	lines := strings.Split(got, "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if lines[0] != "hi  " || lines[1] != "    " {
		t.Fatalf("lines = %q, want padded frame", lines)
	}
}
