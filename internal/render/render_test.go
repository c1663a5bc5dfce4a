package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"
)

func TestPadToWidth(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		width    int
		expected string
	}{
		{
			name:     "no padding when width is 0",
			input:    "Hello",
			width:    0,
			expected: "Hello",
		},
		{
			name:     "no padding when width is negative",
			input:    "Hello",
			width:    -1,
			expected: "Hello",
		},
		{
			name:     "pad short text with spaces",
			input:    "Hi",
			width:    10,
			expected: "Hi        ",
		},
		{
			name:     "exact width unchanged",
			input:    "Hello",
			width:    5,
			expected: "Hello",
		},
		{
			name:     "truncate long text with ellipsis",
			input:    "This is a very long string that needs truncation",
			width:    20,
			expected: "This is a very lo...",
		},
		{
			name:     "handle emoji correctly",
			input:    "🎵 Music",
			width:    15,
			expected: "🎵 Music       ", // emoji is 2 columns wide
		},
		{
			name:     "truncate emoji text",
			input:    "🎵 This is a very long song title",
			width:    15,
			expected: "🎵 This is a...",
		},
		{
			name:     "handle unicode characters",
			input:    "日本語",
			width:    10,
			expected: "日本語    ",
		},
		{
			name:     "truncate unicode text",
			input:    "日本語とても長いテキスト",
			width:    10,
			expected: "日本語... ", // 6 + 3, one space of padding
		},
		{
			name:     "empty string padding",
			input:    "",
			width:    5,
			expected: "     ",
		},
		{
			name:     "minimum width for truncation",
			input:    "Hello",
			width:    3,
			expected: "...",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := PadToWidth(tt.input, tt.width)
			if result != tt.expected {
				t.Errorf("PadToWidth(%q, %d) = %q, expected %q",
					tt.input, tt.width, result, tt.expected)
			}

			if tt.width > 0 {
				resultWidth := runewidth.StringWidth(result)
				if resultWidth != tt.width {
					t.Errorf("PadToWidth(%q, %d) produced width %d, expected %d",
						tt.input, tt.width, resultWidth, tt.width)
				}
			}
		})
	}
}

func TestTableRender(t *testing.T) {
	table := &Table{
		Headers:    []string{"#", "ARTIST", "PLAYS"},
		RightAlign: map[int]bool{0: true, 2: true},
	}
	table.AddRow("1", "Radiohead", "812")
	table.AddRow("10", "坂本龍一", "5")

	var buf bytes.Buffer
	if err := table.Render(&buf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := " #  ARTIST     PLAYS\n" +
		" 1  Radiohead    812\n" +
		"10  坂本龍一       5\n"
	if buf.String() != expected {
		t.Errorf("unexpected table output:\n%s\nexpected:\n%s", buf.String(), expected)
	}
}

func TestTableRender_TruncatesToWidth(t *testing.T) {
	table := &Table{
		Headers: []string{"TRACK", "ARTIST"},
		Width:   30,
	}
	table.AddRow("Everything In Its Right Place", "Radiohead")
	table.AddRow("Idioteque", "Radiohead")

	var buf bytes.Buffer
	if err := table.Render(&buf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, line := range strings.Split(strings.TrimRight(buf.String(), "\n"), "\n") {
		if w := runewidth.StringWidth(line); w > 30 {
			t.Errorf("line %q is %d columns wide, expected at most 30", line, w)
		}
	}
	if !strings.Contains(buf.String(), "...") {
		t.Error("expected the long title to be truncated")
	}
}

func TestTableRender_Empty(t *testing.T) {
	var buf bytes.Buffer
	if err := (&Table{}).Render(&buf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("expected no output, got %q", buf.String())
	}
}

func TestFormatCount(t *testing.T) {
	tests := map[int64]string{
		0:         "-",
		7:         "7",
		999:       "999",
		1000:      "1,000",
		7012345:   "7,012,345",
		-1234:     "-1,234",
		812345678: "812,345,678",
	}

	for in, expected := range tests {
		if got := FormatCount(in); got != expected {
			t.Errorf("FormatCount(%d) = %q, expected %q", in, got, expected)
		}
	}
}
