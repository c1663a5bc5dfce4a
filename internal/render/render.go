// Package render lays out Last.fm results for the terminal.
//
// All widths are display columns, so CJK and emoji names line up.
package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
)

// DefaultWidth is used when the terminal width is unknown.
const DefaultWidth = 80

const (
	ellipsis  = "..."
	columnGap = "  "
	minColumn = 4
)

// PadToWidth pads or truncates text to a fixed display width.
// Width is measured in display columns, accounting for Unicode characters.
// If width <= 0, returns text unchanged.
// If text is longer than width, truncates with "..." suffix.
// If text is shorter than width, pads with spaces.
func PadToWidth(text string, width int) string {
	if width <= 0 {
		return text
	}

	currentWidth := runewidth.StringWidth(text)

	if currentWidth > width {
		ellipsisWidth := runewidth.StringWidth(ellipsis)

		if width <= ellipsisWidth {
			return runewidth.Truncate(ellipsis, width, "")
		}

		result := runewidth.Truncate(text, width-ellipsisWidth, "") + ellipsis

		// Wide runes can leave the result one column short
		resultWidth := runewidth.StringWidth(result)
		if resultWidth < width {
			return result + strings.Repeat(" ", width-resultWidth)
		} else if resultWidth > width {
			return runewidth.Truncate(result, width, "")
		}
		return result
	} else if currentWidth < width {
		return text + strings.Repeat(" ", width-currentWidth)
	}

	return text
}

// Table is a simple column layout. Columns are sized to their widest
// cell; when the table is wider than Width the widest columns are
// truncated first.
type Table struct {
	Headers []string
	Rows    [][]string
	// Width is the maximum line width. 0 disables truncation.
	Width int
	// RightAlign marks numeric columns by index.
	RightAlign map[int]bool
}

// AddRow appends a row.
func (t *Table) AddRow(cells ...string) {
	t.Rows = append(t.Rows, cells)
}

// columns returns the number of columns in the widest row.
func (t *Table) columns() int {
	n := len(t.Headers)
	for _, row := range t.Rows {
		if len(row) > n {
			n = len(row)
		}
	}
	return n
}

// widths computes the display width of every column.
func (t *Table) widths() []int {
	widths := make([]int, t.columns())
	measure := func(row []string) {
		for i, cell := range row {
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}
	measure(t.Headers)
	for _, row := range t.Rows {
		measure(row)
	}

	if t.Width <= 0 || len(widths) == 0 {
		return widths
	}

	total := func() int {
		sum := runewidth.StringWidth(columnGap) * (len(widths) - 1)
		for _, w := range widths {
			sum += w
		}
		return sum
	}

	for total() > t.Width {
		widest := 0
		for i, w := range widths {
			if w > widths[widest] {
				widest = i
			}
		}
		if widths[widest] <= minColumn {
			break
		}
		widths[widest]--
	}

	return widths
}

// Render writes the table to w.
func (t *Table) Render(w io.Writer) error {
	widths := t.widths()
	if len(widths) == 0 {
		return nil
	}

	writeRow := func(row []string) error {
		cells := make([]string, len(widths))
		for i, width := range widths {
			var cell string
			if i < len(row) {
				cell = row[i]
			}
			if t.RightAlign[i] && runewidth.StringWidth(cell) < width {
				cells[i] = strings.Repeat(" ", width-runewidth.StringWidth(cell)) + cell
			} else {
				cells[i] = PadToWidth(cell, width)
			}
		}
		line := strings.TrimRight(strings.Join(cells, columnGap), " ")
		_, err := fmt.Fprintln(w, line)
		return err
	}

	if len(t.Headers) > 0 {
		if err := writeRow(t.Headers); err != nil {
			return err
		}
	}
	for _, row := range t.Rows {
		if err := writeRow(row); err != nil {
			return err
		}
	}
	return nil
}

// FormatCount formats n with thousands separators. Zero renders as "-".
func FormatCount(n int64) string {
	if n == 0 {
		return "-"
	}

	s := strconv.FormatInt(n, 10)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}

	if neg {
		return "-" + b.String()
	}
	return b.String()
}

// Wrap wraps text to width display columns.
func Wrap(text string, width int) string {
	if width <= 0 {
		return text
	}
	return runewidth.Wrap(text, width)
}
