package sparse

import (
	"fmt"
	"strconv"
	"strings"
)

// Decode parses the textual matrix format:
//
//	rows=<int>
//	cols=<int>
//	(<row>, <col>, <value>)   one line per stored cell
//
// Every line is whitespace-trimmed and blank lines are dropped before any
// structural check, so padding anywhere in the file is harmless. Dimension
// headers are read as the integer after the first '='; the key name before
// it is not inspected. Entry triples tolerate arbitrary spacing around the
// three integers but must contain exactly three comma-separated fields.
//
// Entries are applied in file order: a coordinate listed twice keeps the
// last value, and a coordinate outside the declared dimensions grows them
// exactly as Set does. Decoding stops at the first malformed line.
//
// Returns ErrHeaderMissing, ErrBadDimension, ErrBadEntry or ErrInvalidIndex,
// each wrapped with the offending line.
func Decode(text string) (*Matrix, error) {
	lines := contentLines(text)
	if len(lines) < 2 {
		return nil, fmt.Errorf("%d non-blank line(s): %w", len(lines), ErrHeaderMissing)
	}

	rows, err := parseDim(lines[0])
	if err != nil {
		return nil, err
	}
	cols, err := parseDim(lines[1])
	if err != nil {
		return nil, err
	}
	m, err := New(rows, cols)
	if err != nil {
		return nil, fmt.Errorf("header %dx%d: %w", rows, cols, err)
	}

	for _, line := range lines[2:] {
		row, col, val, err := parseEntry(line)
		if err != nil {
			return nil, err
		}
		if err := m.Set(row, col, val); err != nil {
			return nil, fmt.Errorf("entry %q: %w", line, err)
		}
	}

	return m, nil
}

// Encode renders m in the format Decode accepts: both dimension headers
// followed by one "(row, col, value)" line per stored cell in row-major
// order, without a trailing newline. Matrices with equal dimensions and
// equal stored cells encode to identical text.
func Encode(m *Matrix) string {
	var b strings.Builder
	fmt.Fprintf(&b, "rows=%d\ncols=%d", m.rows, m.cols)
	for _, e := range m.Entries() {
		fmt.Fprintf(&b, "\n(%d, %d, %d)", e.Row, e.Col, e.Val)
	}

	return b.String()
}

// String implements fmt.Stringer via Encode.
func (m *Matrix) String() string { return Encode(m) }

// contentLines splits text into trimmed, non-blank lines.
func contentLines(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		if t := strings.TrimSpace(line); t != "" {
			out = append(out, t)
		}
	}

	return out
}

// parseDim extracts the integer after the first '=' of a dimension header.
func parseDim(line string) (int, error) {
	_, after, found := strings.Cut(line, "=")
	if !found {
		return 0, fmt.Errorf("header %q: %w", line, ErrBadDimension)
	}
	n, err := strconv.Atoi(strings.TrimSpace(after))
	if err != nil {
		return 0, fmt.Errorf("header %q: %w", line, ErrBadDimension)
	}

	return n, nil
}

// parseEntry parses one "(<row>, <col>, <value>)" line.
func parseEntry(line string) (row, col int, val int64, err error) {
	if !strings.HasPrefix(line, "(") || !strings.HasSuffix(line, ")") {
		return 0, 0, 0, fmt.Errorf("entry %q: %w", line, ErrBadEntry)
	}
	fields := strings.Split(line[1:len(line)-1], ",")
	if len(fields) != 3 {
		return 0, 0, 0, fmt.Errorf("entry %q: %w", line, ErrBadEntry)
	}
	if row, err = strconv.Atoi(strings.TrimSpace(fields[0])); err != nil {
		return 0, 0, 0, fmt.Errorf("entry %q: %w", line, ErrBadEntry)
	}
	if col, err = strconv.Atoi(strings.TrimSpace(fields[1])); err != nil {
		return 0, 0, 0, fmt.Errorf("entry %q: %w", line, ErrBadEntry)
	}
	if val, err = strconv.ParseInt(strings.TrimSpace(fields[2]), 10, 64); err != nil {
		return 0, 0, 0, fmt.Errorf("entry %q: %w", line, ErrBadEntry)
	}

	return row, col, val, nil
}
