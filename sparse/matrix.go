package sparse

import (
	"fmt"
	"sort"
)

// New returns an empty rows×cols matrix.
// Returns ErrInvalidIndex if either dimension is negative; zero is allowed.
// Complexity: O(1).
func New(rows, cols int) (*Matrix, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("New(%d, %d): %w", rows, cols, ErrInvalidIndex)
	}

	return &Matrix{rows: rows, cols: cols, cells: make(map[Coord]int64)}, nil
}

// Rows returns the declared number of rows.
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the declared number of columns.
func (m *Matrix) Cols() int { return m.cols }

// NNZ returns the number of explicitly stored cells, stored zeros included.
func (m *Matrix) NNZ() int { return len(m.cells) }

// At returns the value at (row, col), or 0 when no cell is stored there.
// Coordinates outside the declared dimensions, negative ones included, read
// as 0; At never fails.
// Complexity: O(1).
func (m *Matrix) At(row, col int) int64 {
	return m.cells[Coord{Row: row, Col: col}]
}

// Set stores v at (row, col), overwriting any previous value. Writing to a
// coordinate outside the declared dimensions grows them to row+1 / col+1.
// Setting v to 0 stores an explicit zero rather than deleting the cell.
// Returns ErrInvalidIndex for negative coordinates.
// Complexity: O(1).
func (m *Matrix) Set(row, col int, v int64) error {
	if row < 0 || col < 0 {
		return fmt.Errorf("Set(%d, %d): %w", row, col, ErrInvalidIndex)
	}
	if row >= m.rows {
		m.rows = row + 1
	}
	if col >= m.cols {
		m.cols = col + 1
	}
	m.cells[Coord{Row: row, Col: col}] = v

	return nil
}

// Clone returns a deep copy of m; later writes to either matrix do not
// affect the other.
// Complexity: O(NNZ).
func (m *Matrix) Clone() *Matrix {
	out := &Matrix{rows: m.rows, cols: m.cols, cells: make(map[Coord]int64, len(m.cells))}
	for c, v := range m.cells {
		out.cells[c] = v
	}

	return out
}

// Entries returns every stored cell in row-major order (row ascending, then
// column ascending). The slice is freshly allocated on each call.
// Complexity: O(NNZ·log NNZ).
func (m *Matrix) Entries() []Entry {
	out := make([]Entry, 0, len(m.cells))
	for c, v := range m.cells {
		out = append(out, Entry{Row: c.Row, Col: c.Col, Val: v})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Row != out[j].Row {
			return out[i].Row < out[j].Row
		}

		return out[i].Col < out[j].Col
	})

	return out
}
