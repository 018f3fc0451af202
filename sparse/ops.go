package sparse

import "fmt"

// Add returns m + other as a new matrix; neither operand is modified.
// The result stores the union of both coordinate sets, with overlapping
// cells summed. Sums that come out to 0 stay stored as explicit zeros.
// Returns ErrDimensionMismatch unless both shapes are identical.
// Complexity: O(NNZ(m) + NNZ(other)).
func (m *Matrix) Add(other *Matrix) (*Matrix, error) {
	if err := sameShape(m, other); err != nil {
		return nil, fmt.Errorf("Add: %w", err)
	}

	out := m.Clone()
	for c, v := range other.cells {
		out.cells[c] += v
	}

	return out, nil
}

// Sub returns m - other as a new matrix; neither operand is modified.
// Cells present only in m carry through unchanged, cells present only in
// other are stored negated, overlaps subtract. The result covers the union
// of both coordinate sets, so m.Sub(m) yields a matrix of stored zeros.
// Returns ErrDimensionMismatch unless both shapes are identical.
// Complexity: O(NNZ(m) + NNZ(other)).
func (m *Matrix) Sub(other *Matrix) (*Matrix, error) {
	if err := sameShape(m, other); err != nil {
		return nil, fmt.Errorf("Sub: %w", err)
	}

	out := m.Clone()
	for c, v := range other.cells {
		out.cells[c] -= v
	}

	return out, nil
}

// Mul returns the matrix product m × other as a new Rows(m)×Cols(other)
// matrix; neither operand is modified.
// Only stored cells participate: other's entries are bucketed by row once,
// then every stored cell (r, k) of m joins bucket k. Accumulation over the
// buckets is order-independent, so the result is deterministic. Cells
// touched by at least one partial product stay stored even when they cancel
// to 0.
// Returns ErrMulDimensionMismatch unless Cols(m) == Rows(other).
// Complexity: O(NNZ(other)) bucketing + one multiply per matching pair.
func (m *Matrix) Mul(other *Matrix) (*Matrix, error) {
	if m.cols != other.rows {
		return nil, fmt.Errorf("Mul: %dx%d by %dx%d: %w",
			m.rows, m.cols, other.rows, other.cols, ErrMulDimensionMismatch)
	}

	// Bucket other's cells by row so each cell of m only meets candidates
	// sharing its column index.
	byRow := make(map[int][]Entry, other.rows)
	for c, v := range other.cells {
		byRow[c.Row] = append(byRow[c.Row], Entry{Row: c.Row, Col: c.Col, Val: v})
	}

	out := &Matrix{rows: m.rows, cols: other.cols, cells: make(map[Coord]int64)}
	for c, v := range m.cells {
		for _, e := range byRow[c.Col] {
			out.cells[Coord{Row: c.Row, Col: e.Col}] += v * e.Val
		}
	}

	return out, nil
}

// Combine applies op to the pair (a, b) and returns the fresh result.
// It is a thin dispatcher over Add, Sub and Mul for callers that carry the
// operation as a value, such as interactive menus.
// Returns ErrUnknownOp for any other op.
func Combine(op Op, a, b *Matrix) (*Matrix, error) {
	switch op {
	case OpAdd:
		return a.Add(b)
	case OpSub:
		return a.Sub(b)
	case OpMul:
		return a.Mul(b)
	default:
		return nil, fmt.Errorf("Combine(%v): %w", op, ErrUnknownOp)
	}
}

// sameShape reports ErrDimensionMismatch when a and b differ in declared size.
func sameShape(a, b *Matrix) error {
	if a.rows != b.rows || a.cols != b.cols {
		return fmt.Errorf("%dx%d vs %dx%d: %w", a.rows, a.cols, b.rows, b.cols, ErrDimensionMismatch)
	}

	return nil
}
