package sparse

import "fmt"

// Coord addresses a single cell by zero-based row and column.
// It is a comparable value type, usable directly as a map key.
type Coord struct {
	Row, Col int
}

// Entry pairs a coordinate with its stored value. Entries() returns these
// in row-major order.
type Entry struct {
	Row, Col int
	Val      int64
}

// Op selects one of the binary operations understood by Combine.
type Op int

const (
	// OpAdd is cell-wise addition of two equally shaped matrices.
	OpAdd Op = iota
	// OpSub is cell-wise subtraction of two equally shaped matrices.
	OpSub
	// OpMul is matrix multiplication (left columns must equal right rows).
	OpMul
)

// String returns the lower-case operation name, e.g. "addition".
func (op Op) String() string {
	switch op {
	case OpAdd:
		return "addition"
	case OpSub:
		return "subtraction"
	case OpMul:
		return "multiplication"
	default:
		return fmt.Sprintf("Op(%d)", int(op))
	}
}

// Matrix is a dictionary-of-keys sparse matrix over int64 values.
//
// Only cells written through Set occupy memory; every other coordinate reads
// as zero. A stored zero is a real cell: it counts toward NNZ, appears in
// Entries and survives Encode/Decode. rows and cols are the declared
// dimensions; Set grows them when a write lands outside.
//
// Matrix is not safe for concurrent mutation. Construct via New, Decode,
// Load or Random.
type Matrix struct {
	rows, cols int
	cells      map[Coord]int64
}
