package sparse_test

import (
	"testing"

	"github.com/Emmanuel-kwizera/DSA--HW02-Sparse-Matrix/sparse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNew_RejectsNegativeDimensions verifies that New reports ErrInvalidIndex
// for negative row or column counts.
func TestNew_RejectsNegativeDimensions(t *testing.T) {
	_, err := sparse.New(-1, 3)
	assert.ErrorIs(t, err, sparse.ErrInvalidIndex, "negative rows must error")

	_, err = sparse.New(3, -1)
	assert.ErrorIs(t, err, sparse.ErrInvalidIndex, "negative cols must error")
}

// TestNew_EmptyShapeAllowed verifies that a 0×0 matrix is a valid empty value.
func TestNew_EmptyShapeAllowed(t *testing.T) {
	m, err := sparse.New(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, m.Rows())
	assert.Equal(t, 0, m.Cols())
	assert.Equal(t, 0, m.NNZ(), "fresh matrix stores no cells")
}

// TestSet_StoresWithinDeclaredShape verifies a plain in-range write.
func TestSet_StoresWithinDeclaredShape(t *testing.T) {
	m, err := sparse.New(3, 3)
	require.NoError(t, err)

	require.NoError(t, m.Set(1, 2, -3))
	assert.Equal(t, int64(-3), m.At(1, 2))
	assert.Equal(t, 3, m.Rows(), "in-range write must not grow rows")
	assert.Equal(t, 3, m.Cols(), "in-range write must not grow cols")
	assert.Equal(t, 1, m.NNZ())
}

// TestSet_GrowsDeclaredDimensions verifies that writing outside the declared
// shape extends it to row+1 / col+1.
func TestSet_GrowsDeclaredDimensions(t *testing.T) {
	m, err := sparse.New(3, 3)
	require.NoError(t, err)

	require.NoError(t, m.Set(10, 10, 5))
	assert.Equal(t, 11, m.Rows(), "rows must grow to row+1")
	assert.Equal(t, 11, m.Cols(), "cols must grow to col+1")
	assert.Equal(t, int64(5), m.At(10, 10))

	// Growth is per-axis: a long row only widens the matrix.
	require.NoError(t, m.Set(0, 20, 1))
	assert.Equal(t, 11, m.Rows(), "row axis must stay")
	assert.Equal(t, 21, m.Cols(), "col axis must grow to col+1")
}

// TestSet_RejectsNegativeCoordinates verifies the ErrInvalidIndex policy and
// that a failed write leaves the matrix untouched.
func TestSet_RejectsNegativeCoordinates(t *testing.T) {
	m, err := sparse.New(2, 2)
	require.NoError(t, err)

	assert.ErrorIs(t, m.Set(-1, 0, 7), sparse.ErrInvalidIndex)
	assert.ErrorIs(t, m.Set(0, -1, 7), sparse.ErrInvalidIndex)
	assert.Equal(t, 0, m.NNZ(), "rejected writes must not store cells")
	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 2, m.Cols())
}

// TestSet_LastWriteWins verifies that rewriting a coordinate replaces the
// stored value instead of accumulating.
func TestSet_LastWriteWins(t *testing.T) {
	m, err := sparse.New(2, 2)
	require.NoError(t, err)

	require.NoError(t, m.Set(1, 1, 4))
	require.NoError(t, m.Set(1, 1, -9))
	assert.Equal(t, int64(-9), m.At(1, 1))
	assert.Equal(t, 1, m.NNZ(), "rewrites must not add cells")
}

// TestSet_ExplicitZeroIsStored verifies that zero is a storable value, not a
// deletion.
func TestSet_ExplicitZeroIsStored(t *testing.T) {
	m, err := sparse.New(2, 2)
	require.NoError(t, err)

	require.NoError(t, m.Set(0, 1, 0))
	assert.Equal(t, 1, m.NNZ(), "explicit zero must count toward NNZ")
	assert.Equal(t, int64(0), m.At(0, 1))
	assert.Equal(t, []sparse.Entry{{Row: 0, Col: 1, Val: 0}}, m.Entries())
}

// TestAt_AbsentCoordinatesReadZero verifies the total-function contract of
// At: absent, out-of-range and negative coordinates all read as 0.
func TestAt_AbsentCoordinatesReadZero(t *testing.T) {
	m, err := sparse.New(3, 3)
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 0, 5))

	assert.Equal(t, int64(0), m.At(1, 1), "absent in-range cell")
	assert.Equal(t, int64(0), m.At(100, 100), "beyond declared shape")
	assert.Equal(t, int64(0), m.At(-1, -1), "negative coordinates")
}

// TestClone_IsIndependent verifies that Clone copies cells deeply.
func TestClone_IsIndependent(t *testing.T) {
	m, err := sparse.New(2, 2)
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 0, 1))

	c := m.Clone()
	require.NoError(t, c.Set(0, 0, 99))
	require.NoError(t, c.Set(5, 5, 2))

	assert.Equal(t, int64(1), m.At(0, 0), "clone writes must not leak back")
	assert.Equal(t, 2, m.Rows(), "clone growth must not leak back")
	assert.Equal(t, int64(99), c.At(0, 0))
	assert.Equal(t, 6, c.Rows())
}

// TestEntries_RowMajorOrder verifies deterministic ordering regardless of
// insertion order.
func TestEntries_RowMajorOrder(t *testing.T) {
	m, err := sparse.New(3, 3)
	require.NoError(t, err)
	require.NoError(t, m.Set(2, 0, 3))
	require.NoError(t, m.Set(0, 2, 1))
	require.NoError(t, m.Set(0, 1, 7))
	require.NoError(t, m.Set(1, 1, -2))

	want := []sparse.Entry{
		{Row: 0, Col: 1, Val: 7},
		{Row: 0, Col: 2, Val: 1},
		{Row: 1, Col: 1, Val: -2},
		{Row: 2, Col: 0, Val: 3},
	}
	assert.Equal(t, want, m.Entries(), "entries must sort row asc, then col asc")
}

// TestOpString covers the operation names used for output file naming.
func TestOpString(t *testing.T) {
	assert.Equal(t, "addition", sparse.OpAdd.String())
	assert.Equal(t, "subtraction", sparse.OpSub.String())
	assert.Equal(t, "multiplication", sparse.OpMul.String())
	assert.Equal(t, "Op(42)", sparse.Op(42).String())
}
