// Package sparse stores integer matrices as coordinate→value maps, keeping
// memory proportional to the number of cells actually written.
//
// 🚀 What is sparse?
//
//	A dictionary-of-keys matrix for data where almost everything is zero:
//	  • Point access: At / Set, with dimensions growing to fit any write
//	  • Arithmetic: Add, Sub, Mul, plus the Combine dispatcher
//	  • A line-oriented text format: Decode/Encode and Load/Save
//	  • Seeded random fixtures via Random for tests and benchmarks
//
// ✨ Semantics worth knowing:
//
//   - Absent cells read as 0; At never fails, even out of range.
//   - A stored zero is a real cell: it counts toward NNZ and survives
//     encode/decode round trips.
//   - Writing outside the declared dimensions grows them to cover the
//     write (row+1 / col+1), both through Set and through file entries.
//   - All arithmetic returns fresh matrices; operands are never mutated.
//   - Entries and Encode emit cells in row-major order, so equal content
//     means equal text.
//
// ⚙️ Usage:
//
//	a, _ := sparse.Load("first.txt")
//	b, _ := sparse.Load("second.txt")
//	sum, err := a.Add(b)
//	if err != nil {
//	  // ErrDimensionMismatch and friends are sentinels; match with errors.Is
//	}
//	_ = sparse.Save("addition_output.txt", sum)
//
// The file format is two dimension headers followed by one triple per cell:
//
//	rows=3
//	cols=3
//	(0, 0, 5)
//	(1, 2, -3)
//
// Performance:
//
//   - At / Set: O(1)
//   - Add / Sub: O(NNZ(a) + NNZ(b))
//   - Mul: proportional to matching stored pairs, never rows·cols·inner
package sparse
