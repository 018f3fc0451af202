// Package sparsematrix is a compact toolkit for integer matrices that are
// mostly zero: a dictionary-of-keys storage core, a line-oriented file
// format, and an interactive calculator shell on top.
//
// 🚀 What is in the box?
//
//	Three pieces that compose from library to terminal:
//	  • sparse/     — the matrix itself: At/Set with dimension growth,
//	    Add/Sub/Mul arithmetic, Encode/Decode of the text format and
//	    Load/Save against files, plus a seeded Random fixture generator
//	  • prompt/     — a raw-terminal line reader with history and Tab
//	    path completion (degrades to buffered reading without a TTY)
//	  • cmd/sparsecalc — the menu-driven calculator: pick an operation,
//	    name two matrix files, get "<operation>_output.txt" back
//
// ✨ Why sparse storage?
//
//   - Memory tracks the cells you set, not rows×cols
//   - Absent cells read as 0 without errors or allocations
//   - Arithmetic walks stored cells only; a million-cell identity costs
//     as much as its diagonal
//
// The matrix file format is two dimension headers followed by one triple
// per stored cell:
//
//	rows=3
//	cols=3
//	(0, 0, 5)
//	(1, 2, -3)
//
// Quick start:
//
//	a, _ := sparse.Load("first.txt")
//	b, _ := sparse.Load("second.txt")
//	sum, err := a.Add(b)
//	if err != nil { ... }
//	_ = sparse.Save("addition_output.txt", sum)
//
// See examples/ for runnable demos and sparse/doc.go for the full
// storage and format semantics.
package sparsematrix
