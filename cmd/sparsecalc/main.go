// Command sparsecalc is an interactive calculator over sparse matrix files.
//
// Each round asks for an operation and two matrix file paths, then writes
// the result to "<operation>_output.txt" in the working directory. Paths
// passed on the command line feed the first round without prompting:
//
//	sparsecalc first.txt second.txt
//
// The prompt keeps history in ~/.sparsecalc_history and completes file
// paths on Tab. Errors are reported and the menu comes back; "q" quits.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Emmanuel-kwizera/DSA--HW02-Sparse-Matrix/prompt"
	"github.com/Emmanuel-kwizera/DSA--HW02-Sparse-Matrix/sparse"
	"gonum.org/v1/gonum/mat"
)

const (
	version     = "1.0.0"
	historyFile = "~/.sparsecalc_history"
	// previewLimit bounds the dense result preview; larger results print a
	// one-line summary instead.
	previewLimit = 8
)

// menuOps maps menu digits to operations.
var menuOps = map[string]sparse.Op{
	"1": sparse.OpAdd,
	"2": sparse.OpSub,
	"3": sparse.OpMul,
}

func main() {
	fmt.Printf("Sparse Matrix Calculator\nVersion %s\n", version)

	p := prompt.New()
	if err := p.LoadHistory(historyFile); err != nil {
		fmt.Printf("Warning: %v\n", err)
	}

	// Paths given on the command line feed the first round without prompting.
	preload := os.Args[1:]

	fmt.Printf("Interactive mode. Select an operation or %q to quit.\n", "q")
	for {
		if !round(p, preload) {
			break
		}
		preload = nil
	}

	if err := p.SaveHistory(historyFile, []string{"q", "quit", "exit"}); err != nil {
		fmt.Printf("Warning: %v\n", err)
	}
}

// round runs one menu cycle. It reports false when the shell should exit.
func round(p *prompt.Prompt, preload []string) bool {
	fmt.Println()
	fmt.Println("Available MATRIX Operations:")
	fmt.Println("(1) Addition")
	fmt.Println("(2) Subtraction")
	fmt.Println("(3) Multiplication")

	choice, err := p.ReadLine("Select operation (1,2,3): ")
	if err != nil {
		return readFailed(err)
	}
	switch choice {
	case "q", "quit", "exit":
		return false
	}
	op, ok := menuOps[choice]
	if !ok {
		fmt.Println("Error: invalid selection.")

		return true
	}

	first, second, err := matrixPaths(p, preload)
	if err != nil {
		return readFailed(err)
	}

	// Operation failures are reported and the menu comes back.
	if err := run(op, first, second); err != nil {
		fmt.Printf("Error: %v\n", err)
	}

	return true
}

// matrixPaths returns the two operand paths, prompting for any not supplied
// on the command line.
func matrixPaths(p *prompt.Prompt, preload []string) (string, string, error) {
	if len(preload) >= 2 {
		fmt.Printf("Using matrix files %s and %s\n", preload[0], preload[1])

		return preload[0], preload[1], nil
	}

	first, err := p.ReadLine("Enter path for the first matrix file: ")
	if err != nil {
		return "", "", err
	}
	second, err := p.ReadLine("Enter path for the second matrix file: ")
	if err != nil {
		return "", "", err
	}

	return first, second, nil
}

// run loads both operands, applies op and saves the result to
// "<operation>_output.txt" in the working directory.
func run(op sparse.Op, firstPath, secondPath string) error {
	fmt.Printf("Loading first matrix from %s...\n", firstPath)
	a, err := sparse.Load(firstPath)
	if err != nil {
		return err
	}
	fmt.Printf("Loaded matrix size %dx%d\n", a.Rows(), a.Cols())

	fmt.Printf("Loading second matrix from %s...\n", secondPath)
	b, err := sparse.Load(secondPath)
	if err != nil {
		return err
	}
	fmt.Printf("Loaded matrix size %dx%d\n", b.Rows(), b.Cols())

	fmt.Printf("Performing %s...\n", op)
	result, err := sparse.Combine(op, a, b)
	if err != nil {
		return err
	}

	outFile := fmt.Sprintf("%s_output.txt", op)
	if err := sparse.Save(outFile, result); err != nil {
		return err
	}
	fmt.Printf("%s completed successfully. Output saved to %s.\n", title(op.String()), outFile)
	preview(result)

	return nil
}

// preview renders small results as a dense grid; big ones get a summary line.
func preview(m *sparse.Matrix) {
	if m.Rows() == 0 || m.Cols() == 0 {
		return
	}
	if m.Rows() > previewLimit || m.Cols() > previewLimit {
		fmt.Printf("Result: %dx%d with %d stored entries.\n", m.Rows(), m.Cols(), m.NNZ())

		return
	}

	d := mat.NewDense(m.Rows(), m.Cols(), nil)
	for _, e := range m.Entries() {
		d.Set(e.Row, e.Col, float64(e.Val))
	}
	fmt.Printf("%v\n", mat.Formatted(d, mat.Prefix(""), mat.Squeeze()))
}

// readFailed reports prompt errors; EOF means the input script simply ended.
func readFailed(err error) bool {
	if !errors.Is(err, io.EOF) {
		fmt.Printf("Error: %v\n", err)
	}

	return false
}

// title upper-cases the first letter of s, for the completion message.
func title(s string) string {
	if s == "" {
		return s
	}

	return strings.ToUpper(s[:1]) + s[1:]
}
