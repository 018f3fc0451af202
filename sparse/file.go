package sparse

import (
	"fmt"
	"os"
	"strings"
)

// Load reads and decodes the matrix file at path. Backslash separators are
// normalized to forward slashes first, so Windows-style paths resolve on any
// platform. Read failures wrap the underlying *os.PathError; decode failures
// wrap the codec sentinels together with the path.
func Load(path string) (*Matrix, error) {
	data, err := os.ReadFile(strings.ReplaceAll(path, `\`, "/"))
	if err != nil {
		return nil, fmt.Errorf("sparse: %w", err)
	}
	m, err := Decode(string(data))
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}

	return m, nil
}

// Save encodes m and writes it to path with mode 0o644, replacing any
// existing file. Loading the written file restores the dimensions and the
// exact stored-cell set, explicit zeros included.
func Save(path string, m *Matrix) error {
	if err := os.WriteFile(path, []byte(Encode(m)), 0o644); err != nil {
		return fmt.Errorf("sparse: %w", err)
	}

	return nil
}
