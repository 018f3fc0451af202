package prompt_test

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Emmanuel-kwizera/DSA--HW02-Sparse-Matrix/prompt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// readAll drains scripted input through the prompt, collecting the lines.
func readAll(t *testing.T, p *prompt.Prompt) []string {
	t.Helper()
	var lines []string
	for {
		line, err := p.ReadLine("> ")
		if err == io.EOF {
			return lines
		}
		require.NoError(t, err)
		lines = append(lines, line)
	}
}

// TestReadLine_BufferedFallback verifies scripted input is read line by line,
// trimmed, and terminated with io.EOF.
func TestReadLine_BufferedFallback(t *testing.T) {
	p := prompt.NewReader(strings.NewReader("  first \nsecond\n"))

	lines := readAll(t, p)
	assert.Equal(t, []string{"first", "second"}, lines)

	_, err := p.ReadLine("> ")
	assert.ErrorIs(t, err, io.EOF, "drained input must keep reporting EOF")
}

// TestHistory_RecordsNonEmptyLines verifies empty lines are read but not
// remembered.
func TestHistory_RecordsNonEmptyLines(t *testing.T) {
	p := prompt.NewReader(strings.NewReader("one\n\ntwo\n"))
	readAll(t, p)

	assert.Equal(t, []string{"one", "two"}, p.History())
}

// TestHistory_SaveLoadRoundTrip verifies a session's lines persist to the
// history file and seed the next session, with quit commands filtered out.
func TestHistory_SaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history")

	p := prompt.NewReader(strings.NewReader("load a.txt\nadd\nq\n"))
	readAll(t, p)
	require.NoError(t, p.SaveHistory(path, []string{"q", "quit"}))

	next := prompt.NewReader(strings.NewReader(""))
	require.NoError(t, next.LoadHistory(path))
	assert.Equal(t, []string{"load a.txt", "add"}, next.History(),
		"quit commands must not persist")
}

// TestSaveHistory_AppendsAcrossSessions verifies repeated saves append
// rather than truncate, and that loaded lines are not duplicated.
func TestSaveHistory_AppendsAcrossSessions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history")

	first := prompt.NewReader(strings.NewReader("alpha\n"))
	readAll(t, first)
	require.NoError(t, first.SaveHistory(path, nil))

	second := prompt.NewReader(strings.NewReader("beta\n"))
	require.NoError(t, second.LoadHistory(path))
	readAll(t, second)
	require.NoError(t, second.SaveHistory(path, nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "alpha\nbeta\n", string(data))
}

// TestLoadHistory_MissingFileIsFine verifies a fresh environment needs no
// pre-existing history file.
func TestLoadHistory_MissingFileIsFine(t *testing.T) {
	p := prompt.NewReader(strings.NewReader(""))
	require.NoError(t, p.LoadHistory(filepath.Join(t.TempDir(), "absent")))
	assert.Empty(t, p.History())
}
