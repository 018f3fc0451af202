package prompt

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/term"
)

// Key sequences emitted by ANSI terminals.
var (
	keyUp        = []byte{27, 91, 65}
	keyDown      = []byte{27, 91, 66}
	keyRight     = []byte{27, 91, 67}
	keyLeft      = []byte{27, 91, 68}
	keyEnter     = []byte{13}
	keyTab       = []byte{9}
	keyBackspace = []byte{127}
)

// Prompt reads lines with history recall and Tab path completion.
// It is not safe for concurrent use; a shell owns exactly one Prompt.
type Prompt struct {
	history []string
	scan    int // history cursor while browsing with arrow keys
	start   int // first history index not yet persisted by SaveHistory
	stdin   *bufio.Scanner
	tty     bool
}

// New returns a prompt wired to the controlling terminal when one exists,
// falling back to buffered stdin reading otherwise.
func New() *Prompt {
	p := &Prompt{stdin: bufio.NewScanner(os.Stdin)}
	if t, err := term.Open("/dev/tty"); err == nil {
		_ = t.Close()
		p.tty = true
	}

	return p
}

// NewReader returns a prompt that reads buffered lines from r with no raw
// terminal handling. Used for scripted sessions and tests.
func NewReader(r io.Reader) *Prompt {
	return &Prompt{stdin: bufio.NewScanner(r)}
}

// ReadLine prints ps1, reads one line and records it in history.
// Returns io.EOF once a non-interactive input source drains.
func (p *Prompt) ReadLine(ps1 string) (string, error) {
	fmt.Print(ps1)
	if !p.tty {
		if !p.stdin.Scan() {
			if err := p.stdin.Err(); err != nil {
				return "", fmt.Errorf("prompt: read: %w", err)
			}

			return "", io.EOF
		}
		line := strings.TrimSpace(p.stdin.Text())
		p.remember(line)

		return line, nil
	}

	return p.readRaw(ps1)
}

// readRaw runs the keystroke loop against the raw terminal.
func (p *Prompt) readRaw(ps1 string) (string, error) {
	var text string
	var lastTab bool
	for {
		key, err := getch()
		if err != nil {
			return "", fmt.Errorf("prompt: read key: %w", err)
		}
		switch {
		case bytes.Equal(key, keyEnter):
			fmt.Print("\n")
			p.remember(text)

			return text, nil

		case bytes.Equal(key, keyUp):
			if len(p.history) > 0 && p.scan > 0 {
				p.scan--
				text = redraw(ps1, text, p.history[p.scan])
			}

		case bytes.Equal(key, keyDown):
			if p.scan < len(p.history)-1 {
				p.scan++
				text = redraw(ps1, text, p.history[p.scan])
			}

		case bytes.Equal(key, keyTab):
			text = completePath(ps1, text, lastTab)
			lastTab = true

			continue

		case bytes.Equal(key, keyBackspace):
			if len(text) > 0 {
				text = text[:len(text)-1]
				fmt.Printf("\r%s%s \b", ps1, text)
			}

		case bytes.Equal(key, keyLeft), bytes.Equal(key, keyRight):
			// In-line cursor movement is not supported; swallow the sequence.

		default:
			fmt.Printf("%s", key)
			text += string(key)
		}
		lastTab = false
	}
}

// remember appends a non-empty line to history and parks the scan cursor
// past the end.
func (p *Prompt) remember(line string) {
	if line != "" {
		p.history = append(p.history, line)
	}
	p.scan = len(p.history)
}

// History returns a copy of the recorded lines, oldest first.
func (p *Prompt) History() []string {
	return append([]string(nil), p.history...)
}

// redraw replaces the visible line with repl, blanking any leftover tail.
func redraw(ps1, old, repl string) string {
	pad := len(old) - len(repl)
	if pad < 0 {
		pad = 0
	}
	fmt.Printf("\r%s%s%s", ps1, repl, strings.Repeat(" ", pad)+strings.Repeat("\b", pad))

	return repl
}

// completePath extends the last space-separated token of text by globbing
// the filesystem. A unique match is applied in place; pressing Tab twice
// lists the alternatives.
func completePath(ps1, text string, again bool) string {
	parts := strings.Split(text, " ")
	stem := parts[len(parts)-1]
	matches, err := filepath.Glob(stem + "*")
	if err != nil || len(matches) == 0 {
		return text
	}
	if len(matches) == 1 {
		fmt.Print(matches[0][len(stem):])

		return text + matches[0][len(stem):]
	}
	if again {
		fmt.Printf("\n%s\n%s%s", strings.Join(matches, "  "), ps1, text)
	}

	return text
}

// getch reads one key sequence from the controlling terminal in raw mode.
// Reading up to 512 bytes at once keeps pasted text in a single event.
func getch() ([]byte, error) {
	t, err := term.Open("/dev/tty")
	if err != nil {
		return nil, err
	}
	defer t.Close()
	if err := term.RawMode(t); err != nil {
		return nil, err
	}
	defer t.Restore()

	buf := make([]byte, 512)
	n, err := t.Read(buf)
	if err != nil {
		return nil, err
	}

	return buf[:n], nil
}
