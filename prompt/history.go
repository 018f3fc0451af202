package prompt

import (
	"bufio"
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"strings"
)

// LoadHistory seeds the prompt history from the given file. A missing file
// is not an error; a fresh shell simply starts with empty history. The path
// may begin with "~/".
func (p *Prompt) LoadHistory(path string) error {
	path, err := expand(path)
	if err != nil {
		return fmt.Errorf("prompt: history path: %w", err)
	}
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}

		return fmt.Errorf("prompt: load history: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			p.history = append(p.history, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("prompt: load history: %w", err)
	}
	p.scan = len(p.history)
	p.start = len(p.history)

	return nil
}

// SaveHistory appends the lines entered this session to the given file,
// skipping lines found in filter (quit commands and the like). Lines loaded
// by LoadHistory are never re-written.
func (p *Prompt) SaveHistory(path string, filter []string) error {
	path, err := expand(path)
	if err != nil {
		return fmt.Errorf("prompt: history path: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("prompt: save history: %w", err)
	}
	defer f.Close()

	for _, line := range p.history[p.start:] {
		if contains(filter, line) {
			continue
		}
		if _, err := fmt.Fprintln(f, line); err != nil {
			return fmt.Errorf("prompt: save history: %w", err)
		}
	}

	return nil
}

// expand resolves a leading "~/" against the user's home directory and
// absolutizes the result.
func expand(path string) (string, error) {
	if strings.HasPrefix(path, "~/") {
		usr, err := user.Current()
		if err != nil {
			return "", err
		}
		path = filepath.Join(usr.HomeDir, path[2:])
	}

	return filepath.Abs(path)
}

// contains reports whether list holds exactly s.
func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}

	return false
}
