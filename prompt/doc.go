// Package prompt implements the interactive line reader behind sparsecalc:
// raw-terminal input via the controlling TTY with arrow-key history
// navigation, Tab completion over file paths, and a history file that
// persists across sessions.
//
// Without a TTY (piped input, scripted sessions, tests) the prompt degrades
// to plain buffered line reading, so the same shell code serves both modes.
package prompt
