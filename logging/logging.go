// Package logging wires the stdlib logger (and Bubble Tea's own) to an
// optional debug file so a TUI session can be traced after the fact.
package logging

import (
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
)

// Setup configures logging. With an empty filename everything below
// Fatal/panic is discarded, which keeps log calls cheap to leave in.
// With a filename, both the stdlib logger and Bubble Tea log there.
func Setup(filename string) (cleanup func(), err error) {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	if filename == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}

	f, err := os.OpenFile(filename, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, err
	}
	log.SetOutput(f)

	tf, err := tea.LogToFile(filename, "debug")
	if err != nil {
		f.Close()
		return nil, err
	}

	cleanup = func() {
		tf.Close()
		f.Close()
	}
	return cleanup, nil
}

// Leveled helpers keep a shared debug file greppable.

func Debugf(format string, args ...any) { log.Printf("DEBUG: "+format, args...) }
func Infof(format string, args ...any)  { log.Printf("INFO: "+format, args...) }
func Warnf(format string, args ...any)  { log.Printf("WARN: "+format, args...) }
