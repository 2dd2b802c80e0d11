// Package clipboard provides write-only sinks for copying a generated password.
package clipboard

import (
	"sync"

	"github.com/atotto/clipboard"
)

// Clipboard receives text on explicit user request.
type Clipboard interface {
	WriteAll(text string) error
}

// System writes to the operating system clipboard.
type System struct{}

// Available reports whether a system clipboard utility was found.
func (System) Available() bool { return !clipboard.Unsupported }

func (System) WriteAll(text string) error { return clipboard.WriteAll(text) }

// Memory is an in-process clipboard for headless use and tests.
type Memory struct {
	mu     sync.Mutex
	text   string
	writes int
}

func (m *Memory) WriteAll(text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.text = text
	m.writes++
	return nil
}

// Content returns the last written text.
func (m *Memory) Content() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.text
}

// Writes returns how many times the clipboard was written.
func (m *Memory) Writes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.writes
}
