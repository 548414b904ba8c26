package sink

import (
	"context"
	"sync"
)

// Fake is a sink that captures every entry so tests can inspect what was
// emitted. It is safe for concurrent use.
type Fake struct {
	mu      sync.RWMutex
	entries []Entry
}

// Entry is a single captured emission.
type Entry struct {
	Level Level
	Text  string
	Err   error
}

// NewFake creates a capturing sink for tests.
func NewFake() *Fake {
	return &Fake{
		entries: make([]Entry, 0),
	}
}

// Log captures a plain text entry.
func (f *Fake) Log(ctx context.Context, level Level, text string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.entries = append(f.entries, Entry{Level: level, Text: text})
}

// LogError captures an entry with an attached error.
func (f *Fake) LogError(ctx context.Context, level Level, text string, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.entries = append(f.entries, Entry{Level: level, Text: text, Err: err})
}

// Entries returns a copy of all captured entries (for test assertions).
func (f *Fake) Entries() []Entry {
	f.mu.RLock()
	defer f.mu.RUnlock()
	result := make([]Entry, len(f.entries))
	copy(result, f.entries)
	return result
}

// Reset clears all captured entries.
func (f *Fake) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.entries = f.entries[:0]
}
