package display

import "sync"

// TableLog keeps the most recent table log lines
type TableLog struct {
	mu    sync.Mutex
	lines []string
	limit int
}

// NewTableLog returns a log retaining at most limit lines
func NewTableLog(limit int) *TableLog {
	return &TableLog{limit: max(limit, 1)}
}

// Add appends a line, dropping the oldest beyond the limit
func (l *TableLog) Add(line string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = append(l.lines, line)
	if over := len(l.lines) - l.limit; over > 0 {
		l.lines = append(l.lines[:0], l.lines[over:]...)
	}
}

// Tail returns up to the last n lines, oldest first
func (l *TableLog) Tail(n int) []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	start := max(len(l.lines)-n, 0)
	return append([]string(nil), l.lines[start:]...)
}

// Clear removes every line
func (l *TableLog) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = l.lines[:0]
}
