package model

// DefaultLogCapacity bounds retained log lines so long playlist runs do not
// grow memory without limit.
const DefaultLogCapacity = 5000

// LogBuffer is the ordered record of status text shown during a job. It is
// append-only (cleared only on explicit user action) and is owned exclusively
// by the goroutine that consumes job events; it is not safe for concurrent use.
type LogBuffer struct {
	lines    []string
	capacity int
}

// NewLogBuffer creates a log buffer keeping at most capacity lines.
// A non-positive capacity falls back to DefaultLogCapacity.
func NewLogBuffer(capacity int) *LogBuffer {
	if capacity <= 0 {
		capacity = DefaultLogCapacity
	}
	return &LogBuffer{capacity: capacity}
}

// Append adds a line at the end, evicting the oldest line when full
func (b *LogBuffer) Append(line string) {
	if len(b.lines) >= b.capacity {
		b.lines = b.lines[1:]
	}
	b.lines = append(b.lines, line)
}

// Len returns the number of retained lines
func (b *LogBuffer) Len() int {
	return len(b.lines)
}

// Line returns the line at index i; out-of-range indexes yield ""
func (b *LogBuffer) Line(i int) string {
	if i < 0 || i >= len(b.lines) {
		return ""
	}
	return b.lines[i]
}

// Lines returns a snapshot copy of all retained lines in order
func (b *LogBuffer) Lines() []string {
	out := make([]string, len(b.lines))
	copy(out, b.lines)
	return out
}

// Clear discards all retained lines
func (b *LogBuffer) Clear() {
	b.lines = nil
}
