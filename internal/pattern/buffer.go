package pattern

import "sync"

// defaultBufferCapacity bounds the recent-action buffer.
const defaultBufferCapacity = 20

// ActionBuffer is a bounded ring buffer of the most recently observed
// actions, oldest evicted first on overflow.
type ActionBuffer struct {
	mu       sync.Mutex
	actions  []string
	capacity int
}

// NewActionBuffer creates a buffer holding at most capacity actions.
// A non-positive capacity falls back to the default of 20.
func NewActionBuffer(capacity int) *ActionBuffer {
	if capacity <= 0 {
		capacity = defaultBufferCapacity
	}
	return &ActionBuffer{capacity: capacity}
}

// Push appends an action, evicting the oldest entry when full.
func (b *ActionBuffer) Push(action string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.actions = append(b.actions, action)
	if len(b.actions) > b.capacity {
		b.actions = b.actions[1:]
	}
}

// Recent returns the buffered actions, oldest first.
func (b *ActionBuffer) Recent() []string {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]string, len(b.actions))
	copy(out, b.actions)
	return out
}

// Len returns the number of buffered actions.
func (b *ActionBuffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.actions)
}
