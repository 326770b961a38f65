package router

// Entry is one resolved route instance on the back stack.
type Entry struct {
	ID      string // Unique per navigation; a popped-to entry keeps its ID
	Pattern string // Pattern of the matched route
	Path    string // Concrete path, e.g. "SecondScreen/hi"
	Params  Params // Resolved slot values
	Resume  any    // Frontend state saved while the entry was covered (focus, scroll, ...)
}

// clone copies the entry so callers cannot mutate the stack through Params.
func (e Entry) clone() Entry {
	e.Params = e.Params.Clone()
	return e
}

// Stack is the ordered navigation history. The last entry is the visible screen.
type Stack struct {
	entries []Entry
}

// NewStack creates a new empty navigation stack.
func NewStack() *Stack {
	return &Stack{
		entries: make([]Entry, 0),
	}
}

// Push adds a new entry on top of the stack.
func (s *Stack) Push(entry Entry) {
	s.entries = append(s.entries, entry)
}

// Pop removes and returns the top entry from the stack.
// Returns nil if the stack is empty.
func (s *Stack) Pop() *Entry {
	if len(s.entries) == 0 {
		return nil
	}
	entry := s.entries[len(s.entries)-1]
	s.entries = s.entries[:len(s.entries)-1]
	return &entry
}

// Peek returns the top entry without removing it.
// Returns nil if the stack is empty.
func (s *Stack) Peek() *Entry {
	if len(s.entries) == 0 {
		return nil
	}
	return &s.entries[len(s.entries)-1]
}

// LastIndexOf returns the index of the entry nearest the top whose pattern
// matches, or -1.
func (s *Stack) LastIndexOf(pattern string) int {
	for i := len(s.entries) - 1; i >= 0; i-- {
		if s.entries[i].Pattern == pattern {
			return i
		}
	}
	return -1
}

// Truncate keeps the first n entries and discards the rest.
func (s *Stack) Truncate(n int) {
	if n < 0 {
		n = 0
	}
	if n >= len(s.entries) {
		return
	}
	clear(s.entries[n:])
	s.entries = s.entries[:n]
}

// Entries returns copies of the entries, bottom first.
func (s *Stack) Entries() []Entry {
	out := make([]Entry, len(s.entries))
	for i, e := range s.entries {
		out[i] = e.clone()
	}
	return out
}

// IsEmpty returns true if the stack has no entries.
func (s *Stack) IsEmpty() bool {
	return len(s.entries) == 0
}

// Len returns the number of entries in the stack.
func (s *Stack) Len() int {
	return len(s.entries)
}

// Clear removes all entries from the stack.
func (s *Stack) Clear() {
	clear(s.entries)
	s.entries = s.entries[:0]
}
