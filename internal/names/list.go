package names

import "strings"

// List is an insertion-ordered set of names.
//
// The zero value is ready to use. A List is not safe for concurrent
// mutation; an extraction run owns exactly one.
type List struct {
	names []string
	seen  map[string]struct{}
}

// NewList returns an empty list.
func NewList() *List {
	return &List{seen: make(map[string]struct{})}
}

// Add appends name unless it is empty, already present (exact,
// case-sensitive match) or contains ExcludedMarker. It reports whether the
// name was appended.
func (l *List) Add(name string) bool {
	if name == "" || strings.Contains(name, ExcludedMarker) {
		return false
	}
	if l.seen == nil {
		l.seen = make(map[string]struct{})
	}
	if _, dup := l.seen[name]; dup {
		return false
	}
	l.seen[name] = struct{}{}
	l.names = append(l.names, name)
	return true
}

// AddText splits text into lines, parses each one and adds the resulting
// names. It returns how many new names the block contributed; zero is a
// valid outcome for a page without list items.
func (l *List) AddText(text string) int {
	added := 0
	for _, line := range strings.Split(text, "\n") {
		name, ok := ParseLine(line)
		if !ok {
			continue
		}
		if l.Add(name) {
			added++
		}
	}
	return added
}

// Contains reports whether name is already in the list.
func (l *List) Contains(name string) bool {
	_, ok := l.seen[name]
	return ok
}

// Len returns the number of names.
func (l *List) Len() int {
	return len(l.names)
}

// Names returns a copy of the names in insertion order.
func (l *List) Names() []string {
	out := make([]string, len(l.names))
	copy(out, l.names)
	return out
}
