package models

import "strings"

// ProjectTags is an ordered set of distinct, non-empty project names.
// Operations are non-mutating and return the resulting list.
type ProjectTags []string

// Add appends the trimmed tag unless it is empty or already present.
// The second return value reports whether the list changed.
func (t ProjectTags) Add(tag string) (ProjectTags, bool) {
	trimmed := strings.TrimSpace(tag)
	if trimmed == "" || t.Contains(trimmed) {
		return t, false
	}
	out := make(ProjectTags, 0, len(t)+1)
	out = append(out, t...)
	return append(out, trimmed), true
}

// RemoveAt drops the element at position i, preserving the order of the
// rest. Out-of-range positions leave the list unchanged.
func (t ProjectTags) RemoveAt(i int) ProjectTags {
	if i < 0 || i >= len(t) {
		return t
	}
	out := make(ProjectTags, 0, len(t)-1)
	out = append(out, t[:i]...)
	return append(out, t[i+1:]...)
}

// Contains reports whether tag is already in the list.
func (t ProjectTags) Contains(tag string) bool {
	for _, s := range t {
		if s == tag {
			return true
		}
	}
	return false
}
