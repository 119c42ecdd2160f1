// Package set provides an unordered collection of unique values for any
// comparable element type.
package set

// Set is backed by a map, so T must be comparable (usable as a map key).
// The zero value is an empty set ready for Add. Read-only methods also accept
// a nil *Set and treat it as empty.
type Set[T comparable] struct {
	m map[T]struct{}
}

func New[T comparable](vals ...T) *Set[T] {
	s := &Set[T]{m: make(map[T]struct{}, len(vals))}
	for _, v := range vals {
		s.Add(v)
	}
	return s
}

func (s *Set[T]) Add(v T) {
	if s.m == nil {
		s.m = make(map[T]struct{})
	}
	s.m[v] = struct{}{}
}

// Remove deletes v and reports whether it was present.
func (s *Set[T]) Remove(v T) bool {
	if !s.Contains(v) {
		return false
	}
	delete(s.m, v)
	return true
}

func (s *Set[T]) Contains(v T) bool {
	if s == nil {
		return false
	}
	_, ok := s.m[v]
	return ok
}

func (s *Set[T]) Len() int {
	if s == nil {
		return 0
	}
	return len(s.m)
}

// Union returns a new set holding the elements of s and other. Either side
// may be nil.
func (s *Set[T]) Union(other *Set[T]) *Set[T] {
	out := New(s.Slice()...)
	for _, v := range other.Slice() {
		out.Add(v)
	}
	return out
}

// Slice returns the elements in unspecified order.
func (s *Set[T]) Slice() []T {
	if s == nil {
		return nil
	}
	out := make([]T, 0, len(s.m))
	for v := range s.m {
		out = append(out, v)
	}
	return out
}
