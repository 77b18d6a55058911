package analysis

// stack is a growable LIFO used by the converters and the tree builder.
// Each conversion builds its own instance; nothing is shared across calls.
type stack[T any] struct {
	items []T
}

func (s *stack[T]) push(v T) {
	s.items = append(s.items, v)
}

func (s *stack[T]) pop() T {
	v := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]
	return v
}

func (s *stack[T]) peek() T {
	return s.items[len(s.items)-1]
}

func (s *stack[T]) len() int {
	return len(s.items)
}

func (s *stack[T]) empty() bool {
	return len(s.items) == 0
}
