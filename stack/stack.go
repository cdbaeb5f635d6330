package stack

import "errors"

// ErrEmpty is returned by Pop and Peek when the stack holds no elements.
var ErrEmpty = errors.New("stack: empty stack")

// node is one link of the chain. below points at the previous top.
type node[T any] struct {
	value T
	below *node[T]
}

// Stack is a LIFO container over a singly-linked chain of nodes.
// Invariant: size equals the number of nodes reachable from top, and
// size == 0 iff top == nil.
type Stack[T any] struct {
	top  *node[T]
	size int
}

// New returns an empty stack.
func New[T any]() *Stack[T] {
	return &Stack[T]{}
}

// Push places v on top of the stack.
// Complexity: O(1).
func (s *Stack[T]) Push(v T) {
	s.top = &node[T]{value: v, below: s.top}
	s.size++
}

// Pop detaches and returns the top element.
// Returns ErrEmpty if the stack is empty.
// Complexity: O(1).
func (s *Stack[T]) Pop() (T, error) {
	var zero T
	if s.top == nil {
		return zero, ErrEmpty
	}
	n := s.top
	s.top = n.below
	n.below = nil // release the chain from the detached node
	s.size--

	return n.value, nil
}

// Peek returns the top element without removing it.
// Returns ErrEmpty if the stack is empty.
// Complexity: O(1).
func (s *Stack[T]) Peek() (T, error) {
	var zero T
	if s.top == nil {
		return zero, ErrEmpty
	}

	return s.top.value, nil
}

// Len reports the number of elements.
func (s *Stack[T]) Len() int { return s.size }

// IsEmpty reports whether the stack holds no elements.
func (s *Stack[T]) IsEmpty() bool { return s.size == 0 }

// Clear drops every element.
// Complexity: O(1).
func (s *Stack[T]) Clear() {
	s.top = nil
	s.size = 0
}

// Clone returns a deep copy of s: a new chain holding the same values in the
// same order. Values themselves are copied by assignment.
// Complexity: O(n) time and memory.
func (s *Stack[T]) Clone() *Stack[T] {
	clone := &Stack[T]{size: s.size}
	var tail *node[T]
	for n := s.top; n != nil; n = n.below {
		cp := &node[T]{value: n.value}
		if tail == nil {
			clone.top = cp
		} else {
			tail.below = cp
		}
		tail = cp
	}

	return clone
}

// Values returns the elements ordered from bottom to top.
// The returned slice is owned by the caller.
// Complexity: O(n).
func (s *Stack[T]) Values() []T {
	out := make([]T, s.size)
	i := s.size - 1
	for n := s.top; n != nil; n = n.below {
		out[i] = n.value
		i--
	}

	return out
}

// Equal reports whether s and other hold the same sequence under eq.
// Complexity: O(n).
func (s *Stack[T]) Equal(other *Stack[T], eq func(a, b T) bool) bool {
	if other == nil || s.size != other.size {
		return false
	}
	a, b := s.top, other.top
	for a != nil && b != nil {
		if !eq(a.value, b.value) {
			return false
		}
		a, b = a.below, b.below
	}

	return a == nil && b == nil
}
