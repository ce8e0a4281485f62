// Package demo holds the example test groups registered by cmd/harness and
// the small types they exercise.
package demo

import "fmt"

// EmptyError is returned when taking from an empty Stack.
type EmptyError struct {
	Op string
}

func (e *EmptyError) Error() string {
	return fmt.Sprintf("%s: stack is empty", e.Op)
}

// Stack is a LIFO stack.
type Stack[T any] struct {
	items []T
}

// Push adds v on top.
func (s *Stack[T]) Push(v T) {
	s.items = append(s.items, v)
}

// Pop removes and returns the top item.
func (s *Stack[T]) Pop() (T, error) {
	var zero T
	if len(s.items) == 0 {
		return zero, &EmptyError{Op: "pop"}
	}
	v := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]
	return v, nil
}

// MustPop is Pop for callers that know the stack is not empty.
func (s *Stack[T]) MustPop() T {
	v, err := s.Pop()
	if err != nil {
		panic(err)
	}
	return v
}

// Peek returns the top item without removing it.
func (s *Stack[T]) Peek() (T, bool) {
	var zero T
	if len(s.items) == 0 {
		return zero, false
	}
	return s.items[len(s.items)-1], true
}

// Len returns the number of items.
func (s *Stack[T]) Len() int {
	return len(s.items)
}

// Mean returns the arithmetic mean of values.
func Mean(values ...float64) (float64, error) {
	if len(values) == 0 {
		return 0, fmt.Errorf("mean of no values")
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values)), nil
}
