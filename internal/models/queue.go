package models

import "context"

// Work is a cancellable unit of work producing a value of type T.
type Work[T any] func(ctx context.Context) (T, error)

// Queue is a minimal LIFO used by the scheduler for idle workers and
// pending work.
type Queue[T any] []T

func (wq *Queue[T]) Len() int { return len(*wq) }

func (wq *Queue[T]) Pop() T {
	old := *wq
	n := len(old)
	x := old[n-1]
	*wq = old[0 : n-1]
	return x
}

func (wq *Queue[T]) Push(t T) {
	*wq = append(*wq, t)
}

// Result pairs a work value with the error that produced it.
type Result[T any] struct {
	Data T
	Err  error
}
