package models

import (
	"context"
	"sync"
)

// Future resolves once with the value received on its input channel.
type Future[T any] struct {
	input    chan T
	out      chan T
	resolved bool
	value    T
	cancel   context.CancelFunc
	lock     sync.Mutex
}

func NewFuture[T any](input chan T, cancel context.CancelFunc) *Future[T] {
	f := &Future[T]{
		input:  input,
		out:    make(chan T, 1),
		cancel: cancel,
	}

	go func() {
		v := <-f.input
		f.lock.Lock()
		f.value = v
		f.resolved = true
		f.lock.Unlock()

		f.out <- v
		f.cancel()
	}()

	return f
}

// C receives the resolved value. The channel is buffered so resolution
// never blocks on an absent receiver.
func (f *Future[T]) C() <-chan T {
	return f.out
}

func (f *Future[T]) Poll() (value T, isResolved bool) {
	f.lock.Lock()
	defer f.lock.Unlock()
	if f.resolved {
		return f.value, true
	}

	var none T
	return none, false
}

// Stop cancels the work backing the future.
func (f *Future[T]) Stop() {
	f.cancel()
}
