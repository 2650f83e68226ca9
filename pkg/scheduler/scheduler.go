// Package scheduler runs queued work on a fixed pool of workers and hands
// results back through futures. The bootstrap pipeline uses it to keep
// investigation and provisioning runs off the request path.
package scheduler

import (
	"context"

	"github.com/commissaire-project/bootstrap-agent/internal/models"
)

type workRequest struct {
	fn  models.Work[any]
	c   chan models.Result[any]
	ctx context.Context
}

type worker struct {
	done chan any
	quit <-chan struct{}
}

func (w worker) Work(r workRequest) {
	v, err := r.fn(r.ctx)
	r.c <- models.Result[any]{Data: v, Err: err}

	// The dispatcher is gone once quit closes; do not block on done.
	select {
	case w.done <- struct{}{}:
	case <-w.quit:
	}
}

func newWorker(done chan any, quit <-chan struct{}) worker {
	return worker{done: done, quit: quit}
}

type Scheduler struct {
	workers    *models.Queue[worker]
	workQueue  *models.Queue[workRequest]
	close      chan any
	done       chan any
	quit       chan struct{}
	work       chan workRequest
	mainCtx    context.Context
	mainCancel context.CancelFunc
}

func NewScheduler(nbWorkers int) *Scheduler {
	done := make(chan any)
	quit := make(chan struct{})
	wq := &models.Queue[worker]{}
	for range nbWorkers {
		wq.Push(newWorker(done, quit))
	}

	ctx, cancel := context.WithCancel(context.Background())
	s := &Scheduler{
		workers:    wq,
		workQueue:  &models.Queue[workRequest]{},
		close:      make(chan any),
		done:       done,
		quit:       quit,
		work:       make(chan workRequest),
		mainCtx:    ctx,
		mainCancel: cancel,
	}
	go s.run()
	return s
}

// AddWork queues the work and returns a future resolving with its result.
// Stopping the future cancels the work's context.
func (s *Scheduler) AddWork(w models.Work[any]) *models.Future[models.Result[any]] {
	c := make(chan models.Result[any])
	ctx, cancel := context.WithCancel(s.mainCtx)
	s.work <- workRequest{w, c, ctx}
	return models.NewFuture(c, cancel)
}

func (s *Scheduler) Close() {
	s.mainCancel()
	close(s.quit)
	s.close <- struct{}{}
}

func (s *Scheduler) run() {
	for {
		select {
		case w := <-s.work:
			s.workQueue.Push(w)
			if s.workers.Len() == 0 {
				continue
			}
			s.dispatch(s.workQueue.Pop())
		case <-s.done:
			s.workers.Push(newWorker(s.done, s.quit))

			if s.workQueue.Len() == 0 {
				continue
			}
			s.dispatch(s.workQueue.Pop())
		case <-s.close:
			return
		}
	}
}

func (s *Scheduler) dispatch(r workRequest) {
	worker := s.workers.Pop()
	go worker.Work(r)
}
