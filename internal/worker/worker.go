// Package worker runs background tasks, such as low-stock alerts, off the
// request path.
package worker

import (
	"log/slog"
	"sync"
)

// Task represents a unit of work executed by the pool.
type Task func()

// Pool defines a simple worker pool.
type Pool interface {
	Submit(Task)
	Stop()
}

// queueFactor sizes the task buffer per worker.
const queueFactor = 16

// NewPool creates a pool with n workers. n<=0 defaults to 1.
// A panicking task is logged and does not take its worker down.
func NewPool(n int) Pool {
	if n <= 0 {
		n = 1
	}
	p := &pool{jobs: make(chan Task, n*queueFactor)}
	p.wg.Add(n)
	for i := 0; i < n; i++ {
		go func(id int) {
			defer p.wg.Done()
			for job := range p.jobs {
				p.run(id, job)
			}
		}(i)
	}
	return p
}

type pool struct {
	jobs    chan Task
	wg      sync.WaitGroup
	mu      sync.RWMutex
	stopped bool
}

func (p *pool) run(id int, job Task) {
	if job == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			slog.Error("worker task panicked", "worker", id, "panic", r)
		}
	}()
	job()
}

// Submit queues t. Tasks submitted after Stop are dropped.
func (p *pool) Submit(t Task) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.stopped {
		slog.Warn("worker pool stopped, task dropped")
		return
	}
	p.jobs <- t
}

// Stop waits for queued tasks to finish.
func (p *pool) Stop() {
	p.mu.Lock()
	if p.stopped {
		p.mu.Unlock()
		return
	}
	p.stopped = true
	close(p.jobs)
	p.mu.Unlock()
	p.wg.Wait()
}
