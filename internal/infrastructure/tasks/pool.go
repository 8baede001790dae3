package tasks

import (
	"os"
	"strconv"
	"sync"
)

const (
	defaultWorkers   = 4
	defaultQueueSize = 64
)

// Pool is a bounded worker pool for background saga work (agent dispatch).
// Quote creation submits here and returns to its caller immediately; a full
// queue applies backpressure instead of spawning unmanaged goroutines.

type Pool struct {
	tasks chan func()
	wg    sync.WaitGroup

	closeOnce sync.Once
}

// NewPool starts workers goroutines consuming a queue of queueSize tasks.
// Non-positive arguments fall back to the defaults.
func NewPool(workers, queueSize int) *Pool {
	if workers <= 0 {
		workers = defaultWorkers
	}
	if queueSize <= 0 {
		queueSize = defaultQueueSize
	}

	p := &Pool{tasks: make(chan func(), queueSize)}
	p.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go p.worker()
	}
	return p
}

// NewPoolFromEnv sizes the pool from QUOTE_DISPATCH_WORKERS.
func NewPoolFromEnv() *Pool {
	workers := defaultWorkers
	if v := os.Getenv("QUOTE_DISPATCH_WORKERS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			workers = n
		}
	}
	return NewPool(workers, defaultQueueSize)
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for task := range p.tasks {
		task()
	}
}

// Submit enqueues a task, blocking while the queue is full.
func (p *Pool) Submit(task func()) {
	p.tasks <- task
}

// Stop closes the queue and waits for in-flight tasks to finish.
func (p *Pool) Stop() {
	p.closeOnce.Do(func() { close(p.tasks) })
	p.wg.Wait()
}
