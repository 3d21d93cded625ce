// Package worker provides a worker pool for converting game transcripts
// in parallel.
package worker

import (
	"sync"
	"sync/atomic"

	"github.com/tmorten/descnote-go/internal/transcript"
)

// Item is one game queued for conversion.
type Item struct {
	Game  *transcript.Game
	Index int // position in the input, for ordered output
}

// Result is the outcome of converting one game.
type Result struct {
	Index int
	Text  string // fully rendered game, empty on error
	Err   error
}

// ConvertFunc converts a single item.
type ConvertFunc func(item Item) Result

// Pool fans items out over a fixed set of goroutines. Results arrive on
// the Results channel in completion order; callers reorder by Index when
// the output must follow the input.
type Pool struct {
	numWorkers int
	bufferSize int
	workChan   chan Item
	resultChan chan Result
	convert    ConvertFunc
	wg         sync.WaitGroup
	stopFlag   int32
}

// Option configures a Pool.
type Option func(*Pool)

// WithWorkers sets the number of worker goroutines.
func WithWorkers(n int) Option {
	return func(p *Pool) {
		if n >= 1 {
			p.numWorkers = n
		}
	}
}

// WithBufferSize sets the channel buffer size.
func WithBufferSize(size int) Option {
	return func(p *Pool) {
		if size >= 1 {
			p.bufferSize = size
		}
	}
}

// NewPool creates a pool. convert is required; the defaults are one
// worker and a buffer of 10 items.
func NewPool(convert ConvertFunc, opts ...Option) *Pool {
	p := &Pool{
		numWorkers: 1,
		bufferSize: 10,
		convert:    convert,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.workChan = make(chan Item, p.bufferSize)
	p.resultChan = make(chan Result, p.bufferSize)
	return p
}

// Start launches the worker goroutines.
func (p *Pool) Start() {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

// worker converts items from the work channel until it is closed.
func (p *Pool) worker() {
	defer p.wg.Done()

	for item := range p.workChan {
		if p.IsStopped() {
			continue // drain without converting
		}
		p.resultChan <- p.convert(item)
	}
}

// Submit queues an item for conversion, blocking while the buffer is
// full.
func (p *Pool) Submit(item Item) {
	p.workChan <- item
}

// TrySubmit queues an item without blocking. It reports false when the
// buffer is full or the pool is stopped.
func (p *Pool) TrySubmit(item Item) bool {
	if p.IsStopped() {
		return false
	}
	select {
	case p.workChan <- item:
		return true
	default:
		return false
	}
}

// Stop makes workers drain remaining items without converting them.
func (p *Pool) Stop() {
	atomic.StoreInt32(&p.stopFlag, 1)
}

// IsStopped reports whether Stop has been called.
func (p *Pool) IsStopped() bool {
	return atomic.LoadInt32(&p.stopFlag) != 0
}

// Close closes the work channel, waits for the workers to finish and then
// closes the result channel.
func (p *Pool) Close() {
	close(p.workChan)
	p.wg.Wait()
	close(p.resultChan)
}

// Results returns the channel conversion results arrive on.
func (p *Pool) Results() <-chan Result {
	return p.resultChan
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}
