package chat2pdf

import (
	"errors"
	"runtime"
	"sync"
)

// Pool sizing constants.
const (
	// MinPoolSize ensures at least one generator is available.
	MinPoolSize = 1

	// MaxPoolSize caps browser instances to limit memory (~200MB each).
	MaxPoolSize = 8

	// cpuDivisor leaves headroom for Chrome child processes.
	cpuDivisor = 2
)

// GeneratorPool manages a pool of Generator instances for parallel
// exports. Each generator has its own browser instance, enabling true
// parallelism. Generators are created lazily on first acquire to
// avoid startup delay.
type GeneratorPool struct {
	size       int
	opts       []Option
	generators []*Generator
	sem        chan *Generator
	mu         sync.Mutex
	created    int
	closed     bool
}

// NewGeneratorPool creates a pool with capacity for n Generator
// instances, each constructed with opts. Generators are created
// lazily when acquired, not at pool creation.
func NewGeneratorPool(n int, opts ...Option) *GeneratorPool {
	if n < 1 {
		n = 1
	}

	return &GeneratorPool{
		size:       n,
		opts:       opts,
		generators: make([]*Generator, 0, n),
		sem:        make(chan *Generator, n),
	}
}

// Acquire gets a generator from the pool, creating one if needed.
// Blocks if all generators are in use. Returns an error when a new
// generator fails to construct (bad style, missing fonts) or
// ErrPoolClosed when the pool is closed, including for callers already
// blocked waiting when Close runs.
func (p *GeneratorPool) Acquire() (*Generator, error) {
	// Try to get an existing generator (non-blocking). A receive from
	// the closed channel yields the nil zero value, so the ok flag is
	// what distinguishes "released generator" from "pool closed".
	select {
	case gen, ok := <-p.sem:
		if !ok {
			return nil, ErrPoolClosed
		}
		return gen, nil
	default:
	}

	// Check if we can create a new generator
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil, ErrPoolClosed
	}
	if p.created < p.size {
		p.created++
		p.mu.Unlock()

		// Create new generator outside the lock
		gen, err := NewGenerator(p.opts...)
		if err != nil {
			p.mu.Lock()
			p.created--
			p.mu.Unlock()
			return nil, err
		}

		p.mu.Lock()
		if p.closed {
			// Close ran during construction and will never see this
			// generator; release it here.
			p.mu.Unlock()
			_ = gen.Close()
			return nil, ErrPoolClosed
		}
		p.generators = append(p.generators, gen)
		p.mu.Unlock()

		return gen, nil
	}
	p.mu.Unlock()

	// All generators created, wait for one to be released
	gen, ok := <-p.sem
	if !ok {
		return nil, ErrPoolClosed
	}
	return gen, nil
}

// Release returns a generator to the pool. Releasing into a closed
// pool is a no-op.
//
// The send happens under the lock so Close cannot close the channel
// between the closed check and the send. It never blocks: the channel
// buffer holds every generator the pool can create.
func (p *GeneratorPool) Release(gen *Generator) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	p.sem <- gen
}

// Close releases all browser resources.
// Returns an aggregated error if multiple generators fail to close.
func (p *GeneratorPool) Close() error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil
	}
	p.closed = true
	close(p.sem)
	generators := p.generators
	p.mu.Unlock()

	var errs []error
	for _, gen := range generators {
		if err := gen.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Size returns the pool capacity.
func (p *GeneratorPool) Size() int {
	return p.size
}

// ResolvePoolSize determines the optimal pool size.
// Priority: explicit workers > GOMAXPROCS-based calculation.
// Exported for use by servers and CLIs.
func ResolvePoolSize(workers int) int {
	// Explicit value takes priority
	if workers > 0 {
		return workers
	}

	// Auto-calculate based on GOMAXPROCS (adjusted by automaxprocs for containers)
	available := runtime.GOMAXPROCS(0)
	n := available / cpuDivisor

	if n < MinPoolSize {
		return MinPoolSize
	}
	if n > MaxPoolSize {
		return MaxPoolSize
	}
	return n
}
