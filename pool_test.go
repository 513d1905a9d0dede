package chat2pdf

import (
	"errors"
	"runtime"
	"sync"
	"testing"
	"time"
)

func TestNewGeneratorPool_Size(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		n    int
		want int
	}{
		{name: "explicit size", n: 4, want: 4},
		{name: "zero clamps to one", n: 0, want: 1},
		{name: "negative clamps to one", n: -3, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p := NewGeneratorPool(tt.n)
			defer p.Close()

			if got := p.Size(); got != tt.want {
				t.Errorf("Size() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestGeneratorPool_LazyCreation(t *testing.T) {
	t.Parallel()

	p := NewGeneratorPool(2, WithFontDir(fontDir(t)))
	defer p.Close()

	if p.created != 0 {
		t.Errorf("pool created %d generators before first acquire, want 0", p.created)
	}

	gen, err := p.Acquire()
	if err != nil {
		t.Fatalf("Acquire() error: %v", err)
	}
	if gen == nil {
		t.Fatal("Acquire() returned nil generator")
	}
	if p.created != 1 {
		t.Errorf("pool created %d generators, want 1", p.created)
	}
	p.Release(gen)
}

func TestGeneratorPool_ReusesReleasedGenerator(t *testing.T) {
	t.Parallel()

	p := NewGeneratorPool(1, WithFontDir(fontDir(t)))
	defer p.Close()

	first, err := p.Acquire()
	if err != nil {
		t.Fatalf("Acquire() error: %v", err)
	}
	p.Release(first)

	second, err := p.Acquire()
	if err != nil {
		t.Fatalf("second Acquire() error: %v", err)
	}
	if first != second {
		t.Error("Acquire() created a new generator instead of reusing the released one")
	}
	p.Release(second)
}

func TestGeneratorPool_AcquireFailureReleasesSlot(t *testing.T) {
	t.Parallel()

	// Construction fails (empty font dir), the slot must become
	// available again rather than leaking.
	p := NewGeneratorPool(1, WithFontDir(t.TempDir()))
	defer p.Close()

	if _, err := p.Acquire(); err == nil {
		t.Fatal("Acquire() succeeded with unbuildable generator options")
	}
	if p.created != 0 {
		t.Errorf("failed construction left created = %d, want 0", p.created)
	}
}

func TestGeneratorPool_ConcurrentAcquireRelease(t *testing.T) {
	t.Parallel()

	p := NewGeneratorPool(2, WithFontDir(fontDir(t)))
	defer p.Close()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			gen, err := p.Acquire()
			if err != nil {
				t.Errorf("Acquire() error: %v", err)
				return
			}
			p.Release(gen)
		}()
	}
	wg.Wait()

	if p.created > 2 {
		t.Errorf("pool created %d generators, want at most 2", p.created)
	}
}

func TestGeneratorPool_CloseIsIdempotent(t *testing.T) {
	t.Parallel()

	p := NewGeneratorPool(1, WithFontDir(fontDir(t)))

	gen, err := p.Acquire()
	if err != nil {
		t.Fatalf("Acquire() error: %v", err)
	}
	p.Release(gen)

	if err := p.Close(); err != nil {
		t.Errorf("Close() error: %v", err)
	}
	if err := p.Close(); err != nil {
		t.Errorf("second Close() error: %v", err)
	}
}

func TestGeneratorPool_CloseUnblocksWaitingAcquire(t *testing.T) {
	t.Parallel()

	p := NewGeneratorPool(1, WithFontDir(fontDir(t)))

	if _, err := p.Acquire(); err != nil {
		t.Fatalf("Acquire() error: %v", err)
	}

	// Second Acquire blocks: capacity is exhausted and the only
	// generator is checked out.
	type result struct {
		gen *Generator
		err error
	}
	done := make(chan result, 1)
	go func() {
		gen, err := p.Acquire()
		done <- result{gen: gen, err: err}
	}()

	// Let the goroutine reach the blocking receive.
	time.Sleep(50 * time.Millisecond)

	if err := p.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}

	r := <-done
	if !errors.Is(r.err, ErrPoolClosed) {
		t.Errorf("blocked Acquire() error = %v, want ErrPoolClosed", r.err)
	}
	if r.gen != nil {
		t.Errorf("blocked Acquire() = %v, want nil generator", r.gen)
	}
}

func TestGeneratorPool_AcquireAfterClose(t *testing.T) {
	t.Parallel()

	p := NewGeneratorPool(1, WithFontDir(fontDir(t)))
	if err := p.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}

	gen, err := p.Acquire()
	if !errors.Is(err, ErrPoolClosed) {
		t.Errorf("Acquire() error = %v, want ErrPoolClosed", err)
	}
	if gen != nil {
		t.Errorf("Acquire() = %v, want nil generator", gen)
	}
}

func TestGeneratorPool_ReleaseAfterCloseDoesNotPanic(t *testing.T) {
	t.Parallel()

	p := NewGeneratorPool(1, WithFontDir(fontDir(t)))

	gen, err := p.Acquire()
	if err != nil {
		t.Fatalf("Acquire() error: %v", err)
	}
	if err := p.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}

	p.Release(gen) // no-op on a closed pool
}

func TestResolvePoolSize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		workers int
		want    int
	}{
		{name: "explicit workers win", workers: 3, want: 3},
		{name: "explicit above cap still wins", workers: 16, want: 16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := ResolvePoolSize(tt.workers); got != tt.want {
				t.Errorf("ResolvePoolSize(%d) = %d, want %d", tt.workers, got, tt.want)
			}
		})
	}

	t.Run("auto stays within bounds", func(t *testing.T) {
		t.Parallel()

		got := ResolvePoolSize(0)
		if got < MinPoolSize || got > MaxPoolSize {
			t.Errorf("ResolvePoolSize(0) = %d, want within [%d, %d]", got, MinPoolSize, MaxPoolSize)
		}

		want := runtime.GOMAXPROCS(0) / cpuDivisor
		if want < MinPoolSize {
			want = MinPoolSize
		}
		if want > MaxPoolSize {
			want = MaxPoolSize
		}
		if got != want {
			t.Errorf("ResolvePoolSize(0) = %d, want %d", got, want)
		}
	})
}
