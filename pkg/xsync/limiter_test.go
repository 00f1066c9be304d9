package sync

import (
	"sync"
	"sync/atomic"
	"testing"
)

func TestLimiterBoundsConcurrency(t *testing.T) {
	const max = 4
	limiter := NewLimiter(max)

	var inFlight, peak int64
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			limiter.Acquire()
			defer limiter.Release()

			n := atomic.AddInt64(&inFlight, 1)
			for {
				p := atomic.LoadInt64(&peak)
				if n <= p || atomic.CompareAndSwapInt64(&peak, p, n) {
					break
				}
			}
			atomic.AddInt64(&inFlight, -1)
		}()
	}
	wg.Wait()

	if peak > max {
		t.Fatalf("observed %d concurrent holders, want <= %d", peak, max)
	}
}

func TestNewLimiterPanicsOnNonPositiveMax(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("NewLimiter(0) should panic")
		}
	}()
	NewLimiter(0)
}
