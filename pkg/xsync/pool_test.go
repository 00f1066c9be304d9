package sync

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/gammazero/workerpool"
	"github.com/panjf2000/ants/v2"
	conc "github.com/sourcegraph/conc/pool"
)

func submitN(t *testing.T, pool Pool, n int) {
	t.Helper()
	var counter int32
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		err := pool.Submit(func() {
			defer wg.Done()
			atomic.AddInt32(&counter, 1)
		})
		if err != nil {
			t.Fatalf("Submit() error = %v", err)
		}
	}
	wg.Wait()
	if int(counter) != n {
		t.Fatalf("executed %d tasks, want %d", counter, n)
	}
}

func TestDefaultPoolRunsSubmittedWork(t *testing.T) {
	submitN(t, DefaultPool(), 10)
}

func TestPoolOfNoPoolRunsEachTaskOnItsOwnGoroutine(t *testing.T) {
	submitN(t, PoolOfNoPool(), 50)
}

func TestPoolOfAntsRunsSubmittedWork(t *testing.T) {
	p, err := ants.NewPool(4)
	if err != nil {
		t.Fatalf("ants.NewPool() error = %v", err)
	}
	defer p.Release()
	submitN(t, PoolOfAnts(p), 50)
}

func TestPoolOfWorkerpoolRunsSubmittedWork(t *testing.T) {
	wp := workerpool.New(4)
	defer wp.StopWait()
	submitN(t, PoolOfWorkerpool(wp), 50)
}

func TestPoolOfConcRunsSubmittedWork(t *testing.T) {
	cp := conc.New().WithMaxGoroutines(4)
	submitN(t, PoolOfConc(cp), 50)
	cp.Wait()
}

func TestPoolOfAntsPanicsOnNilPool(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("PoolOfAnts(nil) should panic")
		}
	}()
	PoolOfAnts(nil)
}

func TestSetDefaultPoolIgnoresNil(t *testing.T) {
	before := DefaultPool()
	SetDefaultPool(nil)
	if DefaultPool() != before {
		t.Fatal("SetDefaultPool(nil) must be a no-op")
	}
}
