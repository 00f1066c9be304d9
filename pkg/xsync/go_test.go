package sync

import (
	"sync"
	"testing"
)

func TestGoRecoversPanicAndInvokesHandler(t *testing.T) {
	var wg sync.WaitGroup
	wg.Add(1)

	var caught error
	Go(func() {
		panic("boom")
	}, func(err error) {
		caught = err
		wg.Done()
	})

	wg.Wait()
	if caught == nil {
		t.Fatal("panic handler was not invoked")
	}
}
