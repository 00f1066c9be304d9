package search

import "github.com/gammazero/workerpool"

// newFixedWorkerpool builds a gammazero/workerpool sized to workers,
// the backend for the evaluation fan-out (§5, §11). NewDriver always
// uses it; the Driver's pool field is unexported and has no setter.
func newFixedWorkerpool(workers int) *workerpool.WorkerPool {
	if workers <= 0 {
		workers = 1
	}
	return workerpool.New(workers)
}
