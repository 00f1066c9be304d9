package search

import (
	"log/slog"
	"sync"

	"github.com/zwang271/mltl-inference/ast"
	"github.com/zwang271/mltl-inference/pkg/safe"
	xsync "github.com/zwang271/mltl-inference/pkg/xsync"
	"github.com/zwang271/mltl-inference/trace"
)

// boundsGrid enumerates every (lb, ub) pair with 0 <= lb <= ub <= maxUB,
// stepped by step along both axes.
func boundsGrid(maxUB, step int) [][2]int {
	if step <= 0 {
		step = 1
	}
	var out [][2]int
	for lb := 0; lb <= maxUB; lb += step {
		for ub := lb; ub <= maxUB; ub += step {
			out = append(out, [2]int{lb, ub})
		}
	}
	return out
}

// isRawLiteral reports whether n is a bare trace variable or its
// negation; these are always "interesting" regardless of their training
// accuracy under a temporal wrapper (§4.4.2 step 4).
func isRawLiteral(n ast.Node) bool {
	if n.Kind() == ast.KindVariable {
		return true
	}
	if neg, ok := n.(*ast.Negation); ok {
		return neg.Operand.Kind() == ast.KindVariable
	}
	return false
}

// filterInteresting keeps a Boolean sub-function iff it is a raw literal
// or Globally[0,maxUB](phi)/Finally[0,maxUB](phi) classifies the
// training set at accuracy > 0.5. Each candidate's interestingness test
// is independent of every other's, so the check is fanned out across
// pool per §5's data-parallel-over-independent-evaluations model; each
// candidate keeps its input slot so the kept subset preserves funcs'
// original order regardless of task completion order.
func filterInteresting(funcs []ast.Node, pos, neg []*trace.Trace, maxUB int, pool xsync.Pool, log *slog.Logger) []ast.Node {
	keep := make([]bool, len(funcs))
	var wg sync.WaitGroup

	for i, phi := range funcs {
		if isRawLiteral(phi) {
			keep[i] = true
			continue
		}
		i, phi := i, phi
		wg.Add(1)
		task := safe.WithRecover(func() {
			defer wg.Done()
			g := ast.NewGlobally(phi, 0, maxUB)
			f := ast.NewFinally(phi, 0, maxUB)
			keep[i] = Accuracy(g, pos, neg) > 0.5 || Accuracy(f, pos, neg) > 0.5
		}, func(err error) {
			defer wg.Done()
			log.Error("interesting-filter evaluation panicked", "error", err)
		})
		if err := pool.Submit(task); err != nil {
			wg.Done()
			log.Error("worker pool rejected interesting-filter task", "error", err)
		}
	}
	wg.Wait()

	out := make([]ast.Node, 0, len(funcs))
	for i, phi := range funcs {
		if keep[i] {
			out = append(out, phi)
		}
	}
	return out
}
