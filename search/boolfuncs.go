package search

import (
	"log/slog"
	"sort"
	"sync"

	"github.com/zwang271/mltl-inference/ast"
	"github.com/zwang271/mltl-inference/boolmin"
	"github.com/zwang271/mltl-inference/pkg/safe"
	"github.com/zwang271/mltl-inference/pkg/sets"
	xsync "github.com/zwang271/mltl-inference/pkg/xsync"
)

// remapVars rewrites every Variable leaf's local index (0..len(varIDs)-1,
// as produced by boolmin over a subset's truth table) into the actual
// dataset variable id at that position.
func remapVars(n ast.Node, varIDs []int) ast.Node {
	switch v := n.(type) {
	case *ast.Constant:
		return ast.NewConstant(v.Value)
	case *ast.Variable:
		return ast.NewVariable(varIDs[v.ID])
	case *ast.Negation:
		return ast.NewNegation(remapVars(v.Operand, varIDs))
	case *ast.BinaryProp:
		l, r := remapVars(v.Left, varIDs), remapVars(v.Right, varIDs)
		switch v.Kind() {
		case ast.KindAnd:
			return ast.NewAnd(l, r)
		case ast.KindXor:
			return ast.NewXor(l, r)
		case ast.KindOr:
			return ast.NewOr(l, r)
		case ast.KindImplies:
			return ast.NewImplies(l, r)
		default:
			return ast.NewEquiv(l, r)
		}
	default:
		panic("search: remapVars called on a non-propositional node")
	}
}

// booleanSubfunctions enumerates every minimized Boolean sub-function
// over every MaxVars-sized variable subset, per §4.4.2 steps 2-3. Each
// subset's exhaustive truth-table sweep (skipping the constant-true and
// constant-false rows, which contribute nothing a raw literal doesn't
// already cover) runs as one task fanned out across pool, per §5's
// concurrency model for interesting-set construction. Results are
// deduplicated by structural string form via a pkg/sets.SyncSet (wrapping
// a LinkedSet, for parity with SyncSet's own documented usage) shared
// across tasks; since admission order is no longer deterministic once
// construction is concurrent, the returned slice is instead sorted by
// that same string form for reproducibility. Raw variables and their
// negations are always included regardless of MaxVars.
func booleanSubfunctions(numVars, maxVars int, pool xsync.Pool, log *slog.Logger) []ast.Node {
	dedup := sets.NewSyncSet[string](sets.NewLinkedSet[string]())
	var mu sync.Mutex
	nodeByKey := make(map[string]ast.Node)

	add := func(n ast.Node) {
		key := n.AsString()
		if dedup.Add(key) {
			mu.Lock()
			nodeByKey[key] = n
			mu.Unlock()
		}
	}

	for id := 0; id < numVars; id++ {
		add(ast.NewVariable(id))
		add(ast.NewNegation(ast.NewVariable(id)))
	}

	if maxVars >= 2 {
		numTables := uint64(1) << (uint64(1) << uint(maxVars))
		var wg sync.WaitGroup
		for _, subset := range subsetsOfSize(numVars, maxVars) {
			subset := subset
			wg.Add(1)
			task := safe.WithRecover(func() {
				defer wg.Done()
				for tt := uint64(1); tt < numTables-1; tt++ {
					minterms := boolmin.MintermsForTruthTable(tt, maxVars)
					local := boolmin.QuineMcCluskey(minterms)
					add(remapVars(local, subset))
				}
			}, func(err error) {
				defer wg.Done()
				log.Error("boolean sub-function reduction panicked", "error", err, "vars", subset)
			})
			if err := pool.Submit(task); err != nil {
				wg.Done()
				log.Error("worker pool rejected boolean sub-function task", "error", err)
			}
		}
		wg.Wait()
	}

	keys := dedup.ToSlice()
	sort.Strings(keys)
	nodes := make([]ast.Node, len(keys))
	for i, k := range keys {
		nodes[i] = nodeByKey[k]
	}
	return nodes
}
