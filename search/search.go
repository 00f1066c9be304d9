// Package search implements the beam-style enumerative driver that mines
// MLTL classifiers from labeled trace datasets (§4.4): Boolean
// sub-function generation via boolmin, an "interesting" sub-function
// filter, and a depth-bounded candidate generation loop whose evaluation
// is fanned out across a worker pool and ranked into two bounded beam
// banks.
package search

import (
	"context"
	"log/slog"
	"runtime"
	"sort"
	"sync"

	"github.com/gammazero/workerpool"

	"github.com/zwang271/mltl-inference/ast"
	"github.com/zwang271/mltl-inference/internal/beam"
	"github.com/zwang271/mltl-inference/pkg/safe"
	xsync "github.com/zwang271/mltl-inference/pkg/xsync"
	"github.com/zwang271/mltl-inference/trace"
)

// Result is one reported classifier: its formula plus training and
// held-out test accuracy.
type Result struct {
	Formula  ast.Node
	TrainAcc float64
	TestAcc  float64
}

// Report holds the four top-10 rankings §4.4.2 step 8 names: each of the
// best/worst banks, ranked by training accuracy and separately by
// held-out test accuracy.
type Report struct {
	BestByTrain  []Result
	BestByTest   []Result
	WorstByTrain []Result
	WorstByTest  []Result
}

// Driver owns one search run's dataset, configuration and beam banks.
type Driver struct {
	cfg     Config
	dataset *trace.Dataset
	pool    xsync.Pool
	workers *workerpool.WorkerPool
	log     *slog.Logger

	best  *beam.Bank
	worst *beam.Bank
}

// NewDriver validates cfg, loads the dataset and builds the worker pool.
func NewDriver(cfg Config, log *slog.Logger) (*Driver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = slog.Default()
	}
	ds, err := trace.LoadDataset(cfg.DatasetPath)
	if err != nil {
		return nil, err
	}

	workers := cfg.Workers
	if workers <= 0 || workers > runtime.NumCPU() {
		workers = runtime.NumCPU()
	}
	wp := newFixedWorkerpool(workers)

	return &Driver{
		cfg:     cfg,
		dataset: ds,
		pool:    xsync.PoolOfWorkerpool(wp),
		workers: wp,
		log:     log,
		best:    beam.NewBestBank(cfg.MaxFormulas),
		worst:   beam.NewWorstBank(cfg.MaxFormulas),
	}, nil
}

// Close releases the driver's worker pool. Callers should defer Close
// after a successful NewDriver.
func (d *Driver) Close() {
	d.workers.StopWait()
}

func (d *Driver) maxUB() int {
	if d.cfg.MaxUB > 0 {
		return d.cfg.MaxUB
	}
	if n := d.dataset.MaxPosTrainTraceLen() - 1; n > 0 {
		return n
	}
	return 1
}

// evalAndAdmit scores candidate against the training set and offers it
// to both banks concurrently via the driver's worker pool. wg must be
// Wait()ed by the caller once every candidate in the batch has been
// submitted.
func (d *Driver) evalAndAdmit(wg *sync.WaitGroup, candidate ast.Node) {
	wg.Add(1)
	task := safe.WithRecover(func() {
		defer wg.Done()
		acc := Accuracy(candidate, d.dataset.PosTrain, d.dataset.NegTrain)
		e := beam.Entry{Formula: candidate, TrainAcc: acc}
		d.best.Admit(e)
		d.worst.Admit(e)
	}, func(err error) {
		defer wg.Done()
		d.log.Error("candidate evaluation panicked", "error", err)
	})
	if err := d.pool.Submit(task); err != nil {
		wg.Done()
		d.log.Error("worker pool rejected candidate", "error", err)
	}
}

func (d *Driver) evalBatch(candidates []ast.Node) {
	var wg sync.WaitGroup
	for _, c := range candidates {
		d.evalAndAdmit(&wg, c)
	}
	wg.Wait()
}

// Run executes the full pipeline (§4.4.2) and returns the top reported
// classifiers from both banks, with test accuracy computed for each.
func (d *Driver) Run(ctx context.Context) (Report, error) {
	maxUB := d.maxUB()
	grid := boundsGrid(maxUB, d.cfg.BoundsStep)

	d.log.Info("generating boolean sub-functions", "max_vars", d.cfg.MaxVars)
	raw := booleanSubfunctions(d.dataset.NumVars(), d.cfg.MaxVars, d.pool, d.log)

	d.log.Info("filtering interesting sub-functions", "candidates", len(raw))
	interesting := filterInteresting(raw, d.dataset.PosTrain, d.dataset.NegTrain, maxUB, d.pool, d.log)
	d.log.Info("interesting sub-functions retained", "count", len(interesting))

	// Depth-1 seeding: Globally/Finally over every interesting operand
	// and every (lb, ub) on the grid.
	var depth1 []ast.Node
	for _, phi := range interesting {
		for _, bounds := range grid {
			depth1 = append(depth1, ast.NewGlobally(phi, bounds[0], bounds[1]))
			depth1 = append(depth1, ast.NewFinally(phi, bounds[0], bounds[1]))
		}
	}
	d.log.Info("depth-1 candidates", "count", len(depth1))
	d.evalBatch(depth1)

	// Size-cap the interesting set, then generate Until/Release pairs.
	var sizeCapped []ast.Node
	for _, phi := range interesting {
		if phi.Size() <= d.cfg.MaxBoolFuncSize {
			sizeCapped = append(sizeCapped, phi)
		}
	}
	var pairs []ast.Node
	for _, l := range sizeCapped {
		for _, r := range sizeCapped {
			for _, bounds := range grid {
				pairs = append(pairs, ast.NewUntil(l, r, bounds[0], bounds[1]))
				pairs = append(pairs, ast.NewRelease(l, r, bounds[0], bounds[1]))
			}
		}
	}
	d.log.Info("size-capped until/release candidates", "count", len(pairs))
	d.evalBatch(pairs)

	// Deeper levels: each is a barrier over the previous depth's banks.
	for depth := 2; depth <= d.cfg.MaxDepth; depth++ {
		select {
		case <-ctx.Done():
			return d.report(), ctx.Err()
		default:
		}
		operands := append(d.best.Entries(), d.worst.Entries()...)
		candidates := d.generateDeeper(operands, sizeCapped, grid)
		d.log.Info("deeper candidates", "depth", depth, "count", len(candidates))
		d.evalBatch(candidates)
	}

	return d.report(), nil
}

// generateDeeper builds depth-d candidates from the operands carried
// over from the previous depth's banks (unary temporal wrappers, binary
// temporal combinations, and mixed propositional/temporal forms), per
// §4.4.2 step 7. A (lb, ub) pair is skipped whenever it would make the
// resulting formula vacuous over the longest positive training trace.
func (d *Driver) generateDeeper(operands []beam.Entry, propOperands []ast.Node, grid [][2]int) []ast.Node {
	maxLen := d.dataset.MaxPosTrainTraceLen()
	var out []ast.Node

	fits := func(operand ast.Node, ub int) bool {
		return operand.FutureReach()+ub <= maxLen
	}

	for _, e := range operands {
		operand := e.Formula
		for _, bounds := range grid {
			lb, ub := bounds[0], bounds[1]
			if !fits(operand, ub) {
				continue
			}
			out = append(out, ast.NewGlobally(operand, lb, ub))
			out = append(out, ast.NewFinally(operand, lb, ub))
		}
	}

	for _, e1 := range operands {
		for _, e2 := range operands {
			op1, op2 := e1.Formula, e2.Formula
			for _, bounds := range grid {
				lb, ub := bounds[0], bounds[1]
				if !fits(op1, ub) || !fits(op2, ub) {
					continue
				}
				out = append(out, ast.NewUntil(op1, op2, lb, ub))
				out = append(out, ast.NewRelease(op1, op2, lb, ub))
			}
		}
	}

	for _, e := range operands {
		operand := e.Formula
		for _, phi := range propOperands {
			mixedOr := ast.NewOr(operand, phi)
			mixedOrNeg := ast.NewOr(operand, ast.NewNegation(phi))
			mixedAnd := ast.NewAnd(operand, phi)
			mixedAndNeg := ast.NewAnd(operand, ast.NewNegation(phi))
			for _, mixed := range []ast.Node{mixedOr, mixedOrNeg, mixedAnd, mixedAndNeg} {
				for _, bounds := range grid {
					lb, ub := bounds[0], bounds[1]
					if !fits(mixed, ub) {
						continue
					}
					out = append(out, ast.NewGlobally(mixed, lb, ub))
					out = append(out, ast.NewFinally(mixed, lb, ub))
				}
			}
		}
	}

	return out
}

// bankResults computes test-set accuracy for every member of bank,
// preserving bank identity (best vs. worst are never merged).
func (d *Driver) bankResults(bank *beam.Bank) []Result {
	entries := bank.Entries()
	results := make([]Result, len(entries))
	for i, e := range entries {
		results[i] = Result{
			Formula:  e.Formula,
			TrainAcc: e.TrainAcc,
			TestAcc:  Accuracy(e.Formula, d.dataset.PosTest, d.dataset.NegTest),
		}
	}
	return results
}

func byTrainAcc(a, b Result) bool {
	if a.TrainAcc != b.TrainAcc {
		return a.TrainAcc > b.TrainAcc
	}
	return a.TestAcc > b.TestAcc
}

func byTestAcc(a, b Result) bool {
	if a.TestAcc != b.TestAcc {
		return a.TestAcc > b.TestAcc
	}
	return a.TrainAcc > b.TrainAcc
}

// topN returns a copy of results sorted by less, capped to n entries.
func topN(results []Result, less func(a, b Result) bool, n int) []Result {
	sorted := make([]Result, len(results))
	copy(sorted, results)
	sort.Slice(sorted, func(i, j int) bool { return less(sorted[i], sorted[j]) })
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

// report builds the four top-10 rankings §4.4.2 step 8 names: best bank
// by training accuracy, best bank by test accuracy, worst bank by
// training accuracy, worst bank by test accuracy. Bank identity is kept
// distinct throughout rather than merged into one ranking.
func (d *Driver) report() Report {
	bestResults := d.bankResults(d.best)
	worstResults := d.bankResults(d.worst)

	r := Report{
		BestByTrain:  topN(bestResults, byTrainAcc, 10),
		BestByTest:   topN(bestResults, byTestAcc, 10),
		WorstByTrain: topN(worstResults, byTrainAcc, 10),
		WorstByTest:  topN(worstResults, byTestAcc, 10),
	}
	d.logReport(r)
	return r
}

func (d *Driver) logReport(r Report) {
	logRanking := func(ranking string, results []Result) {
		for _, res := range results {
			d.log.Info(ranking, "formula", res.Formula.AsPrettyString(), "train_acc", res.TrainAcc, "test_acc", res.TestAcc)
		}
	}
	logRanking("best/by-train", r.BestByTrain)
	logRanking("best/by-test", r.BestByTest)
	logRanking("worst/by-train", r.WorstByTrain)
	logRanking("worst/by-test", r.WorstByTest)
}
