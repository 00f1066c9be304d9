package search

import (
	"github.com/zwang271/mltl-inference/ast"
	"github.com/zwang271/mltl-inference/trace"
)

// Accuracy implements §4.4.3's classification accuracy: the fraction of
// positives the formula accepts plus the fraction of negatives it
// rejects, over the combined sample count.
func Accuracy(formula ast.Node, pos, neg []*trace.Trace) float64 {
	total := len(pos) + len(neg)
	if total == 0 {
		return 0
	}
	correct := 0
	for _, tr := range pos {
		if formula.Evaluate(tr) {
			correct++
		}
	}
	for _, tr := range neg {
		if !formula.Evaluate(tr) {
			correct++
		}
	}
	return float64(correct) / float64(total)
}
