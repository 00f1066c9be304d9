// Package beam implements the search driver's bounded ranked formula
// banks: the "best" and "worst" sets described by the composite ordering
// key (accuracy, -size, structural-descending), each independently
// locked so concurrent candidate evaluation can admit into either bank
// without a global lock.
package beam

import (
	"sort"
	"sync"

	"github.com/zwang271/mltl-inference/ast"
)

// Entry is one ranked candidate: a formula and its training accuracy.
type Entry struct {
	Formula  ast.Node
	TrainAcc float64
}

// Rank reports whether a should be ordered ahead of b under the
// composite key: higher accuracy first, then smaller formula, then
// structurally-descending as the final tie-break.
func Rank(a, b Entry) bool {
	if a.TrainAcc != b.TrainAcc {
		return a.TrainAcc > b.TrainAcc
	}
	sizeA, sizeB := a.Formula.Size(), b.Formula.Size()
	if sizeA != sizeB {
		return sizeA < sizeB
	}
	return b.Formula.Less(a.Formula)
}

// Bank is a capacity-bounded set of Entry, kept sorted under a ranking
// function. "best" banks rank by Rank directly; "worst" banks rank by
// the reverse of Rank so the retained members are those with lowest
// accuracy among admitted candidates.
type Bank struct {
	mu       sync.Mutex
	entries  []Entry
	capacity int
	better   func(a, b Entry) bool
}

// NewBestBank retains the capacity entries with the highest composite rank.
func NewBestBank(capacity int) *Bank {
	return &Bank{capacity: capacity, better: Rank}
}

// NewWorstBank retains the capacity entries with the lowest accuracy,
// ordered by the full reverse of Rank: lowest accuracy first, then the
// larger formula, then structurally ascending.
func NewWorstBank(capacity int) *Bank {
	return &Bank{capacity: capacity, better: func(a, b Entry) bool { return Rank(b, a) }}
}

// Admit attempts to insert e per §4.4.4's admission rule: insert freely
// while under capacity; once full, only admit if e outranks the
// current worst member of this bank, evicting that member.
func (bk *Bank) Admit(e Entry) bool {
	bk.mu.Lock()
	defer bk.mu.Unlock()

	if len(bk.entries) < bk.capacity {
		bk.insertSorted(e)
		return true
	}
	last := bk.entries[len(bk.entries)-1]
	if !bk.better(e, last) {
		return false
	}
	bk.entries = bk.entries[:len(bk.entries)-1]
	bk.insertSorted(e)
	return true
}

func (bk *Bank) insertSorted(e Entry) {
	i := sort.Search(len(bk.entries), func(i int) bool { return bk.better(e, bk.entries[i]) })
	bk.entries = append(bk.entries, Entry{})
	copy(bk.entries[i+1:], bk.entries[i:])
	bk.entries[i] = e
}

// Entries returns a snapshot of the bank's current members in rank order.
func (bk *Bank) Entries() []Entry {
	bk.mu.Lock()
	defer bk.mu.Unlock()
	out := make([]Entry, len(bk.entries))
	copy(out, bk.entries)
	return out
}

// Len returns the current number of members.
func (bk *Bank) Len() int {
	bk.mu.Lock()
	defer bk.mu.Unlock()
	return len(bk.entries)
}
