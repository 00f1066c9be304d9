package trace

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/bits-and-blooms/bitset"

	"github.com/zwang271/mltl-inference/pkg/result"
)

// Dataset holds the four trace sets a search run classifies against.
type Dataset struct {
	PosTrain []*Trace
	NegTrain []*Trace
	PosTest  []*Trace
	NegTest  []*Trace
}

// NumVars is the variable width shared by every trace in the dataset.
// Returns 0 if the dataset is empty.
func (d *Dataset) NumVars() int {
	for _, group := range [][]*Trace{d.PosTrain, d.NegTrain, d.PosTest, d.NegTest} {
		for _, tr := range group {
			if w := tr.Width(); w > 0 {
				return int(w)
			}
		}
	}
	return 0
}

// MaxPosTrainTraceLen is the longest positive training trace's length,
// used to bound vacuous bounds-grid candidates during search.
func (d *Dataset) MaxPosTrainTraceLen() int {
	max := 0
	for _, tr := range d.PosTrain {
		if l := tr.Len(); l > max {
			max = l
		}
	}
	return max
}

// LoadDataset reads the four standard subdirectories (pos_train,
// neg_train, pos_test, neg_test) under root.
func LoadDataset(root string) (*Dataset, error) {
	load := func(name string) ([]*Trace, error) {
		dir := filepath.Join(root, name)
		traces, err := loadDir(dir)
		if err != nil {
			return nil, fmt.Errorf("loading %s: %w", name, err)
		}
		return traces, nil
	}

	posTrain, err := load("pos_train")
	if err != nil {
		return nil, err
	}
	negTrain, err := load("neg_train")
	if err != nil {
		return nil, err
	}
	posTest, err := load("pos_test")
	if err != nil {
		return nil, err
	}
	negTest, err := load("neg_test")
	if err != nil {
		return nil, err
	}

	return &Dataset{PosTrain: posTrain, NegTrain: negTrain, PosTest: posTest, NegTest: negTest}, nil
}

func loadDir(dir string) ([]*Trace, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	// Each file's outcome is wrapped in a Result rather than returned
	// eagerly, so every file in the directory is attempted before the
	// first error (in filename order) is returned. Any error still
	// yields no traces for the directory.
	loaded := make([]result.Result[*Trace], len(names))
	for i, name := range names {
		tr, err := loadFile(filepath.Join(dir, name))
		if err != nil {
			loaded[i] = result.Error[*Trace](fmt.Errorf("reading %s: %w", name, err))
			continue
		}
		loaded[i] = result.Value(tr)
	}

	traces := make([]*Trace, 0, len(names))
	for _, r := range loaded {
		tr, err := r.Get()
		if err != nil {
			return nil, err
		}
		traces = append(traces, tr)
	}
	return traces, nil
}

// loadFile reads one trace per §6.1's permissive format: one state per
// line, any non-'0'/'1' character on a line ignored (tolerating comma
// separators), trailing newlines tolerated, empty lines yielding
// 0-width states.
func loadFile(path string) (*Trace, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	width := uint(0)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := filterBits(scanner.Text())
		lines = append(lines, line)
		if uint(len(line)) > width {
			width = uint(len(line))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	states := make([]*bitset.BitSet, len(lines))
	for i, line := range lines {
		bs := bitset.New(width)
		for j, c := range line {
			if c == '1' {
				bs.Set(uint(j))
			}
		}
		states[i] = bs
	}
	return New(states, width), nil
}

func filterBits(line string) string {
	out := make([]byte, 0, len(line))
	for i := 0; i < len(line); i++ {
		if line[i] == '0' || line[i] == '1' {
			out = append(out, line[i])
		}
	}
	return string(out)
}
