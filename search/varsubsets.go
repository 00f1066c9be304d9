package search

// subsetsOfSize returns every subset of {0,...,numVars-1} of exactly
// size, as sorted slices of variable ids (§4.4.2 step 2: "every
// MaxVars-sized subset").
func subsetsOfSize(numVars, size int) [][]int {
	if size > numVars || size <= 0 {
		return nil
	}
	var out [][]int
	cur := make([]int, 0, size)
	var rec func(start int)
	rec = func(start int) {
		if len(cur) == size {
			out = append(out, append([]int(nil), cur...))
			return
		}
		for v := start; v <= numVars-(size-len(cur)); v++ {
			cur = append(cur, v)
			rec(v + 1)
			cur = cur[:len(cur)-1]
		}
	}
	rec(0)
	return out
}
