package boolmin

// IntToBinStr returns the little-endian bit string representation of n,
// truncated or left-padded to width bits. Used to enumerate rows of a
// truth table: IntToBinStr(5, 3) == "101" read as bit0,bit1,bit2 = 1,0,1.
func IntToBinStr(n, width int) string {
	buf := make([]byte, width)
	for i := 0; i < width; i++ {
		if n&(1<<uint(i)) != 0 {
			buf[i] = '1'
		} else {
			buf[i] = '0'
		}
	}
	return string(buf)
}

// MintermsForTruthTable returns, for a truth table described by bitmask
// (bit i of truthTable set means row i, i.e. assignment IntToBinStr(i,
// numVars), is a minterm), the list of minterm bit strings QuineMcCluskey
// expects.
func MintermsForTruthTable(truthTable uint64, numVars int) []string {
	rows := 1 << uint(numVars)
	var minterms []string
	for row := 0; row < rows; row++ {
		if truthTable&(1<<uint(row)) != 0 {
			minterms = append(minterms, IntToBinStr(row, numVars))
		}
	}
	return minterms
}
