package seq

// AlignOptions control the scoring of the global alignment. The zero value
// is not usable; start from DefaultAlignOptions. The substitution matrix is
// deliberately a parameter: different reference schemes may call for
// different scoring.
type AlignOptions struct {
	Matrix     *SubstMatrix
	GapPenalty int
}

// DefaultAlignOptions scores with BLOSUM62 and a linear gap penalty.
var DefaultAlignOptions = AlignOptions{
	Matrix:     Blosum62,
	GapPenalty: -4,
}

// An Alignment is a pair of equal-length gapped sequences plus the
// cumulative alignment score.
type Alignment struct {
	A, B  Sequence
	Score int
}

// Len returns the number of columns in the alignment.
func (al Alignment) Len() int {
	return len(al.A.Residues)
}

// Align computes the best global alignment of two sequences with the
// Needleman-Wunsch algorithm. Ties in the traceback are broken
// deterministically (diagonal, then up, then left), which makes the first
// reported alignment stable across calls; callers must not rely on any
// particular tie-break beyond that.
func Align(a, b Sequence, opts AlignOptions) (Alignment, error) {
	if a.Len() == 0 || b.Len() == 0 {
		return Alignment{}, ErrEmptySequence
	}
	gap := opts.GapPenalty
	A, B := a.Residues, b.Residues

	// The table has one extra row/column for the leading-gap case.
	table := make([][]int, len(A)+1)
	for i := range table {
		table[i] = make([]int, len(B)+1)
	}
	for i := 1; i <= len(A); i++ {
		table[i][0] = gap * i
	}
	for j := 1; j <= len(B); j++ {
		table[0][j] = gap * j
	}
	for i := 1; i <= len(A); i++ {
		for j := 1; j <= len(B); j++ {
			table[i][j] = max3(
				table[i-1][j-1]+opts.Matrix.Score(A[i-1], B[j-1]),
				table[i-1][j]+gap,
				table[i][j-1]+gap)
		}
	}

	// Trace an optimal path from (len(A), len(B)) back to the origin.
	alignedA := make([]Residue, 0, max(len(A), len(B)))
	alignedB := make([]Residue, 0, max(len(A), len(B)))
	i, j := len(A), len(B)
	for i > 0 || j > 0 {
		switch {
		case i > 0 && j > 0 &&
			table[i][j] == table[i-1][j-1]+opts.Matrix.Score(A[i-1], B[j-1]):
			alignedA = append(alignedA, A[i-1])
			alignedB = append(alignedB, B[j-1])
			i--
			j--
		case i > 0 && table[i][j] == table[i-1][j]+gap:
			alignedA = append(alignedA, A[i-1])
			alignedB = append(alignedB, GapByte)
			i--
		default:
			alignedA = append(alignedA, GapByte)
			alignedB = append(alignedB, B[j-1])
			j--
		}
	}

	// The traceback built the alignment backwards.
	reverse(alignedA)
	reverse(alignedB)

	return Alignment{
		A:     Sequence{Name: a.Name, Residues: alignedA},
		B:     Sequence{Name: b.Name, Residues: alignedB},
		Score: table[len(A)][len(B)],
	}, nil
}

func reverse(rs []Residue) {
	for i, j := 0, len(rs)-1; i < j; i, j = i+1, j-1 {
		rs[i], rs[j] = rs[j], rs[i]
	}
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func max3(a, b, c int) int {
	switch {
	case a >= b && a >= c:
		return a
	case b >= c:
		return b
	}
	return c
}
