package seq

// A Column describes one column of a pairwise alignment between an input
// topology's sequence and a reference sequence. Sides that fall on a gap
// carry -1 for their index/number fields and the gap character for their
// amino acid.
type Column struct {
	// InputIndex is the topology residue index behind this column, or -1
	// if the input side of the column is a gap.
	InputIndex int
	InputAA    Residue
	// InputSeqNum is the sequence number of the input residue, or -1.
	InputSeqNum int
	RefAA       Residue
	// RefSeqNum is the sequence number of the reference residue, or -1.
	RefSeqNum int
	// Match is true iff both sides are present and their amino acid codes
	// agree (case-insensitively).
	Match bool
}

// Project converts a raw alignment into one Column per alignment column.
//
// inputIdxs holds the topology residue index behind each non-gap position
// of al.A, in order; inputSeqNums the corresponding sequence numbers.
// refSeqNums holds the sequence number behind each non-gap position of
// al.B. The two sides advance on independent cursors, so no column is ever
// dropped: len(result) == al.Len().
func Project(al Alignment, inputIdxs, inputSeqNums, refSeqNums []int) []Column {
	cols := make([]Column, 0, al.Len())
	ci, cr := 0, 0
	for k := 0; k < al.Len(); k++ {
		ra, rb := al.A.Residues[k], al.B.Residues[k]
		col := Column{
			InputIndex:  -1,
			InputAA:     ra,
			InputSeqNum: -1,
			RefAA:       rb,
			RefSeqNum:   -1,
		}
		if !ra.IsGap() {
			col.InputIndex = inputIdxs[ci]
			col.InputSeqNum = inputSeqNums[ci]
			ci++
		}
		if !rb.IsGap() {
			col.RefSeqNum = refSeqNums[cr]
			cr++
		}
		col.Match = !ra.IsGap() && !rb.IsGap() && ra.Upper() == rb.Upper()
		cols = append(cols, col)
	}
	return cols
}
