// Package topology holds the residue-level view of a macromolecular system
// that the nomenclature and fragment machinery consumes. It knows nothing
// about coordinates; a topology is an ordered list of residues with stable
// indices.
package topology

import (
	"fmt"
	"strconv"

	"github.com/Bio-Otto/mdciao/seq"
)

// A Residue is a single residue of a topology.
type Residue struct {
	// Index is the zero-based position of the residue in the topology.
	// It is stable and dense: Topology.Residues[i].Index == i.
	Index int
	// SeqNum is the author-assigned sequence number (resSeq), which need
	// not start at zero nor be contiguous.
	SeqNum int
	// Code is the one-letter amino acid code, or 0 for residues without
	// one (ligands, non-standard residues).
	Code byte
	// Name is the residue name as it appears in the source, e.g. "GLU".
	Name string
	// Chain identifies the chain the residue belongs to.
	Chain string
}

// OneLetter returns the residue's one-letter code, substituting the
// sentinel 'X' when the residue has none.
func (r Residue) OneLetter() seq.Residue {
	if r.Code == 0 {
		return seq.Sentinel
	}
	return seq.Residue(r.Code)
}

// ShortName is the compact AAresSeq form, e.g. "R131", falling back to
// the full name for residues without a one-letter code, e.g. "GDP201".
func (r Residue) ShortName() string {
	if r.Code == 0 {
		return fmt.Sprintf("%s%d", r.Name, r.SeqNum)
	}
	return fmt.Sprintf("%c%d", r.Code, r.SeqNum)
}

func (r Residue) String() string {
	return fmt.Sprintf("%s%d", r.Name, r.SeqNum)
}

// A Topology is an ordered list of residues.
type Topology struct {
	Residues []Residue
}

// NResidues returns the number of residues in the topology.
func (t *Topology) NResidues() int {
	return len(t.Residues)
}

// Sequence builds the one-letter sequence of the topology. If restrict is
// non-nil, only the residues with those indices are used, in the given
// order. Residues without a one-letter code appear as 'X'.
func (t *Topology) Sequence(restrict []int) seq.Sequence {
	if restrict == nil {
		restrict = t.AllIndices()
	}
	rs := make([]seq.Residue, len(restrict))
	for i, idx := range restrict {
		rs[i] = t.Residues[idx].OneLetter()
	}
	return seq.Sequence{Name: "input", Residues: rs}
}

// AllIndices returns 0..NResidues()-1.
func (t *Topology) AllIndices() []int {
	idxs := make([]int, len(t.Residues))
	for i := range idxs {
		idxs[i] = i
	}
	return idxs
}

// SeqNums returns the sequence numbers of the given residues, or of all
// residues if restrict is nil.
func (t *Topology) SeqNums(restrict []int) []int {
	if restrict == nil {
		restrict = t.AllIndices()
	}
	nums := make([]int, len(restrict))
	for i, idx := range restrict {
		nums[i] = t.Residues[idx].SeqNum
	}
	return nums
}

// FindResidues returns the indices of every residue matching a textual
// descriptor. Accepted forms are a one-letter code plus sequence number
// ("R131"), a residue name plus sequence number ("ARG131"), or a bare
// sequence number ("131"). More than one residue can match, e.g. in a
// homodimer where both chains carry the same numbering.
func (t *Topology) FindResidues(descriptor string) []int {
	var matches []int
	if n, err := strconv.Atoi(descriptor); err == nil {
		for _, r := range t.Residues {
			if r.SeqNum == n {
				matches = append(matches, r.Index)
			}
		}
		return matches
	}
	for _, r := range t.Residues {
		if r.ShortName() == descriptor || r.String() == descriptor {
			matches = append(matches, r.Index)
		}
	}
	return matches
}
