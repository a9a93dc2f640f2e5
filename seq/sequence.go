package seq

import (
	"errors"
	"fmt"
)

// A Sequence is an ordered list of one-letter amino acid codes with a name.
// Residues without a one-letter code (ligands, modified amino acids) are
// represented by the sentinel 'X'.
type Sequence struct {
	Name     string
	Residues []Residue
}

// A Residue corresponds to a single entry in a sequence.
type Residue byte

// Sentinel is the one-letter code used for residues that have no standard
// one-letter representation.
const Sentinel Residue = 'X'

// GapByte is the character used to mark insertions/deletions in an alignment.
const GapByte Residue = '-'

// ErrEmptySequence is returned by Align when either input has no residues.
var ErrEmptySequence = errors.New("seq: cannot align an empty sequence")

// NewSequence creates a sequence from a plain string of one-letter codes.
func NewSequence(name, residues string) Sequence {
	rs := make([]Residue, len(residues))
	for i := 0; i < len(residues); i++ {
		rs[i] = Residue(residues[i])
	}
	return Sequence{Name: name, Residues: rs}
}

// Copy returns a deep copy of the sequence.
func (s Sequence) Copy() Sequence {
	residues := make([]Residue, len(s.Residues))
	copy(residues, s.Residues)
	return Sequence{Name: s.Name, Residues: residues}
}

// Len returns the number of residues in the sequence.
func (s Sequence) Len() int {
	return len(s.Residues)
}

// String returns the residues as a plain string, without the name.
func (s Sequence) String() string {
	bs := make([]byte, len(s.Residues))
	for i, r := range s.Residues {
		bs[i] = byte(r)
	}
	return string(bs)
}

// IsGap returns true if the residue is the gap character.
func (r Residue) IsGap() bool {
	return r == GapByte
}

// Upper returns the residue upper-cased. Comparisons and substitution
// lookups are case-insensitive throughout this package.
func (r Residue) Upper() Residue {
	if r >= 'a' && r <= 'z' {
		return r - 'a' + 'A'
	}
	return r
}

func (r Residue) String() string {
	return fmt.Sprintf("%c", byte(r))
}
