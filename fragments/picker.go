package fragments

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/Bio-Otto/mdciao/topology"
)

// letters label the candidates of an ambiguous pick positionally.
const letters = "abcdefghijklmnopqrst"

// A Picker resolves textual residue descriptors ("R131", "GLU30", "131")
// against a topology, disambiguating interactively when the same
// descriptor matches residues in more than one fragment (e.g. both chains
// of a homodimer).
//
// A Picker is a session: the fragment chosen for one descriptor becomes
// the default for the next when the user answers with an empty line. Set
// DefaultFragment to a fragment index to resolve every ambiguity without
// prompting.
type Picker struct {
	In  io.Reader
	Out io.Writer
	// DefaultFragment picks this fragment on ambiguity, bypassing the
	// prompt. -1 (the NewPicker default) means prompt.
	DefaultFragment int
	// Labels optionally annotates candidates with consensus labels.
	Labels []string

	lastAnswer int
	haveLast   bool
	scanner    *bufio.Scanner
}

// NewPicker returns a Picker reading from in and reporting on out, with no
// default fragment.
func NewPicker(in io.Reader, out io.Writer) *Picker {
	return &Picker{In: in, Out: out, DefaultFragment: -1}
}

func (p *Picker) in() io.Reader {
	if p.In == nil {
		return os.Stdin
	}
	return p.In
}

func (p *Picker) out() io.Writer {
	if p.Out == nil {
		return os.Stdout
	}
	return p.Out
}

// Pick finds the topology residue matching descriptor and the fragment of
// parts containing it.
//
// No match is not an error: a warning is printed and (-1, -1, nil)
// returned, since partial coverage is an expected outcome. A unique match
// is returned directly. On multiple matches the candidates are listed,
// each tagged with its fragment index and a positional letter, and an
// answer is read from In; two input modes are accepted and validated
// separately:
//
//   - a fragment index ("1"), which must be among the candidates'
//     fragments;
//   - a positional letter ("b"), which selects the corresponding
//     candidate outright, covering descriptors repeated within one
//     fragment.
//
// An empty answer repeats the previous pick's fragment, when there is one.
func (p *Picker) Pick(descriptor string, parts [][]int, top *topology.Topology) (int, int, error) {
	cands := top.FindResidues(descriptor)
	candFrags := InWhatN(cands, parts)

	switch len(cands) {
	case 0:
		fmt.Fprintf(p.out(), "no residue found with descriptor %s\n", descriptor)
		return -1, -1, nil
	case 1:
		return p.picked(cands[0], candFrags[0])
	}

	if p.DefaultFragment >= 0 {
		return p.pickFragment(strconv.Itoa(p.DefaultFragment), p.DefaultFragment, cands, candFrags)
	}

	w := p.out()
	fmt.Fprintf(w, "ambiguous descriptor %s:\n", descriptor)
	for i, cc := range cands {
		// Candidates beyond the letter alphabet are still listed, but can
		// only be selected by fragment index.
		tag := "  "
		if i < len(letters) {
			tag = string(letters[i]) + ")"
		}
		istr := fmt.Sprintf("  %s %10s in fragment %2d with residue index %3d",
			tag, top.Residues[cc].String(), candFrags[i], cc)
		if p.Labels != nil && p.Labels[cc] != "" {
			istr += fmt.Sprintf(" (%s)", p.Labels[cc])
		}
		fmt.Fprintln(w, istr)
	}
	fmt.Fprintf(w, "Input a fragment idx (out of %v) or a letter for repeated fragment idxs.\n", candFrags)
	if p.haveLast {
		fmt.Fprintf(w, "Leave empty to repeat the last answer [%d].\n", p.lastAnswer)
	}

	if p.scanner == nil {
		p.scanner = bufio.NewScanner(p.in())
	}
	answer, err := scanLine(p.scanner)
	if err != nil {
		return -1, -1, err
	}

	switch {
	case answer == "" && p.haveLast:
		return p.pickFragment(answer, p.lastAnswer, cands, candFrags)
	case isDigits(answer):
		n, _ := strconv.Atoi(answer)
		return p.pickFragment(answer, n, cands, candFrags)
	case len(answer) == 1 && answer[0] >= 'a' && answer[0] <= 'z':
		i := int(answer[0] - 'a')
		if i >= len(cands) || i >= len(letters) {
			return -1, -1, InvalidSelectionError{Input: answer, Candidates: candFrags}
		}
		return p.picked(cands[i], candFrags[i])
	}
	return -1, -1, InvalidSelectionError{Input: answer, Candidates: candFrags}
}

// pickFragment resolves the fragment-index input mode: frag must be among
// the candidates' fragments, and selects the first candidate inside it.
func (p *Picker) pickFragment(input string, frag int, cands, candFrags []int) (int, int, error) {
	for i, f := range candFrags {
		if f == frag {
			return p.picked(cands[i], f)
		}
	}
	return -1, -1, InvalidSelectionError{Input: input, Candidates: candFrags}
}

func (p *Picker) picked(residx, fragidx int) (int, int, error) {
	p.lastAnswer = fragidx
	p.haveLast = true
	return residx, fragidx, nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
