package fragments

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/Bio-Otto/mdciao/topology"
)

// An InvalidSelectionError reports a fragment selection that names a
// fragment outside the candidate set.
type InvalidSelectionError struct {
	Input      string
	Candidates []int
}

func (e InvalidSelectionError) Error() string {
	return fmt.Sprintf("fragments: selection %q is not among the candidate fragments %v",
		e.Input, e.Candidates)
}

// A NoOpSelectionError reports a fragment selection that keeps every
// residue of the clashing definition. Keeping everything is not a
// reduction and signals a mistaken input.
type NoOpSelectionError struct {
	Kept, Total int
}

func (e NoOpSelectionError) Error() string {
	return fmt.Sprintf("fragments: selection keeps all %d of %d residues, nothing would be reduced",
		e.Kept, e.Total)
}

// A Reconciler resolves clashes between a consensus-derived residue
// definition and an independently computed fragment partition of the same
// topology. When a definition straddles more than one fragment, the clash
// is reported on Out and a sub-selection of fragments to keep is read from
// In. Non-interactive callers set KeepAll to accept every definition
// unchanged, which bypasses the prompt entirely.
type Reconciler struct {
	In      io.Reader
	Out     io.Writer
	KeepAll bool

	scanner *bufio.Scanner
}

func (rec *Reconciler) in() io.Reader {
	if rec.In == nil {
		return os.Stdin
	}
	return rec.In
}

func (rec *Reconciler) out() io.Writer {
	if rec.Out == nil {
		return os.Stdout
	}
	return rec.Out
}

// Reconcile checks the definition def (named name, with consensus labels
// in labels, "" = unlabeled) against the fragment partition parts.
//
// If def touches at most one fragment, or KeepAll is set, def is returned
// unchanged (as a fresh slice) without prompting. Otherwise the clash is
// printed and a range expression ("0-1", "0,2") naming the fragments to
// keep is read from In; every selected fragment must be one of the
// candidates (InvalidSelectionError) and the kept residues must be a
// strict subset of def (NoOpSelectionError).
func (rec *Reconciler) Reconcile(name string, def []int, parts [][]int, top *topology.Topology, labels []string) ([]int, error) {
	ifrags := InWhatN(def, parts)
	var cands []int
	for _, f := range uniqueInOrder(ifrags) {
		if f >= 0 {
			cands = append(cands, f)
		}
	}
	if len(cands) <= 1 || rec.KeepAll {
		out := make([]int, len(def))
		copy(out, def)
		return out, nil
	}

	w := rec.out()
	fmt.Fprintln(w, Describe(name, top, def, labels))
	fmt.Fprintf(w, "  %s clashes with other fragment definitions:\n", name)
	for _, jj := range cands {
		istr := Describe(jj, top, parts[jj], labels)
		inside := 0
		for _, idx := range parts[jj] {
			if contains(def, idx) {
				inside++
			}
		}
		if inside < len(parts[jj]) {
			istr += fmt.Sprintf("  %d residues outside %s", len(parts[jj])-inside, name)
		}
		fmt.Fprintln(w, "  "+istr)
	}
	fmt.Fprintf(w, "Input the fragment idxs to keep in %s (fmt: 1, 1-4, or 1,3): ", name)

	// One scanner for the life of the session: a fresh scanner per call
	// would read ahead and drop input meant for the next clash prompt.
	if rec.scanner == nil {
		rec.scanner = bufio.NewScanner(rec.in())
	}
	answer, err := scanLine(rec.scanner)
	if err != nil {
		return nil, err
	}
	sel, err := RangeExpand(answer)
	if err != nil {
		return nil, InvalidSelectionError{Input: answer, Candidates: cands}
	}
	for _, f := range sel {
		if !contains(cands, f) {
			return nil, InvalidSelectionError{Input: answer, Candidates: cands}
		}
	}

	var tokeep []int
	for i, idx := range def {
		if contains(sel, ifrags[i]) {
			tokeep = append(tokeep, idx)
		}
	}
	if len(tokeep) >= len(def) {
		return nil, NoOpSelectionError{Kept: len(tokeep), Total: len(def)}
	}
	return tokeep, nil
}

func scanLine(scanner *bufio.Scanner) (string, error) {
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return scanner.Text(), nil
}
