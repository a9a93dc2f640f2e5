package nomenclature

import (
	"fmt"

	"github.com/Bio-Otto/mdciao/seq"
	"github.com/Bio-Otto/mdciao/topology"
)

// MapOptions control Map. The zero value maps all residues, does not fill
// gaps, and aligns with seq.DefaultAlignOptions.
type MapOptions struct {
	// Restrict limits alignment and labelling to these residue indices.
	// Useful to guide the alignment, e.g. when the reference covers a
	// receptor but the topology also contains a whole G-protein. The
	// output still covers every residue of the topology.
	Restrict []int
	// FillGaps runs FillGaps on the result before returning it.
	FillGaps bool
	// Align overrides the alignment scoring when Matrix is non-nil.
	Align seq.AlignOptions
}

// Map aligns the topology's sequence against the reference's sequence and
// returns one consensus label per topology residue. Residues that did not
// align with a match, or whose match carries no label in the table, get "".
//
// The returned list always has length top.NResidues(), regardless of
// Restrict. A reference with no entries yields ErrEmptyReference.
//
// Map holds no state across calls: one Reference can be reused against any
// number of differing topologies.
func Map(ref *Reference, top *topology.Topology, opts MapOptions) ([]string, error) {
	if ref.Len() == 0 {
		return nil, ErrEmptyReference
	}
	restrict := opts.Restrict
	if restrict == nil {
		restrict = top.AllIndices()
	}
	alOpts := opts.Align
	if alOpts.Matrix == nil {
		alOpts = seq.DefaultAlignOptions
	}

	al, err := seq.Align(top.Sequence(restrict), ref.Sequence(), alOpts)
	if err != nil {
		return nil, err
	}
	cols := seq.Project(al, restrict, top.SeqNums(restrict), ref.SeqNums())

	out := make([]string, top.NResidues())
	for _, col := range cols {
		if !col.Match {
			continue
		}
		key := fmt.Sprintf("%c%d", byte(col.RefAA.Upper()), col.RefSeqNum)
		if label, ok := ref.Label(key); ok {
			out[col.InputIndex] = label
		}
	}
	if opts.FillGaps {
		out = FillGaps(out)
	}
	return out, nil
}

// A DuplicateLabelError reports two residues carrying the same consensus
// label, which makes a label map impossible to invert.
type DuplicateLabelError struct {
	Label         string
	First, Second int
}

func (e DuplicateLabelError) Error() string {
	return fmt.Sprintf("nomenclature: residues %d and %d both carry the label %q",
		e.First, e.Second, e.Label)
}

// LabelToIndex inverts a consensus label map, returning the residue index
// behind each label. Unlabeled entries are skipped. If two residues carry
// the same label the map is malformed and a DuplicateLabelError is
// returned.
func LabelToIndex(labels []string) (map[string]int, error) {
	out := make(map[string]int)
	for idx, label := range labels {
		if label == "" {
			continue
		}
		if first, ok := out[label]; ok {
			return nil, DuplicateLabelError{Label: label, First: first, Second: idx}
		}
		out[label] = idx
	}
	return out, nil
}

// A Definition is a named group of topology residue indices, e.g. all the
// residues a consensus scheme assigns to "TM3".
type Definition struct {
	Name string
	Idxs []int
}

// Definitions maps the reference's subdomains onto the topology: for every
// subdomain of the table, the indices of the residues of labels (a map
// previously produced for top) that carry one of that subdomain's labels.
// Subdomains with no residue in the topology are omitted.
func Definitions(ref *Reference, labels []string) ([]Definition, error) {
	l2i, err := LabelToIndex(labels)
	if err != nil {
		return nil, err
	}
	var defs []Definition
	for _, group := range ref.SubdomainGroups() {
		var idxs []int
		for _, key := range group.Keys {
			label, _ := ref.Label(key)
			if idx, ok := l2i[label]; ok {
				idxs = append(idxs, idx)
			}
		}
		if len(idxs) > 0 {
			defs = append(defs, Definition{Name: group.Name, Idxs: idxs})
		}
	}
	return defs, nil
}

// CompleteLoops inserts intra- and extracellular loop definitions between
// consecutive transmembrane definitions TM1..TM7: ICL1 between TM1 and
// TM2, ECL1 between TM2 and TM3, and so on, alternating. ICL3 is not
// added (its span is usually ill-defined in truncated constructs). A loop
// is only added when the gap between its flanking TMs is non-empty. The
// input is not modified; a new, reordered list is returned with H8 (when
// present) kept at the end.
func CompleteLoops(defs []Definition) []Definition {
	byName := make(map[string]Definition, len(defs))
	for _, d := range defs {
		byName[d.Name] = d
	}

	loopIdx := map[string]int{"ICL": 1, "ECL": 1}
	loopType := "ICL"
	var out []Definition
	seen := make(map[string]bool)
	appendDef := func(d Definition) {
		if !seen[d.Name] {
			seen[d.Name] = true
			out = append(out, d)
		}
	}

	for ii := 1; ii <= 6; ii++ {
		tm1, ok1 := byName[fmt.Sprintf("TM%d", ii)]
		tm2, ok2 := byName[fmt.Sprintf("TM%d", ii+1)]
		loopName := fmt.Sprintf("%s%d", loopType, loopIdx[loopType])
		if ok1 && ok2 && loopName != "ICL3" {
			first := tm1.Idxs[len(tm1.Idxs)-1] + 1
			last := tm2.Idxs[0] - 1
			if first <= last {
				loop := Definition{Name: loopName}
				for idx := first; idx <= last; idx++ {
					loop.Idxs = append(loop.Idxs, idx)
				}
				appendDef(tm1)
				appendDef(loop)
				appendDef(tm2)
			}
		}
		if ok1 {
			appendDef(tm1)
		}
		if ok2 {
			appendDef(tm2)
		}
		loopIdx[loopType]++
		if loopType == "ICL" {
			loopType = "ECL"
		} else {
			loopType = "ICL"
		}
	}

	// Carry over anything not handled above (H8, non-TM names), in input
	// order.
	for _, d := range defs {
		appendDef(d)
	}
	return out
}

// GuessFragments returns the indices of the fragments of parts whose
// residues are labeled by ref at a rate of at least minHitRate, i.e. the
// fragments the reference scheme plausibly describes.
func GuessFragments(ref *Reference, top *topology.Topology, parts [][]int, minHitRate float64) ([]int, error) {
	labels, err := Map(ref, top, MapOptions{})
	if err != nil {
		return nil, err
	}
	var guess []int
	for i, frag := range parts {
		if len(frag) == 0 {
			continue
		}
		hits := 0
		for _, idx := range frag {
			if labels[idx] != "" {
				hits++
			}
		}
		if float64(hits)/float64(len(frag)) >= minHitRate {
			guess = append(guess, i)
		}
	}
	return guess, nil
}
