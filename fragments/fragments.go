// Package fragments deals with fragment partitions of a topology:
// contiguous, disjoint residue-index groups produced by chain breaks and
// sequence-number jumps, and the reconciliation of such partitions with
// residue groupings derived from consensus nomenclature.
package fragments

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/Bio-Otto/mdciao/topology"
)

// InWhat returns the index of the fragment of parts containing the residue
// index, or -1 if no fragment contains it.
func InWhat(idx int, parts [][]int) int {
	for i, frag := range parts {
		for _, j := range frag {
			if j == idx {
				return i
			}
		}
	}
	return -1
}

// InWhatN is InWhat for a list of residue indices.
func InWhatN(idxs []int, parts [][]int) []int {
	out := make([]int, len(idxs))
	for i, idx := range idxs {
		out[i] = InWhat(idx, parts)
	}
	return out
}

// RangeExpand parses a compact range expression like "0-3", "0,2" or
// "1-2,5" into the sorted list of integers it denotes.
func RangeExpand(expr string) ([]int, error) {
	var out []int
	for _, part := range strings.Split(expr, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if i := strings.Index(part, "-"); i > 0 {
			lo, err := strconv.Atoi(strings.TrimSpace(part[:i]))
			if err != nil {
				return nil, fmt.Errorf("fragments: bad range %q", part)
			}
			hi, err := strconv.Atoi(strings.TrimSpace(part[i+1:]))
			if err != nil || hi < lo {
				return nil, fmt.Errorf("fragments: bad range %q", part)
			}
			for n := lo; n <= hi; n++ {
				out = append(out, n)
			}
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("fragments: bad range %q", part)
		}
		out = append(out, n)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("fragments: empty range expression %q", expr)
	}
	sort.Ints(out)
	return out, nil
}

// ByResSeq partitions a topology into fragments, breaking whenever the
// chain changes or the sequence number fails to increase. The result is
// disjoint and exhaustive: every residue index lands in exactly one
// fragment.
func ByResSeq(top *topology.Topology) [][]int {
	var parts [][]int
	var cur []int
	for i, r := range top.Residues {
		if i > 0 {
			prev := top.Residues[i-1]
			if r.Chain != prev.Chain || r.SeqNum <= prev.SeqNum {
				parts = append(parts, cur)
				cur = nil
			}
		}
		cur = append(cur, r.Index)
	}
	if len(cur) > 0 {
		parts = append(parts, cur)
	}
	return parts
}

// Describe renders a one-line summary of a fragment, in the style
//
//	fragment 0 with  283 AAs   THR9 ( 0) - LEU394 (282)
//
// When labels is non-nil the consensus labels of the first and last
// residues are appended in brackets.
func Describe(name interface{}, top *topology.Topology, idxs []int, labels []string) string {
	if len(idxs) == 0 {
		return fmt.Sprintf("fragment %v is empty", name)
	}
	first, last := idxs[0], idxs[len(idxs)-1]
	s := fmt.Sprintf("fragment %4v with %4d AAs %8s (%4d) - %8s (%4d)",
		name, len(idxs),
		top.Residues[first].String(), first,
		top.Residues[last].String(), last)
	if labels != nil {
		s += fmt.Sprintf(" [%s - %s]", orNA(labels[first]), orNA(labels[last]))
	}
	return s
}

func orNA(label string) string {
	if label == "" {
		return "NA"
	}
	return label
}

func uniqueInOrder(xs []int) []int {
	var out []int
	seen := make(map[int]bool)
	for _, x := range xs {
		if !seen[x] {
			seen[x] = true
			out = append(out, x)
		}
	}
	return out
}

func contains(xs []int, x int) bool {
	for _, y := range xs {
		if y == x {
			return true
		}
	}
	return false
}
