package nomenclature

import (
	"fmt"
	"strconv"
	"strings"
)

// SubdomainKey extracts the subdomain part of a consensus label: the label
// minus its trailing numeric/ordinal token. Labels starting with a digit
// ("3.50") keep everything before the first dot; labels starting with a
// letter ("G.H5.25") keep everything before the last dot.
func SubdomainKey(label string) string {
	if label == "" {
		return ""
	}
	c := label[0]
	switch {
	case c >= '0' && c <= '9':
		if i := strings.Index(label, "."); i >= 0 {
			return label[:i]
		}
	default:
		if i := strings.LastIndex(label, "."); i >= 0 {
			return label[:i]
		}
	}
	return label
}

// labelOffset reads the trailing numeric token of a label, stripping any
// trailing non-numeric marker (as left behind by interpolation, e.g.
// "3.50*" -> 50).
func labelOffset(label string) (int, bool) {
	tok := label
	if i := strings.LastIndex(label, "."); i >= 0 {
		tok = label[i+1:]
	}
	end := len(tok)
	for end > 0 && !(tok[end-1] >= '0' && tok[end-1] <= '9') {
		end--
	}
	n, err := strconv.Atoi(tok[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}

// A Run is the residue-index span of one subdomain in a consensus label
// map. First and Last bracket every index whose label belongs to the
// subdomain; interior indices may be unlabeled.
type Run struct {
	Key string
	// Idxs are the labeled indices of the run, in order.
	Idxs []int
}

// First returns the first labeled index of the run.
func (r Run) First() int { return r.Idxs[0] }

// Last returns the last labeled index of the run.
func (r Run) Last() int { return r.Idxs[len(r.Idxs)-1] }

// Subdomains regroups a consensus label map into per-subdomain runs,
// ordered by first appearance. Indices with an empty label belong to no
// run (but may fall inside a run's span).
func Subdomains(labels []string) []Run {
	var runs []Run
	at := make(map[string]int)
	for idx, label := range labels {
		if label == "" {
			continue
		}
		key := SubdomainKey(label)
		i, ok := at[key]
		if !ok {
			i = len(runs)
			at[key] = i
			runs = append(runs, Run{Key: key})
		}
		runs[i].Idxs = append(runs[i].Idxs, idx)
	}
	return runs
}

// FillGaps repairs simple numbering gaps in a consensus label map: an
// unlabeled stretch inside a subdomain run whose labeled neighbors follow
// plain offset arithmetic, e.g.
//
//	[G.hfs2.1 G.hfs2.2 G.hfs2.3 "" "" G.hfs2.6 G.hfs2.7]
//
// becomes
//
//	[G.hfs2.1 ... G.hfs2.4 G.hfs2.5 ... G.hfs2.7]
//
// For each run with unlabeled interior slots, the labels the run should
// carry are predicted from the numeric suffix of its first label; if any
// existing label disagrees with the prediction the run is left untouched,
// since the mismatch points at a true insertion/deletion rather than a
// plain numbering gap. A run whose first entry carries no numeric suffix
// cannot seed the prediction and is skipped, as is (conservatively) any
// span that starts unlabeled.
//
// The input is never mutated; a fresh list is returned.
func FillGaps(labels []string) []string {
	out := make([]string, len(labels))
	copy(out, labels)

	for _, run := range Subdomains(out) {
		span := run.Last() - run.First() + 1
		if span == len(run.Idxs) {
			continue // no interior gap
		}
		offset, ok := labelOffset(out[run.First()])
		if !ok {
			continue
		}

		kept := true
		var fillable []int
		suggested := make(map[int]string, span)
		for ii := run.First(); ii <= run.Last(); ii++ {
			s := fmt.Sprintf("%s.%d", run.Key, offset)
			suggested[ii] = s
			if out[ii] == "" {
				fillable = append(fillable, ii)
			} else if out[ii] != s {
				kept = false
			}
			offset++
		}
		if !kept {
			continue
		}
		for _, ii := range fillable {
			out[ii] = suggested[ii]
		}
	}
	return out
}
