// Package nomenclature maps the residues of arbitrary topologies onto
// consensus numbering schemes (Ballesteros-Weinstein style "3.50" labels,
// common G-protein "G.H5.25" labels) by sequence alignment against a
// reference table, and repairs and reconciles the resulting label maps.
package nomenclature

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/Bio-Otto/mdciao/seq"
)

// ErrEmptyReference is returned when a mapping operation is attempted
// against a reference table with no entries.
var ErrEmptyReference = errors.New("nomenclature: reference table is empty")

// A Reference is an ordered table mapping AAresSeq keys (one-letter amino
// acid code plus sequence number, e.g. "R131") to consensus labels (e.g.
// "3.50" or "G.hfs2.2"). Iteration order is insertion order; for the
// alignment-based mapping to be meaningful the keys must be added in
// ascending sequence-number order.
type Reference struct {
	keys       []string
	labels     map[string]string
	subdomains map[string]string
}

// NewReference creates an empty reference table.
func NewReference() *Reference {
	return &Reference{
		labels:     make(map[string]string),
		subdomains: make(map[string]string),
	}
}

// Add appends one key/label pair to the table. The subdomain may be empty,
// in which case it is derived from the label with SubdomainKey. Duplicate
// keys and malformed AAresSeq keys are rejected.
func (ref *Reference) Add(key, label, subdomain string) error {
	if _, _, err := SplitAAresSeq(key); err != nil {
		return err
	}
	if _, ok := ref.labels[key]; ok {
		return fmt.Errorf("nomenclature: duplicate key %q in reference table", key)
	}
	if subdomain == "" {
		subdomain = SubdomainKey(label)
	}
	ref.keys = append(ref.keys, key)
	ref.labels[key] = label
	ref.subdomains[key] = subdomain
	return nil
}

// Len returns the number of entries in the table.
func (ref *Reference) Len() int {
	return len(ref.keys)
}

// Keys returns the AAresSeq keys in insertion order.
func (ref *Reference) Keys() []string {
	keys := make([]string, len(ref.keys))
	copy(keys, ref.keys)
	return keys
}

// Label returns the consensus label for an AAresSeq key.
func (ref *Reference) Label(key string) (string, bool) {
	label, ok := ref.labels[key]
	return label, ok
}

// KeyOf inverts the table: given a consensus label it returns the AAresSeq
// key carrying it, e.g. KeyOf("3.50") -> "R131".
func (ref *Reference) KeyOf(label string) (string, bool) {
	for _, key := range ref.keys {
		if ref.labels[key] == label {
			return key, true
		}
	}
	return "", false
}

// Subdomain returns the subdomain a key's label belongs to.
func (ref *Reference) Subdomain(key string) string {
	return ref.subdomains[key]
}

// Sequence builds the reference's amino acid sequence from the one-letter
// codes of its keys, in table order.
func (ref *Reference) Sequence() seq.Sequence {
	rs := make([]seq.Residue, len(ref.keys))
	for i, key := range ref.keys {
		rs[i] = seq.Residue(key[0])
	}
	return seq.Sequence{Name: "reference", Residues: rs}
}

// SeqNums returns the sequence numbers of the keys, in table order.
func (ref *Reference) SeqNums() []int {
	nums := make([]int, len(ref.keys))
	for i, key := range ref.keys {
		_, n, _ := SplitAAresSeq(key)
		nums[i] = n
	}
	return nums
}

// A SubdomainGroup is the keys of one subdomain, in table order.
type SubdomainGroup struct {
	Name string
	Keys []string
}

// SubdomainGroups returns the table's keys grouped by subdomain, groups
// ordered by first appearance.
func (ref *Reference) SubdomainGroups() []SubdomainGroup {
	var groups []SubdomainGroup
	at := make(map[string]int)
	for _, key := range ref.keys {
		name := ref.subdomains[key]
		i, ok := at[name]
		if !ok {
			i = len(groups)
			at[name] = i
			groups = append(groups, SubdomainGroup{Name: name})
		}
		groups[i].Keys = append(groups[i].Keys, key)
	}
	return groups
}

// SplitAAresSeq splits an AAresSeq key like "R131" into its one-letter
// code and sequence number.
func SplitAAresSeq(key string) (byte, int, error) {
	if len(key) < 2 {
		return 0, 0, fmt.Errorf("nomenclature: malformed AAresSeq key %q", key)
	}
	code := key[0]
	if !(code >= 'A' && code <= 'Z') {
		return 0, 0, fmt.Errorf("nomenclature: malformed AAresSeq key %q", key)
	}
	n, err := strconv.Atoi(key[1:])
	if err != nil {
		return 0, 0, fmt.Errorf("nomenclature: malformed AAresSeq key %q", key)
	}
	return code, n, nil
}

// ReadTable parses a tab-separated reference table with one
// "AAresSeq<TAB>label[<TAB>subdomain]" entry per line. Blank lines, lines
// starting with '#' and a leading header line are skipped.
func ReadTable(r io.Reader) (*Reference, error) {
	ref := NewReference()
	scanner := bufio.NewScanner(r)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) < 2 {
			return nil, fmt.Errorf("nomenclature: line %d: want at least 2 tab-separated fields, got %d", lineno, len(fields))
		}
		key := strings.TrimSpace(fields[0])
		label := strings.TrimSpace(fields[1])
		subdomain := ""
		if len(fields) > 2 {
			subdomain = strings.TrimSpace(fields[2])
		}
		if lineno == 1 {
			// Tolerate a header line ("AAresSeq	label	...").
			if _, _, err := SplitAAresSeq(key); err != nil {
				continue
			}
		}
		if err := ref.Add(key, label, subdomain); err != nil {
			return nil, fmt.Errorf("line %d: %s", lineno, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return ref, nil
}

// ReadTableFile reads a reference table from a file with ReadTable.
func ReadTableFile(fileName string) (*Reference, error) {
	f, err := os.Open(fileName)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadTable(f)
}

// WriteTable writes the table in the format ReadTable reads, so that a
// table obtained from any source can be kept for future use.
func (ref *Reference) WriteTable(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "AAresSeq\tlabel\tsubdomain")
	for _, key := range ref.keys {
		fmt.Fprintf(bw, "%s\t%s\t%s\n", key, ref.labels[key], ref.subdomains[key])
	}
	return bw.Flush()
}
