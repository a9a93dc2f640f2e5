package nomenclature

import (
	"reflect"
	"testing"

	"github.com/Bio-Otto/mdciao/topology"
)

// mkTop builds a topology from one-letter codes and parallel sequence
// numbers. A '.' code yields a residue without a one-letter code.
func mkTop(t *testing.T, codes string, seqNums []int) *topology.Topology {
	t.Helper()
	if len(codes) != len(seqNums) {
		t.Fatalf("mkTop: %d codes vs %d seqNums", len(codes), len(seqNums))
	}
	top := &topology.Topology{}
	for i := 0; i < len(codes); i++ {
		r := topology.Residue{
			Index:  i,
			SeqNum: seqNums[i],
			Chain:  "A",
		}
		if codes[i] != '.' {
			r.Code = codes[i]
			r.Name = string(codes[i])
		} else {
			r.Name = "LIG"
		}
		top.Residues = append(top.Residues, r)
	}
	return top
}

func TestMapRoundTripIdentity(t *testing.T) {
	ref := mkReference(t, b2arEntries)
	top := mkTop(t, "QEERTV", []int{26, 27, 62, 63, 66, 67})

	labels, err := Map(ref, top, MapOptions{})
	if err != nil {
		t.Fatalf("Map: %s", err)
	}
	want := []string{"1.25", "1.26", "12.48", "12.49", "2.37", "2.38"}
	if !reflect.DeepEqual(labels, want) {
		t.Fatalf("got %v, want %v", labels, want)
	}
}

func TestMapLengthInvariant(t *testing.T) {
	ref := mkReference(t, b2arEntries)
	top := mkTop(t, "GGGGQEERTV", []int{1, 2, 3, 4, 26, 27, 62, 63, 66, 67})

	for _, restrict := range [][]int{nil, {4, 5, 6, 7, 8, 9}, {4, 5}} {
		labels, err := Map(ref, top, MapOptions{Restrict: restrict})
		if err != nil {
			t.Fatalf("Map(restrict=%v): %s", restrict, err)
		}
		if len(labels) != top.NResidues() {
			t.Fatalf("restrict=%v: len %d, want %d", restrict, len(labels), top.NResidues())
		}
	}
}

func TestMapRestrictGuidesLabels(t *testing.T) {
	ref := mkReference(t, b2arEntries)
	top := mkTop(t, "GGGGQEERTV", []int{1, 2, 3, 4, 26, 27, 62, 63, 66, 67})

	labels, err := Map(ref, top, MapOptions{Restrict: []int{4, 5, 6, 7, 8, 9}})
	if err != nil {
		t.Fatalf("Map: %s", err)
	}
	for idx := 0; idx < 4; idx++ {
		if labels[idx] != "" {
			t.Errorf("unselected residue %d got label %q", idx, labels[idx])
		}
	}
	if labels[4] != "1.25" || labels[9] != "2.38" {
		t.Fatalf("restricted residues mislabeled: %v", labels)
	}
}

func TestMapEmptyReference(t *testing.T) {
	top := mkTop(t, "QE", []int{1, 2})
	if _, err := Map(NewReference(), top, MapOptions{}); err != ErrEmptyReference {
		t.Fatalf("got %v, want ErrEmptyReference", err)
	}
}

func TestMapMismatchStaysUnlabeled(t *testing.T) {
	ref := mkReference(t, b2arEntries)
	// Point mutation: E27 reads as A in the input topology.
	top := mkTop(t, "QAERTV", []int{26, 27, 62, 63, 66, 67})

	labels, err := Map(ref, top, MapOptions{})
	if err != nil {
		t.Fatalf("Map: %s", err)
	}
	if labels[1] != "" {
		t.Fatalf("mutated residue labeled %q", labels[1])
	}
	if labels[0] != "1.25" || labels[2] != "12.48" {
		t.Fatalf("neighbors of the mutation mislabeled: %v", labels)
	}
}

func TestMapFillGaps(t *testing.T) {
	ref := NewReference()
	for _, e := range [][2]string{
		{"Q26", "1.25"}, {"E27", "1.26"}, {"A28", "1.27"}, {"R29", "1.28"},
	} {
		if err := ref.Add(e[0], e[1], ""); err != nil {
			t.Fatal(err)
		}
	}
	// A28 is mutated to G, leaving a gap that offset arithmetic can fill.
	top := mkTop(t, "QEGR", []int{26, 27, 28, 29})

	labels, err := Map(ref, top, MapOptions{FillGaps: true})
	if err != nil {
		t.Fatalf("Map: %s", err)
	}
	want := []string{"1.25", "1.26", "1.27", "1.28"}
	if !reflect.DeepEqual(labels, want) {
		t.Fatalf("got %v, want %v", labels, want)
	}
}

func TestLabelToIndex(t *testing.T) {
	l2i, err := LabelToIndex([]string{"1.25", "", "1.27"})
	if err != nil {
		t.Fatalf("LabelToIndex: %s", err)
	}
	if l2i["1.25"] != 0 || l2i["1.27"] != 2 {
		t.Fatalf("bad inversion: %v", l2i)
	}
	if _, ok := l2i[""]; ok {
		t.Fatal("empty label inverted")
	}
}

func TestLabelToIndexDuplicate(t *testing.T) {
	_, err := LabelToIndex([]string{"G.hfs2.2", "", "G.hfs2.2"})
	dup, ok := err.(DuplicateLabelError)
	if !ok {
		t.Fatalf("got %v, want DuplicateLabelError", err)
	}
	if dup.Label != "G.hfs2.2" || dup.First != 0 || dup.Second != 2 {
		t.Fatalf("bad error detail: %+v", dup)
	}
}

func TestDefinitions(t *testing.T) {
	ref := mkReference(t, b2arEntries)
	top := mkTop(t, "QEERTV", []int{26, 27, 62, 63, 66, 67})
	labels, err := Map(ref, top, MapOptions{})
	if err != nil {
		t.Fatalf("Map: %s", err)
	}

	defs, err := Definitions(ref, labels)
	if err != nil {
		t.Fatalf("Definitions: %s", err)
	}
	want := []Definition{
		{Name: "1", Idxs: []int{0, 1}},
		{Name: "12", Idxs: []int{2, 3}},
		{Name: "2", Idxs: []int{4, 5}},
	}
	if !reflect.DeepEqual(defs, want) {
		t.Fatalf("got %+v, want %+v", defs, want)
	}
}

func TestCompleteLoops(t *testing.T) {
	mkDef := func(name string, idxs ...int) Definition {
		return Definition{Name: name, Idxs: idxs}
	}
	defs := []Definition{
		mkDef("TM1", 20, 21, 22),
		mkDef("TM2", 30, 33, 34),
		mkDef("TM3", 40, 48),
		mkDef("TM4", 50, 56),
		mkDef("TM5", 60, 61),
		mkDef("TM6", 70),
		mkDef("TM7", 80, 81, 82, 83, 89),
		mkDef("H8", 90, 91, 92, 93, 94, 95),
	}

	out := CompleteLoops(defs)
	byName := make(map[string]Definition)
	var names []string
	for _, d := range out {
		byName[d.Name] = d
		names = append(names, d.Name)
	}

	wantOrder := []string{"TM1", "ICL1", "TM2", "ECL1", "TM3", "ICL2",
		"TM4", "ECL2", "TM5", "TM6", "ECL3", "TM7", "H8"}
	if !reflect.DeepEqual(names, wantOrder) {
		t.Fatalf("order: got %v, want %v", names, wantOrder)
	}

	spans := map[string][2]int{
		"ICL1": {23, 29},
		"ECL1": {35, 39},
		"ICL2": {49, 49},
		"ECL2": {57, 59},
		"ECL3": {71, 79},
	}
	for name, span := range spans {
		d, ok := byName[name]
		if !ok {
			t.Errorf("%s missing", name)
			continue
		}
		if d.Idxs[0] != span[0] || d.Idxs[len(d.Idxs)-1] != span[1] {
			t.Errorf("%s: got [%d, %d], want %v",
				name, d.Idxs[0], d.Idxs[len(d.Idxs)-1], span)
		}
	}
	if _, ok := byName["ICL3"]; ok {
		t.Error("ICL3 must not be added")
	}
}

func TestGuessFragments(t *testing.T) {
	ref := mkReference(t, b2arEntries)
	top := mkTop(t, "QEERTVGGGG", []int{26, 27, 62, 63, 66, 67, 100, 101, 102, 103})
	parts := [][]int{{0, 1, 2, 3, 4, 5}, {6, 7, 8, 9}}

	guess, err := GuessFragments(ref, top, parts, 0.6)
	if err != nil {
		t.Fatalf("GuessFragments: %s", err)
	}
	if !reflect.DeepEqual(guess, []int{0}) {
		t.Fatalf("got %v, want [0]", guess)
	}
}
