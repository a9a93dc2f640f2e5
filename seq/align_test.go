package seq

import (
	"testing"
)

func TestAlignIdentical(t *testing.T) {
	a := NewSequence("a", "ACDEFGHIK")
	b := NewSequence("b", "ACDEFGHIK")

	al, err := Align(a, b, DefaultAlignOptions)
	if err != nil {
		t.Fatalf("Align: %s", err)
	}
	if al.A.String() != "ACDEFGHIK" || al.B.String() != "ACDEFGHIK" {
		t.Fatalf("identical sequences realigned as %s / %s", al.A, al.B)
	}

	want := 0
	for _, r := range a.Residues {
		want += Blosum62.Score(r, r)
	}
	if al.Score != want {
		t.Fatalf("score: got %d, want %d", al.Score, want)
	}
}

func TestAlignInsertsGap(t *testing.T) {
	a := NewSequence("a", "ACDEFGHIK")
	b := NewSequence("b", "ACDEGHIK")

	al, err := Align(a, b, DefaultAlignOptions)
	if err != nil {
		t.Fatalf("Align: %s", err)
	}
	if al.Len() != 9 {
		t.Fatalf("alignment length: got %d, want 9", al.Len())
	}
	if al.A.String() != "ACDEFGHIK" {
		t.Fatalf("input side changed: %s", al.A)
	}
	if al.B.String() != "ACDE-GHIK" {
		t.Fatalf("gap misplaced: %s", al.B)
	}
}

func TestAlignDeterministic(t *testing.T) {
	a := NewSequence("a", "AAGG")
	b := NewSequence("b", "AG")

	first, err := Align(a, b, DefaultAlignOptions)
	if err != nil {
		t.Fatalf("Align: %s", err)
	}
	for i := 0; i < 10; i++ {
		again, err := Align(a, b, DefaultAlignOptions)
		if err != nil {
			t.Fatalf("Align: %s", err)
		}
		if again.A.String() != first.A.String() || again.B.String() != first.B.String() {
			t.Fatalf("alignment not deterministic: %s/%s vs %s/%s",
				first.A, first.B, again.A, again.B)
		}
	}
}

func TestAlignEmpty(t *testing.T) {
	a := NewSequence("a", "")
	b := NewSequence("b", "ACD")

	if _, err := Align(a, b, DefaultAlignOptions); err != ErrEmptySequence {
		t.Fatalf("empty A: got %v, want ErrEmptySequence", err)
	}
	if _, err := Align(b, a, DefaultAlignOptions); err != ErrEmptySequence {
		t.Fatalf("empty B: got %v, want ErrEmptySequence", err)
	}
}

func TestScoreCaseInsensitive(t *testing.T) {
	if Blosum62.Score('a', 'A') != Blosum62.Score('A', 'A') {
		t.Fatal("lower-case residue scored differently")
	}
	if Blosum62.Score('r', 'k') != Blosum62.Score('R', 'K') {
		t.Fatal("lower-case pair scored differently")
	}
}

func TestScoreUnknownIsSentinel(t *testing.T) {
	if Blosum62.Score('@', 'A') != Blosum62.Score(Sentinel, 'A') {
		t.Fatal("unknown residue not scored as the sentinel")
	}
}
