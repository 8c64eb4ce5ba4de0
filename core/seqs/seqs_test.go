// core/seqs/seqs_test.go
package seqs

import "testing"

func TestDetectType(t *testing.T) {
	tests := []struct {
		name string
		seqs []string
		want Type
	}{
		{"plain dna", []string{"ACGT", "ttga"}, DNA},
		{"dna with ambiguity", []string{"ACGTN", "RYSWKM"}, DNA},
		{"rna maps to dna", []string{"ACGU"}, DNA},
		{"protein", []string{"MKVL", "ACDEFGHIKLMNPQRSTVWY"}, Protein},
		{"single protein residue flips the set", []string{"ACGT", "ACGTE"}, Protein},
		{"gaps ignored", []string{"AC-GT"}, DNA},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			recs := make([][]byte, len(tc.seqs))
			for i, s := range tc.seqs {
				recs[i] = []byte(s)
			}
			if got := DetectType(recs); got != tc.want {
				t.Errorf("DetectType = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestParsimonySetsDNA(t *testing.T) {
	sets := ParsimonySets([]byte("aR-N"), DNA)
	if len(sets) != 3 {
		t.Fatalf("expected gap to be dropped, got %d sets", len(sets))
	}
	if !sets[0].Equal(NewSet('A')) {
		t.Errorf("a -> %q", sets[0])
	}
	if !sets[1].Equal(NewSet('A', 'G')) {
		t.Errorf("R -> %q", sets[1])
	}
	if !sets[2].Equal(NewSet([]byte(NucleotideAlphabet)...)) {
		t.Errorf("N -> %q", sets[2])
	}
}

func TestParsimonySetsProtein(t *testing.T) {
	sets := ParsimonySets([]byte("MBZX"), Protein)
	if !sets[0].Equal(NewSet('M')) {
		t.Errorf("M -> %q", sets[0])
	}
	if !sets[1].Equal(NewSet('D', 'N')) {
		t.Errorf("B -> %q", sets[1])
	}
	if !sets[2].Equal(NewSet('E', 'Q')) {
		t.Errorf("Z -> %q", sets[2])
	}
	if len(sets[3]) != 20 {
		t.Errorf("X should expand to the full alphabet, got %d members", len(sets[3]))
	}
}

func TestSetOps(t *testing.T) {
	a := NewSet('C', 'A')
	b := NewSet('A', 'G')
	if got := a.Union(b); !got.Equal(NewSet('A', 'C', 'G')) {
		t.Errorf("Union = %q", got)
	}
	if a.Equal(b) {
		t.Error("disjoint-ish sets reported equal")
	}
	if !NewSet('t', 'c').Equal(NewSet('C', 'T')) {
		t.Error("case and order should not affect equality")
	}
}
