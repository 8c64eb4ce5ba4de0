// core/newick/parser_test.go
package newick

import (
	"testing"

	"parsimony/tree"
)

func TestParseCherry(t *testing.T) {
	tr, err := Parse("(A:0.1,B:0.2):0.0;")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(tr.Leaves) != 2 || len(tr.Internals) != 1 {
		t.Fatalf("unexpected shape: %d leaves, %d internals", len(tr.Leaves), len(tr.Internals))
	}
	if tr.Leaves[0].ID != "A" || tr.Leaves[1].ID != "B" {
		t.Errorf("leaf ids = %q, %q", tr.Leaves[0].ID, tr.Leaves[1].ID)
	}
	if tr.Leaves[0].BranchLen != 0.1 || tr.Leaves[1].BranchLen != 0.2 {
		t.Errorf("branch lengths = %v, %v", tr.Leaves[0].BranchLen, tr.Leaves[1].BranchLen)
	}
	if tr.Root != tree.Internal(0) {
		t.Errorf("root = %v", tr.Root)
	}
}

func TestParseNested(t *testing.T) {
	tr, err := Parse("((A:1,B:1)ab:0.5,(C:1,'D d':1):0.5)root;")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(tr.Leaves) != 4 || len(tr.Internals) != 3 {
		t.Fatalf("unexpected shape: %d leaves, %d internals", len(tr.Leaves), len(tr.Internals))
	}
	if tr.Leaves[3].ID != "D d" {
		t.Errorf("quoted label = %q, want %q", tr.Leaves[3].ID, "D d")
	}
	if tr.Internals[0].ID != "ab" {
		t.Errorf("internal label = %q", tr.Internals[0].ID)
	}
	root := tr.Node(tr.Root)
	if root.ID != "root" {
		t.Errorf("root label = %q", root.ID)
	}
	if got := len(tr.Postorder); got != 7 {
		t.Errorf("postorder length = %d, want 7", got)
	}
}

func TestParseDefaultsAndComments(t *testing.T) {
	tr, err := Parse("[tree 1] (A,B);")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if tr.Leaves[0].BranchLen != 0 || tr.Leaves[1].BranchLen != 0 {
		t.Error("missing branch lengths should default to 0")
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"polytomy", "(A:1,B:1,C:1);"},
		{"single taxon", "A:1;"},
		{"missing semicolon", "(A:1,B:1)"},
		{"unbalanced", "((A:1,B:1);"},
		{"trailing garbage", "(A:1,B:1); x"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Parse(tc.in); err == nil {
				t.Errorf("expected error for %q", tc.in)
			}
		})
	}
}
