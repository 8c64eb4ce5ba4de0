// core/align/info.go
package align

import (
	"fmt"

	"parsimony/fasta"
	"parsimony/tree"
)

// Info pairs a tree with the leaf sequences, ordered so that
// Sequences[i] belongs to Tree.Leaves[i].
type Info struct {
	Tree      *tree.Tree
	Sequences []fasta.Record
}

// NewInfo validates a tree/sequence pairing. Sequences are matched to
// leaves by ID and reordered into leaf order; when the tree carries no
// leaf labels they pair up by position instead.
func NewInfo(t *tree.Tree, records []fasta.Record) (*Info, error) {
	if t == nil {
		return nil, fmt.Errorf("align: nil tree")
	}
	if len(records) != len(t.Leaves) {
		return nil, fmt.Errorf("align: %d sequences for %d tree leaves", len(records), len(t.Leaves))
	}
	byID := make(map[string]int, len(records))
	for i, r := range records {
		if len(r.Seq) == 0 {
			return nil, fmt.Errorf("align: sequence %q is empty", r.ID)
		}
		if _, dup := byID[r.ID]; dup {
			return nil, fmt.Errorf("align: duplicate sequence id %q", r.ID)
		}
		byID[r.ID] = i
	}

	if unlabelled(t) {
		return &Info{Tree: t, Sequences: records}, nil
	}

	ordered := make([]fasta.Record, len(t.Leaves))
	for i, leaf := range t.Leaves {
		j, ok := byID[leaf.ID]
		if !ok {
			return nil, fmt.Errorf("align: no sequence for tree leaf %q", leaf.ID)
		}
		ordered[i] = records[j]
	}
	return &Info{Tree: t, Sequences: ordered}, nil
}

func unlabelled(t *tree.Tree) bool {
	for _, leaf := range t.Leaves {
		if leaf.ID != "" {
			return false
		}
	}
	return true
}

func (in *Info) rawSeqs() [][]byte {
	out := make([][]byte, len(in.Sequences))
	for i, r := range in.Sequences {
		out[i] = r.Seq
	}
	return out
}
