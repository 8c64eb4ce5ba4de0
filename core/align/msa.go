// core/align/msa.go
package align

import (
	"sort"

	"parsimony/fasta"
	"parsimony/seqs"
	"parsimony/tree"
)

// CompileMSA expands the per-node pairwise alignments into the full
// multiple sequence alignment of the subtree rooted at subroot (the whole
// tree when subroot is nil). Rows come back in the order of
// info.Sequences.
func CompileMSA(info *Info, alignments []Alignment, subroot *tree.NodeIdx) []fasta.Record {
	t := info.Tree
	root := t.Root
	if subroot != nil {
		root = *subroot
	}
	if !root.Internal {
		return []fasta.Record{info.Sequences[root.Idx]}
	}

	// Maps every node to the parent columns its sites occupy; leaves sit
	// after the internals.
	stack := make([][]int, len(t.Internals)+len(t.Leaves))
	rootMap := make([]int, alignments[root.Idx].Len())
	for i := range rootMap {
		rootMap[i] = i
	}
	stack[root.Idx] = rootMap

	msa := make([]fasta.Record, 0, len(t.Leaves))
	for _, nodeIdx := range t.PreorderSubroot(root) {
		if nodeIdx.Internal {
			idx := nodeIdx.Idx
			cols := stack[idx]
			paddedX := make([]int, len(cols))
			paddedY := make([]int, len(cols))
			for k, site := range cols {
				if site == Gap {
					paddedX[k], paddedY[k] = Gap, Gap
				} else {
					paddedX[k] = alignments[idx].MapX[site]
					paddedY[k] = alignments[idx].MapY[site]
				}
			}
			stack[stackIdx(t, t.Internals[idx].Children[0])] = paddedX
			stack[stackIdx(t, t.Internals[idx].Children[1])] = paddedY
			continue
		}

		cols := stack[stackIdx(t, nodeIdx)]
		row := make([]byte, len(cols))
		for k, site := range cols {
			if site == Gap {
				row[k] = seqs.GapChar
			} else {
				row[k] = info.Sequences[nodeIdx.Idx].Seq[site]
			}
		}
		rec := info.Sequences[nodeIdx.Idx]
		msa = append(msa, fasta.Record{ID: rec.ID, Desc: rec.Desc, Seq: row})
	}

	order := make(map[string]int, len(info.Sequences))
	for i, r := range info.Sequences {
		order[r.ID] = i
	}
	sort.SliceStable(msa, func(a, b int) bool { return order[msa[a].ID] < order[msa[b].ID] })
	return msa
}

func stackIdx(t *tree.Tree, idx tree.NodeIdx) int {
	if idx.Internal {
		return idx.Idx
	}
	return len(t.Internals) + idx.Idx
}
