// core/align/align.go
package align

import (
	"math/rand"

	"go.uber.org/zap"

	"parsimony/scoring"
	"parsimony/seqs"
	"parsimony/tree"
)

// Config configures an Aligner. Costs is required; Logger defaults to a
// nop logger and RNG to a uniform source.
type Config struct {
	Costs  scoring.Costs
	Logger *zap.Logger
	RNG    RNG
}

// Aligner runs indel-aware parsimony alignment over a tree.
type Aligner struct {
	costs  scoring.Costs
	logger *zap.Logger
	rng    RNG
}

// New builds an Aligner from c.
func New(c Config) *Aligner {
	if c.Logger == nil {
		c.Logger = zap.NewNop()
	}
	if c.RNG == nil {
		c.RNG = rand.Intn
	}
	return &Aligner{costs: c.Costs, logger: c.Logger, rng: c.RNG}
}

// AlignPair aligns two site info vectors over their branches and returns
// the parent site infos, the pairwise site maps and the alignment cost.
func (a *Aligner) AlignPair(xinfo []SiteInfo, cx scoring.BranchCosts, yinfo []SiteInfo, cy scoring.BranchCosts) ([]SiteInfo, Alignment, float64) {
	a.logger.Debug("pairwise alignment",
		zap.Int("x_len", len(xinfo)),
		zap.Int("y_len", len(yinfo)),
		zap.Float64("x_avg", cx.Avg()),
		zap.Float64("x_gap_open", cx.GapOpen()),
		zap.Float64("x_gap_ext", cx.GapExt()),
		zap.Float64("y_avg", cy.Avg()),
		zap.Float64("y_gap_open", cy.GapOpen()),
		zap.Float64("y_gap_ext", cy.GapExt()),
	)
	d := newDPMatrices(len(xinfo)+1, len(yinfo)+1, a.rng)
	d.fill(xinfo, cx, yinfo, cy)
	return d.traceback(xinfo, cx, yinfo, cy)
}

// AlignOnTree aligns all sequences progressively along the postorder of
// info's tree. It returns one pairwise alignment and one score per
// internal node, indexed like Tree.Internals.
func (a *Aligner) AlignOnTree(info *Info) ([]Alignment, []float64) {
	a.logger.Info("starting indel-aware parsimony alignment")

	t := info.Tree
	seqType := seqs.DetectType(info.rawSeqs())

	internalInfo := make([][]SiteInfo, len(t.Internals))
	leafInfo := make([][]SiteInfo, len(t.Leaves))
	alignments := make([]Alignment, len(t.Internals))
	scores := make([]float64, len(t.Internals))

	for _, nodeIdx := range t.Postorder {
		if !nodeIdx.Internal {
			sets := seqs.ParsimonySets(info.Sequences[nodeIdx.Idx].Seq, seqType)
			sites := make([]SiteInfo, len(sets))
			for i, s := range sets {
				sites[i] = NewLeafSite(s)
			}
			leafInfo[nodeIdx.Idx] = sites
			a.logger.Debug("processed leaf",
				zap.String("node", nodeIdx.String()+t.NodeID(nodeIdx)),
				zap.Int("sites", len(sites)))
			continue
		}

		node := t.Node(nodeIdx)
		xinfo, xlen := a.childInfo(node.Children[0], internalInfo, leafInfo, t)
		yinfo, ylen := a.childInfo(node.Children[1], internalInfo, leafInfo, t)
		a.logger.Info("aligning children",
			zap.String("node", nodeIdx.String()+t.NodeID(nodeIdx)),
			zap.String("x", node.Children[0].String()),
			zap.Float64("x_blen", xlen),
			zap.String("y", node.Children[1].String()),
			zap.Float64("y_blen", ylen))

		sites, alignment, score := a.AlignPair(
			xinfo, a.costs.BranchCosts(xlen),
			yinfo, a.costs.BranchCosts(ylen),
		)
		internalInfo[nodeIdx.Idx] = sites
		alignments[nodeIdx.Idx] = alignment
		scores[nodeIdx.Idx] = score
		a.logger.Info("node aligned",
			zap.String("node", nodeIdx.String()+t.NodeID(nodeIdx)),
			zap.Float64("score", score))
	}
	a.logger.Info("finished indel-aware parsimony alignment")
	return alignments, scores
}

func (a *Aligner) childInfo(child tree.NodeIdx, internalInfo, leafInfo [][]SiteInfo, t *tree.Tree) ([]SiteInfo, float64) {
	if child.Internal {
		return internalInfo[child.Idx], t.Internals[child.Idx].BranchLen
	}
	return leafInfo[child.Idx], t.Leaves[child.Idx].BranchLen
}
