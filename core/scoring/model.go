// core/scoring/model.go
package scoring

import (
	"fmt"
	"sort"

	"parsimony/model"
)

// Model scores branches from a substitution model: branch lengths snap to
// the nearest percentile category, each category carrying a precomputed
// -log transition cost matrix.
type Model struct {
	times []float64 // sorted ascending
	costs map[float64]*branchCosts
}

// NewDNAModel derives model-based scoring for nucleotide data.
func NewDNAModel(name string, params []float64, gm GapMultipliers, times []float64, zeroDiag bool, r model.Rounding) (*Model, error) {
	m, err := model.NewDNA(name, params)
	if err != nil {
		return nil, err
	}
	return fromSubstModel(m, gm, times, zeroDiag, r)
}

// NewProteinModel derives model-based scoring for amino acid data.
func NewProteinModel(name string, gm GapMultipliers, times []float64, zeroDiag bool, r model.Rounding) (*Model, error) {
	m, err := model.NewProtein(name)
	if err != nil {
		return nil, err
	}
	return fromSubstModel(m, gm, times, zeroDiag, r)
}

func fromSubstModel(m *model.SubstModel, gm GapMultipliers, times []float64, zeroDiag bool, r model.Rounding) (*Model, error) {
	if len(times) == 0 {
		return nil, fmt.Errorf("scoring: no branch length categories")
	}
	if gm.Open <= 0 || gm.Ext <= 0 {
		return nil, fmt.Errorf("scoring: gap multipliers must be positive, got open=%v ext=%v", gm.Open, gm.Ext)
	}
	scorings, err := m.GenerateScorings(times, zeroDiag, r)
	if err != nil {
		return nil, err
	}
	out := &Model{
		times: append([]float64(nil), times...),
		costs: make(map[float64]*branchCosts, len(times)),
	}
	sort.Float64s(out.times)
	for t, s := range scorings {
		out.costs[t] = &branchCosts{
			model:   m,
			scoring: s,
			open:    gm.Open * s.Avg,
			ext:     gm.Ext * s.Avg,
		}
	}
	return out, nil
}

// BranchCosts returns the scoring of the category closest to branchLen;
// equidistant lengths resolve to the shorter category.
func (mc *Model) BranchCosts(branchLen float64) BranchCosts {
	return mc.costs[mc.closestTime(branchLen)]
}

func (mc *Model) closestTime(target float64) float64 {
	// The epsilon keeps exact midpoints on the smaller category: the two
	// distances are computed with opposite rounding errors, so a strict
	// comparison can flip ties to the larger side.
	const eps = 1e-12
	best := mc.times[0]
	for i := 0; i+1 < len(mc.times); i++ {
		if target-mc.times[i] > mc.times[i+1]-target+eps {
			best = mc.times[i+1]
		}
	}
	return best
}

type branchCosts struct {
	model   *model.SubstModel
	scoring model.Scoring
	open    float64
	ext     float64
}

func (b *branchCosts) Match(a, c byte) float64 {
	i, j := b.model.Index(a), b.model.Index(c)
	if i < 0 || j < 0 {
		// residues outside the model alphabet never reach here via
		// parsimony sets; treat as maximally costly if they do
		return b.open + b.ext
	}
	return b.scoring.Costs.At(i, j)
}

func (b *branchCosts) GapOpen() float64 { return b.open }
func (b *branchCosts) GapExt() float64  { return b.ext }
func (b *branchCosts) Avg() float64     { return b.scoring.Avg }
