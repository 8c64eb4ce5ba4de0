// core/scoring/costs.go
package scoring

// GapMultipliers scales the branch-average substitution cost into affine
// gap penalties.
type GapMultipliers struct {
	Open float64
	Ext  float64
}

// Costs hands out branch-specific scoring.
type Costs interface {
	BranchCosts(branchLen float64) BranchCosts
}

// BranchCosts scores events on a single branch.
type BranchCosts interface {
	// Match is the cost of ancestor residue a evolving into descendant
	// residue b along the branch.
	Match(a, b byte) float64
	GapOpen() float64
	GapExt() float64
	Avg() float64
}
