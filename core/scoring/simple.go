// core/scoring/simple.go
package scoring

// Simple is flat, branch-length independent scoring: handy for tests and
// model-free runs.
type Simple struct {
	mismatch float64
	gapOpen  float64
	gapExt   float64
}

// NewSimple returns flat costs with the given penalties.
func NewSimple(mismatch, gapOpen, gapExt float64) *Simple {
	return &Simple{mismatch: mismatch, gapOpen: gapOpen, gapExt: gapExt}
}

// BranchCosts ignores the branch length.
func (s *Simple) BranchCosts(float64) BranchCosts { return s }

func (s *Simple) Match(a, b byte) float64 {
	if a == b {
		return 0
	}
	return s.mismatch
}

func (s *Simple) GapOpen() float64 { return s.gapOpen }
func (s *Simple) GapExt() float64  { return s.gapExt }
func (s *Simple) Avg() float64     { return s.mismatch }
