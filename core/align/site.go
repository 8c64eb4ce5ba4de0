// core/align/site.go
package align

import "parsimony/seqs"

// SiteFlag records the gap status a site acquired lower in the tree.
type SiteFlag uint8

const (
	// NoGap marks a plain residue site.
	NoGap SiteFlag = iota
	// GapOpen marks a site that opened a gap in one child; the gap may
	// still be undone higher up.
	GapOpen
	// GapExt marks a site continuing such a gap.
	GapExt
	// GapFixed marks a site whose gap was confirmed: it aligns against
	// gaps all the way to the root, at no further cost.
	GapFixed
)

func (f SiteFlag) String() string {
	switch f {
	case GapOpen:
		return "gap-open"
	case GapExt:
		return "gap-ext"
	case GapFixed:
		return "gap-fixed"
	default:
		return "no-gap"
	}
}

// SiteInfo is one alignment column candidate: the residue set and the gap
// status inherited from the subtree below it.
type SiteInfo struct {
	Set  seqs.Set
	Flag SiteFlag
}

// NewLeafSite wraps a leaf residue set.
func NewLeafSite(set seqs.Set) SiteInfo { return SiteInfo{Set: set, Flag: NoGap} }

// freeGap reports whether consuming the site against a gap costs nothing:
// the gap was already paid for (possible) or confirmed (fixed) below.
func (s SiteInfo) freeGap() bool { return s.Flag != NoGap }
