// core/align/matrices.go
package align

import (
	"math"

	"parsimony/scoring"
	"parsimony/seqs"
)

// direction identifies the DP matrix a move came from.
type direction uint8

const (
	dirNone direction = iota
	dirMatch
	dirGapInY // consume an x site against a gap in y
	dirGapInX // consume a y site against a gap in x
)

// RNG breaks ties among equal-cost directions: given n candidates it
// returns the index of the winner. Candidates keep the fixed order
// match, gap-in-y, gap-in-x.
type RNG func(n int) int

var inf = math.Inf(1)

// dpMatrices is the affine three-matrix DP state for one pairwise
// alignment.
type dpMatrices struct {
	rows, cols int
	m, x, y    [][]float64
	tm, tx, ty [][]direction
	rng        RNG
}

func newDPMatrices(rows, cols int, rng RNG) *dpMatrices {
	alloc := func() [][]float64 {
		out := make([][]float64, rows)
		for i := range out {
			out[i] = make([]float64, cols)
		}
		return out
	}
	tralloc := func() [][]direction {
		out := make([][]direction, rows)
		for i := range out {
			out[i] = make([]direction, cols)
		}
		return out
	}
	return &dpMatrices{
		rows: rows, cols: cols,
		m: alloc(), x: alloc(), y: alloc(),
		tm: tralloc(), tx: tralloc(), ty: tralloc(),
		rng: rng,
	}
}

// pick selects the cheapest predecessor, breaking exact ties uniformly.
func (d *dpMatrices) pick(vm, vx, vy float64) (float64, direction) {
	best := math.Min(vm, math.Min(vx, vy))
	if math.IsInf(best, 1) {
		return inf, dirNone
	}
	var cands [3]direction
	n := 0
	if vm == best {
		cands[n] = dirMatch
		n++
	}
	if vx == best {
		cands[n] = dirGapInY
		n++
	}
	if vy == best {
		cands[n] = dirGapInX
		n++
	}
	if n == 1 {
		return best, cands[0]
	}
	return best, cands[d.rng(n)]
}

// matchCost scores aligning two candidate sites over their two branches:
// the cheapest ancestral residue explains both children. With flat costs
// this reduces to the Fitch intersection/union rule, and the argmin set is
// the parent candidate set.
func matchCost(x SiteInfo, cx scoring.BranchCosts, y SiteInfo, cy scoring.BranchCosts) (float64, seqs.Set) {
	best := inf
	var members []byte
	for _, c := range x.Set.Union(y.Set) {
		ca := inf
		for _, a := range x.Set {
			if v := cx.Match(c, a); v < ca {
				ca = v
			}
		}
		cb := inf
		for _, b := range y.Set {
			if v := cy.Match(c, b); v < cb {
				cb = v
			}
		}
		switch total := ca + cb; {
		case total < best:
			best = total
			members = append(members[:0], c)
		case total == best:
			members = append(members, c)
		}
	}
	return best, seqs.NewSet(members...)
}

// gapCost returns the price of consuming site info[i-1] against a gap,
// arriving from each of the three matrices. Flagged sites are free: their
// gap was paid for lower in the tree. A real gap extends only across a
// run of real gap columns; after freely skipped sites it re-opens.
func gapCost(info []SiteInfo, i int, c scoring.BranchCosts) (fromM, fromSame, fromOther float64) {
	if info[i-1].freeGap() {
		return 0, 0, 0
	}
	ext := c.GapOpen()
	if i >= 2 && info[i-2].Flag == NoGap {
		ext = c.GapExt()
	}
	return c.GapOpen(), ext, c.GapOpen()
}

// fill computes all three matrices for x (rows) against y (cols).
func (d *dpMatrices) fill(xinfo []SiteInfo, cx scoring.BranchCosts, yinfo []SiteInfo, cy scoring.BranchCosts) {
	d.m[0][0], d.x[0][0], d.y[0][0] = 0, 0, 0

	for i := 1; i < d.rows; i++ {
		d.m[i][0], d.y[i][0] = inf, inf
		om, os, oo := gapCost(xinfo, i, cx)
		d.x[i][0], d.tx[i][0] = d.pick(d.m[i-1][0]+om, d.x[i-1][0]+os, d.y[i-1][0]+oo)
	}
	for j := 1; j < d.cols; j++ {
		d.m[0][j], d.x[0][j] = inf, inf
		om, os, oo := gapCost(yinfo, j, cy)
		d.y[0][j], d.ty[0][j] = d.pick(d.m[0][j-1]+om, d.x[0][j-1]+oo, d.y[0][j-1]+os)
	}

	for i := 1; i < d.rows; i++ {
		for j := 1; j < d.cols; j++ {
			if xinfo[i-1].Flag == GapFixed || yinfo[j-1].Flag == GapFixed {
				// confirmed gaps never align to residues
				d.m[i][j], d.tm[i][j] = inf, dirNone
			} else {
				mc, _ := matchCost(xinfo[i-1], cx, yinfo[j-1], cy)
				best, dir := d.pick(d.m[i-1][j-1], d.x[i-1][j-1], d.y[i-1][j-1])
				d.m[i][j], d.tm[i][j] = best+mc, dir
			}

			om, os, oo := gapCost(xinfo, i, cx)
			d.x[i][j], d.tx[i][j] = d.pick(d.m[i-1][j]+om, d.x[i-1][j]+os, d.y[i-1][j]+oo)

			om, os, oo = gapCost(yinfo, j, cy)
			d.y[i][j], d.ty[i][j] = d.pick(d.m[i][j-1]+om, d.x[i][j-1]+oo, d.y[i][j-1]+os)
		}
	}
}

// traceback recovers the parent site infos and the pairwise site maps.
func (d *dpMatrices) traceback(xinfo []SiteInfo, cx scoring.BranchCosts, yinfo []SiteInfo, cy scoring.BranchCosts) ([]SiteInfo, Alignment, float64) {
	i, j := d.rows-1, d.cols-1
	score, cur := d.pick(d.m[i][j], d.x[i][j], d.y[i][j])
	if cur == dirNone { // both inputs empty
		return nil, Alignment{}, 0
	}

	var (
		sites      []SiteInfo
		mapX, mapY []int
	)
	for i > 0 || j > 0 {
		switch cur {
		case dirMatch:
			_, set := matchCost(xinfo[i-1], cx, yinfo[j-1], cy)
			sites = append(sites, SiteInfo{Set: set, Flag: NoGap})
			mapX = append(mapX, i-1)
			mapY = append(mapY, j-1)
			cur = d.tm[i][j]
			i--
			j--
		case dirGapInY:
			site := xinfo[i-1]
			flag := gapFlag(site, xinfo, i, cur, d.tx[i][j])
			sites = append(sites, SiteInfo{Set: site.Set, Flag: flag})
			mapX = append(mapX, i-1)
			mapY = append(mapY, Gap)
			cur = d.tx[i][j]
			i--
		case dirGapInX:
			site := yinfo[j-1]
			flag := gapFlag(site, yinfo, j, cur, d.ty[i][j])
			sites = append(sites, SiteInfo{Set: site.Set, Flag: flag})
			mapX = append(mapX, Gap)
			mapY = append(mapY, j-1)
			cur = d.ty[i][j]
			j--
		}
	}

	reverseSites(sites)
	reverseInts(mapX)
	reverseInts(mapY)
	return sites, Alignment{MapX: mapX, MapY: mapY}, score
}

// gapFlag labels the parent column for a site consumed against a gap.
func gapFlag(site SiteInfo, info []SiteInfo, i int, cur, pred direction) SiteFlag {
	if site.freeGap() {
		return GapFixed
	}
	if pred == cur && i >= 2 && info[i-2].Flag == NoGap {
		return GapExt
	}
	return GapOpen
}

func reverseSites(s []SiteInfo) {
	for l, r := 0, len(s)-1; l < r; l, r = l+1, r-1 {
		s[l], s[r] = s[r], s[l]
	}
}

func reverseInts(s []int) {
	for l, r := 0, len(s)-1; l < r; l, r = l+1, r-1 {
		s[l], s[r] = s[r], s[l]
	}
}
