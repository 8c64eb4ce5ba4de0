// core/align/alignment.go
package align

// Gap marks a gap position in a site map.
const Gap = -1

// Alignment is a pairwise site map: column k of the parent aligns site
// MapX[k] of the first child with site MapY[k] of the second (Gap = none).
type Alignment struct {
	MapX []int
	MapY []int
}

// Len returns the number of columns.
func (a Alignment) Len() int { return len(a.MapX) }
