// core/model/model.go
package model

import (
	"fmt"
	"math"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"
)

// SubstModel is a time-reversible substitution model over a residue
// alphabet, normalized to one expected substitution per unit branch length.
type SubstModel struct {
	Name     string
	Alphabet string
	Freqs    []float64
	Q        *mat.Dense

	index [256]int

	// eigendecomposition of the symmetrized generator, computed lazily
	// and reused across P(t) evaluations
	once    sync.Once
	eigErr  error
	eigVals []float64
	eigVecs *mat.Dense
}

func newModel(name, alphabet string, freqs []float64, q *mat.Dense) *SubstModel {
	m := &SubstModel{Name: name, Alphabet: alphabet, Freqs: freqs, Q: q}
	for i := range m.index {
		m.index[i] = -1
	}
	for i := 0; i < len(alphabet); i++ {
		c := alphabet[i]
		m.index[c] = i
		if 'A' <= c && c <= 'Z' {
			m.index[c-'A'+'a'] = i
		}
	}
	m.normalize()
	return m
}

// Index maps a residue to its matrix row/column, -1 when out of alphabet.
func (m *SubstModel) Index(c byte) int { return m.index[c] }

// normalize scales Q so that the mean substitution rate is 1.
func (m *SubstModel) normalize() {
	n := len(m.Freqs)
	rate := 0.0
	for i := 0; i < n; i++ {
		rate -= m.Freqs[i] * m.Q.At(i, i)
	}
	if rate <= 0 {
		return
	}
	m.Q.Scale(1/rate, m.Q)
}

// decompose computes the eigendecomposition of the symmetrized generator
// B = D^1/2 Q D^-1/2 (symmetric for reversible models).
func (m *SubstModel) decompose() {
	n := len(m.Freqs)
	b := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			v := m.Q.At(i, j) * math.Sqrt(m.Freqs[i]/m.Freqs[j])
			b.SetSym(i, j, v)
		}
	}
	var eig mat.EigenSym
	if !eig.Factorize(b, true) {
		m.eigErr = fmt.Errorf("model %s: eigendecomposition failed", m.Name)
		return
	}
	m.eigVals = eig.Values(nil)
	var ev mat.Dense
	eig.VectorsTo(&ev)
	m.eigVecs = &ev
}

// Prob returns the transition probability matrix P(t) = exp(Qt).
func (m *SubstModel) Prob(t float64) (*mat.Dense, error) {
	if t < 0 {
		return nil, fmt.Errorf("model %s: negative time %v", m.Name, t)
	}
	m.once.Do(m.decompose)
	if m.eigErr != nil {
		return nil, m.eigErr
	}
	n := len(m.Freqs)
	p := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			sum := 0.0
			for k := 0; k < n; k++ {
				sum += m.eigVecs.At(i, k) * math.Exp(m.eigVals[k]*t) * m.eigVecs.At(j, k)
			}
			p.Set(i, j, sum*math.Sqrt(m.Freqs[j]/m.Freqs[i]))
		}
	}
	return p, nil
}

// Scoring is a per-branch-category parsimony scoring matrix.
type Scoring struct {
	Costs *mat.Dense
	Avg   float64
}

// GenerateScorings derives -log transition cost matrices for each branch
// length category. Categories are independent and computed concurrently.
func (m *SubstModel) GenerateScorings(times []float64, zeroDiag bool, r Rounding) (map[float64]Scoring, error) {
	out := make([]Scoring, len(times))
	var g errgroup.Group
	for i, t := range times {
		i, t := i, t
		g.Go(func() error {
			s, err := m.scoring(t, zeroDiag, r)
			if err != nil {
				return err
			}
			out[i] = s
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	scorings := make(map[float64]Scoring, len(times))
	for i, t := range times {
		scorings[t] = out[i]
	}
	return scorings, nil
}

func (m *SubstModel) scoring(t float64, zeroDiag bool, r Rounding) (Scoring, error) {
	p, err := m.Prob(t)
	if err != nil {
		return Scoring{}, err
	}
	n := len(m.Freqs)
	costs := mat.NewDense(n, n, nil)
	sum := 0.0
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			pij := p.At(i, j)
			if pij < 1e-15 { // guard against decomposition noise
				pij = 1e-15
			}
			c := r.Apply(-math.Log(pij))
			if zeroDiag && i == j {
				c = 0
			}
			costs.Set(i, j, c)
			sum += c
		}
	}
	return Scoring{Costs: costs, Avg: sum / float64(n*n)}, nil
}

// PercentileTimes buckets branch lengths into categories representative
// values: linear-interpolated quantiles at k/(categories+1).
func PercentileTimes(lengths []float64, categories int, r Rounding) []float64 {
	if len(lengths) == 0 || categories < 1 {
		return nil
	}
	sorted := append([]float64(nil), lengths...)
	sort.Float64s(sorted)
	out := make([]float64, 0, categories)
	for k := 1; k <= categories; k++ {
		q := float64(k) / float64(categories+1)
		pos := q * float64(len(sorted)-1)
		lo := int(math.Floor(pos))
		hi := int(math.Ceil(pos))
		v := sorted[lo]
		if hi > lo {
			frac := pos - float64(lo)
			v = sorted[lo]*(1-frac) + sorted[hi]*frac
		}
		out = append(out, r.Apply(v))
	}
	return out
}
