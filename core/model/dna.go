// core/model/dna.go
package model

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/mat"

	"parsimony/seqs"
)

// Nucleotide indices follow seqs.NucleotideAlphabet (T, C, A, G).
const (
	nT = iota
	nC
	nA
	nG
)

// NewDNA builds a DNA substitution model.
//
// Supported models and parameter layouts (matching the CLI help):
//
//	JC69  —
//	K80   alpha beta (default 2 1)
//	HKY   f_t f_c f_a f_g alpha beta
//	GTR   f_t f_c f_a f_g r_tc r_ta r_tg r_ca r_cg r_ag
func NewDNA(name string, params []float64) (*SubstModel, error) {
	var (
		freqs []float64
		exch  [4][4]float64
	)
	canon := strings.ToLower(name)
	switch canon {
	case "jc69":
		if len(params) != 0 {
			return nil, fmt.Errorf("model jc69 takes no parameters, got %d", len(params))
		}
		freqs = uniformFreqs(4)
		exch = kappaExchange(1, 1)
	case "k80":
		alpha, beta := 2.0, 1.0
		switch len(params) {
		case 0:
		case 2:
			alpha, beta = params[0], params[1]
		default:
			return nil, fmt.Errorf("model k80 takes alpha and beta, got %d parameters", len(params))
		}
		freqs = uniformFreqs(4)
		exch = kappaExchange(alpha, beta)
	case "hky":
		if len(params) != 6 {
			return nil, fmt.Errorf("model hky takes f_t f_c f_a f_g alpha beta, got %d parameters", len(params))
		}
		var err error
		if freqs, err = checkFreqs(params[:4]); err != nil {
			return nil, err
		}
		exch = kappaExchange(params[4], params[5])
	case "gtr":
		if len(params) != 10 {
			return nil, fmt.Errorf("model gtr takes f_t f_c f_a f_g r_tc r_ta r_tg r_ca r_cg r_ag, got %d parameters", len(params))
		}
		var err error
		if freqs, err = checkFreqs(params[:4]); err != nil {
			return nil, err
		}
		r := params[4:]
		exch[nT][nC], exch[nT][nA], exch[nT][nG] = r[0], r[1], r[2]
		exch[nC][nA], exch[nC][nG] = r[3], r[4]
		exch[nA][nG] = r[5]
		mirror(&exch)
	default:
		return nil, fmt.Errorf("unknown DNA model %q", name)
	}
	q := rateMatrix(freqs, exch[:])
	return newModel(canon, seqs.NucleotideAlphabet, freqs, q), nil
}

func uniformFreqs(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = 1 / float64(n)
	}
	return out
}

func checkFreqs(f []float64) ([]float64, error) {
	sum := 0.0
	for _, v := range f {
		if v <= 0 {
			return nil, fmt.Errorf("frequencies must be positive, got %v", v)
		}
		sum += v
	}
	if math.Abs(sum-1) > 1e-6 {
		return nil, fmt.Errorf("frequencies must sum to 1, got %v", sum)
	}
	return append([]float64(nil), f...), nil
}

// kappaExchange builds the transition/transversion exchangeability pattern:
// T<->C and A<->G at rate alpha, the rest at beta.
func kappaExchange(alpha, beta float64) [4][4]float64 {
	var e [4][4]float64
	for i := 0; i < 4; i++ {
		for j := i + 1; j < 4; j++ {
			e[i][j] = beta
		}
	}
	e[nT][nC] = alpha
	e[nA][nG] = alpha
	mirror(&e)
	return e
}

func mirror(e *[4][4]float64) {
	for i := 0; i < 4; i++ {
		for j := i + 1; j < 4; j++ {
			e[j][i] = e[i][j]
		}
	}
}

// rateMatrix assembles Q from exchangeabilities and frequencies:
// q_ij = s_ij * pi_j, diagonal set so rows sum to zero.
func rateMatrix(freqs []float64, exch [][4]float64) *mat.Dense {
	n := len(freqs)
	q := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		row := 0.0
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			v := exch[i][j] * freqs[j]
			q.Set(i, j, v)
			row += v
		}
		q.Set(i, i, -row)
	}
	return q
}
