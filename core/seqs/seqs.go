// core/seqs/seqs.go
package seqs

import (
	"bytes"
	"sort"
)

// Type is the molecular alphabet of an input data set.
type Type int

const (
	DNA Type = iota
	Protein
)

func (t Type) String() string {
	if t == DNA {
		return "DNA"
	}
	return "protein"
}

// PAML residue orders; scoring matrices are indexed in these orders.
const (
	NucleotideAlphabet = "TCAG"
	AminoAcidAlphabet  = "ARNDCQEGHILKMFPSTWYV"
)

const GapChar = '-'

/* -------------------------- IUPAC lookup table -------------------------- */

// dnaExpand maps an (uppercase) nucleotide code to its candidate bases.
var dnaExpand = map[byte]string{
	'T': "T", 'C': "C", 'A': "A", 'G': "G",
	'U': "T",
	'R': "AG", 'Y': "CT", 'S': "CG", 'W': "AT", 'K': "GT", 'M': "AC",
	'B': "CGT", 'D': "AGT", 'H': "ACT", 'V': "ACG",
	'N': NucleotideAlphabet, 'X': NucleotideAlphabet,
}

// proteinExpand maps amino acid ambiguity codes to their candidates.
var proteinExpand = map[byte]string{
	'B': "DN", 'Z': "EQ", 'J': "IL",
	'X': AminoAcidAlphabet,
}

func upper(c byte) byte {
	if 'a' <= c && c <= 'z' {
		return c - 'a' + 'A'
	}
	return c
}

// DetectType reports DNA when every residue of every sequence is a
// nucleotide or nucleotide ambiguity code, protein otherwise.
func DetectType(records [][]byte) Type {
	for _, seq := range records {
		for _, c := range seq {
			c = upper(c)
			if c == GapChar {
				continue
			}
			if _, ok := dnaExpand[c]; !ok {
				return Protein
			}
		}
	}
	return DNA
}

/* ----------------------------- candidate sets ---------------------------- */

// Set holds the candidate residues of a single site: uppercase bytes in
// ascending order.
type Set []byte

// NewSet builds a normalized (deduplicated, sorted, uppercased) set.
func NewSet(members ...byte) Set {
	out := make(Set, 0, len(members))
	for _, m := range members {
		m = upper(m)
		if !out.Contains(m) {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Contains reports whether c is a member of s.
func (s Set) Contains(c byte) bool { return bytes.IndexByte(s, c) >= 0 }

// Union returns the members of s or o.
func (s Set) Union(o Set) Set {
	return NewSet(append(append([]byte(nil), s...), o...)...)
}

// Equal reports whether the two sets have identical members.
func (s Set) Equal(o Set) bool { return bytes.Equal(s, o) }

// siteSet expands one residue to its candidate set. Unknown residues and
// gaps expand to the full alphabet, the standard parsimony treatment of
// missing data.
func siteSet(c byte, t Type) Set {
	c = upper(c)
	if t == DNA {
		if exp, ok := dnaExpand[c]; ok {
			return NewSet([]byte(exp)...)
		}
		return NewSet([]byte(NucleotideAlphabet)...)
	}
	if exp, ok := proteinExpand[c]; ok {
		return NewSet([]byte(exp)...)
	}
	if bytes.IndexByte([]byte(AminoAcidAlphabet), c) >= 0 {
		return Set{c}
	}
	return NewSet([]byte(AminoAcidAlphabet)...)
}

// ParsimonySets expands an unaligned sequence into per-site candidate sets.
// Gap characters are dropped: input sequences are unaligned.
func ParsimonySets(seq []byte, t Type) []Set {
	out := make([]Set, 0, len(seq))
	for _, c := range seq {
		if c == GapChar {
			continue
		}
		out = append(out, siteSet(c, t))
	}
	return out
}
