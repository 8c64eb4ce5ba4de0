// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"

	"parsimony/fasta"
)

// MSAWriters maps an output format to its writer. Writers register in
// init() blocks from their own files.
var MSAWriters = map[string]func(w io.Writer, msa []fasta.Record) error{}

// RegisterMSA adds a format handler (last registration wins).
func RegisterMSA(format string, fn func(io.Writer, []fasta.Record) error) {
	MSAWriters[format] = fn
}

// WriteMSA dispatches msa to the writer registered for format.
func WriteMSA(format string, w io.Writer, msa []fasta.Record) error {
	fn, ok := MSAWriters[format]
	if !ok {
		return fmt.Errorf("unknown output format %q (no writer registered)", format)
	}
	return fn(w, msa)
}
