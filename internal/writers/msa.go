// internal/writers/msa.go
package writers

import (
	"fmt"
	"io"

	"parsimony/fasta"
)

func init() {
	RegisterMSA("fasta", writeFasta)
	RegisterMSA("phylip", writePhylip)
}

func writeFasta(w io.Writer, msa []fasta.Record) error {
	return fasta.Write(w, msa)
}

// writePhylip emits sequential relaxed PHYLIP: a count/width header, then
// one "name  sequence" line per row.
func writePhylip(w io.Writer, msa []fasta.Record) error {
	width := 0
	if len(msa) > 0 {
		width = len(msa[0].Seq)
	}
	if _, err := fmt.Fprintf(w, " %d %d\n", len(msa), width); err != nil {
		return err
	}
	for _, rec := range msa {
		if len(rec.Seq) != width {
			return fmt.Errorf("phylip: row %q has %d columns, want %d", rec.ID, len(rec.Seq), width)
		}
		if _, err := fmt.Fprintf(w, "%s  %s\n", rec.ID, rec.Seq); err != nil {
			return err
		}
	}
	return nil
}
