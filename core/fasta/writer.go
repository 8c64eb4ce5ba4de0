// core/fasta/writer.go
package fasta

import (
	"bufio"
	"io"
)

const lineWidth = 60

// Write emits records as wrapped FASTA.
func Write(w io.Writer, recs []Record) error {
	bw := bufio.NewWriter(w)
	for _, r := range recs {
		if _, err := bw.WriteString(">" + r.ID); err != nil {
			return err
		}
		if r.Desc != "" {
			if _, err := bw.WriteString(" " + r.Desc); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
		for off := 0; off < len(r.Seq); off += lineWidth {
			end := off + lineWidth
			if end > len(r.Seq) {
				end = len(r.Seq)
			}
			if _, err := bw.Write(r.Seq[off:end]); err != nil {
				return err
			}
			if err := bw.WriteByte('\n'); err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}
