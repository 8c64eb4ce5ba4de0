// internal/writers/scores.go
package writers

import (
	"fmt"
	"io"

	"parsimony/tree"
)

// WriteScoresTSV prints one line per internal node with its alignment
// cost, followed by the total.
func WriteScoresTSV(w io.Writer, t *tree.Tree, scores []float64) error {
	if _, err := fmt.Fprintln(w, "node\tscore"); err != nil {
		return err
	}
	total := 0.0
	for i, s := range scores {
		name := t.Internals[i].ID
		if name == "" {
			name = fmt.Sprintf("internal_%d", i)
		}
		if _, err := fmt.Fprintf(w, "%s\t%g\n", name, s); err != nil {
			return err
		}
		total += s
	}
	_, err := fmt.Fprintf(w, "total\t%g\n", total)
	return err
}
