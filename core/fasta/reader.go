// core/fasta/reader.go
package fasta

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"
)

// Record represents a parsed FASTA sequence.
type Record struct {
	ID   string
	Desc string
	Seq  []byte
}

// Read parses all FASTA records from r.
func Read(r io.Reader) ([]Record, error) {
	sc := bufio.NewScanner(r)
	const maxLine = 64 * 1024 * 1024 // allow very long single-line sequences (64 MiB)
	buf := make([]byte, 64*1024)
	sc.Buffer(buf, maxLine)

	var (
		recs []Record
		cur  *Record
	)
	flush := func() error {
		if cur == nil {
			return nil
		}
		if len(cur.Seq) == 0 {
			return fmt.Errorf("fasta: record %q has no sequence", cur.ID)
		}
		recs = append(recs, *cur)
		cur = nil
		return nil
	}

	for sc.Scan() {
		line := bytes.TrimSpace(sc.Bytes())
		if len(line) == 0 {
			continue
		}
		if line[0] == '>' {
			if err := flush(); err != nil {
				return nil, err
			}
			header := string(line[1:])
			id, desc := header, ""
			if sp := strings.IndexAny(header, " \t"); sp >= 0 {
				id, desc = header[:sp], strings.TrimSpace(header[sp+1:])
			}
			if id == "" {
				return nil, fmt.Errorf("fasta: record with empty id")
			}
			cur = &Record{ID: id, Desc: desc, Seq: make([]byte, 0, 1<<10)}
			continue
		}
		if cur == nil {
			return nil, fmt.Errorf("fasta: sequence data before first header")
		}
		cur.Seq = append(cur.Seq, line...)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if err := flush(); err != nil {
		return nil, err
	}
	if len(recs) == 0 {
		return nil, fmt.Errorf("fasta: no records found")
	}
	return recs, nil
}

// ReadAll parses all records from path. "-" reads stdin; gzip is handled
// transparently (magic bytes or .gz suffix).
func ReadAll(path string) ([]Record, error) {
	rc, err := openReader(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()
	recs, err := Read(rc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return recs, nil
}
