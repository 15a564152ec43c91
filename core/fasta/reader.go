// core/fasta/reader.go
package fasta

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"isgmotif-core/dna"
)

// ErrFormat marks input that is not valid FASTA.
var ErrFormat = errors.New("malformed FASTA")

// Record is one FASTA entry. Seq is upper-case with line breaks removed.
type Record struct {
	ID  string
	Seq string
}

// Corpus is an ordered identifier -> sequence mapping.
//
// Records keep first-seen order. A repeated identifier replaces the earlier
// sequence in place and is listed once in Duplicates.
type Corpus struct {
	Records    []Record
	Duplicates []string

	index map[string]int
}

// Add inserts or replaces a record.
func (c *Corpus) Add(id, seq string) {
	if c.index == nil {
		c.index = make(map[string]int, 16)
		for i, r := range c.Records {
			c.index[r.ID] = i
		}
	}
	if i, ok := c.index[id]; ok {
		c.Records[i].Seq = seq
		c.Duplicates = append(c.Duplicates, id)
		return
	}
	c.index[id] = len(c.Records)
	c.Records = append(c.Records, Record{ID: id, Seq: seq})
}

func (c *Corpus) Len() int { return len(c.Records) }

// IDs returns identifiers in corpus order.
func (c *Corpus) IDs() []string {
	out := make([]string, len(c.Records))
	for i, r := range c.Records {
		out[i] = r.ID
	}
	return out
}

// Seqs returns sequences in corpus order.
func (c *Corpus) Seqs() []string {
	out := make([]string, len(c.Records))
	for i, r := range c.Records {
		out[i] = r.Seq
	}
	return out
}

// ReadPath opens path (gzip and "-" aware) and parses it with Read.
func ReadPath(ctx context.Context, path string) (*Corpus, error) {
	rc, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	c, err := Read(ctx, rc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Read parses FASTA text from r. The identifier is the first whitespace
// delimited token of the header; blank lines are skipped.
// Cancellation via ctx is checked between lines.
func Read(ctx context.Context, r io.Reader) (*Corpus, error) {
	sc := bufio.NewScanner(r)
	const maxLine = 64 * 1024 * 1024 // allow very long single-line sequences (64 MiB)
	buf := make([]byte, 64*1024)
	sc.Buffer(buf, maxLine)

	c := &Corpus{}
	var (
		id     string
		open   bool
		seq    = make([]byte, 0, 4096)
		lineNo int
	)
	flush := func() {
		if open {
			c.Add(id, string(dna.ToUpper(seq)))
			seq = seq[:0]
		}
	}

	for sc.Scan() {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		lineNo++
		line := bytes.TrimSpace(sc.Bytes())
		if len(line) == 0 {
			continue
		}
		if line[0] == '>' {
			flush()
			id = parseHeaderID(line[1:])
			if id == "" {
				return nil, fmt.Errorf("%w: line %d: empty header", ErrFormat, lineNo)
			}
			open = true
			continue
		}
		if !open {
			return nil, fmt.Errorf("%w: line %d: sequence data before first header", ErrFormat, lineNo)
		}
		seq = append(seq, line...)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("fasta scan: %w", err)
	}
	flush()
	return c, nil
}

func parseHeaderID(hdr []byte) string {
	f := bytes.Fields(hdr)
	if len(f) == 0 {
		return ""
	}
	return string(f[0])
}
