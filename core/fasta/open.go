// core/fasta/open.go
package fasta

import (
	"bufio"
	"compress/gzip"
	"io"
	"os"
	"strings"
)

var gzipMagic = []byte{0x1f, 0x8b}

// source pairs the decoded promoter stream with everything that must be
// closed once the corpus has been read.
type source struct {
	io.Reader
	closers []io.Closer
}

func (s *source) Close() error {
	var first error
	for _, c := range s.closers {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// Open returns the raw promoter FASTA stream behind path, ready for Read.
// "-" is stdin. Compressed input is recognised by its gzip header, so
// piped .fa.gz works too; a ".gz" name forces decompression. Closing the
// stdin reader leaves os.Stdin open.
func Open(path string) (io.ReadCloser, error) {
	var (
		raw     io.Reader = os.Stdin
		closers []io.Closer
	)
	if path != "-" {
		fh, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		raw, closers = fh, []io.Closer{fh}
	}

	br := bufio.NewReaderSize(raw, 64*1024)
	head, _ := br.Peek(len(gzipMagic))
	if string(head) != string(gzipMagic) && !strings.HasSuffix(path, ".gz") {
		return &source{Reader: br, closers: closers}, nil
	}

	gr, err := gzip.NewReader(br)
	if err != nil {
		for _, c := range closers {
			_ = c.Close()
		}
		return nil, err
	}
	return &source{Reader: gr, closers: append([]io.Closer{gr}, closers...)}, nil
}
