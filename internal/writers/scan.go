package writers

import (
	"encoding/json"
	"io"

	"isgmotif-core/isre"
	"isgmotif/internal/jsonlutil"
	"isgmotif/internal/output"
)

// StartScanWriter spins up a writer goroutine for ranked scan hits. Text
// and JSONL stream row by row; other formats buffer and go through the
// registry.
func StartScanWriter(out io.Writer, format string, header bool, bufSize int) (chan<- isre.Hit, <-chan error) {
	if format == output.FormatJSONL {
		return StartScanJSONLWriter(out, bufSize)
	}
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan isre.Hit, bufSize)
	errCh := make(chan error, 1)

	go func() {
		var err error
		if format == output.FormatText {
			err = output.StreamScanText(out, in, header)
		} else {
			var buf []isre.Hit
			for h := range in {
				buf = append(buf, h)
			}
			err = WriteScan(format, out, ScanPayload{Hits: buf, Header: header})
		}
		// Drain so senders never block after a write error.
		for range in {
		}
		errCh <- err
	}()

	return in, errCh
}

// StartScanJSONLWriter streams each hit as one JSON line (v1).
func StartScanJSONLWriter(out io.Writer, bufSize int) (chan<- isre.Hit, <-chan error) {
	return jsonlutil.Start[isre.Hit](out, bufSize,
		func(enc *json.Encoder, h isre.Hit) error {
			return enc.Encode(output.ToAPIHit(h))
		},
		IsBrokenPipe,
	)
}
