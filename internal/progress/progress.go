// Package progress draws a restart progress bar on stderr.
package progress

import (
	"io"

	"gopkg.in/cheggaaa/pb.v1"
)

// Bar is a thin wrapper over a pb.ProgressBar. A nil *Bar is a valid,
// silent bar, so callers never branch on whether progress is enabled.
type Bar struct {
	bar *pb.ProgressBar
}

// New starts a bar counting to total on w. It returns nil when disabled or
// total is not positive.
func New(w io.Writer, total int, prefix string, enabled bool) *Bar {
	if !enabled || total <= 0 {
		return nil
	}
	b := pb.New(total)
	b.Output = w
	b.ShowSpeed = false
	b.Prefix(prefix)
	b.Start()
	return &Bar{bar: b}
}

// Increment advances the bar by one; safe for concurrent use.
func (b *Bar) Increment() {
	if b == nil {
		return
	}
	b.bar.Increment()
}

// Count reports how many increments the bar has seen.
func (b *Bar) Count() int64 {
	if b == nil {
		return 0
	}
	return b.bar.Get()
}

// Finish stops redrawing and prints the final state.
func (b *Bar) Finish() {
	if b == nil {
		return
	}
	b.bar.Finish()
}
