package writers

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"syscall"
)

// IsBrokenPipe reports whether an error is a broken pipe / closed pipe.
// Useful when downstream consumers (like `head`) close early.
func IsBrokenPipe(err error) bool {
	return err != nil && (errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe))
}

// FlushCode flushes bw and maps the outcome to an exit code: ok (the given
// code) on success or a broken pipe, 3 on any other I/O error.
func FlushCode(bw *bufio.Writer, stderr io.Writer, ok int) int {
	err := bw.Flush()
	if err == nil || IsBrokenPipe(err) {
		return ok
	}
	_, _ = fmt.Fprintln(stderr, err)
	return 3
}
