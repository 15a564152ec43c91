// Package appshell wires a RunContext-style entry point to the process:
// signals, argv and the exit status.
package appshell

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
)

// RunFunc is the signature every tool's RunContext satisfies.
type RunFunc func(ctx context.Context, argv []string, stdout, stderr io.Writer) int

// Exec runs run with argv, defaulting to -h when argv is empty, and
// normalizes a successful exit after cancellation to 130.
func Exec(ctx context.Context, run RunFunc, argv []string, stdout, stderr io.Writer) int {
	if len(argv) == 0 {
		argv = []string{"-h"}
	}
	code := run(ctx, argv, stdout, stderr)
	if ctx.Err() != nil && code == 0 {
		code = 130
	}
	return code
}

// Main runs run under a context cancelled by SIGINT/SIGTERM and exits.
func Main(run RunFunc) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := Exec(ctx, run, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
