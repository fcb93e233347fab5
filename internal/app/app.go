// internal/app/app.go
package app

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"syscall"

	"hworld-core/countio"
	"hworld-core/greet"
	"hworld/internal/atomic"
	"hworld/internal/cli"
	"hworld/internal/output"
	"hworld/internal/version"
)

// Exit codes returned by Run.
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
	ExitIO      = 3
)

// isBrokenPipe reports whether an error is a broken / closed pipe, as seen
// when help output is piped into a consumer like `head` that closes early.
func isBrokenPipe(err error) bool {
	return err != nil && (errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe))
}

// Run executes one read → generate → write cycle and returns the process
// exit code. stdout carries help/version text only; the greeting lines go to
// the output file, committed atomically so a failed run never leaves a
// partial file behind.
func Run(argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet("hworld")
	fs.SetOutput(io.Discard)

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(outw)
			fs.Usage()
			if e := outw.Flush(); isBrokenPipe(e) {
				return ExitOK
			} else if e != nil {
				_, _ = fmt.Fprintln(stderr, e)
				return ExitIO
			}
			return ExitOK
		}
		_, _ = fmt.Fprintln(stderr, err)
		fs.SetOutput(outw)
		fs.Usage()
		return ExitUsage
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "hworld version %s\n", version.Version)
		return ExitOK
	}

	count, err := countio.Read(opts.In)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return ExitFailure
	}

	lines, err := greet.Lines(count)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return ExitFailure
	}

	if err := atomic.WriteFile(opts.Out, func(w io.Writer) error {
		return output.WriteLines(w, lines)
	}); err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return ExitFailure
	}
	return ExitOK
}
