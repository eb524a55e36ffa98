// Package main runs bitvec scripts from the command line.
//
// Usage:
//
//	bitvec [-v] [-json] [-e script] [file ...]
//
// With neither -e nor files, the script is read from stdin. A file named "-"
// also means stdin. BITVEC_LOG_LEVEL (debug, info, warn, error) overrides the
// level chosen by -v.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/hupe1980/bitvec"
	"github.com/hupe1980/bitvec/internal/script"
)

var (
	verbose    = flag.Bool("v", false, "log every executed command")
	jsonLogs   = flag.Bool("json", false, "emit JSON logs instead of text")
	expression = flag.String("e", "", "script to run before any files")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] [file ...]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	logger := newLogger(logLevel(*verbose, os.Getenv("BITVEC_LOG_LEVEL")), *jsonLogs)
	runner := script.New(
		script.WithLogger(logger),
		script.WithOutput(os.Stdout),
	)

	if err := run(context.Background(), runner, *expression, flag.Args()); err != nil {
		fmt.Fprintln(os.Stderr, "bitvec:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, runner *script.Runner, expr string, files []string) error {
	if expr != "" {
		if err := runner.RunString(ctx, expr); err != nil {
			return err
		}
	}
	if expr != "" && len(files) == 0 {
		return nil
	}
	if len(files) == 0 {
		files = []string{"-"}
	}

	for _, name := range files {
		if err := runFile(ctx, runner, name); err != nil {
			return err
		}
	}
	return nil
}

func runFile(ctx context.Context, runner *script.Runner, name string) error {
	var src io.Reader = os.Stdin
	if name != "-" {
		f, err := os.Open(name)
		if err != nil {
			return err
		}
		defer f.Close()
		src = f
	}

	if err := runner.Run(ctx, src); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}

func newLogger(level slog.Level, asJSON bool) *bitvec.Logger {
	if asJSON {
		return bitvec.NewJSONLogger(level)
	}
	return bitvec.NewTextLogger(level)
}

// logLevel picks the level from -v unless override names a valid level.
func logLevel(verbose bool, override string) slog.Level {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	if override != "" {
		var l slog.Level
		if err := l.UnmarshalText([]byte(strings.TrimSpace(override))); err == nil {
			level = l
		}
	}
	return level
}
