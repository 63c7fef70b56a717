// Command ws runs whitespace programs.
//
// Usage:
//
//	ws [flags] [file ...]
//
// The program is the concatenation of the named files, or standard input if
// there are none. Program input comes from standard input unless -input is
// given; when the program itself is read from standard input, it has no input
// unless -input is given.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/zephyrtronium/whitespace"
)

// options holds the command-line flags.
type options struct {
	input    string
	encoding string
	trace    bool
	stats    bool
	notation bool
}

func main() {
	var opts options
	flag.StringVar(&opts.input, "input", "", "read program input from this file instead of standard input")
	flag.StringVar(&opts.encoding, "encoding", "utf8", "character encoding of program input and output")
	flag.BoolVar(&opts.trace, "trace", false, "write each instruction to standard error before executing it")
	flag.BoolVar(&opts.stats, "stats", false, "write execution statistics to standard error")
	flag.BoolVar(&opts.notation, "notation", false, "read the program as S, T, and L letters")
	flag.Parse()
	if err := run(opts, flag.Args(), os.Stdin, os.Stdout, os.Stderr); err != nil {
		fail(err)
	}
}

// run loads the program from files, or from stdin if there are none, and
// executes it.
func run(opts options, files []string, stdin io.Reader, stdout, stderr io.Writer) error {
	src, err := readSource(files, stdin)
	if err != nil {
		return fmt.Errorf("error reading program: %w", err)
	}
	if opts.notation {
		src = whitespace.FromNotation(src)
	}
	cfg := whitespace.Config{
		Input:    stdin,
		Output:   stdout,
		Encoding: opts.encoding,
	}
	if opts.input != "" {
		f, err := os.Open(opts.input)
		if err != nil {
			return fmt.Errorf("error opening input: %w", err)
		}
		defer f.Close()
		cfg.Input = f
	} else if len(files) == 0 {
		// The program itself came from standard input.
		cfg.Input = nil
	}
	if opts.trace {
		cfg.Trace = stderr
	}

	vm, err := whitespace.NewVM(src, cfg)
	if err != nil {
		return err
	}
	out, err := vm.Run()
	if out != "" && !strings.HasSuffix(out, "\n") && isTerminal(stdout) {
		fmt.Fprintln(stdout)
	}
	if opts.stats {
		printStats(stderr, vm.Stats)
	}
	return err
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func readSource(files []string, stdin io.Reader) (string, error) {
	var content bytes.Buffer
	if len(files) == 0 {
		if _, err := io.Copy(&content, stdin); err != nil {
			return "", err
		}
		return content.String(), nil
	}
	for _, f := range files {
		b, err := os.ReadFile(f)
		if err != nil {
			return "", err
		}
		content.Write(b)
	}
	return content.String(), nil
}

func printStats(w io.Writer, s whitespace.Stats) {
	fmt.Fprintf(w, "steps\t%d\n", s.Steps)
	fmt.Fprintf(w, "coverage\t%d\n", s.Coverage)
	fmt.Fprintf(w, "max stack\t%d\n", s.MaxStack)
	fmt.Fprintf(w, "max calls\t%d\n", s.MaxCallDepth)
	fmt.Fprintf(w, "heap cells\t%d\n", s.HeapCells)
	if rss, ok := maxRSS(); ok {
		fmt.Fprintf(w, "max rss\t%d KiB\n", rss)
	}
}

func fail(args ...interface{}) {
	fmt.Fprintln(os.Stderr, args...)
	os.Exit(1)
}
