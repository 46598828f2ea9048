// Package cli implements the enfa command: a line filter over files or
// standard input, plus DOT and Go source export of a compiled pattern.
package cli

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/geange/enfa"
	"github.com/geange/enfa/codegen"
	"github.com/geange/enfa/syntax"
)

// Exit codes follow grep: a line matched, nothing matched, or trouble.
const (
	ExitMatch   = 0
	ExitNoMatch = 1
	ExitError   = 2
)

const usage = `usage: enfa [flags] PATTERN [FILE...]

Prints the lines of each FILE (standard input if none) accepted by PATTERN.
`

type options struct {
	dot      bool
	goSource bool
	pkg      string
	name     string
	full     bool
	maxSteps int
	verbose  bool
}

// Run executes the command with args (without the program name) and returns
// the process exit code.
func Run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var opts options
	fs := flag.NewFlagSet("enfa", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprint(stderr, usage)
		fs.PrintDefaults()
	}
	fs.BoolVar(&opts.dot, "dot", false, "print the automaton as a Graphviz graph and exit")
	fs.BoolVar(&opts.goSource, "go", false, "print Go source that rebuilds the automaton and exit")
	fs.StringVar(&opts.pkg, "pkg", "main", "package name of the generated Go source")
	fs.StringVar(&opts.name, "name", "", "constructor suffix of the generated Go source (derived from the pattern if empty)")
	fs.BoolVar(&opts.full, "full", false, "require the whole line to match")
	fs.IntVar(&opts.maxSteps, "max-steps", 0, "abort a line after this many search steps (0 = unlimited)")
	fs.BoolVar(&opts.verbose, "v", false, "log compilation details to stderr")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitMatch
		}
		return ExitError
	}
	if fs.NArg() < 1 {
		fs.Usage()
		return ExitError
	}

	logger := NewLogger(opts.verbose, stderr)
	pattern, files := fs.Arg(0), fs.Args()[1:]

	node, err := syntax.Parse(pattern)
	if err != nil {
		fmt.Fprintf(stderr, "enfa: %v\n", err)
		return ExitError
	}
	logger.Log("parsed %q as %s", pattern, node)

	a, err := enfa.Compile(node)
	if err != nil {
		fmt.Fprintf(stderr, "enfa: %v\n", err)
		return ExitError
	}
	if logger.Enabled() {
		logger.Log("compiled %d states, %d transitions, accept %v", a.NumStates(), a.NumTransitions(), a.AcceptStates())
	}

	switch {
	case opts.dot:
		if err := enfa.WriteDot(stdout, a); err != nil {
			fmt.Fprintf(stderr, "enfa: %v\n", err)
			return ExitError
		}
		return ExitMatch
	case opts.goSource:
		name := opts.name
		if name == "" {
			name = codegen.DefaultName(pattern)
		}
		cfg := codegen.Config{Package: opts.pkg, Name: name, Pattern: pattern}
		if err := codegen.Render(stdout, a, cfg); err != nil {
			fmt.Fprintf(stderr, "enfa: %v\n", err)
			return ExitError
		}
		return ExitMatch
	}

	var matchOpts []enfa.MatchOption
	if opts.full {
		matchOpts = append(matchOpts, enfa.WithFullMatch())
	}
	if opts.maxSteps > 0 {
		matchOpts = append(matchOpts, enfa.WithStepLimit(opts.maxSteps))
	}

	f := &filter{
		a:      a,
		opts:   matchOpts,
		out:    stdout,
		logger: logger,
		prefix: len(files) > 1,
	}

	if len(files) == 0 {
		if err := f.scan("(standard input)", stdin); err != nil {
			fmt.Fprintf(stderr, "enfa: %v\n", err)
			return ExitError
		}
	}
	for _, name := range files {
		if err := f.scanFile(name); err != nil {
			fmt.Fprintf(stderr, "enfa: %v\n", err)
			return ExitError
		}
	}

	logger.Log("%d of %d lines matched", f.matched, f.lines)
	if f.matched > 0 {
		return ExitMatch
	}
	return ExitNoMatch
}

// filter prints the lines accepted by an automaton.
type filter struct {
	a      *enfa.Automaton
	opts   []enfa.MatchOption
	out    io.Writer
	logger *Logger
	prefix bool

	lines   int
	matched int
}

func (f *filter) scanFile(name string) error {
	file, err := os.Open(name)
	if err != nil {
		return err
	}
	defer file.Close()
	return f.scan(name, file)
}

func (f *filter) scan(name string, r io.Reader) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for lineNo := 1; scanner.Scan(); lineNo++ {
		line := scanner.Text()
		f.lines++
		ok, err := enfa.Match(f.a, line, f.opts...)
		if err != nil {
			return fmt.Errorf("%s:%d: %w", name, lineNo, err)
		}
		if !ok {
			continue
		}
		f.matched++
		if f.prefix {
			fmt.Fprintf(f.out, "%s:%s\n", name, line)
		} else {
			fmt.Fprintln(f.out, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	f.logger.Log("%s: scanned", name)
	return nil
}
