package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/felixge/fgprof"
)

func main() {
	log.SetFlags(0)
	var opts options
	flag.StringVar(&opts.configFile, "config", "", "read settings from INI `file` (default $HOME/.config/advent.ini)")
	flag.StringVar(&opts.inputFile, "i", "", "read puzzle input from `file` instead of stdin")
	flag.BoolVar(&opts.verbose, "v", false, "log input size and timings")
	flag.IntVar(&opts.workers, "workers", 1, "number of goroutines for parallel searches")
	flag.StringVar(&opts.fgprofFile, "fgprof", "", "write a wall-clock profile to `file`")
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() != 1 {
		usage()
		os.Exit(1)
	}
	opts.solution = flag.Arg(0)
	flag.Visit(func(f *flag.Flag) {
		opts.set = append(opts.set, f.Name)
	})
	if err := run(&opts, os.Stdout); err != nil {
		log.Fatal(err)
	}
}

type options struct {
	solution   string
	configFile string
	inputFile  string
	verbose    bool
	workers    int
	fgprofFile string
	set        []string // flags given on the command line
}

func run(opts *options, stdout io.Writer) error {
	fn, ok := solutions[opts.solution]
	if !ok {
		return fmt.Errorf("unknown solution %q", opts.solution)
	}
	cfg, err := loadConfig(opts.configFile)
	if err != nil {
		return err
	}
	for _, name := range opts.set {
		switch name {
		case "v":
			cfg.verbose = opts.verbose
		case "workers":
			cfg.workers = opts.workers
		}
	}
	if cfg.workers < 1 {
		return fmt.Errorf("bad worker count %d", cfg.workers)
	}
	workers = cfg.workers

	var in io.ReadCloser = os.Stdin
	if !interactive[opts.solution] {
		in, err = openInput(opts.solution, opts.inputFile, cfg.inputDir)
		if err != nil {
			return err
		}
		defer in.Close()
	}

	if opts.fgprofFile != "" {
		stop, err := startProfile(opts.fgprofFile)
		if err != nil {
			return err
		}
		defer func() {
			if err := stop(); err != nil {
				log.Printf("error writing profile: %s", err)
			}
		}()
	}

	return fn(&env{in: in, out: stdout, verbose: cfg.verbose})
}

func usage() {
	var names []string
	for name := range solutions {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return nameLess(names[i], names[j]) })
	fmt.Fprintf(os.Stderr, "usage: %s [flags] [solution]\n", os.Args[0])
	fmt.Fprintln(os.Stderr, "where solution is one of:")
	for _, name := range names {
		fmt.Fprintln(os.Stderr, name)
	}
	fmt.Fprintln(os.Stderr, "flags:")
	flag.PrintDefaults()
}

// workers bounds the goroutines a solution may use.
var workers = 1

// An env is what a solution runs against.
type env struct {
	in      io.Reader
	out     io.Writer
	verbose bool
}

func (e *env) logf(format string, args ...any) {
	if e.verbose {
		log.Printf(format, args...)
	}
}

var solutions = make(map[string]func(*env) error)

func register(name string, fn func(*env) error) {
	if _, ok := solutions[name]; ok {
		panic(fmt.Sprintf("duplicate solutions registered for %q", name))
	}
	solutions[name] = fn
}

// interactive solutions talk to the terminal instead of reading an input.
var interactive = make(map[string]bool)

func registerInteractive(name string, fn func(*env) error) {
	register(name, fn)
	interactive[name] = true
}

// A puzzle is a day's input parser and its part solvers with the types
// erased, so that tests and benchmarks can drive every day the same way.
type puzzle struct {
	parse func(io.Reader) (any, error)
	parts []func(any) any
}

var puzzles = make(map[string]*puzzle)

// registerPuzzle registers solutions for a day: "<day>" prints every part's
// answer on its own line and "<day>a"/"<day>b" print a single part.
// part2 may be nil for a day with one part.
func registerPuzzle[T, A, B any](day string, parse func(io.Reader) (T, error), part1 func(T) A, part2 func(T) B) {
	p := &puzzle{
		parse: func(r io.Reader) (any, error) { return parse(r) },
		parts: []func(any) any{func(v any) any { return part1(v.(T)) }},
	}
	if part2 != nil {
		p.parts = append(p.parts, func(v any) any { return part2(v.(T)) })
	}
	puzzles[day] = p

	register(day, func(e *env) error { return p.run(e, p.parts...) })
	for i, part := range p.parts {
		register(day+string(rune('a'+i)), func(e *env) error { return p.run(e, part) })
	}
}

func (p *puzzle) run(e *env, parts ...func(any) any) error {
	start := time.Now()
	cr := &countingReader{r: e.in}
	v, err := p.parse(cr)
	if err != nil {
		return err
	}
	e.logf("parsed %s of input in %s", humanize.Bytes(uint64(cr.n)), time.Since(start))
	for i, part := range parts {
		start := time.Now()
		answer := part(v)
		if n, ok := answer.(int); ok {
			e.logf("answer %d: %s (%s)", i+1, humanize.Comma(int64(n)), time.Since(start))
		} else {
			e.logf("answer %d computed in %s", i+1, time.Since(start))
		}
		if _, err := fmt.Fprintln(e.out, answer); err != nil {
			return err
		}
	}
	return nil
}

type countingReader struct {
	r io.Reader
	n int64
}

func (cr *countingReader) Read(b []byte) (int, error) {
	n, err := cr.r.Read(b)
	cr.n += int64(n)
	return n, err
}

var stdinIsTerminal = func() bool { return isTerminal(os.Stdin) }

// openInput picks the puzzle input: the named file if there is one, else
// <inputDir>/<day>.input when stdin is a terminal, else stdin.
func openInput(solution, file, inputDir string) (io.ReadCloser, error) {
	if file == "" && inputDir != "" && stdinIsTerminal() {
		day, _ := splitName(solution)
		file = filepath.Join(inputDir, strconv.Itoa(day)+".input")
	}
	if file == "" {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(file)
}

func startProfile(name string) (stop func() error, err error) {
	f, err := os.Create(name)
	if err != nil {
		return nil, err
	}
	stopProfile := fgprof.Start(f, fgprof.FormatPprof)
	return func() error {
		if err := stopProfile(); err != nil {
			f.Close()
			return err
		}
		return f.Close()
	}, nil
}

func nameLess(name0, name1 string) bool {
	n0, s0 := splitName(name0)
	n1, s1 := splitName(name1)
	if n0 != n1 {
		return n0 < n1
	}
	return s0 < s1
}

func splitName(name string) (int, string) {
	i := 0
	for ; i < len(name); i++ {
		c := name[i]
		if c < '0' || c > '9' {
			break
		}
	}
	n, err := strconv.Atoi(name[:i])
	if err != nil {
		panic(err)
	}
	return n, name[i:]
}
