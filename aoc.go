// Package aoc is a small runner for Advent of Code solutions: it finds
// the solver methods of a struct by name, checks them against samples
// written in their doc comments and runs them over an input file.
package aoc

import (
	"errors"
	"flag"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"io"
	"io/fs"
	"log"
	"os"
	"reflect"
	"regexp"
	"slices"
	"strings"
	"sync"
	"time"

	"golang.org/x/exp/maps"
	"tailscale.com/util/deephash"
)

type sample struct {
	input string
	want  string
}

var sampleRx = regexp.MustCompile(`(?sm)^\s*want=([^\n]*)(?:\s+(.+\n))?\s*`)

func parseSample(comment string) (sample, bool) {
	text := strings.TrimPrefix(comment, "//")
	if v, ok := strings.CutPrefix(text, "/*"); ok {
		text = strings.TrimSuffix(v, "*/")
	}
	if m := sampleRx.FindStringSubmatch(text); m != nil {
		s := sample{
			want:  strings.TrimSpace(m[1]),
			input: m[2],
		}
		return s, true
	}
	var zero sample
	return zero, false
}

// extractSamples parses every .go file in src and returns the samples
// found in function doc comments, keyed by function name. A sample
// without input reuses the input of the previous sample in the same
// file.
func extractSamples(src fs.FS) (map[string]sample, error) {
	names, err := fs.Glob(src, "*.go")
	if err != nil {
		return nil, err
	}
	slices.Sort(names)
	samples := make(map[string]sample)
	fset := token.NewFileSet()
	for _, name := range names {
		b, err := fs.ReadFile(src, name)
		if err != nil {
			return nil, err
		}
		f, err := parser.ParseFile(fset, name, b, parser.ParseComments)
		if err != nil {
			return nil, fmt.Errorf("parsing source to extract samples: %w", err)
		}
		var lastInput string
		for _, d := range f.Decls {
			fd, ok := d.(*ast.FuncDecl)
			if !ok || fd.Doc == nil {
				continue
			}
			for _, c := range fd.Doc.List {
				s, ok := parseSample(c.Text)
				if ok {
					if s.input == "" {
						s.input = lastInput
					}
					samples[fd.Name.Name] = s
					lastInput = s.input
					break
				}
			}
		}
	}
	return samples, nil
}

// Puzzle is embedded in solver structs. The runner sets it before each
// call so solvers can tell which day and mode they run in.
type Puzzle struct {
	Day        int
	SampleMode bool

	debug bool
	w     io.Writer
}

// Debug prints v when running with -debug. It is safe to call on a nil
// Puzzle.
func (p *Puzzle) Debug(v ...any) {
	if p == nil || !p.debug {
		return
	}
	fmt.Fprintln(p.w, v...)
}

// Debugf is the formatted form of Debug.
func (p *Puzzle) Debugf(format string, args ...any) {
	if p == nil || !p.debug {
		return
	}
	fmt.Fprintf(p.w, format+"\n", args...)
}

// SolveFunc is the signature of a day's solver method.
type SolveFunc = func(LineSource) (Answer, error)

type day struct {
	day    int
	name   string
	method int // index into the solver's method set
}

var (
	dayRx       = regexp.MustCompile(`^D(\d+)$`)
	solveFuncRT = reflect.TypeOf(SolveFunc(nil))
)

// extractMethods finds the methods of x named D{day} that match
// SolveFunc. x must be a pointer to a struct.
func extractMethods(x any) (map[int]day, error) {
	rv := reflect.ValueOf(x)
	if rv.Kind() != reflect.Pointer || rv.Elem().Kind() != reflect.Struct {
		return nil, fmt.Errorf("register: got %T; want pointer to struct", x)
	}
	v := rv.Elem()
	vt := v.Type()
	days := map[int]day{}
	for i := 0; i < vt.NumMethod(); i++ {
		mn := vt.Method(i).Name
		matches := dayRx.FindStringSubmatch(mn)
		if matches == nil {
			continue
		}
		if mt := v.Method(i).Type(); mt != solveFuncRT {
			return nil, fmt.Errorf("register: %s has type %v; want %v", mn, mt, solveFuncRT)
		}
		d := MustInt(matches[1])
		days[d] = day{day: d, name: mn, method: i}
	}
	if len(days) == 0 {
		return nil, fmt.Errorf("register: %T has no D<n> methods", x)
	}
	return days, nil
}

// Options control a Runner invocation. They mirror the command-line
// flags.
type Options struct {
	Day        int  // -1 selects the latest registered day
	OnlySample bool // only check samples
	SkipSample bool // don't check the sample before the input
	Debug      bool
	Verify     bool // solve twice and compare
}

// Runner holds the registered days of a solver.
type Runner struct {
	Stdout io.Writer
	Stderr io.Writer

	slvr    reflect.Value
	days    map[int]day
	samples map[string]sample
	debug   bool
}

// NewRunner registers the days of slvr, a pointer to a struct with
// D{day} methods, and the samples found in the sources in src.
func NewRunner(src fs.FS, slvr any) (*Runner, error) {
	days, err := extractMethods(slvr)
	if err != nil {
		return nil, err
	}
	samples, err := extractSamples(src)
	if err != nil {
		return nil, err
	}
	return &Runner{
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		slvr:    reflect.ValueOf(slvr).Elem(),
		days:    days,
		samples: samples,
	}, nil
}

// Days returns the registered day numbers in ascending order.
func (r *Runner) Days() []int {
	nums := maps.Keys(r.days)
	slices.Sort(nums)
	return nums
}

func (r *Runner) lookup(n int) (day, error) {
	d, ok := r.days[n]
	if !ok {
		return day{}, fmt.Errorf("no day %d", n)
	}
	return d, nil
}

func (r *Runner) solve(d day, sampleMode bool, in LineSource) (Answer, error) {
	p := &Puzzle{
		Day:        d.day,
		SampleMode: sampleMode,
		debug:      r.debug,
		w:          r.Stderr,
	}
	if f := r.slvr.FieldByName("Puzzle"); f.IsValid() && f.Type() == reflect.TypeOf(p) {
		f.Set(reflect.ValueOf(p))
	}
	fn := r.slvr.Method(d.method).Interface().(SolveFunc)
	t0 := time.Now()
	ans, err := fn(in)
	p.Debugf("day %d took %v", d.day, time.Since(t0).Round(time.Microsecond))
	return ans, err
}

// Solve runs day n over in.
func (r *Runner) Solve(n int, in LineSource) (Answer, error) {
	d, err := r.lookup(n)
	if err != nil {
		return Answer{}, err
	}
	return r.solve(d, false, in)
}

var errNoSample = errors.New("no sample")

// Sample reports whether day n has a sample.
func (r *Runner) Sample(n int) bool {
	d, ok := r.days[n]
	if !ok {
		return false
	}
	_, ok = r.samples[d.name]
	return ok
}

// CheckSample solves the sample of day n and compares the answer with
// the sample's want line.
func (r *Runner) CheckSample(n int) error {
	d, err := r.lookup(n)
	if err != nil {
		return err
	}
	s, ok := r.samples[d.name]
	if !ok {
		return fmt.Errorf("day %d: %w", n, errNoSample)
	}
	got, err := r.solve(d, true, LinesOf(s.input))
	if err != nil {
		return fmt.Errorf("day %d sample: %w", n, err)
	}
	if got.String() != s.want {
		fmt.Fprintf(r.Stderr, "day %d sample: %v ❌; want %v\n", n, got, s.want)
		return fmt.Errorf("day %d sample: got %q; want %q", n, got, s.want)
	}
	fmt.Fprintf(r.Stderr, "day %d sample: %v ✅\n", n, got)
	return nil
}

// Main runs the invocation described by opts. args holds the positional
// command-line arguments; the only one is the input file path.
func (r *Runner) Main(opts Options, args []string) error {
	r.debug = opts.Debug
	n := opts.Day
	if n == -1 {
		days := r.Days()
		n = days[len(days)-1]
	}
	if _, err := r.lookup(n); err != nil {
		return err
	}

	if opts.OnlySample {
		nums := []int{n}
		if opts.Day == -1 {
			nums = r.Days()
		}
		for _, n := range nums {
			err := r.CheckSample(n)
			if errors.Is(err, errNoSample) && opts.Day == -1 {
				continue
			}
			if err != nil {
				return err
			}
		}
		return nil
	}

	if len(args) != 1 {
		return fmt.Errorf("want exactly one input file; got %d arguments", len(args))
	}
	if !opts.SkipSample {
		if err := r.CheckSample(n); errors.Is(err, errNoSample) {
			if r.debug {
				fmt.Fprintf(r.Stderr, "day %d: no sample to check\n", n)
			}
		} else if err != nil {
			return err
		}
	}

	in, err := Open(args[0])
	if err != nil {
		return err
	}
	defer in.Close()

	ans, err := r.Solve(n, in)
	if err != nil {
		return fmt.Errorf("day %d: %w", n, err)
	}
	if opts.Verify {
		if err := in.Rewind(); err != nil {
			return err
		}
		again, err := r.Solve(n, in)
		if err != nil {
			return fmt.Errorf("day %d rerun: %w", n, err)
		}
		if deephash.Hash(&ans) != deephash.Hash(&again) {
			return fmt.Errorf("day %d: %w: rerun after rewind gave %v; first run gave %v", n, ErrLogicAssertion, again, ans)
		}
	}
	fmt.Fprintln(r.Stdout, ans)
	return nil
}

var (
	flagCurDay     int
	flagDebug      bool
	flagOnlySample bool
	flagSkipSample bool
	flagVerify     bool
)

func init() {
	flag.IntVar(&flagCurDay, "day", -1, "day to run; -1 runs the latest day")
	flag.BoolVar(&flagOnlySample, "sample", false, "only run sample")
	flag.BoolVar(&flagSkipSample, "skip-sample", false, "skip sample")
	flag.BoolVar(&flagDebug, "debug", false, "debug mode")
	flag.BoolVar(&flagVerify, "verify", false, "rewind and solve again, failing if the answers differ")
}

var initFlags = sync.OnceFunc(flag.Parse)

// Run parses the command line and runs the selected day of slvr with
// the samples found in src. It exits the process on failure.
func Run(src fs.FS, slvr any) {
	initFlags()
	r, err := NewRunner(src, slvr)
	if err != nil {
		log.Fatal(err)
	}
	opts := Options{
		Day:        flagCurDay,
		OnlySample: flagOnlySample,
		SkipSample: flagSkipSample,
		Debug:      flagDebug,
		Verify:     flagVerify,
	}
	if err := r.Main(opts, flag.Args()); err != nil {
		log.Fatal(err)
	}
}
