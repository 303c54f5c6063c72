// Package aoc are quick & dirty utilities for helping Maisem
// solve Advent of Code problems. (forked from bradfitz/aoc)
package aoc

import (
	"bufio"
	"bytes"
	"flag"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"io/fs"
	"os"
	"reflect"
	"regexp"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/pkg/profile"
	"github.com/sirupsen/logrus"
	"golang.org/x/exp/maps"
)

var log = logrus.New()

func init() {
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
}

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
			want:  m[1],
			input: m[2],
		}
		return s, true
	}
	var zero sample
	return zero, false
}

// extractSamples collects the samples from the doc comments of every func in
// src. A sample without input reuses the previous one from the same file.
func extractSamples(name string, src []byte) (map[string]sample, error) {
	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, name, src, parser.ParseComments)
	if err != nil {
		return nil, err
	}
	var lastInput string
	samples := make(map[string]sample)
	for _, d := range f.Decls {
		fd, ok := d.(*ast.FuncDecl)
		if !ok || fd.Doc == nil {
			continue
		}
		funcName := fd.Name.Name
		for _, c := range fd.Doc.List {
			s, ok := parseSample(c.Text)
			if ok {
				s.input = Or(s.input, lastInput)
				samples[funcName] = s
				lastInput = s.input
				break
			}
		}
	}
	return samples, nil
}

// extractAllSamples runs extractSamples over every .go file in src.
func extractAllSamples(src fs.FS) map[string]sample {
	names := MustGet(fs.Glob(src, "*.go"))
	all := make(map[string]sample)
	for _, name := range names {
		samples, err := extractSamples(name, MustGet(fs.ReadFile(src, name)))
		if err != nil {
			log.Fatalf("parsing source to extract samples: %v", err)
		}
		maps.Copy(all, samples)
	}
	return all
}

type Puzzle struct {
	year       int
	day        day
	SampleMode bool

	solver  partSolver
	samples map[string]sample
}

func (p *Puzzle) path(ext string) string {
	return fmt.Sprintf("%s/%d/%d.%s", flagInputs, p.year, p.day.day, ext)
}

func (p *Puzzle) Input() []byte {
	if p.SampleMode {
		return []byte(p.Sample().input)
	}
	return fileOrFetch(p.path("input"), fmt.Sprintf("https://adventofcode.com/%d/day/%d/input", p.year, p.day.day))
}

// Lines returns the input split into lines, without trailing whitespace at
// the end of the input.
func (p *Puzzle) Lines() []string {
	return strings.Split(strings.TrimRight(string(p.Input()), " \t\r\n"), "\n")
}

// Grid returns the input as a grid of bytes, one row per line.
func (p *Puzzle) Grid() Grid[byte] {
	lines := p.Lines()
	g := make(Grid[byte], len(lines))
	for y, line := range lines {
		g[y] = []byte(line)
	}
	return g
}

func (p *Puzzle) Scanner() *bufio.Scanner {
	return bufio.NewScanner(bytes.NewReader(p.Input()))
}

func (p *Puzzle) ForLinesY(onLine func(int, string)) {
	s := p.Scanner()
	y := -1
	for s.Scan() {
		y++
		onLine(y, s.Text())
	}
	if err := s.Err(); err != nil {
		log.Fatal(err)
	}
}

// ForLines calls onLine for each line of input.
func (p *Puzzle) ForLines(onLine func(line string)) {
	p.ForLinesY(func(_ int, line string) { onLine(line) })
}

func (p *Puzzle) logger() *logrus.Entry {
	return log.WithFields(logrus.Fields{
		"day":    p.day.day,
		"part":   p.solver.Part,
		"sample": p.SampleMode,
	})
}

// Debugf logs at debug level, only while running the sample.
func (p *Puzzle) Debugf(format string, args ...any) {
	if p.SampleMode {
		p.logger().Debugf(format, args...)
	}
}

func (p *Puzzle) Sample() sample {
	sample, ok := p.samples[p.solver.Name]
	if !ok {
		log.Fatalf("no sample found for %v", p.solver.Name)
	}
	return sample
}

type day struct {
	day   int
	parts []partSolver
}

type partSolver struct {
	fn   func() any
	Part string
	Name string
}

var methodRx = regexp.MustCompile(`^D(\d+)p(\d+.*)$`)

// extractMethods registers a struct with methods named D{day}p{part} for
// each day/part of Advent of Code. The methods must have the signature
// func() any.
func extractMethods(x any) map[int]day {
	v := reflect.ValueOf(x)
	if v.Kind() != reflect.Pointer || v.Elem().Kind() != reflect.Struct {
		log.Fatalf("Register: got %T; want pointer to struct", x)
	}
	vt := v.Type()
	byDays := map[int][]partSolver{}
	for i := 0; i < vt.NumMethod(); i++ {
		mn := vt.Method(i).Name
		matches := methodRx.FindStringSubmatch(mn)
		if len(matches) != 3 {
			continue
		}
		m, ok := v.Method(i).Interface().(func() any)
		if !ok {
			log.Fatalf("%s has type %v; want func() any", mn, v.Method(i).Type())
		}
		day, part := matches[1], matches[2]
		d := Int(day)
		byDays[d] = append(byDays[d], partSolver{
			fn:   m,
			Part: part,
			Name: mn,
		})
	}
	days := make(map[int]day, len(byDays))
	for d, parts := range byDays {
		slices.SortFunc(parts, func(i, j partSolver) int {
			return strings.Compare(i.Part, j.Part)
		})
		days[d] = day{parts: parts, day: d}
	}
	return days
}

var (
	flagCurDay     int
	flagPart       string
	flagDebug      bool
	flagOnlySample bool
	flagSkipSample bool
	flagInputs     string
	flagProfile    string
)

func init() {
	flag.IntVar(&flagCurDay, "day", -1, "day to run")
	flag.BoolVar(&flagOnlySample, "sample", false, "only run sample")
	flag.BoolVar(&flagSkipSample, "skip-sample", false, "skip sample")
	flag.BoolVar(&flagDebug, "debug", false, "debug mode")
	flag.StringVar(&flagPart, "part", "", "part to run")
	flag.StringVar(&flagInputs, "inputs", ".", "directory holding cached inputs as {year}/{day}.input")
	flag.StringVar(&flagProfile, "profile", "", `write a "cpu" or "mem" profile`)
}

var initFlags = sync.OnceFunc(func() {
	flag.Parse()
	if flagDebug {
		log.SetLevel(logrus.DebugLevel)
	}
})

// runDay runs every part of d, sample first. It gives up on the day as soon
// as a sample produces the wrong answer.
func runDay(p *Puzzle, d day) {
	p.day = d
	fmt.Println("Running day", d.day)
	for _, ps := range d.parts {
		p.solver = ps
		if flagPart != "" && ps.Part != flagPart {
			continue
		}

		for _, sm := range []bool{true, false} {
			if !sm && flagOnlySample {
				continue
			} else if sm && flagSkipSample {
				continue
			}
			p.SampleMode = sm
			if !sm {
				// Prime the input.
				p.Input()
			}
			t0 := time.Now()
			got := ps.fn()
			if sm {
				sample := p.Sample()
				if fmt.Sprint(got) != sample.want {
					fmt.Printf("part %s: %v ❌; want %v\n", ps.Part, got, sample.want)
					return
				}
				fmt.Printf("part %s sample: %v ✅ (%v) \n", ps.Part, got, time.Since(t0).Round(time.Microsecond))
			} else {
				fmt.Printf("part %s: %v (took %v) \n", ps.Part, got, time.Since(t0).Round(time.Microsecond))
			}
		}
	}
}

func startProfile() interface{ Stop() } {
	switch flagProfile {
	case "":
		return nopStopper{}
	case "cpu":
		return profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.Quiet)
	case "mem":
		return profile.Start(profile.MemProfile, profile.ProfilePath("."), profile.Quiet)
	}
	log.Fatalf("unknown -profile %q", flagProfile)
	return nil
}

type nopStopper struct{}

func (nopStopper) Stop() {}

// Run solves the puzzles of year registered as D{day}p{part} methods on
// slvr, which must be a pointer to a struct embedding *Puzzle. Samples are
// read from the doc comments in the .go files of src.
func Run(year int, src fs.FS, slvr any) {
	initFlags()
	defer startProfile().Stop()

	p := &Puzzle{
		year:    year,
		samples: extractAllSamples(src),
	}
	sr := reflect.ValueOf(slvr)
	sr.Elem().FieldByName("Puzzle").Set(reflect.ValueOf(p))
	days := extractMethods(slvr)

	if flagCurDay != -1 {
		day, ok := days[flagCurDay]
		if !ok {
			log.Fatalf("no day %d", flagCurDay)
		}
		runDay(p, day)
		return
	}

	dayNums := maps.Keys(days)
	slices.Sort(dayNums)
	for _, day := range dayNums {
		runDay(p, days[day])
		fmt.Println()
	}
}
