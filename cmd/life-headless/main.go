package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"strings"
	"time"

	"conway-life/internal/app"
	"conway-life/internal/render"
	"conway-life/pkg/sims/life"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// patternList collects repeated -pattern flags. A name given twice is kept
// once, since runs of the same pattern share a snapshot file prefix.
type patternList []string

func (p *patternList) String() string { return strings.Join(*p, ",") }

func (p *patternList) Set(v string) error {
	for _, name := range strings.Split(v, ",") {
		name = strings.TrimSpace(name)
		if _, ok := life.LookupPattern(name); !ok {
			return errors.Errorf("unknown pattern %q (known: %s)", name, strings.Join(life.PatternNames(), ", "))
		}
		if p.has(name) {
			continue
		}
		*p = append(*p, name)
	}
	return nil
}

func (p patternList) has(name string) bool {
	for _, n := range p {
		if n == name {
			return true
		}
	}
	return false
}

// checkWorkers rejects worker counts errgroup cannot run with: zero blocks
// every run and a negative limit removes the cap.
func checkWorkers(n int) error {
	if n < 1 {
		return errors.Errorf("[checkWorkers] workers must be at least 1, got %d", n)
	}
	return nil
}

type runResult struct {
	pattern    string
	generation int
	population int
	final      string
	snapshots  int
}

func main() {
	var patterns patternList
	frames := flag.Int("frames", 20, "frames to simulate after the pattern is placed")
	pngDir := flag.String("png", "", "directory for per-frame PNG snapshots (empty disables)")
	workers := flag.Int("workers", runtime.NumCPU(), "patterns simulated in parallel")
	quiet := flag.Bool("quiet", false, "print only the summary line of each run")
	flag.Var(&patterns, "pattern", "pattern to run, repeatable (default blinker)")

	cfg, err := app.Parse(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if err := checkWorkers(*workers); err != nil {
		log.Fatalf("config: %v", err)
	}
	if len(patterns) == 0 {
		patterns = patternList{"blinker"}
	}
	if *pngDir != "" {
		if err := os.MkdirAll(*pngDir, 0o755); err != nil {
			log.Fatalf("png dir: %v", err)
		}
	}

	log.Printf("running %d pattern(s) on %dx%d for %d frames", len(patterns), cfg.Cols, cfg.Rows, *frames)
	start := time.Now()

	results := make([]runResult, len(patterns))
	var eg errgroup.Group
	eg.SetLimit(*workers)
	for i, name := range patterns {
		eg.Go(func() error {
			res, err := run(cfg, name, *frames, *pngDir)
			if err != nil {
				return errors.Wrapf(err, "[run] pattern %s", name)
			}
			results[i] = res
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		log.Fatal(err)
	}

	for _, res := range results {
		fmt.Printf("%s: generation=%d population=%d", res.pattern, res.generation, res.population)
		if res.snapshots > 0 {
			fmt.Printf(" snapshots=%d", res.snapshots)
		}
		fmt.Println()
		if !*quiet {
			fmt.Print(res.final)
		}
	}
	log.Printf("done in %s", time.Since(start).Round(time.Millisecond))
}

// run places one pattern on a fresh board and steps it for the given number
// of frames. Each run owns its state, so runs never share grids.
func run(cfg *app.Config, name string, frames int, pngDir string) (runResult, error) {
	p, _ := life.LookupPattern(name)
	layout := cfg.Layout()
	state := life.NewState(cfg.Cols, cfg.Rows)
	state.Reset(cfg.Seed, cfg.Density)

	var snap *render.Snapshotter
	var renderer life.Renderer
	if pngDir != "" {
		snap = render.NewSnapshotter(pngDir, name, layout, render.DefaultPalette())
		renderer = snap
	}
	loop := life.NewLoop(state, life.NewMapper(layout), renderer)
	life.Place(loop, p)
	loop.Run(make([]life.Input, frames))

	res := runResult{
		pattern:    name,
		generation: state.Generation(),
		population: state.Current().Population(),
		final:      render.Text(state.Current()),
	}
	if snap != nil {
		if err := snap.Err(); err != nil {
			return res, err
		}
		res.snapshots = snap.Frames()
	}
	return res, nil
}
