// ga-monitor runs a beam optimization with a live terminal view of the
// evolution: generation counter, score statistics, the best design found
// so far, and its constraint margins.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/beamga/beam"
	"github.com/lixenwraith/beamga/genetic"
	"github.com/lixenwraith/beamga/genetic/fitness"
	"github.com/lixenwraith/beamga/manifest"
	"github.com/lixenwraith/beamga/parameter"
	"github.com/lixenwraith/beamga/problem"
)

// snapshot is what the engine observer hands to the draw loop. Copied out
// of the pool so the engine can move on.
type snapshot struct {
	generation int
	best       float64
	average    float64
	worst      float64
	bestGenes  []float64
}

type monitor struct {
	screen  tcell.Screen
	def     *problem.Definition
	history []float64 // best score per generation

	last snapshot
	done bool
	err  error
}

func main() {
	var (
		problemName  = flag.String("problem", problem.NameDiscrete, "built-in problem name")
		manifestPath = flag.String("manifest", "", "YAML problem manifest (overrides -problem)")
		poolSize     = flag.Int("pool", parameter.GAPoolSize, "population size")
		generations  = flag.Int("generations", parameter.GAMaxGenerations, "generation budget")
		seed         = flag.Uint64("seed", 0, "rng seed (0 = random)")
	)
	flag.Parse()

	def, err := resolveProblem(*problemName, *manifestPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "problem resolution failed: %v\n", err)
		os.Exit(1)
	}

	cfg := genetic.DefaultConfig()
	cfg.PoolSize = *poolSize
	cfg.MaxGenerations = *generations
	cfg.Seed = *seed

	engine, err := problem.NewEngine(def, fitness.StaticPenalty{Weight: parameter.GAPenaltyWeight}, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "engine assembly failed: %v\n", err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "screen failed: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "screen init failed: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	m := &monitor{screen: screen, def: def}

	snapshots := make(chan snapshot, 64)
	engine.SetObserver(func(pool *genetic.Pool[[]float64, float64]) {
		best := pool.Members[0]
		for _, c := range pool.Members[1:] {
			if c.Score < best.Score {
				best = c
			}
		}
		snapshots <- snapshot{
			generation: pool.Generation,
			best:       float64(pool.Stats.BestScore),
			average:    float64(pool.Stats.AverageScore),
			worst:      float64(pool.Stats.WorstScore),
			bestGenes:  append([]float64(nil), best.Data...),
		}
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	runDone := make(chan error, 1)
	go func() {
		_, err := engine.Run(ctx)
		runDone <- err
		close(snapshots)
	}()

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			events <- screen.PollEvent()
		}
	}()

	m.draw()
	for {
		select {
		case snap, ok := <-snapshots:
			if !ok {
				snapshots = nil
				continue
			}
			m.last = snap
			m.history = append(m.history, snap.best)
			m.draw()

		case err := <-runDone:
			m.done = true
			m.err = err
			m.draw()

		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
					cancel()
					return
				}
			case *tcell.EventResize:
				m.screen.Sync()
				m.draw()
			}
		}
	}
}

func resolveProblem(name, manifestPath string) (*problem.Definition, error) {
	if manifestPath != "" {
		return manifest.Load(manifestPath)
	}
	registry := problem.NewBuiltinRegistry()
	def, ok := registry.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("unknown problem %q (known: %s)", name, strings.Join(registry.Names(), ", "))
	}
	return def, nil
}

var (
	styleTitle  = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleLabel  = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleValue  = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleOK     = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleBad    = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleChart  = tcell.StyleDefault.Foreground(tcell.ColorTeal)
	styleFooter = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

func (m *monitor) draw() {
	s := m.screen
	s.Clear()
	w, h := s.Size()

	drawText(s, 1, 0, styleTitle, fmt.Sprintf("beamga monitor - %s", m.def.Name))

	status := "running"
	if m.done {
		status = "done"
		if m.err != nil {
			status = fmt.Sprintf("stopped: %v", m.err)
		}
	}
	drawText(s, 1, 1, styleLabel, fmt.Sprintf("generation %d  [%s]", m.last.generation, status))
	drawText(s, 1, 2, styleValue,
		fmt.Sprintf("best %.2f   avg %.2f   worst %.2f", m.last.best, m.last.average, m.last.worst))

	if m.last.bestGenes != nil {
		m.drawBest(4)
	}

	m.drawChart(4+beam.SectionCount+4, w, h)

	drawText(s, 1, h-1, styleFooter, "q / ESC to quit")
	s.Show()
}

// drawBest renders the decoded best design and its constraint status.
func (m *monitor) drawBest(row int) {
	s := m.screen

	report, err := m.def.Describe(m.last.bestGenes)
	if err != nil {
		drawText(s, 1, row, styleBad, fmt.Sprintf("evaluation failed: %v", err))
		return
	}

	drawText(s, 1, row, styleLabel, "section      width    height")
	for i := 0; i < beam.SectionCount; i++ {
		line := fmt.Sprintf("%-10d %7.3f %9.3f", i+1, report.Decoded[2*i], report.Decoded[2*i+1])
		drawText(s, 1, row+1+i, styleValue, line)
	}

	vol := fmt.Sprintf("volume %.2f", report.Volume)
	drawText(s, 1, row+1+beam.SectionCount, styleValue, vol)

	if report.Feasible {
		drawText(s, 1, row+2+beam.SectionCount, styleOK, "feasible")
	} else {
		worst := fitness.MaxViolation(report.Residuals, nil)
		drawText(s, 1, row+2+beam.SectionCount, styleBad, fmt.Sprintf("infeasible, worst violation %.4f", worst))
	}
}

// drawChart renders best-score history as a one-line braille-free bar
// strip: each column is one generation bucket, taller is worse.
func (m *monitor) drawChart(row, w, h int) {
	if len(m.history) < 2 || row >= h-2 {
		return
	}

	blocks := []rune(" ▁▂▃▄▅▆▇█")
	width := w - 2
	if width < 8 {
		return
	}

	// Bucket history into the available width.
	lo, hi := m.history[0], m.history[0]
	for _, v := range m.history {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	span := hi - lo
	if span <= 0 {
		span = 1
	}

	line := make([]rune, 0, width)
	for col := 0; col < width; col++ {
		idx := col * len(m.history) / width
		norm := (m.history[idx] - lo) / span
		line = append(line, blocks[int(norm*float64(len(blocks)-1))])
	}

	drawText(m.screen, 1, row, styleLabel, "best score history (high to low)")
	drawText(m.screen, 1, row+1, styleChart, string(line))
}

func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) {
	for i, r := range text {
		s.SetContent(x+i, y, r, nil, style)
	}
}
