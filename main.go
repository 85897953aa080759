// beamga minimizes the material volume of a stepped cantilever beam with a
// genetic algorithm, supporting continuous and catalog-discretized design
// variables.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/lixenwraith/beamga/beam"
	"github.com/lixenwraith/beamga/genetic"
	"github.com/lixenwraith/beamga/genetic/fitness"
	"github.com/lixenwraith/beamga/genetic/persistence"
	"github.com/lixenwraith/beamga/manifest"
	"github.com/lixenwraith/beamga/parameter"
	"github.com/lixenwraith/beamga/problem"
)

func main() {
	var (
		problemName  = flag.String("problem", problem.NameDiscrete, "built-in problem name")
		manifestPath = flag.String("manifest", "", "YAML problem manifest (overrides -problem)")
		listProblems = flag.Bool("list", false, "list built-in problems and exit")
		poolSize     = flag.Int("pool", parameter.GAPoolSize, "population size")
		generations  = flag.Int("generations", parameter.GAMaxGenerations, "generation budget")
		seed         = flag.Uint64("seed", 0, "rng seed (0 = random)")
		parallelism  = flag.Int("parallelism", parameter.GAParallelism, "concurrent evaluations")
		penalty      = flag.Float64("penalty", parameter.GAPenaltyWeight, "constraint penalty weight")
		savePath     = flag.String("save", "", "directory for run archive (empty = no archive)")
		progressEach = flag.Int("progress", 50, "log progress every N generations (0 = silent)")
	)
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	registry := problem.NewBuiltinRegistry()
	if *listProblems {
		for _, name := range registry.Names() {
			def, _ := registry.Lookup(name)
			fmt.Printf("%-24s %s\n", name, def.Description)
		}
		return
	}

	def, err := resolveProblem(registry, *problemName, *manifestPath)
	if err != nil {
		logger.Error("problem resolution failed", "error", err)
		os.Exit(1)
	}

	cfg := genetic.DefaultConfig()
	cfg.PoolSize = *poolSize
	cfg.MaxGenerations = *generations
	cfg.Seed = *seed
	cfg.Parallelism = *parallelism

	engine, err := problem.NewEngine(def, fitness.StaticPenalty{Weight: *penalty}, cfg)
	if err != nil {
		logger.Error("engine assembly failed", "error", err)
		os.Exit(1)
	}

	if *progressEach > 0 {
		every := *progressEach
		engine.SetObserver(func(pool *genetic.Pool[[]float64, float64]) {
			if pool.Generation%every == 0 {
				logger.Info("generation",
					"n", pool.Generation,
					"best", pool.Stats.BestScore,
					"avg", pool.Stats.AverageScore,
					"worst", pool.Stats.WorstScore)
			}
		})
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("starting optimization",
		"problem", def.Name,
		"pool", cfg.PoolSize,
		"generations", cfg.MaxGenerations,
		"integer_slots", fmt.Sprint(def.IntegerSlots()))

	pool, runErr := engine.Run(ctx)
	if runErr != nil && pool == nil {
		logger.Error("run failed", "error", runErr)
		os.Exit(1)
	}
	if runErr != nil {
		// Interrupted runs still report the best candidate found so far.
		logger.Warn("run stopped early", "error", runErr)
	}

	best, err := engine.Best()
	if err != nil {
		logger.Error("no result", "error", err)
		os.Exit(1)
	}

	report, err := def.Describe(best.Data)
	if err != nil {
		logger.Error("result evaluation failed", "error", err)
		os.Exit(1)
	}

	printReport(def, report, pool.Generation)

	if *savePath != "" {
		archive := persistence.NewArchive(def.Name, pool)
		mgr := persistence.NewManager(*savePath)
		if err := mgr.Save(archive); err != nil {
			logger.Error("archive save failed", "error", err)
			os.Exit(1)
		}
		logger.Info("run archived", "run_id", archive.RunID, "path", mgr.FilePath(archive.RunID))
	}
}

func resolveProblem(registry *problem.Registry, name, manifestPath string) (*problem.Definition, error) {
	if manifestPath != "" {
		return manifest.Load(manifestPath)
	}
	def, ok := registry.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("unknown problem %q (known: %s)", name, strings.Join(registry.Names(), ", "))
	}
	return def, nil
}

func printReport(def *problem.Definition, r *problem.Report, generation int) {
	fmt.Printf("Problem: %s (generation %d)\n", def.Name, generation)
	fmt.Println("══════════════════════════════════════════════════════════════")
	fmt.Printf("%-10s %12s %12s %12s\n", "Section", "Width", "Height", "Aspect")
	fmt.Println("──────────────────────────────────────────────────────────────")
	for i := 0; i < beam.SectionCount; i++ {
		b, h := r.Decoded[2*i], r.Decoded[2*i+1]
		fmt.Printf("%-10d %12.3f %12.3f %12.2f\n", i+1, b, h, h/b)
	}
	fmt.Println("──────────────────────────────────────────────────────────────")
	fmt.Printf("Volume: %.2f\n", r.Volume)

	status := "FEASIBLE"
	if !r.Feasible {
		status = "INFEASIBLE"
	}
	fmt.Printf("Constraints: %s\n", status)
	labels := []string{
		"stress s5 (tip)", "stress s4", "stress s3", "stress s2", "stress s1 (root)",
		"deflection",
		"aspect s1", "aspect s2", "aspect s3", "aspect s4", "aspect s5",
	}
	for i, res := range r.Residuals {
		mark := "ok"
		if res > 0 {
			mark = "VIOLATED"
		}
		fmt.Printf("  %-18s %14.4f  %s\n", labels[i], res, mark)
	}
	fmt.Println("══════════════════════════════════════════════════════════════")
}
