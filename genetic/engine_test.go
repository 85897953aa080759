package genetic

import (
	"context"
	"errors"
	"math"
	"math/rand/v2"
	"testing"
)

func sphereEngine(seed uint64, maxGen int) *Engine[[]float64, float64] {
	bounds := []ParameterBounds{{Min: -5, Max: 5}, {Min: -5, Max: 5}, {Min: -5, Max: 5}}

	evaluator := func(x []float64) (float64, error) {
		s := 0.0
		for _, v := range x {
			s += v * v
		}
		return s, nil
	}
	initializer := &BoundedInitializer{Bounds: bounds}
	perturbator := &BoundedPerturbator{Bounds: bounds, StandardDeviation: 0.05}

	return NewEngine[[]float64, float64](
		evaluator,
		initializer.Generate,
		&TournamentSelector[[]float64, float64]{TournamentSize: 3},
		&UniformCombiner[[]float64, float64, float64]{MixProbability: 0.5},
		perturbator,
		EngineConfig{
			PoolSize:             30,
			EliteCount:           3,
			PerturbationRate:     0.4,
			PerturbationStrength: 0.4,
			MaxGenerations:       maxGen,
			Parallelism:          2,
			Seed:                 seed,
		},
	)
}

func TestEngine_MinimizesSphere(t *testing.T) {
	engine := sphereEngine(11, 60)

	pool, err := engine.Run(context.Background())
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	best, err := engine.Best()
	if err != nil {
		t.Fatalf("best failed: %v", err)
	}
	if best.Score > 2.5 {
		t.Errorf("expected convergence toward the origin, got %v", best.Score)
	}
	if pool.Stats.BestScore != best.Score {
		t.Errorf("stats best %v != best %v", pool.Stats.BestScore, best.Score)
	}
	if pool.Generation != 60 {
		t.Errorf("expected 60 generations, got %d", pool.Generation)
	}
}

func TestEngine_EliteNeverRegresses(t *testing.T) {
	engine := sphereEngine(3, 40)

	prev := math.Inf(1)
	engine.SetObserver(func(pool *Pool[[]float64, float64]) {
		if pool.Stats.BestScore > prev {
			t.Errorf("generation %d: best regressed %v -> %v",
				pool.Generation, prev, pool.Stats.BestScore)
		}
		prev = pool.Stats.BestScore
	})

	if _, err := engine.Run(context.Background()); err != nil {
		t.Fatalf("run failed: %v", err)
	}
}

func TestEngine_Terminator(t *testing.T) {
	engine := sphereEngine(5, 100)
	engine.SetTerminator(func(pool *Pool[[]float64, float64], iteration int) bool {
		return iteration >= 10
	})

	pool, err := engine.Run(context.Background())
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if pool.Generation != 10 {
		t.Errorf("expected stop at generation 10, got %d", pool.Generation)
	}
}

func TestEngine_EvaluatorErrorAborts(t *testing.T) {
	bounds := []ParameterBounds{{Min: 0, Max: 1}}
	sentinel := errors.New("bad candidate")

	initializer := &BoundedInitializer{Bounds: bounds}
	engine := NewEngine[[]float64, float64](
		func(x []float64) (float64, error) { return 0, sentinel },
		initializer.Generate,
		&TournamentSelector[[]float64, float64]{TournamentSize: 2},
		&UniformCombiner[[]float64, float64, float64]{MixProbability: 0.5},
		&BoundedPerturbator{Bounds: bounds, StandardDeviation: 0.1},
		EngineConfig{PoolSize: 4, MaxGenerations: 5, Parallelism: 2, Seed: 1},
	)

	if _, err := engine.Run(context.Background()); !errors.Is(err, sentinel) {
		t.Errorf("expected evaluator error, got %v", err)
	}
}

func TestEngine_ContextCancellation(t *testing.T) {
	engine := sphereEngine(9, 1000)

	ctx, cancel := context.WithCancel(context.Background())
	engine.SetObserver(func(pool *Pool[[]float64, float64]) {
		if pool.Generation >= 3 {
			cancel()
		}
	})

	if _, err := engine.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestEngine_InjectPopulation(t *testing.T) {
	engine := sphereEngine(13, 5)

	seedPool := []Candidate[[]float64, float64]{
		{Data: []float64{0.1, 0.1, 0.1}, Score: 0.03},
		{Data: []float64{1, 1, 1}, Score: 3},
		{Data: []float64{2, 2, 2}, Score: 12},
		{Data: []float64{3, 3, 3}, Score: 27},
	}
	engine.InjectPopulation(seedPool, 42)

	pool, err := engine.Run(context.Background())
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if pool.Generation != 47 {
		t.Errorf("expected generation 47, got %d", pool.Generation)
	}

	best, err := engine.Best()
	if err != nil {
		t.Fatalf("best failed: %v", err)
	}
	if best.Score > 0.03 {
		t.Errorf("injected elite lost: best %v", best.Score)
	}
}

func TestEngine_SeedReproducibility(t *testing.T) {
	run := func() float64 {
		engine := sphereEngine(21, 20)
		if _, err := engine.Run(context.Background()); err != nil {
			t.Fatalf("run failed: %v", err)
		}
		best, err := engine.Best()
		if err != nil {
			t.Fatalf("best failed: %v", err)
		}
		return best.Score
	}

	if a, b := run(), run(); a != b {
		t.Errorf("same seed produced different results: %v != %v", a, b)
	}
}

func TestCalculateStats(t *testing.T) {
	candidates := []Candidate[[]float64, float64]{
		{Score: 4}, {Score: 1}, {Score: 7},
	}
	stats := calculateStats(candidates)

	if stats.BestScore != 1 {
		t.Errorf("expected best 1, got %v", stats.BestScore)
	}
	if stats.WorstScore != 7 {
		t.Errorf("expected worst 7, got %v", stats.WorstScore)
	}
	if stats.AverageScore != 4 {
		t.Errorf("expected average 4, got %v", stats.AverageScore)
	}
}

func testRNG() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}
