package genetic

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"sort"
	"sync"

	"github.com/lixenwraith/beamga/parameter"
)

// --- Algorithm Engine ---

// Engine executes the evolution loop: select, combine, perturb, evaluate,
// preserve elites. Randomness is confined to the single engine goroutine;
// only evaluation fans out to workers, which is what makes concurrent
// candidate evaluation safe for pure evaluator functions.
type Engine[S Solution, F Numeric] struct {
	// Core operators
	evaluator   EvaluatorFunc[S, F]
	initializer InitializerFunc[S]
	selector    Selector[S, F]
	combiner    Combiner[S, F]
	perturbator Perturbator[S]
	terminator  TerminationFunc[S, F]
	observer    ObserverFunc[S, F]

	// Configuration
	config EngineConfig

	// State
	rng         *rand.Rand
	currentPool *Pool[S, F]
	history     []PoolStats[F]

	// Concurrency control for evaluation
	semaphore chan struct{}
}

// EngineConfig holds tuning parameters for the algorithm.
type EngineConfig struct {
	// PoolSize is the number of candidates maintained per generation.
	PoolSize int
	// EliteCount is the number of cheapest solutions preserved unchanged.
	EliteCount int
	// PerturbationRate is the probability of mutating an offspring (0-1).
	PerturbationRate float64
	// PerturbationStrength is the per-element mutation probability passed
	// to the perturbator (0-1).
	PerturbationStrength float64
	// MaxGenerations caps the evolution loop.
	MaxGenerations int
	// Parallelism is the number of concurrent evaluations.
	Parallelism int
	// Seed for the engine rng (0 draws a random seed).
	Seed uint64
}

// DefaultConfig returns the stock tuning parameters.
func DefaultConfig() EngineConfig {
	return EngineConfig{
		PoolSize:             parameter.GAPoolSize,
		EliteCount:           parameter.GAEliteCount,
		PerturbationRate:     parameter.GAPerturbationRate,
		PerturbationStrength: parameter.GAPerturbationStrength,
		MaxGenerations:       parameter.GAMaxGenerations,
		Parallelism:          parameter.GAParallelism,
		Seed:                 0,
	}
}

// NewEngine creates an engine with the given operators.
func NewEngine[S Solution, F Numeric](
	evaluator EvaluatorFunc[S, F],
	initializer InitializerFunc[S],
	selector Selector[S, F],
	combiner Combiner[S, F],
	perturbator Perturbator[S],
	config EngineConfig,
) *Engine[S, F] {
	var rng *rand.Rand
	if config.Seed == 0 {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	} else {
		rng = rand.New(rand.NewPCG(config.Seed, config.Seed))
	}

	if config.Parallelism < 1 {
		config.Parallelism = 1
	}
	if config.PoolSize < 2 {
		config.PoolSize = 2
	}

	return &Engine[S, F]{
		evaluator:   evaluator,
		initializer: initializer,
		selector:    selector,
		combiner:    combiner,
		perturbator: perturbator,
		config:      config,
		rng:         rng,
		semaphore:   make(chan struct{}, config.Parallelism),
		history:     make([]PoolStats[F], 0, config.MaxGenerations),
	}
}

// SetTerminator sets a custom early-termination condition.
func (e *Engine[S, F]) SetTerminator(terminator TerminationFunc[S, F]) {
	e.terminator = terminator
}

// SetObserver registers a per-generation callback (progress logging,
// monitors). Called on the engine goroutine after each generation.
func (e *Engine[S, F]) SetObserver(observer ObserverFunc[S, F]) {
	e.observer = observer
}

// InjectPopulation seeds the engine with a previously saved population,
// replacing any initialized pool. Must be called before Run.
func (e *Engine[S, F]) InjectPopulation(candidates []Candidate[S, F], generation int) {
	e.currentPool = &Pool[S, F]{
		Members:    candidates,
		Generation: generation,
		Stats:      calculateStats(candidates),
	}
}

// Run executes the genetic algorithm until termination and returns the
// final pool. The returned pool is also available through Best afterwards.
func (e *Engine[S, F]) Run(ctx context.Context) (*Pool[S, F], error) {
	if e.currentPool == nil {
		if err := e.initializePool(ctx); err != nil {
			return nil, err
		}
		e.notify()
	}

	for iteration := 0; iteration < e.config.MaxGenerations; iteration++ {
		select {
		case <-ctx.Done():
			return e.currentPool, ctx.Err()
		default:
		}

		if e.terminator != nil && e.terminator(e.currentPool, iteration) {
			break
		}

		if err := e.evolveGeneration(ctx); err != nil {
			return e.currentPool, err
		}

		e.history = append(e.history, e.currentPool.Stats)
		e.notify()
	}

	return e.currentPool, nil
}

func (e *Engine[S, F]) notify() {
	if e.observer != nil {
		e.observer(e.currentPool)
	}
}

// initializePool creates and evaluates the initial population.
func (e *Engine[S, F]) initializePool(ctx context.Context) error {
	solutions := make([]S, e.config.PoolSize)
	for i := range solutions {
		solutions[i] = e.initializer(e.rng)
	}

	scores, err := e.evaluateBatch(ctx, solutions)
	if err != nil {
		return err
	}

	candidates := make([]Candidate[S, F], e.config.PoolSize)
	for i := range candidates {
		candidates[i] = Candidate[S, F]{Data: solutions[i], Score: scores[i]}
	}

	e.currentPool = &Pool[S, F]{
		Members:    candidates,
		Generation: 0,
		Stats:      calculateStats(candidates),
	}

	return nil
}

// evolveGeneration produces the next pool from the current one.
func (e *Engine[S, F]) evolveGeneration(ctx context.Context) error {
	elite := e.selectElite()

	// Breed offspring serially so the rng stays single-threaded, then
	// evaluate the whole batch in parallel.
	needed := e.config.PoolSize - len(elite)
	offspring := make([]S, 0, needed)
	for len(offspring) < needed {
		parents := e.selector.Select(e.currentPool, 2, e.rng)
		for _, child := range e.combiner.Combine(parents, e.rng) {
			if e.rng.Float64() < e.config.PerturbationRate {
				e.perturbator.Perturb(&child, e.config.PerturbationStrength, e.rng)
			}
			offspring = append(offspring, child)
			if len(offspring) >= needed {
				break
			}
		}
	}

	scores, err := e.evaluateBatch(ctx, offspring)
	if err != nil {
		return err
	}

	nextGen := make([]Candidate[S, F], 0, e.config.PoolSize)
	nextGen = append(nextGen, elite...)
	for i := range offspring {
		nextGen = append(nextGen, Candidate[S, F]{Data: offspring[i], Score: scores[i]})
	}

	e.currentPool = &Pool[S, F]{
		Members:    nextGen,
		Generation: e.currentPool.Generation + 1,
		Stats:      calculateStats(nextGen),
	}

	return nil
}

// evaluateBatch scores solutions concurrently, bounded by Parallelism.
// Each evaluation is independent; one failure aborts the batch but cannot
// corrupt sibling evaluations.
func (e *Engine[S, F]) evaluateBatch(ctx context.Context, solutions []S) ([]F, error) {
	scores := make([]F, len(solutions))
	errs := make([]error, len(solutions))

	var wg sync.WaitGroup
	for i := range solutions {
		select {
		case <-ctx.Done():
			wg.Wait()
			return nil, ctx.Err()
		case e.semaphore <- struct{}{}:
		}

		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			defer func() { <-e.semaphore }()
			scores[idx], errs[idx] = e.evaluator(solutions[idx])
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("candidate %d: %w", i, err)
		}
	}
	return scores, nil
}

// selectElite returns copies of the cheapest candidates for preservation.
func (e *Engine[S, F]) selectElite() []Candidate[S, F] {
	if e.config.EliteCount <= 0 {
		return []Candidate[S, F]{}
	}

	ranked := make([]Candidate[S, F], len(e.currentPool.Members))
	copy(ranked, e.currentPool.Members)
	sort.Slice(ranked, func(a, b int) bool {
		return ranked[a].Score < ranked[b].Score
	})

	eliteCount := min(e.config.EliteCount, len(ranked))
	return ranked[:eliteCount]
}

// calculateStats computes score statistics for a candidate pool.
func calculateStats[S Solution, F Numeric](candidates []Candidate[S, F]) PoolStats[F] {
	if len(candidates) == 0 {
		return PoolStats[F]{}
	}

	stats := PoolStats[F]{
		BestScore:  candidates[0].Score,
		WorstScore: candidates[0].Score,
	}

	total := F(0)
	for _, c := range candidates {
		if c.Score < stats.BestScore {
			stats.BestScore = c.Score
		}
		if c.Score > stats.WorstScore {
			stats.WorstScore = c.Score
		}
		total += c.Score
	}
	stats.AverageScore = total / F(len(candidates))

	return stats
}

// History returns the per-generation statistics recorded so far.
func (e *Engine[S, F]) History() []PoolStats[F] {
	return e.history
}

// Best returns the cheapest candidate in the current pool.
func (e *Engine[S, F]) Best() (Candidate[S, F], error) {
	if e.currentPool == nil || len(e.currentPool.Members) == 0 {
		return Candidate[S, F]{}, errors.New("no candidates available")
	}

	best := e.currentPool.Members[0]
	for _, c := range e.currentPool.Members[1:] {
		if c.Score < best.Score {
			best = c
		}
	}
	return best, nil
}
