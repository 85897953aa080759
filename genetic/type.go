package genetic

import (
	"math/rand/v2"
)

// --- Core Type Constraints ---

// Solution represents any type that can be used as a solution encoding.
type Solution any

// Numeric constrains types usable as objective scores.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// --- Core Data Structures ---

// Candidate pairs a solution encoding with its evaluated score.
// Scores are costs: lower is better throughout this package.
type Candidate[S Solution, F Numeric] struct {
	// Data holds the encoded solution representation.
	Data S
	// Score is the cost of this solution (lower = better).
	Score F
}

// Pool is the working set of candidates at one generation.
type Pool[S Solution, F Numeric] struct {
	// Members contains all candidates in this pool.
	Members []Candidate[S, F]
	// Generation is the iteration number this pool represents.
	Generation int
	// Stats holds score statistics for this pool.
	Stats PoolStats[F]
}

// PoolStats summarizes the score distribution of a pool.
type PoolStats[F Numeric] struct {
	BestScore    F
	WorstScore   F
	AverageScore F
}

// --- Function Types ---

// EvaluatorFunc computes the cost of a solution. An error aborts the run;
// evaluation failures here are deterministic contract violations, not
// transient conditions worth retrying.
type EvaluatorFunc[S Solution, F Numeric] func(solution S) (F, error)

// InitializerFunc creates one random solution for the initial pool.
type InitializerFunc[S Solution] func(rng *rand.Rand) S

// TerminationFunc reports whether the run should stop before the
// generation budget is exhausted.
type TerminationFunc[S Solution, F Numeric] func(pool *Pool[S, F], iteration int) bool

// ObserverFunc receives each completed generation. The pool is only valid
// until the callback returns; observers needing history must copy.
type ObserverFunc[S Solution, F Numeric] func(pool *Pool[S, F])

// --- Operators ---

// Selector chooses candidates from the pool for reproduction.
type Selector[S Solution, F Numeric] interface {
	// Select returns size candidates drawn from the pool.
	Select(pool *Pool[S, F], size int, rng *rand.Rand) []Candidate[S, F]
}

// Combiner creates offspring encodings from parent candidates.
type Combiner[S Solution, F Numeric] interface {
	// Combine returns one or more new solution encodings.
	Combine(parents []Candidate[S, F], rng *rand.Rand) []S
}

// Perturbator mutates a solution in place to maintain diversity.
type Perturbator[S Solution] interface {
	// Perturb modifies the solution; rate controls per-element
	// mutation probability (0-1).
	Perturb(solution *S, rate float64, rng *rand.Rand)
}
