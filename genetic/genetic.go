package genetic

// Package genetic provides a generic-first genetic algorithm engine for
// constrained minimization problems
// 1. Has zero knowledge of problem-specific types: evaluators arrive as functions
// 2. Minimizes: candidate scores are costs, lower is better everywhere
// 3. Supports mixed-integer search through bound metadata on the operators
// 4. Provides an observer hook for progress reporting instead of polling

import (
	"math/rand/v2"
	"sort"
)

// --- Concrete Operator Implementations ---

// TournamentSelector implements tournament selection.
// Randomly samples small groups and selects the cheapest from each group.
type TournamentSelector[S Solution, F Numeric] struct {
	// TournamentSize is the number of candidates competing per tournament.
	TournamentSize int
}

// Select implements the Selector interface using tournament selection.
func (ts *TournamentSelector[S, F]) Select(pool *Pool[S, F], size int, rng *rand.Rand) []Candidate[S, F] {
	selected := make([]Candidate[S, F], 0, size)
	poolSize := len(pool.Members)

	tournSize := ts.TournamentSize
	if tournSize > poolSize {
		tournSize = poolSize
	}
	if tournSize < 1 {
		tournSize = 2
	}

	for len(selected) < size {
		winner := pool.Members[rng.IntN(poolSize)]
		for i := 1; i < tournSize; i++ {
			challenger := pool.Members[rng.IntN(poolSize)]
			if challenger.Score < winner.Score {
				winner = challenger
			}
		}
		selected = append(selected, winner)
	}

	return selected
}

// RankSelector implements rank-proportionate selection. Raw cost values are
// unusable as selection weights when minimizing (and penalty terms can span
// orders of magnitude), so candidates are weighted by rank instead: the
// cheapest candidate gets weight n, the most expensive weight 1.
type RankSelector[S Solution, F Numeric] struct{}

// Select implements rank-based roulette selection.
func (rs *RankSelector[S, F]) Select(pool *Pool[S, F], size int, rng *rand.Rand) []Candidate[S, F] {
	n := len(pool.Members)

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool {
		return pool.Members[order[a]].Score < pool.Members[order[b]].Score
	})

	// Cumulative rank weights: n, n-1, ..., 1 over the sorted order.
	cumulative := make([]int, n)
	total := 0
	for i := range order {
		total += n - i
		cumulative[i] = total
	}

	selected := make([]Candidate[S, F], size)
	for i := 0; i < size; i++ {
		spin := rng.IntN(total) + 1
		idx := sort.SearchInts(cumulative, spin)
		selected[i] = pool.Members[order[idx]]
	}

	return selected
}

// UniformCombiner performs uniform crossover between solutions.
// Each element has equal probability of coming from either parent.
type UniformCombiner[S ~[]T, T any, F Numeric] struct {
	// MixProbability is the chance of keeping parent order per position.
	MixProbability float64
}

// Combine creates offspring using uniform crossover.
func (uc *UniformCombiner[S, T, F]) Combine(parents []Candidate[S, F], rng *rand.Rand) []S {
	if len(parents) < 2 {
		if len(parents) == 1 {
			return []S{append(S(nil), parents[0].Data...)}
		}
		return []S{}
	}

	parent1, parent2 := parents[0].Data, parents[1].Data
	length := min(len(parent1), len(parent2))

	offspring1 := make(S, length)
	offspring2 := make(S, length)

	for i := 0; i < length; i++ {
		if rng.Float64() < uc.MixProbability {
			offspring1[i] = parent1[i]
			offspring2[i] = parent2[i]
		} else {
			offspring1[i] = parent2[i]
			offspring2[i] = parent1[i]
		}
	}

	return []S{offspring1, offspring2}
}

// NPointCombiner performs N-point crossover between solutions.
// The genome is split at N random points and segments are alternated.
type NPointCombiner[S ~[]T, T any, F Numeric] struct {
	// Points is the number of crossover points.
	Points int
}

// Combine creates offspring using N-point crossover.
func (nc *NPointCombiner[S, T, F]) Combine(parents []Candidate[S, F], rng *rand.Rand) []S {
	if len(parents) < 2 {
		if len(parents) == 1 {
			return []S{append(S(nil), parents[0].Data...)}
		}
		return []S{}
	}

	parent1, parent2 := parents[0].Data, parents[1].Data
	length := min(len(parent1), len(parent2))

	points := make([]int, 0, nc.Points+2)
	points = append(points, 0)
	for i := 0; i < nc.Points && i < length-1; i++ {
		points = append(points, rng.IntN(length-1)+1)
	}
	points = append(points, length)
	sort.Ints(points)

	offspring1 := make(S, length)
	offspring2 := make(S, length)

	useParent1 := true
	for i := 0; i < len(points)-1; i++ {
		for j := points[i]; j < points[i+1]; j++ {
			if useParent1 {
				offspring1[j] = parent1[j]
				offspring2[j] = parent2[j]
			} else {
				offspring1[j] = parent2[j]
				offspring2[j] = parent1[j]
			}
		}
		useParent1 = !useParent1
	}

	return []S{offspring1, offspring2}
}
