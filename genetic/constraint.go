package genetic

import (
	"math"
	"math/rand/v2"
)

// ParameterBounds defines the search range for a single genome slot.
type ParameterBounds struct {
	Min, Max float64
	// Integer restricts the slot to whole values. Integer slots are how
	// discrete codes survive initialization and mutation intact.
	Integer bool
}

// snap rounds v onto the slot's grid and clamps to range.
func (b ParameterBounds) snap(v float64) float64 {
	if b.Integer {
		v = math.Round(v)
	}
	if v < b.Min {
		return b.Min
	}
	if v > b.Max {
		return b.Max
	}
	return v
}

// BoundedPerturbator applies Gaussian perturbation with range clamping.
// Integer slots are rounded after noise, so mutated genomes keep their
// codes representable.
type BoundedPerturbator struct {
	Bounds            []ParameterBounds
	StandardDeviation float64
}

func (bp *BoundedPerturbator) Perturb(solution *[]float64, rate float64, rng *rand.Rand) {
	if solution == nil || len(*solution) == 0 {
		return
	}

	for i := range *solution {
		if i >= len(bp.Bounds) {
			break
		}
		if rng.Float64() >= rate {
			continue
		}

		bounds := bp.Bounds[i]
		rangeSize := bounds.Max - bounds.Min
		noise := rng.NormFloat64() * bp.StandardDeviation * rangeSize
		if bounds.Integer && math.Abs(noise) < 1 {
			// Gaussian noise below one step would round away to nothing;
			// force a minimal move instead.
			noise = math.Copysign(1, noise)
		}

		(*solution)[i] = bounds.snap((*solution)[i] + noise)
	}
}

// Clamp enforces bounds without mutation.
func (bp *BoundedPerturbator) Clamp(solution []float64) []float64 {
	result := make([]float64, len(solution))
	for i, v := range solution {
		if i >= len(bp.Bounds) {
			result[i] = v
			continue
		}
		result[i] = bp.Bounds[i].snap(v)
	}
	return result
}

// BoundedInitializer generates genomes uniformly within bounds, with
// integer slots snapped to whole values. Use its Generate method as the
// engine's InitializerFunc.
type BoundedInitializer struct {
	Bounds []ParameterBounds
}

// Generate creates one random genome.
func (bi *BoundedInitializer) Generate(rng *rand.Rand) []float64 {
	genome := make([]float64, len(bi.Bounds))
	for i, b := range bi.Bounds {
		v := b.Min + rng.Float64()*(b.Max-b.Min)
		genome[i] = b.snap(v)
	}
	return genome
}
