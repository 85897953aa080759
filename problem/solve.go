package problem

import (
	"github.com/lixenwraith/beamga/genetic"
	"github.com/lixenwraith/beamga/genetic/fitness"
	"github.com/lixenwraith/beamga/parameter"
)

// NewEngine assembles a ready-to-run genetic engine for the definition:
// bounded initializer and perturbator from the definition's bounds,
// tournament selection, uniform crossover, and a penalty-aggregated score.
func NewEngine(d *Definition, agg fitness.Aggregator, cfg genetic.EngineConfig) (*genetic.Engine[[]float64, float64], error) {
	score, err := d.Score(agg)
	if err != nil {
		return nil, err
	}

	initializer := &genetic.BoundedInitializer{Bounds: d.Bounds}
	perturbator := &genetic.BoundedPerturbator{
		Bounds:            d.Bounds,
		StandardDeviation: parameter.GAPerturbationStdDev,
	}
	selector := &genetic.TournamentSelector[[]float64, float64]{
		TournamentSize: parameter.GATournamentSize,
	}
	combiner := &genetic.UniformCombiner[[]float64, float64, float64]{
		MixProbability: parameter.GACrossoverMixProbability,
	}

	return genetic.NewEngine(
		score,
		initializer.Generate,
		selector,
		combiner,
		perturbator,
		cfg,
	), nil
}

// Report describes a fully evaluated design, the shape both the CLI and
// the monitor print.
type Report struct {
	// Coded is the solver-side vector, possibly carrying integer codes.
	Coded []float64
	// Decoded is the engineering-value vector.
	Decoded []float64
	// Volume is the objective at the decoded design.
	Volume float64
	// Residuals are the inequality margins at the decoded design.
	Residuals []float64
	// Feasible is true when every residual is within tolerance.
	Feasible bool
}

// Describe evaluates a coded vector into a Report.
func (d *Definition) Describe(x []float64) (*Report, error) {
	adapter, err := d.Adapter()
	if err != nil {
		return nil, err
	}

	decoded, err := adapter.Mapper().Decode(x)
	if err != nil {
		return nil, err
	}
	volume, err := adapter.Objective(x)
	if err != nil {
		return nil, err
	}
	ineq, eq, err := adapter.Constraints(x)
	if err != nil {
		return nil, err
	}

	return &Report{
		Coded:     append([]float64(nil), x...),
		Decoded:   decoded,
		Volume:    volume,
		Residuals: ineq,
		Feasible:  fitness.IsFeasible(ineq, eq, parameter.GAFeasibilityTolerance),
	}, nil
}
