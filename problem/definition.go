// Package problem ties beam evaluators, discrete encodings, variable
// bounds, and solver wiring together into named, runnable problem
// definitions. Definitions are immutable once built; everything derived
// from them (adapters, evaluator functions) is safe for concurrent use.
package problem

import (
	"fmt"
	"sort"

	"github.com/lixenwraith/beamga/beam"
	"github.com/lixenwraith/beamga/discrete"
	"github.com/lixenwraith/beamga/genetic"
	"github.com/lixenwraith/beamga/genetic/fitness"
)

// Definition describes one optimization problem instance: the beam being
// designed, which slots carry integer codes, and the variable bounds handed
// to the solver.
type Definition struct {
	Name        string
	Description string

	// Beam holds the physical constants of the instance.
	Beam beam.Config

	// Encoding maps 1-based slots to discrete value catalogs. Empty for
	// continuous variants.
	Encoding discrete.EncodingMap

	// Bounds are the per-slot solver bounds, including integer flags.
	// Coded slots are bounded by [1, len(catalog)].
	Bounds []genetic.ParameterBounds
}

// Validate checks internal consistency: bounds length, encoded slot
// indices, and that every coded slot is integer-flagged with bounds
// covering exactly its catalog.
func (d *Definition) Validate() error {
	if d.Name == "" {
		return fmt.Errorf("problem has no name")
	}
	if len(d.Bounds) != beam.SlotCount {
		return fmt.Errorf("problem %s: %d bounds, want %d", d.Name, len(d.Bounds), beam.SlotCount)
	}
	for slot, set := range d.Encoding {
		if slot < 1 || slot > beam.SlotCount {
			return fmt.Errorf("problem %s: encoded slot %d outside [1,%d]", d.Name, slot, beam.SlotCount)
		}
		if len(set) == 0 {
			return fmt.Errorf("problem %s: slot %d has empty value set", d.Name, slot)
		}
		b := d.Bounds[slot-1]
		if !b.Integer {
			return fmt.Errorf("problem %s: coded slot %d is not integer-bounded", d.Name, slot)
		}
		if b.Min != 1 || b.Max != float64(len(set)) {
			return fmt.Errorf("problem %s: slot %d bounds [%v,%v] do not cover codes [1,%d]",
				d.Name, slot, b.Min, b.Max, len(set))
		}
	}
	return nil
}

// IntegerSlots returns the sorted 1-based indices of integer-constrained
// slots, the index set a solver's integer-variable mechanism receives.
func (d *Definition) IntegerSlots() []int {
	var slots []int
	for i, b := range d.Bounds {
		if b.Integer {
			slots = append(slots, i+1)
		}
	}
	sort.Ints(slots)
	return slots
}

// Adapter builds the coded-variable evaluation entry points for this
// definition: solver vectors in, decoded objective and residuals out.
func (d *Definition) Adapter() (*discrete.Adapter, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	mapper, err := discrete.NewMapper(beam.SlotCount, d.Encoding)
	if err != nil {
		return nil, err
	}

	ev := beam.NewEvaluator(d.Beam)
	return discrete.NewAdapter(mapper, ev.Volume, ev.Constraints), nil
}

// Score builds the engine-facing evaluator: decode, evaluate objective and
// constraints, aggregate into one cost.
func (d *Definition) Score(agg fitness.Aggregator) (genetic.EvaluatorFunc[[]float64, float64], error) {
	adapter, err := d.Adapter()
	if err != nil {
		return nil, err
	}

	return func(x []float64) (float64, error) {
		objective, err := adapter.Objective(x)
		if err != nil {
			return 0, err
		}
		ineq, eq, err := adapter.Constraints(x)
		if err != nil {
			return 0, err
		}
		return agg.Aggregate(objective, ineq, eq), nil
	}, nil
}
