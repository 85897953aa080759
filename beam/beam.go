// Package beam evaluates the stepped cantilever beam design problem:
// material volume as the objective and stress, deflection, and aspect-ratio
// margins as inequality constraints, all over a 10-slot design vector of
// alternating section widths and heights (b1,h1,...,b5,h5). Section 1 is at
// the fixed end, section 5 at the loaded tip.
//
// Every evaluation is a pure function of its input vector; evaluators hold
// only immutable configuration and are safe for concurrent use.
package beam

import (
	"errors"
	"fmt"
	"math"
)

// SectionCount is the number of steps in the beam.
const SectionCount = 5

// SlotCount is the design vector length: width and height per section.
const SlotCount = 2 * SectionCount

// ResidualCount is the number of inequality residuals returned by
// Constraints: one stress margin per section, one tip deflection margin,
// one aspect-ratio margin per section.
const ResidualCount = 2*SectionCount + 1

var (
	// ErrDimensionMismatch reports a design vector of the wrong length.
	ErrDimensionMismatch = errors.New("design vector dimension mismatch")

	// ErrNonFinite reports an evaluation that produced NaN or Inf,
	// typically a zero or negative section dimension slipping past the
	// solver bounds.
	ErrNonFinite = errors.New("non-finite evaluation result")
)

// Config holds the physical constants of one beam instance. Alternate beams
// (different load, material, allowables) reuse the same evaluation logic
// with a different Config.
type Config struct {
	// Load is the force P applied at the beam tip.
	Load float64
	// SectionLength is the length l of each step.
	SectionLength float64
	// Elasticity is the Young's modulus E of the material.
	Elasticity float64
	// MaxStress is the allowable bending stress per section.
	MaxStress float64
	// MaxDeflection is the allowable deflection at the tip.
	MaxDeflection float64
	// MaxAspect caps the height-to-width ratio of each section.
	MaxAspect float64
}

// DefaultConfig returns the canonical cantilever instance
// (P=50000, l=100, E=2e7, sigma=14000, delta=2.7, aspect=20).
func DefaultConfig() Config {
	return Config{
		Load:          50000,
		SectionLength: 100,
		Elasticity:    2e7,
		MaxStress:     14000,
		MaxDeflection: 2.7,
		MaxAspect:     20,
	}
}

// Evaluator computes objective and constraint values for one beam instance.
// The zero value is unusable; construct with NewEvaluator.
type Evaluator struct {
	cfg Config
}

// NewEvaluator binds the physical constants for subsequent evaluations.
func NewEvaluator(cfg Config) *Evaluator {
	return &Evaluator{cfg: cfg}
}

// Config returns the bound physical constants.
func (e *Evaluator) Config() Config {
	return e.cfg
}

func checkLength(x []float64) error {
	if len(x) != SlotCount {
		return fmt.Errorf("%w: got %d slots, want %d", ErrDimensionMismatch, len(x), SlotCount)
	}
	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
