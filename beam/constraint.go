package beam

import "fmt"

// Constraints returns the inequality and equality residuals for a fully
// decoded design vector. A residual <= 0 means the constraint is satisfied;
// interpreting the sign (penalties, feasibility filters) is the solver's
// business, not this package's.
//
// The inequality residuals come in fixed order:
//
//	[0..4]  bending stress margin per section, tip section first:
//	        6*P*k*l/(b*h^2) - MaxStress for k=1..5 over the pairs
//	        (x9,x10), (x7,x8), (x5,x6), (x3,x4), (x1,x2),
//	        k*l being the moment arm of the load at that section's root
//	[5]     tip deflection margin:
//	        (P*l^3/E) * (244/(x1*x2^3) + 148/(x3*x4^3) + 76/(x5*x6^3)
//	          + 28/(x7*x8^3) + 4/(x9*x10^3)) - MaxDeflection
//	[6..10] aspect-ratio margin per section, fixed end first:
//	        h - MaxAspect*b over (x1,x2), (x3,x4), (x5,x6), (x7,x8), (x9,x10)
//
// The equality residual slice is always empty: this problem has no equality
// constraints.
func (e *Evaluator) Constraints(x []float64) (ineq, eq []float64, err error) {
	if err := checkLength(x); err != nil {
		return nil, nil, err
	}

	c := e.cfg
	ineq = make([]float64, 0, ResidualCount)

	// Stress margins, walking from the tip section back to the fixed end
	// so the moment arm grows 1l..5l.
	for k := 1; k <= SectionCount; k++ {
		b := x[SlotCount-2*k]
		h := x[SlotCount-2*k+1]
		stress := 6 * c.Load * float64(k) * c.SectionLength / (b * h * h)
		ineq = append(ineq, stress-c.MaxStress)
	}

	// Tip deflection via superposition; the integer weights are the
	// closed-form coefficients for five equal-length steps.
	weights := [SectionCount]float64{244, 148, 76, 28, 4}
	l3 := c.SectionLength * c.SectionLength * c.SectionLength
	defl := 0.0
	for i := 0; i < SectionCount; i++ {
		b := x[2*i]
		h := x[2*i+1]
		defl += weights[i] / (b * h * h * h)
	}
	defl *= c.Load * l3 / c.Elasticity
	ineq = append(ineq, defl-c.MaxDeflection)

	// Aspect-ratio margins, fixed end first.
	for i := 0; i < SectionCount; i++ {
		b := x[2*i]
		h := x[2*i+1]
		ineq = append(ineq, h-c.MaxAspect*b)
	}

	for i, r := range ineq {
		if !isFinite(r) {
			return nil, nil, fmt.Errorf("%w: residual %d of %v", ErrNonFinite, i, x)
		}
	}

	return ineq, []float64{}, nil
}
