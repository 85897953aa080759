// Package fitness folds objective values and constraint residuals into the
// single score a genetic engine minimizes. Constraint handling by penalty
// lives here, on the solver side of the problem boundary: evaluators report
// residuals, they never decide what infeasibility costs.
package fitness

// Aggregator combines an objective value with constraint residuals.
// Inequality residuals follow the <= 0 convention: positive means violated.
type Aggregator interface {
	Aggregate(objective float64, ineq, eq []float64) float64
}

// StaticPenalty charges a fixed weight times the squared violation of every
// constraint. Feasible candidates keep their raw objective, so the score
// ordering among feasible designs is exactly the objective ordering.
type StaticPenalty struct {
	// Weight scales the squared-violation sum.
	Weight float64
}

// Aggregate implements Aggregator.
func (p StaticPenalty) Aggregate(objective float64, ineq, eq []float64) float64 {
	penalty := 0.0
	for _, g := range ineq {
		if g > 0 {
			penalty += g * g
		}
	}
	for _, h := range eq {
		penalty += h * h
	}
	return objective + p.Weight*penalty
}

// MaxViolation returns the largest constraint violation, 0 for a feasible
// candidate. Equality residuals count by absolute value.
func MaxViolation(ineq, eq []float64) float64 {
	worst := 0.0
	for _, g := range ineq {
		if g > worst {
			worst = g
		}
	}
	for _, h := range eq {
		if h < 0 {
			h = -h
		}
		if h > worst {
			worst = h
		}
	}
	return worst
}

// IsFeasible reports whether all residuals are satisfied within tol.
func IsFeasible(ineq, eq []float64, tol float64) bool {
	return MaxViolation(ineq, eq) <= tol
}
