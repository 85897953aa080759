package discrete

// ObjectiveFunc evaluates a fully decoded design vector to a scalar cost.
type ObjectiveFunc func(x []float64) (float64, error)

// ConstraintFunc evaluates a fully decoded design vector to inequality and
// equality constraint residuals.
type ConstraintFunc func(x []float64) (ineq, eq []float64, err error)

// Adapter presents coded-variable entry points over decoded evaluators.
// The solver hands it vectors that still carry integer codes; the wrapped
// evaluators only ever see engineering values. Signatures match the
// undecoded evaluators exactly, so the solver cannot tell whether decoding
// happens at all.
type Adapter struct {
	mapper      *Mapper
	objective   ObjectiveFunc
	constraints ConstraintFunc
}

// NewAdapter wraps the evaluators behind the mapper's decode step. Either
// evaluator may be nil if the corresponding entry point is unused.
func NewAdapter(m *Mapper, objective ObjectiveFunc, constraints ConstraintFunc) *Adapter {
	return &Adapter{mapper: m, objective: objective, constraints: constraints}
}

// Mapper returns the decode step the adapter applies.
func (a *Adapter) Mapper() *Mapper {
	return a.mapper
}

// Objective decodes x and evaluates the wrapped objective.
func (a *Adapter) Objective(x []float64) (float64, error) {
	decoded, err := a.mapper.Decode(x)
	if err != nil {
		return 0, err
	}
	return a.objective(decoded)
}

// Constraints decodes x and evaluates the wrapped constraint function.
func (a *Adapter) Constraints(x []float64) ([]float64, []float64, error) {
	decoded, err := a.mapper.Decode(x)
	if err != nil {
		return nil, nil, err
	}
	return a.constraints(decoded)
}
