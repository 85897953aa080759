package beam

import "fmt"

// Volume returns the total material volume of the stepped beam:
// l * (b1*h1 + b2*h2 + b3*h3 + b4*h4 + b5*h5). This is the quantity a
// solver minimizes. The input must be fully decoded engineering values.
func (e *Evaluator) Volume(x []float64) (float64, error) {
	if err := checkLength(x); err != nil {
		return 0, err
	}

	area := 0.0
	for i := 0; i < SlotCount; i += 2 {
		area += x[i] * x[i+1]
	}

	v := e.cfg.SectionLength * area
	if !isFinite(v) {
		return 0, fmt.Errorf("%w: volume of %v", ErrNonFinite, x)
	}
	return v, nil
}
