package problem

import (
	"context"
	"math"
	"testing"

	"github.com/lixenwraith/beamga/genetic"
	"github.com/lixenwraith/beamga/genetic/fitness"
)

func TestBuiltins_Validate(t *testing.T) {
	for _, d := range []*Definition{VariantContinuous(), VariantDiscrete()} {
		if err := d.Validate(); err != nil {
			t.Errorf("%s: %v", d.Name, err)
		}
	}
}

func TestIntegerSlots(t *testing.T) {
	got := VariantContinuous().IntegerSlots()
	want := []int{1, 2}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}

	got = VariantDiscrete().IntegerSlots()
	want = []int{1, 2, 3, 4, 5, 6}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestAdapter_DiscreteMatchesDecodedObjective(t *testing.T) {
	d := VariantDiscrete()
	adapter, err := d.Adapter()
	if err != nil {
		t.Fatalf("adapter failed: %v", err)
	}

	coded := []float64{3, 50, 2, 3, 2, 3, 3, 55, 3, 55}
	decoded := []float64{3, 50, 2.6, 55, 2.6, 55, 3, 55, 3, 55}

	codedV, err := adapter.Objective(coded)
	if err != nil {
		t.Fatalf("coded objective failed: %v", err)
	}

	// Same evaluation through the continuous (identity-mapped) variant.
	cont, err := VariantContinuous().Adapter()
	if err != nil {
		t.Fatalf("adapter failed: %v", err)
	}
	plainV, err := cont.Objective(decoded)
	if err != nil {
		t.Fatalf("decoded objective failed: %v", err)
	}

	if codedV != plainV {
		t.Errorf("coded %v != decoded %v", codedV, plainV)
	}
}

func TestScore_PenalizesInfeasible(t *testing.T) {
	d := VariantContinuous()
	score, err := d.Score(fitness.StaticPenalty{Weight: 1})
	if err != nil {
		t.Fatalf("score failed: %v", err)
	}

	// Minimal sections: badly infeasible, so score must sit far above
	// the raw volume.
	x := []float64{1, 30, 2.4, 45, 2.4, 45, 1, 30, 1, 30}
	adapter, _ := d.Adapter()
	volume, _ := adapter.Objective(x)

	s, err := score(x)
	if err != nil {
		t.Fatalf("score eval failed: %v", err)
	}
	if s <= volume {
		t.Errorf("expected penalized score above volume %v, got %v", volume, s)
	}
}

func TestRegistry(t *testing.T) {
	r := NewBuiltinRegistry()

	names := r.Names()
	if len(names) != 2 || names[0] != NameContinuous || names[1] != NameDiscrete {
		t.Errorf("unexpected names %v", names)
	}

	if _, ok := r.Lookup(NameDiscrete); !ok {
		t.Error("expected discrete variant registered")
	}
	if _, ok := r.Lookup("nope"); ok {
		t.Error("unexpected lookup hit")
	}

	if err := r.Register(VariantDiscrete()); err == nil {
		t.Error("expected duplicate registration error")
	}
}

func TestEngine_DiscreteRunStaysOnCatalog(t *testing.T) {
	d := VariantDiscrete()

	engine, err := NewEngine(d, fitness.StaticPenalty{Weight: 1e4}, genetic.EngineConfig{
		PoolSize:             24,
		EliteCount:           2,
		PerturbationRate:     0.3,
		PerturbationStrength: 0.3,
		MaxGenerations:       15,
		Parallelism:          2,
		Seed:                 7,
	})
	if err != nil {
		t.Fatalf("engine failed: %v", err)
	}

	pool, err := engine.Run(context.Background())
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	// Every surviving genome must keep coded slots on whole codes within
	// the catalog; otherwise evaluation would have errored already.
	for _, c := range pool.Members {
		for _, slot := range []int{3, 4, 5, 6} {
			v := c.Data[slot-1]
			if v != math.Round(v) || v < 1 || v > 4 {
				t.Fatalf("slot %d carries invalid code %v", slot, v)
			}
		}
	}

	best, err := engine.Best()
	if err != nil {
		t.Fatalf("best failed: %v", err)
	}
	report, err := d.Describe(best.Data)
	if err != nil {
		t.Fatalf("describe failed: %v", err)
	}
	if report.Volume <= 0 {
		t.Errorf("expected positive volume, got %v", report.Volume)
	}
}

func TestDescribe(t *testing.T) {
	d := VariantDiscrete()

	report, err := d.Describe([]float64{3, 50, 2, 3, 2, 3, 3, 55, 3, 55})
	if err != nil {
		t.Fatalf("describe failed: %v", err)
	}

	if report.Decoded[2] != 2.6 || report.Decoded[3] != 55 {
		t.Errorf("unexpected decode %v", report.Decoded)
	}
	if len(report.Residuals) != 11 {
		t.Errorf("expected 11 residuals, got %d", len(report.Residuals))
	}
	want := 100.0 * (3*50 + 2.6*55 + 2.6*55 + 3*55 + 3*55)
	if math.Abs(report.Volume-want) > 1e-9 {
		t.Errorf("expected volume %v, got %v", want, report.Volume)
	}
}
