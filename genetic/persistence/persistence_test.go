package persistence

import (
	"testing"

	"github.com/lixenwraith/beamga/genetic"
)

func testPool() *genetic.Pool[[]float64, float64] {
	return &genetic.Pool[[]float64, float64]{
		Members: []genetic.Candidate[[]float64, float64]{
			{Data: []float64{3, 60, 2, 3}, Score: 64000},
			{Data: []float64{2, 45, 1, 2}, Score: 61500},
			{Data: []float64{5, 65, 4, 4}, Score: 72000},
		},
		Generation: 17,
	}
}

func TestNewArchive(t *testing.T) {
	a := NewArchive("cantilever-discrete", testPool())

	if a.RunID == "" {
		t.Error("expected a run ID")
	}
	if a.Problem != "cantilever-discrete" {
		t.Errorf("expected problem name, got %q", a.Problem)
	}
	if a.Generation != 17 {
		t.Errorf("expected generation 17, got %d", a.Generation)
	}
	if len(a.Candidates) != 3 {
		t.Fatalf("expected 3 candidates, got %d", len(a.Candidates))
	}
	if a.Best.Score != 61500 {
		t.Errorf("expected best 61500, got %v", a.Best.Score)
	}

	// Distinct runs get distinct IDs.
	b := NewArchive("cantilever-discrete", testPool())
	if a.RunID == b.RunID {
		t.Error("expected unique run IDs")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	m := NewManager(t.TempDir())

	a := NewArchive("cantilever-discrete", testPool())
	if err := m.Save(a); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := m.Load(a.RunID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if loaded.RunID != a.RunID || loaded.Problem != a.Problem || loaded.Generation != a.Generation {
		t.Errorf("metadata mismatch: %+v vs %+v", loaded, a)
	}
	if len(loaded.Candidates) != len(a.Candidates) {
		t.Fatalf("expected %d candidates, got %d", len(a.Candidates), len(loaded.Candidates))
	}
	for i, c := range loaded.Candidates {
		if c.Score != a.Candidates[i].Score {
			t.Errorf("candidate %d: score %v != %v", i, c.Score, a.Candidates[i].Score)
		}
		for j, g := range c.Genes {
			if g != a.Candidates[i].Genes[j] {
				t.Errorf("candidate %d gene %d: %v != %v", i, j, g, a.Candidates[i].Genes[j])
			}
		}
	}
}

func TestArchivePool(t *testing.T) {
	a := NewArchive("cantilever-discrete", testPool())

	candidates := a.Pool()
	if len(candidates) != 3 {
		t.Fatalf("expected 3 candidates, got %d", len(candidates))
	}
	if candidates[1].Score != 61500 {
		t.Errorf("expected score 61500, got %v", candidates[1].Score)
	}
	if len(candidates[0].Data) != 4 {
		t.Errorf("expected 4 genes, got %d", len(candidates[0].Data))
	}
}

func TestList(t *testing.T) {
	m := NewManager(t.TempDir())

	runs, err := m.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected empty list, got %v", runs)
	}

	a := NewArchive("p", testPool())
	b := NewArchive("p", testPool())
	if err := m.Save(a); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if err := m.Save(b); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	runs, err = m.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 2 {
		t.Errorf("expected 2 runs, got %v", runs)
	}
}

func TestSave_RequiresRunID(t *testing.T) {
	m := NewManager(t.TempDir())

	if err := m.Save(RunArchive{}); err == nil {
		t.Error("expected error for missing run ID")
	}
}
