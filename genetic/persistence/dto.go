package persistence

import (
	"time"

	"github.com/google/uuid"

	"github.com/lixenwraith/beamga/genetic"
)

// RunArchive is the serializable state of one optimization run.
type RunArchive struct {
	RunID      string            `yaml:"run_id"`
	Problem    string            `yaml:"problem"`
	CreatedAt  time.Time         `yaml:"created_at"`
	Generation int               `yaml:"generation"`
	Best       CandidateRecord   `yaml:"best"`
	Candidates []CandidateRecord `yaml:"candidates"`
}

// CandidateRecord is a serializable candidate.
type CandidateRecord struct {
	Genes []float64 `yaml:"genes"`
	Score float64   `yaml:"score"`
}

// NewArchive snapshots a finished pool under a fresh run ID.
func NewArchive(problemName string, pool *genetic.Pool[[]float64, float64]) RunArchive {
	archive := RunArchive{
		RunID:     uuid.New().String(),
		Problem:   problemName,
		CreatedAt: time.Now().UTC(),
	}
	if pool == nil {
		return archive
	}

	archive.Generation = pool.Generation
	archive.Candidates = make([]CandidateRecord, len(pool.Members))
	for i, m := range pool.Members {
		archive.Candidates[i] = CandidateRecord{
			Genes: m.Data,
			Score: m.Score,
		}
		if i == 0 || m.Score < archive.Best.Score {
			archive.Best = archive.Candidates[i]
		}
	}

	return archive
}

// Pool converts the archive back into candidates for injection into a
// fresh engine, resuming evolution where the archive left off.
func (a RunArchive) Pool() []genetic.Candidate[[]float64, float64] {
	candidates := make([]genetic.Candidate[[]float64, float64], len(a.Candidates))
	for i, c := range a.Candidates {
		candidates[i] = genetic.Candidate[[]float64, float64]{
			Data:  c.Genes,
			Score: c.Score,
		}
	}
	return candidates
}
