package content

import (
	"context"
	"fmt"
	"sort"

	"github.com/otaku-quiz/backend/internal/models"
)

// Memory is an in-process Repository holding a fixed question pool.
// It backs tests and seed-file deployments that run without a database.
// Read-only after construction, so safe for concurrent use.
type Memory struct {
	questions []models.Question
}

// NewMemory builds an in-memory repository. Every question must satisfy
// the pool invariants.
func NewMemory(questions []models.Question) (*Memory, error) {
	seen := make(map[string]bool, len(questions))
	for i := range questions {
		q := &questions[i]
		if err := q.Validate(); err != nil {
			return nil, err
		}
		if seen[q.ID] {
			return nil, fmt.Errorf("duplicate question id %s", q.ID)
		}
		seen[q.ID] = true
	}
	pool := make([]models.Question, len(questions))
	copy(pool, questions)
	return &Memory{questions: pool}, nil
}

func (m *Memory) ListSeries(ctx context.Context) ([]string, error) {
	set := make(map[string]bool)
	for i := range m.questions {
		set[m.questions[i].Series] = true
	}
	series := make([]string, 0, len(set))
	for name := range set {
		series = append(series, name)
	}
	sort.Strings(series)
	return series, nil
}

func (m *Memory) SeriesCounts(ctx context.Context) (map[string]int, error) {
	counts := make(map[string]int)
	for i := range m.questions {
		counts[m.questions[i].Series]++
	}
	return counts, nil
}

func (m *Memory) DifficultyCounts(ctx context.Context, series string) (map[models.Difficulty]int, error) {
	counts := map[models.Difficulty]int{
		models.DifficultyBeginner:     0,
		models.DifficultyIntermediate: 0,
		models.DifficultyAdvanced:     0,
		models.DifficultyExpert:       0,
	}
	for i := range m.questions {
		q := &m.questions[i]
		if series != "" && q.Series != series {
			continue
		}
		counts[q.Difficulty]++
	}
	return counts, nil
}

func (m *Memory) FetchQuestions(ctx context.Context, f Filter) ([]models.Question, error) {
	var wanted map[string]bool
	if len(f.Series) > 0 {
		wanted = make(map[string]bool, len(f.Series))
		for _, name := range f.Series {
			wanted[name] = true
		}
	}

	var out []models.Question
	for i := range m.questions {
		q := m.questions[i]
		if wanted != nil && !wanted[q.Series] {
			continue
		}
		if f.Difficulty != nil && q.Difficulty != *f.Difficulty {
			continue
		}
		out = append(out, q)
		if len(out) == f.Cap {
			break
		}
	}
	return out, nil
}
