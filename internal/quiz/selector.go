package quiz

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"github.com/otaku-quiz/backend/internal/content"
	"github.com/otaku-quiz/backend/internal/models"
)

// ErrNoEligibleQuestions means nothing in the pool matched the request.
// Surfaced to users as "no questions for this series/difficulty
// combination" — not a retryable condition.
var ErrNoEligibleQuestions = errors.New("no eligible questions for the requested series/difficulty")

// PoolCap bounds a single pool fetch. Sampling fairness depends on
// retrieving the entire eligible pool, so this must exceed any real
// pool size rather than track the requested count.
const PoolCap = 5000

// DefaultCount is the session size when a request leaves count unset.
const DefaultCount = 10

// SelectRequest is a session selection request. Empty Series means all
// series (mixed mode); nil Difficulty means any difficulty.
type SelectRequest struct {
	Series     []string
	Difficulty *models.Difficulty
	Count      int
}

// Selector draws fair, non-repeating question subsets from a
// Repository. Stateless; safe for concurrent use.
type Selector struct {
	repo content.Repository
}

func NewSelector(repo content.Repository) *Selector {
	return &Selector{repo: repo}
}

// SelectSession fetches the full eligible pool, applies a uniform
// shuffle, and takes the first min(count, poolSize) questions. A pool
// smaller than the requested count is reported on the session, not an
// error. The repository call is the only suspension point.
func (s *Selector) SelectSession(ctx context.Context, req SelectRequest) (*Session, error) {
	count := req.Count
	if count <= 0 {
		count = DefaultCount
	}

	pool, err := s.repo.FetchQuestions(ctx, content.Filter{
		Series:     req.Series,
		Difficulty: req.Difficulty,
		Cap:        PoolCap,
	})
	if err != nil {
		return nil, fmt.Errorf("fetch eligible pool: %w", err)
	}
	if len(pool) == 0 {
		return nil, ErrNoEligibleQuestions
	}

	// Uniform Fisher-Yates over the whole pool, then a prefix take.
	rand.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
	requested := count
	if count > len(pool) {
		count = len(pool)
	}

	return newSession(pool[:count:count], requested), nil
}
