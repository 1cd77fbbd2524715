package content

import (
	"context"
	"errors"

	"github.com/otaku-quiz/backend/internal/models"
)

// ErrUnavailable wraps transient backing-store failures. Callers may
// retry; the retry policy is theirs.
var ErrUnavailable = errors.New("content store unavailable")

// Filter narrows a question fetch. A nil/empty Series slice means no
// series restriction; a single entry is an equality match; multiple
// entries are a set-membership match. A nil Difficulty means any.
type Filter struct {
	Series     []string
	Difficulty *models.Difficulty
	// Cap bounds the result length. Callers sampling for fairness must
	// pass a cap that covers the whole eligible pool.
	Cap int
}

// Repository is the read-only contract over the question pool. Result
// order is unspecified; callers must not rely on store order.
type Repository interface {
	ListSeries(ctx context.Context) ([]string, error)
	SeriesCounts(ctx context.Context) (map[string]int, error)
	// DifficultyCounts returns per-difficulty question counts, scoped
	// to one series when series is non-empty.
	DifficultyCounts(ctx context.Context, series string) (map[models.Difficulty]int, error)
	FetchQuestions(ctx context.Context, f Filter) ([]models.Question, error)
}
