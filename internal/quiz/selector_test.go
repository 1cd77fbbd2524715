package quiz

import (
	"context"
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/otaku-quiz/backend/internal/content"
	"github.com/otaku-quiz/backend/internal/models"
)

func poolQuestion(id int, series string, difficulty models.Difficulty) models.Question {
	return models.Question{
		ID:            fmt.Sprintf("q%d", id),
		Series:        series,
		Difficulty:    difficulty,
		Text:          fmt.Sprintf("question %d", id),
		Choices:       [4]string{"a", "b", "c", "d"},
		CorrectAnswer: 1 + id%4,
		Explanation:   "because",
		TimeLimit:     20,
	}
}

func memoryRepo(t *testing.T, questions []models.Question) *content.Memory {
	t.Helper()
	repo, err := content.NewMemory(questions)
	if err != nil {
		t.Fatalf("NewMemory: %v", err)
	}
	return repo
}

func testPool(n int) []models.Question {
	questions := make([]models.Question, 0, n)
	for i := 0; i < n; i++ {
		questions = append(questions, poolQuestion(i, "one-piece", models.Difficulty(1+i%4)))
	}
	return questions
}

func TestSelectSessionSizing(t *testing.T) {
	tests := []struct {
		poolSize  int
		count     int
		wantLen   int
		wantShort bool
	}{
		{30, 10, 10, false},
		{10, 10, 10, false},
		{7, 10, 7, true},
		{1, 10, 1, true},
		{30, 0, 10, false}, // default count
	}

	for _, tt := range tests {
		selector := NewSelector(memoryRepo(t, testPool(tt.poolSize)))
		sess, err := selector.SelectSession(context.Background(), SelectRequest{Count: tt.count})
		if err != nil {
			t.Fatalf("SelectSession(pool=%d count=%d): %v", tt.poolSize, tt.count, err)
		}
		if got := len(sess.Questions()); got != tt.wantLen {
			t.Errorf("pool=%d count=%d: got %d questions, want %d", tt.poolSize, tt.count, got, tt.wantLen)
		}
		short := len(sess.Questions()) < sess.Requested
		if short != tt.wantShort {
			t.Errorf("pool=%d count=%d: short = %v, want %v", tt.poolSize, tt.count, short, tt.wantShort)
		}
	}
}

func TestSelectSessionNoRepeats(t *testing.T) {
	pool := testPool(25)
	selector := NewSelector(memoryRepo(t, pool))

	inPool := make(map[string]bool, len(pool))
	for _, q := range pool {
		inPool[q.ID] = true
	}

	for trial := 0; trial < 50; trial++ {
		sess, err := selector.SelectSession(context.Background(), SelectRequest{Count: 10})
		if err != nil {
			t.Fatalf("SelectSession: %v", err)
		}
		seen := make(map[string]bool)
		for _, q := range sess.Questions() {
			if !inPool[q.ID] {
				t.Fatalf("question %s not from the eligible pool", q.ID)
			}
			if seen[q.ID] {
				t.Fatalf("question %s repeated within one session", q.ID)
			}
			seen[q.ID] = true
		}
	}
}

func TestSelectSessionEmptyPool(t *testing.T) {
	selector := NewSelector(memoryRepo(t, testPool(12)))

	hard := models.DifficultyExpert
	_, err := selector.SelectSession(context.Background(), SelectRequest{
		Series:     []string{"naruto"}, // no such series in the pool
		Difficulty: &hard,
		Count:      10,
	})
	if !errors.Is(err, ErrNoEligibleQuestions) {
		t.Fatalf("err = %v, want ErrNoEligibleQuestions", err)
	}

	// Deterministic: the same request always fails the same way.
	for i := 0; i < 10; i++ {
		if _, err := selector.SelectSession(context.Background(), SelectRequest{Series: []string{"naruto"}, Count: 5}); !errors.Is(err, ErrNoEligibleQuestions) {
			t.Fatalf("trial %d: err = %v, want ErrNoEligibleQuestions", i, err)
		}
	}
}

func TestSelectSessionFilters(t *testing.T) {
	questions := []models.Question{
		poolQuestion(1, "one-piece", 1),
		poolQuestion(2, "one-piece", 2),
		poolQuestion(3, "naruto", 1),
		poolQuestion(4, "bleach", 3),
	}
	selector := NewSelector(memoryRepo(t, questions))

	easy := models.DifficultyBeginner
	sess, err := selector.SelectSession(context.Background(), SelectRequest{
		Series:     []string{"one-piece", "naruto"},
		Difficulty: &easy,
		Count:      10,
	})
	if err != nil {
		t.Fatalf("SelectSession: %v", err)
	}
	if len(sess.Questions()) != 2 {
		t.Fatalf("got %d questions, want 2", len(sess.Questions()))
	}
	for _, q := range sess.Questions() {
		if q.Difficulty != easy {
			t.Errorf("question %s has difficulty %d, want 1", q.ID, q.Difficulty)
		}
		if q.Series == "bleach" {
			t.Errorf("question %s leaked from an unselected series", q.ID)
		}
	}
}

// TestSelectSessionUniformity checks that over many trials each pool
// question lands in the session at roughly the same rate, and that the
// first position is not biased toward any question. Statistical, with a
// generous tolerance band.
func TestSelectSessionUniformity(t *testing.T) {
	const (
		poolSize = 10
		pick     = 5
		trials   = 4000
	)
	selector := NewSelector(memoryRepo(t, testPool(poolSize)))

	selected := make(map[string]int)
	firstPos := make(map[string]int)
	for i := 0; i < trials; i++ {
		sess, err := selector.SelectSession(context.Background(), SelectRequest{Count: pick})
		if err != nil {
			t.Fatalf("SelectSession: %v", err)
		}
		for _, q := range sess.Questions() {
			selected[q.ID]++
		}
		firstPos[sess.Questions()[0].ID]++
	}

	// Each question should be selected in ~pick/poolSize of trials.
	wantSelected := float64(trials) * float64(pick) / float64(poolSize)
	for id, n := range selected {
		if math.Abs(float64(n)-wantSelected) > wantSelected*0.15 {
			t.Errorf("question %s selected %d times, want ~%.0f", id, n, wantSelected)
		}
	}
	if len(selected) != poolSize {
		t.Errorf("only %d of %d questions ever selected", len(selected), poolSize)
	}

	// Each question should open the session in ~1/poolSize of trials.
	wantFirst := float64(trials) / float64(poolSize)
	for id, n := range firstPos {
		if math.Abs(float64(n)-wantFirst) > wantFirst*0.25 {
			t.Errorf("question %s was first %d times, want ~%.0f", id, n, wantFirst)
		}
	}
}

// TestChoiceShuffleRoundTrip verifies that judging an answer through
// the presentation permutation gives the same verdict as judging the
// unshuffled question directly.
func TestChoiceShuffleRoundTrip(t *testing.T) {
	selector := NewSelector(memoryRepo(t, testPool(20)))

	for trial := 0; trial < 20; trial++ {
		sess, err := selector.SelectSession(context.Background(), SelectRequest{Count: 10})
		if err != nil {
			t.Fatalf("SelectSession: %v", err)
		}
		for pos, q := range sess.Questions() {
			presented := sess.Presented(pos)
			if len(presented) != models.NumChoices {
				t.Fatalf("question %s presents %d choices, want 4", q.ID, len(presented))
			}
			seen := make(map[int]bool)
			for slot, c := range presented {
				orig := c.OriginalIndex
				if orig < 1 || orig > models.NumChoices {
					t.Fatalf("question %s slot %d maps to invalid original index %d", q.ID, slot+1, orig)
				}
				if seen[orig] {
					t.Fatalf("question %s repeats original index %d", q.ID, orig)
				}
				seen[orig] = true

				if c.Text != q.Choice(orig) {
					t.Errorf("question %s slot %d text %q != original choice %d text %q",
						q.ID, slot+1, c.Text, orig, q.Choice(orig))
				}

				// Same verdict through the mapping as against the
				// unshuffled question.
				throughMapping := orig == q.CorrectAnswer
				direct := q.Choice(orig) == q.Choice(q.CorrectAnswer)
				if throughMapping != direct {
					t.Errorf("question %s slot %d: verdict through mapping %v, direct %v",
						q.ID, slot+1, throughMapping, direct)
				}
			}
		}
	}
}

// failRepo simulates a transient backing-store outage.
type failRepo struct{}

func (failRepo) ListSeries(ctx context.Context) ([]string, error) {
	return nil, fmt.Errorf("list series: %w", content.ErrUnavailable)
}
func (failRepo) SeriesCounts(ctx context.Context) (map[string]int, error) {
	return nil, fmt.Errorf("series counts: %w", content.ErrUnavailable)
}
func (failRepo) DifficultyCounts(ctx context.Context, series string) (map[models.Difficulty]int, error) {
	return nil, fmt.Errorf("difficulty counts: %w", content.ErrUnavailable)
}
func (failRepo) FetchQuestions(ctx context.Context, f content.Filter) ([]models.Question, error) {
	return nil, fmt.Errorf("fetch questions: %w", content.ErrUnavailable)
}

func TestSelectSessionRepositoryUnavailable(t *testing.T) {
	selector := NewSelector(failRepo{})
	_, err := selector.SelectSession(context.Background(), SelectRequest{Count: 10})
	if !errors.Is(err, content.ErrUnavailable) {
		t.Fatalf("err = %v, want wrapped ErrUnavailable", err)
	}
}
