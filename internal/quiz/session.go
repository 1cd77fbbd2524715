package quiz

import (
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/otaku-quiz/backend/internal/models"
)

// ErrSessionOverrun is returned when an answer is submitted past the
// last question. It indicates a caller bug, not a user condition.
var ErrSessionOverrun = errors.New("answer submitted past the last question")

// State is the lifecycle phase of a session. Transitions only move
// forward: Active -> Completed -> Discarded.
type State string

const (
	StateActive    State = "active"
	StateCompleted State = "completed"
	StateDiscarded State = "discarded"
)

// PresentedChoice is one choice slot in shuffled presentation order.
// OriginalIndex points back at the stored question's 1-4 slot so
// correctness checking is unaffected by display order.
type PresentedChoice struct {
	Text          string
	OriginalIndex int
}

// Session is one quiz attempt: a fixed ordered question list, the
// per-question presentation order of choices, and the answers given so
// far. Answers are append-only, one per question, in order.
type Session struct {
	ID        string
	Requested int
	CreatedAt time.Time

	mu        sync.Mutex
	questions []models.Question
	presented [][]PresentedChoice
	answers   []models.Answer
	state     State
	touched   time.Time
}

// newSession builds an Active session over the selected questions and
// independently shuffles each question's choices for presentation.
func newSession(questions []models.Question, requested int) *Session {
	now := time.Now()
	s := &Session{
		ID:        uuid.NewString(),
		Requested: requested,
		CreatedAt: now,
		questions: questions,
		presented: make([][]PresentedChoice, len(questions)),
		answers:   make([]models.Answer, 0, len(questions)),
		state:     StateActive,
		touched:   now,
	}
	for i := range questions {
		s.presented[i] = shuffleChoices(&questions[i])
	}
	return s
}

func shuffleChoices(q *models.Question) []PresentedChoice {
	perm := rand.Perm(models.NumChoices)
	choices := make([]PresentedChoice, models.NumChoices)
	for slot, orig := range perm {
		choices[slot] = PresentedChoice{
			Text:          q.Choices[orig],
			OriginalIndex: orig + 1,
		}
	}
	return choices
}

// SubmitAnswer appends the answer for the next unanswered position.
// selectedOriginal is the chosen choice's original 1-4 slot, or
// models.NoAnswer when the user gave none. Submitting past the last
// position fails with ErrSessionOverrun.
func (s *Session) SubmitAnswer(selectedOriginal int, timeSpent float64) (models.Answer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateActive || len(s.answers) >= len(s.questions) {
		return models.Answer{}, ErrSessionOverrun
	}
	if selectedOriginal < models.NoAnswer || selectedOriginal > models.NumChoices {
		return models.Answer{}, fmt.Errorf("selected answer %d out of range 0-4", selectedOriginal)
	}

	q := &s.questions[len(s.answers)]
	if timeSpent < 0 {
		timeSpent = 0
	}
	if q.TimeLimit > 0 && timeSpent > float64(q.TimeLimit) {
		timeSpent = float64(q.TimeLimit)
	}

	answer := models.Answer{
		QuestionID:     q.ID,
		SelectedAnswer: selectedOriginal,
		IsCorrect:      selectedOriginal == q.CorrectAnswer,
		TimeSpent:      timeSpent,
	}
	s.answers = append(s.answers, answer)
	s.touched = time.Now()

	if len(s.answers) == len(s.questions) {
		s.state = StateCompleted
	}
	return answer, nil
}

// OriginalIndex maps a presented slot (1-4) at question position pos
// back to the stored choice index. Slot 0 (no answer) maps to 0.
func (s *Session) OriginalIndex(pos, slot int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if pos < 0 || pos >= len(s.presented) {
		return 0, fmt.Errorf("question position %d out of range", pos)
	}
	if slot == models.NoAnswer {
		return models.NoAnswer, nil
	}
	if slot < 1 || slot > models.NumChoices {
		return 0, fmt.Errorf("choice slot %d out of range 0-4", slot)
	}
	return s.presented[pos][slot-1].OriginalIndex, nil
}

// CorrectSlot returns the presentation slot (1-4) holding the correct
// choice of the question at pos.
func (s *Session) CorrectSlot(pos int) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	for slot, c := range s.presented[pos] {
		if c.OriginalIndex == s.questions[pos].CorrectAnswer {
			return slot + 1
		}
	}
	return 0 // unreachable for a valid question
}

// NextPosition returns the index of the next unanswered question.
func (s *Session) NextPosition() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.answers)
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Questions returns the session's question order. The slice is shared;
// callers must not mutate it.
func (s *Session) Questions() []models.Question {
	return s.questions
}

// Presented returns the shuffled choice layout for the question at pos.
func (s *Session) Presented(pos int) []PresentedChoice {
	return s.presented[pos]
}

// Answers returns a copy of the answers given so far.
func (s *Session) Answers() []models.Answer {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Answer, len(s.answers))
	copy(out, s.answers)
	return out
}

// TotalTime is the summed time spent across all answers, in seconds.
func (s *Session) TotalTime() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	var total float64
	for _, a := range s.answers {
		total += a.TimeSpent
	}
	return total
}

// Discard terminates the session. Idempotent.
func (s *Session) Discard() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = StateDiscarded
}

// idleSince reports the last answer (or creation) time.
func (s *Session) idleSince() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.touched
}
