package quiz

import (
	"context"

	"github.com/otaku-quiz/backend/internal/content"
	"github.com/otaku-quiz/backend/internal/mastery"
	"github.com/otaku-quiz/backend/internal/models"
)

// Service ties the selector, the session registry, and the classifier
// together behind the caller boundary.
type Service struct {
	repo     content.Repository
	selector *Selector
	sessions *Manager
}

func NewService(repo content.Repository, sessions *Manager) *Service {
	return &Service{
		repo:     repo,
		selector: NewSelector(repo),
		sessions: sessions,
	}
}

func (s *Service) ListSeries(ctx context.Context) ([]string, error) {
	return s.repo.ListSeries(ctx)
}

func (s *Service) SeriesCounts(ctx context.Context) (map[string]int, error) {
	return s.repo.SeriesCounts(ctx)
}

func (s *Service) DifficultyCounts(ctx context.Context, series string) (map[models.Difficulty]int, error) {
	return s.repo.DifficultyCounts(ctx, series)
}

// CreateSession selects a new session and registers it for answering.
func (s *Service) CreateSession(ctx context.Context, req models.CreateSessionRequest) (*models.CreateSessionResponse, error) {
	sess, err := s.selector.SelectSession(ctx, SelectRequest{
		Series:     req.Series,
		Difficulty: req.Difficulty,
		Count:      req.Count,
	})
	if err != nil {
		return nil, err
	}
	s.sessions.Put(sess)

	questions := sess.Questions()
	views := make([]models.SessionQuestionView, len(questions))
	for i := range questions {
		q := &questions[i]
		presented := sess.Presented(i)
		choices := make([]models.PresentedChoice, len(presented))
		for slot, c := range presented {
			choices[slot] = models.PresentedChoice{Slot: slot + 1, Text: c.Text}
		}
		views[i] = models.SessionQuestionView{
			ID:         q.ID,
			Series:     q.Series,
			Difficulty: q.Difficulty,
			Text:       q.Text,
			Choices:    choices,
			TimeLimit:  q.TimeLimit,
		}
	}

	return &models.CreateSessionResponse{
		SessionID: sess.ID,
		Questions: views,
		Requested: sess.Requested,
		Short:     len(questions) < sess.Requested,
	}, nil
}

func (s *Service) Progress(sessionID string) (*models.SessionProgressResponse, error) {
	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, err
	}
	return &models.SessionProgressResponse{
		SessionID: sess.ID,
		State:     string(sess.State()),
		Total:     len(sess.Questions()),
		Answered:  sess.NextPosition(),
	}, nil
}

// SubmitAnswer records the answer for the session's next position. The
// request carries the PRESENTED slot; it is mapped back through the
// per-question choice permutation before correctness is judged.
func (s *Service) SubmitAnswer(sessionID string, req models.SubmitAnswerRequest) (*models.SubmitAnswerResponse, error) {
	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, err
	}

	pos := sess.NextPosition()
	if pos >= len(sess.Questions()) {
		return nil, ErrSessionOverrun
	}

	original, err := sess.OriginalIndex(pos, req.SelectedSlot)
	if err != nil {
		return nil, err
	}

	answer, err := sess.SubmitAnswer(original, req.TimeSpentSeconds)
	if err != nil {
		return nil, err
	}

	return &models.SubmitAnswerResponse{
		Correct:     answer.IsCorrect,
		CorrectSlot: sess.CorrectSlot(pos),
		Explanation: sess.Questions()[pos].Explanation,
		Completed:   sess.State() == StateCompleted,
	}, nil
}

// Results classifies a completed session and discards it. Calling this
// on an unfinished session fails without computing a partial score.
func (s *Service) Results(sessionID string) (*models.ResultsResponse, error) {
	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, err
	}

	result, err := mastery.Classify(sess.Questions(), sess.Answers(), sess.TotalTime())
	if err != nil {
		return nil, err
	}
	totalTime := sess.TotalTime()
	s.sessions.Remove(sessionID)

	info := mastery.Info(result.Tier)
	return &models.ResultsResponse{
		Accuracy:   result.Accuracy,
		Correct:    result.Correct,
		Total:      result.Total,
		TotalTime:  totalTime,
		Tier:       string(result.Tier),
		TierTitle:  info.Title,
		TierText:   info.Description,
		TierColor:  info.Color,
		TierEmblem: info.Emblem,
		TierAdvice: info.Advice,
		ShareText:  mastery.ShareText(result),
	}, nil
}
