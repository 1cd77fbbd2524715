package mastery

import (
	"errors"

	"github.com/otaku-quiz/backend/internal/models"
)

// ErrIncompleteSession is returned when the answer sequence does not
// cover every question. Classification never produces partial scores.
var ErrIncompleteSession = errors.New("session has unanswered questions")

// untimedAvgSeconds stands in for the mean response time when no
// timing was recorded. It fails the fastest tier's time gate, so
// untimed sessions top out one tier below.
const untimedAvgSeconds = 20

// Result is a completed session's normalized score and tier.
type Result struct {
	Accuracy float64 `json:"accuracy"`
	Correct  int     `json:"correct"`
	Total    int     `json:"total"`
	Tier     Tier    `json:"tier"`
}

// sessionStats is the evidence a tier rule gets to look at.
type sessionStats struct {
	accuracy float64
	avgTime  float64
	// correctByDifficulty[d] counts correct answers to difficulty-d
	// questions, d in 1..4.
	correctByDifficulty [models.DifficultyExpert + 1]int
}

// tierRules is the qualification decision table, evaluated top to
// bottom with first match winning. The ordering encodes precedence from
// hardest-earned to the default floor; individual predicates are not
// mutually exclusive.
var tierRules = []struct {
	tier  Tier
	match func(s sessionStats) bool
}{
	{TierTranscendent, func(s sessionStats) bool {
		return s.accuracy >= 0.95 && s.correctByDifficulty[models.DifficultyExpert] > 0 && s.avgTime < 15
	}},
	{TierLegendary, func(s sessionStats) bool {
		return s.accuracy >= 0.90 && s.correctByDifficulty[models.DifficultyExpert] > 0
	}},
	{TierVeteran, func(s sessionStats) bool {
		return s.accuracy >= 0.80 &&
			(s.correctByDifficulty[models.DifficultyAdvanced] >= 2 || s.correctByDifficulty[models.DifficultyExpert] > 0)
	}},
	{TierDeveloping, func(s sessionStats) bool {
		return s.accuracy >= 0.70 && s.correctByDifficulty[models.DifficultyIntermediate] >= 3
	}},
	{TierCasual, func(s sessionStats) bool { return s.accuracy >= 0.60 }},
	{TierNovice, func(s sessionStats) bool { return s.accuracy >= 0.40 }},
	{TierBeginner, func(s sessionStats) bool { return true }},
}

// Classify computes the accuracy and mastery tier of a completed
// session. questions and answers pair 1:1 by position; totalTime is
// the summed response time in seconds (<= 0 means untimed). Pure:
// identical inputs always yield identical results, and inputs are
// never mutated.
func Classify(questions []models.Question, answers []models.Answer, totalTime float64) (Result, error) {
	if len(questions) == 0 || len(answers) != len(questions) {
		return Result{}, ErrIncompleteSession
	}

	stats := sessionStats{avgTime: untimedAvgSeconds}
	correct := 0
	for i := range questions {
		if !answers[i].IsCorrect {
			continue
		}
		correct++
		if d := questions[i].Difficulty; models.ValidDifficulty(d) {
			stats.correctByDifficulty[d]++
		}
	}

	total := len(questions)
	stats.accuracy = float64(correct) / float64(total)
	if totalTime > 0 {
		stats.avgTime = totalTime / float64(total)
	}

	return Result{
		Accuracy: stats.accuracy,
		Correct:  correct,
		Total:    total,
		Tier:     qualifyTier(stats),
	}, nil
}

// qualifyTier walks the decision table top to bottom. The final rule
// is a catch-all, so every session qualifies for some tier.
func qualifyTier(s sessionStats) Tier {
	for _, rule := range tierRules {
		if rule.match(s) {
			return rule.tier
		}
	}
	return TierBeginner
}
