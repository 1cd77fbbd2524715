package models

import "fmt"

// Difficulty is the 1-4 ordinal mastery requirement of a question.
type Difficulty int

const (
	DifficultyBeginner     Difficulty = 1
	DifficultyIntermediate Difficulty = 2
	DifficultyAdvanced     Difficulty = 3
	DifficultyExpert       Difficulty = 4
)

// ValidDifficulty reports whether d is one of the four defined levels.
func ValidDifficulty(d Difficulty) bool {
	return d >= DifficultyBeginner && d <= DifficultyExpert
}

// NumChoices is the fixed number of answer choices per question.
const NumChoices = 4

type Question struct {
	ID            string             `json:"id"`
	Series        string             `json:"series"`
	Difficulty    Difficulty         `json:"difficulty"`
	Text          string             `json:"text"`
	Choices       [NumChoices]string `json:"choices"`
	CorrectAnswer int                `json:"correct_answer"` // 1-4, references a choice slot
	Explanation   string             `json:"explanation"`
	TimeLimit     int                `json:"time_limit,omitempty"` // seconds, 0 = none
}

// Choice returns the choice text for slot n (1-4).
func (q *Question) Choice(n int) string {
	return q.Choices[n-1]
}

// Validate checks the invariants every stored question must hold.
func (q *Question) Validate() error {
	if q.ID == "" {
		return fmt.Errorf("question has no id")
	}
	if q.Series == "" {
		return fmt.Errorf("question %s has no series", q.ID)
	}
	if !ValidDifficulty(q.Difficulty) {
		return fmt.Errorf("question %s: difficulty %d out of range 1-4", q.ID, q.Difficulty)
	}
	if q.CorrectAnswer < 1 || q.CorrectAnswer > NumChoices {
		return fmt.Errorf("question %s: correct_answer %d out of range 1-4", q.ID, q.CorrectAnswer)
	}
	for i, c := range q.Choices {
		if c == "" {
			return fmt.Errorf("question %s: choice %d is empty", q.ID, i+1)
		}
	}
	return nil
}

// NoAnswer is the selected-answer value recorded when the user gave no
// answer (timeout or skip). It never matches a correct choice slot.
const NoAnswer = 0

type Answer struct {
	QuestionID     string  `json:"question_id"`
	SelectedAnswer int     `json:"selected_answer"` // 0-4; 0 = no answer given
	IsCorrect      bool    `json:"is_correct"`
	TimeSpent      float64 `json:"time_spent"` // seconds
}
