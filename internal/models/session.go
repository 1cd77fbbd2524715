package models

// ── Request Types ─────────────────────────────────────

type CreateSessionRequest struct {
	// Series to draw from. Empty means all series (mixed mode).
	Series []string `json:"series,omitempty"`
	// Difficulty filter. Nil means any difficulty.
	Difficulty *Difficulty `json:"difficulty,omitempty"`
	Count      int         `json:"count,omitempty"`
}

type SubmitAnswerRequest struct {
	// SelectedSlot is the PRESENTED choice position, 1-4, or 0 when no
	// answer was given before the time limit.
	SelectedSlot     int     `json:"selected_slot"`
	TimeSpentSeconds float64 `json:"time_spent_seconds"`
}

// ── Response Types ────────────────────────────────────

// PresentedChoice is a choice slot as shown to the user, in shuffled
// presentation order. The original slot index stays server-side only in
// SessionQuestion; it is not revealed until the answer is submitted.
type PresentedChoice struct {
	Slot int    `json:"slot"` // 1-4, presentation position
	Text string `json:"text"`
}

type SessionQuestionView struct {
	ID         string            `json:"id"`
	Series     string            `json:"series"`
	Difficulty Difficulty        `json:"difficulty"`
	Text       string            `json:"text"`
	Choices    []PresentedChoice `json:"choices"`
	TimeLimit  int               `json:"time_limit,omitempty"`
}

type CreateSessionResponse struct {
	SessionID string                `json:"session_id"`
	Questions []SessionQuestionView `json:"questions"`
	Requested int                   `json:"requested"`
	// Short is true when the eligible pool was smaller than the
	// requested count and the session holds fewer questions.
	Short bool `json:"short"`
}

type SessionProgressResponse struct {
	SessionID string `json:"session_id"`
	State     string `json:"state"`
	Total     int    `json:"total"`
	Answered  int    `json:"answered"`
}

type SubmitAnswerResponse struct {
	Correct bool `json:"correct"`
	// CorrectSlot is the presentation position of the correct choice.
	CorrectSlot int    `json:"correct_slot"`
	Explanation string `json:"explanation"`
	Completed   bool   `json:"completed"`
}

type ResultsResponse struct {
	Accuracy   float64 `json:"accuracy"`
	Correct    int     `json:"correct"`
	Total      int     `json:"total"`
	TotalTime  float64 `json:"total_time"`
	Tier       string  `json:"tier"`
	TierTitle  string  `json:"tier_title"`
	TierText   string  `json:"tier_text"`
	TierColor  string  `json:"tier_color"`
	TierEmblem string  `json:"tier_emblem"`
	TierAdvice string  `json:"tier_advice"`
	ShareText  string  `json:"share_text"`
}

type SeriesCountsResponse struct {
	Counts map[string]int `json:"counts"`
}

type DifficultyCountsResponse struct {
	Series string             `json:"series,omitempty"`
	Counts map[Difficulty]int `json:"counts"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
