package content

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/otaku-quiz/backend/internal/models"
)

// Store is the SQL-backed Repository adapter. Placeholders use the $N
// form, which both lib/pq and modernc.org/sqlite accept, so the same
// queries serve either driver.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// storeErr tags a backing-store failure as transient while keeping the
// driver detail in the message.
func storeErr(op string, err error) error {
	return fmt.Errorf("%s: %w: %v", op, ErrUnavailable, err)
}

func (s *Store) ListSeries(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT DISTINCT series FROM questions ORDER BY series`)
	if err != nil {
		return nil, storeErr("list series", err)
	}
	defer rows.Close()

	var series []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, storeErr("list series", err)
		}
		series = append(series, name)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("list series", err)
	}
	return series, nil
}

func (s *Store) SeriesCounts(ctx context.Context) (map[string]int, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT series, COUNT(*) FROM questions GROUP BY series`)
	if err != nil {
		return nil, storeErr("series counts", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var name string
		var n int
		if err := rows.Scan(&name, &n); err != nil {
			return nil, storeErr("series counts", err)
		}
		counts[name] = n
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("series counts", err)
	}
	return counts, nil
}

func (s *Store) DifficultyCounts(ctx context.Context, series string) (map[models.Difficulty]int, error) {
	query := `SELECT difficulty, COUNT(*) FROM questions GROUP BY difficulty`
	var args []interface{}
	if series != "" {
		query = `SELECT difficulty, COUNT(*) FROM questions WHERE series = $1 GROUP BY difficulty`
		args = append(args, series)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, storeErr("difficulty counts", err)
	}
	defer rows.Close()

	counts := map[models.Difficulty]int{
		models.DifficultyBeginner:     0,
		models.DifficultyIntermediate: 0,
		models.DifficultyAdvanced:     0,
		models.DifficultyExpert:       0,
	}
	for rows.Next() {
		var d models.Difficulty
		var n int
		if err := rows.Scan(&d, &n); err != nil {
			return nil, storeErr("difficulty counts", err)
		}
		counts[d] = n
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("difficulty counts", err)
	}
	return counts, nil
}

func (s *Store) FetchQuestions(ctx context.Context, f Filter) ([]models.Question, error) {
	var clauses []string
	var args []interface{}
	paramIdx := 1

	switch len(f.Series) {
	case 0:
		// no series restriction
	case 1:
		clauses = append(clauses, fmt.Sprintf("series = $%d", paramIdx))
		args = append(args, f.Series[0])
		paramIdx++
	default:
		placeholders := make([]string, len(f.Series))
		for i, name := range f.Series {
			placeholders[i] = fmt.Sprintf("$%d", paramIdx)
			args = append(args, name)
			paramIdx++
		}
		clauses = append(clauses, fmt.Sprintf("series IN (%s)", strings.Join(placeholders, ",")))
	}

	if f.Difficulty != nil {
		clauses = append(clauses, fmt.Sprintf("difficulty = $%d", paramIdx))
		args = append(args, *f.Difficulty)
		paramIdx++
	}

	where := ""
	if len(clauses) > 0 {
		where = "WHERE " + strings.Join(clauses, " AND ")
	}

	query := fmt.Sprintf(`
		SELECT id, series, difficulty, text,
		       choice1, choice2, choice3, choice4,
		       correct_answer, explanation, time_limit
		FROM questions
		%s
		LIMIT %d`, where, f.Cap)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, storeErr("fetch questions", err)
	}
	defer rows.Close()

	var questions []models.Question
	for rows.Next() {
		var q models.Question
		if err := rows.Scan(&q.ID, &q.Series, &q.Difficulty, &q.Text,
			&q.Choices[0], &q.Choices[1], &q.Choices[2], &q.Choices[3],
			&q.CorrectAnswer, &q.Explanation, &q.TimeLimit); err != nil {
			return nil, storeErr("fetch questions", err)
		}
		questions = append(questions, q)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("fetch questions", err)
	}
	return questions, nil
}

// InsertQuestion adds a validated question to the pool. Ingestion
// tooling is external; this is the hook it writes through.
func (s *Store) InsertQuestion(ctx context.Context, q models.Question) error {
	if err := q.Validate(); err != nil {
		return fmt.Errorf("insert question: %w", err)
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO questions
			(id, series, difficulty, text, choice1, choice2, choice3, choice4,
			 correct_answer, explanation, time_limit)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		q.ID, q.Series, q.Difficulty, q.Text,
		q.Choices[0], q.Choices[1], q.Choices[2], q.Choices[3],
		q.CorrectAnswer, q.Explanation, q.TimeLimit)
	if err != nil {
		return storeErr("insert question", err)
	}
	return nil
}
