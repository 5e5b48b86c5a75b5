package story

import (
	"database/sql"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/storygen/backend/internal/database"
	"github.com/storygen/backend/internal/models"
)

// Store persists story-related records. All writes are single-row inserts;
// nothing is ever updated or deleted.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) InsertFeedback(f models.FeedbackRequest) error {
	_, err := s.db.Exec(
		`INSERT INTO feedback (created_at, age, genre, theme, main_characters, language,
		                       title, story, rating, feedback, latency, flesch_score,
		                       story_length, psi, warning)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`,
		database.NowStamp(), f.Age, f.Genre, f.Theme, f.Characters, f.Language,
		f.Title, f.Story, f.Rating, f.Feedback, f.Latency, f.FleschScore,
		f.StoryLength, f.PSI, f.Warning,
	)
	if err != nil {
		return fmt.Errorf("insert feedback: %w", err)
	}
	return nil
}

func (s *Store) InsertDriftWarning(rec models.DriftWarningRecord) error {
	_, err := s.db.Exec(
		`INSERT INTO drift_warnings (request_id, created_at, age, genre, theme,
		                             main_characters, language, title, story, speed,
		                             flesch_score, story_length, psi, warning)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`,
		rec.RequestID, database.NowStamp(), rec.Age, rec.Genre, rec.Theme,
		rec.Characters, rec.Language, rec.Title, rec.Story, rec.Speed,
		rec.FleschScore, rec.StoryLength, rec.PSI, rec.Warning,
	)
	if err != nil {
		return fmt.Errorf("insert drift warning: %w", err)
	}
	return nil
}

// feedbackExportColumns is the CSV header for feedback exports. The row id
// is deliberately left out — the export feeds BI tooling that has no use
// for internal keys.
var feedbackExportColumns = []string{
	"created_at", "age", "genre", "theme", "main_characters", "language",
	"title", "story", "rating", "feedback", "latency", "flesch_score",
	"story_length", "psi", "warning",
}

// ExportFeedbackCSV streams every feedback row as CSV, oldest first.
func (s *Store) ExportFeedbackCSV(w io.Writer) error {
	rows, err := s.db.Query(
		`SELECT created_at, age, genre, theme, main_characters, language,
		        title, story, rating, feedback, latency, flesch_score,
		        story_length, psi, warning
		 FROM feedback ORDER BY id`,
	)
	if err != nil {
		return fmt.Errorf("query feedback: %w", err)
	}
	defer rows.Close()

	cw := csv.NewWriter(w)
	if err := cw.Write(feedbackExportColumns); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for rows.Next() {
		var (
			createdAt                                 string
			age, genre, theme, characters, language   sql.NullString
			title, storyText, feedback, latency, warn sql.NullString
			rating, storyLength                       sql.NullInt64
			fleschScore, psi                          sql.NullFloat64
		)
		if err := rows.Scan(&createdAt, &age, &genre, &theme, &characters, &language,
			&title, &storyText, &rating, &feedback, &latency, &fleschScore,
			&storyLength, &psi, &warn); err != nil {
			return fmt.Errorf("scan feedback row: %w", err)
		}

		record := []string{
			createdAt, age.String, genre.String, theme.String, characters.String,
			language.String, title.String, storyText.String,
			nullIntField(rating), feedback.String, latency.String,
			nullFloatField(fleschScore), nullIntField(storyLength),
			nullFloatField(psi), warn.String,
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate feedback rows: %w", err)
	}

	cw.Flush()
	return cw.Error()
}

func nullIntField(v sql.NullInt64) string {
	if !v.Valid {
		return ""
	}
	return strconv.FormatInt(v.Int64, 10)
}

func nullFloatField(v sql.NullFloat64) string {
	if !v.Valid {
		return ""
	}
	return strconv.FormatFloat(v.Float64, 'g', -1, 64)
}
