package db

import (
	"crypto/rand"
	"database/sql"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/tylorle/twin/internal/errors"
)

// Transcript is one recorded question/answer exchange.
// Mode records how the answer was produced (rag, fallback, refused, etc.)
// and Source records which surface asked (cli, web, mcp).
type Transcript struct {
	ID         string  `json:"id"`
	Question   string  `json:"question"`
	Answer     string  `json:"answer"`
	Mode       string  `json:"mode"`
	Source     *string `json:"source,omitempty"`
	Model      *string `json:"model,omitempty"`
	DurationMS int64   `json:"duration_ms"`
	CreatedAt  int64   `json:"created_at"`
}

// NewTranscriptID generates a new ULID for a transcript row.
func NewTranscriptID() (string, error) {
	entropy := ulid.Monotonic(rand.Reader, 0)
	id, err := ulid.New(ulid.Timestamp(time.Now()), entropy)
	if err != nil {
		return "", errors.NewInternal(err)
	}
	return id.String(), nil
}

// InsertTranscript stores a new transcript row.
// If t.ID is empty a new ULID is assigned; if t.CreatedAt is zero the
// current time is used.
func InsertTranscript(db *sql.DB, t *Transcript) error {
	if t.ID == "" {
		id, err := NewTranscriptID()
		if err != nil {
			return err
		}
		t.ID = id
	}
	if t.CreatedAt == 0 {
		t.CreatedAt = time.Now().Unix()
	}

	source := toNullString(t.Source)
	model := toNullString(t.Model)

	query := `
		INSERT INTO transcripts (
			id, question, answer, mode, source, model, duration_ms, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := db.Exec(query,
		t.ID, t.Question, t.Answer, t.Mode, source, model, t.DurationMS, t.CreatedAt,
	)
	if err != nil {
		return errors.NewInternal(err)
	}

	return nil
}

// GetTranscript retrieves a transcript by its ULID.
func GetTranscript(db *sql.DB, id string) (*Transcript, error) {
	query := `
		SELECT id, question, answer, mode, source, model, duration_ms, created_at
		FROM transcripts
		WHERE id = ?
	`

	row := db.QueryRow(query, id)
	t, err := scanTranscript(row)
	if err == sql.ErrNoRows {
		return nil, errors.NewNotFound(id)
	}
	if err != nil {
		return nil, errors.NewInternal(err)
	}

	return t, nil
}

// ListTranscripts returns the most recent transcripts, newest first.
// A limit <= 0 defaults to 20.
func ListTranscripts(db *sql.DB, limit, offset int) ([]*Transcript, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query := `
		SELECT id, question, answer, mode, source, model, duration_ms, created_at
		FROM transcripts
		ORDER BY created_at DESC, id DESC
		LIMIT ? OFFSET ?
	`

	rows, err := db.Query(query, limit, offset)
	if err != nil {
		return nil, errors.NewInternal(err)
	}
	defer rows.Close()

	var transcripts []*Transcript
	for rows.Next() {
		var (
			t      Transcript
			source sql.NullString
			model  sql.NullString
		)
		if err := rows.Scan(
			&t.ID, &t.Question, &t.Answer, &t.Mode, &source, &model,
			&t.DurationMS, &t.CreatedAt,
		); err != nil {
			return nil, errors.NewInternal(err)
		}
		t.Source = fromNullString(source)
		t.Model = fromNullString(model)
		transcripts = append(transcripts, &t)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.NewInternal(err)
	}

	return transcripts, nil
}

// CountTranscripts returns the total number of stored transcripts.
func CountTranscripts(db *sql.DB) (int, error) {
	var count int
	err := db.QueryRow("SELECT COUNT(*) FROM transcripts").Scan(&count)
	if err != nil {
		return 0, errors.NewInternal(err)
	}
	return count, nil
}

// scanTranscript scans a single row into a Transcript struct.
func scanTranscript(row *sql.Row) (*Transcript, error) {
	var (
		t      Transcript
		source sql.NullString
		model  sql.NullString
	)

	err := row.Scan(
		&t.ID, &t.Question, &t.Answer, &t.Mode, &source, &model,
		&t.DurationMS, &t.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	t.Source = fromNullString(source)
	t.Model = fromNullString(model)

	return &t, nil
}

// toNullString converts a *string to sql.NullString.
func toNullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

// fromNullString converts a sql.NullString to *string.
func fromNullString(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	return &ns.String
}
