package postgres

import (
	"database/sql"

	"fixie/internal/domain"
)

// KnowledgeRepo implements repository.KnowledgeRepository
type KnowledgeRepo struct {
	db *sql.DB
}

// NewKnowledgeRepo creates a new knowledge repository
func NewKnowledgeRepo(db *sql.DB) *KnowledgeRepo {
	return &KnowledgeRepo{db: db}
}

// ListEntries returns the full knowledge base ordered by problem key
func (r *KnowledgeRepo) ListEntries() ([]domain.KnowledgeEntry, error) {
	query := `
		SELECT problem_key, solution, submitted_by, confidence, success_count, failure_count
		FROM knowledge
		ORDER BY problem_key
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []domain.KnowledgeEntry
	for rows.Next() {
		var e domain.KnowledgeEntry
		if err := rows.Scan(&e.ProblemKey, &e.Solution, &e.SubmittedBy, &e.Confidence, &e.SuccessCount, &e.FailureCount); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

// GetEntry returns the entry with the given problem key, or nil if none exists
func (r *KnowledgeRepo) GetEntry(problemKey string) (*domain.KnowledgeEntry, error) {
	var e domain.KnowledgeEntry
	query := `
		SELECT problem_key, solution, submitted_by, confidence, success_count, failure_count
		FROM knowledge
		WHERE problem_key = $1
	`
	err := r.db.QueryRow(query, problemKey).Scan(
		&e.ProblemKey, &e.Solution, &e.SubmittedBy, &e.Confidence, &e.SuccessCount, &e.FailureCount,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &e, nil
}

// SaveEntry upserts a knowledge entry keyed by its lower-cased problem text.
// Re-teaching an existing problem replaces the stored solution and resets
// the vote counters, matching document-store overwrite semantics.
func (r *KnowledgeRepo) SaveEntry(entry domain.KnowledgeEntry) error {
	query := `
		INSERT INTO knowledge (problem_key, solution, submitted_by, confidence, success_count, failure_count)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (problem_key)
		DO UPDATE SET
			solution = EXCLUDED.solution,
			submitted_by = EXCLUDED.submitted_by,
			confidence = EXCLUDED.confidence,
			success_count = EXCLUDED.success_count,
			failure_count = EXCLUDED.failure_count
	`
	_, err := r.db.Exec(query,
		entry.ProblemKey, entry.Solution, entry.SubmittedBy,
		entry.Confidence, entry.SuccessCount, entry.FailureCount,
	)
	return err
}

// RecordSuccess increments the success counter for a positively voted entry
func (r *KnowledgeRepo) RecordSuccess(problemKey string) error {
	query := `
		UPDATE knowledge
		SET success_count = success_count + 1
		WHERE problem_key = $1
	`
	_, err := r.db.Exec(query, problemKey)
	return err
}
