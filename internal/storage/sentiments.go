package storage

import (
	"context"
	"fmt"

	"github.com/Veraticus/tastemood/internal/model"
)

// SaveSentiment inserts a record and assigns its ID.
func (s *SQLiteStorage) SaveSentiment(ctx context.Context, record *model.SentimentRecord) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateRecord(record); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `
		INSERT INTO sentiments (text, sentiment_label, sentiment_score, timestamp)
		VALUES (?, ?, ?, ?)
	`, record.Text, record.Label, record.Score, record.Timestamp)
	if err != nil {
		return fmt.Errorf("failed to insert sentiment: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get sentiment ID: %w", err)
	}
	record.ID = id

	return nil
}

// ListSentiments returns every stored record in insertion order.
func (s *SQLiteStorage) ListSentiments(ctx context.Context) ([]model.SentimentRecord, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, text, sentiment_label, sentiment_score, timestamp
		FROM sentiments
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query sentiments: %w", err)
	}
	defer func() { _ = rows.Close() }()

	records := []model.SentimentRecord{}
	for rows.Next() {
		var r model.SentimentRecord
		if err := rows.Scan(&r.ID, &r.Text, &r.Label, &r.Score, &r.Timestamp); err != nil {
			return nil, fmt.Errorf("failed to scan sentiment: %w", err)
		}
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate sentiments: %w", err)
	}

	return records, nil
}

// CountSentiments returns the number of stored records.
func (s *SQLiteStorage) CountSentiments(ctx context.Context) (int, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}

	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM sentiments`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count sentiments: %w", err)
	}
	return count, nil
}
