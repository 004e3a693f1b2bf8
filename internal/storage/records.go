package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/KevinNatera/l2assessment/internal/common"
	"github.com/KevinNatera/l2assessment/internal/model"
)

// Append adds a finalized record to the history. The history is append-only:
// existing rows are never touched, and insertion order is preserved by the
// autoincrement key.
func (s *SQLiteStorage) Append(ctx context.Context, record *model.HistoryRecord) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateRecord(record); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `
		INSERT INTO history_records (
			message, category, urgency, recommended_action,
			reasoning, original_category, original_urgency, saved_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`,
		record.Message,
		record.Category,
		record.Urgency,
		record.RecommendedAction,
		record.Reasoning,
		record.OriginalCategory,
		record.OriginalUrgency,
		record.SavedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return common.NewStorageError("append", err)
	}

	if id, idErr := result.LastInsertId(); idErr == nil {
		record.ID = id
	}

	return nil
}

// List returns every saved record in insertion order.
func (s *SQLiteStorage) List(ctx context.Context) ([]model.HistoryRecord, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, message, category, urgency, recommended_action,
		       reasoning, original_category, original_urgency, saved_at
		FROM history_records
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, common.NewStorageError("list", err)
	}
	defer func() { _ = rows.Close() }()

	var records []model.HistoryRecord
	for rows.Next() {
		var record model.HistoryRecord
		var savedAt string

		if err := rows.Scan(
			&record.ID,
			&record.Message,
			&record.Category,
			&record.Urgency,
			&record.RecommendedAction,
			&record.Reasoning,
			&record.OriginalCategory,
			&record.OriginalUrgency,
			&savedAt,
		); err != nil {
			return nil, common.NewStorageError("list", err)
		}

		record.SavedAt, err = time.Parse(time.RFC3339Nano, savedAt)
		if err != nil {
			return nil, common.NewStorageError("list", fmt.Errorf("malformed saved_at %q: %w", savedAt, err))
		}

		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, common.NewStorageError("list", err)
	}

	return records, nil
}

// Count returns the number of saved records.
func (s *SQLiteStorage) Count(ctx context.Context) (int, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}

	var count int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM history_records`).Scan(&count)
	if err != nil {
		return 0, common.NewStorageError("count", err)
	}

	return count, nil
}
