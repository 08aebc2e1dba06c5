package journal

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/m04kA/SMC-ClinicConsole/internal/domain"
	"github.com/m04kA/SMC-ClinicConsole/pkg/psqlbuilder"
)

const tableName = "console_journal"

// Repository журнал операций консоли в PostgreSQL
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория журнала
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Record сохраняет запись журнала и заполняет ID и CreatedAt
func (r *Repository) Record(ctx context.Context, entry *domain.JournalEntry) error {
	query, args, err := psqlbuilder.Insert(tableName).
		Columns(
			"operation",
			"target",
			"payload",
			"succeeded",
			"error_text",
		).
		Values(
			string(entry.Operation),
			entry.Target,
			entry.Payload,
			entry.Succeeded,
			entry.ErrorText,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Record - build insert query: %v", ErrBuildQuery, err)
	}

	err = r.db.QueryRowContext(ctx, query, args...).Scan(&entry.ID, &entry.CreatedAt)
	if err != nil {
		return fmt.Errorf("%w: Record - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// ListRecent возвращает последние limit записей, новые первыми
func (r *Repository) ListRecent(ctx context.Context, limit uint64) ([]domain.JournalEntry, error) {
	query, args, err := psqlbuilder.Select(
		"id",
		"operation",
		"target",
		"payload",
		"succeeded",
		"error_text",
		"created_at",
	).
		From(tableName).
		OrderBy("created_at DESC", "id DESC").
		Limit(limit).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListRecent - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListRecent - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	entries := make([]domain.JournalEntry, 0)
	for rows.Next() {
		var (
			entry     domain.JournalEntry
			operation string
			errorText sql.NullString
		)

		if err := rows.Scan(
			&entry.ID,
			&operation,
			&entry.Target,
			&entry.Payload,
			&entry.Succeeded,
			&errorText,
			&entry.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("%w: ListRecent - scan row: %v", ErrScanRow, err)
		}

		entry.Operation = domain.JournalOperation(operation)
		if errorText.Valid {
			entry.ErrorText = &errorText.String
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListRecent - rows iteration: %v", ErrScanRow, err)
	}

	return entries, nil
}

// Enabled журнал в базе всегда включен
func (r *Repository) Enabled() bool {
	return true
}
