package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/staff-briefing/internal/domain"
)

// AttendanceRepository stores the imported roster.
type AttendanceRepository interface {
	// Replace swaps the whole roster for records in one transaction.
	Replace(ctx context.Context, batchID string, records []domain.AttendanceRecord) (int64, error)
	List(ctx context.Context) ([]domain.AttendanceRecord, error)
	ListByDate(ctx context.Context, date string) ([]domain.StoredAttendance, error)
}

type attendanceRepository struct {
	pool *pgxpool.Pool
}

// NewAttendanceRepository instantiates the repository.
func NewAttendanceRepository(pool *pgxpool.Pool) AttendanceRepository {
	return &attendanceRepository{pool: pool}
}

func (r *attendanceRepository) Replace(ctx context.Context, batchID string, records []domain.AttendanceRecord) (int64, error) {
	batch, err := uuid.Parse(batchID)
	if err != nil {
		return 0, fmt.Errorf("invalid batch id: %w", err)
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	if _, err := tx.Exec(ctx, `DELETE FROM attendance_records`); err != nil {
		return 0, err
	}

	rows := make([][]any, len(records))
	for i, rec := range records {
		rows[i] = []any{batch, i, rec.Date, rec.Name, rec.Area, rec.Entry, rec.Exit}
	}
	copied, err := tx.CopyFrom(ctx,
		pgx.Identifier{"attendance_records"},
		[]string{"batch_id", "position", "work_date", "name", "area", "entry_time", "exit_time"},
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		return 0, err
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}
	return copied, nil
}

func (r *attendanceRepository) List(ctx context.Context) ([]domain.AttendanceRecord, error) {
	const query = `
        SELECT work_date, name, area, entry_time, exit_time
        FROM attendance_records ORDER BY position`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []domain.AttendanceRecord
	for rows.Next() {
		var rec domain.AttendanceRecord
		if err := rows.Scan(&rec.Date, &rec.Name, &rec.Area, &rec.Entry, &rec.Exit); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (r *attendanceRepository) ListByDate(ctx context.Context, date string) ([]domain.StoredAttendance, error) {
	const query = `
        SELECT id, batch_id::text, position, work_date, name, area, entry_time, exit_time, imported_at
        FROM attendance_records WHERE work_date=$1 ORDER BY position`

	rows, err := r.pool.Query(ctx, query, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.StoredAttendance
	for rows.Next() {
		var s domain.StoredAttendance
		if err := rows.Scan(
			&s.ID,
			&s.BatchID,
			&s.Position,
			&s.Record.Date,
			&s.Record.Name,
			&s.Record.Area,
			&s.Record.Entry,
			&s.Record.Exit,
			&s.ImportedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
