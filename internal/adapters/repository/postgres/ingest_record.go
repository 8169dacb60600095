package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
	"training-reels/internal/core/domain"
	"training-reels/internal/core/port"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

const uniqueViolation = "23505"

const ingestColumns = `id, object_key, content_type, size_bytes, session_id, video_id, job_id,
                       status, progress, error, created_at, updated_at`

type sqlIngestRepository struct {
	db SQLQuerier
}

// NewSqlIngestRepository creates sqlIngestRepository that implements port.IngestRepository
func NewSqlIngestRepository(db SQLQuerier) port.IngestRepository {
	return &sqlIngestRepository{db: db}
}

// Create inserts a new ledger row
func (s *sqlIngestRepository) Create(ctx context.Context, record domain.IngestRecord) error {
	query := `INSERT INTO ingest_records (id, object_key, content_type, size_bytes, status, progress, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	createdAt, updatedAt := record.CreatedAt, record.UpdatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}
	if updatedAt.IsZero() {
		updatedAt = createdAt
	}

	_, err := s.db.ExecContext(ctx, query, record.ID, record.ObjectKey, record.ContentType, record.SizeBytes,
		record.Status, record.Progress, createdAt, updatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %s", domain.ErrAlreadyIngested, record.ObjectKey)
		}
		return fmt.Errorf("error inserting ingest record: %w", err)
	}
	return nil
}

// FindByID finds by id
func (s *sqlIngestRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.IngestRecord, error) {
	query := `SELECT ` + ingestColumns + `
              FROM ingest_records
              WHERE id = $1`

	record, err := scanIngestRecord(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}
		return nil, err
	}
	return record, nil
}

// FindByObjectKey returns the latest record of objectKey
func (s *sqlIngestRepository) FindByObjectKey(ctx context.Context, objectKey string) (*domain.IngestRecord, error) {
	query := `SELECT ` + ingestColumns + `
              FROM ingest_records
              WHERE object_key = $1
              ORDER BY created_at DESC
              LIMIT 1`

	record, err := scanIngestRecord(s.db.QueryRowContext(ctx, query, objectKey))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}
		return nil, err
	}
	return record, nil
}

// List returns the most recent records, optionally only those in status
func (s *sqlIngestRepository) List(ctx context.Context, status *domain.IngestStatus, limit int) ([]domain.IngestRecord, error) {
	query := `SELECT ` + ingestColumns + `
              FROM ingest_records
              WHERE ($1::text IS NULL OR status = $1)
              ORDER BY created_at DESC
              LIMIT $2`

	var statusArg sql.NullString
	if status != nil {
		statusArg = sql.NullString{String: string(*status), Valid: true}
	}

	rows, err := s.db.QueryContext(ctx, query, statusArg, limit)
	if err != nil {
		return nil, fmt.Errorf("error querying ingest records: %w", err)
	}
	defer rows.Close()

	return scanIngestRecords(rows)
}

// FindStale finds records in status whose last update is older than before
func (s *sqlIngestRepository) FindStale(ctx context.Context, status domain.IngestStatus, before time.Time) ([]domain.IngestRecord, error) {
	query := `SELECT ` + ingestColumns + `
              FROM ingest_records
              WHERE status = $1
                AND updated_at < $2
              ORDER BY updated_at`

	rows, err := s.db.QueryContext(ctx, query, status, before)
	if err != nil {
		return nil, fmt.Errorf("error querying stale ingest records: %w", err)
	}
	defer rows.Close()

	return scanIngestRecords(rows)
}

func (s *sqlIngestRepository) UpdateSession(ctx context.Context, id uuid.UUID, sessionID string) error {
	query := `UPDATE ingest_records
              SET session_id = $1, updated_at = now()
              WHERE id = $2`
	return s.exec(ctx, query, sessionID, id)
}

func (s *sqlIngestRepository) UpdateProgress(ctx context.Context, id uuid.UUID, progress float64) error {
	query := `UPDATE ingest_records
              SET progress = $1, updated_at = now()
              WHERE id = $2`
	return s.exec(ctx, query, progress, id)
}

func (s *sqlIngestRepository) UpdateJob(ctx context.Context, id uuid.UUID, videoID, jobID string) error {
	query := `UPDATE ingest_records
              SET video_id = $1, job_id = $2, updated_at = now()
              WHERE id = $3`
	return s.exec(ctx, query, videoID, jobID, id)
}

// UpdateStatus sets status and replaces the error message, an empty errMsg clears it
func (s *sqlIngestRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.IngestStatus, errMsg string) error {
	query := `UPDATE ingest_records
              SET status = $1, error = NULLIF($2, ''), updated_at = now()
              WHERE id = $3`
	return s.exec(ctx, query, status, errMsg, id)
}

func (s *sqlIngestRepository) exec(ctx context.Context, query string, args ...any) error {
	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrAlreadyIngested
		}
		return fmt.Errorf("error updating ingest record: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error checking rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return domain.ErrRecordNotFound
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}

type rowScanner interface {
	Scan(dest ...any) error
}

type dbIngestRecord struct {
	ID          uuid.UUID      `db:"id"`
	ObjectKey   string         `db:"object_key"`
	ContentType string         `db:"content_type"`
	SizeBytes   int64          `db:"size_bytes"`
	SessionID   sql.NullString `db:"session_id"`
	VideoID     sql.NullString `db:"video_id"`
	JobID       sql.NullString `db:"job_id"`
	Status      string         `db:"status"`
	Progress    float64        `db:"progress"`
	Error       sql.NullString `db:"error"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

// ToDomain converts to domain.IngestRecord
func (r *dbIngestRecord) ToDomain() *domain.IngestRecord {
	return &domain.IngestRecord{
		ID:          r.ID,
		ObjectKey:   r.ObjectKey,
		ContentType: r.ContentType,
		SizeBytes:   r.SizeBytes,
		SessionID:   r.SessionID.String,
		VideoID:     r.VideoID.String,
		JobID:       r.JobID.String,
		Status:      domain.IngestStatus(r.Status),
		Progress:    r.Progress,
		Error:       r.Error.String,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func scanIngestRecord(row rowScanner) (*domain.IngestRecord, error) {
	var r dbIngestRecord
	err := row.Scan(
		&r.ID,
		&r.ObjectKey,
		&r.ContentType,
		&r.SizeBytes,
		&r.SessionID,
		&r.VideoID,
		&r.JobID,
		&r.Status,
		&r.Progress,
		&r.Error,
		&r.CreatedAt,
		&r.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return r.ToDomain(), nil
}

func scanIngestRecords(rows *sql.Rows) ([]domain.IngestRecord, error) {
	records := []domain.IngestRecord{}
	for rows.Next() {
		record, err := scanIngestRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning ingest record: %w", err)
		}
		records = append(records, *record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating ingest records: %w", err)
	}
	return records, nil
}
