package postgres

import (
	"context"
	"database/sql"
	"easyref/internal/core/domain"
	"easyref/internal/core/port"
	"errors"
	"fmt"

	"github.com/lib/pq"
)

const metadataColumns = `id, file_id, rating, notes, source_url, is_favorite, duration, width, height`

type sqlMetadataRepository struct {
	db SQLQuerier
}

// NewSqlMetadataRepository creates sqlMetadataRepository that implements port.MetadataRepository
func NewSqlMetadataRepository(db SQLQuerier) port.MetadataRepository {
	return &sqlMetadataRepository{db: db}
}

// FindByFileID finds the metadata of a file
func (s *sqlMetadataRepository) FindByFileID(ctx context.Context, fileID int64) (*domain.Metadata, error) {
	query := `SELECT ` + metadataColumns + ` FROM metadata WHERE file_id = $1`

	var dbMeta dbMetadata
	if err := dbMeta.scan(s.db.QueryRowContext(ctx, query, fileID)); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrMetadataNotFound
		}
		return nil, err
	}
	return dbMeta.ToDomain(), nil
}

// Upsert writes every column of the metadata, creating the row on first write
func (s *sqlMetadataRepository) Upsert(ctx context.Context, metadata *domain.Metadata) error {
	query := `INSERT INTO metadata (file_id, rating, notes, source_url, is_favorite, duration, width, height)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
              ON CONFLICT (file_id) DO UPDATE SET
                  rating = EXCLUDED.rating,
                  notes = EXCLUDED.notes,
                  source_url = EXCLUDED.source_url,
                  is_favorite = EXCLUDED.is_favorite,
                  duration = EXCLUDED.duration,
                  width = EXCLUDED.width,
                  height = EXCLUDED.height
              RETURNING id`

	err := s.db.QueryRowContext(ctx, query,
		metadata.FileID,
		metadata.Rating,
		metadata.Notes,
		metadata.SourceURL,
		metadata.IsFavorite,
		metadata.Duration,
		metadata.Width,
		metadata.Height,
	).Scan(&metadata.ID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pqForeignKeyViolation {
			return domain.ErrFileNotFound
		}
		return fmt.Errorf("error upserting metadata: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

// dbMetadata represents metadata in DB
type dbMetadata struct {
	ID         int64    `db:"id"`
	FileID     int64    `db:"file_id"`
	Rating     *int     `db:"rating"`
	Notes      *string  `db:"notes"`
	SourceURL  *string  `db:"source_url"`
	IsFavorite bool     `db:"is_favorite"`
	Duration   *float64 `db:"duration"`
	Width      *int     `db:"width"`
	Height     *int     `db:"height"`
}

func (m *dbMetadata) scan(row rowScanner) error {
	return row.Scan(
		&m.ID,
		&m.FileID,
		&m.Rating,
		&m.Notes,
		&m.SourceURL,
		&m.IsFavorite,
		&m.Duration,
		&m.Width,
		&m.Height,
	)
}

// ToDomain converts to domain.Metadata
func (m *dbMetadata) ToDomain() *domain.Metadata {
	return &domain.Metadata{
		ID:         m.ID,
		FileID:     m.FileID,
		Rating:     m.Rating,
		Notes:      m.Notes,
		SourceURL:  m.SourceURL,
		IsFavorite: m.IsFavorite,
		Duration:   m.Duration,
		Width:      m.Width,
		Height:     m.Height,
	}
}
