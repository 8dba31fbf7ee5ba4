package postgres

import (
	"context"
	"database/sql"
	"easyref/internal/core/domain"
	"easyref/internal/core/port"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"
)

const fileColumns = `f.id, f.name, f.storage_key, f.storage_type, f.created_at`

type sqlFileRepository struct {
	db SQLQuerier
}

// NewSqlFileRepository creates sqlFileRepository that implements port.FileRepository
func NewSqlFileRepository(db SQLQuerier) port.FileRepository {
	return &sqlFileRepository{
		db: db,
	}
}

// Create inserts a new file and sets its id and creation date
func (s *sqlFileRepository) Create(ctx context.Context, file *domain.File) error {
	query := `INSERT INTO files (name, storage_key, storage_type)
              VALUES ($1, $2, $3)
              RETURNING id, created_at`

	err := s.db.QueryRowContext(ctx, query, file.Name, file.StorageKey, file.StorageType).Scan(&file.ID, &file.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation {
			return fmt.Errorf("file %s : %w", file.StorageKey, domain.ErrAlreadyExists)
		}
		return fmt.Errorf("error inserting file: %w", err)
	}
	return nil
}

// FindByID finds a file with its tags and metadata
func (s *sqlFileRepository) FindByID(ctx context.Context, id int64) (*domain.File, error) {
	query := `SELECT ` + fileColumns + ` FROM files f WHERE f.id = $1`

	var dbFile dbFile
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&dbFile.ID,
		&dbFile.Name,
		&dbFile.StorageKey,
		&dbFile.StorageType,
		&dbFile.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrFileNotFound
		}
		return nil, err
	}

	files := []domain.File{*dbFile.ToDomain()}
	if err := s.hydrate(ctx, files); err != nil {
		return nil, err
	}
	return &files[0], nil
}

// FindByIDsForUpdate locks the found rows in id order so concurrent batches on overlapping
// selections serialize without deadlocking
func (s *sqlFileRepository) FindByIDsForUpdate(ctx context.Context, ids []int64) ([]domain.File, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query := `SELECT ` + fileColumns + ` FROM files f WHERE f.id = ANY($1) ORDER BY f.id FOR UPDATE`

	return s.query(ctx, query, pq.Array(ids))
}

// FindByIDs finds the files keyed by id. Unknown ids are absent from the map.
func (s *sqlFileRepository) FindByIDs(ctx context.Context, ids []int64) (map[int64]domain.File, error) {
	result := make(map[int64]domain.File, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	query := `SELECT ` + fileColumns + ` FROM files f WHERE f.id = ANY($1)`

	files, err := s.query(ctx, query, pq.Array(ids))
	if err != nil {
		return nil, err
	}
	for _, file := range files {
		result[file.ID] = file
	}
	return result, nil
}

// List lists files by insertion order
func (s *sqlFileRepository) List(ctx context.Context, skip, limit int) ([]domain.File, error) {
	query := `SELECT ` + fileColumns + ` FROM files f ORDER BY f.id OFFSET $1 LIMIT $2`

	return s.query(ctx, query, skip, limit)
}

// Search finds the files matching every active filter of the SearchFilter
func (s *sqlFileRepository) Search(ctx context.Context, filter domain.SearchFilter) ([]domain.File, error) {
	var (
		joins      []string
		conditions []string
		args       []any
	)
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if keys := filter.TagKeys(); len(keys) > 0 {
		// Postgres folds the searched names the same way it folds the stored ones
		searched := fmt.Sprintf("(SELECT DISTINCT LOWER(k) FROM unnest(%s::text[]) AS k)", arg(pq.Array(keys)))
		if filter.TagMode == domain.TagSearchModeAnd {
			conditions = append(conditions, fmt.Sprintf(`f.id IN (
				SELECT ft.file_id FROM file_tags ft JOIN tags t ON t.id = ft.tag_id
				WHERE LOWER(t.name) IN %[1]s
				GROUP BY ft.file_id
				HAVING COUNT(DISTINCT t.id) = (SELECT COUNT(*) FROM %[1]s AS searched))`, searched))
		} else {
			conditions = append(conditions, fmt.Sprintf(`EXISTS (
				SELECT 1 FROM file_tags ft JOIN tags t ON t.id = ft.tag_id
				WHERE ft.file_id = f.id AND LOWER(t.name) IN %s)`, searched))
		}
	}

	// files without metadata never match a rating or favorite filter
	if filter.FiltersRating() || filter.IsFavorite != nil {
		joins = append(joins, "JOIN metadata m ON m.file_id = f.id")
	}
	if filter.FiltersRating() {
		conditions = append(conditions, "m.rating >= "+arg(*filter.MinRating))
	}
	if filter.IsFavorite != nil {
		conditions = append(conditions, "m.is_favorite = "+arg(*filter.IsFavorite))
	}

	var extensions []string
	switch filter.FileType {
	case domain.FileTypeImage:
		extensions = domain.ImageExtensions
	case domain.FileTypeVideo:
		extensions = domain.VideoExtensions
	}
	if len(extensions) > 0 {
		patterns := make([]string, len(extensions))
		for i, ext := range extensions {
			patterns[i] = "%" + ext
		}
		conditions = append(conditions, "LOWER(f.name) LIKE ANY("+arg(pq.Array(patterns))+")")
	}

	var query strings.Builder
	query.WriteString(`SELECT ` + fileColumns + ` FROM files f`)
	for _, join := range joins {
		query.WriteString(" " + join)
	}
	if len(conditions) > 0 {
		query.WriteString(" WHERE " + strings.Join(conditions, " AND "))
	}
	query.WriteString(" ORDER BY f.id")

	return s.query(ctx, query.String(), args...)
}

// FindRandom picks one file of the library
func (s *sqlFileRepository) FindRandom(ctx context.Context) (*domain.File, error) {
	files, err := s.query(ctx, `SELECT `+fileColumns+` FROM files f ORDER BY random() LIMIT 1`)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, domain.ErrLibraryEmpty
	}
	return &files[0], nil
}

// ExistsByStorageKey reports whether a file record still points at the stored object
func (s *sqlFileRepository) ExistsByStorageKey(ctx context.Context, storageType domain.StorageType, key string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM files WHERE storage_type = $1 AND storage_key = $2)`

	var exists bool
	if err := s.db.QueryRowContext(ctx, query, storageType, key).Scan(&exists); err != nil {
		return false, fmt.Errorf("error checking file storage key: %w", err)
	}
	return exists, nil
}

// Delete deletes a file. Metadata, tag links and board placements cascade.
func (s *sqlFileRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM files WHERE id = $1`

	result, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("error deleting file: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error checking rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return domain.ErrFileNotFound
	}
	return nil
}

func (s *sqlFileRepository) query(ctx context.Context, query string, args ...any) ([]domain.File, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying files: %w", err)
	}
	defer rows.Close()

	files := make([]domain.File, 0)
	for rows.Next() {
		var dbFile dbFile
		if err := rows.Scan(
			&dbFile.ID,
			&dbFile.Name,
			&dbFile.StorageKey,
			&dbFile.StorageType,
			&dbFile.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("error scanning file: %w", err)
		}
		files = append(files, *dbFile.ToDomain())
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating files: %w", err)
	}

	if err := s.hydrate(ctx, files); err != nil {
		return nil, err
	}
	return files, nil
}

// hydrate loads tags and metadata of all files with one query each
func (s *sqlFileRepository) hydrate(ctx context.Context, files []domain.File) error {
	if len(files) == 0 {
		return nil
	}

	ids := make([]int64, len(files))
	for i, file := range files {
		ids[i] = file.ID
	}

	tags, err := s.tagsByFileIDs(ctx, ids)
	if err != nil {
		return err
	}
	metadata, err := s.metadataByFileIDs(ctx, ids)
	if err != nil {
		return err
	}

	for i := range files {
		files[i].Tags = tags[files[i].ID]
		if files[i].Tags == nil {
			files[i].Tags = []domain.Tag{}
		}
		files[i].Metadata = metadata[files[i].ID]
	}
	return nil
}

func (s *sqlFileRepository) tagsByFileIDs(ctx context.Context, ids []int64) (map[int64][]domain.Tag, error) {
	query := `SELECT ft.file_id, t.id, t.name, t.created_at
              FROM file_tags ft JOIN tags t ON t.id = ft.tag_id
              WHERE ft.file_id = ANY($1)
              ORDER BY LOWER(t.name)`

	rows, err := s.db.QueryContext(ctx, query, pq.Array(ids))
	if err != nil {
		return nil, fmt.Errorf("error querying file tags: %w", err)
	}
	defer rows.Close()

	result := make(map[int64][]domain.Tag)
	for rows.Next() {
		var fileID int64
		var tagDB dbTag
		if err := rows.Scan(&fileID, &tagDB.ID, &tagDB.Name, &tagDB.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning file tag: %w", err)
		}
		result[fileID] = append(result[fileID], *tagDB.ToDomain())
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating file tags: %w", err)
	}
	return result, nil
}

func (s *sqlFileRepository) metadataByFileIDs(ctx context.Context, ids []int64) (map[int64]*domain.Metadata, error) {
	query := `SELECT ` + metadataColumns + ` FROM metadata WHERE file_id = ANY($1)`

	rows, err := s.db.QueryContext(ctx, query, pq.Array(ids))
	if err != nil {
		return nil, fmt.Errorf("error querying metadata: %w", err)
	}
	defer rows.Close()

	result := make(map[int64]*domain.Metadata)
	for rows.Next() {
		var dbMeta dbMetadata
		if err := dbMeta.scan(rows); err != nil {
			return nil, fmt.Errorf("error scanning metadata: %w", err)
		}
		result[dbMeta.FileID] = dbMeta.ToDomain()
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating metadata: %w", err)
	}
	return result, nil
}

// dbFile represents a file in DB
type dbFile struct {
	ID          int64     `db:"id"`
	Name        string    `db:"name"`
	StorageKey  string    `db:"storage_key"`
	StorageType string    `db:"storage_type"`
	CreatedAt   time.Time `db:"created_at"`
}

// ToDomain converts to domain.File
func (f *dbFile) ToDomain() *domain.File {
	return &domain.File{
		ID:          f.ID,
		Name:        f.Name,
		StorageKey:  f.StorageKey,
		StorageType: domain.StorageType(f.StorageType),
		CreatedAt:   f.CreatedAt,
	}
}
