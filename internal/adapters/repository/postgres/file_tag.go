package postgres

import (
	"context"
	"easyref/internal/core/domain"
	"easyref/internal/core/port"
	"fmt"
	"strings"

	"github.com/lib/pq"
)

type sqlFileTagRepository struct {
	db SQLQuerier
}

// NewFileTagRepository creates sqlFileTagRepository
func NewFileTagRepository(db SQLQuerier) port.FileTagRepository {
	return &sqlFileTagRepository{db: db}
}

// Attach links the tags to the file and returns how many links were actually created
func (s *sqlFileTagRepository) Attach(ctx context.Context, fileID int64, tagIDs []int64) (int, error) {
	tagIDs = uniqueIDs(tagIDs)
	if len(tagIDs) == 0 {
		return 0, nil
	}

	placeholders := make([]string, len(tagIDs))
	args := make([]any, len(tagIDs)*2)

	for i, tagID := range tagIDs {
		baseIdx := i * 2
		placeholders[i] = fmt.Sprintf("($%d, $%d)", baseIdx+1, baseIdx+2)
		args[baseIdx] = fileID
		args[baseIdx+1] = tagID
	}

	query := fmt.Sprintf(
		"INSERT INTO file_tags (file_id, tag_id) VALUES %s ON CONFLICT (file_id, tag_id) DO NOTHING",
		strings.Join(placeholders, ", "),
	)

	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("error inserting file tags: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, err
	}

	return int(rowsAffected), nil
}

// Detach unlinks the tags from the file and returns how many links were removed
func (s *sqlFileTagRepository) Detach(ctx context.Context, fileID int64, tagIDs []int64) (int, error) {
	if len(tagIDs) == 0 {
		return 0, nil
	}

	query := `DELETE FROM file_tags WHERE file_id = $1 AND tag_id = ANY($2)`

	result, err := s.db.ExecContext(ctx, query, fileID, pq.Array(tagIDs))
	if err != nil {
		return 0, fmt.Errorf("error deleting file tags: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, err
	}

	return int(rowsAffected), nil
}

// FindByFileID finds all tags for a file
func (s *sqlFileTagRepository) FindByFileID(ctx context.Context, fileID int64) ([]domain.FileTag, error) {
	query := `SELECT file_id, tag_id FROM file_tags WHERE file_id = $1 ORDER BY tag_id`

	rows, err := s.db.QueryContext(ctx, query, fileID)
	if err != nil {
		return nil, fmt.Errorf("error querying file tags: %w", err)
	}
	defer rows.Close()

	var fileTags []domain.FileTag
	for rows.Next() {
		var dbRelation dbFileTag
		if err := rows.Scan(&dbRelation.FileID, &dbRelation.TagID); err != nil {
			return nil, fmt.Errorf("error scanning file tag: %w", err)
		}
		fileTags = append(fileTags, *dbRelation.ToDomain())
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating file tags: %w", err)
	}

	return fileTags, nil
}

type dbFileTag struct {
	FileID int64 `db:"file_id"`
	TagID  int64 `db:"tag_id"`
}

func (d *dbFileTag) ToDomain() *domain.FileTag {
	return &domain.FileTag{
		FileID: d.FileID,
		TagID:  d.TagID,
	}
}

func uniqueIDs(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	unique := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}
	return unique
}
