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

type sqlTagRepository struct {
	db SQLQuerier
}

// NewSqlTagRepository creates sqlTagRepository that implements port.TagRepository
func NewSqlTagRepository(db SQLQuerier) port.TagRepository {
	return &sqlTagRepository{
		db: db,
	}
}

// CreateMany creates the tags that do not exist yet. Names are compared case-insensitively and
// the first spelling seen is stored.
func (s *sqlTagRepository) CreateMany(ctx context.Context, tags []string) (int, error) {
	names := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, name := range domain.NormalizeTagNames(tags) {
		key := domain.TagKey(name)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		names = append(names, name)
	}

	if len(names) == 0 {
		return 0, nil
	}

	placeholders := make([]string, len(names))
	args := make([]any, len(names))
	for i, name := range names {
		placeholders[i] = fmt.Sprintf("($%d)", i+1)
		args[i] = name
	}

	query := fmt.Sprintf(
		"INSERT INTO tags (name) VALUES %s ON CONFLICT DO NOTHING",
		strings.Join(placeholders, ", "),
	)

	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("error inserting tags: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, err
	}

	if rowsAffected == 0 {
		return 0, domain.ErrAlreadyExists
	}

	return int(rowsAffected), nil
}

// FindByID finds a tag by id
func (s *sqlTagRepository) FindByID(ctx context.Context, id int64) (*domain.Tag, error) {
	query := `SELECT id, name, created_at FROM tags WHERE id = $1`

	var tagDB dbTag

	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&tagDB.ID,
		&tagDB.Name,
		&tagDB.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrTagNotFound
		}
		return nil, err
	}

	return tagDB.ToDomain(), nil
}

// FindByName finds a tag by name, ignoring case. Postgres folds both sides.
func (s *sqlTagRepository) FindByName(ctx context.Context, name string) (*domain.Tag, error) {
	query := `SELECT id, name, created_at FROM tags WHERE LOWER(name) = LOWER($1)`

	var tagDB dbTag

	err := s.db.QueryRowContext(ctx, query, strings.TrimSpace(name)).Scan(
		&tagDB.ID,
		&tagDB.Name,
		&tagDB.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrTagNotFound
		}
		return nil, err
	}

	return tagDB.ToDomain(), nil
}

// FindByNames retrieves multiple tags by their names in a single query. The database folds
// both the requested and the stored names; each result is keyed by the TagKey of the requested
// name it matched, so callers never depend on Go and Postgres lowering alike.
func (s *sqlTagRepository) FindByNames(ctx context.Context, names []string) (map[string]domain.Tag, error) {
	result := make(map[string]domain.Tag)
	names = domain.NormalizeTagNames(names)
	if len(names) == 0 {
		return result, nil
	}

	query := `
		SELECT q.name, t.id, t.name, t.created_at
		FROM unnest($1::text[]) AS q(name)
		JOIN tags t ON LOWER(t.name) = LOWER(q.name)`

	rows, err := s.db.QueryContext(ctx, query, pq.Array(names))
	if err != nil {
		return nil, fmt.Errorf("error querying tags: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var requested string
		var tagDB dbTag
		if err := rows.Scan(&requested, &tagDB.ID, &tagDB.Name, &tagDB.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning tag: %w", err)
		}
		result[domain.TagKey(requested)] = *tagDB.ToDomain()
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating tags: %w", err)
	}

	return result, nil
}

// List retrieves tags with cursor-based pagination sorted by name.
// The page size is bounded by the tag service.
func (s *sqlTagRepository) List(ctx context.Context, limit int, marker *string) ([]domain.Tag, *string, error) {
	if limit <= 0 {
		limit = 20 // default limit
	}

	var query string
	var args []any

	if marker != nil && *marker != "" {
		query = `
			SELECT id, name, created_at
			FROM tags
			WHERE LOWER(name) > LOWER($1)
			ORDER BY LOWER(name) ASC
			LIMIT $2`
		args = []any{strings.TrimSpace(*marker), limit + 1}
	} else {
		query = `
			SELECT id, name, created_at
			FROM tags
			ORDER BY LOWER(name) ASC
			LIMIT $1`
		args = []any{limit + 1}
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("error querying tags: %w", err)
	}
	defer rows.Close()

	tags := make([]domain.Tag, 0, limit)
	for rows.Next() {
		var tagDB dbTag
		if err := rows.Scan(&tagDB.ID, &tagDB.Name, &tagDB.CreatedAt); err != nil {
			return nil, nil, fmt.Errorf("error scanning tag: %w", err)
		}
		tags = append(tags, *tagDB.ToDomain())
	}

	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("error iterating tags: %w", err)
	}

	// one extra row means another page exists
	var nextMarker *string
	if len(tags) > limit {
		tags = tags[:limit]
		lastName := tags[len(tags)-1].Name
		nextMarker = &lastName
	}

	return tags, nextMarker, nil
}

// dbTag represents a tag in DB
type dbTag struct {
	ID        int64     `db:"id"`
	Name      string    `db:"name"`
	CreatedAt time.Time `db:"created_at"`
}

// ToDomain converts to domain.Tag
func (t *dbTag) ToDomain() *domain.Tag {
	return &domain.Tag{
		ID:        t.ID,
		Name:      t.Name,
		CreatedAt: t.CreatedAt,
	}
}
