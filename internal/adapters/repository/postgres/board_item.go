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

const boardItemColumns = `id, board_id, file_id, pos_x, pos_y, width, height, rotation, z_index, original_width, original_height`

type sqlBoardItemRepository struct {
	db SQLQuerier
}

// NewSqlBoardItemRepository creates sqlBoardItemRepository that implements port.BoardItemRepository
func NewSqlBoardItemRepository(db SQLQuerier) port.BoardItemRepository {
	return &sqlBoardItemRepository{db: db}
}

// Create inserts a placement and sets its id
func (s *sqlBoardItemRepository) Create(ctx context.Context, item *domain.BoardItem) error {
	query := `INSERT INTO board_items (board_id, file_id, pos_x, pos_y, width, height, rotation, z_index, original_width, original_height)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
              RETURNING id`

	err := s.db.QueryRowContext(ctx, query,
		item.BoardID,
		item.FileID,
		item.PosX,
		item.PosY,
		item.Width,
		item.Height,
		item.Rotation,
		item.ZIndex,
		item.OriginalWidth,
		item.OriginalHeight,
	).Scan(&item.ID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pqForeignKeyViolation {
			if pqErr.Constraint == "board_items_board_id_fkey" {
				return domain.ErrBoardNotFound
			}
			return domain.ErrFileNotFound
		}
		return fmt.Errorf("error inserting board item: %w", err)
	}
	return nil
}

// FindByID finds one placement
func (s *sqlBoardItemRepository) FindByID(ctx context.Context, id int64) (*domain.BoardItem, error) {
	query := `SELECT ` + boardItemColumns + ` FROM board_items WHERE id = $1`

	var itemDB dbBoardItem
	if err := itemDB.scan(s.db.QueryRowContext(ctx, query, id)); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBoardItemNotFound
		}
		return nil, err
	}
	return itemDB.ToDomain(), nil
}

// FindByBoardIDs lists the placements of the boards, bottom layer first
func (s *sqlBoardItemRepository) FindByBoardIDs(ctx context.Context, boardIDs []int64) ([]domain.BoardItem, error) {
	if len(boardIDs) == 0 {
		return nil, nil
	}

	query := `SELECT ` + boardItemColumns + ` FROM board_items WHERE board_id = ANY($1) ORDER BY board_id, z_index, id`

	rows, err := s.db.QueryContext(ctx, query, pq.Array(boardIDs))
	if err != nil {
		return nil, fmt.Errorf("error querying board items: %w", err)
	}
	defer rows.Close()

	var items []domain.BoardItem
	for rows.Next() {
		var itemDB dbBoardItem
		if err := itemDB.scan(rows); err != nil {
			return nil, fmt.Errorf("error scanning board item: %w", err)
		}
		items = append(items, *itemDB.ToDomain())
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating board items: %w", err)
	}
	return items, nil
}

// Update writes the geometry of a placement. Original size is immutable.
func (s *sqlBoardItemRepository) Update(ctx context.Context, item *domain.BoardItem) error {
	query := `UPDATE board_items
              SET pos_x = $1, pos_y = $2, width = $3, height = $4, rotation = $5, z_index = $6
              WHERE id = $7`

	result, err := s.db.ExecContext(ctx, query,
		item.PosX,
		item.PosY,
		item.Width,
		item.Height,
		item.Rotation,
		item.ZIndex,
		item.ID,
	)
	if err != nil {
		return fmt.Errorf("error updating board item: %w", err)
	}
	return expectOneRow(result, domain.ErrBoardItemNotFound)
}

// Delete deletes one placement
func (s *sqlBoardItemRepository) Delete(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM board_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting board item: %w", err)
	}
	return expectOneRow(result, domain.ErrBoardItemNotFound)
}

// dbBoardItem represents a board item in DB
type dbBoardItem struct {
	ID             int64    `db:"id"`
	BoardID        int64    `db:"board_id"`
	FileID         int64    `db:"file_id"`
	PosX           float64  `db:"pos_x"`
	PosY           float64  `db:"pos_y"`
	Width          float64  `db:"width"`
	Height         float64  `db:"height"`
	Rotation       float64  `db:"rotation"`
	ZIndex         int      `db:"z_index"`
	OriginalWidth  *float64 `db:"original_width"`
	OriginalHeight *float64 `db:"original_height"`
}

func (b *dbBoardItem) scan(row rowScanner) error {
	return row.Scan(
		&b.ID,
		&b.BoardID,
		&b.FileID,
		&b.PosX,
		&b.PosY,
		&b.Width,
		&b.Height,
		&b.Rotation,
		&b.ZIndex,
		&b.OriginalWidth,
		&b.OriginalHeight,
	)
}

// ToDomain converts to domain.BoardItem
func (b *dbBoardItem) ToDomain() *domain.BoardItem {
	return &domain.BoardItem{
		ID:             b.ID,
		BoardID:        b.BoardID,
		FileID:         b.FileID,
		PosX:           b.PosX,
		PosY:           b.PosY,
		Width:          b.Width,
		Height:         b.Height,
		Rotation:       b.Rotation,
		ZIndex:         b.ZIndex,
		OriginalWidth:  b.OriginalWidth,
		OriginalHeight: b.OriginalHeight,
	}
}
