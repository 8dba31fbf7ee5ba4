package postgres

import (
	"context"
	"database/sql"
	"easyref/internal/core/domain"
	"easyref/internal/core/port"
	"errors"
	"fmt"
	"time"
)

type sqlBoardRepository struct {
	db SQLQuerier
}

// NewSqlBoardRepository creates sqlBoardRepository that implements port.BoardRepository
func NewSqlBoardRepository(db SQLQuerier) port.BoardRepository {
	return &sqlBoardRepository{db: db}
}

// Create inserts a board and sets its id and creation date
func (s *sqlBoardRepository) Create(ctx context.Context, board *domain.Board) error {
	query := `INSERT INTO boards (name, description) VALUES ($1, $2) RETURNING id, created_at`

	if err := s.db.QueryRowContext(ctx, query, board.Name, board.Description).Scan(&board.ID, &board.CreatedAt); err != nil {
		return fmt.Errorf("error inserting board: %w", err)
	}
	return nil
}

// FindByID finds a board without its items
func (s *sqlBoardRepository) FindByID(ctx context.Context, id int64) (*domain.Board, error) {
	query := `SELECT id, name, description, created_at FROM boards WHERE id = $1`

	var boardDB dbBoard
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&boardDB.ID,
		&boardDB.Name,
		&boardDB.Description,
		&boardDB.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBoardNotFound
		}
		return nil, err
	}
	return boardDB.ToDomain(), nil
}

// List lists every board without items, newest first
func (s *sqlBoardRepository) List(ctx context.Context) ([]domain.Board, error) {
	query := `SELECT id, name, description, created_at FROM boards ORDER BY created_at DESC, id DESC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error querying boards: %w", err)
	}
	defer rows.Close()

	boards := make([]domain.Board, 0)
	for rows.Next() {
		var boardDB dbBoard
		if err := rows.Scan(&boardDB.ID, &boardDB.Name, &boardDB.Description, &boardDB.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning board: %w", err)
		}
		boards = append(boards, *boardDB.ToDomain())
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating boards: %w", err)
	}
	return boards, nil
}

// Update writes name and description
func (s *sqlBoardRepository) Update(ctx context.Context, board *domain.Board) error {
	query := `UPDATE boards SET name = $1, description = $2 WHERE id = $3`

	result, err := s.db.ExecContext(ctx, query, board.Name, board.Description, board.ID)
	if err != nil {
		return fmt.Errorf("error updating board: %w", err)
	}
	return expectOneRow(result, domain.ErrBoardNotFound)
}

// Delete deletes a board and, by cascade, its items
func (s *sqlBoardRepository) Delete(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM boards WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting board: %w", err)
	}
	return expectOneRow(result, domain.ErrBoardNotFound)
}

func expectOneRow(result sql.Result, notFound error) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error checking rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return notFound
	}
	return nil
}

// dbBoard represents a board in DB
type dbBoard struct {
	ID          int64     `db:"id"`
	Name        string    `db:"name"`
	Description *string   `db:"description"`
	CreatedAt   time.Time `db:"created_at"`
}

// ToDomain converts to domain.Board
func (b *dbBoard) ToDomain() *domain.Board {
	return &domain.Board{
		ID:          b.ID,
		Name:        b.Name,
		Description: b.Description,
		CreatedAt:   b.CreatedAt,
		Items:       []domain.BoardItem{},
	}
}
