package postgres

import (
	"context"
	"database/sql"
	"easyref/internal/core/port"
)

type sqlUnitOfWork struct {
	db *sql.DB
	tx *sql.Tx
}

func NewUnitOfWork(db *sql.DB) port.UnitOfWork {
	return &sqlUnitOfWork{db: db}
}

func (u *sqlUnitOfWork) querier() SQLQuerier {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

func (u *sqlUnitOfWork) TagRepo() port.TagRepository {
	return NewSqlTagRepository(u.querier())
}

func (u *sqlUnitOfWork) FileRepo() port.FileRepository {
	return NewSqlFileRepository(u.querier())
}

func (u *sqlUnitOfWork) FileTagRepo() port.FileTagRepository {
	return NewFileTagRepository(u.querier())
}

func (u *sqlUnitOfWork) MetadataRepo() port.MetadataRepository {
	return NewSqlMetadataRepository(u.querier())
}

func (u *sqlUnitOfWork) BoardRepo() port.BoardRepository {
	return NewSqlBoardRepository(u.querier())
}

func (u *sqlUnitOfWork) BoardItemRepo() port.BoardItemRepository {
	return NewSqlBoardItemRepository(u.querier())
}

// Execute runs fn in a transaction, committed only when fn returns nil.
// A panic in fn rolls back before propagating.
func (u *sqlUnitOfWork) Execute(ctx context.Context, fn func(uow port.UnitOfWork) error) error {
	tx, err := u.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	defer func() {
		if r := recover(); r != nil {
			_ = tx.Rollback()
			panic(r)
		}
	}()

	uowWithTx := &sqlUnitOfWork{db: u.db, tx: tx}

	if err := fn(uowWithTx); err != nil {
		_ = tx.Rollback()
		return err
	}

	return tx.Commit()
}
