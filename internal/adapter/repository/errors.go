package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	sqlite3 "github.com/mattn/go-sqlite3"
	"modernc.org/sqlite"
	sqlitelib "modernc.org/sqlite/lib"

	"github.com/eslsoft/toeicprep/internal/entity"
)

type errorKind int

const (
	kindOther errorKind = iota
	kindUnique
	kindForeignKey
	kindConflict
)

// translateError maps driver errors onto entity errors. notFound is returned for
// missing rows and foreign key violations.
func translateError(err error, notFound error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
		return notFound
	}
	switch classify(err) {
	case kindUnique:
		return fmt.Errorf("%w: %v", entity.ErrAlreadyExists, err)
	case kindForeignKey:
		return notFound
	case kindConflict:
		return fmt.Errorf("%w: %v", entity.ErrConcurrentWrite, err)
	}
	return err
}

func classify(err error) errorKind {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return classifySQLState(pgErr.Code)
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return classifySQLState(string(pqErr.Code))
	}
	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) {
		switch liteErr.Code() {
		case sqlitelib.SQLITE_CONSTRAINT_UNIQUE, sqlitelib.SQLITE_CONSTRAINT_PRIMARYKEY:
			return kindUnique
		case sqlitelib.SQLITE_CONSTRAINT_FOREIGNKEY:
			return kindForeignKey
		case sqlitelib.SQLITE_BUSY:
			return kindConflict
		case sqlitelib.SQLITE_CONSTRAINT:
			return classifyMessage(liteErr.Error())
		}
		return kindOther
	}
	var cgoErr sqlite3.Error
	if errors.As(err, &cgoErr) {
		switch cgoErr.ExtendedCode {
		case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
			return kindUnique
		case sqlite3.ErrConstraintForeignKey:
			return kindForeignKey
		}
		if cgoErr.Code == sqlite3.ErrBusy {
			return kindConflict
		}
	}
	return kindOther
}

func classifyMessage(msg string) errorKind {
	switch {
	case strings.Contains(msg, "UNIQUE constraint failed"):
		return kindUnique
	case strings.Contains(msg, "FOREIGN KEY constraint failed"):
		return kindForeignKey
	}
	return kindOther
}

func classifySQLState(code string) errorKind {
	switch code {
	case "23505":
		return kindUnique
	case "23503":
		return kindForeignKey
	case "40001", "40P01":
		return kindConflict
	}
	return kindOther
}
