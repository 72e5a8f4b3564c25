// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package crm

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"code.hybscloud.com/fnx"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schemaSQL string

const driverName = "sqlite"

// Repository persists contacts. Every operation is deferred: nothing
// touches the database until the returned TaskResult runs.
type Repository interface {
	Save(c Contact) fnx.TaskResult[fnx.Unit]
	Get(id string) fnx.TaskResult[fnx.Option[Contact]]
	List() fnx.TaskResult[[]Contact]
	Delete(id string) fnx.TaskResult[bool]
	// SaveAll stores every contact or none of them.
	SaveAll(cs []Contact) fnx.TaskResult[int]
}

// dbConn abstracts *sql.DB and *sql.Tx for query execution.
type dbConn interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Store is the SQLite Repository.
type Store struct {
	db     *sql.DB // original connection, used for BeginTx
	conn   dbConn  // active connection (db or tx)
	logger *zap.Logger
}

var _ Repository = (*Store)(nil)

// dsn builds a modernc.org/sqlite DSN from a path and pragma key-value
// pairs, each formatted as _pragma=key(value).
func dsn(path string, pragmas [][2]string) string {
	s := path
	for i, p := range pragmas {
		if i == 0 {
			s += "?"
		} else {
			s += "&"
		}
		s += "_pragma=" + p[0] + "(" + p[1] + ")"
	}
	return s
}

// OpenStore opens or creates the database at path.
func OpenStore(ctx context.Context, path string, logger *zap.Logger) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}
	return open(ctx, dsn(path, [][2]string{{"journal_mode", "WAL"}, {"busy_timeout", "5000"}}), logger.With(zap.String("db", path)))
}

// OpenMemoryStore opens a private in-memory database.
func OpenMemoryStore(ctx context.Context, logger *zap.Logger) (*Store, error) {
	return open(ctx, dsn(":memory:", nil), logger.With(zap.String("db", ":memory:")))
}

func open(ctx context.Context, source string, logger *zap.Logger) (*Store, error) {
	db, err := sql.Open(driverName, source)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// SQLite allows one writer; a single connection also keeps an
	// in-memory database alive across calls.
	db.SetMaxOpenConns(1)
	if _, err := db.ExecContext(ctx, schemaSQL); err != nil {
		return nil, multierr.Append(fmt.Errorf("failed to execute schema: %w", err), db.Close())
	}
	logger.Debug("opened database")
	return &Store{db: db, conn: db, logger: logger}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

const timeLayout = time.RFC3339Nano

// Save inserts c or replaces the stored contact with the same ID.
func (s *Store) Save(c Contact) fnx.TaskResult[fnx.Unit] {
	return fnx.TaskFrom(func(ctx context.Context) (fnx.Unit, error) {
		_, err := s.conn.ExecContext(ctx, `
			INSERT INTO contacts (id, name, email, phone, company, street, city, country, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT(id) DO UPDATE SET
				name = excluded.name, email = excluded.email, phone = excluded.phone,
				company = excluded.company, street = excluded.street, city = excluded.city,
				country = excluded.country, updated_at = excluded.updated_at`,
			c.ID, c.Name, c.Email, c.Phone, c.Company,
			c.Address.Street, c.Address.Geo.City, c.Address.Geo.Country,
			c.CreatedAt.UTC().Format(timeLayout), c.UpdatedAt.UTC().Format(timeLayout))
		if err != nil {
			return fnx.Unit{}, fmt.Errorf("save contact %s: %w", c.ID, err)
		}
		s.logger.Debug("saved contact", zap.String("id", c.ID))
		return fnx.Unit{}, nil
	})
}

const selectContact = `SELECT id, name, email, phone, company, street, city, country, created_at, updated_at FROM contacts`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanContact(row rowScanner) (Contact, error) {
	var c Contact
	var created, updated string
	if err := row.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Company,
		&c.Address.Street, &c.Address.Geo.City, &c.Address.Geo.Country, &created, &updated); err != nil {
		return Contact{}, err
	}
	var errCreated, errUpdated error
	c.CreatedAt, errCreated = time.Parse(timeLayout, created)
	c.UpdatedAt, errUpdated = time.Parse(timeLayout, updated)
	if err := multierr.Combine(errCreated, errUpdated); err != nil {
		return Contact{}, fmt.Errorf("contact %s: bad timestamp: %w", c.ID, err)
	}
	return c, nil
}

// Get returns the contact with id, or None.
func (s *Store) Get(id string) fnx.TaskResult[fnx.Option[Contact]] {
	return fnx.TaskFrom(func(ctx context.Context) (fnx.Option[Contact], error) {
		c, err := scanContact(s.conn.QueryRowContext(ctx, selectContact+` WHERE id = ?`, id))
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return fnx.None[Contact](), nil
		case err != nil:
			return fnx.None[Contact](), fmt.Errorf("get contact %s: %w", id, err)
		}
		return fnx.Some(c), nil
	})
}

// List returns all contacts ordered by name, then ID.
func (s *Store) List() fnx.TaskResult[[]Contact] {
	return fnx.TaskFrom(func(ctx context.Context) (_ []Contact, err error) {
		rows, err := s.conn.QueryContext(ctx, selectContact+` ORDER BY name, id`)
		if err != nil {
			return nil, fmt.Errorf("list contacts: %w", err)
		}
		defer func() { err = multierr.Append(err, rows.Close()) }()

		var out []Contact
		for rows.Next() {
			c, err := scanContact(rows)
			if err != nil {
				return nil, fmt.Errorf("list contacts: %w", err)
			}
			out = append(out, c)
		}
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("list contacts: %w", err)
		}
		return out, nil
	})
}

// Delete removes the contact with id and reports whether it existed.
func (s *Store) Delete(id string) fnx.TaskResult[bool] {
	return fnx.TaskFrom(func(ctx context.Context) (bool, error) {
		res, err := s.conn.ExecContext(ctx, `DELETE FROM contacts WHERE id = ?`, id)
		if err != nil {
			return false, fmt.Errorf("delete contact %s: %w", id, err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return false, fmt.Errorf("delete contact %s: %w", id, err)
		}
		return n > 0, nil
	})
}

// SaveAll saves cs in one transaction.
func (s *Store) SaveAll(cs []Contact) fnx.TaskResult[int] {
	return InTransaction(s, func(tx Repository) fnx.TaskResult[int] {
		saves := fnx.TraverseTaskResult(cs, tx.Save)
		return fnx.MapTaskResult(saves, func(done []fnx.Unit) int { return len(done) })
	})
}

// InTransaction runs fn against a Repository bound to a new transaction.
// The transaction commits when fn succeeds and rolls back otherwise,
// including when fn panics.
func InTransaction[A any](s *Store, fn func(tx Repository) fnx.TaskResult[A]) fnx.TaskResult[A] {
	begin := fnx.TaskFrom(func(ctx context.Context) (*sql.Tx, error) {
		tx, err := s.db.BeginTx(ctx, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to begin transaction: %w", err)
		}
		return tx, nil
	})
	rollback := func(tx *sql.Tx) fnx.TaskResult[fnx.Unit] {
		return fnx.TaskFrom(func(context.Context) (fnx.Unit, error) {
			if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
				return fnx.Unit{}, fmt.Errorf("failed to roll back: %w", err)
			}
			return fnx.Unit{}, nil
		})
	}
	return fnx.Bracket(begin, rollback, func(tx *sql.Tx) fnx.TaskResult[A] {
		txStore := &Store{db: s.db, conn: tx, logger: s.logger}
		return fnx.BindTaskResult(fn(txStore), func(a A) fnx.TaskResult[A] {
			return fnx.TaskFrom(func(context.Context) (A, error) {
				if err := tx.Commit(); err != nil {
					return a, fmt.Errorf("failed to commit: %w", err)
				}
				return a, nil
			})
		})
	})
}
