// Package hbstore keeps a library of residue templates and modification
// patches in a SQLite database. Records are stored as JSON, so what is
// loaded is always a fresh, independent copy that can be merged or copied
// into other records right away.
package hbstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	hb "github.com/rmera/hackblock"
	_ "modernc.org/sqlite" // pure go sqlite driver
)

// Kind tells templates and patches apart in the store.
type Kind string

const (
	KindRestp     Kind = "restp"
	KindHackblock Kind = "hackblock"
)

// ErrNotFound is returned when the requested record is not in the store.
var ErrNotFound = errors.New("record not found")

// Store persists templates and patches in SQLite.
type Store struct {
	sqlDB *sql.DB
}

// Open opens (creating it if needed) the SQLite library at path.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	dsn := filepath.Clean(path) + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := sqlDB.Exec(`CREATE TABLE IF NOT EXISTS records (
		kind TEXT NOT NULL,
		name TEXT NOT NULL,
		payload BLOB NOT NULL,
		PRIMARY KEY (kind, name)
	)`); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("create records table: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

func (s *Store) check(ctx context.Context, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("record name is required")
	}
	return nil
}

func (s *Store) save(ctx context.Context, kind Kind, name string, v any) error {
	if err := s.check(ctx, name); err != nil {
		return err
	}
	payload, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s %s: %w", kind, name, err)
	}
	_, err = s.sqlDB.ExecContext(ctx,
		`INSERT INTO records (kind, name, payload) VALUES (?, ?, ?)
		ON CONFLICT(kind, name) DO UPDATE SET payload = excluded.payload`,
		string(kind), name, payload)
	if err != nil {
		return fmt.Errorf("save %s %s: %w", kind, name, err)
	}
	return nil
}

func (s *Store) load(ctx context.Context, kind Kind, name string, v any) error {
	if err := s.check(ctx, name); err != nil {
		return err
	}
	var payload []byte
	err := s.sqlDB.QueryRowContext(ctx,
		`SELECT payload FROM records WHERE kind = ? AND name = ?`,
		string(kind), name).Scan(&payload)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("%s %s: %w", kind, name, ErrNotFound)
		}
		return fmt.Errorf("load %s %s: %w", kind, name, err)
	}
	if err := json.Unmarshal(payload, v); err != nil {
		return fmt.Errorf("decode %s %s: %w", kind, name, err)
	}
	return nil
}

// SaveRestp stores r under its name, replacing any template with the same name.
func (s *Store) SaveRestp(ctx context.Context, r hb.Restp) error {
	return s.save(ctx, KindRestp, r.Name, r)
}

// LoadRestp returns the template called name.
func (s *Store) LoadRestp(ctx context.Context, name string) (hb.Restp, error) {
	var r hb.Restp
	if err := s.load(ctx, KindRestp, name, &r); err != nil {
		return hb.Restp{}, err
	}
	fixKinds(&r.RB)
	return r, nil
}

// SaveHackblock stores h under its name, replacing any patch with the same name.
func (s *Store) SaveHackblock(ctx context.Context, h hb.Hackblock) error {
	return s.save(ctx, KindHackblock, h.Name, h)
}

// LoadHackblock returns the patch called name.
func (s *Store) LoadHackblock(ctx context.Context, name string) (hb.Hackblock, error) {
	var h hb.Hackblock
	if err := s.load(ctx, KindHackblock, name, &h); err != nil {
		return hb.Hackblock{}, err
	}
	fixKinds(&h.RB)
	return h, nil
}

// LoadHackblocks returns the patches with the given names, in that order.
func (s *Store) LoadHackblocks(ctx context.Context, names ...string) ([]hb.Hackblock, error) {
	ret := make([]hb.Hackblock, 0, len(names))
	for _, n := range names {
		h, err := s.LoadHackblock(ctx, n)
		if err != nil {
			return nil, err
		}
		ret = append(ret, h)
	}
	return ret, nil
}

// List returns the names of all the records of the given kind, sorted.
func (s *Store) List(ctx context.Context, kind Kind) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}
	rows, err := s.sqlDB.QueryContext(ctx, `SELECT name FROM records WHERE kind = ? ORDER BY name`, string(kind))
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", kind, err)
	}
	defer func() { _ = rows.Close() }()
	var names []string
	for rows.Next() {
		var n string
		if err := rows.Scan(&n); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		names = append(names, n)
	}
	return names, rows.Err()
}

// Delete removes a record. Deleting a record that doesn't exist returns ErrNotFound.
func (s *Store) Delete(ctx context.Context, kind Kind, name string) error {
	if err := s.check(ctx, name); err != nil {
		return err
	}
	res, err := s.sqlDB.ExecContext(ctx, `DELETE FROM records WHERE kind = ? AND name = ?`, string(kind), name)
	if err != nil {
		return fmt.Errorf("delete %s %s: %w", kind, name, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete %s %s: %w", kind, name, err)
	}
	if n == 0 {
		return fmt.Errorf("%s %s: %w", kind, name, ErrNotFound)
	}
	return nil
}

// the kinds are stored too, but a hand-edited payload could miss them.
func fixKinds(rb *hb.BondedSet) {
	for i := range rb {
		rb[i].Kind = hb.BondedKind(i)
	}
}
