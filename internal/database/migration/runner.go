package migration

import (
	"cmp"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"skillswap/internal/database"
)

// lockKey serialises concurrent `migrate` runs against the same database.
const lockKey int64 = 746295114

var (
	ErrNilDB            = errors.New("migration: nil db")
	ErrChecksumMismatch = errors.New("migration: applied file was edited")
)

type Migration struct {
	Version  int64
	Name     string
	Filename string
	SQL      string
	Checksum string
}

type Runner struct {
	FS     fs.FS
	Logger *zap.Logger
}

func (r Runner) log() *zap.Logger {
	if r.Logger == nil {
		return zap.NewNop()
	}
	return r.Logger
}

// Run applies every pending migration in version order under an advisory
// lock. It stops at the first failure; earlier migrations stay committed.
func (r Runner) Run(ctx context.Context, db database.DB) error {
	if db == nil {
		return ErrNilDB
	}
	return r.locked(ctx, db, func() error {
		todo, err := r.pending(ctx, db)
		if err != nil {
			return err
		}
		for _, m := range todo {
			start := time.Now()
			if err := apply(ctx, db, m); err != nil {
				return err
			}
			r.log().Info("migration applied",
				zap.Int64("version", m.Version),
				zap.String("file", m.Filename),
				zap.Duration("took", time.Since(start)),
			)
		}
		return nil
	})
}

// Pending lists the migrations Run would apply, without applying them.
func (r Runner) Pending(ctx context.Context, db database.DB) ([]Migration, error) {
	if db == nil {
		return nil, ErrNilDB
	}
	return r.pending(ctx, db)
}

func (r Runner) pending(ctx context.Context, db database.DB) ([]Migration, error) {
	migs, err := Load(r.FS)
	if err != nil || len(migs) == 0 {
		return nil, err
	}
	if _, err := db.Exec(ctx, createHistoryTable); err != nil {
		return nil, fmt.Errorf("create schema_migrations: %w", err)
	}
	applied, err := appliedChecksums(ctx, db)
	if err != nil {
		return nil, err
	}
	return unapplied(migs, applied)
}

func (r Runner) locked(ctx context.Context, db database.DB, fn func() error) error {
	if _, err := db.Exec(ctx, `SELECT pg_advisory_lock($1)`, lockKey); err != nil {
		return fmt.Errorf("acquire migration lock: %w", err)
	}
	defer func() {
		if _, err := db.Exec(context.WithoutCancel(ctx), `SELECT pg_advisory_unlock($1)`, lockKey); err != nil {
			r.log().Warn("release migration lock", zap.Error(err))
		}
	}()
	return fn()
}

// unapplied drops migrations already recorded in applied, failing when a
// recorded file no longer hashes to its stored checksum.
func unapplied(migs []Migration, applied map[int64]string) ([]Migration, error) {
	out := make([]Migration, 0, len(migs))
	for _, m := range migs {
		sum, ok := applied[m.Version]
		switch {
		case !ok:
			out = append(out, m)
		case sum != m.Checksum:
			return nil, fmt.Errorf("%w: %s", ErrChecksumMismatch, m.Filename)
		}
	}
	return out, nil
}

var fileRe = regexp.MustCompile(`^V(\d+)__([A-Za-z0-9_.-]+)\.sql$`)

// Load reads V<version>__<name>.sql files from the root of fsys, sorted by
// version. Other files are ignored.
func Load(fsys fs.FS) ([]Migration, error) {
	if fsys == nil {
		return nil, nil
	}
	entries, err := fs.ReadDir(fsys, ".")
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var migs []Migration
	for _, e := range entries {
		match := fileRe.FindStringSubmatch(e.Name())
		if e.IsDir() || match == nil {
			continue
		}
		m, err := parse(fsys, e.Name(), match[1], match[2])
		if err != nil {
			return nil, err
		}
		migs = append(migs, m)
	}

	slices.SortFunc(migs, func(a, b Migration) int { return cmp.Compare(a.Version, b.Version) })
	for i := 1; i < len(migs); i++ {
		if migs[i].Version == migs[i-1].Version {
			return nil, fmt.Errorf("duplicate migration version: %d", migs[i].Version)
		}
	}
	return migs, nil
}

func parse(fsys fs.FS, file, version, name string) (Migration, error) {
	v, err := strconv.ParseInt(version, 10, 64)
	if err != nil {
		return Migration{}, fmt.Errorf("invalid migration version: %s", file)
	}
	b, err := fs.ReadFile(fsys, file)
	if err != nil {
		return Migration{}, err
	}
	body := strings.TrimSpace(string(b))
	if body == "" {
		return Migration{}, fmt.Errorf("empty migration file: %s", file)
	}
	sum := sha256.Sum256([]byte(body))
	return Migration{
		Version:  v,
		Name:     name,
		Filename: file,
		SQL:      body,
		Checksum: hex.EncodeToString(sum[:]),
	}, nil
}

const createHistoryTable = `
CREATE TABLE IF NOT EXISTS schema_migrations (
	version BIGINT PRIMARY KEY,
	name TEXT NOT NULL,
	checksum TEXT NOT NULL,
	applied_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

func appliedChecksums(ctx context.Context, q database.Querier) (map[int64]string, error) {
	rows, err := q.Query(ctx, `SELECT version, checksum FROM schema_migrations`)
	if err != nil {
		return nil, fmt.Errorf("read schema_migrations: %w", err)
	}
	defer rows.Close()

	out := map[int64]string{}
	for rows.Next() {
		var (
			v   int64
			sum string
		)
		if err := rows.Scan(&v, &sum); err != nil {
			return nil, err
		}
		out[v] = sum
	}
	return out, rows.Err()
}

func apply(ctx context.Context, db database.DB, m Migration) error {
	return database.WithTx(ctx, db, func(tx database.Tx) error {
		if _, err := tx.Exec(ctx, m.SQL); err != nil {
			return fmt.Errorf("apply %s: %w", m.Filename, err)
		}
		_, err := tx.Exec(ctx,
			`INSERT INTO schema_migrations (version, name, checksum) VALUES ($1, $2, $3)`,
			m.Version, m.Name, m.Checksum,
		)
		return err
	})
}
