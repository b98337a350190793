// Package sqlstore persists par curve snapshots and reference fixings in
// PostgreSQL or SQLite.
package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/avelezX/xerenity-fe-sub001/marketdata"
	"github.com/avelezX/xerenity-fe-sub001/ratepath"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

const (
	// DriverPostgres selects github.com/lib/pq.
	DriverPostgres = "postgres"
	// DriverSQLite selects modernc.org/sqlite.
	DriverSQLite = "sqlite"

	dateLayout = "2006-01-02"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS par_curve_points (
	    curve_name   TEXT NOT NULL,
	    as_of        TEXT NOT NULL,
	    tenor_months DOUBLE PRECISION NOT NULL,
	    rate         DOUBLE PRECISION NOT NULL,
	    PRIMARY KEY (curve_name, as_of, tenor_months)
	 )`,
	`CREATE TABLE IF NOT EXISTS reference_rates (
	    rate_name TEXT NOT NULL,
	    as_of     TEXT NOT NULL,
	    rate      DOUBLE PRECISION NOT NULL,
	    PRIMARY KEY (rate_name, as_of)
	 )`,
}

// Store reads and writes market data through database/sql.
type Store struct {
	sqlDB  *sql.DB
	driver string
}

var _ marketdata.CurveSource = (*Store)(nil)

// Open connects to driver/dsn, pings it and creates missing tables.
func Open(ctx context.Context, driver, dsn string) (*Store, error) {
	driver = strings.ToLower(strings.TrimSpace(driver))
	switch driver {
	case DriverPostgres, DriverSQLite:
	case "postgresql":
		driver = DriverPostgres
	default:
		return nil, fmt.Errorf("unsupported driver %q (use postgres or sqlite)", driver)
	}
	if strings.TrimSpace(dsn) == "" {
		return nil, fmt.Errorf("dsn is required")
	}

	sqlDB, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s db: %w", driver, err)
	}
	if driver == DriverSQLite {
		// A single connection keeps :memory: databases shared across calls.
		sqlDB.SetMaxOpenConns(1)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping %s db: %w", driver, err)
	}

	store := &Store{sqlDB: sqlDB, driver: driver}
	if err := store.migrate(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return store, nil
}

// Close releases the underlying connection pool.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

func (s *Store) migrate(ctx context.Context) error {
	for _, stmt := range schema {
		if _, err := s.sqlDB.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

// rebind rewrites ? placeholders to $n for postgres.
func (s *Store) rebind(query string) string {
	if s.driver != DriverPostgres {
		return query
	}
	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// PutSnapshot replaces the curve stored under (snap.Name, snap.AsOf).
func (s *Store) PutSnapshot(ctx context.Context, snap marketdata.Snapshot) error {
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	name := strings.TrimSpace(snap.Name)
	if name == "" {
		return fmt.Errorf("curve name is required")
	}
	if err := snap.Curve.Validate(); err != nil {
		return fmt.Errorf("curve %q: %w", name, err)
	}
	asOf := snap.AsOf.Format(dateLayout)

	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx,
		s.rebind(`DELETE FROM par_curve_points WHERE curve_name = ? AND as_of = ?`),
		name, asOf,
	); err != nil {
		return fmt.Errorf("clear curve: %w", err)
	}
	insert := s.rebind(`INSERT INTO par_curve_points (curve_name, as_of, tenor_months, rate) VALUES (?, ?, ?, ?)`)
	for _, p := range snap.Curve {
		if _, err := tx.ExecContext(ctx, insert, name, asOf, p.TenorMonths, p.Rate); err != nil {
			return fmt.Errorf("insert curve point %g: %w", p.TenorMonths, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit curve: %w", err)
	}
	return nil
}

// Snapshot returns the latest curve named name on or before asOf.
func (s *Store) Snapshot(ctx context.Context, name string, asOf time.Time) (marketdata.Snapshot, error) {
	if s == nil || s.sqlDB == nil {
		return marketdata.Snapshot{}, fmt.Errorf("storage is not configured")
	}
	name = strings.TrimSpace(name)

	var latest sql.NullString
	err := s.sqlDB.QueryRowContext(ctx,
		s.rebind(`SELECT MAX(as_of) FROM par_curve_points WHERE curve_name = ? AND as_of <= ?`),
		name, asOf.Format(dateLayout),
	).Scan(&latest)
	if err != nil {
		return marketdata.Snapshot{}, fmt.Errorf("find curve date: %w", err)
	}
	if !latest.Valid {
		return marketdata.Snapshot{}, fmt.Errorf("curve %q on or before %s: %w", name, asOf.Format(dateLayout), marketdata.ErrNotFound)
	}
	curveDate, err := time.Parse(dateLayout, latest.String)
	if err != nil {
		return marketdata.Snapshot{}, fmt.Errorf("stored curve date %q: %w", latest.String, err)
	}

	rows, err := s.sqlDB.QueryContext(ctx,
		s.rebind(`SELECT tenor_months, rate FROM par_curve_points WHERE curve_name = ? AND as_of = ? ORDER BY tenor_months`),
		name, latest.String,
	)
	if err != nil {
		return marketdata.Snapshot{}, fmt.Errorf("query curve: %w", err)
	}
	defer rows.Close()

	var crv ratepath.Curve
	for rows.Next() {
		var p ratepath.CurvePoint
		if err := rows.Scan(&p.TenorMonths, &p.Rate); err != nil {
			return marketdata.Snapshot{}, fmt.Errorf("scan curve point: %w", err)
		}
		crv = append(crv, p)
	}
	if err := rows.Err(); err != nil {
		return marketdata.Snapshot{}, fmt.Errorf("iterate curve: %w", err)
	}
	return marketdata.Snapshot{Name: name, AsOf: curveDate, Curve: crv}, nil
}

// PutReferenceRate upserts a fixing in percent.
func (s *Store) PutReferenceRate(ctx context.Context, name string, asOf time.Time, rate float64) error {
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("rate name is required")
	}
	_, err := s.sqlDB.ExecContext(ctx,
		s.rebind(`INSERT INTO reference_rates (rate_name, as_of, rate) VALUES (?, ?, ?)
		 ON CONFLICT (rate_name, as_of) DO UPDATE SET rate = excluded.rate`),
		name, asOf.Format(dateLayout), rate,
	)
	if err != nil {
		return fmt.Errorf("put reference rate: %w", err)
	}
	return nil
}

// ReferenceRate returns the latest fixing named name on or before asOf and
// its fixing date.
func (s *Store) ReferenceRate(ctx context.Context, name string, asOf time.Time) (float64, time.Time, error) {
	if s == nil || s.sqlDB == nil {
		return 0, time.Time{}, fmt.Errorf("storage is not configured")
	}
	var (
		rate  float64
		fixed string
	)
	err := s.sqlDB.QueryRowContext(ctx,
		s.rebind(`SELECT rate, as_of FROM reference_rates WHERE rate_name = ? AND as_of <= ? ORDER BY as_of DESC LIMIT 1`),
		strings.TrimSpace(name), asOf.Format(dateLayout),
	).Scan(&rate, &fixed)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, time.Time{}, fmt.Errorf("reference rate %q on or before %s: %w", name, asOf.Format(dateLayout), marketdata.ErrNotFound)
	}
	if err != nil {
		return 0, time.Time{}, fmt.Errorf("get reference rate: %w", err)
	}
	d, err := time.Parse(dateLayout, fixed)
	if err != nil {
		return 0, time.Time{}, fmt.Errorf("stored fixing date %q: %w", fixed, err)
	}
	return rate, d, nil
}
