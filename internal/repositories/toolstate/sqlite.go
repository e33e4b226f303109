package toolstate

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/KirkDiggler/tool-replenish/internal/catalog"
	"github.com/KirkDiggler/tool-replenish/internal/domain/tools"
	apperr "github.com/KirkDiggler/tool-replenish/internal/errors"
)

// SQLiteRepository keeps tool state in a local SQLite file, for single
// machine setups without Redis. Cost popups go to the hud table.
type SQLiteRepository struct {
	db      *sql.DB
	catalog *catalog.Catalog
}

var _ Repository = (*SQLiteRepository)(nil)

// SQLiteRepoConfig holds configuration for the SQLite repository
type SQLiteRepoConfig struct {
	// Path is the database file; ":memory:" keeps everything in process
	Path    string
	Catalog *catalog.Catalog
}

// NewSQLite opens (creating if needed) the database at path
func NewSQLite(path string, c *catalog.Catalog) (*SQLiteRepository, error) {
	return NewSQLiteRepository(&SQLiteRepoConfig{
		Path:    path,
		Catalog: c,
	})
}

// NewSQLiteRepository creates a SQLite-backed repository
func NewSQLiteRepository(cfg *SQLiteRepoConfig) (*SQLiteRepository, error) {
	if cfg == nil || cfg.Catalog == nil {
		panic("catalog is required")
	}
	path, c := cfg.Path, cfg.Catalog
	if path == "" {
		return nil, apperr.InvalidArgument("empty db path")
	}
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, apperr.Wrapf(err, "failed to create directory for %s", path)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, unavailable(err, "failed to open %s", path)
	}
	// One connection keeps ":memory:" a single database and serializes writers
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := initPragmas(db); err != nil {
		_ = db.Close()
		return nil, unavailable(err, "failed to set pragmas")
	}
	if err := initSchema(db); err != nil {
		_ = db.Close()
		return nil, unavailable(err, "failed to create schema")
	}

	return &SQLiteRepository{db: db, catalog: c}, nil
}

func initPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=5000;",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return err
		}
	}
	return nil
}

func initSchema(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS profiles (
			profile_id TEXT PRIMARY KEY
		);`,
		`CREATE TABLE IF NOT EXISTS equipped (
			profile_id TEXT NOT NULL,
			slot INTEGER NOT NULL,
			name TEXT NOT NULL,
			PRIMARY KEY (profile_id, slot)
		);`,
		`CREATE TABLE IF NOT EXISTS tool_data (
			profile_id TEXT NOT NULL,
			name TEXT NOT NULL,
			amount_left INTEGER NOT NULL,
			PRIMARY KEY (profile_id, name)
		);`,
		`CREATE TABLE IF NOT EXISTS capacity (
			profile_id TEXT NOT NULL,
			name TEXT NOT NULL,
			bonus INTEGER NOT NULL,
			PRIMARY KEY (profile_id, name)
		);`,
		`CREATE TABLE IF NOT EXISTS currency (
			profile_id TEXT NOT NULL,
			kind TEXT NOT NULL,
			amount INTEGER NOT NULL,
			PRIMARY KEY (profile_id, kind)
		);`,
		`CREATE TABLE IF NOT EXISTS reserves (
			profile_id TEXT NOT NULL,
			pool TEXT NOT NULL,
			refills_left INTEGER NOT NULL,
			refills_max INTEGER NOT NULL,
			used_extra INTEGER NOT NULL,
			infinite_shown INTEGER NOT NULL,
			spent REAL NOT NULL DEFAULT 0,
			PRIMARY KEY (profile_id, pool)
		);`,
		`CREATE TABLE IF NOT EXISTS hud (
			seq INTEGER PRIMARY KEY AUTOINCREMENT,
			profile_id TEXT NOT NULL,
			kind TEXT NOT NULL,
			hud_key TEXT NOT NULL,
			amount INTEGER NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_hud_profile ON hud(profile_id, seq);`,
	}
	for _, s := range stmts {
		if _, err := db.Exec(s); err != nil {
			return err
		}
	}
	return nil
}

// Close closes the database
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

func (r *SQLiteRepository) touch(ctx context.Context, tx *sql.Tx, profileID string) error {
	_, err := tx.ExecContext(ctx, `INSERT OR IGNORE INTO profiles(profile_id) VALUES (?)`, profileID)
	return err
}

// inTx runs fn in a transaction that also registers the profile
func (r *SQLiteRepository) inTx(ctx context.Context, profileID string, fn func(tx *sql.Tx) error) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if err := r.touch(ctx, tx, profileID); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

func (r *SQLiteRepository) ListEquipped(ctx context.Context, profileID string) ([]*tools.Tool, error) {
	if profileID == "" {
		return nil, apperr.InvalidArgument("profile ID is required")
	}

	names, err := r.equippedNames(ctx, profileID)
	if err != nil {
		return nil, err
	}
	if len(names) == 0 {
		return nil, nil
	}

	result := make([]*tools.Tool, len(names))
	for i, name := range names {
		if t, ok := r.catalog.Get(name); ok {
			result[i] = t
		}
	}
	return result, nil
}

func (r *SQLiteRepository) equippedNames(ctx context.Context, profileID string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT name FROM equipped WHERE profile_id=? ORDER BY slot`, profileID)
	if err != nil {
		return nil, unavailable(err, "failed to list equipped tools for %s", profileID)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, unavailable(err, "failed to scan equipped tool")
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, unavailable(err, "failed to list equipped tools for %s", profileID)
	}
	return names, nil
}

func (r *SQLiteRepository) Equip(ctx context.Context, profileID string, names ...string) error {
	if profileID == "" {
		return apperr.InvalidArgument("profile ID is required")
	}

	err := r.inTx(ctx, profileID, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM equipped WHERE profile_id=?`, profileID); err != nil {
			return err
		}
		for slot, name := range names {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO equipped(profile_id, slot, name) VALUES (?, ?, ?)`, profileID, slot, name); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return unavailable(err, "failed to equip tools for %s", profileID)
	}
	return nil
}

func (r *SQLiteRepository) GetToolData(ctx context.Context, profileID, name string) (*tools.ToolData, error) {
	var data tools.ToolData
	err := r.db.QueryRowContext(ctx,
		`SELECT amount_left FROM tool_data WHERE profile_id=? AND name=?`, profileID, name).Scan(&data.AmountLeft)
	if errors.Is(err, sql.ErrNoRows) {
		return &tools.ToolData{}, nil
	}
	if err != nil {
		return nil, unavailable(err, "failed to get tool %s", name)
	}
	return &data, nil
}

func (r *SQLiteRepository) SetToolData(ctx context.Context, profileID, name string, data *tools.ToolData) error {
	if data == nil {
		return apperr.InvalidArgument("tool data cannot be nil")
	}
	if data.AmountLeft < 0 {
		return apperr.InvalidArgumentf("tool %s amount cannot be negative", name)
	}

	err := r.inTx(ctx, profileID, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `INSERT INTO tool_data(profile_id, name, amount_left) VALUES (?, ?, ?)
			ON CONFLICT(profile_id, name) DO UPDATE SET amount_left=excluded.amount_left`,
			profileID, name, data.AmountLeft)
		return err
	})
	if err != nil {
		return unavailable(err, "failed to set tool %s", name)
	}
	return nil
}

func (r *SQLiteRepository) GetStorageCapacity(ctx context.Context, profileID string, tool *tools.Tool) (int, error) {
	if tool == nil {
		return 0, apperr.InvalidArgument("tool cannot be nil")
	}

	var bonus int
	err := r.db.QueryRowContext(ctx,
		`SELECT bonus FROM capacity WHERE profile_id=? AND name=?`, profileID, tool.Name).Scan(&bonus)
	if errors.Is(err, sql.ErrNoRows) {
		return tool.BaseStorage, nil
	}
	if err != nil {
		return 0, unavailable(err, "failed to get capacity for %s", tool.Name)
	}
	return tool.BaseStorage + bonus, nil
}

func (r *SQLiteRepository) SetCapacityBonus(ctx context.Context, profileID, name string, bonus int) error {
	err := r.inTx(ctx, profileID, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `INSERT INTO capacity(profile_id, name, bonus) VALUES (?, ?, ?)
			ON CONFLICT(profile_id, name) DO UPDATE SET bonus=excluded.bonus`,
			profileID, name, bonus)
		return err
	})
	if err != nil {
		return unavailable(err, "failed to set capacity for %s", name)
	}
	return nil
}

func (r *SQLiteRepository) CurrencyKinds(ctx context.Context, profileID string) ([]tools.CurrencyKind, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT kind FROM currency WHERE profile_id=?`, profileID)
	if err != nil {
		return nil, unavailable(err, "failed to list currencies for %s", profileID)
	}
	defer rows.Close()

	var held []string
	for rows.Next() {
		var kind string
		if err := rows.Scan(&kind); err != nil {
			return nil, unavailable(err, "failed to scan currency")
		}
		held = append(held, kind)
	}
	if err := rows.Err(); err != nil {
		return nil, unavailable(err, "failed to list currencies for %s", profileID)
	}
	return mergeKinds(r.catalog.Currencies(), held), nil
}

func (r *SQLiteRepository) GetCurrencyAmount(ctx context.Context, profileID string, kind tools.CurrencyKind) (float64, error) {
	var amount int64
	err := r.db.QueryRowContext(ctx,
		`SELECT amount FROM currency WHERE profile_id=? AND kind=?`, profileID, string(kind)).Scan(&amount)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, unavailable(err, "failed to get currency %s", kind)
	}
	return float64(amount), nil
}

func (r *SQLiteRepository) SetCurrency(ctx context.Context, profileID string, kind tools.CurrencyKind, amount int) error {
	if amount < 0 {
		return apperr.InvalidArgumentf("currency %s cannot be negative", kind)
	}

	err := r.inTx(ctx, profileID, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `INSERT INTO currency(profile_id, kind, amount) VALUES (?, ?, ?)
			ON CONFLICT(profile_id, kind) DO UPDATE SET amount=excluded.amount`,
			profileID, string(kind), amount)
		return err
	})
	if err != nil {
		return unavailable(err, "failed to set currency %s", kind)
	}
	return nil
}

func (r *SQLiteRepository) TakeCurrency(ctx context.Context, profileID string, amount int, kind tools.CurrencyKind, notifyUI bool) error {
	if amount < 0 {
		return apperr.InvalidArgumentf("cannot take negative %s", kind)
	}

	err := r.inTx(ctx, profileID, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `INSERT INTO currency(profile_id, kind, amount) VALUES (?, ?, 0)
			ON CONFLICT(profile_id, kind) DO UPDATE SET amount=MAX(0, amount - ?)`,
			profileID, string(kind), amount); err != nil {
			return err
		}
		if !notifyUI {
			return nil
		}
		return insertHUD(ctx, tx, profileID, HUDMessage{Kind: HUDKindCurrency, Key: string(kind), Amount: amount})
	})
	if err != nil {
		return unavailable(err, "failed to take currency %s", kind)
	}
	return nil
}

func (r *SQLiteRepository) GetReserveState(ctx context.Context, profileID, pool string) (*tools.ReserveState, error) {
	state, err := scanReserve(r.db.QueryRowContext(ctx, `SELECT refills_left, refills_max, used_extra, infinite_shown, spent
		FROM reserves WHERE profile_id=? AND pool=?`, profileID, pool))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.NotFoundf("reserve %s not found", pool).WithMeta("pool", pool)
	}
	if err != nil {
		return nil, unavailable(err, "failed to get reserve %s", pool)
	}
	return state, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanReserve(row rowScanner) (*tools.ReserveState, error) {
	var state tools.ReserveState
	if err := row.Scan(&state.RefillsLeft, &state.RefillsMax, &state.UsedExtra, &state.InfiniteShown, &state.Spent); err != nil {
		return nil, err
	}
	return &state, nil
}

func (r *SQLiteRepository) SetReserveState(ctx context.Context, profileID, pool string, state *tools.ReserveState) error {
	if state == nil {
		return apperr.InvalidArgument("reserve state cannot be nil")
	}

	err := r.inTx(ctx, profileID, func(tx *sql.Tx) error {
		return upsertReserve(ctx, tx, profileID, pool, state)
	})
	if err != nil {
		return unavailable(err, "failed to set reserve %s", pool)
	}
	return nil
}

func upsertReserve(ctx context.Context, tx *sql.Tx, profileID, pool string, state *tools.ReserveState) error {
	_, err := tx.ExecContext(ctx, `INSERT INTO reserves(profile_id, pool, refills_left, refills_max, used_extra, infinite_shown, spent)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(profile_id, pool) DO UPDATE SET refills_left=excluded.refills_left,
			refills_max=excluded.refills_max, used_extra=excluded.used_extra,
			infinite_shown=excluded.infinite_shown, spent=excluded.spent`,
		profileID, pool, state.RefillsLeft, state.RefillsMax, state.UsedExtra, state.InfiniteShown, state.Spent)
	return err
}

// updateReserve applies fn to a stored pool inside one transaction
func (r *SQLiteRepository) updateReserve(ctx context.Context, profileID, pool string, fn func(*tools.ReserveState) *HUDMessage) error {
	var missing bool
	err := r.inTx(ctx, profileID, func(tx *sql.Tx) error {
		state, err := scanReserve(tx.QueryRowContext(ctx, `SELECT refills_left, refills_max, used_extra, infinite_shown, spent
			FROM reserves WHERE profile_id=? AND pool=?`, profileID, pool))
		if errors.Is(err, sql.ErrNoRows) {
			missing = true
			return err
		}
		if err != nil {
			return err
		}

		msg := fn(state)
		if err := upsertReserve(ctx, tx, profileID, pool, state); err != nil {
			return err
		}
		if msg == nil {
			return nil
		}
		return insertHUD(ctx, tx, profileID, *msg)
	})
	if missing {
		return apperr.NotFoundf("reserve %s not found", pool).WithMeta("pool", pool)
	}
	if err != nil {
		return unavailable(err, "failed to update reserve %s", pool)
	}
	return nil
}

func (r *SQLiteRepository) TakeReserve(ctx context.Context, profileID, pool string, amount int, notifyUI bool) error {
	return r.updateReserve(ctx, profileID, pool, func(state *tools.ReserveState) *HUDMessage {
		state.Take(amount)
		if !notifyUI {
			return nil
		}
		return &HUDMessage{Kind: HUDKindReserve, Key: pool, Amount: amount}
	})
}

func (r *SQLiteRepository) SetReserveSpent(ctx context.Context, profileID, pool string, spent float64) error {
	if spent < 0 || spent >= 1 {
		return apperr.InvalidArgumentf("reserve %s spent share %.3f out of range", pool, spent)
	}
	return r.updateReserve(ctx, profileID, pool, func(state *tools.ReserveState) *HUDMessage {
		state.Spent = spent
		return nil
	})
}

func (r *SQLiteRepository) MarkInfiniteReserveShown(ctx context.Context, profileID, pool string) error {
	return r.updateReserve(ctx, profileID, pool, func(state *tools.ReserveState) *HUDMessage {
		state.InfiniteShown = true
		return &HUDMessage{Kind: HUDKindInfinite, Key: pool}
	})
}

func (r *SQLiteRepository) LoadProfile(ctx context.Context, profileID string) (*Profile, error) {
	if profileID == "" {
		return nil, apperr.InvalidArgument("profile ID is required")
	}

	var known int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM profiles WHERE profile_id=?`, profileID).Scan(&known); err != nil {
		return nil, unavailable(err, "failed to load profile %s", profileID)
	}
	if known == 0 {
		return nil, apperr.NotFoundf("profile %s not found", profileID).WithMeta("profile_id", profileID)
	}

	names, err := r.equippedNames(ctx, profileID)
	if err != nil {
		return nil, err
	}

	p := &Profile{
		ID:         profileID,
		Equipped:   append([]string{}, names...),
		Tools:      make(map[string]*tools.ToolData),
		Capacity:   make(map[string]int),
		Currencies: make(map[tools.CurrencyKind]int),
		Reserves:   make(map[string]*tools.ReserveState),
	}

	err = r.eachRow(ctx, `SELECT name, amount_left FROM tool_data WHERE profile_id=?`, profileID, func(row rowScanner) error {
		var name string
		var data tools.ToolData
		if err := row.Scan(&name, &data.AmountLeft); err != nil {
			return err
		}
		p.Tools[name] = &data
		return nil
	})
	if err != nil {
		return nil, err
	}

	err = r.eachRow(ctx, `SELECT name, bonus FROM capacity WHERE profile_id=?`, profileID, func(row rowScanner) error {
		var name string
		var bonus int
		if err := row.Scan(&name, &bonus); err != nil {
			return err
		}
		p.Capacity[name] = bonus
		return nil
	})
	if err != nil {
		return nil, err
	}

	err = r.eachRow(ctx, `SELECT kind, amount FROM currency WHERE profile_id=?`, profileID, func(row rowScanner) error {
		var kind string
		var amount int
		if err := row.Scan(&kind, &amount); err != nil {
			return err
		}
		p.Currencies[tools.CurrencyKind(kind)] = amount
		return nil
	})
	if err != nil {
		return nil, err
	}

	err = r.eachRow(ctx, `SELECT pool, refills_left, refills_max, used_extra, infinite_shown, spent
		FROM reserves WHERE profile_id=?`, profileID, func(row rowScanner) error {
		var pool string
		var state tools.ReserveState
		if err := row.Scan(&pool, &state.RefillsLeft, &state.RefillsMax, &state.UsedExtra, &state.InfiniteShown, &state.Spent); err != nil {
			return err
		}
		p.Reserves[pool] = &state
		return nil
	})
	if err != nil {
		return nil, err
	}

	return p, nil
}

func (r *SQLiteRepository) eachRow(ctx context.Context, query, profileID string, fn func(rowScanner) error) error {
	rows, err := r.db.QueryContext(ctx, query, profileID)
	if err != nil {
		return unavailable(err, "failed to load profile %s", profileID)
	}
	defer rows.Close()

	for rows.Next() {
		if err := fn(rows); err != nil {
			return unavailable(err, "failed to scan profile %s", profileID)
		}
	}
	if err := rows.Err(); err != nil {
		return unavailable(err, "failed to load profile %s", profileID)
	}
	return nil
}

// HUDMessages returns the cost popups recorded for a profile, oldest first
func (r *SQLiteRepository) HUDMessages(ctx context.Context, profileID string) ([]HUDMessage, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT kind, hud_key, amount FROM hud WHERE profile_id=? ORDER BY seq`, profileID)
	if err != nil {
		return nil, unavailable(err, "failed to list hud messages for %s", profileID)
	}
	defer rows.Close()

	var out []HUDMessage
	for rows.Next() {
		var msg HUDMessage
		if err := rows.Scan(&msg.Kind, &msg.Key, &msg.Amount); err != nil {
			return nil, unavailable(err, "failed to scan hud message")
		}
		out = append(out, msg)
	}
	if err := rows.Err(); err != nil {
		return nil, unavailable(err, "failed to list hud messages for %s", profileID)
	}
	return out, nil
}

func insertHUD(ctx context.Context, tx *sql.Tx, profileID string, msg HUDMessage) error {
	_, err := tx.ExecContext(ctx, `INSERT INTO hud(profile_id, kind, hud_key, amount) VALUES (?, ?, ?, ?)`,
		profileID, msg.Kind, msg.Key, msg.Amount)
	if err != nil {
		return fmt.Errorf("insert hud message: %w", err)
	}
	return nil
}
