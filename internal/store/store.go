// Package store provides SQLite-backed persistence for battle snapshots,
// supporting save/resume across process restarts. The snapshot format is
// owned by the battle package; the store treats it as an opaque JSON
// document keyed by battle and round.
package store

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/talgya/hextactics/internal/battle"
)

// DB wraps a SQLite connection for snapshot storage.
type DB struct {
	conn *sqlx.DB
}

// Open opens or creates a SQLite database at the given path.
func Open(path string) (*DB, error) {
	conn, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return db, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS snapshots (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		battle_id TEXT NOT NULL,
		round INTEGER NOT NULL,
		phase TEXT NOT NULL,
		saved_at TEXT NOT NULL,
		state_json TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_snapshots_battle ON snapshots(battle_id, id);
	`
	_, err := db.conn.Exec(schema)
	return err
}

// SaveSnapshot appends a battle snapshot.
func (db *DB) SaveSnapshot(snap *battle.Snapshot) error {
	stateJSON, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}

	_, err = db.conn.Exec(
		`INSERT INTO snapshots (battle_id, round, phase, saved_at, state_json)
		 VALUES (?, ?, ?, ?, ?)`,
		snap.ID, snap.Round, snap.Phase.Name(),
		time.Now().UTC().Format(time.RFC3339), string(stateJSON),
	)
	if err != nil {
		return fmt.Errorf("insert snapshot %s: %w", snap.ID, err)
	}

	slog.Debug("snapshot saved", "battle", snap.ID, "round", snap.Round)
	return nil
}

// LoadLatest returns the most recent snapshot for a battle.
func (db *DB) LoadLatest(battleID string) (*battle.Snapshot, error) {
	var stateJSON string
	err := db.conn.Get(&stateJSON,
		`SELECT state_json FROM snapshots WHERE battle_id = ? ORDER BY id DESC LIMIT 1`,
		battleID,
	)
	if err != nil {
		return nil, fmt.Errorf("load snapshot %s: %w", battleID, err)
	}

	var snap battle.Snapshot
	if err := json.Unmarshal([]byte(stateJSON), &snap); err != nil {
		return nil, fmt.Errorf("unmarshal snapshot %s: %w", battleID, err)
	}
	return &snap, nil
}

// BattleRef identifies a stored battle.
type BattleRef struct {
	BattleID string `db:"battle_id"`
	Round    int    `db:"round"`
	Phase    string `db:"phase"`
	SavedAt  string `db:"saved_at"`
}

// ListBattles returns the latest saved state of every battle in the store.
func (db *DB) ListBattles() ([]BattleRef, error) {
	var refs []BattleRef
	err := db.conn.Select(&refs,
		`SELECT battle_id, round, phase, saved_at FROM snapshots
		 WHERE id IN (SELECT MAX(id) FROM snapshots GROUP BY battle_id)
		 ORDER BY id DESC`,
	)
	return refs, err
}
