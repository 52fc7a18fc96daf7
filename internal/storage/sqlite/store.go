package sqlite

import (
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/SPXcz/meesign-server/internal/group"
	"github.com/SPXcz/meesign-server/internal/identity"
	"github.com/SPXcz/meesign-server/internal/task"
)

// Store persists devices, groups, tasks, and client log lines in a single
// sqlite database. Rows are JSON documents keyed by hex-encoded identifiers;
// the schema only carries the columns queries filter on.
type Store struct {
	db *sql.DB
}

func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("create state directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open state db: %w", err)
	}
	if _, err := db.Exec(`PRAGMA journal_mode = WAL`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("set state db journal mode: %w", err)
	}
	if _, err := db.Exec(`PRAGMA busy_timeout = 5000`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("set state db busy timeout: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("initialize schema: %w", err)
	}

	return &Store{db: db}, nil
}

const schema = `
CREATE TABLE IF NOT EXISTS devices (
	id TEXT PRIMARY KEY,
	doc_json TEXT NOT NULL,
	updated_at TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS groups (
	id TEXT PRIMARY KEY,
	doc_json TEXT NOT NULL,
	updated_at TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS tasks (
	id TEXT PRIMARY KEY,
	doc_json TEXT NOT NULL,
	version INTEGER NOT NULL,
	updated_at TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS client_logs (
	seq INTEGER PRIMARY KEY AUTOINCREMENT,
	device TEXT,
	message TEXT NOT NULL,
	created_at TEXT NOT NULL
)`

func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *Store) SaveDevice(d *identity.Identity) error {
	payload, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("marshal device: %w", err)
	}
	_, err = s.db.Exec(
		`INSERT INTO devices (id, doc_json, updated_at)
		 VALUES (?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		 doc_json = excluded.doc_json,
		 updated_at = excluded.updated_at`,
		hex.EncodeToString(d.ID),
		string(payload),
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("save device: %w", err)
	}
	return nil
}

func (s *Store) ListDevices() ([]*identity.Identity, error) {
	rows, err := s.db.Query(`SELECT id, doc_json FROM devices ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list devices: %w", err)
	}
	defer rows.Close()

	out := make([]*identity.Identity, 0)
	for rows.Next() {
		var id, docJSON string
		if err := rows.Scan(&id, &docJSON); err != nil {
			return nil, fmt.Errorf("scan device row: %w", err)
		}
		d := &identity.Identity{}
		if err := json.Unmarshal([]byte(docJSON), d); err != nil {
			return nil, fmt.Errorf("unmarshal device %q: %w", id, err)
		}
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate device rows: %w", err)
	}
	return out, nil
}

func (s *Store) SaveGroup(g *group.Group) error {
	payload, err := json.Marshal(g)
	if err != nil {
		return fmt.Errorf("marshal group: %w", err)
	}
	_, err = s.db.Exec(
		`INSERT INTO groups (id, doc_json, updated_at)
		 VALUES (?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		 doc_json = excluded.doc_json,
		 updated_at = excluded.updated_at`,
		hex.EncodeToString(g.ID),
		string(payload),
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("save group: %w", err)
	}
	return nil
}

func (s *Store) ListGroups() ([]*group.Group, error) {
	rows, err := s.db.Query(`SELECT id, doc_json FROM groups ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list groups: %w", err)
	}
	defer rows.Close()

	out := make([]*group.Group, 0)
	for rows.Next() {
		var id, docJSON string
		if err := rows.Scan(&id, &docJSON); err != nil {
			return nil, fmt.Errorf("scan group row: %w", err)
		}
		g := &group.Group{}
		if err := json.Unmarshal([]byte(docJSON), g); err != nil {
			return nil, fmt.Errorf("unmarshal group %q: %w", id, err)
		}
		out = append(out, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate group rows: %w", err)
	}
	return out, nil
}

// SaveTask writes the task only when the stored version matches
// expectedVersion. Inserts pass 0; a conflicting insert or a stale update
// returns task.ErrVersionConflict.
func (s *Store) SaveTask(t *task.Task, expectedVersion uint64) error {
	payload, err := json.Marshal(t)
	if err != nil {
		return fmt.Errorf("marshal task: %w", err)
	}
	id := hex.EncodeToString(t.ID)
	now := time.Now().UTC().Format(time.RFC3339)

	if expectedVersion == 0 {
		res, err := s.db.Exec(
			`INSERT INTO tasks (id, doc_json, version, updated_at)
			 VALUES (?, ?, ?, ?)
			 ON CONFLICT(id) DO NOTHING`,
			id, string(payload), t.Version, now,
		)
		if err != nil {
			return fmt.Errorf("insert task %q: %w", id, err)
		}
		if n, err := res.RowsAffected(); err != nil {
			return fmt.Errorf("insert task %q: %w", id, err)
		} else if n == 0 {
			return fmt.Errorf("insert task %q: %w", id, task.ErrVersionConflict)
		}
		return nil
	}

	res, err := s.db.Exec(
		`UPDATE tasks SET doc_json = ?, version = ?, updated_at = ?
		 WHERE id = ? AND version = ?`,
		string(payload), t.Version, now, id, expectedVersion,
	)
	if err != nil {
		return fmt.Errorf("update task %q: %w", id, err)
	}
	if n, err := res.RowsAffected(); err != nil {
		return fmt.Errorf("update task %q: %w", id, err)
	} else if n == 0 {
		return fmt.Errorf("update task %q at version %d: %w", id, expectedVersion, task.ErrVersionConflict)
	}
	return nil
}

func (s *Store) ListTasks() ([]*task.Task, error) {
	rows, err := s.db.Query(`SELECT id, doc_json FROM tasks ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()

	out := make([]*task.Task, 0)
	for rows.Next() {
		var id, docJSON string
		if err := rows.Scan(&id, &docJSON); err != nil {
			return nil, fmt.Errorf("scan task row: %w", err)
		}
		t := &task.Task{}
		if err := json.Unmarshal([]byte(docJSON), t); err != nil {
			return nil, fmt.Errorf("unmarshal task %q: %w", id, err)
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate task rows: %w", err)
	}
	return out, nil
}

// AppendClientLog records a free-form log line reported by a device. The
// device id may be empty for unauthenticated reports.
func (s *Store) AppendClientLog(device []byte, message string) error {
	var deviceID any
	if len(device) > 0 {
		deviceID = hex.EncodeToString(device)
	}
	_, err := s.db.Exec(
		`INSERT INTO client_logs (device, message, created_at) VALUES (?, ?, ?)`,
		deviceID, message, time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("append client log: %w", err)
	}
	return nil
}

// ErrNotFound mirrors sql.ErrNoRows for callers that probe single rows.
var ErrNotFound = errors.New("row not found")

// GetTask loads one task row, mainly for tests and tooling; the engine
// hydrates through ListTasks.
func (s *Store) GetTask(id []byte) (*task.Task, error) {
	var docJSON string
	err := s.db.QueryRow(`SELECT doc_json FROM tasks WHERE id = ?`, hex.EncodeToString(id)).Scan(&docJSON)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("query task: %w", err)
	}
	t := &task.Task{}
	if err := json.Unmarshal([]byte(docJSON), t); err != nil {
		return nil, fmt.Errorf("unmarshal task: %w", err)
	}
	return t, nil
}
