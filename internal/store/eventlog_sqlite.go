package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

func (s Store) sqlitePath() string {
	return filepath.Join(s.Dir, eventsSQLiteName)
}

func (s Store) openSQLite(ctx context.Context) (*sql.DB, error) {
	if err := s.Ensure(); err != nil {
		return nil, err
	}
	// modernc.org/sqlite driver name is "sqlite".
	db, err := sql.Open("sqlite", s.sqlitePath())
	if err != nil {
		return nil, err
	}
	// WAL enables one writer + many readers; busy_timeout avoids "database is
	// locked" flakiness when the CLI and TUI touch the log from two processes.
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA busy_timeout=5000;",
		"PRAGMA synchronous=NORMAL;",
	}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			_ = db.Close()
			return nil, err
		}
	}
	const schema = `
CREATE TABLE IF NOT EXISTS events (
  id        TEXT PRIMARY KEY,
  ts        TEXT NOT NULL,
  type      TEXT NOT NULL,
  entity_id TEXT NOT NULL,
  payload   TEXT
);
CREATE INDEX IF NOT EXISTS idx_events_ts ON events(ts);
`
	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

func (s Store) appendEventSQLite(ev Event) error {
	ctx := context.Background()
	db, err := s.openSQLite(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	var payload []byte
	if ev.Payload != nil {
		payload, err = json.Marshal(ev.Payload)
		if err != nil {
			return err
		}
	}
	_, err = db.ExecContext(ctx,
		`INSERT INTO events (id, ts, type, entity_id, payload) VALUES (?, ?, ?, ?, ?)`,
		ev.ID, ev.TS.Format(time.RFC3339Nano), ev.Type, ev.EntityID, string(payload))
	return err
}

func (s Store) listEventsSQLite() ([]Event, error) {
	ctx := context.Background()
	db, err := s.openSQLite(ctx)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx,
		`SELECT id, ts, type, entity_id, payload FROM events ORDER BY ts, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Event{}
	for rows.Next() {
		var ev Event
		var ts, payload string
		if err := rows.Scan(&ev.ID, &ts, &ev.Type, &ev.EntityID, &payload); err != nil {
			return nil, err
		}
		if t, err := time.Parse(time.RFC3339Nano, ts); err == nil {
			ev.TS = t
		}
		if payload != "" {
			_ = json.Unmarshal([]byte(payload), &ev.Payload)
		}
		out = append(out, ev)
	}
	return out, rows.Err()
}
