package store

import (
	"bufio"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Every applied mutation is appended to a local event log so "what changed my
// sidebar" is answerable after the fact. Two backends:
//
//   - jsonl (default): append-only events.jsonl, one JSON object per line
//   - sqlite: events.sqlite via modernc.org/sqlite (WAL)
//
// NAVRAIL_EVENTLOG selects the backend explicitly; otherwise an existing
// events.sqlite wins, else jsonl.

const (
	eventsJSONLName  = "events.jsonl"
	eventsSQLiteName = "events.sqlite"
)

type Event struct {
	ID       string         `json:"id"`
	TS       time.Time      `json:"ts"`
	Type     string         `json:"type"`
	EntityID string         `json:"entityId"`
	Payload  map[string]any `json:"payload,omitempty"`
}

type eventBackend int

const (
	backendJSONL eventBackend = iota
	backendSQLite
)

func (s Store) eventBackend() eventBackend {
	switch strings.ToLower(strings.TrimSpace(os.Getenv("NAVRAIL_EVENTLOG"))) {
	case "sqlite":
		return backendSQLite
	case "jsonl":
		return backendJSONL
	}
	if _, err := os.Stat(filepath.Join(s.Dir, eventsSQLiteName)); err == nil {
		return backendSQLite
	}
	return backendJSONL
}

// AppendEvent records one applied mutation. typ and entityID are required;
// payload may be nil.
func (s Store) AppendEvent(typ, entityID string, payload map[string]any) error {
	typ = strings.TrimSpace(typ)
	entityID = strings.TrimSpace(entityID)
	if typ == "" {
		return errors.New("missing event type")
	}
	if entityID == "" {
		return errors.New("missing entity id")
	}
	if err := s.Ensure(); err != nil {
		return err
	}
	ev := Event{
		ID:       uuid.NewString(),
		TS:       time.Now().UTC(),
		Type:     typ,
		EntityID: entityID,
		Payload:  payload,
	}
	if s.eventBackend() == backendSQLite {
		return s.appendEventSQLite(ev)
	}
	return s.appendEventJSONL(ev)
}

// ListEvents returns all recorded events, oldest first.
func (s Store) ListEvents() ([]Event, error) {
	if s.eventBackend() == backendSQLite {
		return s.listEventsSQLite()
	}
	return s.listEventsJSONL()
}

func (s Store) jsonlPath() string {
	return filepath.Join(s.Dir, eventsJSONLName)
}

func (s Store) appendEventJSONL(ev Event) error {
	b, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	f, err := os.OpenFile(s.jsonlPath(), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()
	if _, err := f.Write(append(b, '\n')); err != nil {
		return err
	}
	return f.Sync()
}

func (s Store) listEventsJSONL() ([]Event, error) {
	f, err := os.Open(s.jsonlPath())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []Event{}, nil
		}
		return nil, err
	}
	defer f.Close()

	out := []Event{}
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		var ev Event
		if err := json.Unmarshal([]byte(line), &ev); err != nil {
			// Skip torn/corrupt lines instead of failing the whole listing.
			continue
		}
		out = append(out, ev)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
