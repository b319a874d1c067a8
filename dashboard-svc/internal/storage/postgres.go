package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"maps"
	"slices"
	"time"

	"github.com/lib/pq"
)

const DefaultNotifyChannel = "session_changes"

// Listener delivers NOTIFY payloads from a dedicated connection.
type Listener interface {
	Listen(channel string) error
	NotificationChannel() <-chan *pq.Notification
	Close() error
}

var _ Listener = (*pq.Listener)(nil)

// PostgresStore keeps session keys in a single key/value table and issues a
// NOTIFY with the changed keys inside every write transaction.
type PostgresStore struct {
	DB      *sql.DB
	Channel string
	// NewListener opens the connection Watch listens on. Without one, Watch
	// only sees writes made through this store.
	NewListener func() Listener

	feed feed
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{DB: db, Channel: DefaultNotifyChannel}
}

// PQListener returns a NewListener backed by lib/pq's reconnecting listener.
func PQListener(dsn string) func() Listener {
	return func() Listener {
		return pq.NewListener(dsn, 10*time.Second, time.Minute, func(ev pq.ListenerEventType, err error) {
			if err != nil {
				log.Printf("Warning: [STORAGE] session listener event %d: %v", ev, err)
			}
		})
	}
}

func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	_, err := s.DB.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS dashboard_session (
			key        TEXT PRIMARY KEY,
			value      TEXT NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`)
	return err
}

func (s *PostgresStore) Load(ctx context.Context, keys ...string) (map[string]string, error) {
	rows, err := s.DB.QueryContext(ctx, `
		SELECT key, value FROM dashboard_session
		WHERE key = ANY($1)
	`, pq.Array(keys))
	if err != nil {
		return nil, fmt.Errorf("load session keys: %w", err)
	}
	defer rows.Close()

	out := make(map[string]string, len(keys))
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, err
		}
		out[key] = value
	}
	return out, rows.Err()
}

func (s *PostgresStore) Save(ctx context.Context, values map[string]string) error {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	keys := slices.Sorted(maps.Keys(values))
	for _, key := range keys {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO dashboard_session (key, value, updated_at)
			VALUES ($1, $2, NOW())
			ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()
		`, key, values[key]); err != nil {
			return fmt.Errorf("save %s: %w", key, err)
		}
	}
	if err := s.notify(ctx, tx, keys); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return err
	}

	s.feed.publish(keys)
	return nil
}

func (s *PostgresStore) Delete(ctx context.Context, keys ...string) error {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `
		DELETE FROM dashboard_session WHERE key = ANY($1)
	`, pq.Array(keys)); err != nil {
		return fmt.Errorf("delete session keys: %w", err)
	}
	if err := s.notify(ctx, tx, keys); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return err
	}

	s.feed.publish(keys)
	return nil
}

// notify is delivered by Postgres only if tx commits.
func (s *PostgresStore) notify(ctx context.Context, tx *sql.Tx, keys []string) error {
	payload, err := json.Marshal(keys)
	if err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `SELECT pg_notify($1, $2)`, s.Channel, string(payload)); err != nil {
		return fmt.Errorf("notify session change: %w", err)
	}
	return nil
}

// Watch listens on the change channel when a listener is configured, so
// writes from every process sharing the table are reported.
func (s *PostgresStore) Watch(ctx context.Context) (<-chan []string, error) {
	if s.NewListener == nil {
		return s.feed.watch(ctx), nil
	}

	listener := s.NewListener()
	if err := listener.Listen(s.Channel); err != nil {
		listener.Close()
		return nil, fmt.Errorf("postgres listen: %w", err)
	}

	out := make(chan []string, 8)
	go func() {
		defer close(out)
		defer listener.Close()

		notifications := listener.NotificationChannel()
		for {
			select {
			case <-ctx.Done():
				return
			case n, ok := <-notifications:
				if !ok {
					return
				}
				if n == nil {
					log.Printf("Warning: [STORAGE] session listener reconnected, changes may have been missed")
					continue
				}
				var keys []string
				if err := json.Unmarshal([]byte(n.Extra), &keys); err != nil {
					log.Printf("Warning: [STORAGE] bad change notification %q: %v", n.Extra, err)
					continue
				}
				select {
				case out <- keys:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out, nil
}
