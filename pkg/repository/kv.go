package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/go-pkgz/repeater/v2"
	"github.com/jmoiron/sqlx"
)

// AreaLocal is the storage area name reported with change notifications
const AreaLocal = "local"

// Change describes a modified key, OldValue is nil for new keys and NewValue is nil for removed ones
type Change struct {
	OldValue json.RawMessage `json:"oldValue,omitempty"`
	NewValue json.RawMessage `json:"newValue,omitempty"`
}

// ChangeListener receives committed changes along with the area name
type ChangeListener func(changes map[string]Change, area string)

// KVRepository stores JSON values by key with merge semantics at the top-level key
type KVRepository struct {
	db   *sqlx.DB
	area string

	mu        sync.RWMutex
	listeners []ChangeListener
}

type kvRecord struct {
	Key   string `db:"key"`
	Value string `db:"value"`
}

// NewKVRepository creates a key-value repository reporting changes for area
func NewKVRepository(db *sqlx.DB, area string) *KVRepository {
	return &KVRepository{db: db, area: area}
}

// Watch registers a listener called synchronously after every committed Set or Remove
func (r *KVRepository) Watch(fn ChangeListener) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.listeners = append(r.listeners, fn)
}

// Get returns stored values for keys, all values if no keys given. Missing keys are absent from the result.
func (r *KVRepository) Get(ctx context.Context, keys ...string) (map[string]json.RawMessage, error) {
	recs, err := r.selectRecords(ctx, r.db, keys)
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", strings.Join(keys, ","), err)
	}
	res := make(map[string]json.RawMessage, len(recs))
	for _, rec := range recs {
		res[rec.Key] = json.RawMessage(rec.Value)
	}
	return res, nil
}

// Set stores JSON encodings of items, keys not mentioned are untouched
func (r *KVRepository) Set(ctx context.Context, items map[string]any) error {
	if len(items) == 0 {
		return nil
	}
	keys := make([]string, 0, len(items))
	encoded := make(map[string][]byte, len(items))
	for key, v := range items {
		data, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("marshal %s: %w", key, err)
		}
		keys = append(keys, key)
		encoded[key] = data
	}
	sort.Strings(keys)

	var changes map[string]Change
	err := r.inTx(ctx, func(tx *sqlx.Tx) error {
		changes = make(map[string]Change)
		old, err := r.selectRecords(ctx, tx, keys)
		if err != nil {
			return wrapRetryable(err, "read current values")
		}
		current := make(map[string]string, len(old))
		for _, rec := range old {
			current[rec.Key] = rec.Value
		}
		for _, key := range keys {
			prev, exists := current[key]
			if exists && bytes.Equal([]byte(prev), encoded[key]) {
				continue
			}
			query := `
				INSERT INTO kv (key, value, updated_at) VALUES (?, ?, ?)
				ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
			`
			if _, err := tx.ExecContext(ctx, query, key, string(encoded[key]), time.Now().UTC()); err != nil {
				return wrapRetryable(err, "upsert "+key)
			}
			ch := Change{NewValue: json.RawMessage(encoded[key])}
			if exists {
				ch.OldValue = json.RawMessage(prev)
			}
			changes[key] = ch
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("set %s: %w", strings.Join(keys, ","), err)
	}
	r.notify(changes)
	return nil
}

// Remove deletes keys, unknown keys are ignored
func (r *KVRepository) Remove(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	var changes map[string]Change
	err := r.inTx(ctx, func(tx *sqlx.Tx) error {
		changes = make(map[string]Change)
		old, err := r.selectRecords(ctx, tx, keys)
		if err != nil {
			return wrapRetryable(err, "read current values")
		}
		if len(old) == 0 {
			return nil
		}
		query, args, err := sqlx.In("DELETE FROM kv WHERE key IN (?)", keys)
		if err != nil {
			return &criticalError{err: fmt.Errorf("build delete query: %w", err)}
		}
		if _, err := tx.ExecContext(ctx, tx.Rebind(query), args...); err != nil {
			return wrapRetryable(err, "delete")
		}
		for _, rec := range old {
			changes[rec.Key] = Change{OldValue: json.RawMessage(rec.Value)}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("remove %s: %w", strings.Join(keys, ","), err)
	}
	r.notify(changes)
	return nil
}

// inTx runs fn in a transaction, retrying on sqlite lock errors
func (r *KVRepository) inTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))
	return retrier.Do(ctx, func() error {
		tx, err := r.db.BeginTxx(ctx, nil)
		if err != nil {
			return wrapRetryable(err, "begin transaction")
		}
		defer tx.Rollback() //nolint:errcheck // no-op after commit

		if err := fn(tx); err != nil {
			return err
		}
		if err := tx.Commit(); err != nil {
			return wrapRetryable(err, "commit")
		}
		return nil
	}, errCritical)
}

func (r *KVRepository) selectRecords(ctx context.Context, q sqlx.ExtContext, keys []string) ([]kvRecord, error) {
	var recs []kvRecord
	if len(keys) == 0 {
		if err := sqlx.SelectContext(ctx, q, &recs, "SELECT key, value FROM kv ORDER BY key"); err != nil {
			return nil, err
		}
		return recs, nil
	}
	query, args, err := sqlx.In("SELECT key, value FROM kv WHERE key IN (?) ORDER BY key", keys)
	if err != nil {
		return nil, fmt.Errorf("build select query: %w", err)
	}
	if err := sqlx.SelectContext(ctx, q, &recs, q.Rebind(query), args...); err != nil {
		return nil, err
	}
	return recs, nil
}

func (r *KVRepository) notify(changes map[string]Change) {
	if len(changes) == 0 {
		return
	}
	r.mu.RLock()
	listeners := append([]ChangeListener(nil), r.listeners...)
	r.mu.RUnlock()
	for _, fn := range listeners {
		fn(changes, r.area)
	}
}

// wrapRetryable passes lock errors through for repeater to retry, anything else stops retries
func wrapRetryable(err error, msg string) error {
	if isLockError(err) {
		return err
	}
	return &criticalError{err: fmt.Errorf("%s: %w", msg, err)}
}
