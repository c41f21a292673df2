package scheduler

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/sivaratrisrinivas/tabHibernate/pkg/debounce"
	"github.com/sivaratrisrinivas/tabHibernate/pkg/domain"
	"github.com/sivaratrisrinivas/tabHibernate/pkg/usage"
)

// Ledger maps tabs to their last activity. Tabs without an entry are unknown and never unloaded.
// The table is mirrored to storage with coalesced writes.
type Ledger struct {
	store  Storage
	mirror *debounce.Debouncer
	now    func() time.Time

	mu      sync.RWMutex
	entries map[domain.TabID]domain.TabActivity
}

// NewLedger makes an empty ledger, mirror writes are coalesced within mirrorDelay
func NewLedger(store Storage, mirrorDelay time.Duration) *Ledger {
	l := &Ledger{store: store, now: time.Now, entries: make(map[domain.TabID]domain.TabActivity)}
	l.mirror = debounce.New(mirrorDelay, func() {
		if err := l.Save(context.Background()); err != nil {
			lgr.Printf("[WARN] failed to mirror tab activity: %v", err)
		}
	})
	return l
}

// Touch marks the tab active now, creating the entry if needed.
// The domain is refreshed when the url has one, a touched tab is no longer hibernated.
func (l *Ledger) Touch(id domain.TabID, rawURL string) {
	if id == "" {
		return
	}
	now := l.now()
	l.mu.Lock()
	entry := l.entries[id]
	entry.LastActive = now
	if host, ok := usage.Hostname(rawURL); ok {
		entry.Domain = host
	}
	entry.Hibernated = false
	entry.HibernationTime = time.Time{}
	l.entries[id] = entry
	l.mu.Unlock()
	l.mirror.Trigger()
}

// Forget drops the tab and removes its snapshot from storage
func (l *Ledger) Forget(ctx context.Context, id domain.TabID) {
	l.mu.Lock()
	_, found := l.entries[id]
	delete(l.entries, id)
	l.mu.Unlock()
	if found {
		l.mirror.Trigger()
	}
	if err := l.store.Remove(ctx, domain.SnapshotKey(id)); err != nil {
		lgr.Printf("[WARN] failed to remove snapshot of tab %s: %v", id, err)
	}
}

// Seed creates an entry for every open tab with lastActive=now, so freshly discovered tabs get a full
// grace period. Hibernation flags of restored entries are kept for tabs still discarded.
func (l *Ledger) Seed(tabs []domain.Tab, restored map[domain.TabID]domain.TabActivity) {
	now := l.now()
	l.mu.Lock()
	for _, tab := range tabs {
		entry := domain.TabActivity{LastActive: now}
		if host, ok := usage.Hostname(tab.URL); ok {
			entry.Domain = host
		}
		if prev, ok := restored[tab.ID]; ok && prev.Hibernated && tab.Discarded {
			entry.Hibernated = true
			entry.HibernationTime = prev.HibernationTime
		}
		l.entries[tab.ID] = entry
	}
	l.mu.Unlock()
	l.mirror.Trigger()
}

// Get returns the entry of a tab
func (l *Ledger) Get(id domain.TabID) (domain.TabActivity, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	entry, ok := l.entries[id]
	return entry, ok
}

// MarkHibernated flags the tab as unloaded at the given time, false if the tab is unknown
func (l *Ledger) MarkHibernated(id domain.TabID, at time.Time) bool {
	l.mu.Lock()
	entry, ok := l.entries[id]
	if ok {
		entry.Hibernated = true
		entry.HibernationTime = at
		l.entries[id] = entry
	}
	l.mu.Unlock()
	if ok {
		l.mirror.Trigger()
	}
	return ok
}

// Entries returns a copy of all entries
func (l *Ledger) Entries() map[domain.TabID]domain.TabActivity {
	l.mu.RLock()
	defer l.mu.RUnlock()
	res := make(map[domain.TabID]domain.TabActivity, len(l.entries))
	for id, entry := range l.entries {
		res[id] = entry
	}
	return res
}

// Len returns the number of tracked tabs
func (l *Ledger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.entries)
}

// HibernatedCount returns the number of tabs flagged as hibernated
func (l *Ledger) HibernatedCount() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	count := 0
	for _, entry := range l.entries {
		if entry.Hibernated {
			count++
		}
	}
	return count
}

// Restore reads the mirrored table from storage
func (l *Ledger) Restore(ctx context.Context) (map[domain.TabID]domain.TabActivity, error) {
	values, err := l.store.Get(ctx, domain.KeyTabActivity)
	if err != nil {
		return nil, fmt.Errorf("load tab activity: %w", err)
	}
	res := make(map[domain.TabID]domain.TabActivity)
	raw, ok := values[domain.KeyTabActivity]
	if !ok {
		return res, nil
	}
	if err := json.Unmarshal(raw, &res); err != nil {
		return nil, fmt.Errorf("decode tab activity: %w", err)
	}
	return res, nil
}

// Save writes the table to storage
func (l *Ledger) Save(ctx context.Context) error {
	if err := l.store.Set(ctx, map[string]any{domain.KeyTabActivity: l.Entries()}); err != nil {
		return fmt.Errorf("save tab activity: %w", err)
	}
	return nil
}

// Flush writes pending mirror changes immediately
func (l *Ledger) Flush() {
	l.mirror.Flush()
}
