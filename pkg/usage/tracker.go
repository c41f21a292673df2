// Package usage tracks per-domain usage and derives the importance policy from it.
package usage

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/sivaratrisrinivas/tabHibernate/pkg/debounce"
	"github.com/sivaratrisrinivas/tabHibernate/pkg/domain"
)

//go:generate moq -out mocks/storage.go -pkg mocks -skip-ensure -fmt goimports . Storage
//go:generate moq -out mocks/settings.go -pkg mocks -skip-ensure -fmt goimports . SettingsStore

// Storage persists top-level keys, values are JSON-encoded by the implementation
type Storage interface {
	Set(ctx context.Context, items map[string]any) error
}

// Tracker maintains usage counters per hostname.
// Malformed or non-web URLs are ignored by every Record method.
type Tracker struct {
	store   Storage
	persist *debounce.Debouncer
	now     func() time.Time

	mu       sync.RWMutex
	patterns map[string]domain.UsagePattern
}

// NewTracker makes a tracker writing the pattern table to store, coalescing writes within persistDelay
func NewTracker(store Storage, persistDelay time.Duration) *Tracker {
	t := &Tracker{store: store, now: time.Now, patterns: make(map[string]domain.UsagePattern)}
	t.persist = debounce.New(persistDelay, func() {
		if err := t.Save(context.Background()); err != nil {
			lgr.Printf("[WARN] failed to persist usage patterns: %v", err)
		}
	})
	return t
}

// Hostname extracts the lowercase host of an http(s) url, ok is false for anything else
func Hostname(rawURL string) (host string, ok bool) {
	if rawURL == "" {
		return "", false
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", false
	}
	host = strings.ToLower(u.Hostname())
	return host, host != ""
}

// Load replaces the pattern table, used at startup with the stored table
func (t *Tracker) Load(patterns map[string]domain.UsagePattern) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.patterns = make(map[string]domain.UsagePattern, len(patterns))
	for host, p := range patterns {
		t.patterns[strings.ToLower(host)] = p
	}
}

// RecordOpen counts a navigation to the url's domain, creating the pattern on first sight
func (t *Tracker) RecordOpen(rawURL string) {
	host, ok := Hostname(rawURL)
	if !ok {
		return
	}
	now := t.now()
	t.mu.Lock()
	p, found := t.patterns[host]
	if !found {
		p = domain.UsagePattern{}
	}
	p.OpenCount++
	p.LastActiveTime = now
	t.patterns[host] = p
	t.mu.Unlock()
	t.persist.Trigger()
}

// RecordInteraction counts a user interaction, ignored for domains never opened
func (t *Tracker) RecordInteraction(rawURL string) {
	host, ok := Hostname(rawURL)
	if !ok {
		return
	}
	now := t.now()
	t.mu.Lock()
	p, found := t.patterns[host]
	if !found {
		t.mu.Unlock()
		return
	}
	p.InteractionCount++
	p.LastActiveTime = now
	t.patterns[host] = p
	t.mu.Unlock()
	t.persist.Trigger()
}

// RecordActivation adds the time elapsed since sessionStart to the domain's active time.
// A session start in the future adds nothing.
func (t *Tracker) RecordActivation(rawURL string, sessionStart time.Time) {
	host, ok := Hostname(rawURL)
	if !ok {
		return
	}
	now := t.now()
	elapsed := max(now.Sub(sessionStart), 0)
	t.mu.Lock()
	p, found := t.patterns[host]
	if !found {
		t.mu.Unlock()
		return
	}
	p.TotalActiveTime += elapsed
	p.LastActiveTime = now
	t.patterns[host] = p
	t.mu.Unlock()
	t.persist.Trigger()
}

// Pattern returns the pattern of a hostname
func (t *Tracker) Pattern(host string) (domain.UsagePattern, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	p, ok := t.patterns[strings.ToLower(host)]
	return p, ok
}

// Patterns returns a copy of the pattern table
func (t *Tracker) Patterns() map[string]domain.UsagePattern {
	t.mu.RLock()
	defer t.mu.RUnlock()
	res := make(map[string]domain.UsagePattern, len(t.patterns))
	for host, p := range t.patterns {
		res[host] = p
	}
	return res
}

// Update applies fn to every pattern under the write lock
func (t *Tracker) Update(fn func(host string, p *domain.UsagePattern)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for host, p := range t.patterns {
		fn(host, &p)
		t.patterns[host] = p
	}
}

// Save writes the full pattern table to storage
func (t *Tracker) Save(ctx context.Context) error {
	if err := t.store.Set(ctx, map[string]any{domain.KeyUsagePatterns: t.Patterns()}); err != nil {
		return fmt.Errorf("save usage patterns: %w", err)
	}
	return nil
}

// Flush writes pending changes immediately, used on shutdown
func (t *Tracker) Flush() {
	t.persist.Flush()
}
