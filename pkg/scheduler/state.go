package scheduler

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/sivaratrisrinivas/tabHibernate/pkg/domain"
)

// State owns the live settings. All access goes through accessors returning copies.
type State struct {
	store    Storage
	defaults domain.Settings

	mu       sync.RWMutex
	settings domain.Settings
}

// NewState makes a state initialized with defaults, call Load to merge the stored settings
func NewState(store Storage, defaults domain.Settings) *State {
	return &State{store: store, defaults: defaults.Clone(), settings: defaults.Clone()}
}

// Load reads stored settings and merges them over the defaults
func (s *State) Load(ctx context.Context) error {
	values, err := s.store.Get(ctx, domain.KeySettings)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}
	settings, err := s.Decode(values[domain.KeySettings])
	if err != nil {
		lgr.Printf("[WARN] stored settings are invalid, using defaults: %v", err)
		settings = s.defaults.Clone()
	}
	s.ReplaceSettings(settings)
	return nil
}

// Decode decodes stored settings over the defaults, nil data gives the defaults
func (s *State) Decode(data json.RawMessage) (domain.Settings, error) {
	settings := s.defaults.Clone()
	if len(data) == 0 || string(data) == "null" {
		return settings, nil
	}
	if err := json.Unmarshal(data, &settings); err != nil {
		return s.defaults.Clone(), fmt.Errorf("decode settings: %w", err)
	}
	return settings, nil
}

// Settings returns a copy of the live settings
func (s *State) Settings() domain.Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings.Clone()
}

// Defaults returns a copy of the default settings
func (s *State) Defaults() domain.Settings {
	return s.defaults.Clone()
}

// ReplaceSettings swaps the live settings in one step and returns the previous ones
func (s *State) ReplaceSettings(next domain.Settings) domain.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	prev := s.settings
	s.settings = next.Clone()
	return prev
}

// ApplySettings makes next live and normalizes it at now under one lock, so readers never see
// the un-normalized copy. Settings are persisted only when normalizing changed them.
// Returns the previous and the new live settings.
func (s *State) ApplySettings(ctx context.Context, next domain.Settings, now time.Time) (prev, cur domain.Settings, err error) {
	s.mu.Lock()
	prev = s.settings
	cur = next.Clone()
	changed := cur.Normalize(now)
	s.settings = cur
	s.mu.Unlock()

	cur = cur.Clone()
	if !changed {
		return prev, cur, nil
	}
	return prev, cur, s.Persist(ctx, cur)
}

// UpdateSettings applies fn to a copy of the settings. If fn reports a change the copy becomes live
// and is persisted. A persistence error is returned, the in-memory settings stay updated.
func (s *State) UpdateSettings(ctx context.Context, fn func(s *domain.Settings) bool) error {
	s.mu.Lock()
	next := s.settings.Clone()
	if !fn(&next) {
		s.mu.Unlock()
		return nil
	}
	s.settings = next
	s.mu.Unlock()
	return s.Persist(ctx, next)
}

// Persist writes settings to storage without touching the live copy
func (s *State) Persist(ctx context.Context, settings domain.Settings) error {
	if err := s.store.Set(ctx, map[string]any{domain.KeySettings: settings}); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}
