package scheduler

import (
	"cmp"
	"context"
	"fmt"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/sivaratrisrinivas/tabHibernate/pkg/domain"
)

// Preserver captures a tab's page state, persists it and unloads the tab.
// It is responsible for:
//   - asking the page for its state unless settings request a plain discard
//   - storing the snapshot under the tab's snapshot key when the page returned one
//   - discarding the tab and flagging it as hibernated in the ledger
//
// A missing or failed capture never prevents the discard.
type Preserver struct {
	host      TabHost
	messenger Messenger
	store     Storage
	ledger    *Ledger
	settings  SettingsSource
	now       func() time.Time
}

// PreserverConfig holds collaborators for Preserver
type PreserverConfig struct {
	Host      TabHost
	Messenger Messenger
	Storage   Storage
	Ledger    *Ledger
	Settings  SettingsSource
}

// NewPreserver makes a preserver with the provided collaborators
func NewPreserver(cfg PreserverConfig) *Preserver {
	return &Preserver{
		host:      cfg.Host,
		messenger: cfg.Messenger,
		store:     cfg.Storage,
		ledger:    cfg.Ledger,
		settings:  cfg.Settings,
		now:       time.Now,
	}
}

// CaptureAndUnload saves the tab's state when possible and discards it.
// The error is returned only when the discard itself fails, in that case the tab is not flagged as hibernated.
func (p *Preserver) CaptureAndUnload(ctx context.Context, tab domain.Tab) error {
	if !p.settings.Settings().DiscardInsteadOfHibernate {
		p.captureState(ctx, tab)
	}

	if err := p.host.DiscardTab(ctx, tab.ID); err != nil {
		lgr.Printf("[ERROR] failed to discard tab %s (%s): %v", tab.ID, tab.URL, err)
		return fmt.Errorf("discard tab %s: %w", tab.ID, err)
	}

	p.ledger.MarkHibernated(tab.ID, p.now())
	lgr.Printf("[DEBUG] tab %s unloaded: %s", tab.ID, tab.URL)
	return nil
}

// captureState requests the page state and stores the snapshot, failures are logged only
func (p *Preserver) captureState(ctx context.Context, tab domain.Tab) {
	resp, err := p.messenger.SendToTab(ctx, tab.ID, domain.Message{Type: domain.MsgSaveState})
	switch {
	case err != nil:
		lgr.Printf("[WARN] can't capture state of tab %s: %v", tab.ID, err)
		return
	case !resp.Success || resp.State == nil:
		lgr.Printf("[WARN] tab %s returned no state: %s", tab.ID, resp.Error)
		return
	}

	// tab metadata wins, the page's own report fills what the browser did not give
	snapshot := domain.TabSnapshot{
		ID:        tab.ID,
		URL:       cmp.Or(tab.URL, resp.State.URL),
		Title:     cmp.Or(tab.Title, resp.State.Title),
		ScrollX:   resp.State.ScrollX,
		ScrollY:   resp.State.ScrollY,
		Timestamp: p.now(),
	}
	if err := p.store.Set(ctx, map[string]any{domain.SnapshotKey(tab.ID): snapshot}); err != nil {
		lgr.Printf("[WARN] failed to store snapshot of tab %s: %v", tab.ID, err)
	}
}
