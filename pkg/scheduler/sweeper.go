package scheduler

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/sivaratrisrinivas/tabHibernate/pkg/domain"
)

// SweepMode tells periodic sweeps from user requested ones
type SweepMode int

// sweep modes
const (
	ModePeriodic SweepMode = iota
	ModeManual
)

func (m SweepMode) String() string {
	if m == ModeManual {
		return "manual"
	}
	return "periodic"
}

// SweepResult summarizes one sweep
type SweepResult struct {
	Mode       SweepMode     `json:"-"`
	Threshold  time.Duration `json:"threshold"`
	Checked    int           `json:"checked"`
	Candidates int           `json:"candidates"`
	Unloaded   int           `json:"unloaded"`
	Failed     int           `json:"failed"`
}

// Sweeper finds inactive tabs and unloads them
type Sweeper struct {
	host            TabHost
	policy          Policy
	unloader        Unloader
	ledger          *Ledger
	settings        SettingsSource
	manualThreshold time.Duration
	now             func() time.Time
}

// SweeperConfig holds collaborators for Sweeper
type SweeperConfig struct {
	Host            TabHost
	Policy          Policy
	Unloader        Unloader
	Ledger          *Ledger
	Settings        SettingsSource
	ManualThreshold time.Duration // replaces the threshold of manual sweeps if set
}

type candidate struct {
	tab        domain.Tab
	lastActive time.Time
}

// NewSweeper makes a sweeper with the provided collaborators
func NewSweeper(cfg SweeperConfig) *Sweeper {
	return &Sweeper{
		host:            cfg.Host,
		policy:          cfg.Policy,
		unloader:        cfg.Unloader,
		ledger:          cfg.Ledger,
		settings:        cfg.Settings,
		manualThreshold: cfg.ManualThreshold,
		now:             time.Now,
	}
}

// CheckInactiveTabs unloads every eligible tab inactive for longer than the threshold.
// Nothing is queried while disabled. The error is returned only if tabs can't be enumerated,
// per-tab failures are logged and counted.
func (s *Sweeper) CheckInactiveTabs(ctx context.Context, mode SweepMode) (SweepResult, error) {
	settings := s.settings.Settings()
	res := SweepResult{Mode: mode}
	if !settings.Enabled {
		lgr.Printf("[DEBUG] %s sweep skipped, hibernation disabled", mode)
		return res, nil
	}

	adaptive := settings.AdaptiveActive()
	res.Threshold = settings.InactivityThreshold
	if adaptive {
		res.Threshold = s.policy.AdaptiveThreshold()
	}
	if mode == ModeManual && s.manualThreshold > 0 {
		res.Threshold = s.manualThreshold
	}

	tabs, err := s.host.QueryTabs(ctx, domain.TabQuery{})
	if err != nil {
		return res, fmt.Errorf("query tabs: %w", err)
	}

	now := s.now()
	var candidates []candidate
	for _, tab := range tabs {
		res.Checked++
		lastActive, ok := s.eligible(tab, settings, adaptive)
		if !ok {
			continue
		}
		if now.Sub(lastActive) > res.Threshold {
			candidates = append(candidates, candidate{tab: tab, lastActive: lastActive})
		}
	}
	res.Candidates = len(candidates)

	if settings.MaxHibernatedTabs > 0 && len(candidates) > 0 {
		candidates = s.limit(ctx, candidates, settings.MaxHibernatedTabs)
	}

	for _, c := range candidates {
		if ctx.Err() != nil {
			lgr.Printf("[WARN] %s sweep interrupted: %v", mode, ctx.Err())
			break
		}
		if err := s.unload(ctx, c.tab); err != nil {
			res.Failed++
			continue
		}
		res.Unloaded++
	}

	if res.Unloaded > 0 || res.Failed > 0 {
		lgr.Printf("[INFO] %s sweep: checked %d, unloaded %d, failed %d, threshold %v",
			mode, res.Checked, res.Unloaded, res.Failed, res.Threshold)
	}
	return res, nil
}

// eligible applies the skip rules in order and returns the tab's last activity if none matched.
// A panic in a collaborator skips the tab.
func (s *Sweeper) eligible(tab domain.Tab, settings domain.Settings, adaptive bool) (lastActive time.Time, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			lgr.Printf("[WARN] failed to evaluate tab %s: %v", tab.ID, r)
			ok = false
		}
	}()

	skip := func(reason string) (time.Time, bool) {
		lgr.Printf("[DEBUG] skip tab %s, %s", tab.ID, reason)
		return time.Time{}, false
	}

	if tab.Active {
		return skip("active")
	}
	entry, found := s.ledger.Get(tab.ID)
	if !found {
		return skip("no activity record")
	}
	if settings.ExcludePinnedTabs && tab.Pinned {
		return skip("pinned")
	}
	if s.policy.IsExcludedDomain(tab.URL) {
		return skip("excluded domain")
	}
	if adaptive && s.policy.IsImportantTab(tab.URL) {
		return skip("important domain")
	}
	if tab.Discarded {
		return skip("already discarded")
	}
	return entry.LastActive, true
}

// limit keeps the oldest candidates fitting under the hibernated tabs cap
func (s *Sweeper) limit(ctx context.Context, candidates []candidate, maxTabs int) []candidate {
	discarded, err := s.host.QueryTabs(ctx, domain.TabQuery{Discarded: domain.Bool(true)})
	if err != nil {
		lgr.Printf("[WARN] can't count discarded tabs: %v", err)
		discarded = nil
	}

	slots := maxTabs - len(discarded)
	if slots <= 0 {
		lgr.Printf("[INFO] hibernated tabs limit %d reached, nothing to unload", maxTabs)
		return nil
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].lastActive.Before(candidates[j].lastActive)
	})
	if len(candidates) > slots {
		candidates = candidates[:slots]
	}
	return candidates
}

// unload runs the unloader for one tab, converting a panic into an error
func (s *Sweeper) unload(ctx context.Context, tab domain.Tab) (err error) {
	defer func() {
		if r := recover(); r != nil {
			lgr.Printf("[ERROR] panic while unloading tab %s: %v", tab.ID, r)
			err = fmt.Errorf("unload tab %s: panic: %v", tab.ID, r)
		}
	}()
	return s.unloader.CaptureAndUnload(ctx, tab)
}
