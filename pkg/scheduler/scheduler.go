// Package scheduler runs the inactivity decision loop: it keeps the tab activity ledger,
// sweeps inactive tabs on alarms and manual requests, preserves page state before unloading
// and drives the learning period of the adaptive mode.
package scheduler

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/sivaratrisrinivas/tabHibernate/pkg/domain"
	"github.com/sivaratrisrinivas/tabHibernate/pkg/usage"
)

//go:generate moq -out mocks/tab_host.go -pkg mocks -skip-ensure -fmt goimports . TabHost
//go:generate moq -out mocks/messenger.go -pkg mocks -skip-ensure -fmt goimports . Messenger
//go:generate moq -out mocks/storage.go -pkg mocks -skip-ensure -fmt goimports . Storage
//go:generate moq -out mocks/alarms.go -pkg mocks -skip-ensure -fmt goimports . Alarms
//go:generate moq -out mocks/policy.go -pkg mocks -skip-ensure -fmt goimports . Policy
//go:generate moq -out mocks/unloader.go -pkg mocks -skip-ensure -fmt goimports . Unloader
//go:generate moq -out mocks/usage_tracker.go -pkg mocks -skip-ensure -fmt goimports . UsageTracker

// AreaLocal is the only storage area whose changes are applied
const AreaLocal = "local"

// alarm names
const (
	AlarmCheckTabs   = "checkInactiveTabs"
	AlarmAnalyze     = "analyzeUsagePatterns"
	AlarmEndLearning = "endLearningPeriod"
)

// TabHost enumerates and controls browser tabs
type TabHost interface {
	QueryTabs(ctx context.Context, q domain.TabQuery) ([]domain.Tab, error)
	DiscardTab(ctx context.Context, id domain.TabID) error
	GetTab(ctx context.Context, id domain.TabID) (domain.Tab, error)
}

// Messenger sends a request to a tab's page and waits for its reply.
// domain.ErrNoReceiver is returned when nothing in the page listens.
type Messenger interface {
	SendToTab(ctx context.Context, id domain.TabID, msg domain.Message) (domain.SaveStateResponse, error)
}

// Storage is the key-value persistence, values are JSON-encoded by the implementation
type Storage interface {
	Get(ctx context.Context, keys ...string) (map[string]json.RawMessage, error)
	Set(ctx context.Context, items map[string]any) error
	Remove(ctx context.Context, keys ...string) error
}

// Alarms schedules named timers, creating an alarm replaces the one with the same name
type Alarms interface {
	Create(name string, delay, period time.Duration)
	Clear(name string) bool
}

// Policy decides exclusions, importance and the adaptive threshold
type Policy interface {
	IsImportantTab(url string) bool
	IsExcludedDomain(url string) bool
	AdaptiveThreshold() time.Duration
	AnalyzeUsagePatterns(ctx context.Context) error
}

// Unloader preserves and unloads a single tab
type Unloader interface {
	CaptureAndUnload(ctx context.Context, tab domain.Tab) error
}

// UsageTracker records domain usage signals
type UsageTracker interface {
	Load(patterns map[string]domain.UsagePattern)
	RecordOpen(url string)
	RecordInteraction(url string)
	RecordActivation(url string, sessionStart time.Time)
	Patterns() map[string]domain.UsagePattern
	Flush()
}

// SettingsSource gives a copy of the live settings
type SettingsSource interface {
	Settings() domain.Settings
}

// StorageChange is a committed change of one key, nil NewValue means the key was removed
type StorageChange struct {
	OldValue json.RawMessage
	NewValue json.RawMessage
}

// Params holds collaborators and intervals for the scheduler
type Params struct {
	Host      TabHost
	Messenger Messenger
	Storage   Storage
	Alarms    Alarms
	Defaults  domain.Settings

	CheckInterval    time.Duration // inactivity sweep period
	AnalysisInterval time.Duration // usage analysis period
	PersistDelay     time.Duration // coalescing window for pattern and ledger writes
	ManualThreshold  time.Duration // threshold override for manual sweeps, 0 keeps the regular one
}

// Status is a point-in-time view of the engine
type Status struct {
	Enabled           bool          `json:"enabled"`
	AdaptiveMode      bool          `json:"adaptiveMode"`
	LearningPeriod    bool          `json:"learningPeriod"`
	LearningRemaining time.Duration `json:"learningRemaining"`
	TrackedTabs       int           `json:"trackedTabs"`
	HibernatedTabs    int           `json:"hibernatedTabs"`
	Domains           int           `json:"domains"`
	LastSweep         *SweepResult  `json:"lastSweep,omitempty"`
	LastSweepAt       time.Time     `json:"lastSweepAt,omitzero"`
}

// Scheduler wires the ledger, tracker, policy, sweeper and learning manager together
// and dispatches alarms, tab events, messages and storage changes to them.
type Scheduler struct {
	host    TabHost
	storage Storage
	alarms  Alarms

	state    *State
	ledger   *Ledger
	tracker  UsageTracker
	policy   Policy
	sweeper  *Sweeper
	learning *LearningManager

	checkInterval    time.Duration
	analysisInterval time.Duration
	now              func() time.Time

	mu          sync.Mutex
	session     activeSession
	lastSweep   *SweepResult
	lastSweepAt time.Time
}

// activeSession is the tab currently in the foreground and when it got there
type activeSession struct {
	id    domain.TabID
	url   string
	start time.Time
}

// NewScheduler creates a scheduler, intervals default to 1 minute for sweeps and 1 hour for analysis
func NewScheduler(params Params) *Scheduler {
	if params.CheckInterval <= 0 {
		params.CheckInterval = time.Minute
	}
	if params.AnalysisInterval <= 0 {
		params.AnalysisInterval = time.Hour
	}

	state := NewState(params.Storage, params.Defaults)
	ledger := NewLedger(params.Storage, params.PersistDelay)
	tracker := usage.NewTracker(params.Storage, params.PersistDelay)
	policy := usage.NewPolicy(tracker, state)
	preserver := NewPreserver(PreserverConfig{
		Host:      params.Host,
		Messenger: params.Messenger,
		Storage:   params.Storage,
		Ledger:    ledger,
		Settings:  state,
	})
	sweeper := NewSweeper(SweeperConfig{
		Host:            params.Host,
		Policy:          policy,
		Unloader:        preserver,
		Ledger:          ledger,
		Settings:        state,
		ManualThreshold: params.ManualThreshold,
	})

	return &Scheduler{
		host:             params.Host,
		storage:          params.Storage,
		alarms:           params.Alarms,
		state:            state,
		ledger:           ledger,
		tracker:          tracker,
		policy:           policy,
		sweeper:          sweeper,
		learning:         NewLearningManager(state, params.Alarms, policy),
		checkInterval:    params.CheckInterval,
		analysisInterval: params.AnalysisInterval,
		now:              time.Now,
	}
}

// Start loads persisted state, seeds the ledger with the open tabs and schedules the alarms.
// Only a failure to read settings is returned, everything else is logged and tolerated.
func (s *Scheduler) Start(ctx context.Context) error {
	if err := s.state.Load(ctx); err != nil {
		return err
	}
	s.loadPatterns(ctx)

	restored, err := s.ledger.Restore(ctx)
	if err != nil {
		lgr.Printf("[WARN] can't restore tab activity: %v", err)
	}
	tabs, err := s.host.QueryTabs(ctx, domain.TabQuery{})
	if err != nil {
		lgr.Printf("[WARN] can't enumerate open tabs: %v", err)
	}
	s.ledger.Seed(tabs, restored)
	for _, tab := range tabs {
		if tab.Active {
			s.mu.Lock()
			s.session = activeSession{id: tab.ID, url: tab.URL, start: s.now()}
			s.mu.Unlock()
			break
		}
	}

	if err := s.learning.Init(ctx); err != nil {
		lgr.Printf("[WARN] %v", err)
	}
	s.alarms.Create(AlarmCheckTabs, s.checkInterval, s.checkInterval)
	s.alarms.Create(AlarmAnalyze, s.analysisInterval, s.analysisInterval)

	settings := s.state.Settings()
	lgr.Printf("[INFO] scheduler started with %d tabs, check interval %v, threshold %v, adaptive %v",
		len(tabs), s.checkInterval, settings.InactivityThreshold, settings.AdaptiveMode)
	return nil
}

// Stop cancels the alarms and flushes pending writes
func (s *Scheduler) Stop() {
	lgr.Printf("[INFO] stopping scheduler...")
	for _, name := range []string{AlarmCheckTabs, AlarmAnalyze, AlarmEndLearning} {
		s.alarms.Clear(name)
	}

	s.mu.Lock()
	prev := s.session
	s.session = activeSession{}
	s.mu.Unlock()
	if prev.url != "" {
		s.tracker.RecordActivation(prev.url, prev.start)
	}

	s.tracker.Flush()
	s.ledger.Flush()
	lgr.Printf("[INFO] scheduler stopped")
}

// HandleAlarm dispatches a fired alarm by name
func (s *Scheduler) HandleAlarm(ctx context.Context, name string) {
	switch name {
	case AlarmCheckTabs:
		if _, err := s.CheckInactiveTabs(ctx); err != nil {
			lgr.Printf("[ERROR] inactivity sweep failed: %v", err)
		}
	case AlarmAnalyze:
		if err := s.policy.AnalyzeUsagePatterns(ctx); err != nil {
			lgr.Printf("[WARN] usage analysis failed: %v", err)
		}
	case AlarmEndLearning:
		if err := s.learning.EndLearningPeriod(ctx); err != nil {
			lgr.Printf("[WARN] %v", err)
		}
	default:
		lgr.Printf("[DEBUG] ignore unknown alarm %q", name)
	}
}

// CheckInactiveTabs runs a periodic sweep
func (s *Scheduler) CheckInactiveTabs(ctx context.Context) (SweepResult, error) {
	return s.sweep(ctx, ModePeriodic)
}

// UnloadInactiveNow runs a manual sweep
func (s *Scheduler) UnloadInactiveNow(ctx context.Context) (SweepResult, error) {
	return s.sweep(ctx, ModeManual)
}

func (s *Scheduler) sweep(ctx context.Context, mode SweepMode) (SweepResult, error) {
	res, err := s.sweeper.CheckInactiveTabs(ctx, mode)
	if err != nil {
		return res, err
	}
	s.mu.Lock()
	s.lastSweep, s.lastSweepAt = &res, s.now()
	s.mu.Unlock()
	return res, nil
}

// OnTabActivated records the end of the previous foreground session and touches both tabs.
// The url is looked up when not known.
func (s *Scheduler) OnTabActivated(ctx context.Context, id domain.TabID, url string) {
	if url == "" {
		tab, err := s.host.GetTab(ctx, id)
		if err != nil {
			lgr.Printf("[DEBUG] can't get activated tab %s: %v", id, err)
		}
		url = tab.URL
	}

	s.mu.Lock()
	prev := s.session
	s.session = activeSession{id: id, url: url, start: s.now()}
	s.mu.Unlock()

	if prev.id != "" && prev.id != id {
		s.tracker.RecordActivation(prev.url, prev.start)
		if _, ok := s.ledger.Get(prev.id); ok {
			s.ledger.Touch(prev.id, prev.url)
		}
	}
	s.ledger.Touch(id, url)
}

// OnTabUpdated handles a completed navigation: the tab is touched and the open is counted
func (s *Scheduler) OnTabUpdated(_ context.Context, tab domain.Tab) {
	s.mu.Lock()
	prev := s.session
	navigated := prev.id == tab.ID && prev.url != tab.URL
	if navigated {
		s.session = activeSession{id: tab.ID, url: tab.URL, start: s.now()}
	}
	s.mu.Unlock()
	if navigated {
		s.tracker.RecordActivation(prev.url, prev.start)
	}

	s.ledger.Touch(tab.ID, tab.URL)
	s.tracker.RecordOpen(tab.URL)
}

// OnTabRemoved forgets a closed tab and its snapshot
func (s *Scheduler) OnTabRemoved(ctx context.Context, id domain.TabID) {
	s.mu.Lock()
	prev := s.session
	closed := prev.id == id
	if closed {
		s.session = activeSession{}
	}
	s.mu.Unlock()
	if closed {
		s.tracker.RecordActivation(prev.url, prev.start)
	}
	s.ledger.Forget(ctx, id)
}

// HandleStorageChange applies settings changed in storage. Changes of other areas are ignored.
func (s *Scheduler) HandleStorageChange(ctx context.Context, changes map[string]StorageChange, area string) {
	if area != AreaLocal {
		return
	}
	ch, ok := changes[domain.KeySettings]
	if !ok {
		return
	}
	next, err := s.state.Decode(ch.NewValue)
	if err != nil {
		lgr.Printf("[WARN] ignore settings change: %v", err)
		return
	}
	s.learning.OnSettingsChanged(ctx, next)
}

// Settings returns a copy of the live settings
func (s *Scheduler) Settings() domain.Settings {
	return s.state.Settings()
}

// SaveSettings stores settings, they become live through the storage change notification
func (s *Scheduler) SaveSettings(ctx context.Context, settings domain.Settings) error {
	return s.state.Persist(ctx, settings)
}

// UsagePatterns returns a copy of the domain usage table
func (s *Scheduler) UsagePatterns() map[string]domain.UsagePattern {
	return s.tracker.Patterns()
}

// Status reports the current state of the engine
func (s *Scheduler) Status() Status {
	settings := s.state.Settings()
	res := Status{
		Enabled:           settings.Enabled,
		AdaptiveMode:      settings.AdaptiveMode,
		LearningPeriod:    settings.LearningPeriod,
		LearningRemaining: settings.LearningRemaining(s.now()),
		TrackedTabs:       s.ledger.Len(),
		HibernatedTabs:    s.ledger.HibernatedCount(),
		Domains:           len(s.tracker.Patterns()),
	}
	s.mu.Lock()
	if s.lastSweep != nil {
		last := *s.lastSweep
		res.LastSweep, res.LastSweepAt = &last, s.lastSweepAt
	}
	s.mu.Unlock()
	return res
}

func (s *Scheduler) loadPatterns(ctx context.Context) {
	values, err := s.storage.Get(ctx, domain.KeyUsagePatterns)
	if err != nil {
		lgr.Printf("[WARN] can't load usage patterns: %v", err)
		return
	}
	raw, ok := values[domain.KeyUsagePatterns]
	if !ok {
		return
	}
	patterns := make(map[string]domain.UsagePattern)
	if err := json.Unmarshal(raw, &patterns); err != nil {
		lgr.Printf("[WARN] ignore invalid usage patterns: %v", err)
		return
	}
	s.tracker.Load(patterns)
}
