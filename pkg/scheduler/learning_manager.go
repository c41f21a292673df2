package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/sivaratrisrinivas/tabHibernate/pkg/domain"
)

// LearningManager drives the learning period and reacts to settings changes.
// While adaptive mode is on and learning runs, exactly one endLearningPeriod alarm is pending,
// set for the remaining part of the period. Any other combination has no alarm.
type LearningManager struct {
	state  *State
	alarms Alarms
	policy Policy
	now    func() time.Time
}

// NewLearningManager makes a learning manager over the live state
func NewLearningManager(state *State, alarms Alarms, policy Policy) *LearningManager {
	return &LearningManager{state: state, alarms: alarms, policy: policy, now: time.Now}
}

// Init enforces the learning start time invariant on the loaded settings and schedules the alarm.
// A learning period already over fires the alarm right away.
func (m *LearningManager) Init(ctx context.Context) error {
	now := m.now()
	err := m.state.UpdateSettings(ctx, func(s *domain.Settings) bool { return s.Normalize(now) })
	m.reconcile(m.state.Settings())
	if err != nil {
		return fmt.Errorf("init learning period: %w", err)
	}
	return nil
}

// OnSettingsChanged replaces the live settings with next and brings the alarm in line with them
func (m *LearningManager) OnSettingsChanged(ctx context.Context, next domain.Settings) {
	prev, cur, err := m.state.ApplySettings(ctx, next, m.now())
	if err != nil {
		lgr.Printf("[WARN] failed to persist normalized settings: %v", err)
	}

	if prev.Learning() != cur.Learning() {
		lgr.Printf("[INFO] learning period changed, adaptive=%v, learning=%v", cur.AdaptiveMode, cur.LearningPeriod)
	}
	m.reconcile(cur)
}

// EndLearningPeriod turns learning off and runs one analysis pass right away.
// It does nothing if learning was already turned off.
func (m *LearningManager) EndLearningPeriod(ctx context.Context) error {
	now := m.now()
	ended := false
	err := m.state.UpdateSettings(ctx, func(s *domain.Settings) bool {
		if !s.LearningPeriod {
			return false
		}
		s.LearningPeriod = false
		s.Normalize(now)
		ended = true
		return true
	})
	if !ended {
		return nil
	}
	lgr.Printf("[INFO] learning period ended, adaptive decisions are active")
	if err != nil {
		lgr.Printf("[WARN] %v", err)
	}

	if err := m.policy.AnalyzeUsagePatterns(ctx); err != nil {
		return fmt.Errorf("analyze after learning period: %w", err)
	}
	return nil
}

// reconcile cancels the alarm when not learning, otherwise recreates it for the remaining duration
func (m *LearningManager) reconcile(s domain.Settings) {
	if !s.Learning() || s.LearningPeriodStartTime == nil {
		if m.alarms.Clear(AlarmEndLearning) {
			lgr.Printf("[INFO] learning period timer cancelled")
		}
		return
	}

	remaining := s.LearningRemaining(m.now())
	m.alarms.Clear(AlarmEndLearning)
	m.alarms.Create(AlarmEndLearning, remaining, 0)
	lgr.Printf("[DEBUG] learning period ends in %v", remaining.Round(time.Second))
}
