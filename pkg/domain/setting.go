package domain

import (
	"strings"
	"time"
)

// storage keys used by the engine
const (
	KeySettings      = "settings"
	KeyUsagePatterns = "usagePatterns"
	KeyTabActivity   = "tabActivity"

	snapshotKeyPrefix = "tab_"
)

// SnapshotKey returns the storage key holding the snapshot of the given tab
func SnapshotKey(id TabID) string {
	return snapshotKeyPrefix + string(id)
}

// Settings is the process-wide configuration record, persisted under KeySettings.
// Durations are stored as nanoseconds.
type Settings struct {
	Enabled                   bool          `json:"enabled"`
	InactivityThreshold       time.Duration `json:"inactivityThreshold"`
	ExcludePinnedTabs         bool          `json:"excludePinnedTabs"`
	ExcludedDomains           []string      `json:"excludedDomains"`
	AdaptiveMode              bool          `json:"adaptiveMode"`
	LearningPeriod            bool          `json:"learningPeriod"`
	LearningPeriodStartTime   *time.Time    `json:"learningPeriodStartTime"`
	LearningPeriodDuration    time.Duration `json:"learningPeriodDuration"`
	MaxHibernatedTabs         int           `json:"maxHibernatedTabs"`
	DiscardInsteadOfHibernate bool          `json:"discardInsteadOfHibernate"`
}

// Clone returns a deep copy, safe to hand out of a locked section
func (s Settings) Clone() Settings {
	res := s
	if s.ExcludedDomains != nil {
		res.ExcludedDomains = append([]string(nil), s.ExcludedDomains...)
	}
	if s.LearningPeriodStartTime != nil {
		ts := *s.LearningPeriodStartTime
		res.LearningPeriodStartTime = &ts
	}
	return res
}

// AdaptiveActive reports whether adaptive decisions apply, i.e. adaptive mode is on and learning is over
func (s Settings) AdaptiveActive() bool {
	return s.AdaptiveMode && !s.LearningPeriod
}

// Learning reports whether the learning period is running
func (s Settings) Learning() bool {
	return s.AdaptiveMode && s.LearningPeriod
}

// Normalize enforces the learning start time invariant: it is stamped with now when adaptive learning
// has no start time and cleared whenever learning is not running, so a re-enabled period starts over.
// Returns true if anything changed.
func (s *Settings) Normalize(now time.Time) bool {
	switch {
	case !s.Learning() && s.LearningPeriodStartTime != nil:
		s.LearningPeriodStartTime = nil
		return true
	case s.Learning() && s.LearningPeriodStartTime == nil:
		ts := now
		s.LearningPeriodStartTime = &ts
		return true
	}
	return false
}

// LearningRemaining returns the part of the learning period left at now, never negative.
// Zero is returned when no learning period is running.
func (s Settings) LearningRemaining(now time.Time) time.Duration {
	if !s.Learning() || s.LearningPeriodStartTime == nil {
		return 0
	}
	remaining := s.LearningPeriodDuration - now.Sub(*s.LearningPeriodStartTime)
	if remaining < 0 {
		return 0
	}
	return remaining
}

// AddExcludedDomains appends domains not yet excluded (case-insensitive) and returns the added ones
func (s *Settings) AddExcludedDomains(domains ...string) []string {
	existing := make(map[string]bool, len(s.ExcludedDomains))
	for _, d := range s.ExcludedDomains {
		existing[strings.ToLower(d)] = true
	}

	var added []string
	for _, d := range domains {
		key := strings.ToLower(strings.TrimSpace(d))
		if key == "" || existing[key] {
			continue
		}
		existing[key] = true
		s.ExcludedDomains = append(s.ExcludedDomains, key)
		added = append(added, key)
	}
	return added
}
