package usage

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/sivaratrisrinivas/tabHibernate/pkg/domain"
)

// importance model constants
const (
	InteractionWeight    = 0.6
	ActiveTimeWeight     = 0.4
	SkipThreshold        = 0.7 // tabs scoring above are never unloaded in adaptive mode
	AutoExcludeThreshold = 0.9 // domains scoring above are excluded by analysis

	// active time per open at which the time score reaches one half
	activeTimeHalfScore = 5 * time.Minute
	scorePrecision      = 1e9
)

// SettingsStore gives access to the live settings
type SettingsStore interface {
	Settings() domain.Settings
	// UpdateSettings applies fn to a copy of the settings, the copy is stored and persisted only if fn returns true
	UpdateSettings(ctx context.Context, fn func(s *domain.Settings) bool) error
}

// Policy decides domain importance, exclusions and the inactivity threshold
type Policy struct {
	tracker  *Tracker
	settings SettingsStore
	now      func() time.Time
}

// NewPolicy makes a policy over the tracker's patterns and the live settings
func NewPolicy(tracker *Tracker, settings SettingsStore) *Policy {
	return &Policy{tracker: tracker, settings: settings, now: time.Now}
}

// Importance scores a pattern as a blend of the interaction ratio and the average active time per open.
// Patterns without opens score zero. Scores are rounded to 9 decimals so threshold comparisons are exact.
func Importance(p domain.UsagePattern) float64 {
	if p.OpenCount <= 0 {
		return 0
	}
	interactionRatio := float64(p.InteractionCount) / float64(max(1, p.OpenCount))

	var timeScore float64
	if p.TotalActiveTime > 0 {
		active := p.TotalActiveTime.Seconds()
		timeScore = active / (active + float64(p.OpenCount)*activeTimeHalfScore.Seconds())
	}

	score := interactionRatio*InteractionWeight + timeScore*ActiveTimeWeight
	return math.Round(score*scorePrecision) / scorePrecision
}

// IsImportantTab reports whether the url's domain scores strictly above SkipThreshold
func (p *Policy) IsImportantTab(rawURL string) bool {
	host, ok := Hostname(rawURL)
	if !ok {
		return false
	}
	pattern, found := p.tracker.Pattern(host)
	if !found {
		return false
	}
	return Importance(pattern) > SkipThreshold
}

// IsExcludedDomain reports whether the url's host equals or is a subdomain of an excluded domain
func (p *Policy) IsExcludedDomain(rawURL string) bool {
	host, ok := Hostname(rawURL)
	if !ok {
		return false
	}
	return MatchDomain(host, p.settings.Settings().ExcludedDomains)
}

// AdaptiveThreshold returns the inactivity threshold for adaptive sweeps, currently the configured one
func (p *Policy) AdaptiveThreshold() time.Duration {
	return p.settings.Settings().InactivityThreshold
}

// AnalyzeUsagePatterns recomputes importance for all domains and auto-excludes the ones above
// AutoExcludeThreshold. Does nothing unless adaptive mode is on and learning is over.
func (p *Policy) AnalyzeUsagePatterns(ctx context.Context) error {
	settings := p.settings.Settings()
	if !settings.AdaptiveActive() {
		lgr.Printf("[DEBUG] usage analysis skipped, adaptive=%v learning=%v", settings.AdaptiveMode, settings.LearningPeriod)
		return nil
	}

	now := p.now()
	var candidates []string
	p.tracker.Update(func(host string, pattern *domain.UsagePattern) {
		pattern.Importance = Importance(*pattern)
		pattern.LastAnalyzed = now
		if pattern.Importance > AutoExcludeThreshold && !MatchDomain(host, settings.ExcludedDomains) {
			candidates = append(candidates, host)
		}
	})
	sort.Strings(candidates)

	if err := p.tracker.Save(ctx); err != nil {
		return fmt.Errorf("analyze usage patterns: %w", err)
	}

	if len(candidates) == 0 {
		return nil
	}

	var added []string
	err := p.settings.UpdateSettings(ctx, func(s *domain.Settings) bool {
		added = s.AddExcludedDomains(candidates...)
		return len(added) > 0
	})
	if err != nil {
		return fmt.Errorf("save auto-excluded domains: %w", err)
	}
	if len(added) > 0 {
		lgr.Printf("[INFO] auto-excluded %d frequently used domains: %s", len(added), strings.Join(added, ", "))
	}
	return nil
}

// NormalizeDomain turns a user supplied exclusion entry into a bare lowercase hostname
func NormalizeDomain(entry string) string {
	d := strings.ToLower(strings.TrimSpace(entry))
	if strings.Contains(d, "://") {
		if host, ok := Hostname(d); ok {
			return host
		}
	}
	d = strings.TrimPrefix(d, "*.")
	d = strings.TrimPrefix(d, ".")
	return strings.TrimSuffix(d, ".")
}

// MatchDomain reports whether host equals one of the entries or is a subdomain of one
func MatchDomain(host string, entries []string) bool {
	host = strings.ToLower(host)
	for _, e := range entries {
		d := NormalizeDomain(e)
		if d == "" {
			continue
		}
		if host == d || strings.HasSuffix(host, "."+d) {
			return true
		}
	}
	return false
}
