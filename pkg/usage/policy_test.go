package usage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sivaratrisrinivas/tabHibernate/pkg/domain"
	"github.com/sivaratrisrinivas/tabHibernate/pkg/usage/mocks"
)

// settingsFixture keeps settings in memory the way the scheduler state does
func settingsFixture(s domain.Settings) *mocks.SettingsStoreMock {
	res := &mocks.SettingsStoreMock{}
	res.SettingsFunc = func() domain.Settings { return s.Clone() }
	res.UpdateSettingsFunc = func(ctx context.Context, fn func(s *domain.Settings) bool) error {
		cp := s.Clone()
		if fn(&cp) {
			s = cp
		}
		return nil
	}
	return res
}

func TestImportance(t *testing.T) {
	tbl := []struct {
		name    string
		pattern domain.UsagePattern
		want    float64
	}{
		{"no opens", domain.UsagePattern{OpenCount: 0, InteractionCount: 10, TotalActiveTime: time.Hour}, 0},
		{"exact threshold", domain.UsagePattern{OpenCount: 6, InteractionCount: 7}, 0.7},
		{"interaction only", domain.UsagePattern{OpenCount: 2, InteractionCount: 1}, 0.3},
		{"active time half score", domain.UsagePattern{OpenCount: 1, TotalActiveTime: 5 * time.Minute}, 0.2},
		{"blend", domain.UsagePattern{OpenCount: 1, InteractionCount: 1, TotalActiveTime: 5 * time.Minute}, 0.8},
	}
	for _, tt := range tbl {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Importance(tt.pattern)) //nolint:testifylint // scores are rounded, exact compare intended
		})
	}
}

func TestImportance_Monotonic(t *testing.T) {
	base := domain.UsagePattern{OpenCount: 4, InteractionCount: 2, TotalActiveTime: time.Minute}
	more := base
	more.InteractionCount++
	assert.Greater(t, Importance(more), Importance(base))

	longer := base
	longer.TotalActiveTime += time.Minute
	assert.Greater(t, Importance(longer), Importance(base))
}

func TestPolicy_IsImportantTab(t *testing.T) {
	tr, _ := newTestTracker(t)
	tr.Load(map[string]domain.UsagePattern{
		"boundary.com": {OpenCount: 6, InteractionCount: 7},
		"busy.com":     {OpenCount: 6, InteractionCount: 8},
		"rare.com":     {OpenCount: 10, InteractionCount: 1},
	})
	p := NewPolicy(tr, settingsFixture(domain.Settings{}))

	assert.False(t, p.IsImportantTab("https://boundary.com/x"), "score exactly at threshold is not important")
	assert.True(t, p.IsImportantTab("https://busy.com/x"))
	assert.False(t, p.IsImportantTab("https://rare.com"))
	assert.False(t, p.IsImportantTab("https://unknown.com"))
	assert.False(t, p.IsImportantTab("chrome://settings"))
	assert.False(t, p.IsImportantTab(""))
}

func TestPolicy_IsExcludedDomain(t *testing.T) {
	tr, _ := newTestTracker(t)
	p := NewPolicy(tr, settingsFixture(domain.Settings{
		ExcludedDomains: []string{"Example.com", "*.corp.net", " docs.google.com ", "https://Mail.Test.org/"},
	}))

	tbl := []struct {
		url  string
		want bool
	}{
		{"https://example.com/page", true},
		{"https://EXAMPLE.COM", true},
		{"https://news.example.com/a", true},
		{"https://badexample.com", false},
		{"https://example.com.evil.io", false},
		{"https://wiki.corp.net", true},
		{"https://docs.google.com/d/1", true},
		{"https://google.com", false},
		{"https://mail.test.org/inbox", true},
		{"chrome://newtab", false},
		{"", false},
	}
	for _, tt := range tbl {
		t.Run(tt.url, func(t *testing.T) {
			assert.Equal(t, tt.want, p.IsExcludedDomain(tt.url))
		})
	}
}

func TestPolicy_AdaptiveThreshold(t *testing.T) {
	tr, _ := newTestTracker(t)
	p := NewPolicy(tr, settingsFixture(domain.Settings{InactivityThreshold: 42 * time.Minute}))
	assert.Equal(t, 42*time.Minute, p.AdaptiveThreshold())
}

func TestPolicy_AnalyzeUsagePatterns(t *testing.T) {
	patterns := map[string]domain.UsagePattern{
		"mail.example.com": {OpenCount: 2, InteractionCount: 4},                             // 1.2
		"news.site":        {OpenCount: 10, InteractionCount: 2},                            // 0.12
		"docs.site":        {OpenCount: 1, InteractionCount: 1, TotalActiveTime: time.Hour}, // > 0.9
		"already.org":      {OpenCount: 1, InteractionCount: 3},                             // excluded already
		"sub.covered.io":   {OpenCount: 1, InteractionCount: 5},                             // covered by covered.io
	}

	t.Run("no-op while learning", func(t *testing.T) {
		tr, store := newTestTracker(t)
		tr.Load(patterns)
		settings := settingsFixture(domain.Settings{AdaptiveMode: true, LearningPeriod: true})
		p := NewPolicy(tr, settings)

		require.NoError(t, p.AnalyzeUsagePatterns(context.Background()))
		assert.Empty(t, store.SetCalls())
		assert.Empty(t, settings.UpdateSettingsCalls())
		got, _ := tr.Pattern("mail.example.com")
		assert.Zero(t, got.Importance)
	})

	t.Run("no-op when adaptive is off", func(t *testing.T) {
		tr, store := newTestTracker(t)
		tr.Load(patterns)
		p := NewPolicy(tr, settingsFixture(domain.Settings{AdaptiveMode: false, LearningPeriod: false}))
		require.NoError(t, p.AnalyzeUsagePatterns(context.Background()))
		assert.Empty(t, store.SetCalls())
	})

	t.Run("auto-excludes and is idempotent", func(t *testing.T) {
		tr, store := newTestTracker(t)
		tr.Load(patterns)
		settings := settingsFixture(domain.Settings{AdaptiveMode: true, ExcludedDomains: []string{"already.org", "covered.io"}})
		p := NewPolicy(tr, settings)
		now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
		p.now = func() time.Time { return now }

		require.NoError(t, p.AnalyzeUsagePatterns(context.Background()))
		assert.Equal(t, []string{"already.org", "covered.io", "docs.site", "mail.example.com"}, settings.Settings().ExcludedDomains)
		assert.Len(t, store.SetCalls(), 1, "patterns persisted")
		require.Len(t, settings.UpdateSettingsCalls(), 1)

		mail, _ := tr.Pattern("mail.example.com")
		assert.InDelta(t, 1.2, mail.Importance, 1e-9)
		assert.Equal(t, now, mail.LastAnalyzed)
		first := tr.Patterns()

		// second pass without tracking in between adds nothing and settings are not written again
		require.NoError(t, p.AnalyzeUsagePatterns(context.Background()))
		assert.Equal(t, []string{"already.org", "covered.io", "docs.site", "mail.example.com"}, settings.Settings().ExcludedDomains)
		assert.Len(t, store.SetCalls(), 2, "patterns persisted unconditionally")
		assert.Len(t, settings.UpdateSettingsCalls(), 1, "settings untouched")
		assert.Equal(t, first, tr.Patterns())
	})
}
