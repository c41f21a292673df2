package browser

import (
	"context"
	"testing"

	"github.com/chromedp/cdproto/target"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sivaratrisrinivas/tabHibernate/pkg/debounce"
	"github.com/sivaratrisrinivas/tabHibernate/pkg/domain"
)

func pageInfo(id, url string) *target.Info {
	return &target.Info{TargetID: target.ID(id), Type: "page", URL: url, Title: "title " + id}
}

func TestTabFromInfo(t *testing.T) {
	tests := []struct {
		name string
		info *target.Info
		ok   bool
	}{
		{name: "page", info: pageInfo("A1", "https://example.com"), ok: true},
		{name: "service worker", info: &target.Info{TargetID: "B2", Type: "service_worker", URL: "https://example.com/sw.js"}},
		{name: "browser", info: &target.Info{TargetID: "C3", Type: "browser"}},
		{name: "empty id", info: &target.Info{Type: "page"}},
		{name: "nil", info: nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tab, ok := tabFromInfo(tt.info)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, domain.TabID(tt.info.TargetID), tab.ID)
				assert.Equal(t, tt.info.URL, tab.URL)
				assert.Equal(t, tt.info.Title, tab.Title)
			}
		})
	}
}

func TestScriptable(t *testing.T) {
	tests := []struct {
		url  string
		want bool
	}{
		{"https://example.com/page", true},
		{"HTTP://example.com", true},
		{"file:///tmp/a.html", true},
		{"chrome://settings", false},
		{"chrome-extension://abc/popup.html", false},
		{"about:blank", false},
		{"", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, scriptable(tt.url), tt.url)
	}
}

func TestRegistry_Upsert(t *testing.T) {
	r := newRegistry()

	tab, res := r.upsert(pageInfo("1", "https://a.com"))
	assert.Equal(t, upsertCreated, res)
	assert.Equal(t, domain.Tab{ID: "1", URL: "https://a.com", Title: "title 1"}, tab)

	_, res = r.upsert(&target.Info{TargetID: "w", Type: "worker"})
	assert.Equal(t, upsertIgnored, res)

	require.True(t, r.setDiscarded("1", true))
	info := pageInfo("1", "https://a.com")
	info.Title = "(3) inbox"
	info.Attached = true
	tab, res = r.upsert(info)
	assert.Equal(t, upsertUnchanged, res, "title and attach changes are not navigations")
	assert.True(t, tab.Discarded, "same url keeps discard flag")
	assert.Equal(t, "(3) inbox", tab.Title)

	tab, res = r.upsert(pageInfo("1", "https://b.com"))
	assert.Equal(t, upsertNavigated, res)
	assert.False(t, tab.Discarded, "navigation clears discard flag")
	assert.Equal(t, "https://b.com", tab.URL)
}

func TestRegistry_ActivateAndList(t *testing.T) {
	r := newRegistry()
	r.upsert(pageInfo("2", "https://b.com"))
	r.upsert(pageInfo("1", "https://a.com"))
	r.upsert(pageInfo("3", "https://c.com"))

	prev, ok := r.activate("2")
	require.True(t, ok)
	assert.Empty(t, prev)

	r.setDiscarded("3", true)
	prev, ok = r.activate("3")
	require.True(t, ok)
	assert.Equal(t, domain.TabID("2"), prev)

	_, ok = r.activate("missing")
	assert.False(t, ok)

	all := r.list(domain.TabQuery{})
	require.Len(t, all, 3)
	assert.Equal(t, []domain.TabID{"1", "2", "3"}, []domain.TabID{all[0].ID, all[1].ID, all[2].ID})
	assert.True(t, all[2].Active)
	assert.False(t, all[2].Discarded, "activation clears discard flag")

	inactive := r.list(domain.TabQuery{Active: domain.Bool(false)})
	assert.Len(t, inactive, 2)

	tab, ok := r.get("3")
	require.True(t, ok)
	assert.True(t, tab.Active)
}

func TestRegistry_Remove(t *testing.T) {
	r := newRegistry()
	r.upsert(pageInfo("1", "https://a.com"))
	r.activate("1")

	p := r.remove("1")
	require.NotNil(t, p)
	assert.Nil(t, r.remove("1"))
	assert.Empty(t, r.active)
	_, ok := r.get("1")
	assert.False(t, ok)
	assert.False(t, r.setDiscarded("1", true))
}

func TestRegistry_BindSession(t *testing.T) {
	r := newRegistry()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	deb := debounce.New(0, func() {})

	assert.False(t, r.bind(ctx, "1", cancel, deb), "unknown tab")

	r.upsert(pageInfo("1", "https://a.com"))
	require.True(t, r.bind(ctx, "1", cancel, deb))

	gotCtx, gotDeb, ok := r.session("1")
	require.True(t, ok)
	assert.Equal(t, ctx, gotCtx)
	assert.Same(t, deb, gotDeb)

	p := r.remove("1")
	activity, stop := r.handles(p)
	assert.Same(t, deb, activity)
	assert.NotNil(t, stop)
	assert.Len(t, r.all(), 0)
}
