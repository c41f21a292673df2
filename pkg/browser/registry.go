package browser

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/chromedp/cdproto/target"

	"github.com/sivaratrisrinivas/tabHibernate/pkg/debounce"
	"github.com/sivaratrisrinivas/tabHibernate/pkg/domain"
)

// targetTypePage is the CDP target type of a regular tab
const targetTypePage = "page"

// tabPage is a tracked tab with its attached chromedp context
type tabPage struct {
	tab      domain.Tab
	ctx      context.Context // nil until attached
	cancel   context.CancelFunc
	activity *debounce.Debouncer
}

// registry keeps the known tabs, the focused one and their discard flags
type registry struct {
	mu     sync.Mutex
	pages  map[domain.TabID]*tabPage
	active domain.TabID
}

func newRegistry() *registry {
	return &registry{pages: make(map[domain.TabID]*tabPage)}
}

// tabFromInfo converts a target to a tab, false for anything but pages
func tabFromInfo(info *target.Info) (domain.Tab, bool) {
	if info == nil || info.Type != targetTypePage || info.TargetID == "" {
		return domain.Tab{}, false
	}
	return domain.Tab{ID: domain.TabID(info.TargetID), URL: info.URL, Title: info.Title}, true
}

// scriptable reports whether page scripts can run at the url, browser internal pages can't be reached
func scriptable(rawURL string) bool {
	u := strings.ToLower(rawURL)
	return strings.HasPrefix(u, "http://") || strings.HasPrefix(u, "https://") || strings.HasPrefix(u, "file://")
}

// upsertResult tells what an upsert changed
type upsertResult int

const (
	upsertIgnored   upsertResult = iota // not a page target
	upsertUnchanged                     // known tab, same url (title or attach state changes)
	upsertNavigated                     // known tab moved to another url
	upsertCreated                       // tab was not known before
)

// upsert records target info. A tab navigating to another url is no longer discarded.
func (r *registry) upsert(info *target.Info) (domain.Tab, upsertResult) {
	tab, ok := tabFromInfo(info)
	if !ok {
		return domain.Tab{}, upsertIgnored
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	p, found := r.pages[tab.ID]
	if !found {
		p = &tabPage{tab: tab}
		r.pages[tab.ID] = p
		return r.view(p), upsertCreated
	}
	res := upsertUnchanged
	if p.tab.URL != tab.URL {
		p.tab.Discarded = false
		res = upsertNavigated
	}
	p.tab.URL, p.tab.Title = tab.URL, tab.Title
	return r.view(p), res
}

// remove forgets the tab and returns its page, nil if unknown
func (r *registry) remove(id domain.TabID) *tabPage {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.pages[id]
	if !ok {
		return nil
	}
	delete(r.pages, id)
	if r.active == id {
		r.active = ""
	}
	return p
}

// get returns a copy of the tab
func (r *registry) get(id domain.TabID) (domain.Tab, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.pages[id]
	if !ok {
		return domain.Tab{}, false
	}
	return r.view(p), true
}

// list returns tabs matching q ordered by id
func (r *registry) list(q domain.TabQuery) []domain.Tab {
	r.mu.Lock()
	defer r.mu.Unlock()
	res := make([]domain.Tab, 0, len(r.pages))
	for _, p := range r.pages {
		if t := r.view(p); q.Match(t) {
			res = append(res, t)
		}
	}
	sort.Slice(res, func(i, j int) bool { return res[i].ID < res[j].ID })
	return res
}

// activate makes id the focused tab, a tab running scripts again is no longer discarded.
// Returns the previously focused tab id.
func (r *registry) activate(id domain.TabID) (domain.TabID, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.pages[id]
	if !ok {
		return "", false
	}
	prev := r.active
	r.active = id
	p.tab.Discarded = false
	return prev, true
}

// setDiscarded updates the discard flag, false if the tab is unknown
func (r *registry) setDiscarded(id domain.TabID, discarded bool) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.pages[id]
	if !ok {
		return false
	}
	p.tab.Discarded = discarded
	return true
}

// bind stores the attached context and activity debouncer of the tab, false if the tab is unknown
func (r *registry) bind(ctx context.Context, id domain.TabID, cancel context.CancelFunc, activity *debounce.Debouncer) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.pages[id]
	if !ok {
		return false
	}
	p.ctx, p.cancel, p.activity = ctx, cancel, activity
	return true
}

// session returns the attached context and activity debouncer of the tab
func (r *registry) session(id domain.TabID) (context.Context, *debounce.Debouncer, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.pages[id]
	if !ok {
		return nil, nil, false
	}
	return p.ctx, p.activity, true
}

// handles returns the debouncer and context cancel of a page, including removed ones
func (r *registry) handles(p *tabPage) (*debounce.Debouncer, context.CancelFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return p.activity, p.cancel
}

// all returns every tracked page, used on shutdown
func (r *registry) all() []*tabPage {
	r.mu.Lock()
	defer r.mu.Unlock()
	res := make([]*tabPage, 0, len(r.pages))
	for _, p := range r.pages {
		res = append(res, p)
	}
	return res
}

// view must be called with the lock held
func (r *registry) view(p *tabPage) domain.Tab {
	t := p.tab
	t.Active = t.ID == r.active
	return t
}
