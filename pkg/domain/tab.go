package domain

import (
	"strings"
	"time"
)

// TabID identifies a tab within the host browser
type TabID string

// Tab is the host's view of an open tab
type Tab struct {
	ID        TabID  `json:"id"`
	URL       string `json:"url"`
	Title     string `json:"title"`
	Active    bool   `json:"active"`
	Pinned    bool   `json:"pinned"`
	Discarded bool   `json:"discarded"`
}

// TabQuery filters tab enumeration, zero value matches every tab
type TabQuery struct {
	ID        TabID
	Active    *bool
	Pinned    *bool
	Discarded *bool
	URLPrefix string
}

// Match reports whether the tab satisfies all set predicates
func (q TabQuery) Match(t Tab) bool {
	if q.ID != "" && q.ID != t.ID {
		return false
	}
	if q.Active != nil && *q.Active != t.Active {
		return false
	}
	if q.Pinned != nil && *q.Pinned != t.Pinned {
		return false
	}
	if q.Discarded != nil && *q.Discarded != t.Discarded {
		return false
	}
	if q.URLPrefix != "" && !strings.HasPrefix(t.URL, q.URLPrefix) {
		return false
	}
	return true
}

// Bool returns a pointer to v, used for TabQuery predicates
func Bool(v bool) *bool { return &v }

// TabActivity is the ledger entry of a tab
type TabActivity struct {
	LastActive      time.Time `json:"lastActive"`
	Domain          string    `json:"domain"`
	Hibernated      bool      `json:"hibernated"`
	HibernationTime time.Time `json:"hibernationTime,omitzero"`
}

// PageState is the restorable state a page reports about itself
type PageState struct {
	URL     string `json:"url"`
	Title   string `json:"title"`
	ScrollX int    `json:"scrollX"`
	ScrollY int    `json:"scrollY"`
}

// TabSnapshot is the page state captured right before a tab is unloaded
type TabSnapshot struct {
	ID        TabID     `json:"id"`
	URL       string    `json:"url"`
	Title     string    `json:"title"`
	ScrollX   int       `json:"scrollX"`
	ScrollY   int       `json:"scrollY"`
	Timestamp time.Time `json:"timestamp"`
}
