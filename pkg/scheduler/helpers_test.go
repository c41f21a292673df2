package scheduler

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/sivaratrisrinivas/tabHibernate/pkg/domain"
	"github.com/sivaratrisrinivas/tabHibernate/pkg/scheduler/mocks"
)

var testNow = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

// memStore is an in-memory Storage with change notifications
type memStore struct {
	mu       sync.Mutex
	data     map[string]json.RawMessage
	onChange func(changes map[string]StorageChange)
}

func newMemStore() (*mocks.StorageMock, *memStore) {
	ms := &memStore{data: make(map[string]json.RawMessage)}
	mock := &mocks.StorageMock{
		GetFunc: func(_ context.Context, keys ...string) (map[string]json.RawMessage, error) {
			ms.mu.Lock()
			defer ms.mu.Unlock()
			res := make(map[string]json.RawMessage)
			if len(keys) == 0 {
				for k, v := range ms.data {
					res[k] = v
				}
				return res, nil
			}
			for _, k := range keys {
				if v, ok := ms.data[k]; ok {
					res[k] = v
				}
			}
			return res, nil
		},
		SetFunc: func(_ context.Context, items map[string]any) error {
			changes := make(map[string]StorageChange)
			ms.mu.Lock()
			for k, v := range items {
				data, err := json.Marshal(v)
				if err != nil {
					ms.mu.Unlock()
					return err
				}
				if string(ms.data[k]) == string(data) {
					continue
				}
				changes[k] = StorageChange{OldValue: ms.data[k], NewValue: data}
				ms.data[k] = data
			}
			notify := ms.onChange
			ms.mu.Unlock()
			if notify != nil && len(changes) > 0 {
				notify(changes)
			}
			return nil
		},
		RemoveFunc: func(_ context.Context, keys ...string) error {
			ms.mu.Lock()
			defer ms.mu.Unlock()
			for _, k := range keys {
				delete(ms.data, k)
			}
			return nil
		},
	}
	return mock, ms
}

func (ms *memStore) get(key string) (json.RawMessage, bool) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	v, ok := ms.data[key]
	return v, ok
}

func (ms *memStore) put(key string, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	ms.mu.Lock()
	ms.data[key] = data
	ms.mu.Unlock()
}

// staticSettings serves fixed settings
type staticSettings struct {
	mu sync.Mutex
	s  domain.Settings
}

func (f *staticSettings) Settings() domain.Settings {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.s.Clone()
}

func (f *staticSettings) set(s domain.Settings) {
	f.mu.Lock()
	f.s = s
	f.mu.Unlock()
}

func testSettings() domain.Settings {
	return domain.Settings{
		Enabled:                true,
		InactivityThreshold:    30 * time.Minute,
		ExcludePinnedTabs:      true,
		LearningPeriodDuration: 7 * 24 * time.Hour,
	}
}

// newTestLedger makes a ledger with synchronous mirror writes and a fixed clock
func newTestLedger() (*Ledger, *mocks.StorageMock) {
	store, _ := newMemStore()
	l := NewLedger(store, 0)
	l.now = func() time.Time { return testNow }
	return l, store
}

// hostWith makes a tab host serving tabs, queries are filtered with TabQuery.Match
func hostWith(tabs ...domain.Tab) *mocks.TabHostMock {
	return &mocks.TabHostMock{
		QueryTabsFunc: func(_ context.Context, q domain.TabQuery) ([]domain.Tab, error) {
			var res []domain.Tab
			for _, t := range tabs {
				if q.Match(t) {
					res = append(res, t)
				}
			}
			return res, nil
		},
		DiscardTabFunc: func(context.Context, domain.TabID) error { return nil },
		GetTabFunc: func(_ context.Context, id domain.TabID) (domain.Tab, error) {
			for _, t := range tabs {
				if t.ID == id {
					return t, nil
				}
			}
			return domain.Tab{}, domain.ErrTabNotFound
		},
	}
}

// store puts raw JSON under key
func (ms *memStore) store(t interface{ Helper() }, key, raw string) {
	t.Helper()
	ms.mu.Lock()
	ms.data[key] = json.RawMessage(raw)
	ms.mu.Unlock()
}
