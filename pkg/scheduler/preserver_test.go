package scheduler

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sivaratrisrinivas/tabHibernate/pkg/domain"
	"github.com/sivaratrisrinivas/tabHibernate/pkg/scheduler/mocks"
)

type preserveFixture struct {
	preserver *Preserver
	host      *mocks.TabHostMock
	messenger *mocks.MessengerMock
	store     *mocks.StorageMock
	ledger    *Ledger
	settings  *staticSettings
}

func newPreserveFixture(t *testing.T, tab domain.Tab) *preserveFixture {
	t.Helper()
	ledger, _ := newTestLedger()
	ledger.Touch(tab.ID, tab.URL)
	f := &preserveFixture{
		host: hostWith(tab),
		messenger: &mocks.MessengerMock{
			SendToTabFunc: func(context.Context, domain.TabID, domain.Message) (domain.SaveStateResponse, error) {
				return domain.SaveStateResponse{Success: true, State: &domain.PageState{URL: tab.URL, ScrollX: 3, ScrollY: 420}}, nil
			},
		},
		store: &mocks.StorageMock{
			SetFunc: func(context.Context, map[string]any) error { return nil },
		},
		ledger:   ledger,
		settings: &staticSettings{s: testSettings()},
	}
	f.preserver = NewPreserver(PreserverConfig{
		Host:      f.host,
		Messenger: f.messenger,
		Storage:   f.store,
		Ledger:    f.ledger,
		Settings:  f.settings,
	})
	f.preserver.now = func() time.Time { return testNow.Add(time.Minute) }
	return f
}

func TestPreserver_CaptureAndUnload(t *testing.T) {
	tab := domain.Tab{ID: "7", URL: "https://example.com/article", Title: "Q&A <notes>"}
	f := newPreserveFixture(t, tab)

	err := f.preserver.CaptureAndUnload(context.Background(), tab)
	require.NoError(t, err)

	require.Len(t, f.messenger.SendToTabCalls(), 1)
	assert.Equal(t, domain.TabID("7"), f.messenger.SendToTabCalls()[0].ID)
	assert.Equal(t, domain.MsgSaveState, f.messenger.SendToTabCalls()[0].Msg.Type)

	require.Len(t, f.store.SetCalls(), 1)
	snapshot, ok := f.store.SetCalls()[0].Items["tab_7"].(domain.TabSnapshot)
	require.True(t, ok)
	assert.Equal(t, domain.TabSnapshot{ID: "7", URL: tab.URL, Title: tab.Title, ScrollX: 3, ScrollY: 420,
		Timestamp: testNow.Add(time.Minute)}, snapshot)

	require.Len(t, f.host.DiscardTabCalls(), 1)
	assert.Equal(t, domain.TabID("7"), f.host.DiscardTabCalls()[0].ID)
	entry, ok := f.ledger.Get("7")
	require.True(t, ok)
	assert.True(t, entry.Hibernated)
	assert.Equal(t, testNow.Add(time.Minute), entry.HibernationTime)
}

func TestPreserver_SnapshotFallsBackToPageState(t *testing.T) {
	tests := []struct {
		name      string
		tab       domain.Tab
		state     domain.PageState
		wantURL   string
		wantTitle string
	}{
		{name: "tab metadata wins",
			tab:     domain.Tab{ID: "5", URL: "https://example.com/a", Title: "tab title"},
			state:   domain.PageState{URL: "https://example.com/a#frag", Title: "page title"},
			wantURL: "https://example.com/a", wantTitle: "tab title"},
		{name: "empty title filled from page",
			tab:     domain.Tab{ID: "5", URL: "https://example.com/a"},
			state:   domain.PageState{URL: "https://example.com/a", Title: "page title"},
			wantURL: "https://example.com/a", wantTitle: "page title"},
		{name: "empty url and title filled from page",
			tab:     domain.Tab{ID: "5"},
			state:   domain.PageState{URL: "https://example.com/b", Title: "page title"},
			wantURL: "https://example.com/b", wantTitle: "page title"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newPreserveFixture(t, tt.tab)
			f.messenger.SendToTabFunc = func(context.Context, domain.TabID, domain.Message) (domain.SaveStateResponse, error) {
				st := tt.state
				return domain.SaveStateResponse{Success: true, State: &st}, nil
			}

			require.NoError(t, f.preserver.CaptureAndUnload(context.Background(), tt.tab))
			require.Len(t, f.store.SetCalls(), 1)
			snapshot, ok := f.store.SetCalls()[0].Items["tab_5"].(domain.TabSnapshot)
			require.True(t, ok)
			assert.Equal(t, tt.wantURL, snapshot.URL)
			assert.Equal(t, tt.wantTitle, snapshot.Title)
		})
	}
}

func TestPreserver_CaptureFailuresStillDiscard(t *testing.T) {
	tests := []struct {
		name string
		resp domain.SaveStateResponse
		err  error
	}{
		{name: "no receiver", err: fmt.Errorf("send: %w", domain.ErrNoReceiver)},
		{name: "explicit failure", resp: domain.SaveStateResponse{Success: false, Error: "page busy"}},
		{name: "missing state", resp: domain.SaveStateResponse{Success: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tab := domain.Tab{ID: "42", URL: "https://example.com"}
			f := newPreserveFixture(t, tab)
			f.messenger.SendToTabFunc = func(context.Context, domain.TabID, domain.Message) (domain.SaveStateResponse, error) {
				return tt.resp, tt.err
			}

			err := f.preserver.CaptureAndUnload(context.Background(), tab)
			require.NoError(t, err)
			assert.Empty(t, f.store.SetCalls(), "snapshot must not be stored")
			require.Len(t, f.host.DiscardTabCalls(), 1)
			assert.Equal(t, domain.TabID("42"), f.host.DiscardTabCalls()[0].ID)
			entry, _ := f.ledger.Get("42")
			assert.True(t, entry.Hibernated)
		})
	}
}

func TestPreserver_DiscardOnly(t *testing.T) {
	tab := domain.Tab{ID: "3", URL: "https://example.com"}
	f := newPreserveFixture(t, tab)
	settings := testSettings()
	settings.DiscardInsteadOfHibernate = true
	f.settings.set(settings)

	require.NoError(t, f.preserver.CaptureAndUnload(context.Background(), tab))
	assert.Empty(t, f.messenger.SendToTabCalls())
	assert.Empty(t, f.store.SetCalls())
	assert.Len(t, f.host.DiscardTabCalls(), 1)
}

func TestPreserver_SnapshotStoreFailure(t *testing.T) {
	tab := domain.Tab{ID: "9", URL: "https://example.com"}
	f := newPreserveFixture(t, tab)
	f.store.SetFunc = func(context.Context, map[string]any) error { return errors.New("disk full") }

	require.NoError(t, f.preserver.CaptureAndUnload(context.Background(), tab))
	assert.Len(t, f.store.SetCalls(), 1)
	assert.Len(t, f.host.DiscardTabCalls(), 1)
	entry, _ := f.ledger.Get("9")
	assert.True(t, entry.Hibernated)
}

func TestPreserver_DiscardFailure(t *testing.T) {
	buf := bytes.Buffer{}
	lgr.Setup(lgr.Out(&buf), lgr.Err(&buf))
	defer lgr.Setup()

	tab := domain.Tab{ID: "11", URL: "https://example.com"}
	f := newPreserveFixture(t, tab)
	f.host.DiscardTabFunc = func(context.Context, domain.TabID) error { return errors.New("no such target") }

	err := f.preserver.CaptureAndUnload(context.Background(), tab)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no such target")
	assert.Contains(t, buf.String(), "failed to discard tab 11")

	entry, ok := f.ledger.Get("11")
	require.True(t, ok)
	assert.False(t, entry.Hibernated)
	assert.True(t, entry.HibernationTime.IsZero())
}
