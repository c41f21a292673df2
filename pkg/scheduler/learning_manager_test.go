package scheduler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sivaratrisrinivas/tabHibernate/pkg/domain"
	"github.com/sivaratrisrinivas/tabHibernate/pkg/scheduler/mocks"
)

// fakeAlarms records alarm operations and keeps the set of pending alarms
type fakeAlarms struct {
	mu      sync.Mutex
	ops     []string
	pending map[string]time.Duration
}

func newFakeAlarms() (*mocks.AlarmsMock, *fakeAlarms) {
	fa := &fakeAlarms{pending: make(map[string]time.Duration)}
	mock := &mocks.AlarmsMock{
		CreateFunc: func(name string, delay, _ time.Duration) {
			fa.mu.Lock()
			defer fa.mu.Unlock()
			fa.ops = append(fa.ops, fmt.Sprintf("create %s %v", name, delay))
			fa.pending[name] = delay
		},
		ClearFunc: func(name string) bool {
			fa.mu.Lock()
			defer fa.mu.Unlock()
			_, ok := fa.pending[name]
			delete(fa.pending, name)
			if ok {
				fa.ops = append(fa.ops, "clear "+name)
			}
			return ok
		},
	}
	return mock, fa
}

func (fa *fakeAlarms) delay(name string) (time.Duration, bool) {
	fa.mu.Lock()
	defer fa.mu.Unlock()
	d, ok := fa.pending[name]
	return d, ok
}

func (fa *fakeAlarms) history() []string {
	fa.mu.Lock()
	defer fa.mu.Unlock()
	return append([]string(nil), fa.ops...)
}

type learningFixture struct {
	manager *LearningManager
	state   *State
	alarms  *fakeAlarms
	policy  *mocks.PolicyMock
	store   *memStore
	clock   *time.Time
}

func newLearningFixture(t *testing.T, settings domain.Settings) *learningFixture {
	t.Helper()
	storeMock, ms := newMemStore()
	alarmsMock, fa := newFakeAlarms()
	f := &learningFixture{
		state:  NewState(storeMock, testSettings()),
		alarms: fa,
		policy: &mocks.PolicyMock{AnalyzeUsagePatternsFunc: func(context.Context) error { return nil }},
		store:  ms,
	}
	f.state.ReplaceSettings(settings)
	now := testNow
	f.clock = &now
	f.manager = NewLearningManager(f.state, alarmsMock, f.policy)
	f.manager.now = func() time.Time { return *f.clock }
	return f
}

func (f *learningFixture) stored(t *testing.T) domain.Settings {
	t.Helper()
	raw, ok := f.store.get(domain.KeySettings)
	require.True(t, ok, "settings not persisted")
	var s domain.Settings
	require.NoError(t, json.Unmarshal(raw, &s))
	return s
}

func learningSettings() domain.Settings {
	s := testSettings()
	s.AdaptiveMode, s.LearningPeriod = true, true
	return s
}

func TestLearningManager_InitStampsStartTime(t *testing.T) {
	f := newLearningFixture(t, learningSettings())

	require.NoError(t, f.manager.Init(context.Background()))

	cur := f.state.Settings()
	require.NotNil(t, cur.LearningPeriodStartTime)
	assert.Equal(t, testNow, *cur.LearningPeriodStartTime)
	assert.Equal(t, testNow, *f.stored(t).LearningPeriodStartTime)

	delay, ok := f.alarms.delay(AlarmEndLearning)
	require.True(t, ok)
	assert.Equal(t, 7*24*time.Hour, delay)
}

func TestLearningManager_InitRemaining(t *testing.T) {
	tests := []struct {
		name    string
		elapsed time.Duration
		want    time.Duration
	}{
		{name: "partly elapsed", elapsed: 24 * time.Hour, want: 6 * 24 * time.Hour},
		{name: "already over", elapsed: 30 * 24 * time.Hour, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			settings := learningSettings()
			start := testNow.Add(-tt.elapsed)
			settings.LearningPeriodStartTime = &start
			f := newLearningFixture(t, settings)

			require.NoError(t, f.manager.Init(context.Background()))
			delay, ok := f.alarms.delay(AlarmEndLearning)
			require.True(t, ok)
			assert.Equal(t, tt.want, delay)
			_, persisted := f.store.get(domain.KeySettings)
			assert.False(t, persisted, "nothing to normalize")
		})
	}
}

func TestLearningManager_InitNotLearning(t *testing.T) {
	settings := testSettings()
	start := testNow.Add(-time.Hour)
	settings.LearningPeriodStartTime = &start // stale, adaptive is off
	f := newLearningFixture(t, settings)

	require.NoError(t, f.manager.Init(context.Background()))
	_, ok := f.alarms.delay(AlarmEndLearning)
	assert.False(t, ok)
	assert.Nil(t, f.state.Settings().LearningPeriodStartTime)
	assert.Nil(t, f.stored(t).LearningPeriodStartTime)
}

func TestLearningManager_OnSettingsChanged(t *testing.T) {
	f := newLearningFixture(t, testSettings())
	ctx := context.Background()

	// turning adaptive on starts learning
	f.manager.OnSettingsChanged(ctx, learningSettings())
	cur := f.state.Settings()
	require.NotNil(t, cur.LearningPeriodStartTime)
	delay, ok := f.alarms.delay(AlarmEndLearning)
	require.True(t, ok)
	assert.Equal(t, 7*24*time.Hour, delay)

	// another field changes a day later, the timer is recreated for the remaining time
	*f.clock = testNow.Add(24 * time.Hour)
	next := cur.Clone()
	next.InactivityThreshold = time.Hour
	f.manager.OnSettingsChanged(ctx, next)
	delay, ok = f.alarms.delay(AlarmEndLearning)
	require.True(t, ok)
	assert.Equal(t, 6*24*time.Hour, delay)
	assert.Equal(t, time.Hour, f.state.Settings().InactivityThreshold)

	// turning learning off cancels the timer
	next = f.state.Settings()
	next.LearningPeriod = false
	f.manager.OnSettingsChanged(ctx, next)
	_, ok = f.alarms.delay(AlarmEndLearning)
	assert.False(t, ok)

	assert.Equal(t, []string{
		"create endLearningPeriod 168h0m0s",
		"clear endLearningPeriod",
		"create endLearningPeriod 144h0m0s",
		"clear endLearningPeriod",
	}, f.alarms.history())
}

func TestLearningManager_DisableAdaptive(t *testing.T) {
	f := newLearningFixture(t, learningSettings())
	require.NoError(t, f.manager.Init(context.Background()))

	next := f.state.Settings()
	next.AdaptiveMode = false
	f.manager.OnSettingsChanged(context.Background(), next)

	_, ok := f.alarms.delay(AlarmEndLearning)
	assert.False(t, ok)
	assert.Nil(t, f.state.Settings().LearningPeriodStartTime)
	assert.Nil(t, f.stored(t).LearningPeriodStartTime)
	assert.True(t, f.state.Settings().LearningPeriod, "learning flag is kept for the next adaptive run")
}

func TestLearningManager_EndLearningPeriod(t *testing.T) {
	f := newLearningFixture(t, learningSettings())
	ctx := context.Background()
	require.NoError(t, f.manager.Init(ctx))

	require.NoError(t, f.manager.EndLearningPeriod(ctx))
	assert.False(t, f.state.Settings().LearningPeriod)
	assert.False(t, f.stored(t).LearningPeriod)
	assert.Len(t, f.policy.AnalyzeUsagePatternsCalls(), 1)

	// second call is a no-op
	require.NoError(t, f.manager.EndLearningPeriod(ctx))
	assert.Len(t, f.policy.AnalyzeUsagePatternsCalls(), 1)
}

func TestLearningManager_ReenableAfterEnd(t *testing.T) {
	f := newLearningFixture(t, learningSettings())
	ctx := context.Background()
	require.NoError(t, f.manager.Init(ctx))

	require.NoError(t, f.manager.EndLearningPeriod(ctx))
	assert.Nil(t, f.state.Settings().LearningPeriodStartTime, "ended period drops its start time")
	f.manager.OnSettingsChanged(ctx, f.stored(t)) // storage notification after the end
	_, ok := f.alarms.delay(AlarmEndLearning)
	assert.False(t, ok)

	// learning turned back on 20 days later runs a full period again
	*f.clock = testNow.Add(20 * 24 * time.Hour)
	next := f.state.Settings()
	next.LearningPeriod = true
	f.manager.OnSettingsChanged(ctx, next)

	delay, ok := f.alarms.delay(AlarmEndLearning)
	require.True(t, ok)
	assert.Equal(t, 7*24*time.Hour, delay)
	cur := f.state.Settings()
	require.NotNil(t, cur.LearningPeriodStartTime)
	assert.Equal(t, *f.clock, *cur.LearningPeriodStartTime)
	assert.Equal(t, *f.clock, *f.stored(t).LearningPeriodStartTime)
}

func TestLearningManager_ReenableWithStaleStartTime(t *testing.T) {
	f := newLearningFixture(t, learningSettings())
	ctx := context.Background()

	// settings written elsewhere with learning off but an old start time still present
	stale := testNow.Add(-20 * 24 * time.Hour)
	off := learningSettings()
	off.LearningPeriod = false
	off.LearningPeriodStartTime = &stale
	f.manager.OnSettingsChanged(ctx, off)
	assert.Nil(t, f.state.Settings().LearningPeriodStartTime)

	on := f.state.Settings()
	on.LearningPeriod = true
	f.manager.OnSettingsChanged(ctx, on)
	delay, ok := f.alarms.delay(AlarmEndLearning)
	require.True(t, ok)
	assert.Equal(t, 7*24*time.Hour, delay)
}

func TestLearningManager_EndLearningPeriodAnalyzeError(t *testing.T) {
	f := newLearningFixture(t, learningSettings())
	f.policy.AnalyzeUsagePatternsFunc = func(context.Context) error { return errors.New("storage closed") }

	err := f.manager.EndLearningPeriod(context.Background())
	require.Error(t, err)
	assert.False(t, f.state.Settings().LearningPeriod)
}
