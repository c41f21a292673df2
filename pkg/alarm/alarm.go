// Package alarm provides named one-shot and recurring timers.
// Creating an alarm with an existing name replaces it, so there is never more than one timer per name.
package alarm

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
)

// Handler is called when an alarm fires
type Handler func(ctx context.Context, name string)

// Info describes a scheduled alarm
type Info struct {
	Name        string
	ScheduledAt time.Time
	Period      time.Duration
}

// Service keeps named timers and dispatches them to a handler
type Service struct {
	ctx    context.Context
	cancel context.CancelFunc

	mu      sync.Mutex
	handler Handler
	alarms  map[string]*entry
	wg      sync.WaitGroup
}

type entry struct {
	info  Info
	timer *time.Timer
}

// New makes an alarm service, handler is set later with SetHandler
func New() *Service {
	ctx, cancel := context.WithCancel(context.Background())
	return &Service{ctx: ctx, cancel: cancel, alarms: make(map[string]*entry)}
}

// SetHandler sets the callback for fired alarms
func (s *Service) SetHandler(h Handler) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.handler = h
}

// Create schedules alarm name to fire after delay and then every period if period > 0.
// An existing alarm with the same name is cleared first.
func (s *Service) Create(name string, delay, period time.Duration) {
	if delay < 0 {
		delay = 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ctx.Err() != nil {
		return
	}
	s.clearLocked(name)
	e := &entry{info: Info{Name: name, ScheduledAt: time.Now().Add(delay), Period: period}}
	e.timer = time.AfterFunc(delay, func() { s.fire(e) })
	s.alarms[name] = e
	lgr.Printf("[DEBUG] alarm %q scheduled in %v, period %v", name, delay, period)
}

// Clear cancels alarm name, returns false if it was not scheduled
func (s *Service) Clear(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.clearLocked(name)
}

// Get returns the scheduled alarm name
func (s *Service) Get(name string) (Info, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.alarms[name]
	if !ok {
		return Info{}, false
	}
	return e.info, true
}

// Names lists scheduled alarms, sorted
func (s *Service) Names() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	res := make([]string, 0, len(s.alarms))
	for name := range s.alarms {
		res = append(res, name)
	}
	sort.Strings(res)
	return res
}

// Stop clears all alarms and waits for running handlers
func (s *Service) Stop() {
	s.mu.Lock()
	s.cancel()
	for name := range s.alarms {
		s.clearLocked(name)
	}
	s.mu.Unlock()
	s.wg.Wait()
}

func (s *Service) clearLocked(name string) bool {
	e, ok := s.alarms[name]
	if !ok {
		return false
	}
	e.timer.Stop()
	delete(s.alarms, name)
	return true
}

// fire runs the handler for e if it is still the current alarm of its name.
// Recurring alarms are rescheduled after the handler returns, so one alarm never overlaps itself.
func (s *Service) fire(e *entry) {
	s.mu.Lock()
	if s.alarms[e.info.Name] != e || s.ctx.Err() != nil {
		s.mu.Unlock()
		return
	}
	if e.info.Period <= 0 {
		delete(s.alarms, e.info.Name)
	}
	h := s.handler
	s.wg.Add(1)
	s.mu.Unlock()

	func() {
		defer s.wg.Done()
		if h == nil {
			lgr.Printf("[WARN] alarm %q fired without handler", e.info.Name)
			return
		}
		h(s.ctx, e.info.Name)
	}()

	if e.info.Period <= 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.alarms[e.info.Name] != e || s.ctx.Err() != nil {
		return // cleared or replaced while the handler ran
	}
	e.info.ScheduledAt = time.Now().Add(e.info.Period)
	e.timer = time.AfterFunc(e.info.Period, func() { s.fire(e) })
}
