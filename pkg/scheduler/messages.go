package scheduler

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-pkgz/lgr"

	"github.com/sivaratrisrinivas/tabHibernate/pkg/domain"
)

// HandleMessage dispatches a message from a page or the control surface.
// It never panics, failures become error replies or log lines.
func (s *Scheduler) HandleMessage(ctx context.Context, msg domain.Message, sender domain.Sender) (reply domain.Reply) {
	defer func() {
		if r := recover(); r != nil {
			lgr.Printf("[ERROR] panic while handling %q message: %v", msg.Type, r)
			reply = domain.Handled(domain.ErrorReply{Error: fmt.Sprintf("internal error: %v", r)})
		}
	}()

	switch msg.Type {
	case domain.MsgUserActivity:
		s.onUserActivity(ctx, sender)
		return domain.Handled(nil)
	case domain.MsgManualUnload:
		return domain.Handled(s.manualUnload(ctx))
	case domain.MsgGetState:
		return domain.HandledAsync(s.stateAsync(ctx, sender.TabID))
	default:
		return domain.Unhandled()
	}
}

func (s *Scheduler) onUserActivity(ctx context.Context, sender domain.Sender) {
	if sender.TabID == "" {
		return
	}
	url := sender.URL
	if url == "" {
		if tab, err := s.host.GetTab(ctx, sender.TabID); err == nil {
			url = tab.URL
		}
	}
	s.ledger.Touch(sender.TabID, url)
	s.tracker.RecordInteraction(url)
}

func (s *Scheduler) manualUnload(ctx context.Context) domain.UnloadReply {
	res, err := s.UnloadInactiveNow(ctx)
	if err != nil {
		lgr.Printf("[ERROR] manual unload failed: %v", err)
		return domain.UnloadReply{Error: err.Error()}
	}
	return domain.UnloadReply{Success: true, Unloaded: res.Unloaded, Failed: res.Failed}
}

// stateAsync looks up the tab's snapshot in the background, the channel gets exactly one StateReply
func (s *Scheduler) stateAsync(ctx context.Context, id domain.TabID) <-chan any {
	ch := make(chan any, 1)
	go func() {
		reply := domain.StateReply{}
		defer func() {
			if r := recover(); r != nil {
				lgr.Printf("[ERROR] panic while reading state of tab %s: %v", id, r)
			}
			ch <- reply
		}()
		snapshot, err := s.Snapshot(ctx, id)
		if err != nil {
			lgr.Printf("[WARN] %v", err)
			return
		}
		reply.State = snapshot
	}()
	return ch
}

// Snapshot returns the stored state of a tab, nil if there is none
func (s *Scheduler) Snapshot(ctx context.Context, id domain.TabID) (*domain.TabSnapshot, error) {
	if id == "" {
		return nil, nil
	}
	key := domain.SnapshotKey(id)
	values, err := s.storage.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("read snapshot of tab %s: %w", id, err)
	}
	raw, ok := values[key]
	if !ok {
		return nil, nil
	}
	var snapshot domain.TabSnapshot
	if err := json.Unmarshal(raw, &snapshot); err != nil {
		return nil, fmt.Errorf("decode snapshot of tab %s: %w", id, err)
	}
	return &snapshot, nil
}
