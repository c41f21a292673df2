// Package browser drives a running Chromium-based browser over the DevTools protocol.
// It lists page targets as tabs, captures page state, freezes tabs to unload them and
// reports tab lifecycle and user activity to an EventHandler.
package browser

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/chromedp/cdproto/cdp"
	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/cdproto/runtime"
	"github.com/chromedp/cdproto/target"
	"github.com/chromedp/chromedp"
	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/repeater/v2"

	"github.com/sivaratrisrinivas/tabHibernate/pkg/debounce"
	"github.com/sivaratrisrinivas/tabHibernate/pkg/domain"
)

//go:generate moq -out mocks/event_handler.go -pkg mocks -skip-ensure -fmt goimports . EventHandler

// bindingName is the page function reporting activity back to the client
const bindingName = "__tabHibernate"

// binding payloads sent by the activity script
const (
	signalActivity = "activity"
	signalActivate = "activate"
)

// activityScript hooks user input and focus changes to the binding, safe to run more than once per document
const activityScript = `(() => {
	if (window.__tabHibernateInstalled) return true;
	window.__tabHibernateInstalled = true;
	const report = (kind) => { try { window.__tabHibernate(kind); } catch (e) {} };
	const opts = {passive: true, capture: true};
	['mousedown', 'keydown', 'scroll', 'touchstart', 'wheel'].forEach((e) => window.addEventListener(e, () => report('activity'), opts));
	document.addEventListener('visibilitychange', () => { if (document.visibilityState === 'visible') report('activate'); });
	window.addEventListener('focus', () => report('activate'));
	if (document.visibilityState === 'visible' && document.hasFocus()) report('activate');
	return true;
})()`

// captureScript answers a state request the way a content script would
const captureScript = `(() => ({
	success: true,
	state: {
		url: location.href,
		title: document.title,
		scrollX: Math.round(window.scrollX),
		scrollY: Math.round(window.scrollY)
	}
}))()`

// EventHandler receives tab lifecycle events and page messages
type EventHandler interface {
	OnTabActivated(ctx context.Context, id domain.TabID, url string)
	OnTabUpdated(ctx context.Context, tab domain.Tab)
	OnTabRemoved(ctx context.Context, id domain.TabID)
	HandleMessage(ctx context.Context, msg domain.Message, sender domain.Sender) domain.Reply
}

// Config defines browser connection parameters
type Config struct {
	CDPURL           string        // DevTools endpoint, http://host:port or ws://...
	ConnectTimeout   time.Duration // total time allowed for the initial connection
	CommandTimeout   time.Duration // limit for a single page command
	ActivityDebounce time.Duration // quiet window before user activity is reported
}

// Client is a DevTools connection acting as the tab host and page messenger
type Client struct {
	cfg      Config
	registry *registry

	mu            sync.Mutex
	allocCancel   context.CancelFunc
	browserCtx    context.Context
	browserCancel context.CancelFunc
	handler       EventHandler
	handlerCtx    context.Context
}

// New makes a client, call Connect before use
func New(cfg Config) *Client {
	if cfg.ConnectTimeout <= 0 {
		cfg.ConnectTimeout = 10 * time.Second
	}
	if cfg.CommandTimeout <= 0 {
		cfg.CommandTimeout = 5 * time.Second
	}
	return &Client{cfg: cfg, registry: newRegistry(), handlerCtx: context.Background()}
}

// Connect attaches to the browser, tracks the open tabs and starts target discovery
func (c *Client) Connect(ctx context.Context) error {
	allocCtx, allocCancel := chromedp.NewRemoteAllocator(context.Background(), c.cfg.CDPURL)

	connCtx, cancel := context.WithTimeout(ctx, c.cfg.ConnectTimeout)
	defer cancel()

	// a chromedp context allocates its browser once, every attempt needs a fresh one
	var (
		infos         []*target.Info
		browserCtx    context.Context
		browserCancel context.CancelFunc
	)
	retrier := repeater.NewBackoff(5, 200*time.Millisecond, repeater.WithMaxDelay(3*time.Second))
	err := retrier.Do(connCtx, func() error {
		attemptCtx, attemptCancel := chromedp.NewContext(allocCtx)
		res, err := chromedp.Targets(attemptCtx)
		if err != nil {
			attemptCancel()
			lgr.Printf("[DEBUG] browser at %s not reachable: %v", c.cfg.CDPURL, err)
			return err
		}
		infos, browserCtx, browserCancel = res, attemptCtx, attemptCancel
		return nil
	})
	if err != nil {
		allocCancel()
		return fmt.Errorf("connect to browser at %s: %w", c.cfg.CDPURL, err)
	}

	c.mu.Lock()
	c.allocCancel, c.browserCtx, c.browserCancel = allocCancel, browserCtx, browserCancel
	c.mu.Unlock()

	chromedp.ListenBrowser(browserCtx, c.onBrowserEvent)

	for _, info := range infos {
		if _, res := c.registry.upsert(info); res == upsertCreated {
			c.attach(domain.TabID(info.TargetID))
		}
	}

	b := chromedp.FromContext(browserCtx).Browser
	if err := target.SetDiscoverTargets(true).Do(cdp.WithExecutor(browserCtx, b)); err != nil {
		return fmt.Errorf("enable target discovery: %w", err)
	}

	lgr.Printf("[INFO] connected to browser at %s, %d tabs", c.cfg.CDPURL, len(c.registry.list(domain.TabQuery{})))
	return nil
}

// Listen delivers events to h until ctx is done
func (c *Client) Listen(ctx context.Context, h EventHandler) error {
	c.mu.Lock()
	c.handler, c.handlerCtx = h, ctx
	c.mu.Unlock()

	<-ctx.Done()

	c.mu.Lock()
	c.handler, c.handlerCtx = nil, context.Background()
	c.mu.Unlock()
	return nil
}

// Close flushes pending activity reports and drops the connection
func (c *Client) Close() {
	for _, p := range c.registry.all() {
		activity, _ := c.registry.handles(p)
		if activity != nil {
			activity.Flush()
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.browserCancel != nil {
		c.browserCancel()
		c.allocCancel()
		c.browserCancel, c.allocCancel = nil, nil
	}
}

// QueryTabs returns the tracked tabs matching q. Tabs are never pinned, CDP doesn't expose pinning.
func (c *Client) QueryTabs(_ context.Context, q domain.TabQuery) ([]domain.Tab, error) {
	return c.registry.list(q), nil
}

// GetTab returns a single tab, domain.ErrTabNotFound for unknown ids
func (c *Client) GetTab(_ context.Context, id domain.TabID) (domain.Tab, error) {
	tab, ok := c.registry.get(id)
	if !ok {
		return domain.Tab{}, fmt.Errorf("get tab %s: %w", id, domain.ErrTabNotFound)
	}
	return tab, nil
}

// DiscardTab freezes the page, it stops running and the browser may drop its resources
func (c *Client) DiscardTab(ctx context.Context, id domain.TabID) error {
	err := c.run(ctx, id, page.SetWebLifecycleState(page.SetWebLifecycleStateStateFrozen))
	if err != nil {
		return fmt.Errorf("freeze tab %s: %w", id, err)
	}
	c.registry.setDiscarded(id, true)
	return nil
}

// SendToTab answers state requests by evaluating the capture script in the page.
// Browser internal pages have no receiver.
func (c *Client) SendToTab(ctx context.Context, id domain.TabID, msg domain.Message) (domain.SaveStateResponse, error) {
	tab, ok := c.registry.get(id)
	if !ok {
		return domain.SaveStateResponse{}, fmt.Errorf("send to tab %s: %w", id, domain.ErrTabNotFound)
	}
	if msg.Type != domain.MsgSaveState || !scriptable(tab.URL) || tab.Discarded {
		return domain.SaveStateResponse{}, domain.ErrNoReceiver
	}

	var resp domain.SaveStateResponse
	if err := c.run(ctx, id, chromedp.Evaluate(captureScript, &resp)); err != nil {
		return domain.SaveStateResponse{}, fmt.Errorf("capture state of tab %s: %w", id, err)
	}
	return resp, nil
}

// run executes actions in the tab's context, bounded by the command timeout and the caller's ctx
func (c *Client) run(ctx context.Context, id domain.TabID, actions ...chromedp.Action) error {
	tabCtx, _, ok := c.registry.session(id)
	if !ok {
		return domain.ErrTabNotFound
	}
	if tabCtx == nil {
		return errors.New("tab not attached")
	}

	runCtx, cancel := context.WithTimeout(tabCtx, c.cfg.CommandTimeout)
	defer cancel()
	stop := context.AfterFunc(ctx, cancel)
	defer stop()

	return chromedp.Run(runCtx, actions...)
}

// attach opens a long-lived context for the tab and installs the activity hooks
func (c *Client) attach(id domain.TabID) {
	c.mu.Lock()
	browserCtx := c.browserCtx
	c.mu.Unlock()
	if browserCtx == nil {
		return
	}

	tabCtx, cancel := chromedp.NewContext(browserCtx, chromedp.WithTargetID(target.ID(id)))
	activity := debounce.New(c.cfg.ActivityDebounce, func() { c.reportActivity(id) })
	if !c.registry.bind(tabCtx, id, cancel, activity) {
		cancel()
		return
	}

	chromedp.ListenTarget(tabCtx, func(ev any) {
		if b, ok := ev.(*runtime.EventBindingCalled); ok && b.Name == bindingName {
			go c.onSignal(id, b.Payload)
		}
	})

	tab, _ := c.registry.get(id)
	if !scriptable(tab.URL) {
		return
	}
	var installed bool
	err := c.run(context.Background(), id,
		runtime.AddBinding(bindingName),
		chromedp.ActionFunc(func(ctx context.Context) error {
			_, err := page.AddScriptToEvaluateOnNewDocument(activityScript).Do(ctx)
			return err
		}),
		chromedp.Evaluate(activityScript, &installed),
	)
	if err != nil {
		lgr.Printf("[WARN] can't install activity hooks in tab %s (%s): %v", id, tab.URL, err)
	}
}

// onBrowserEvent runs on the DevTools event loop and must not block
func (c *Client) onBrowserEvent(ev any) {
	switch e := ev.(type) {
	case *target.EventTargetCreated:
		c.onTargetInfo(e.TargetInfo)
	case *target.EventTargetInfoChanged:
		c.onTargetInfo(e.TargetInfo)
	case *target.EventTargetDestroyed:
		id := domain.TabID(e.TargetID)
		p := c.registry.remove(id)
		if p == nil {
			return
		}
		go func() {
			activity, cancel := c.registry.handles(p)
			if activity != nil {
				activity.Stop()
			}
			if cancel != nil {
				cancel()
			}
			c.dispatch(func(ctx context.Context, h EventHandler) { h.OnTabRemoved(ctx, id) })
		}()
	}
}

// onTargetInfo tracks a created or changed target. Handlers hear about new tabs and url changes only,
// title updates and attach state flips are not navigations.
func (c *Client) onTargetInfo(info *target.Info) {
	tab, res := c.registry.upsert(info)
	if res != upsertCreated && res != upsertNavigated {
		return
	}
	go func() {
		if res == upsertCreated {
			c.attach(tab.ID)
		}
		c.dispatch(func(ctx context.Context, h EventHandler) { h.OnTabUpdated(ctx, tab) })
	}()
}

// onSignal handles a binding call from the page
func (c *Client) onSignal(id domain.TabID, payload string) {
	switch payload {
	case signalActivate:
		prev, ok := c.registry.activate(id)
		if !ok || prev == id {
			return
		}
		tab, _ := c.registry.get(id)
		c.dispatch(func(ctx context.Context, h EventHandler) { h.OnTabActivated(ctx, id, tab.URL) })
	case signalActivity:
		if _, activity, ok := c.registry.session(id); ok && activity != nil {
			activity.Trigger()
		}
	default:
		lgr.Printf("[DEBUG] unknown signal %q from tab %s", payload, id)
	}
}

// reportActivity sends a user activity message on behalf of the page
func (c *Client) reportActivity(id domain.TabID) {
	tab, ok := c.registry.get(id)
	if !ok {
		return
	}
	c.dispatch(func(ctx context.Context, h EventHandler) {
		h.HandleMessage(ctx, domain.Message{Type: domain.MsgUserActivity}, domain.Sender{TabID: id, URL: tab.URL})
	})
}

// dispatch calls fn with the current handler, events before Listen are dropped
func (c *Client) dispatch(fn func(ctx context.Context, h EventHandler)) {
	c.mu.Lock()
	h, ctx := c.handler, c.handlerCtx
	c.mu.Unlock()
	if h == nil {
		return
	}
	fn(ctx, h)
}
