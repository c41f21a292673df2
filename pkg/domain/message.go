package domain

import "context"

// MessageType names a message exchanged with pages
type MessageType string

// message types handled or sent by the engine
const (
	MsgUserActivity MessageType = "userActivity"
	MsgManualUnload MessageType = "manualUnload"
	MsgGetState     MessageType = "getState"
	MsgSaveState    MessageType = "saveState"
)

// Message is a typed request exchanged with a tab
type Message struct {
	Type MessageType `json:"type"`
}

// Sender identifies the tab a message came from, empty for messages from UI pages
type Sender struct {
	TabID TabID  `json:"tabId"`
	URL   string `json:"url"`
}

// SaveStateResponse is the answer of a page to MsgSaveState
type SaveStateResponse struct {
	Success bool       `json:"success"`
	State   *PageState `json:"state"`
	Error   string     `json:"error,omitempty"`
}

// StateReply answers MsgGetState
type StateReply struct {
	State *TabSnapshot `json:"state"`
}

// UnloadReply answers MsgManualUnload
type UnloadReply struct {
	Success  bool   `json:"success"`
	Unloaded int    `json:"unloaded"`
	Failed   int    `json:"failed"`
	Error    string `json:"error,omitempty"`
}

// ErrorReply answers a message whose handling failed
type ErrorReply struct {
	Error string `json:"error"`
}

// ReplyKind tags the outcome of message handling
type ReplyKind int

// reply kinds
const (
	ReplyUnhandled ReplyKind = iota
	ReplyHandled
	ReplyAsync
)

// Reply is the result of handling a message. Handled replies carry Value (possibly nil when no
// answer is needed), async replies deliver exactly one value on Async.
type Reply struct {
	Kind  ReplyKind
	Value any
	Async <-chan any
}

// Handled makes a synchronous reply
func Handled(v any) Reply { return Reply{Kind: ReplyHandled, Value: v} }

// HandledAsync makes a reply delivered later on ch
func HandledAsync(ch <-chan any) Reply { return Reply{Kind: ReplyAsync, Async: ch} }

// Unhandled marks a message nobody handles
func Unhandled() Reply { return Reply{Kind: ReplyUnhandled} }

// Wait returns the reply value, blocking for async replies until delivered or ctx is done
func (r Reply) Wait(ctx context.Context) (any, error) {
	if r.Kind != ReplyAsync {
		return r.Value, nil
	}
	select {
	case v := <-r.Async:
		return v, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
