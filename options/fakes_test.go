package options

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/diamondburned/arikawa/v3/api"
	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/diamondburned/arikawa/v3/gateway"
)

// hub broadcasts events to every waiter whose filter matches, like arikawa's handler.
type hub struct {
	mu    sync.Mutex
	subs  map[int]*subscriber
	next  int
	calls int
}

type subscriber struct {
	filter func(any) bool
	ch     chan any
	// stays registered after a match, like ChanFor
	persistent bool
}

func newHub() *hub {
	return &hub{subs: map[int]*subscriber{}}
}

func (h *hub) WaitFor(ctx context.Context, filter func(any) bool) any {
	sub := &subscriber{filter: filter, ch: make(chan any, 1)}

	h.mu.Lock()
	id := h.next
	h.next++
	h.calls++
	h.subs[id] = sub
	h.mu.Unlock()

	defer func() {
		h.mu.Lock()
		delete(h.subs, id)
		h.mu.Unlock()
	}()

	select {
	case v := <-sub.ch:
		return v
	case <-ctx.Done():
		return nil
	}
}

func (h *hub) ChanFor(filter func(any) bool) (<-chan any, func()) {
	sub := &subscriber{filter: filter, ch: make(chan any, 64), persistent: true}

	h.mu.Lock()
	id := h.next
	h.next++
	h.calls++
	h.subs[id] = sub
	h.mu.Unlock()

	var once sync.Once
	return sub.ch, func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.subs, id)
			h.mu.Unlock()
		})
	}
}

func (h *hub) publish(ev any) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for id, sub := range h.subs {
		if sub.filter(ev) {
			sub.ch <- ev
			if !sub.persistent {
				delete(h.subs, id)
			}
		}
	}
}

func (h *hub) waitCalls() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.calls
}

// waitSubscribers blocks until n waiters or subscriptions are registered.
func (h *hub) waitSubscribers(t *testing.T, n int) {
	t.Helper()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		h.mu.Lock()
		got := len(h.subs)
		h.mu.Unlock()
		if got == n {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatalf("timed out waiting for %d subscribers", n)
}

var replyID discord.MessageID = 1
var replyMu sync.Mutex

func reply(user discord.UserID, channel discord.ChannelID, content string) *gateway.MessageCreateEvent {
	replyMu.Lock()
	replyID++
	id := replyID
	replyMu.Unlock()

	return &gateway.MessageCreateEvent{
		Message: discord.Message{
			ID:        id,
			ChannelID: channel,
			Author:    discord.User{ID: user},
			Content:   content,
		},
	}
}

// messenger records what would have been sent to Discord.
type messenger struct {
	mu sync.Mutex

	sendErr     error
	deleteErr   error
	deleteDelay time.Duration

	nextID  discord.MessageID
	sent    []api.SendMessageData
	edited  []discord.MessageID
	deleted []discord.MessageID
}

func newMessenger() *messenger {
	return &messenger{nextID: 1000}
}

func (m *messenger) SendMessageComplex(ch discord.ChannelID, data api.SendMessageData) (*discord.Message, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.sendErr != nil {
		return nil, m.sendErr
	}

	m.nextID++
	m.sent = append(m.sent, data)
	return &discord.Message{ID: m.nextID, ChannelID: ch}, nil
}

func (m *messenger) EditMessageComplex(ch discord.ChannelID, id discord.MessageID, data api.EditMessageData) (*discord.Message, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.edited = append(m.edited, id)
	return &discord.Message{ID: id, ChannelID: ch}, nil
}

func (m *messenger) DeleteMessage(ch discord.ChannelID, id discord.MessageID, _ api.AuditLogReason) error {
	m.mu.Lock()
	delay := m.deleteDelay
	m.mu.Unlock()

	time.Sleep(delay)

	m.mu.Lock()
	defer m.mu.Unlock()

	m.deleted = append(m.deleted, id)
	return m.deleteErr
}

func (m *messenger) sends() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sent)
}

func (m *messenger) wasDeleted(id discord.MessageID) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, d := range m.deleted {
		if d == id {
			return true
		}
	}
	return false
}
