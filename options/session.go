package options

import (
	"context"
	"strconv"
	"strings"
	"sync"
	"time"

	"emperror.dev/errors"
	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/diamondburned/arikawa/v3/gateway"
	"github.com/tracreed/ebina/common"
	"github.com/tracreed/ebina/common/log"
)

// Session runs option lists.
// A single Session can be shared, every Run is independent.
type Session struct {
	Messenger Messenger
	Events    common.StateSubscriber

	// Timeout defaults to DefaultTimeout.
	Timeout time.Duration
}

// State can both send messages and subscribe to events, usually a *state.State.
type State interface {
	Messenger
	common.StateSubscriber
}

// NewSession returns a Session using s for both sending and reading replies.
func NewSession(s State, timeout time.Duration) *Session {
	return &Session{Messenger: s, Events: s, Timeout: timeout}
}

// pendingChoice is the state of one Run.
type pendingChoice struct {
	requester discord.UserID
	channel   discord.ChannelID
	message   PresentedMessage
	deadline  time.Time

	mu         sync.Mutex
	resolution Resolution
	index      int
}

// resolve moves the choice out of Pending. Only the first call has any effect.
func (p *pendingChoice) resolve(r Resolution, index int) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.resolution != Pending || r == Pending {
		return false
	}

	p.resolution = r
	p.index = index
	return true
}

func (p *pendingChoice) state() (Resolution, int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.resolution, p.index
}

// Run shows set to requester in channel and waits for them to pick an option.
//
// Only an invalid configuration or a failed send return an error.
// A cancelled or timed out choice is returned as a Result with the list already deleted;
// a selection leaves the list in place if pres.EditAfterChoice is set.
// A set with a single option is selected immediately without waiting.
func (s *Session) Run(ctx context.Context, set ChoiceSet, pres Presentation, requester discord.UserID, channel discord.ChannelID) (Result, error) {
	if err := pres.Validate(); err != nil {
		return Result{Index: -1}, err
	}
	if set.Len() == 0 {
		return Result{Index: -1}, errors.WithMessage(ErrInvalidConfig, "no options given")
	}

	msg, lines, err := Present(s.Messenger, channel, set, pres)
	if err != nil {
		return Result{Index: -1}, err
	}

	pc := &pendingChoice{
		requester: requester,
		channel:   channel,
		message:   msg,
		deadline:  time.Now().Add(s.timeout()),
	}

	// one option and "Cancel"
	if lines == 2 {
		pc.resolve(Selected, 0)
	} else {
		s.await(ctx, pc, set.Len())
	}

	return s.finish(pc, pres), nil
}

func (s *Session) timeout() time.Duration {
	if s.Timeout <= 0 {
		return DefaultTimeout
	}
	return s.Timeout
}

// await reads replies until one resolves pc or the deadline passes.
// Out of range numbers are ignored and don't move the deadline.
// Every reply is deleted in the background so the subscription is never left unread;
// await returns once those deletes are done.
func (s *Session) await(ctx context.Context, pc *pendingChoice, count int) {
	var cleaning sync.WaitGroup
	defer cleaning.Wait()

	ctx, cancel := context.WithDeadline(ctx, pc.deadline)
	defer cancel()

	replies, stop := Correlate(s.Events, pc.requester, pc.channel)
	defer stop()

	for {
		var ev *gateway.MessageCreateEvent
		select {
		case <-ctx.Done():
			pc.resolve(TimedOut, -1)
			return
		case v := <-replies:
			var ok bool
			if ev, ok = v.(*gateway.MessageCreateEvent); !ok {
				continue
			}
		}

		cleaning.Add(1)
		go func(msg PresentedMessage) {
			defer cleaning.Done()
			Clean(s.Messenger, msg)
		}(PresentedMessage{ChannelID: ev.ChannelID, MessageID: ev.ID})

		reply := strings.TrimSpace(ev.Content)
		if strings.EqualFold(reply, cancelKeyword) {
			pc.resolve(Cancelled, -1)
			return
		}

		n, err := strconv.Atoi(reply)
		if err == nil && n >= 1 && n <= count {
			pc.resolve(Selected, n-1)
			return
		}

		log.Debugf("Ignoring out of range option %q from %v in %v (%d options)", reply, pc.requester, pc.channel, count)
	}
}

func (s *Session) finish(pc *pendingChoice, pres Presentation) Result {
	r, index := pc.state()
	if r != Selected {
		Clean(s.Messenger, pc.message)
		return Result{Resolution: r, Index: -1}
	}

	if !pres.EditAfterChoice {
		Clean(s.Messenger, pc.message)
	}

	return Result{
		Resolution: Selected,
		Index:      index,
		Message:    pc.message,
		Kept:       pres.EditAfterChoice,
	}
}
