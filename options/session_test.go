package options

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/google/go-cmp/cmp"
)

const (
	user    discord.UserID    = 100
	other   discord.UserID    = 101
	channel discord.ChannelID = 200
)

type outcome struct {
	res Result
	err error
}

func runAsync(s *Session, set ChoiceSet, pres Presentation, u discord.UserID, ch discord.ChannelID) <-chan outcome {
	out := make(chan outcome, 1)
	go func() {
		res, err := s.Run(context.Background(), set, pres, u, ch)
		out <- outcome{res, err}
	}()
	return out
}

func wait(t *testing.T, out <-chan outcome) outcome {
	t.Helper()

	select {
	case o := <-out:
		return o
	case <-time.After(3 * time.Second):
		t.Fatal("session did not resolve")
	}
	return outcome{}
}

func mustSet(t *testing.T, labels ...string) ChoiceSet {
	t.Helper()

	set, err := NewChoiceSet(labels...)
	if err != nil {
		t.Fatalf("NewChoiceSet(%q): %v", labels, err)
	}
	return set
}

func TestSingleOptionSelectsImmediately(t *testing.T) {
	for _, edit := range []bool{true, false} {
		h, m := newHub(), newMessenger()
		s := &Session{Messenger: m, Events: h, Timeout: time.Second}

		res, err := s.Run(context.Background(), mustSet(t, "Steins;Gate"), Presentation{Title: "VNDB", EditAfterChoice: edit}, user, channel)
		if err != nil {
			t.Fatalf("Run: %v", err)
		}

		want := Result{
			Resolution: Selected,
			Index:      0,
			Message:    PresentedMessage{ChannelID: channel, MessageID: 1001},
			Kept:       edit,
		}
		if diff := cmp.Diff(want, res); diff != "" {
			t.Errorf("edit=%v: result mismatch (-want +got):\n%s", edit, diff)
		}

		if n := h.waitCalls(); n != 0 {
			t.Errorf("edit=%v: waited for a reply %d times, want 0", edit, n)
		}
		if m.sends() != 1 {
			t.Errorf("edit=%v: sent %d messages, want 1", edit, m.sends())
		}
		if got := m.wasDeleted(1001); got == edit {
			t.Errorf("edit=%v: list deleted = %v", edit, got)
		}
	}
}

func TestNumericReplySelects(t *testing.T) {
	h, m := newHub(), newMessenger()
	s := &Session{Messenger: m, Events: h, Timeout: 2 * time.Second}

	out := runAsync(s, mustSet(t, "Naruto", "One Piece"), Presentation{Title: "AniList", EditAfterChoice: true}, user, channel)
	h.waitSubscribers(t, 1)

	ev := reply(user, channel, " 2 ")
	h.publish(ev)

	o := wait(t, out)
	if o.err != nil {
		t.Fatalf("Run: %v", o.err)
	}

	want := Result{
		Resolution: Selected,
		Index:      1,
		Message:    PresentedMessage{ChannelID: channel, MessageID: 1001},
		Kept:       true,
	}
	if diff := cmp.Diff(want, o.res); diff != "" {
		t.Errorf("result mismatch (-want +got):\n%s", diff)
	}

	if body := m.sent[0].Embeds[0].Description; body != "1. Naruto\n2. One Piece\nCancel" {
		t.Errorf("body = %q", body)
	}
	if !m.wasDeleted(ev.ID) {
		t.Error("reply was not deleted")
	}
	if m.wasDeleted(1001) {
		t.Error("list was deleted even though it should be kept for editing")
	}

	if _, err := Render(m, o.res, "", discord.Embed{Title: "One Piece"}); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if diff := cmp.Diff([]discord.MessageID{1001}, m.edited); diff != "" {
		t.Errorf("edited mismatch (-want +got):\n%s", diff)
	}
}

func TestSelectionWithoutEditDeletesList(t *testing.T) {
	h, m := newHub(), newMessenger()
	s := &Session{Messenger: m, Events: h, Timeout: 2 * time.Second}

	out := runAsync(s, mustSet(t, "Easy", "Medium", "Hard"), Presentation{Title: "Difficulty"}, user, channel)
	h.waitSubscribers(t, 1)
	h.publish(reply(user, channel, "3"))

	o := wait(t, out)
	if !o.res.Selected() || o.res.Index != 2 {
		t.Fatalf("got %+v, want selection of index 2", o.res)
	}
	if o.res.Message.MessageID != 1001 || o.res.Kept {
		t.Errorf("got message %v kept=%v, want handle 1001 not kept", o.res.Message.MessageID, o.res.Kept)
	}
	if !m.wasDeleted(1001) {
		t.Error("list was not deleted")
	}

	// not kept, so the result is sent as a new message
	if _, err := Render(m, o.res, "Hard it is"); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if m.sends() != 2 || len(m.edited) != 0 {
		t.Errorf("sends = %d, edits = %d; want 2 and 0", m.sends(), len(m.edited))
	}
}

func TestCancel(t *testing.T) {
	for _, word := range []string{"cancel", "CANCEL", "  Cancel\n"} {
		h, m := newHub(), newMessenger()
		s := &Session{Messenger: m, Events: h, Timeout: 2 * time.Second}

		out := runAsync(s, mustSet(t, "a", "b"), Presentation{Title: "t", EditAfterChoice: true}, user, channel)
		h.waitSubscribers(t, 1)
		h.publish(reply(user, channel, word))

		o := wait(t, out)
		if o.err != nil {
			t.Fatalf("%q: Run: %v", word, o.err)
		}
		if o.res.Resolution != Cancelled || o.res.Selected() {
			t.Errorf("%q: resolution = %v, want cancelled", word, o.res.Resolution)
		}
		if !m.wasDeleted(1001) {
			t.Errorf("%q: list was not deleted", word)
		}
		if _, err := Render(m, o.res, "x"); !errors.Is(err, ErrNotSelected) {
			t.Errorf("%q: Render error = %v, want ErrNotSelected", word, err)
		}
	}
}

func TestTimeout(t *testing.T) {
	h, m := newHub(), newMessenger()
	s := &Session{Messenger: m, Events: h, Timeout: 50 * time.Millisecond}

	start := time.Now()
	res, err := s.Run(context.Background(), mustSet(t, "a", "b"), Presentation{Title: "t", EditAfterChoice: true}, user, channel)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if res.Resolution != TimedOut {
		t.Errorf("resolution = %v, want timed out", res.Resolution)
	}
	if res.Index != -1 || res.Message.IsValid() {
		t.Errorf("got %+v, want no index or message", res)
	}
	if time.Since(start) < 50*time.Millisecond {
		t.Error("returned before the timeout")
	}
	if !m.wasDeleted(1001) {
		t.Error("list was not deleted")
	}
}

func TestContextCancelledCountsAsTimeout(t *testing.T) {
	h, m := newHub(), newMessenger()
	s := &Session{Messenger: m, Events: h, Timeout: time.Minute}

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		for h.waitCalls() == 0 {
			time.Sleep(time.Millisecond)
		}
		cancel()
	}()

	res, err := s.Run(ctx, mustSet(t, "a", "b"), Presentation{Title: "t"}, user, channel)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.Resolution != TimedOut || !m.wasDeleted(1001) {
		t.Errorf("got %v (deleted=%v), want timed out and deleted", res.Resolution, m.wasDeleted(1001))
	}
}

func TestOutOfRangeIsIgnored(t *testing.T) {
	t.Run("then nothing", func(t *testing.T) {
		h, m := newHub(), newMessenger()
		s := &Session{Messenger: m, Events: h, Timeout: 150 * time.Millisecond}

		start := time.Now()
		out := runAsync(s, mustSet(t, "a", "b"), Presentation{Title: "t", EditAfterChoice: true}, user, channel)
		h.waitSubscribers(t, 1)
		h.publish(reply(user, channel, "99"))

		o := wait(t, out)
		if o.res.Resolution != TimedOut {
			t.Errorf("resolution = %v, want timed out", o.res.Resolution)
		}
		if o.res.Index != -1 {
			t.Errorf("index = %d, want -1", o.res.Index)
		}
		// the deadline is fixed at the start, an ignored reply doesn't push it back
		if d := time.Since(start); d > time.Second {
			t.Errorf("took %v", d)
		}
		if !m.wasDeleted(1001) {
			t.Error("list was not deleted")
		}
	})

	t.Run("then valid", func(t *testing.T) {
		h, m := newHub(), newMessenger()
		s := &Session{Messenger: m, Events: h, Timeout: 2 * time.Second}

		out := runAsync(s, mustSet(t, "a", "b"), Presentation{Title: "t", EditAfterChoice: true}, user, channel)
		h.waitSubscribers(t, 1)
		ignored := reply(user, channel, "99")
		h.publish(ignored)
		h.publish(reply(user, channel, "0"))
		h.publish(reply(user, channel, "1"))

		o := wait(t, out)
		if !o.res.Selected() || o.res.Index != 0 {
			t.Errorf("got %+v, want index 0", o.res)
		}
		if m.wasDeleted(1001) {
			t.Error("list was deleted")
		}
		if !m.wasDeleted(ignored.ID) {
			t.Error("ignored reply was not deleted")
		}
	})

	t.Run("then valid during slow delete", func(t *testing.T) {
		h, m := newHub(), newMessenger()
		m.deleteDelay = 100 * time.Millisecond
		s := &Session{Messenger: m, Events: h, Timeout: time.Second}

		out := runAsync(s, mustSet(t, "a", "b", "c"), Presentation{Title: "t", EditAfterChoice: true}, user, channel)
		h.waitSubscribers(t, 1)

		ignored := reply(user, channel, "99")
		h.publish(ignored)
		// the ignored reply is still being deleted
		time.Sleep(20 * time.Millisecond)
		h.publish(reply(user, channel, "2"))

		o := wait(t, out)
		if !o.res.Selected() || o.res.Index != 1 {
			t.Fatalf("got %v index %d, want selection of index 1", o.res.Resolution, o.res.Index)
		}
		if !m.wasDeleted(ignored.ID) {
			t.Error("ignored reply was not deleted before Run returned")
		}
		if n := h.waitCalls(); n != 1 {
			t.Errorf("subscribed %d times, want 1", n)
		}
	})
}

func TestIgnoresOtherUsersAndChannels(t *testing.T) {
	h, m := newHub(), newMessenger()
	s := &Session{Messenger: m, Events: h, Timeout: 2 * time.Second}

	out := runAsync(s, mustSet(t, "a", "b", "c"), Presentation{Title: "t", EditAfterChoice: true}, user, channel)
	h.waitSubscribers(t, 1)

	type msg struct {
		u discord.UserID
		c discord.ChannelID
		s string
	}
	ignored := []msg{
		{other, channel, "1"},
		{user, channel + 1, "1"},
		{user, channel, "the first one"},
		{user, channel, "-2"},
	}
	for _, i := range ignored {
		ev := reply(i.u, i.c, i.s)
		h.publish(ev)
		if m.wasDeleted(ev.ID) {
			t.Errorf("message %q from %v in %v was deleted", i.s, i.u, i.c)
		}
	}

	select {
	case o := <-out:
		t.Fatalf("session resolved early: %+v", o.res)
	default:
	}

	h.publish(reply(user, channel, "3"))
	if o := wait(t, out); o.res.Index != 2 {
		t.Errorf("index = %d, want 2", o.res.Index)
	}
}

func TestConcurrentSessionsDoNotInterfere(t *testing.T) {
	h, m := newHub(), newMessenger()
	s := &Session{Messenger: m, Events: h, Timeout: 2 * time.Second}

	const (
		userA, userB discord.UserID    = 1, 2
		chanA, chanB discord.ChannelID = 10, 20
	)

	outA := runAsync(s, mustSet(t, "a1", "a2", "a3"), Presentation{Title: "A", EditAfterChoice: true}, userA, chanA)
	outB := runAsync(s, mustSet(t, "b1", "b2"), Presentation{Title: "B", EditAfterChoice: true}, userB, chanB)
	h.waitSubscribers(t, 2)

	// each reply only fits one session
	h.publish(reply(userB, chanB, "cancel"))
	h.publish(reply(userA, chanA, "3"))

	a, b := wait(t, outA), wait(t, outB)
	if a.res.Resolution != Selected || a.res.Index != 2 {
		t.Errorf("A = %+v, want selection of index 2", a.res)
	}
	if b.res.Resolution != Cancelled {
		t.Errorf("B = %v, want cancelled", b.res.Resolution)
	}
	if a.res.Message.ChannelID != chanA {
		t.Errorf("A message in %v, want %v", a.res.Message.ChannelID, chanA)
	}
}

func TestManyConcurrentSessions(t *testing.T) {
	h, m := newHub(), newMessenger()
	s := &Session{Messenger: m, Events: h, Timeout: 3 * time.Second}

	const n = 20
	var wg sync.WaitGroup
	results := make([]Result, n)

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			res, err := s.Run(context.Background(), mustSet(t, "x", "y"), Presentation{Title: "t", EditAfterChoice: true}, discord.UserID(i+1), channel)
			if err != nil {
				t.Errorf("session %d: %v", i, err)
			}
			results[i] = res
		}(i)
	}

	h.waitSubscribers(t, n)
	for i := 0; i < n; i++ {
		h.publish(reply(discord.UserID(i+1), channel, []string{"1", "2"}[i%2]))
	}
	wg.Wait()

	for i, r := range results {
		if !r.Selected() || r.Index != i%2 {
			t.Errorf("session %d = %+v, want index %d", i, r, i%2)
		}
	}
}

func TestCleanupErrorsAreSwallowed(t *testing.T) {
	h, m := newHub(), newMessenger()
	m.deleteErr = errors.New("Unknown Message")
	s := &Session{Messenger: m, Events: h, Timeout: 2 * time.Second}

	out := runAsync(s, mustSet(t, "a", "b"), Presentation{Title: "t"}, user, channel)
	h.waitSubscribers(t, 1)
	h.publish(reply(user, channel, "cancel"))

	o := wait(t, out)
	if o.err != nil {
		t.Fatalf("Run returned %v, want nil", o.err)
	}
	if o.res.Resolution != Cancelled {
		t.Errorf("resolution = %v, want cancelled", o.res.Resolution)
	}

	// deleting twice is harmless too
	Clean(m, PresentedMessage{ChannelID: channel, MessageID: 1001})
}

func TestInvalidConfigSendsNothing(t *testing.T) {
	tests := []struct {
		name string
		pres Presentation
		set  ChoiceSet
	}{
		{"no title", Presentation{}, mustSet(t, "a")},
		{"blank title", Presentation{Title: "  "}, mustSet(t, "a")},
		{"long title", Presentation{Title: strings.Repeat("あ", MaxTitleLength+1)}, mustSet(t, "a")},
		{"nameless author", Presentation{Title: "t", Author: &discord.EmbedAuthor{}}, mustSet(t, "a")},
		{"empty set", Presentation{Title: "t"}, ChoiceSet{}},
		{"long body", Presentation{Title: "t"}, mustSet(t, strings.Repeat("a", MaxBodyLength), "b")},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			h, m := newHub(), newMessenger()
			s := &Session{Messenger: m, Events: h}

			_, err := s.Run(context.Background(), test.set, test.pres, user, channel)
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("error = %v, want ErrInvalidConfig", err)
			}
			if m.sends() != 0 || h.waitCalls() != 0 {
				t.Errorf("sends = %d, waits = %d; want none", m.sends(), h.waitCalls())
			}
		})
	}
}

func TestTitleAtLimitIsValid(t *testing.T) {
	p := Presentation{Title: strings.Repeat("あ", MaxTitleLength)}
	if err := p.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestDeliveryError(t *testing.T) {
	h, m := newHub(), newMessenger()
	sendErr := errors.New("Missing Permissions")
	m.sendErr = sendErr
	s := &Session{Messenger: m, Events: h}

	_, err := s.Run(context.Background(), mustSet(t, "a", "b"), Presentation{Title: "t"}, user, channel)

	var de *DeliveryError
	if !errors.As(err, &de) {
		t.Fatalf("error = %v, want a DeliveryError", err)
	}
	if !errors.Is(err, sendErr) || de.ChannelID != channel {
		t.Errorf("DeliveryError = %+v", de)
	}
	if h.waitCalls() != 0 {
		t.Error("waited for a reply after a failed send")
	}
}

func TestResolveOnce(t *testing.T) {
	pc := &pendingChoice{}

	if pc.resolve(Pending, 0) {
		t.Error("resolved to Pending")
	}
	if !pc.resolve(Selected, 1) {
		t.Fatal("first resolve failed")
	}
	if pc.resolve(Cancelled, -1) || pc.resolve(Selected, 0) {
		t.Error("resolved twice")
	}

	if r, i := pc.state(); r != Selected || i != 1 {
		t.Errorf("state = %v, %d; want selected, 1", r, i)
	}
}
