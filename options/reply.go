package options

import (
	"context"
	"strconv"
	"strings"

	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/diamondburned/arikawa/v3/gateway"
	"github.com/tracreed/ebina/common"
)

// IsChoiceReply returns true if content answers an option list:
// a positive integer or "cancel" in any case, ignoring surrounding whitespace.
func IsChoiceReply(content string) bool {
	content = strings.TrimSpace(content)
	if strings.EqualFold(content, cancelKeyword) {
		return true
	}

	n, err := strconv.Atoi(content)
	return err == nil && n > 0
}

// AwaitReply waits for the next message by userID in channelID whose trimmed content passes accept.
// Other messages are left alone, so any number of waits can run at once.
// ok is false if ctx is done first.
func AwaitReply(ctx context.Context, w common.StateWaiter, userID discord.UserID, channelID discord.ChannelID, accept func(string) bool) (ev *gateway.MessageCreateEvent, ok bool) {
	return common.WaitFor(ctx, w, func(ev *gateway.MessageCreateEvent) bool {
		return ev.Author.ID == userID &&
			ev.ChannelID == channelID &&
			accept(strings.TrimSpace(ev.Content))
	})
}

// Correlate subscribes to answers to an option list from userID in channelID.
// The subscription stays open until cancel is called, so answers sent back to back are all delivered.
// Only *gateway.MessageCreateEvent values are sent on replies.
func Correlate(w common.StateSubscriber, userID discord.UserID, channelID discord.ChannelID) (replies <-chan any, cancel func()) {
	return w.ChanFor(func(v any) bool {
		ev, ok := v.(*gateway.MessageCreateEvent)
		return ok &&
			ev.Author.ID == userID &&
			ev.ChannelID == channelID &&
			IsChoiceReply(ev.Content)
	})
}
