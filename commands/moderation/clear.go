package moderation

import (
	"strconv"
	"time"

	"emperror.dev/errors"
	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/starshine-sys/bcr"
	"github.com/tracreed/ebina/common"
)

const (
	minClear = 2
	maxClear = 100
	// bulk deletes only work on messages newer than two weeks
	maxClearAge = 14 * 24 * time.Hour
)

var errClearAmount = errors.Errorf("the amount has to be between %v and %v", minClear, maxClear)

func parseAmount(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.Errorf("%q isn't a number", s)
	}
	if n < minClear || n > maxClear {
		return 0, errClearAmount
	}
	return n, nil
}

// deletable returns the IDs of messages young enough to be bulk deleted.
func deletable(msgs []discord.Message, now time.Time) []discord.MessageID {
	ids := make([]discord.MessageID, 0, len(msgs))
	for _, m := range msgs {
		if now.Sub(m.ID.Time()) < maxClearAge {
			ids = append(ids, m.ID)
		}
	}
	return ids
}

func (bot *Bot) clear(ctx *bcr.Context) (err error) {
	n, err := parseAmount(ctx.Args[0])
	if err != nil {
		_, err = ctx.Replyc(common.ColourRed, "%v.", err)
		return err
	}

	msgs, err := ctx.State.MessagesBefore(ctx.Message.ChannelID, ctx.Message.ID, uint(n))
	if err != nil {
		return bot.ReportError(ctx, err)
	}

	// the command itself is removed too
	ids := append(deletable(msgs, time.Now()), ctx.Message.ID)

	err = ctx.State.DeleteMessages(ctx.Message.ChannelID, ids, auditReason("Cleared", ctx.Author))
	if err != nil {
		return bot.ReportError(ctx, err)
	}

	m, err := ctx.Send("", discord.Embed{
		Description: "Deleted " + strconv.Itoa(len(ids)-1) + " messages.",
		Color:       common.ColourGreen,
	})
	if err != nil {
		return err
	}

	time.AfterFunc(5*time.Second, func() {
		_ = ctx.State.DeleteMessage(m.ChannelID, m.ID, "")
	})
	return nil
}
