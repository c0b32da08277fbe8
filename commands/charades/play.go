package charades

import (
	"context"
	"strings"
	"time"

	"emperror.dev/errors"
	"github.com/diamondburned/arikawa/v3/api"
	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/dustin/go-humanize"
	"github.com/starshine-sys/bcr"
	"github.com/tracreed/ebina/common"
	"github.com/tracreed/ebina/db"
	"github.com/tracreed/ebina/options"
)

// GuessTime is how long players have to solve a charade.
const GuessTime = 60 * time.Second

// parseCategory matches s against the category names, ignoring case.
func parseCategory(s string) (db.Category, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "":
		return "", true
	case "tv show", "tv-show", "show":
		return db.CategoryTV, true
	}

	for _, c := range db.Categories {
		if string(c) == s {
			return c, true
		}
	}
	return "", false
}

func puzzleEmbed(c db.Charade, addedBy string) discord.Embed {
	e := discord.Embed{
		Title:       "Guess that " + strings.ToLower(c.Category.String()),
		Description: c.Puzzle,
		Color:       common.ColourCharades,
		Fields: []discord.EmbedField{{
			Name:   "Difficulty",
			Value:  c.Difficulty.String(),
			Inline: true,
		}},
	}

	if c.Hint != "" {
		e.Fields = append(e.Fields, discord.EmbedField{Name: "Hint", Value: c.Hint, Inline: true})
	}
	if addedBy != "" {
		e.Footer = &discord.EmbedFooter{Text: "Added by " + addedBy}
	}
	return e
}

func (bot *Bot) play(ctx *bcr.Context) (err error) {
	category, ok := parseCategory(ctx.RawArgs)
	if !ok {
		names := common.Map(db.Categories, func(c db.Category) string { return string(c) })
		_, err = ctx.Replyc(common.ColourRed, "Unknown category. Valid categories are: %v", strings.Join(names, ", "))
		return err
	}

	c, err := bot.DB.RandomCharade(bot.Context(), category)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			_, err = ctx.Replyc(common.ColourRed, "There are no charades yet.")
			return err
		}
		return bot.ReportError(ctx, err)
	}

	var addedBy string
	if u, err := ctx.State.User(c.UserID); err == nil {
		addedBy = u.Username
	}

	err = ctx.SendX("", puzzleEmbed(c, addedBy))
	if err != nil {
		return err
	}

	waitCtx, cancel := context.WithTimeout(bot.Context(), GuessTime)
	defer cancel()

	ev, ok := options.AwaitReply(waitCtx, ctx.State, ctx.Author.ID, ctx.Message.ChannelID, c.Solves)
	if !ok {
		return ctx.SendX("", discord.Embed{
			Title:       "Time is up",
			Description: "The right answer was: " + c.Solution,
			Color:       common.ColourRed,
		})
	}

	_, err = ctx.State.SendMessageComplex(ev.ChannelID, api.SendMessageData{
		Content:   "You got it right!",
		Reference: &discord.MessageReference{MessageID: ev.ID},
	})
	return err
}

func (bot *Bot) count(ctx *bcr.Context) (err error) {
	n, err := bot.DB.CharadeCount(bot.Context())
	if err != nil {
		return bot.ReportError(ctx, err)
	}

	_, err = ctx.Reply("There are %v charades.", humanize.Comma(n))
	return err
}
