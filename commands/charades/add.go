package charades

import (
	"context"
	"fmt"
	"strings"

	"emperror.dev/errors"
	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/starshine-sys/bcr"
	"github.com/tracreed/ebina/common"
	"github.com/tracreed/ebina/db"
	"github.com/tracreed/ebina/options"
)

// skipHint is the answer that leaves a charade without a hint.
const skipHint = "none"

// choose asks the author to pick one of labels and returns its index.
// ok is false if the choice was cancelled or timed out, and the author has been told.
func (bot *Bot) choose(ctx *bcr.Context, title string, labels []string) (idx int, ok bool, err error) {
	set, err := options.NewChoiceSet(labels...)
	if err != nil {
		return 0, false, err
	}

	res, err := bot.Session(ctx.State).Run(bot.Context(), set, options.Presentation{
		Title:  title,
		Colour: common.ColourCharades,
	}, ctx.Author.ID, ctx.Message.ChannelID)
	if err != nil {
		return 0, false, err
	}

	if !res.Selected() {
		_, err = ctx.Replyc(common.ColourRed, "Adding charade %v.", res.Resolution)
		return 0, false, err
	}
	return res.Index, true, nil
}

// ask sends prompt and waits for any non-empty answer from the author.
func (bot *Bot) ask(ctx *bcr.Context, prompt string) (answer string, ok bool, err error) {
	err = ctx.SendX(prompt)
	if err != nil {
		return "", false, err
	}

	waitCtx, cancel := context.WithTimeout(bot.Context(), bot.Config.Bot.Timeout())
	defer cancel()

	ev, ok := options.AwaitReply(waitCtx, ctx.State, ctx.Author.ID, ctx.Message.ChannelID, func(s string) bool {
		return s != ""
	})
	if !ok {
		_, err = ctx.Replyc(common.ColourRed, "Adding charade timed out.")
		return "", false, err
	}
	return strings.TrimSpace(ev.Content), true, nil
}

func summaryEmbed(c db.Charade) discord.Embed {
	hint := c.Hint
	if hint == "" {
		hint = "None"
	}

	return discord.Embed{
		Title: fmt.Sprintf("Charade #%v added", c.ID),
		Color: common.ColourGreen,
		Fields: []discord.EmbedField{
			{Name: "Category", Value: c.Category.String(), Inline: true},
			{Name: "Difficulty", Value: c.Difficulty.String(), Inline: true},
			{Name: "Hint", Value: hint, Inline: true},
			{Name: "Puzzle", Value: c.Puzzle},
			{Name: "Solution", Value: c.Solution},
		},
	}
}

func (bot *Bot) add(ctx *bcr.Context) (err error) {
	if !bot.IsOwner(ctx.Author.ID) {
		_, err = ctx.Replyc(common.ColourRed, "Only the bot owner can add charades.")
		return err
	}

	c := db.Charade{UserID: ctx.Author.ID, Public: true}

	i, ok, err := bot.choose(ctx, "What is the category?", common.Map(db.Categories, db.Category.String))
	if !ok {
		return err
	}
	c.Category = db.Categories[i]

	i, ok, err = bot.choose(ctx, "What is the difficulty?", common.Map(db.Difficulties, db.Difficulty.String))
	if !ok {
		return err
	}
	c.Difficulty = db.Difficulties[i]

	if c.Puzzle, ok, err = bot.ask(ctx, "What is the puzzle?"); !ok {
		return err
	}
	if c.Hint, ok, err = bot.ask(ctx, "What is the hint? Type `"+skipHint+"` for no hint."); !ok {
		return err
	}
	if strings.EqualFold(c.Hint, skipHint) {
		c.Hint = ""
	}
	if c.Solution, ok, err = bot.ask(ctx, "What is the solution?"); !ok {
		return err
	}

	c, err = bot.DB.AddCharade(bot.Context(), c)
	if err != nil {
		if errors.Is(err, db.ErrDuplicate) {
			_, err = ctx.Replyc(common.ColourRed, "That charade already exists.")
			return err
		}
		return bot.ReportError(ctx, err)
	}

	return ctx.SendX("", summaryEmbed(c))
}
