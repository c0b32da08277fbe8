// Package owner has commands only the bot owners can use.
package owner

import (
	"strconv"

	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/starshine-sys/bcr"
	"github.com/tracreed/ebina/bot"
	"github.com/tracreed/ebina/common"
	"github.com/tracreed/ebina/common/log"
)

type Bot struct {
	*bot.Bot
}

func Setup(root *bot.Bot) {
	log.Debug("Adding owner commands")

	bot := &Bot{Bot: root}

	bot.Router.AddCommand(&bcr.Command{
		Name:    "quit",
		Summary: "Shut down the bot.",

		Command: bot.ownerOnly(bot.quit),
	})

	bot.Router.AddCommand(&bcr.Command{
		Name:    "leave",
		Summary: "Leave a server.",
		Usage:   "[guild ID]",

		Command: bot.ownerOnly(bot.leave),
	})
}

func (bot *Bot) ownerOnly(fn func(*bcr.Context) error) func(*bcr.Context) error {
	return func(ctx *bcr.Context) (err error) {
		if !bot.IsOwner(ctx.Author.ID) {
			_, err = ctx.Replyc(common.ColourRed, "This command can only be used by the bot owner.")
			return err
		}
		return fn(ctx)
	}
}

func (bot *Bot) quit(ctx *bcr.Context) (err error) {
	log.Infof("Shutdown requested by %v (%v)", ctx.Author.Tag(), ctx.Author.ID)

	_, err = ctx.Reply("Shutting down!")
	bot.Stop()
	return err
}

// leaveTarget returns the guild named in args, or the current one.
func leaveTarget(args []string, current discord.GuildID) (discord.GuildID, bool) {
	if len(args) == 0 {
		return current, current.IsValid()
	}

	id, err := strconv.ParseUint(args[0], 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return discord.GuildID(id), true
}

func (bot *Bot) leave(ctx *bcr.Context) (err error) {
	id, ok := leaveTarget(ctx.Args, ctx.Message.GuildID)
	if !ok {
		_, err = ctx.Replyc(common.ColourRed, "You need to give a valid server ID.")
		return err
	}

	s, _ := bot.Router.StateFromGuildID(id)
	g, err := s.Guild(id)
	if err != nil {
		_, err = ctx.Replyc(common.ColourRed, "I'm not in a server with that ID.")
		return err
	}

	// reply first, the current channel might be gone afterwards
	_, err = ctx.Reply("Leaving **%v** (%v).", g.Name, g.ID)
	if err != nil {
		return err
	}

	err = s.LeaveGuild(id)
	if err != nil {
		return bot.ReportError(ctx, err)
	}
	log.Infof("Left guild %v (%v)", g.Name, g.ID)
	return nil
}
