package general

import (
	"context"
	"strings"

	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/starshine-sys/bcr"
	"github.com/tracreed/ebina/common"
)

const maxPrefixLength = 32

func (bot *Bot) prefix(ctx *bcr.Context) (err error) {
	if !ctx.Message.GuildID.IsValid() {
		_, err = ctx.Replyc(common.ColourRed, "This command can only be used in a server.")
		return err
	}

	if ctx.RawArgs == "" {
		prefix, err := bot.GuildPrefix(context.Background(), ctx.Message.GuildID)
		if err != nil {
			return bot.ReportError(ctx, err)
		}

		if prefix == "" {
			_, err = ctx.Reply("This server uses the default prefix, ``%v``.", bcr.EscapeBackticks(bot.Config.Bot.Prefixes[0]))
			return err
		}
		_, err = ctx.Reply("This server's prefix is ``%v``.", bcr.EscapeBackticks(prefix))
		return err
	}

	if ctx.Guild == nil || ctx.Channel == nil || ctx.Member == nil {
		return nil
	}
	perms := discord.CalcOverwrites(*ctx.Guild, *ctx.Channel, *ctx.Member)
	if !perms.Has(discord.PermissionManageGuild) {
		_, err = ctx.Replyc(common.ColourRed, "You need the Manage Server permission to change the prefix.")
		return err
	}

	// prefixes can end in a space, like "ebina "
	prefix := strings.TrimLeft(ctx.RawArgs, " ")
	if len(prefix) > maxPrefixLength {
		_, err = ctx.Replyc(common.ColourRed, "That prefix is too long, it can be at most %v characters.", maxPrefixLength)
		return err
	}

	err = bot.SetGuildPrefix(context.Background(), ctx.Message.GuildID, prefix)
	if err != nil {
		return bot.ReportError(ctx, err)
	}

	return ctx.SendX("", discord.Embed{
		Title:       "Set prefix to",
		Description: "``" + bcr.EscapeBackticks(prefix) + "``",
		Color:       common.ColourGreen,
	})
}
