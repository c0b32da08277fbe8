// Package moderation has server moderation and info commands.
package moderation

import (
	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/starshine-sys/bcr"
	"github.com/tracreed/ebina/bot"
	"github.com/tracreed/ebina/common/log"
)

type Bot struct {
	*bot.Bot
}

func Setup(root *bot.Bot) {
	log.Debug("Adding moderation commands")

	bot := &Bot{Bot: root}

	bot.Router.AddCommand(&bcr.Command{
		Name:    "ban",
		Summary: "Ban the mentioned users.",
		Usage:   "<@users...>",
		Args:    bcr.MinArgs(1),

		Permissions: discord.PermissionBanMembers,
		Command:     bot.Track("ban", bot.ban),
	})

	bot.Router.AddCommand(&bcr.Command{
		Name:    "kick",
		Summary: "Kick the mentioned users.",
		Usage:   "<@users...>",
		Args:    bcr.MinArgs(1),

		Permissions: discord.PermissionKickMembers,
		Command:     bot.Track("kick", bot.kick),
	})

	bot.Router.AddCommand(&bcr.Command{
		Name:    "userinfo",
		Aliases: []string{"uinfo", "whois"},
		Summary: "Show information about a user.",
		Usage:   "[user]",

		Command: bot.Track("uinfo", bot.userInfo),
	})

	bot.Router.AddCommand(&bcr.Command{
		Name:    "guildinfo",
		Aliases: []string{"ginfo", "serverinfo"},
		Summary: "Show information about this server.",

		Command: bot.Track("guildinfo", bot.guildInfo),
	})

	bot.Router.AddCommand(&bcr.Command{
		Name:    "avatar",
		Aliases: []string{"av"},
		Summary: "Show a user's avatar.",
		Usage:   "[user]",

		Command: bot.Track("avatar", bot.avatar),
	})

	bot.Router.AddCommand(&bcr.Command{
		Name:        "clear",
		Aliases:     []string{"clr"},
		Summary:     "Delete recent messages in this channel.",
		Description: "Deletes between 2 and 100 messages. Messages older than two weeks can't be deleted.",
		Usage:       "<amount>",
		Args:        bcr.MinArgs(1),

		Permissions: discord.PermissionManageMessages,
		Command:     bot.Track("clear", bot.clear),
	})
}
