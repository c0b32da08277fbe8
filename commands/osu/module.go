// Package osu has the osu! profile command.
package osu

import (
	"github.com/spf13/pflag"
	"github.com/starshine-sys/bcr"
	"github.com/tracreed/ebina/bot"
	"github.com/tracreed/ebina/common/log"
)

type Bot struct {
	*bot.Bot
}

func Setup(root *bot.Bot) {
	if root.Osu == nil {
		log.Info("No osu! client credentials set, not adding osu! commands")
		return
	}

	log.Debug("Adding osu! commands")

	bot := &Bot{Bot: root}

	bot.Router.AddCommand(&bcr.Command{
		Name:    "osu",
		Summary: "Show an osu! player's profile.",
		Usage:   "<user> [--mode osu|taiko|fruits|mania]",
		Args:    bcr.MinArgs(1),
		Flags: func(fs *pflag.FlagSet) *pflag.FlagSet {
			fs.StringP("mode", "m", "osu", "Game mode to show statistics for.")
			return fs
		},

		Command: bot.Track("osu", bot.user),
	})
}
