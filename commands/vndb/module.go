// Package vndb has the visual novel lookup command.
package vndb

import (
	"github.com/starshine-sys/bcr"
	"github.com/tracreed/ebina/bot"
	"github.com/tracreed/ebina/common/log"
)

type Bot struct {
	*bot.Bot
}

func Setup(root *bot.Bot) {
	log.Debug("Adding VNDB commands")

	bot := &Bot{Bot: root}

	bot.Router.AddCommand(&bcr.Command{
		Name:    "vn",
		Aliases: []string{"vndb"},
		Summary: "Get information about a visual novel from VNDB.",
		Usage:   "<title>",
		Args:    bcr.MinArgs(1),
		Command: bot.Track("vn", bot.vn),
	})
}
