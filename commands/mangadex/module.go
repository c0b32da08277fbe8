// Package mangadex has the MangaDex search command and shows info for MangaDex links.
package mangadex

import (
	"github.com/starshine-sys/bcr"
	"github.com/tracreed/ebina/bot"
	"github.com/tracreed/ebina/common/log"
)

type Bot struct {
	*bot.Bot
}

func Setup(root *bot.Bot) {
	log.Debug("Adding MangaDex commands")

	bot := &Bot{Bot: root}

	md := bot.Router.AddCommand(&bcr.Command{
		Name:    "mangadex",
		Aliases: []string{"md"},
		Summary: "Search MangaDex for manga.",
		Usage:   "<title>",
		Args:    bcr.MinArgs(1),

		Command: bot.Track("md_manga", bot.search),
	})

	md.AddSubcommand(&bcr.Command{
		Name:    "manga",
		Summary: "Search MangaDex for manga.",
		Usage:   "<title>",
		Args:    bcr.MinArgs(1),

		Command: bot.Track("md_manga", bot.search),
	})

	bot.WatchURL("mangadex.org", bot.titleLink)
}
