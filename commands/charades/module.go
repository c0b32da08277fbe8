// Package charades has the charades game, where players guess a title from emojis.
package charades

import (
	"github.com/starshine-sys/bcr"
	"github.com/tracreed/ebina/bot"
	"github.com/tracreed/ebina/common/log"
)

type Bot struct {
	*bot.Bot
}

func Setup(root *bot.Bot) {
	log.Debug("Adding charades commands")

	bot := &Bot{Bot: root}

	ch := bot.Router.AddCommand(&bcr.Command{
		Name:        "charades",
		Aliases:     []string{"ch"},
		Summary:     "Guess the anime, game or show from the emojis!",
		Description: "Plays a random charade. You have a minute to type the solution.",
		Usage:       "[category]",

		Command: bot.Track("charades", bot.play),
	})

	ch.AddSubcommand(&bcr.Command{
		Name:    "add",
		Summary: "Add a new charade.",

		Command: bot.Track("charades_add", bot.add),
	})

	ch.AddSubcommand(&bcr.Command{
		Name:    "count",
		Summary: "Show how many charades there are.",

		Command: bot.Track("charades_count", bot.count),
	})
}
