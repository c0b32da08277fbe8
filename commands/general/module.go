// Package general has the utility commands, such as help, ping and prefix.
package general

import (
	"github.com/starshine-sys/bcr"
	"github.com/tracreed/ebina/bot"
	"github.com/tracreed/ebina/common/log"
)

type Bot struct {
	*bot.Bot
}

func Setup(root *bot.Bot) {
	log.Debug("Adding general commands")

	bot := &Bot{Bot: root}

	bot.Router.AddCommand(&bcr.Command{
		Name:    "help",
		Aliases: []string{"h"},
		Summary: "Show a list of commands, or help for a single command.",
		Usage:   "[command]",

		Command: bot.Track("help", bot.help),
	})

	bot.Router.AddCommand(&bcr.Command{
		Name:    "ping",
		Summary: "Show the bot's latency and other stats.",

		Command: bot.Track("ping", bot.ping),
	})

	bot.Router.AddCommand(&bcr.Command{
		Name:    "invite",
		Summary: "Invite the bot to your server.",

		Command: bot.Track("invite", bot.invite),
	})

	bot.Router.AddCommand(&bcr.Command{
		Name:        "prefix",
		Summary:     "Show or change this server's prefix.",
		Description: "Changing the prefix requires the Manage Server permission. Set it to one of the default prefixes to remove the custom prefix.",
		Usage:       "[new prefix]",

		Command: bot.Track("prefix", bot.prefix),
	})

	if bot.Weather != nil {
		bot.Router.AddCommand(&bcr.Command{
			Name:    "weather",
			Aliases: []string{"w"},
			Summary: "Get the current weather in a city.",
			Usage:   "<city>",
			Args:    bcr.MinArgs(1),

			Command: bot.Track("weather", bot.weather),
		})
	}

	if bot.Wolfram != nil {
		bot.Router.AddCommand(&bcr.Command{
			Name:    "wolf",
			Aliases: []string{"wolfram"},
			Summary: "Ask Wolfram|Alpha about anything.",
			Usage:   "<query>",
			Args:    bcr.MinArgs(1),

			Command: bot.Track("wolfram", bot.wolf),
		})
	}

	if bot.SauceNAO != nil {
		bot.Router.AddCommand(&bcr.Command{
			Name:    "sauce",
			Summary: "Find the source of an image with SauceNAO.",
			Usage:   "<image link> or <attached image>",

			Command: bot.Track("sauce", bot.sauce),
		})
	}
}
