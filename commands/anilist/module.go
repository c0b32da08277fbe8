// Package anilist has commands for searching AniList and showing the airing schedule.
package anilist

import (
	"github.com/spf13/pflag"
	"github.com/starshine-sys/bcr"
	"github.com/tracreed/ebina/bot"
	"github.com/tracreed/ebina/clients/anilist"
	"github.com/tracreed/ebina/common/log"
)

type Bot struct {
	*bot.Bot
}

func adultFlag(fs *pflag.FlagSet) *pflag.FlagSet {
	fs.BoolP("adult", "a", false, "Include adult results (only in NSFW channels).")
	return fs
}

func Setup(root *bot.Bot) {
	log.Debug("Adding AniList commands")

	bot := &Bot{Bot: root}

	al := bot.Router.AddCommand(&bcr.Command{
		Name:    "anilist",
		Aliases: []string{"al"},
		Summary: "Search AniList for anime and manga.",
		Usage:   "<title>",
		Args:    bcr.MinArgs(1),
		Flags:   adultFlag,

		Command: bot.Track("al_search", bot.search(anilist.AnyType)),
	})

	al.AddSubcommand(&bcr.Command{
		Name:    "search",
		Summary: "Search AniList for anime and manga.",
		Usage:   "<title>",
		Args:    bcr.MinArgs(1),
		Flags:   adultFlag,

		Command: bot.Track("al_search", bot.search(anilist.AnyType)),
	})

	al.AddSubcommand(&bcr.Command{
		Name:    "anime",
		Summary: "Search AniList for anime.",
		Usage:   "<title>",
		Args:    bcr.MinArgs(1),
		Flags:   adultFlag,

		Command: bot.Track("al_anime", bot.search(anilist.Anime)),
	})

	al.AddSubcommand(&bcr.Command{
		Name:    "manga",
		Summary: "Search AniList for manga.",
		Usage:   "<title>",
		Args:    bcr.MinArgs(1),
		Flags:   adultFlag,

		Command: bot.Track("al_manga", bot.search(anilist.Manga)),
	})

	al.AddSubcommand(&bcr.Command{
		Name:    "schedule",
		Summary: "Show today's airing schedule.",

		Command: bot.Track("al_schedule", bot.schedule),
	})

	bot.WatchURL("anilist.co", bot.mediaLink)
}
