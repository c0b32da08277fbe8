package cmd

import (
	"os"

	"github.com/tracreed/ebina/cmd/bot"
	"github.com/tracreed/ebina/cmd/migrate"
	"github.com/tracreed/ebina/cmd/webhook"
	"github.com/tracreed/ebina/common"
	"github.com/urfave/cli/v2"
)

var app = &cli.App{
	Name:    "Ebina",
	Usage:   "Discord bot for anime, manga, visual novel and osu! lookups",
	Version: common.Version(),

	Commands: []*cli.Command{
		bot.Command,
		webhook.Command,
		migrate.Command,
	},
}

func Run() error {
	return app.Run(os.Args)
}
