package migrate

import (
	"github.com/tracreed/ebina/bot"
	"github.com/tracreed/ebina/common/log"
	"github.com/tracreed/ebina/db"
	"github.com/urfave/cli/v2"
)

var Command = &cli.Command{
	Name:   "migrate",
	Usage:  "Run database migrations manually",
	Action: run,
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "Path to the configuration file",
			Value:   "config.toml",
		},
		&cli.BoolFlag{
			Name:    "force",
			Aliases: []string{"f"},
			Usage:   "Run migrations whether or not no_auto_migrate is set in the config.",
		},
	},
}

func run(c *cli.Context) error {
	conf, err := bot.ReadConfig(c.String("config"))
	if err != nil {
		return cli.Exit("Reading configuration: "+err.Error(), 1)
	}

	if conf.Auth.Postgres == "" {
		return cli.Exit("No database URL set in the configuration.", 1)
	}

	if !conf.Bot.NoAutoMigrate && !c.Bool("force") {
		return cli.Exit("Migrations are run automatically, and the --force flag is not set.", 1)
	}

	n, err := db.RunMigrations(conf.Auth.Postgres)
	if err != nil {
		return cli.Exit("Running migrations: "+err.Error(), 1)
	}

	log.Infof("Successfully ran %v migrations!", n)
	return nil
}
