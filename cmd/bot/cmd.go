package bot

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"emperror.dev/errors"
	"github.com/getsentry/sentry-go"
	"github.com/tracreed/ebina/bot"
	"github.com/tracreed/ebina/commands/anilist"
	"github.com/tracreed/ebina/commands/charades"
	"github.com/tracreed/ebina/commands/general"
	"github.com/tracreed/ebina/commands/mangadex"
	"github.com/tracreed/ebina/commands/moderation"
	"github.com/tracreed/ebina/commands/osu"
	"github.com/tracreed/ebina/commands/owner"
	"github.com/tracreed/ebina/commands/vndb"
	"github.com/tracreed/ebina/common"
	"github.com/tracreed/ebina/common/log"
	"github.com/tracreed/ebina/web/server"
	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"
)

var Command = &cli.Command{
	Name:   "bot",
	Usage:  "Run the bot and its stats server",
	Action: run,
	Flags: []cli.Flag{&cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "Path to the configuration file",
		Value:   "config.toml",
	}},
}

func run(c *cli.Context) error {
	conf, err := bot.ReadConfig(c.String("config"))
	if err != nil {
		return errors.Wrap(err, "reading config")
	}

	// set up sentry
	if conf.Auth.Sentry != "" {
		log.Debug("setting up sentry")
		err := sentry.Init(sentry.ClientOptions{
			Dsn:     conf.Auth.Sentry,
			Release: common.Version(),
		})
		if err != nil {
			return errors.Wrap(err, "setting up sentry")
		}
		defer sentry.Flush(2 * time.Second)
	} else {
		log.Debugf("sentry DSN was not provided, not setting it up")
	}

	b, err := bot.New(conf)
	if err != nil {
		return errors.Wrap(err, "creating bot")
	}
	defer func() {
		if err := b.Close(); err != nil {
			log.Errorf("Error closing bot: %v", err)
		}
		log.Info("Disconnected from Discord.")
	}()

	// add commands
	general.Setup(b)
	anilist.Setup(b)
	vndb.Setup(b)
	mangadex.Setup(b)
	osu.Setup(b)
	moderation.Setup(b)
	charades.Setup(b)
	owner.Setup(b)

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		// quit makes Open return, which should stop everything else too
		defer stop()
		return b.Open(ctx)
	})

	srv := server.New(conf.Web.Name, b, b.Metrics, b.Start)
	g.Go(func() error {
		return srv.Run(ctx, conf.Web.Listen)
	})

	err = g.Wait()
	log.Info("Shutting down...")
	return err
}
