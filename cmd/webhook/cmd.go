package webhook

import (
	"os"
	"os/signal"
	"syscall"

	"emperror.dev/errors"
	"github.com/tracreed/ebina/bot"
	"github.com/tracreed/ebina/webhook"
	"github.com/urfave/cli/v2"
)

var Command = &cli.Command{
	Name:   "webhook",
	Usage:  "Run the redeploy webhook receiver",
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

	if conf.Webhook.Secret == "" {
		return cli.Exit("No webhook secret set in the configuration.", 1)
	}
	if len(conf.Webhook.Steps) == 0 {
		return cli.Exit("No redeploy steps set in the configuration.", 1)
	}

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	h := webhook.New(conf.Webhook.Secret, conf.Webhook.Branch, conf.Webhook.Steps, webhook.ExecRunner{})
	return h.Run(ctx, conf.Webhook.Listen)
}
