package bot

import (
	"context"
	"fmt"
	"time"

	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/diamondburned/arikawa/v3/gateway"
	"github.com/diamondburned/arikawa/v3/session/shard"
	"github.com/diamondburned/arikawa/v3/state"
	"github.com/tracreed/ebina/common/log"
)

const statusInterval = 10 * time.Minute

func statusText(prefix string, guilds int) string {
	s := prefix + "help"
	if guilds > 0 {
		s += fmt.Sprintf(" | in %v servers", guilds)
	}
	return s
}

// statusLoop keeps the playing status up to date until ctx is cancelled.
func (bot *Bot) statusLoop(ctx context.Context) {
	t := time.NewTicker(statusInterval)
	defer t.Stop()

	for {
		bot.updateStatus(ctx)

		select {
		case <-ctx.Done():
			return
		case <-t.C:
		}
	}
}

func (bot *Bot) updateStatus(ctx context.Context) {
	guilds, err := bot.Guilds()
	if err != nil {
		log.Errorf("Error getting guild count: %v", err)
	}
	text := statusText(bot.Config.Bot.Prefixes[0], len(guilds))

	bot.Router.ShardManager.ForEach(func(s shard.Shard) {
		err := s.(*state.State).Gateway().Send(ctx, &gateway.UpdatePresenceCommand{
			Status: discord.OnlineStatus,
			Activities: []discord.Activity{{
				Name: text,
				Type: discord.GameActivity,
			}},
		})
		if err != nil {
			log.Errorf("Error setting status: %v", err)
		}
	})
}
