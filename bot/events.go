package bot

import (
	"context"
	"time"

	"github.com/diamondburned/arikawa/v3/gateway"
	"github.com/tracreed/ebina/common/log"
)

func (bot *Bot) ready(ev *gateway.ReadyEvent) {
	if ev.Shard != nil {
		log.Debugf("Shard %d/%d is ready!", ev.Shard.ShardID(), ev.Shard.NumShards())
		return
	}
	log.Debugf("Ready as %v", ev.User.Tag())
}

// joinedRecently is true if the bot joined at t, rather than the guild being sent on connect.
func joinedRecently(t, now time.Time) bool {
	return now.Sub(t) < time.Minute
}

func (bot *Bot) guildCreate(ev *gateway.GuildCreateEvent) {
	if !joinedRecently(ev.Joined.Time(), time.Now()) {
		return
	}

	log.Infof("Joined new guild %v (%v)", ev.Name, ev.ID)
}

func (bot *Bot) guildDelete(ev *gateway.GuildDeleteEvent) {
	// outages send this too
	if ev.Unavailable {
		log.Debugf("Guild %v is unavailable", ev.ID)
		return
	}

	log.Infof("Left guild %v", ev.ID)

	err := bot.Prefixes.DeletePrefix(context.Background(), ev.ID)
	if err != nil {
		log.Errorf("Error removing cached prefix for %v: %v", ev.ID, err)
	}
}
