package bot

import (
	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/diamondburned/arikawa/v3/session/shard"
	"github.com/diamondburned/arikawa/v3/state"
)

// Guilds returns every guild in the gateway cache, across all shards.
func (bot *Bot) Guilds() (guilds []discord.Guild, err error) {
	bot.Router.ShardManager.ForEach(func(s shard.Shard) {
		if err != nil {
			return
		}

		gs, gErr := s.(*state.State).GuildStore.Guilds()
		if gErr != nil {
			err = gErr
			return
		}
		guilds = append(guilds, gs...)
	})
	return guilds, err
}

// Guild returns a cached guild.
func (bot *Bot) Guild(id discord.GuildID) (*discord.Guild, error) {
	s, _ := bot.Router.StateFromGuildID(id)
	return s.GuildStore.Guild(id)
}
