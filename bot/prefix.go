package bot

import (
	"context"
	"strings"

	"emperror.dev/errors"
	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/diamondburned/arikawa/v3/gateway"
	"github.com/tracreed/ebina/common"
	"github.com/tracreed/ebina/common/log"
	"github.com/tracreed/ebina/db"
	"github.com/tracreed/ebina/store"
)

// messageCreate routes messages using a guild's custom prefix as if they used the default one.
func (bot *Bot) messageCreate(ev *gateway.MessageCreateEvent) {
	if ev.Author.Bot || !ev.GuildID.IsValid() {
		bot.Router.MessageCreate(ev)
		return
	}

	prefix, err := bot.GuildPrefix(context.Background(), ev.GuildID)
	if err != nil {
		log.Errorf("Error getting prefix for guild %v: %v", ev.GuildID, err)
	}

	if content, ok := rewritePrefix(ev.Content, prefix, bot.Router.Prefixes[0]); ok {
		// the event is shared with other handlers, so don't modify it
		cp := *ev
		cp.Content = content
		ev = &cp
	}

	bot.Router.MessageCreate(ev)
}

// rewritePrefix replaces custom at the start of content with def.
func rewritePrefix(content, custom, def string) (string, bool) {
	if custom == "" || custom == def || !strings.HasPrefix(content, custom) {
		return content, false
	}
	return def + strings.TrimPrefix(content, custom), true
}

// GuildPrefix returns the custom prefix for a guild, or an empty string if it uses the default.
func (bot *Bot) GuildPrefix(ctx context.Context, guildID discord.GuildID) (string, error) {
	return lookupPrefix(ctx, bot.Prefixes, bot.DB, guildID)
}

type prefixGetter interface {
	Prefix(context.Context, discord.GuildID) (string, error)
}

// lookupPrefix checks the cache, then the database, and caches what it finds.
func lookupPrefix(ctx context.Context, cache store.PrefixStore, source prefixGetter, guildID discord.GuildID) (string, error) {
	prefix, err := cache.Prefix(ctx, guildID)
	if err == nil {
		return prefix, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		log.Errorf("Error getting cached prefix for guild %v: %v", guildID, err)
	}

	prefix, err = source.Prefix(ctx, guildID)
	if err != nil && !errors.Is(err, db.ErrNotFound) {
		return "", err
	}

	// an empty prefix is cached too, so guilds without one don't hit the database every message
	if err := cache.SetPrefix(ctx, guildID, prefix); err != nil {
		log.Errorf("Error caching prefix for guild %v: %v", guildID, err)
	}
	return prefix, nil
}

// SetGuildPrefix sets a guild's custom prefix.
// Setting it to one of the default prefixes removes the custom prefix.
func (bot *Bot) SetGuildPrefix(ctx context.Context, guildID discord.GuildID, prefix string) (err error) {
	if common.Contains(bot.Config.Bot.Prefixes, prefix) {
		err = bot.DB.ResetPrefix(ctx, guildID)
	} else {
		err = bot.DB.SetPrefix(ctx, guildID, prefix)
	}
	if err != nil {
		return errors.Wrap(err, "saving prefix")
	}

	err = bot.Prefixes.DeletePrefix(ctx, guildID)
	if err != nil {
		log.Errorf("Error clearing cached prefix for guild %v: %v", guildID, err)
	}
	return nil
}
