// Package store caches per-guild settings in front of the database.
// Lookups happen on every message, so they shouldn't have to hit Postgres.
package store

import (
	"context"

	"emperror.dev/errors"
	"github.com/diamondburned/arikawa/v3/discord"
)

const ErrNotFound = errors.Sentinel("value not found in store")

// PrefixStore caches guild prefixes.
// A guild without a custom prefix is cached as the empty string.
type PrefixStore interface {
	// Prefix returns ErrNotFound if nothing is cached for guildID.
	Prefix(ctx context.Context, guildID discord.GuildID) (string, error)
	SetPrefix(ctx context.Context, guildID discord.GuildID, prefix string) error
	DeletePrefix(ctx context.Context, guildID discord.GuildID) error
}
