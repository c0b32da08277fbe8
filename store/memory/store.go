// Package memory is an in-process store, used when no Redis server is configured.
package memory

import (
	"context"
	"time"

	"emperror.dev/errors"
	"github.com/ReneKroon/ttlcache/v2"
	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/tracreed/ebina/store"
)

var _ store.PrefixStore = (*Store)(nil)

type Store struct {
	prefixes *ttlcache.Cache
}

// New returns a store whose entries expire after ttl.
func New(ttl time.Duration) *Store {
	c := ttlcache.NewCache()
	_ = c.SetTTL(ttl)
	c.SkipTTLExtensionOnHit(true)

	return &Store{prefixes: c}
}

func (s *Store) Prefix(_ context.Context, guildID discord.GuildID) (string, error) {
	v, err := s.prefixes.Get(guildID.String())
	if err != nil {
		if errors.Is(err, ttlcache.ErrNotFound) {
			return "", store.ErrNotFound
		}
		return "", err
	}

	prefix, ok := v.(string)
	if !ok {
		return "", store.ErrNotFound
	}
	return prefix, nil
}

func (s *Store) SetPrefix(_ context.Context, guildID discord.GuildID, prefix string) error {
	return s.prefixes.Set(guildID.String(), prefix)
}

func (s *Store) DeletePrefix(_ context.Context, guildID discord.GuildID) error {
	err := s.prefixes.Remove(guildID.String())
	if errors.Is(err, ttlcache.ErrNotFound) {
		return nil
	}
	return err
}

// Close stops the expiry goroutine.
func (s *Store) Close() error {
	return s.prefixes.Close()
}
