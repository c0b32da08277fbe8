// Package redis is a store backed by Redis, shared between bot restarts.
package redis

import (
	"context"
	"strconv"
	"time"

	"emperror.dev/errors"
	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/mediocregopher/radix/v4"
	"github.com/tracreed/ebina/store"
)

var _ store.PrefixStore = (*Store)(nil)

const prefixKey = "ebina:prefix:"

type Store struct {
	client radix.Client
	ttl    time.Duration
}

// New connects to the Redis server at url. Entries expire after ttl.
func New(url string, ttl time.Duration) (*Store, error) {
	client, err := (&radix.PoolConfig{}).New(context.Background(), "tcp", url)
	if err != nil {
		return nil, errors.Wrap(err, "creating radix client")
	}

	return &Store{client: client, ttl: ttl}, nil
}

func (s *Store) Prefix(ctx context.Context, guildID discord.GuildID) (string, error) {
	var prefix string
	mb := radix.Maybe{Rcv: &prefix}

	err := s.client.Do(ctx, radix.Cmd(&mb, "GET", prefixKey+guildID.String()))
	if err != nil {
		return "", errors.Wrap(err, "getting prefix")
	}

	if mb.Null {
		return "", store.ErrNotFound
	}
	return prefix, nil
}

func (s *Store) SetPrefix(ctx context.Context, guildID discord.GuildID, prefix string) error {
	return s.client.Do(ctx, radix.Cmd(nil, "SET", prefixKey+guildID.String(), prefix, "EX", strconv.Itoa(int(s.ttl.Seconds()))))
}

func (s *Store) DeletePrefix(ctx context.Context, guildID discord.GuildID) error {
	return s.client.Do(ctx, radix.Cmd(nil, "DEL", prefixKey+guildID.String()))
}

func (s *Store) Close() error {
	return s.client.Close()
}
