package db

import (
	"context"

	"emperror.dev/errors"
	"github.com/Masterminds/squirrel"
	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/jackc/pgx/v4"
)

// Prefix returns the guild's custom prefix, or ErrNotFound if it uses the default.
func (db *DB) Prefix(ctx context.Context, guildID discord.GuildID) (prefix string, err error) {
	sql, args, err := prefixQuery(guildID)
	if err != nil {
		return "", errors.Wrap(err, "building sql")
	}
	db.count()

	err = db.QueryRow(ctx, sql, args...).Scan(&prefix)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", ErrNotFound
		}
		return "", errors.Wrap(err, "getting prefix")
	}
	return prefix, nil
}

// SetPrefix sets the guild's custom prefix.
func (db *DB) SetPrefix(ctx context.Context, guildID discord.GuildID, prefix string) error {
	sql, args, err := setPrefixQuery(guildID, prefix)
	if err != nil {
		return errors.Wrap(err, "building sql")
	}
	db.count()

	_, err = db.Exec(ctx, sql, args...)
	return errors.Wrap(err, "setting prefix")
}

// ResetPrefix goes back to the default prefix.
func (db *DB) ResetPrefix(ctx context.Context, guildID discord.GuildID) error {
	sql, args, err := sq.Delete("guild_settings").Where(squirrel.Eq{"guild_id": guildID}).ToSql()
	if err != nil {
		return errors.Wrap(err, "building sql")
	}
	db.count()

	_, err = db.Exec(ctx, sql, args...)
	return errors.Wrap(err, "resetting prefix")
}

func prefixQuery(guildID discord.GuildID) (string, []interface{}, error) {
	return sq.Select("prefix").
		From("guild_settings").
		Where(squirrel.Eq{"guild_id": guildID}).
		ToSql()
}

func setPrefixQuery(guildID discord.GuildID, prefix string) (string, []interface{}, error) {
	return sq.Insert("guild_settings").
		Columns("guild_id", "prefix").
		Values(guildID, prefix).
		Suffix("ON CONFLICT (guild_id) DO UPDATE SET prefix = EXCLUDED.prefix").
		ToSql()
}
