package moderation

import (
	"fmt"
	"strings"
	"time"

	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/dustin/go-humanize"
	"github.com/starshine-sys/bcr"
	"github.com/tracreed/ebina/common"
)

// targetUser returns the mentioned user, the user named in the arguments, or the author.
func targetUser(ctx *bcr.Context) (*discord.User, error) {
	if len(ctx.Message.Mentions) > 0 {
		u := ctx.Message.Mentions[0].User
		return &u, nil
	}
	if ctx.RawArgs != "" {
		return ctx.ParseUser(ctx.RawArgs)
	}
	return &ctx.Author, nil
}

// timestamp formats t as a Discord timestamp with a relative time after it.
func timestamp(t time.Time) string {
	return fmt.Sprintf("<t:%v:F>\n(%v)", t.Unix(), humanize.Time(t))
}

func (bot *Bot) userInfo(ctx *bcr.Context) (err error) {
	u, err := targetUser(ctx)
	if err != nil {
		_, err = ctx.Replyc(common.ColourRed, "User not found.")
		return err
	}

	var (
		m     *discord.Member
		perms discord.Permissions
	)
	if ctx.Message.GuildID.IsValid() {
		// not being a member is fine, the embed just has less info
		m, _ = ctx.State.Member(ctx.Message.GuildID, u.ID)
		if m != nil {
			perms, _ = ctx.State.Permissions(ctx.Message.ChannelID, u.ID)
		}
	}

	return ctx.SendX("", userEmbed(*u, m, perms))
}

func userEmbed(u discord.User, m *discord.Member, perms discord.Permissions) discord.Embed {
	e := discord.Embed{
		Title:       u.Tag(),
		Description: u.ID.Mention(),
		Thumbnail:   &discord.EmbedThumbnail{URL: u.AvatarURL()},
		Color:       bcr.ColourPurple,
		Footer:      &discord.EmbedFooter{Text: "ID: " + u.ID.String()},
	}

	e.Fields = append(e.Fields,
		discord.EmbedField{Name: "Bot", Value: fmt.Sprint(u.Bot), Inline: true},
		discord.EmbedField{Name: "Created at", Value: timestamp(u.ID.Time()), Inline: true},
	)

	if m == nil {
		e.Fields = append(e.Fields, discord.EmbedField{Name: "Member", Value: "This user isn't a member of this server."})
		return e
	}

	if m.Nick != "" {
		e.Fields = append(e.Fields, discord.EmbedField{Name: "Nickname", Value: m.Nick, Inline: true})
	}
	if m.Joined.IsValid() {
		e.Fields = append(e.Fields, discord.EmbedField{Name: "Member since", Value: timestamp(m.Joined.Time()), Inline: true})
	}

	if len(m.RoleIDs) > 0 {
		roles := make([]string, len(m.RoleIDs))
		for i, r := range m.RoleIDs {
			roles[i] = r.Mention()
		}
		e.Fields = append(e.Fields, discord.EmbedField{
			Name:  fmt.Sprintf("Roles (%v)", len(roles)),
			Value: common.Truncate(strings.Join(roles, " "), 1024),
		})
	}

	if key := common.PermStrings(perms); len(key) > 0 {
		e.Fields = append(e.Fields, discord.EmbedField{
			Name:  "Key permissions",
			Value: strings.Join(key, ", "),
		})
	}

	return e
}

func (bot *Bot) guildInfo(ctx *bcr.Context) (err error) {
	if !ctx.Message.GuildID.IsValid() {
		_, err = ctx.Replyc(common.ColourRed, "This command can only be used in a server.")
		return err
	}

	g, err := ctx.State.GuildWithCount(ctx.Message.GuildID)
	if err != nil {
		return bot.ReportError(ctx, err)
	}

	return ctx.SendX("", guildEmbed(*g))
}

func guildEmbed(g discord.Guild) discord.Embed {
	e := discord.Embed{
		Title:  g.Name,
		Color:  bcr.ColourPurple,
		Footer: &discord.EmbedFooter{Text: "ID: " + g.ID.String()},
		Fields: []discord.EmbedField{
			{Name: "Owner", Value: g.OwnerID.Mention(), Inline: true},
			{Name: "Created", Value: timestamp(g.ID.Time()), Inline: true},
			{Name: "Members", Value: humanize.Comma(int64(g.ApproximateMembers)), Inline: true},
			{Name: "Roles", Value: fmt.Sprint(len(g.Roles)), Inline: true},
			{Name: "Emojis", Value: fmt.Sprint(len(g.Emojis)), Inline: true},
		},
	}

	if icon := g.IconURL(); icon != "" {
		e.Thumbnail = &discord.EmbedThumbnail{URL: icon}
	}
	if g.Description != "" {
		e.Description = g.Description
	}
	return e
}

func (bot *Bot) avatar(ctx *bcr.Context) (err error) {
	u, err := targetUser(ctx)
	if err != nil {
		_, err = ctx.Replyc(common.ColourRed, "User not found.")
		return err
	}

	return ctx.SendX("", discord.Embed{
		Title: u.Tag(),
		Image: &discord.EmbedImage{URL: u.AvatarURL() + "?size=1024"},
		Color: bcr.ColourPurple,
	})
}
