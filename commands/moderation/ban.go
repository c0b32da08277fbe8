package moderation

import (
	"fmt"
	"strings"

	"github.com/diamondburned/arikawa/v3/api"
	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/diamondburned/arikawa/v3/utils/json/option"
	"github.com/starshine-sys/bcr"
	"github.com/tracreed/ebina/common"
	"github.com/tracreed/ebina/common/log"
)

// targets returns the users mentioned in a moderation command, excluding the author and the bot.
func targets(m discord.Message, self discord.UserID) (ids []discord.UserID) {
	for _, u := range m.Mentions {
		if u.ID == m.Author.ID || u.ID == self || common.Contains(ids, u.ID) {
			continue
		}
		ids = append(ids, u.ID)
	}
	return ids
}

func auditReason(action string, mod discord.User) api.AuditLogReason {
	return api.AuditLogReason(fmt.Sprintf("%v by %v (%v)", action, mod.Tag(), mod.ID))
}

// action applies fn to every mentioned user and reports who it failed for.
func (bot *Bot) action(ctx *bcr.Context, verb, past string, fn func(discord.UserID) error) (err error) {
	if !ctx.Message.GuildID.IsValid() {
		_, err = ctx.Replyc(common.ColourRed, "This command can only be used in a server.")
		return err
	}

	ids := targets(ctx.Message, ctx.Bot.ID)
	if len(ids) == 0 {
		_, err = ctx.Replyc(common.ColourRed, "You need to mention at least one user.")
		return err
	}

	var done, failed []string
	for _, id := range ids {
		if err := fn(id); err != nil {
			log.Infof("Couldn't %v %v in %v: %v", verb, id, ctx.Message.GuildID, err)
			failed = append(failed, id.Mention())
			continue
		}
		done = append(done, id.Mention())
	}

	var b strings.Builder
	if len(done) > 0 {
		fmt.Fprintf(&b, "%v %v.", past, strings.Join(done, ", "))
	}
	if len(failed) > 0 {
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "Couldn't %v %v, check my permissions and role position.", verb, strings.Join(failed, ", "))
	}

	_, err = ctx.Send("", discord.Embed{
		Description: b.String(),
		Color:       bcr.ColourPurple,
	})
	return err
}

func (bot *Bot) ban(ctx *bcr.Context) (err error) {
	return bot.action(ctx, "ban", "Banned", func(id discord.UserID) error {
		return ctx.State.Ban(ctx.Message.GuildID, id, api.BanData{
			DeleteDays:     option.NewUint(1),
			AuditLogReason: auditReason("Banned", ctx.Author),
		})
	})
}

func (bot *Bot) kick(ctx *bcr.Context) (err error) {
	return bot.action(ctx, "kick", "Kicked", func(id discord.UserID) error {
		return ctx.State.Kick(ctx.Message.GuildID, id, auditReason("Kicked", ctx.Author))
	})
}
