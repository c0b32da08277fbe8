package bot

import (
	"fmt"
	"time"

	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/getsentry/sentry-go"
	"github.com/google/uuid"
	"github.com/starshine-sys/bcr"
	"github.com/tracreed/ebina/common"
	"github.com/tracreed/ebina/common/log"
)

// ReportError logs err and tells the user an error occurred.
// If Sentry is set up the error is sent there, and its event ID is shown to the user.
func (bot *Bot) ReportError(ctx *bcr.Context, err error) error {
	id := bot.captureError(ctx, err)

	log.Errorf("Error in command %q (id %v): %v", ctx.Command, id, err)

	return ctx.SendX(fmt.Sprintf("Error code: ``%v``", id),
		discord.Embed{
			Title:       "Internal error occurred",
			Description: "An internal error has occurred. If this issue persists, please contact the developer with the error code above.",
			Color:       common.ColourRed,
			Timestamp:   discord.NowTimestamp(),
			Footer: &discord.EmbedFooter{
				Text: id,
			},
		})
}

func (bot *Bot) captureError(ctx *bcr.Context, err error) string {
	if bot.Config.Auth.Sentry == "" {
		return uuid.New().String()
	}

	hub := sentry.CurrentHub().Clone()
	hub.ConfigureScope(func(scope *sentry.Scope) {
		scope.SetUser(sentry.User{ID: ctx.Author.ID.String()})
		scope.SetTag("command", ctx.Command)
		if ctx.Message.GuildID.IsValid() {
			scope.SetTag("guild", ctx.Message.GuildID.String())
		}
	})

	hub.AddBreadcrumb(&sentry.Breadcrumb{
		Data: map[string]any{
			"user":    ctx.Author.ID,
			"channel": ctx.Message.ChannelID,
			"content": ctx.Message.Content,
		},
		Level:     sentry.LevelError,
		Timestamp: time.Now().UTC(),
	}, nil)

	id := hub.CaptureException(err)
	if id == nil {
		return uuid.New().String()
	}
	return string(*id)
}
