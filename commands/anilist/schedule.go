package anilist

import (
	"context"
	"time"

	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/starshine-sys/bcr"
	"github.com/tracreed/ebina/common"
)

// maxScheduleFields keeps the schedule within Discord's embed limits.
const maxScheduleFields = 5

func (bot *Bot) schedule(ctx *bcr.Context) (err error) {
	now := time.Now().UTC()
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	s, err := bot.AniList.Schedule(context.Background(), day, day.Add(24*time.Hour))
	if err != nil {
		return bot.ReportError(ctx, err)
	}

	a := author
	e := discord.Embed{
		Title:       "AniList schedule",
		Description: "Today's schedule: " + day.Format("2006-01-02"),
		Author:      &a,
		Color:       common.ColourAniList,
		Timestamp:   discord.NewTimestamp(now),
		Footer:      &discord.EmbedFooter{Text: "Times are in UTC"},
	}

	shown := scheduleLines(filterAdult(s, ctx.Channel != nil && ctx.Channel.NSFW), now)

	if len(shown) == 0 {
		e.Description += "\nNothing is airing today."
	}

	for i, page := range pageLines(shown) {
		if i >= maxScheduleFields {
			e.Footer.Text = "Not all episodes are shown. " + e.Footer.Text
			break
		}

		name := "Schedule"
		if i > 0 {
			name = "\u200b"
		}
		e.Fields = append(e.Fields, discord.EmbedField{Name: name, Value: page})
	}

	return ctx.SendX("", e)
}
