package general

import (
	"context"
	"fmt"
	"math"

	"emperror.dev/errors"
	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/starshine-sys/bcr"
	"github.com/tracreed/ebina/clients"
	"github.com/tracreed/ebina/clients/weather"
)

func (bot *Bot) weather(ctx *bcr.Context) (err error) {
	w, err := bot.Weather.Current(context.Background(), ctx.RawArgs)
	if err != nil {
		if errors.Is(err, clients.ErrNoResults) {
			_, err = ctx.Reply("No city with that name found.")
			return err
		}
		return bot.ReportError(ctx, err)
	}

	return ctx.SendX("", weatherEmbed(*w))
}

func weatherEmbed(w weather.Current) discord.Embed {
	name := w.Name
	if w.Sys.Country != "" {
		name += ", " + w.Sys.Country
	}
	if c := w.Condition(); c.Description != "" {
		name += " - " + c.Description
	}

	e := discord.Embed{
		Title: name,
		Color: bcr.ColourBlue,
		Fields: []discord.EmbedField{
			{
				Name:   "Temperature",
				Value:  fmt.Sprintf("%v°C, feels like %v°C", math.Round(w.Main.Temp), math.Round(w.Main.FeelsLike)),
				Inline: true,
			},
			{
				Name:   "Humidity",
				Value:  fmt.Sprintf("%v%%", w.Main.Humidity),
				Inline: true,
			},
			{
				Name:   "Wind",
				Value:  fmt.Sprintf("%.1f m/s", w.Wind.Speed),
				Inline: true,
			},
		},
	}
	if icon := w.IconURL(); icon != "" {
		e.Thumbnail = &discord.EmbedThumbnail{URL: icon}
	}
	return e
}
