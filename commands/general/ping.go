package general

import (
	"fmt"
	"time"

	"github.com/diamondburned/arikawa/v3/api"
	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/diamondburned/arikawa/v3/utils/json/option"
	"github.com/dustin/go-humanize"
	"github.com/starshine-sys/bcr"
	"github.com/tracreed/ebina/metrics"
)

func (bot *Bot) ping(ctx *bcr.Context) (err error) {
	t := time.Now()

	m, err := ctx.Send("...")
	if err != nil {
		return err
	}

	latency := time.Since(t).Round(time.Millisecond)

	// this will return 0ms in the first minute after the bot is restarted
	// can't do much about that though
	heartbeat := ctx.State.Gateway().EchoBeat().Sub(ctx.State.Gateway().SentBeat()).Round(time.Millisecond)

	e := pingEmbed(heartbeat, latency, metrics.SystemStats(), bot.Start)

	_, err = ctx.State.EditMessageComplex(m.ChannelID, m.ID, api.EditMessageData{
		Content: option.NewNullableString(""),
		Embeds:  &[]discord.Embed{e},
	})
	return err
}

func pingEmbed(heartbeat, latency time.Duration, stats metrics.System, start time.Time) discord.Embed {
	e := discord.Embed{
		Color: bcr.ColourPurple,
		Fields: []discord.EmbedField{
			{
				Name:   "Ping",
				Value:  fmt.Sprintf("Heartbeat: %v\nMessage: %v", heartbeat, latency),
				Inline: true,
			},
			{
				Name:   "Memory usage",
				Value:  fmt.Sprintf("%v / %v", humanize.Bytes(stats.Alloc), humanize.Bytes(stats.Sys)),
				Inline: true,
			},
			{
				Name:   "Garbage collected",
				Value:  humanize.Bytes(stats.TotalAlloc),
				Inline: true,
			},
			{
				Name:   "Goroutines",
				Value:  fmt.Sprint(stats.Goroutines),
				Inline: true,
			},
			{
				Name: "Uptime",
				Value: fmt.Sprintf(
					"%v\n(Since %v)",
					bcr.HumanizeDuration(bcr.DurationPrecisionSeconds, time.Since(start)),
					start.Format("Jan _2 2006, 15:04:05 MST"),
				),
				Inline: true,
			},
		},
	}

	if stats.HostMemTotal != 0 {
		e.Fields = append(e.Fields, discord.EmbedField{
			Name:   "System memory",
			Value:  fmt.Sprintf("%v / %v (%.1f%%)", humanize.Bytes(stats.HostMemUsed), humanize.Bytes(stats.HostMemTotal), stats.HostMemPercent),
			Inline: true,
		})
	}

	return e
}
