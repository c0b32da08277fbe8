package general

import (
	"context"

	"emperror.dev/errors"
	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/starshine-sys/bcr"
	"github.com/tracreed/ebina/clients"
	"github.com/tracreed/ebina/clients/wolfram"
	"github.com/tracreed/ebina/common"
)

const maxPods = 5

func (bot *Bot) wolf(ctx *bcr.Context) (err error) {
	pods, err := bot.Wolfram.Query(context.Background(), ctx.RawArgs)
	if err != nil {
		e := discord.Embed{
			Title:       "Wolfram|Alpha",
			Description: "Failed!",
			Color:       common.ColourRed,
		}

		switch {
		case errors.Is(err, wolfram.ErrRateLimited):
			e.Fields = []discord.EmbedField{{Name: "Reason", Value: "Rate limited!"}}
		case errors.Is(err, clients.ErrNoResults):
			e.Fields = []discord.EmbedField{{Name: "Reason", Value: "Wolfram|Alpha didn't understand your query."}}
		default:
			return bot.ReportError(ctx, err)
		}
		return ctx.SendX("", e)
	}

	return ctx.SendX("", wolframEmbed(pods))
}

func wolframEmbed(pods []wolfram.Pod) discord.Embed {
	e := discord.Embed{
		Title: "Wolfram|Alpha",
		Color: common.ColourRed,
	}

	for i, p := range pods {
		if i >= maxPods {
			break
		}

		name := p.Title
		// the first pod is how the query was understood
		if i == 0 && p.ID == "Input" {
			name = "Interpretation"
		}
		e.Fields = append(e.Fields, discord.EmbedField{
			Name:  common.Truncate(common.Or(name, "Result"), 256),
			Value: common.Truncate(p.Text(), 1024),
		})
	}
	return e
}
