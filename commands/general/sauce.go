package general

import (
	"context"
	"fmt"
	"strings"

	"emperror.dev/errors"
	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/starshine-sys/bcr"
	"github.com/tracreed/ebina/clients"
	"github.com/tracreed/ebina/clients/saucenao"
	"github.com/tracreed/ebina/common"
)

// imageURL returns the first attachment's URL, or the first argument.
func imageURL(m discord.Message, args []string) string {
	if len(m.Attachments) > 0 {
		return m.Attachments[0].URL
	}
	if len(args) > 0 {
		return strings.Trim(args[0], "<>")
	}
	return ""
}

func (bot *Bot) sauce(ctx *bcr.Context) (err error) {
	u := imageURL(ctx.Message, ctx.Args)
	if u == "" {
		return ctx.SendX("", discord.Embed{
			Title:       "Error!",
			Description: "This command requires an attached image or a link.",
			Color:       common.ColourRed,
		})
	}

	results, err := bot.SauceNAO.Search(context.Background(), u)
	if err != nil {
		if errors.Is(err, clients.ErrNoResults) {
			return ctx.SendX("", discord.Embed{
				Title:       "Error!",
				Description: "No match found!",
				Color:       common.ColourRed,
			})
		}
		return bot.ReportError(ctx, err)
	}

	return ctx.SendX("", sauceEmbed(results[0]))
}

func sauceEmbed(r saucenao.Result) discord.Embed {
	e := discord.Embed{
		Title: "Match found",
		Color: common.ColourGreen,
	}
	if r.Header.Thumbnail != "" {
		e.Thumbnail = &discord.EmbedThumbnail{URL: r.Header.Thumbnail}
	}

	field := func(name, value string) {
		if value != "" {
			e.Fields = append(e.Fields, discord.EmbedField{Name: name, Value: common.Truncate(value, 1024)})
		}
	}

	field("Title", common.Or(r.Data.Title, r.Data.EngName))
	field("Site", r.Header.IndexName)
	field("Source", r.Data.Source)
	field("Creator", strings.Join(r.Creators(), "\n"))
	field("Similarity", fmt.Sprintf("%v%%", r.Header.Similarity))
	if len(r.Data.ExtURLs) > 0 {
		field("External URLs", strings.Join(r.Data.ExtURLs, "\n"))
	}
	return e
}
