package anilist

import (
	"strings"

	"emperror.dev/errors"
	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/starshine-sys/bcr"
	"github.com/tracreed/ebina/clients"
	"github.com/tracreed/ebina/clients/anilist"
	"github.com/tracreed/ebina/common"
	"github.com/tracreed/ebina/options"
)

func (bot *Bot) search(typ anilist.MediaType) func(*bcr.Context) error {
	noun := "media"
	switch typ {
	case anilist.Anime:
		noun = "anime"
	case anilist.Manga:
		noun = "manga"
	}

	return func(ctx *bcr.Context) (err error) {
		adult, _ := ctx.Flags.GetBool("adult")
		adult = adult && ctx.Channel != nil && ctx.Channel.NSFW

		title := strings.Join(ctx.Args, " ")

		media, err := bot.AniList.Search(bot.Context(), title, typ, adult)
		if err != nil {
			if errors.Is(err, clients.ErrNoResults) {
				a := author
				return ctx.SendX("", discord.Embed{
					Description: "No results!",
					Author:      &a,
					Color:       common.ColourAniList,
				})
			}
			return bot.ReportError(ctx, err)
		}

		set, err := options.NewChoiceSet(common.Map(media, label)...)
		if err != nil {
			return bot.ReportError(ctx, err)
		}

		a := author
		res, err := bot.Session(ctx.State).Run(bot.Context(), set, options.Presentation{
			Title:           "Enter the number corresponding to the " + noun + " you want info about!",
			Colour:          common.ColourAniList,
			Author:          &a,
			EditAfterChoice: true,
		}, ctx.Author.ID, ctx.Message.ChannelID)
		if err != nil {
			return bot.ReportError(ctx, err)
		}
		if !res.Selected() {
			return nil
		}

		_, err = options.Render(ctx.State, res, "", mediaEmbed(media[res.Index]))
		return err
	}
}
