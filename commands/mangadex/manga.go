package mangadex

import (
	"net/url"
	"strings"

	"emperror.dev/errors"
	"github.com/diamondburned/arikawa/v3/api"
	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/diamondburned/arikawa/v3/gateway"
	"github.com/diamondburned/arikawa/v3/state"
	"github.com/diamondburned/arikawa/v3/utils/json/option"
	"github.com/starshine-sys/bcr"
	"github.com/tracreed/ebina/clients"
	"github.com/tracreed/ebina/clients/mangadex"
	"github.com/tracreed/ebina/common"
	"github.com/tracreed/ebina/common/log"
	"github.com/tracreed/ebina/options"
)

const searchLimit = 5

func (bot *Bot) search(ctx *bcr.Context) (err error) {
	manga, err := bot.MangaDex.Search(bot.Context(), ctx.RawArgs, searchLimit)
	if err != nil {
		if errors.Is(err, clients.ErrNoResults) {
			_, err = ctx.Reply("No results :(")
			return err
		}
		return bot.ReportError(ctx, err)
	}

	set, err := options.NewChoiceSet(common.Map(manga, label)...)
	if err != nil {
		return bot.ReportError(ctx, err)
	}

	a := author
	res, err := bot.Session(ctx.State).Run(bot.Context(), set, options.Presentation{
		Title:           "Enter the number corresponding to the manga you want info about!",
		Colour:          common.ColourMangaDex,
		Author:          &a,
		EditAfterChoice: true,
	}, ctx.Author.ID, ctx.Message.ChannelID)
	if err != nil {
		return bot.ReportError(ctx, err)
	}
	if !res.Selected() {
		return nil
	}

	_, err = options.Render(ctx.State, res, "", mangaEmbed(manga[res.Index]))
	return err
}

// titleID returns the manga ID in a mangadex.org/title/<id> link.
func titleID(u *url.URL) (string, bool) {
	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	if len(parts) < 2 || parts[0] != "title" || !mangadex.IsID(parts[1]) {
		return "", false
	}
	return parts[1], true
}

// titleLink shows info for a MangaDex link posted in chat.
func (bot *Bot) titleLink(s *state.State, ev *gateway.MessageCreateEvent, u *url.URL) {
	id, ok := titleID(u)
	if !ok {
		return
	}

	m, err := bot.MangaDex.Manga(bot.Context(), id)
	if err != nil {
		if !errors.Is(err, clients.ErrNoResults) {
			log.Errorf("Error getting MangaDex manga %v: %v", id, err)
		}
		return
	}

	_, err = s.SendMessageComplex(ev.ChannelID, api.SendMessageData{
		Embeds:    []discord.Embed{mangaEmbed(*m)},
		Reference: &discord.MessageReference{MessageID: ev.ID},
		AllowedMentions: &api.AllowedMentions{
			RepliedUser: option.False,
		},
	})
	if err != nil {
		log.Errorf("Error sending MangaDex embed in %v: %v", ev.ChannelID, err)
	}
}
