package vndb

import (
	"emperror.dev/errors"
	"github.com/starshine-sys/bcr"
	"github.com/tracreed/ebina/clients"
	"github.com/tracreed/ebina/common"
	"github.com/tracreed/ebina/options"
)

func (bot *Bot) vn(ctx *bcr.Context) (err error) {
	vns, err := bot.VNDB.Search(bot.Context(), ctx.RawArgs)
	if err != nil {
		if errors.Is(err, clients.ErrNoResults) {
			_, err = ctx.Reply("No results :(")
			return err
		}
		return bot.ReportError(ctx, err)
	}

	set, err := options.NewChoiceSet(common.Map(vns, label)...)
	if err != nil {
		return bot.ReportError(ctx, err)
	}

	res, err := bot.Session(ctx.State).Run(bot.Context(), set, options.Presentation{
		Title:           "Enter the number corresponding to the visual novel you want info about!",
		Colour:          common.ColourVNDB,
		EditAfterChoice: true,
	}, ctx.Author.ID, ctx.Message.ChannelID)
	if err != nil {
		return bot.ReportError(ctx, err)
	}
	if !res.Selected() {
		return nil
	}

	nsfw := ctx.Channel != nil && ctx.Channel.NSFW
	_, err = options.Render(ctx.State, res, "", vnEmbed(vns[res.Index], nsfw))
	return err
}
