package osu

import (
	"fmt"
	"strings"
	"time"

	"emperror.dev/errors"
	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/dustin/go-humanize"
	"github.com/starshine-sys/bcr"
	"github.com/tracreed/ebina/clients"
	"github.com/tracreed/ebina/clients/osu"
	"github.com/tracreed/ebina/common"
	"github.com/tracreed/ebina/options"
)

var author = discord.EmbedAuthor{
	Name: "osu!",
	URL:  osu.BaseURL,
	Icon: "https://osu.ppy.sh/images/layout/avatar-guest.png",
}

func (bot *Bot) user(ctx *bcr.Context) (err error) {
	mode, _ := ctx.Flags.GetString("mode")
	mode = strings.ToLower(mode)
	if !osu.ValidMode(mode) {
		_, err = ctx.Replyc(common.ColourRed, "%q isn't a valid mode, use one of %v.", mode, strings.Join(osu.Modes, ", "))
		return err
	}

	users, err := bot.Osu.SearchUsers(bot.Context(), strings.Join(ctx.Args, " "))
	if err != nil {
		if errors.Is(err, clients.ErrNoResults) {
			_, err = ctx.Reply("No user with that name found.")
			return err
		}
		return bot.ReportError(ctx, err)
	}

	set, err := options.NewChoiceSet(common.Map(users, label)...)
	if err != nil {
		return bot.ReportError(ctx, err)
	}

	a := author
	res, err := bot.Session(ctx.State).Run(bot.Context(), set, options.Presentation{
		Title:           "Enter the number corresponding to the user you want info about!",
		Colour:          common.ColourOsu,
		Author:          &a,
		EditAfterChoice: true,
	}, ctx.Author.ID, ctx.Message.ChannelID)
	if err != nil {
		return bot.ReportError(ctx, err)
	}
	if !res.Selected() {
		return nil
	}

	u, err := bot.Osu.User(bot.Context(), users[res.Index].ID, mode)
	if err != nil {
		options.Clean(ctx.State, res.Message)
		if errors.Is(err, clients.ErrNoResults) {
			_, err = ctx.Reply("That user couldn't be found.")
			return err
		}
		return bot.ReportError(ctx, err)
	}

	_, err = options.Render(ctx.State, res, "", userEmbed(*u, mode))
	return err
}

func label(u osu.UserCompact) string {
	if u.CountryCode == "" {
		return u.Username
	}
	return fmt.Sprintf("%v (%v)", u.Username, u.CountryCode)
}

func userEmbed(u osu.User, mode string) discord.Embed {
	a := author
	st := u.Statistics

	e := discord.Embed{
		Title:       u.Username,
		URL:         u.URL(mode),
		Description: strings.TrimSpace(fmt.Sprintf("%v %v, mode: %v", u.Country.Name, u.Country.Flag(), mode)),
		Author:      &a,
		Color:       common.ColourOsu,
		Thumbnail:   &discord.EmbedThumbnail{URL: u.Avatar()},
	}

	field := func(name, value string) {
		e.Fields = append(e.Fields, discord.EmbedField{Name: name, Value: value, Inline: true})
	}

	if st.GlobalRank > 0 {
		field("Rank", "#"+humanize.Comma(int64(st.GlobalRank)))
	}
	if st.CountryRank > 0 {
		field("Country rank", "#"+humanize.Comma(int64(st.CountryRank)))
	}
	field("Level", fmt.Sprintf("%v (%v%%)", st.Level.Current, st.Level.Progress))
	field("pp", humanize.Comma(int64(st.PP+0.5)))
	field("Accuracy", fmt.Sprintf("%.2f%%", st.HitAccuracy))
	field("Play count", humanize.Comma(int64(st.PlayCount)))
	if st.PlayTime > 0 {
		field("Play time", bcr.HumanizeDuration(bcr.DurationPrecisionMinutes, time.Duration(st.PlayTime)*time.Second))
	}
	field("Ranked score", humanize.Comma(st.RankedScore))
	field("Total hits", humanize.Comma(st.TotalHits))

	return e
}
