package vndb

import (
	"fmt"
	"strings"

	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/dustin/go-humanize"
	"github.com/tracreed/ebina/clients/vndb"
	"github.com/tracreed/ebina/common"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// maxSafeImage is the highest sexual rating shown outside NSFW channels.
const maxSafeImage = 0.5

func label(vn vndb.VN) string {
	if year, _, ok := strings.Cut(vn.Released, "-"); ok && year != "" {
		return fmt.Sprintf("%v (%v)", vn.Title, year)
	}
	return vn.Title
}

// languageName returns the English name for a VNDB language code, or the code itself.
func languageName(code string) string {
	tag, err := language.Parse(code)
	if err != nil {
		return code
	}

	if name := display.English.Tags().Name(tag); name != "" {
		return name
	}
	return code
}

func vnEmbed(vn vndb.VN, nsfw bool) discord.Embed {
	e := discord.Embed{
		Title:       common.Truncate(vn.Title, 256),
		URL:         vn.URL(),
		Description: common.Truncate(vndb.FormatDescription(vn.Description), 2048),
		Color:       common.ColourVNDB,
		Footer:      &discord.EmbedFooter{Text: "ID: " + vn.ID},
	}

	if vn.Image != nil && vn.Image.URL != "" && (nsfw || vn.Image.Sexual <= maxSafeImage) {
		e.Thumbnail = &discord.EmbedThumbnail{URL: vn.Image.URL}
	}

	field := func(name, value string) {
		if value != "" {
			e.Fields = append(e.Fields, discord.EmbedField{
				Name:   name,
				Value:  common.Truncate(value, 1024),
				Inline: true,
			})
		}
	}

	field("Original title", vn.AltTitle)
	field("Aliases", strings.Join(vn.Aliases, ", "))
	field("Released", vn.Released)

	length := vn.LengthString()
	if vn.LengthMinutes > 0 {
		length = strings.TrimSpace(fmt.Sprintf("%v\n(about %v hours)", length, (vn.LengthMinutes+30)/60))
	}
	field("Length", length)

	if vn.Rating > 0 {
		field("Rating", fmt.Sprintf("%.2f (%v votes)", vn.Rating/10, humanize.Comma(int64(vn.VoteCount))))
	}

	devs := make([]string, 0, len(vn.Developers))
	for _, d := range vn.Developers {
		devs = append(devs, fmt.Sprintf("[%v](https://vndb.org/%v)", d.Name, d.ID))
	}
	field("Developers", strings.Join(devs, " & "))

	field("Languages", strings.Join(common.Map(vn.Languages, languageName), ", "))
	field("Platforms", strings.Join(vn.Platforms, ", "))
	field("Tags", strings.Join(vn.TopTags(10), ", "))

	return e
}
