package mangadex

import (
	"fmt"
	"strings"

	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/tracreed/ebina/clients/mangadex"
	"github.com/tracreed/ebina/common"
)

var author = discord.EmbedAuthor{
	Name: "MangaDex",
	URL:  mangadex.SiteURL,
	Icon: "https://mangadex.org/favicon.ico",
}

func label(m mangadex.Manga) string {
	if m.Attributes.Year != 0 {
		return fmt.Sprintf("%v (%v)", m.Title(), m.Attributes.Year)
	}
	return m.Title()
}

func title(s string) string {
	if s == "" {
		return ""
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func mangaEmbed(m mangadex.Manga) discord.Embed {
	a := author
	attr := m.Attributes

	e := discord.Embed{
		Title:       common.Truncate(m.Title(), 256),
		URL:         m.URL(),
		Description: common.Truncate(common.StripHTML(attr.Description.Get()), 2048),
		Author:      &a,
		Color:       common.ColourMangaDex,
	}
	if cover := m.CoverURL(); cover != "" {
		e.Thumbnail = &discord.EmbedThumbnail{URL: cover}
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

	field("Author", strings.Join(m.Names("author"), ", "))
	field("Artist", strings.Join(m.Names("artist"), ", "))
	field("Status", title(attr.Status))
	field("Demographic", title(attr.PublicationDemographic))
	field("Content rating", title(attr.ContentRating))
	if attr.Year != 0 {
		field("Year", fmt.Sprint(attr.Year))
	}
	if attr.LastChapter != "" {
		field("Last chapter", attr.LastChapter)
	}
	field("Genres", strings.Join(m.TagNames(), ", "))

	return e
}
