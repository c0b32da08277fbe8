package anilist

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/tracreed/ebina/clients/anilist"
	"github.com/tracreed/ebina/common"
)

var author = discord.EmbedAuthor{
	Name: "AniList",
	URL:  "https://anilist.co/",
	Icon: "https://anilist.co/img/icons/apple-touch-icon.png",
}

const maxDescription = 2048

// label is how a result is shown in an option list.
func label(m anilist.Media) string {
	s := m.Title.Best()
	if m.Format != "" {
		s += " (" + enum(m.Format) + ")"
	}
	if m.IsAdult {
		s += " (NSFW)"
	}
	return s
}

// enum turns an AniList enum value like "TV_SHORT" into "TV Short".
func enum(s string) string {
	switch s {
	case "TV", "OVA", "ONA":
		return s
	case "TV_SHORT":
		return "TV Short"
	}

	words := strings.Split(strings.ToLower(s), "_")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}

func mediaEmbed(m anilist.Media) discord.Embed {
	a := author

	e := discord.Embed{
		Title:       common.Truncate(m.Title.Best(), 256),
		URL:         m.SiteURL,
		Description: common.Truncate(common.StripHTML(m.Description), maxDescription),
		Author:      &a,
		Color:       common.ColourAniList,
	}
	if e.URL == "" {
		e.URL = fmt.Sprintf("https://anilist.co/%v/%v", strings.ToLower(string(m.Type)), m.ID)
	}

	if img := common.Or(m.CoverImage.ExtraLarge, m.CoverImage.Large); img != "" {
		e.Thumbnail = &discord.EmbedThumbnail{URL: img}
	}

	field := func(name, value string) {
		if value != "" {
			e.Fields = append(e.Fields, discord.EmbedField{Name: name, Value: value, Inline: true})
		}
	}
	count := func(n int) string {
		if n == 0 {
			return ""
		}
		return strconv.Itoa(n)
	}

	if m.Format != "" {
		field("Format", enum(m.Format))
	}
	if m.Type != anilist.AnyType {
		field("Type", enum(string(m.Type)))
	}
	if m.Status != "" {
		field("Status", enum(m.Status))
	}
	field("Episodes", count(m.Episodes))
	if m.Duration != 0 {
		field("Episode length", fmt.Sprintf("%v minutes", m.Duration))
	}
	field("Chapters", count(m.Chapters))
	field("Volumes", count(m.Volumes))
	if m.MeanScore != 0 {
		field("Mean score", fmt.Sprintf("%v%%", m.MeanScore))
	}
	if m.Season != "" && m.SeasonYear != 0 {
		field("Season", fmt.Sprintf("%v %v", enum(m.Season), m.SeasonYear))
	}
	if m.IsAdult {
		field("NSFW", "Yes")
	}
	field("Start date", m.StartDate.String())
	field("End date", m.EndDate.String())

	if len(m.Genres) > 0 {
		e.Fields = append(e.Fields, discord.EmbedField{
			Name:  "Genres",
			Value: strings.Join(m.Genres, ", "),
		})
	}

	return e
}

// filterAdult removes adult entries unless they're allowed.
func filterAdult(s []anilist.AiringSchedule, allowed bool) []anilist.AiringSchedule {
	if allowed {
		return s
	}

	out := make([]anilist.AiringSchedule, 0, len(s))
	for _, ep := range s {
		if !ep.Media.IsAdult {
			out = append(out, ep)
		}
	}
	return out
}

// scheduleLines lists episodes by airing time, marking the next one to air.
func scheduleLines(s []anilist.AiringSchedule, now time.Time) []string {
	lines := make([]string, 0, len(s))
	markedNext := false

	for _, ep := range s {
		line := fmt.Sprintf("`%v` [%v](%v) ep. %v",
			ep.Time().Format("15:04"), ep.Media.Title.Best(), ep.Media.SiteURL, ep.Episode)

		if !markedNext && ep.Time().After(now) {
			line += " **(Next)**"
			markedNext = true
		}
		lines = append(lines, line)
	}
	return lines
}

// maxFieldLength is the limit for an embed field's value.
const maxFieldLength = 1024

// pageLines splits lines into chunks that fit in an embed field.
func pageLines(lines []string) (pages []string) {
	var b strings.Builder
	for _, l := range lines {
		if b.Len()+len(l)+1 > maxFieldLength {
			pages = append(pages, b.String())
			b.Reset()
		}
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(l)
	}
	if b.Len() > 0 {
		pages = append(pages, b.String())
	}
	return pages
}
