package general

import (
	"fmt"
	"strings"

	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/starshine-sys/bcr"
)

type helpCategory struct {
	name     string
	commands []string
}

var helpCategories = []helpCategory{
	{"Lookup", []string{"anilist", "vn", "mangadex", "osu"}},
	{"Utility", []string{"sauce", "weather", "wolf"}},
	{"Games", []string{"charades"}},
	{"Moderation", []string{"ban", "kick", "clear", "userinfo", "guildinfo", "avatar"}},
	{"Bot", []string{"help", "ping", "invite", "prefix"}},
}

// helpEmbed lists the commands in each category. has reports whether a command is registered.
func helpEmbed(name, prefix string, has func(string) bool) discord.Embed {
	e := discord.Embed{
		Title:       "Help",
		Description: fmt.Sprintf("%v looks up anime, manga, visual novels and osu! players.\nUse `%vhelp <command>` for more information about a command.", name, prefix),
		Color:       bcr.ColourPurple,
	}

	for _, c := range helpCategories {
		var cmds []string
		for _, cmd := range c.commands {
			if has(cmd) {
				cmds = append(cmds, "`"+cmd+"`")
			}
		}
		if len(cmds) == 0 {
			continue
		}

		e.Fields = append(e.Fields, discord.EmbedField{
			Name:  c.name,
			Value: strings.Join(cmds, ", "),
		})
	}
	return e
}

func (bot *Bot) help(ctx *bcr.Context) (err error) {
	if len(ctx.Args) > 0 {
		return ctx.Help(ctx.Args)
	}

	e := helpEmbed(ctx.Bot.Username, bot.Config.Bot.Prefixes[0], func(name string) bool {
		return bot.Router.GetCommand(name) != nil
	})
	return ctx.SendX("", e)
}
