package bot

import (
	"net/url"
	"strings"

	"github.com/diamondburned/arikawa/v3/gateway"
	"github.com/diamondburned/arikawa/v3/state"
)

// URLHandler is called for links to a watched host.
type URLHandler func(s *state.State, ev *gateway.MessageCreateEvent, u *url.URL)

// WatchURL calls fn for every message linking to host.
// Handlers must be added before the bot is opened.
func (bot *Bot) WatchURL(host string, fn URLHandler) {
	if bot.urlHandlers == nil {
		bot.urlHandlers = map[string]URLHandler{}
	}
	bot.urlHandlers[host] = fn
}

func (bot *Bot) watchURLs(ev *gateway.MessageCreateEvent) {
	if ev.Author.Bot {
		return
	}

	urls := FindURLs(ev.Content)
	if len(urls) == 0 {
		return
	}

	s, _ := bot.Router.StateFromGuildID(ev.GuildID)
	for _, u := range urls {
		host := strings.TrimPrefix(u.Hostname(), "www.")
		bot.Metrics.IncURL(host)

		if fn, ok := bot.urlHandlers[host]; ok {
			go fn(s, ev, u)
		}
	}
}

// FindURLs returns every http(s) URL in s.
func FindURLs(s string) (urls []*url.URL) {
	for _, word := range strings.Fields(s) {
		// links wrapped in <> don't embed, but are still links
		word = strings.TrimSuffix(strings.TrimPrefix(word, "<"), ">")

		u, err := url.Parse(word)
		if err != nil || u.Host == "" {
			continue
		}
		if u.Scheme != "http" && u.Scheme != "https" {
			continue
		}
		urls = append(urls, u)
	}
	return urls
}
