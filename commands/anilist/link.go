package anilist

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"emperror.dev/errors"
	"github.com/diamondburned/arikawa/v3/api"
	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/diamondburned/arikawa/v3/gateway"
	"github.com/diamondburned/arikawa/v3/state"
	"github.com/diamondburned/arikawa/v3/utils/json/option"
	"github.com/tracreed/ebina/clients"
	"github.com/tracreed/ebina/common/log"
)

// mediaID returns the ID in an anilist.co/anime/<id> or anilist.co/manga/<id> link.
func mediaID(u *url.URL) (int, bool) {
	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	if len(parts) < 2 || (parts[0] != "anime" && parts[0] != "manga") {
		return 0, false
	}

	id, err := strconv.Atoi(parts[1])
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// mediaLink shows info for an AniList link posted in chat.
func (bot *Bot) mediaLink(s *state.State, ev *gateway.MessageCreateEvent, u *url.URL) {
	id, ok := mediaID(u)
	if !ok {
		return
	}

	m, err := bot.AniList.Media(context.Background(), id)
	if err != nil {
		if !errors.Is(err, clients.ErrNoResults) {
			log.Errorf("Error getting AniList media %v: %v", id, err)
		}
		return
	}

	// adult entries only get an embed in NSFW channels
	if m.IsAdult {
		ch, err := s.Channel(ev.ChannelID)
		if err != nil || !ch.NSFW {
			return
		}
	}

	_, err = s.SendMessageComplex(ev.ChannelID, api.SendMessageData{
		Embeds:    []discord.Embed{mediaEmbed(*m)},
		Reference: &discord.MessageReference{MessageID: ev.ID},
		AllowedMentions: &api.AllowedMentions{
			RepliedUser: option.False,
		},
	})
	if err != nil {
		log.Errorf("Error sending AniList embed in %v: %v", ev.ChannelID, err)
	}
}
