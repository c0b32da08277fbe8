package options

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"emperror.dev/errors"
	"github.com/diamondburned/arikawa/v3/api"
	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/diamondburned/arikawa/v3/utils/json/option"
	"github.com/tracreed/ebina/common/log"
)

// Messenger is the part of the Discord API the options flow needs.
// *state.State satisfies it.
type Messenger interface {
	SendMessageComplex(discord.ChannelID, api.SendMessageData) (*discord.Message, error)
	EditMessageComplex(discord.ChannelID, discord.MessageID, api.EditMessageData) (*discord.Message, error)
	DeleteMessage(discord.ChannelID, discord.MessageID, api.AuditLogReason) error
}

// Body returns the numbered option list, one line per option followed by "Cancel".
func Body(set ChoiceSet) string {
	var b strings.Builder
	for i, l := range set.labels {
		b.WriteString(strconv.Itoa(i + 1))
		b.WriteString(". ")
		b.WriteString(l)
		b.WriteByte('\n')
	}
	b.WriteString("Cancel")
	return b.String()
}

// Embed builds the option list embed.
func (p Presentation) Embed(set ChoiceSet) discord.Embed {
	return discord.Embed{
		Title:       p.Title,
		Description: Body(set),
		Color:       p.Colour,
		Author:      p.Author,
	}
}

// Present sends the option list to the channel.
// It returns the sent message and the number of lines shown, including "Cancel".
func Present(m Messenger, channelID discord.ChannelID, set ChoiceSet, pres Presentation) (PresentedMessage, int, error) {
	e := pres.Embed(set)
	if n := utf8.RuneCountInString(e.Description); n > MaxBodyLength {
		return PresentedMessage{}, 0, errors.WithMessagef(ErrInvalidConfig, "option list is %d characters long, maximum is %d", n, MaxBodyLength)
	}

	msg, err := m.SendMessageComplex(channelID, api.SendMessageData{
		Embeds: []discord.Embed{e},
	})
	if err != nil {
		return PresentedMessage{}, 0, &DeliveryError{ChannelID: channelID, Err: err}
	}

	return PresentedMessage{ChannelID: msg.ChannelID, MessageID: msg.ID}, set.Len() + 1, nil
}

// Clean deletes msg, logging but otherwise ignoring any error.
// Deleting an already deleted message is fine.
func Clean(m Messenger, msg PresentedMessage) {
	if !msg.IsValid() {
		return
	}

	err := m.DeleteMessage(msg.ChannelID, msg.MessageID, "")
	if err != nil {
		log.Debug(&CleanupError{Message: msg, Err: err})
	}
}

// Render shows the final content for a selected result.
// If the list message was kept it is edited in place, otherwise a new message is sent.
func Render(m Messenger, res Result, content string, embeds ...discord.Embed) (*discord.Message, error) {
	if !res.Selected() {
		return nil, ErrNotSelected
	}

	if !res.Kept {
		msg, err := m.SendMessageComplex(res.Message.ChannelID, api.SendMessageData{
			Content: content,
			Embeds:  embeds,
		})
		return msg, errors.Wrap(err, "sending result")
	}

	data := api.EditMessageData{Embeds: &embeds}
	if content != "" {
		data.Content = option.NewNullableString(content)
	}

	msg, err := m.EditMessageComplex(res.Message.ChannelID, res.Message.MessageID, data)
	return msg, errors.Wrap(err, "editing options message")
}
