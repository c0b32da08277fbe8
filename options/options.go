// Package options implements the numbered-choice flow used by lookup commands:
// a list of candidates is shown, the requester answers with a number or "cancel",
// and the caller gets back which candidate (if any) was picked.
package options

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"emperror.dev/errors"
	"github.com/diamondburned/arikawa/v3/discord"
)

const (
	// DefaultTimeout is how long a session waits for a reply.
	DefaultTimeout = 60 * time.Second

	// MaxTitleLength is the longest embed title Discord accepts, in code points.
	MaxTitleLength = 256
	// MaxBodyLength is the longest embed description Discord accepts, in code points.
	MaxBodyLength = 4096

	cancelKeyword = "cancel"
)

// ErrInvalidConfig is returned before anything is sent if a session can't be shown.
const ErrInvalidConfig = errors.Sentinel("invalid options configuration")

// ErrNotSelected is returned by Render for results that didn't select anything.
const ErrNotSelected = errors.Sentinel("no option was selected")

// ChoiceSet is an ordered, non-empty list of option labels.
// Labels are shown 1-indexed in insertion order.
type ChoiceSet struct {
	labels []string
}

// NewChoiceSet returns a ChoiceSet with the given labels.
func NewChoiceSet(labels ...string) (ChoiceSet, error) {
	if len(labels) == 0 {
		return ChoiceSet{}, errors.WithMessage(ErrInvalidConfig, "no options given")
	}

	for i, l := range labels {
		if strings.TrimSpace(l) == "" {
			return ChoiceSet{}, errors.WithMessagef(ErrInvalidConfig, "option %d is empty", i+1)
		}
	}

	return ChoiceSet{labels: append([]string(nil), labels...)}, nil
}

// Len returns the number of options.
func (c ChoiceSet) Len() int { return len(c.labels) }

// Labels returns a copy of the option labels.
func (c ChoiceSet) Labels() []string {
	return append([]string(nil), c.labels...)
}

// Presentation configures how the option list is shown.
type Presentation struct {
	// Title is required.
	Title string
	// Colour is the embed accent colour; zero is the platform default.
	Colour discord.Color
	// Author is an optional byline shown above the title.
	Author *discord.EmbedAuthor

	// EditAfterChoice keeps the list message after a selection so the caller can edit it.
	// If false, the list is deleted as soon as the session resolves.
	EditAfterChoice bool
}

// Validate checks the presentation against Discord's embed limits.
func (p Presentation) Validate() error {
	if strings.TrimSpace(p.Title) == "" {
		return errors.WithMessage(ErrInvalidConfig, "title is required")
	}

	if n := utf8.RuneCountInString(p.Title); n > MaxTitleLength {
		return errors.WithMessagef(ErrInvalidConfig, "title is %d characters long, maximum is %d", n, MaxTitleLength)
	}

	if p.Author != nil && p.Author.Name == "" {
		return errors.WithMessage(ErrInvalidConfig, "author needs a name")
	}
	return nil
}

// Resolution is the outcome of a session.
type Resolution int

const (
	// Pending means no reply has resolved the session yet. Run never returns it.
	Pending Resolution = iota
	// Selected means the requester picked an option; Result.Index is set.
	Selected
	// Cancelled means the requester replied "cancel".
	Cancelled
	// TimedOut means the deadline passed, or the caller's context was done, before a valid reply.
	TimedOut
)

func (r Resolution) String() string {
	switch r {
	case Pending:
		return "pending"
	case Selected:
		return "selected"
	case Cancelled:
		return "cancelled"
	case TimedOut:
		return "timed out"
	}
	return fmt.Sprintf("Resolution(%d)", int(r))
}

// PresentedMessage identifies the option list message.
type PresentedMessage struct {
	ChannelID discord.ChannelID
	MessageID discord.MessageID
}

// IsValid returns true if the message was actually sent.
func (m PresentedMessage) IsValid() bool {
	return m.ChannelID.IsValid() && m.MessageID.IsValid()
}

// Result is returned by Session.Run.
type Result struct {
	Resolution Resolution
	// Index is the zero-based selected option, or -1.
	Index int
	// Message is the presented message, only set for selections.
	Message PresentedMessage
	// Kept is true if Message still exists and can be edited.
	Kept bool
}

// Selected returns true if an option was chosen.
func (r Result) Selected() bool {
	return r.Resolution == Selected
}
