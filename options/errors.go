package options

import (
	"fmt"

	"github.com/diamondburned/arikawa/v3/discord"
)

// DeliveryError is returned when the option list couldn't be sent.
type DeliveryError struct {
	ChannelID discord.ChannelID
	Err       error
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("sending options in %v: %v", e.ChannelID, e.Err)
}

func (e *DeliveryError) Unwrap() error { return e.Err }

// CleanupError is a failed delete of a list message or reply.
// It is only ever logged.
type CleanupError struct {
	Message PresentedMessage
	Err     error
}

func (e *CleanupError) Error() string {
	return fmt.Sprintf("deleting message %v in %v: %v", e.Message.MessageID, e.Message.ChannelID, e.Err)
}

func (e *CleanupError) Unwrap() error { return e.Err }
