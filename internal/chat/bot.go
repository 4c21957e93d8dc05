package chat

import (
	"context"

	"anilookup/internal/plugin"
)

// Bot answers command lines posted in a room, e.g. "!al Naruto".
type Bot struct {
	Registry *plugin.Registry
	Marker   string
}

func NewBot(registry *plugin.Registry, marker string) *Bot {
	if marker == "" {
		marker = "!"
	}
	return &Bot{Registry: registry, Marker: marker}
}

// Reply runs the command in text and builds the room's answer. ok is false
// when text is ordinary chat or names no registered plugin.
func (b *Bot) Reply(ctx context.Context, room, text string) (Message, bool) {
	if b == nil || b.Registry == nil {
		return Message{}, false
	}
	prefix, args, ok := plugin.ParseCommand(b.Marker, text)
	if !ok {
		return Message{}, false
	}
	p, ok := b.Registry.Lookup(prefix)
	if !ok {
		return Message{}, false
	}

	card, err := b.Registry.Dispatch(ctx, prefix, args)
	if err != nil {
		return Message{
			Type: TypeError,
			Room: room,
			User: p.Name(),
			Text: plugin.UserMessage(err),
		}, true
	}
	return Message{
		Type: TypeCard,
		Room: room,
		User: p.Name(),
		Text: card.Heading(),
		Card: &card,
	}, true
}
