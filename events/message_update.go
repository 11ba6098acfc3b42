package events

import (
	"github.com/diamondburned/arikawa/v3/gateway"

	"github.com/starshine-sys/mirror/state"
)

func (h *Handler) MessageUpdate(shardID int, ev *gateway.MessageUpdateEvent) (old, updated *state.Message) {
	g := h.guildContext(shardID, ev.GuildID)
	ch := h.resolveChannel(ev.ChannelID, g)

	msgs := ch.EnsureMessages()
	if msg, ok := msgs.Cache.Get(ev.ID); ok {
		old = msg.Update(ev.Message)
		return old, msg
	}

	return nil, msgs.Add(ev.Message, false)
}
