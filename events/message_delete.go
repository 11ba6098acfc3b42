package events

import (
	"github.com/diamondburned/arikawa/v3/gateway"

	"github.com/starshine-sys/mirror/state"
)

func (h *Handler) MessageDelete(shardID int, ev *gateway.MessageDeleteEvent) *state.Message {
	g := h.guildContext(shardID, ev.GuildID)
	ch := h.resolveChannel(ev.ChannelID, g)

	msgs := ch.EnsureMessages()
	msg, ok := msgs.Cache.Get(ev.ID)
	if ok {
		msgs.Cache.Delete(ev.ID)
	} else {
		msg = msgs.Stub(ev.ID)
	}

	msg.Deleted = true
	return msg
}
