package events

import (
	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/diamondburned/arikawa/v3/gateway"

	"github.com/starshine-sys/mirror/state"
)

// ChannelDelete evicts a channel and tombstones it. Messages cached on a
// deleted guild channel are flagged deleted too, so references held by
// callers don't silently become orphans.
func (h *Handler) ChannelDelete(shardID int, ev *gateway.ChannelDeleteEvent) *state.Channel {
	g := h.guildContext(shardID, ev.GuildID)

	ch, ok := h.State.Channels.Cache.Get(ev.ID)
	if !ok {
		ch = h.State.Channels.Add(ev.Channel, g, false)
		ch.Deleted = true
		return ch
	}

	if ch.Messages != nil && ch.Type != discord.DirectMessage {
		for _, msg := range ch.Messages.Cache.Values() {
			msg.Deleted = true
		}
	}
	ch.StopTyping()

	h.State.Channels.Remove(ch.ID)
	ch.Deleted = true
	return ch
}
