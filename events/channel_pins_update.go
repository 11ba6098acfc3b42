package events

import (
	"github.com/diamondburned/arikawa/v3/gateway"

	"github.com/starshine-sys/mirror/state"
)

func (h *Handler) ChannelPinsUpdate(shardID int, ev *gateway.ChannelPinsUpdateEvent) *state.Channel {
	g := h.guildContext(shardID, ev.GuildID)
	ch := h.resolveChannel(ev.ChannelID, g)

	// unpinning the last pin delivers a zero timestamp; keep the previous one
	if ev.LastPin.IsValid() {
		ch.LastPin = ev.LastPin
	}
	return ch
}
