package events

import (
	"github.com/diamondburned/arikawa/v3/gateway"

	"github.com/starshine-sys/mirror/state"
)

func (h *Handler) ChannelCreate(shardID int, ev *gateway.ChannelCreateEvent) *state.Channel {
	g := h.guildContext(shardID, ev.GuildID)

	return h.State.Channels.Add(ev.Channel, g,
		h.State.Flags().Channels || h.State.Channels.Cache.Exists(ev.ID))
}
