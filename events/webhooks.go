package events

import (
	"github.com/diamondburned/arikawa/v3/gateway"

	"github.com/starshine-sys/mirror/state"
)

// WebhooksUpdate and GuildIntegrationsUpdate carry no entity payload; they
// only resolve what they point at so the emitted event is well formed.

func (h *Handler) WebhooksUpdate(shardID int, ev *gateway.WebhooksUpdateEvent) *state.Channel {
	g := h.resolveGuild(shardID, ev.GuildID)
	return h.resolveChannel(ev.ChannelID, g)
}

func (h *Handler) GuildIntegrationsUpdate(shardID int, ev *gateway.GuildIntegrationsUpdateEvent) *state.Guild {
	return h.resolveGuild(shardID, ev.GuildID)
}
