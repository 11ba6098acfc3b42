package events

import (
	"github.com/diamondburned/arikawa/v3/gateway"

	"github.com/starshine-sys/mirror/state"
)

func (h *Handler) GuildUpdate(shardID int, ev *gateway.GuildUpdateEvent) (old, updated *state.Guild) {
	if g, ok := h.State.Guilds.Cache.Get(ev.ID); ok {
		old = g.Update(ev.Guild)
		return old, g
	}

	return nil, h.State.Guilds.Add(ev.Guild, shardID, h.State.Flags().Guilds)
}
