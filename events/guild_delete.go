package events

import (
	"github.com/diamondburned/arikawa/v3/gateway"

	"github.com/starshine-sys/mirror/state"
)

// GuildDelete distinguishes an outage from an actual removal. An outage only
// flips Available; a removal evicts the guild and its channels, tombstones
// it, and registers it in the bridge table so in-flight REST responses can
// still attribute it.
func (h *Handler) GuildDelete(shardID int, ev *gateway.GuildDeleteEvent) (g *state.Guild, unavailable bool) {
	g = h.resolveGuild(shardID, ev.ID)

	// live typing indicators don't outlast the guild either way
	for _, ch := range g.Channels.Cache.Values() {
		ch.StopTyping()
	}

	if ev.Unavailable {
		g.Available = false
		return g, true
	}

	for _, ch := range g.Channels.Cache.Values() {
		h.State.Channels.Remove(ch.ID)
	}

	h.State.Guilds.Remove(g.ID)
	g.Deleted = true

	h.DeletedGuilds.Set(g.ID.String(), g)
	return g, false
}
