package events

import (
	"github.com/diamondburned/arikawa/v3/gateway"

	"github.com/starshine-sys/mirror/state"
)

func (h *Handler) GuildRoleUpdate(shardID int, ev *gateway.GuildRoleUpdateEvent) (old, updated *state.Role) {
	g := h.resolveGuild(shardID, ev.GuildID)

	if r, ok := g.Roles.Cache.Get(ev.Role.ID); ok {
		old = r.Update(ev.Role)
		return old, r
	}

	return nil, g.Roles.Add(ev.Role, h.State.Flags().Roles || g.Roles.Cache.Len() > 0)
}
