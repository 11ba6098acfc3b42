package events

import (
	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/diamondburned/arikawa/v3/gateway"

	"github.com/starshine-sys/mirror/state"
)

func (h *Handler) GuildRoleDelete(shardID int, ev *gateway.GuildRoleDeleteEvent) *state.Role {
	g := h.resolveGuild(shardID, ev.GuildID)

	r, ok := g.Roles.Cache.Get(ev.RoleID)
	if !ok {
		// zero-permission stand-in so the deletion is still observable
		r = g.Roles.Add(discord.Role{ID: ev.RoleID}, false)
	}

	g.Roles.Cache.Delete(ev.RoleID)
	r.Deleted = true
	return r
}
