package events

import (
	"github.com/diamondburned/arikawa/v3/gateway"

	"github.com/starshine-sys/mirror/state"
)

func (h *Handler) GuildRoleCreate(shardID int, ev *gateway.GuildRoleCreateEvent) *state.Role {
	g := h.resolveGuild(shardID, ev.GuildID)

	// a guild already tracking roles keeps tracking new ones even when the
	// global flag is off
	return g.Roles.Add(ev.Role, h.State.Flags().Roles || g.Roles.Cache.Len() > 0)
}
