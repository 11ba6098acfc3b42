package events

import (
	"github.com/diamondburned/arikawa/v3/gateway"

	"github.com/starshine-sys/mirror/state"
)

func (h *Handler) GuildBanAdd(shardID int, ev *gateway.GuildBanAddEvent) (*state.Guild, *state.User) {
	g := h.resolveGuild(shardID, ev.GuildID)
	u := h.State.Users.Add(ev.User,
		h.State.Flags().Members || h.State.Users.Cache.Exists(ev.User.ID))
	return g, u
}

func (h *Handler) GuildBanRemove(shardID int, ev *gateway.GuildBanRemoveEvent) (*state.Guild, *state.User) {
	g := h.resolveGuild(shardID, ev.GuildID)
	u := h.State.Users.Add(ev.User,
		h.State.Flags().Members || h.State.Users.Cache.Exists(ev.User.ID))
	return g, u
}
