package events

import (
	"github.com/diamondburned/arikawa/v3/gateway"

	"github.com/starshine-sys/mirror/state"
)

func (h *Handler) GuildMemberAdd(shardID int, ev *gateway.GuildMemberAddEvent) *state.Member {
	g := h.resolveGuild(shardID, ev.GuildID)

	mem := g.Members.Add(ev.Member,
		h.State.Flags().Members || h.State.Users.Cache.Exists(ev.User.ID))

	// best effort: only adjust a count we are actually tracking
	if g.MemberCount > 0 {
		g.MemberCount++
	}
	return mem
}
