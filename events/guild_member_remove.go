package events

import (
	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/diamondburned/arikawa/v3/gateway"

	"github.com/starshine-sys/mirror/state"
)

// GuildMemberRemove drops a departing member from the guild's member cache
// and its voice state cache in the same step; a member who left cannot keep
// a voice session.
func (h *Handler) GuildMemberRemove(shardID int, ev *gateway.GuildMemberRemoveEvent) (*state.Guild, *state.Member) {
	g := h.resolveGuild(shardID, ev.GuildID)

	mem, ok := g.Members.Cache.Get(ev.User.ID)
	if !ok {
		mem = g.Members.Add(discord.Member{User: ev.User}, false)
	}

	mem.Deleted = true
	g.Members.Cache.Delete(ev.User.ID)
	g.VoiceStates.Remove(ev.User.ID)

	if g.MemberCount > 0 {
		g.MemberCount--
	}

	return g, mem
}
