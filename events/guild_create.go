package events

import (
	"github.com/diamondburned/arikawa/v3/gateway"

	"github.com/starshine-sys/mirror/state"
)

// GuildCreate handles both a genuine join and a guild coming back from an
// outage. created is false for an availability flip on an already-cached
// guild; no public create event should fire for those.
func (h *Handler) GuildCreate(shardID int, ev *gateway.GuildCreateEvent) (g *state.Guild, created bool) {
	if g, ok := h.State.Guilds.Cache.Get(ev.ID); ok {
		if !g.Available && !ev.Unavailable {
			h.addGuild(shardID, ev)
		}
		return g, false
	}

	return h.addGuild(shardID, ev), true
}

// addGuild applies a full guild payload: the guild itself plus the nested
// role, emoji, channel, member, presence and voice state lists it carries.
func (h *Handler) addGuild(shardID int, ev *gateway.GuildCreateEvent) *state.Guild {
	flags := h.State.Flags()

	g := h.State.Guilds.Add(ev.Guild, shardID, flags.Guilds)
	g.Available = !ev.Unavailable
	if ev.MemberCount > 0 {
		g.MemberCount = ev.MemberCount
	}

	for _, r := range ev.Roles {
		g.Roles.Add(r, flags.Roles)
	}
	for _, e := range ev.Emojis {
		g.Emojis.Add(e, flags.Emojis)
	}
	for _, data := range ev.Channels {
		data.GuildID = g.ID
		h.State.Channels.Add(data, g, flags.Channels)
	}
	for _, m := range ev.Members {
		g.Members.Add(m, flags.Members)
	}
	for _, p := range ev.Presences {
		g.Presences.Add(p, flags.Presences)
	}
	for _, v := range ev.VoiceStates {
		v.GuildID = g.ID
		g.VoiceStates.Add(v, flags.VoiceStates)
	}

	return g
}
