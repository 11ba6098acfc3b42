package events

import (
	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/diamondburned/arikawa/v3/gateway"

	"github.com/starshine-sys/mirror/state"
)

// PresenceUpdate applies an authoritative presence payload. Identity changes
// on the embedded user route through the user update action first, and a
// known user's member entry is refreshed from the payload as a side effect.
func (h *Handler) PresenceUpdate(shardID int, ev *gateway.PresenceUpdateEvent) (old, updated *state.Presence) {
	g := h.resolveGuild(shardID, ev.GuildID)
	flags := h.State.Flags()

	if ev.User.Username != "" && (flags.Members || h.State.Users.Cache.Exists(ev.User.ID)) {
		if u, ok := h.State.Users.Cache.Get(ev.User.ID); !ok || !u.EqualsData(ev.User) {
			h.UserUpdate(ev.User)
		}
	}

	if h.State.Users.Cache.Exists(ev.User.ID) {
		g.Members.Add(discord.Member{User: ev.User}, true)
	}

	if p, ok := g.Presences.Cache.Get(ev.User.ID); ok {
		old = p.Clone()
	}

	retain := old != nil || flags.Presences || h.State.Users.Cache.Exists(ev.User.ID)
	updated = g.Presences.Add(ev.Presence, retain)
	return old, updated
}
