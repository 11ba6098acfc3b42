package events

import (
	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/diamondburned/arikawa/v3/gateway"

	"github.com/starshine-sys/mirror/state"
)

// GuildMemberUpdate patches a member's guild-scoped fields. An identity
// change on the embedded user routes through the user update action first,
// emitting its own event, so user data stays canonical in one place.
// changed is false when the member was cached and the payload was a no-op;
// no member update should be emitted for those.
func (h *Handler) GuildMemberUpdate(shardID int, ev *gateway.GuildMemberUpdateEvent) (old, updated *state.Member, changed bool) {
	if ev.User.Username != "" {
		if u, ok := h.State.Users.Cache.Get(ev.User.ID); !ok {
			if h.State.Flags().Members {
				h.State.Users.Add(ev.User, true)
			}
		} else if !u.EqualsData(ev.User) {
			uOld, uNew := h.UserUpdate(ev.User)
			h.Call(&UserUpdateEvent{Old: uOld, Updated: uNew})
		}
	}

	g := h.resolveGuild(shardID, ev.GuildID)

	if mem, ok := g.Members.Cache.Get(ev.User.ID); ok {
		old = mem.Update(ev)
		return old, mem, !memberEqual(old, mem)
	}

	var data discord.Member
	ev.UpdateMember(&data)
	mem := g.Members.Add(data, h.State.Users.Cache.Exists(ev.User.ID))
	return nil, mem, true
}

// memberEqual compares the guild-scoped fields a member update can change.
func memberEqual(a, b *state.Member) bool {
	if a.Nick != b.Nick || len(a.RoleIDs) != len(b.RoleIDs) {
		return false
	}
	for i := range a.RoleIDs {
		if a.RoleIDs[i] != b.RoleIDs[i] {
			return false
		}
	}
	return true
}
