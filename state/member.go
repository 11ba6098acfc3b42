package state

import (
	"emperror.dev/errors"
	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/diamondburned/arikawa/v3/gateway"

	"github.com/starshine-sys/mirror/common"
)

// Member is a user's guild-scoped profile: the same user may be a member of
// any number of cached guilds, or none.
type Member struct {
	discord.Member

	GuildID discord.GuildID

	// Deleted is set when the member leaves or is removed.
	Deleted bool
	// Partial marks a stub constructed from minimal data.
	Partial bool
}

// Update applies a member update event in place and returns the
// pre-mutation snapshot.
func (m *Member) Update(ev *gateway.GuildMemberUpdateEvent) (old *Member) {
	c := *m
	c.RoleIDs = append([]discord.RoleID(nil), m.RoleIDs...)
	old = &c

	ev.UpdateMember(&m.Member)
	m.Partial = false
	return old
}

// MemberManager owns one guild's member cache, keyed by user ID.
type MemberManager struct {
	Cache *common.Collection[discord.UserID, *Member]

	guild *Guild
	state *State
}

// Add upserts a member. The embedded user is upserted into the global user
// cache under the same retention decision, so member-context payloads keep
// user identity in step.
func (m *MemberManager) Add(data discord.Member, cache bool) *Member {
	if data.User.ID.IsValid() {
		m.state.Users.Add(data.User, cache || m.state.Users.Cache.Exists(data.User.ID))
	}

	if existing, ok := m.Cache.Get(data.User.ID); ok {
		if cache {
			existing.patch(data)
		}
		return existing
	}

	mem := &Member{
		Member:  data,
		GuildID: m.guild.ID,
	}
	if cache {
		m.Cache.Set(data.User.ID, mem)
	}
	return mem
}

// patch merges a raw member payload, keeping previous values for absent
// fields.
func (m *Member) patch(data discord.Member) {
	// a bare {id} user, as presence payloads carry, must not clobber a full
	// cached identity
	if data.User.ID.IsValid() && data.User.Username != "" {
		m.User = data.User
	}
	if data.Nick != "" {
		m.Nick = data.Nick
	}
	if data.RoleIDs != nil {
		m.RoleIDs = data.RoleIDs
	}
	if data.Joined.IsValid() {
		m.Joined = data.Joined
	}
	m.Partial = false
}

// Stub constructs an uncached placeholder member for a bare user ID.
func (m *MemberManager) Stub(id discord.UserID) *Member {
	mem := m.Add(discord.Member{User: discord.User{ID: id}}, false)
	mem.Partial = true
	return mem
}

// Fetch returns the cached member, or retrieves and caches it through the
// REST collaborator.
func (m *MemberManager) Fetch(id discord.UserID) (*Member, error) {
	if mem, ok := m.Cache.Get(id); ok && !mem.Partial {
		return mem, nil
	}

	rest, err := m.state.rest()
	if err != nil {
		return nil, err
	}

	data, err := rest.Member(m.guild.ID, id)
	if err != nil {
		return nil, errors.Wrap(err, "fetch member")
	}
	return m.Add(*data, true), nil
}
