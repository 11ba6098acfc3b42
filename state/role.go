package state

import (
	"emperror.dev/errors"
	"github.com/diamondburned/arikawa/v3/discord"

	"github.com/starshine-sys/mirror/common"
)

// Role is the locally mirrored view of a guild role.
type Role struct {
	discord.Role

	GuildID discord.GuildID

	// Deleted is set when the role is removed.
	Deleted bool
}

// Update applies an update payload in place and returns the pre-mutation
// snapshot.
func (r *Role) Update(data discord.Role) (old *Role) {
	c := *r
	old = &c

	r.Role = data
	return old
}

// RoleManager owns one guild's role cache.
type RoleManager struct {
	Cache *common.Collection[discord.RoleID, *Role]

	guild *Guild
	state *State
}

// Add upserts a role.
func (m *RoleManager) Add(data discord.Role, cache bool) *Role {
	if r, ok := m.Cache.Get(data.ID); ok {
		r.Update(data)
		return r
	}

	r := &Role{
		Role:    data,
		GuildID: m.guild.ID,
	}
	if cache {
		m.Cache.Set(r.ID, r)
	}
	return r
}

// Fetch returns the cached role, or retrieves the guild's role list through
// the REST collaborator and caches all of it.
func (m *RoleManager) Fetch(id discord.RoleID) (*Role, error) {
	if r, ok := m.Cache.Get(id); ok {
		return r, nil
	}

	rest, err := m.state.rest()
	if err != nil {
		return nil, err
	}

	roles, err := rest.Roles(m.guild.ID)
	if err != nil {
		return nil, errors.Wrap(err, "fetch roles")
	}

	var found *Role
	for _, data := range roles {
		r := m.Add(data, true)
		if r.ID == id {
			found = r
		}
	}
	if found == nil {
		return nil, ErrNotFound
	}
	return found, nil
}
