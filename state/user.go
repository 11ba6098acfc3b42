package state

import (
	"emperror.dev/errors"
	"github.com/diamondburned/arikawa/v3/discord"

	"github.com/starshine-sys/mirror/common"
)

// User is the locally mirrored view of a user, independent of any guild.
type User struct {
	discord.User

	// Partial marks a stub constructed from a bare ID.
	Partial bool
}

// EqualsData reports whether the cached user's identity fields match an
// incoming payload.
func (u *User) EqualsData(data discord.User) bool {
	return u.Username == data.Username &&
		u.Discriminator == data.Discriminator &&
		u.Avatar == data.Avatar &&
		u.Bot == data.Bot
}

// Update applies an update payload in place and returns the pre-mutation
// snapshot.
func (u *User) Update(data discord.User) (old *User) {
	c := *u
	old = &c

	u.User = data
	u.Partial = false
	return old
}

// UserManager owns the global user cache.
type UserManager struct {
	Cache *common.Collection[discord.UserID, *User]

	state *State
}

// Add upserts a user. An already-cached user is patched and kept.
func (m *UserManager) Add(data discord.User, cache bool) *User {
	if u, ok := m.Cache.Get(data.ID); ok {
		if data.Username != "" {
			u.Update(data)
		}
		return u
	}

	u := &User{User: data}
	if cache {
		m.Cache.Set(u.ID, u)
	}
	return u
}

// Stub constructs an uncached placeholder carrying only an ID.
func (m *UserManager) Stub(id discord.UserID) *User {
	u := m.Add(discord.User{ID: id}, false)
	u.Partial = true
	return u
}

// Fetch returns the cached user, or retrieves and caches it through the
// REST collaborator.
func (m *UserManager) Fetch(id discord.UserID) (*User, error) {
	if u, ok := m.Cache.Get(id); ok && !u.Partial {
		return u, nil
	}

	rest, err := m.state.rest()
	if err != nil {
		return nil, err
	}

	data, err := rest.User(id)
	if err != nil {
		return nil, errors.Wrap(err, "fetch user")
	}
	return m.Add(*data, true), nil
}
