package state

import (
	"emperror.dev/errors"
	"github.com/diamondburned/arikawa/v3/discord"

	"github.com/starshine-sys/mirror/common"
)

// Emoji is the locally mirrored view of a custom guild emoji.
type Emoji struct {
	discord.Emoji

	GuildID discord.GuildID

	// Deleted is set when the emoji is removed.
	Deleted bool
}

// EqualsData reports structural equality with an incoming emoji payload.
// Used by the bulk emoji reconciliation to avoid spurious update events.
func (e *Emoji) EqualsData(data discord.Emoji) bool {
	if e.Name != data.Name ||
		e.Animated != data.Animated ||
		e.Managed != data.Managed ||
		e.RequireColons != data.RequireColons ||
		len(e.RoleIDs) != len(data.RoleIDs) {
		return false
	}
	for i := range e.RoleIDs {
		if e.RoleIDs[i] != data.RoleIDs[i] {
			return false
		}
	}
	return true
}

// Update applies an update payload in place and returns the pre-mutation
// snapshot.
func (e *Emoji) Update(data discord.Emoji) (old *Emoji) {
	c := *e
	old = &c

	e.Emoji = data
	return old
}

// EmojiManager owns one guild's emoji cache.
type EmojiManager struct {
	Cache *common.Collection[discord.EmojiID, *Emoji]

	guild *Guild
	state *State
}

// Add upserts an emoji.
func (m *EmojiManager) Add(data discord.Emoji, cache bool) *Emoji {
	if e, ok := m.Cache.Get(data.ID); ok {
		e.Update(data)
		return e
	}

	e := &Emoji{
		Emoji:   data,
		GuildID: m.guild.ID,
	}
	if cache {
		m.Cache.Set(e.ID, e)
	}
	return e
}

// Remove evicts an emoji from the cache.
func (m *EmojiManager) Remove(id discord.EmojiID) bool {
	return m.Cache.Delete(id)
}

// Fetch returns the cached emoji, or retrieves the guild's emoji list
// through the REST collaborator and caches all of it.
func (m *EmojiManager) Fetch(id discord.EmojiID) (*Emoji, error) {
	if e, ok := m.Cache.Get(id); ok {
		return e, nil
	}

	rest, err := m.state.rest()
	if err != nil {
		return nil, err
	}

	emojis, err := rest.Emojis(m.guild.ID)
	if err != nil {
		return nil, errors.Wrap(err, "fetch emojis")
	}

	var found *Emoji
	for _, data := range emojis {
		e := m.Add(data, true)
		if e.ID == id {
			found = e
		}
	}
	if found == nil {
		return nil, ErrNotFound
	}
	return found, nil
}
