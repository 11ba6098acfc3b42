package state

import (
	"github.com/diamondburned/arikawa/v3/discord"

	"github.com/starshine-sys/mirror/common"
)

// Presence is the locally mirrored view of a user's presence in one guild.
type Presence struct {
	discord.Presence
}

// Clone returns a snapshot copy.
func (p *Presence) Clone() *Presence {
	c := *p
	return &c
}

// PresenceManager owns one guild's presence cache, keyed by user ID.
type PresenceManager struct {
	Cache *common.Collection[discord.UserID, *Presence]

	guild *Guild
	state *State
}

// Add upserts a presence. Presence payloads are authoritative, so an
// existing entry is replaced wholesale.
func (m *PresenceManager) Add(data discord.Presence, cache bool) *Presence {
	if p, ok := m.Cache.Get(data.User.ID); ok {
		p.Presence = data
		return p
	}

	p := &Presence{Presence: data}
	if cache {
		m.Cache.Set(data.User.ID, p)
	}
	return p
}
