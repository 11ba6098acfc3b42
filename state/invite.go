package state

import (
	"time"

	"github.com/diamondburned/arikawa/v3/discord"

	"github.com/starshine-sys/mirror/common"
)

// Invite is a guild invite as observed from gateway events. Invites are
// keyed by code, not by snowflake.
type Invite struct {
	Code string

	Channel *Channel
	Guild   *Guild
	Inviter *User

	CreatedAt discord.Timestamp
	MaxAge    time.Duration
	MaxUses   int
	Temporary bool

	// Deleted is set when the invite is revoked or expires upstream.
	Deleted bool
}

// InviteManager owns one guild's invite cache.
type InviteManager struct {
	Cache *common.Collection[string, *Invite]

	guild *Guild
	state *State
}

// Add upserts an invite by code.
func (m *InviteManager) Add(inv *Invite, cache bool) *Invite {
	if existing, ok := m.Cache.Get(inv.Code); ok {
		*existing = *inv
		return existing
	}

	if cache {
		m.Cache.Set(inv.Code, inv)
	}
	return inv
}

// Remove deletes an invite from the cache.
func (m *InviteManager) Remove(code string) bool {
	return m.Cache.Delete(code)
}
