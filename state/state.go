// Package state holds a partially materialized local mirror of remote
// entities: guilds, channels, messages, members, roles, emojis, reactions,
// presences and voice states, each owned by a manager with an
// insertion-ordered cache.
//
// The mirror is best effort by design: the gateway references entities the
// client may never have observed, so every manager can construct uncached
// partial stand-ins, and nothing in this package fails on an unknown ID.
package state

import (
	"sync"
	"time"

	"github.com/diamondburned/arikawa/v3/discord"

	"github.com/starshine-sys/mirror/common"
)

// DefaultTypingTimeout is how long a typing indicator lives without being
// refreshed. The gateway never sends a "stopped typing" signal, expiry is
// the only cleanup.
const DefaultTypingTimeout = 10 * time.Second

// Options configures a State.
type Options struct {
	// Cache decides which newly observed entity kinds are retained.
	Cache CacheFlags
	// MaxMessages caps each channel's message cache, evicting oldest first.
	// Zero means unlimited.
	MaxMessages int
	// TypingTimeout overrides DefaultTypingTimeout if positive.
	TypingTimeout time.Duration
	// REST is the fallback used by the managers' Fetch methods. Optional.
	REST RESTClient
}

// State is the local mirror. All mutation goes through the managers (driven
// by the events package); readers may hold entity pointers across events,
// as deleted entities are flagged rather than invalidated.
type State struct {
	opts  Options
	flags CacheFlags

	Guilds   *GuildManager
	Channels *ChannelManager
	Users    *UserManager

	selfMu sync.RWMutex
	self   *User
}

// New creates a State with the given options.
func New(opts Options) *State {
	if opts.TypingTimeout <= 0 {
		opts.TypingTimeout = DefaultTypingTimeout
	}

	s := &State{
		opts:  opts,
		flags: opts.Cache,
	}

	s.Guilds = &GuildManager{
		Cache: common.NewCollection[discord.GuildID, *Guild](),
		state: s,
	}
	s.Channels = &ChannelManager{
		Cache: common.NewCollection[discord.ChannelID, *Channel](),
		state: s,
	}
	s.Users = &UserManager{
		Cache: common.NewCollection[discord.UserID, *User](),
		state: s,
	}

	return s
}

// Flags returns the selective caching policy.
func (s *State) Flags() CacheFlags {
	return s.flags
}

// SetSelf records the local user, as delivered by the ready payload, and
// caches it unconditionally.
func (s *State) SetSelf(data discord.User) *User {
	u := s.Users.Add(data, true)

	s.selfMu.Lock()
	s.self = u
	s.selfMu.Unlock()
	return u
}

// Self returns the local user, or nil before the first ready.
func (s *State) Self() *User {
	s.selfMu.RLock()
	defer s.selfMu.RUnlock()
	return s.self
}

// SelfID returns the local user's ID, or 0 before the first ready.
func (s *State) SelfID() discord.UserID {
	s.selfMu.RLock()
	defer s.selfMu.RUnlock()

	if s.self == nil {
		return 0
	}
	return s.self.ID
}
