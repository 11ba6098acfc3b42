package state

import (
	"emperror.dev/errors"
	"github.com/diamondburned/arikawa/v3/discord"

	"github.com/starshine-sys/mirror/common"
)

// Guild is the locally mirrored view of a guild, and the aggregate root for
// the caches scoped to it. The Roles, Emojis, Channels and other manager
// fields shadow the raw payload slices of the embedded discord.Guild; the
// managers are authoritative once the guild is cached.
type Guild struct {
	discord.Guild

	// ShardID is the shard that first delivered this guild, propagated onto
	// lazily created stubs so later reconciliation can attribute them.
	ShardID int
	// Available is false while the gateway reports the guild unavailable.
	Available bool
	// Deleted is set when the guild is removed. Held references stay
	// readable; only cache membership is revoked.
	Deleted bool
	// Partial marks a stub constructed from a bare ID.
	Partial bool
	// MemberCount is tracked best effort: zero means untracked.
	MemberCount uint64

	Channels    *GuildChannelManager
	Members     *MemberManager
	Roles       *RoleManager
	Emojis      *EmojiManager
	Presences   *PresenceManager
	VoiceStates *VoiceStateManager
	Invites     *InviteManager

	state *State
}

// Update applies an update payload in place and returns the pre-mutation
// snapshot. Payload slices that are absent keep their previous values.
func (g *Guild) Update(data discord.Guild) (old *Guild) {
	c := *g
	old = &c

	if data.Roles == nil {
		data.Roles = g.Guild.Roles
	}
	if data.Emojis == nil {
		data.Emojis = g.Guild.Emojis
	}

	g.Guild = data
	g.Partial = false
	return old
}

// GuildManager owns the global guild cache.
type GuildManager struct {
	Cache *common.Collection[discord.GuildID, *Guild]

	state *State
}

// Add upserts a guild. A guild that is already cached is patched and kept;
// otherwise a new guild is constructed, retained only if cache is true.
// Calling Add twice with the same payload is idempotent.
func (m *GuildManager) Add(data discord.Guild, shardID int, cache bool) *Guild {
	if g, ok := m.Cache.Get(data.ID); ok {
		g.Update(data)
		return g
	}

	g := &Guild{
		Guild:     data,
		ShardID:   shardID,
		Available: true,
		state:     m.state,
	}
	g.Channels = &GuildChannelManager{
		Cache: common.NewCollection[discord.ChannelID, *Channel](),
		guild: g,
	}
	g.Members = &MemberManager{
		Cache: common.NewCollection[discord.UserID, *Member](),
		guild: g,
		state: m.state,
	}
	g.Roles = &RoleManager{
		Cache: common.NewCollection[discord.RoleID, *Role](),
		guild: g,
		state: m.state,
	}
	g.Emojis = &EmojiManager{
		Cache: common.NewCollection[discord.EmojiID, *Emoji](),
		guild: g,
		state: m.state,
	}
	g.Presences = &PresenceManager{
		Cache: common.NewCollection[discord.UserID, *Presence](),
		guild: g,
		state: m.state,
	}
	g.VoiceStates = &VoiceStateManager{
		Cache: common.NewCollection[discord.UserID, *VoiceState](),
		guild: g,
		state: m.state,
	}
	g.Invites = &InviteManager{
		Cache: common.NewCollection[string, *Invite](),
		guild: g,
		state: m.state,
	}

	if cache {
		m.Cache.Set(g.ID, g)
	}
	return g
}

// Stub constructs an uncached placeholder carrying only an ID and shard
// attribution.
func (m *GuildManager) Stub(id discord.GuildID, shardID int) *Guild {
	g := m.Add(discord.Guild{ID: id}, shardID, false)
	g.Partial = true
	return g
}

// Remove evicts a guild from the cache. The guild itself is not touched.
func (m *GuildManager) Remove(id discord.GuildID) {
	m.Cache.Delete(id)
}

// Fetch returns the cached guild, or retrieves and caches it through the
// REST collaborator.
func (m *GuildManager) Fetch(id discord.GuildID) (*Guild, error) {
	if g, ok := m.Cache.Get(id); ok && !g.Partial {
		return g, nil
	}

	rest, err := m.state.rest()
	if err != nil {
		return nil, err
	}

	data, err := rest.Guild(id)
	if err != nil {
		return nil, errors.Wrap(err, "fetch guild")
	}
	return m.Add(*data, 0, true), nil
}
