package state

import (
	"emperror.dev/errors"
	"github.com/diamondburned/arikawa/v3/discord"

	"github.com/starshine-sys/mirror/common"
)

// Channel is the locally mirrored view of any channel variant. The Type tag
// of the embedded payload selects the variant; text-capable variants carry
// a message cache and live typing state.
type Channel struct {
	discord.Channel

	// LastPin is the timestamp of the most recent pin, if one was observed.
	LastPin discord.Timestamp

	// Deleted is set when the channel is removed.
	Deleted bool
	// Partial marks a stand-in constructed from a bare ID.
	Partial bool

	// Messages is nil for variants that cannot contain messages.
	Messages *MessageManager

	typing *typingState

	guild *Guild
	state *State
}

// IsText reports whether the channel variant can contain messages.
func (ch *Channel) IsText() bool {
	switch ch.Type {
	case discord.GuildText, discord.DirectMessage, discord.GuildNews:
		return true
	}
	return false
}

// Guild returns the owning guild, or nil if unknown or not guild-scoped.
func (ch *Channel) Guild() *Guild {
	return ch.guild
}

// Update applies an update payload in place and returns the pre-mutation
// snapshot. The variant tag is applied as-is; reclassification across
// variants is the manager's job.
func (ch *Channel) Update(data discord.Channel) (old *Channel) {
	c := *ch
	old = &c

	ch.Channel = data
	ch.Partial = false
	return old
}

// EnsureMessages lazily attaches a message cache, for events that reference
// messages on a channel whose cached variant has none.
func (ch *Channel) EnsureMessages() *MessageManager {
	if ch.Messages == nil {
		ch.Messages = &MessageManager{
			Cache:   common.NewCollection[discord.MessageID, *Message](),
			channel: ch,
			state:   ch.state,
		}
	}
	return ch.Messages
}

func newChannel(s *State, data discord.Channel, g *Guild) *Channel {
	ch := &Channel{
		Channel: data,
		guild:   g,
		state:   s,
	}
	if g != nil && !ch.GuildID.IsValid() {
		ch.GuildID = g.ID
	}

	if ch.IsText() {
		ch.EnsureMessages()
		ch.typing = newTypingState(s.opts.TypingTimeout)
	}
	return ch
}

// ChannelManager owns the global channel cache, covering every variant
// including DMs.
type ChannelManager struct {
	Cache *common.Collection[discord.ChannelID, *Channel]

	state *State
}

// Add upserts a channel. Permission overwrites are dropped from the payload
// when overwrite caching is disabled. An already-cached channel is patched
// and kept regardless of the cache argument's value for retention.
func (m *ChannelManager) Add(data discord.Channel, g *Guild, cache bool) *Channel {
	if !m.state.flags.Overwrites {
		data.Overwrites = nil
	}

	if existing, ok := m.Cache.Get(data.ID); ok {
		if cache {
			existing.Update(data)
		}
		if existing.guild != nil {
			existing.guild.Channels.Add(existing)
		}
		return existing
	}

	ch := newChannel(m.state, data, g)
	if cache {
		m.Cache.Set(ch.ID, ch)

		if g != nil && (m.state.flags.Guilds || m.state.Guilds.Cache.Exists(g.ID)) {
			g.Channels.Add(ch)
		}
	}
	return ch
}

// Stub constructs an uncached minimal channel for an ID the client has
// never observed: a DM if there is no guild context, a text channel
// otherwise.
func (m *ChannelManager) Stub(id discord.ChannelID, g *Guild) *Channel {
	data := discord.Channel{
		ID:   id,
		Type: discord.DirectMessage,
	}
	if g != nil {
		data.Type = discord.GuildText
		data.GuildID = g.ID
	}

	ch := m.Add(data, g, false)
	ch.Partial = true
	return ch
}

// Remove evicts a channel from the global cache and from its guild's cache.
func (m *ChannelManager) Remove(id discord.ChannelID) {
	if ch, ok := m.Cache.Get(id); ok && ch.guild != nil {
		ch.guild.Channels.Cache.Delete(id)
	}
	m.Cache.Delete(id)
}

// Reclassify constructs a fresh channel of the variant carried by data,
// transplants the old channel's message cache and typing state, and swaps
// the new instance into the global and guild caches. After it returns,
// exactly one instance is reachable for the ID.
func (m *ChannelManager) Reclassify(old *Channel, data discord.Channel) *Channel {
	ch := newChannel(m.state, data, old.guild)

	if ch.Messages != nil && old.Messages != nil {
		ch.Messages.Cache = old.Messages.Cache
	}
	if ch.typing != nil && old.typing != nil {
		ch.typing = old.typing
	}

	m.Cache.Set(ch.ID, ch)
	if old.guild != nil {
		old.guild.Channels.Cache.Set(ch.ID, ch)
	}
	return ch
}

// Fetch returns the cached channel, or retrieves and caches it through the
// REST collaborator.
func (m *ChannelManager) Fetch(id discord.ChannelID) (*Channel, error) {
	if ch, ok := m.Cache.Get(id); ok && !ch.Partial {
		return ch, nil
	}

	rest, err := m.state.rest()
	if err != nil {
		return nil, err
	}

	data, err := rest.Channel(id)
	if err != nil {
		return nil, errors.Wrap(err, "fetch channel")
	}

	var g *Guild
	if data.GuildID.IsValid() {
		g, _ = m.state.Guilds.Cache.Get(data.GuildID)
	}
	return m.Add(*data, g, true), nil
}

// GuildChannelManager is a guild's view of its own channels. It does not
// construct channels; the global ChannelManager owns construction and this
// cache only tracks membership.
type GuildChannelManager struct {
	Cache *common.Collection[discord.ChannelID, *Channel]

	guild *Guild
}

// Add records a channel in the guild's cache. The guild back-reference and
// the cache entry are kept in agreement.
func (m *GuildChannelManager) Add(ch *Channel) *Channel {
	if existing, ok := m.Cache.Get(ch.ID); ok && existing == ch {
		return existing
	}

	ch.guild = m.guild
	if !ch.GuildID.IsValid() {
		ch.GuildID = m.guild.ID
	}
	m.Cache.Set(ch.ID, ch)
	return ch
}
