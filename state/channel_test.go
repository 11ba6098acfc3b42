package state

import (
	"testing"

	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChannelStubVariants(t *testing.T) {
	s := New(Options{Cache: AllCacheFlags()})

	dm := s.Channels.Stub(10, nil)
	assert.True(t, dm.Partial)
	assert.Equal(t, discord.DirectMessage, dm.Type)
	assert.False(t, s.Channels.Cache.Exists(10))

	g := s.Guilds.Add(discord.Guild{ID: 5}, 0, true)
	ch := s.Channels.Stub(11, g)
	assert.Equal(t, discord.GuildText, ch.Type)
	assert.Equal(t, discord.GuildID(5), ch.GuildID)
}

func TestChannelAddDropsOverwrites(t *testing.T) {
	flags := AllCacheFlags()
	flags.Overwrites = false
	s := New(Options{Cache: flags})

	g := s.Guilds.Add(discord.Guild{ID: 5}, 0, true)
	ch := s.Channels.Add(discord.Channel{
		ID:         10,
		Type:       discord.GuildText,
		GuildID:    5,
		Overwrites: []discord.Overwrite{{ID: 7}},
	}, g, true)

	assert.Empty(t, ch.Overwrites)
	assert.True(t, g.Channels.Cache.Exists(10))
}

func TestChannelRemove(t *testing.T) {
	s := New(Options{Cache: AllCacheFlags()})

	g := s.Guilds.Add(discord.Guild{ID: 5}, 0, true)
	s.Channels.Add(discord.Channel{ID: 10, Type: discord.GuildText, GuildID: 5}, g, true)

	s.Channels.Remove(10)
	assert.False(t, s.Channels.Cache.Exists(10))
	assert.False(t, g.Channels.Cache.Exists(10))
}

func TestChannelReclassify(t *testing.T) {
	s := New(Options{Cache: AllCacheFlags()})

	g := s.Guilds.Add(discord.Guild{ID: 5}, 0, true)
	ch := s.Channels.Add(discord.Channel{ID: 10, Type: discord.GuildText, GuildID: 5}, g, true)
	msg := ch.Messages.Add(discord.Message{ID: 100, ChannelID: 10}, true)

	swapped := s.Channels.Reclassify(ch, discord.Channel{ID: 10, Type: discord.GuildNews, GuildID: 5})

	// exactly one instance is reachable afterwards
	cached, ok := s.Channels.Cache.Get(10)
	require.True(t, ok)
	assert.Same(t, swapped, cached)
	inGuild, ok := g.Channels.Cache.Get(10)
	require.True(t, ok)
	assert.Same(t, swapped, inGuild)

	// the message cache came along
	got, ok := swapped.Messages.Cache.Get(100)
	require.True(t, ok)
	assert.Same(t, msg, got)
	assert.Equal(t, discord.GuildNews, swapped.Type)
}

func TestEnsureMessages(t *testing.T) {
	s := New(Options{})

	ch := s.Channels.Add(discord.Channel{ID: 10, Type: discord.GuildVoice}, nil, true)
	assert.Nil(t, ch.Messages)

	msgs := ch.EnsureMessages()
	require.NotNil(t, msgs)
	assert.Same(t, msgs, ch.EnsureMessages())
}
