package state

import (
	"testing"

	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func textChannel(t *testing.T, s *State) *Channel {
	t.Helper()
	return s.Channels.Add(discord.Channel{ID: 10, Type: discord.GuildText}, nil, true)
}

func TestMessageCapEviction(t *testing.T) {
	s := New(Options{Cache: AllCacheFlags(), MaxMessages: 2})
	ch := textChannel(t, s)

	ch.Messages.Add(discord.Message{ID: 1, ChannelID: 10}, true)
	ch.Messages.Add(discord.Message{ID: 2, ChannelID: 10}, true)
	ch.Messages.Add(discord.Message{ID: 3, ChannelID: 10}, true)

	assert.Equal(t, 2, ch.Messages.Cache.Len())
	// oldest goes first
	assert.False(t, ch.Messages.Cache.Exists(1))
	assert.True(t, ch.Messages.Cache.Exists(2))
	assert.True(t, ch.Messages.Cache.Exists(3))
}

func TestMessagePartialUpdate(t *testing.T) {
	s := New(Options{Cache: AllCacheFlags()})
	ch := textChannel(t, s)

	msg := ch.Messages.Add(discord.Message{
		ID:        100,
		ChannelID: 10,
		Content:   "hello",
		Author:    discord.User{ID: 7, Username: "seven"},
	}, true)

	// an edit payload without an author only patches what it carries
	old := msg.Update(discord.Message{ID: 100, Content: "edited"})
	assert.Equal(t, "hello", old.Content)
	assert.Equal(t, "edited", msg.Content)
	assert.Equal(t, discord.UserID(7), msg.Author.ID)
}

func TestMessageStub(t *testing.T) {
	s := New(Options{Cache: AllCacheFlags()})
	ch := textChannel(t, s)

	msg := ch.Messages.Stub(100)
	assert.True(t, msg.Partial)
	assert.Equal(t, discord.ChannelID(10), msg.ChannelID)
	assert.False(t, ch.Messages.Cache.Exists(100))
	require.NotNil(t, msg.Reactions)
}

func TestMessageSeedsReactions(t *testing.T) {
	s := New(Options{Cache: AllCacheFlags()})
	ch := textChannel(t, s)

	msg := ch.Messages.Add(discord.Message{
		ID:        100,
		ChannelID: 10,
		Reactions: []discord.Reaction{
			{Count: 3, Me: true, Emoji: discord.Emoji{Name: "👍"}},
		},
	}, true)

	r, ok := msg.Reactions.Cache.Get("👍")
	require.True(t, ok)
	assert.Equal(t, 3, r.Count)
	assert.True(t, r.Me)
}
