package events

import (
	"testing"

	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/diamondburned/arikawa/v3/gateway"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/starshine-sys/mirror/state"
)

func seedMessage(t *testing.T, h *Handler) *state.Message {
	t.Helper()
	seedGuild(t, h)

	ch, ok := h.State.Channels.Cache.Get(10)
	require.True(t, ok)
	return ch.EnsureMessages().Add(discord.Message{ID: 100, ChannelID: 10}, true)
}

func reactionAdd(user discord.UserID) *gateway.MessageReactionAddEvent {
	return &gateway.MessageReactionAddEvent{
		UserID:    user,
		ChannelID: 10,
		MessageID: 100,
		GuildID:   5,
		Emoji:     discord.Emoji{Name: "👍"},
	}
}

func reactionRemove(user discord.UserID) *gateway.MessageReactionRemoveEvent {
	return &gateway.MessageReactionRemoveEvent{
		UserID:    user,
		ChannelID: 10,
		MessageID: 100,
		GuildID:   5,
		Emoji:     discord.Emoji{Name: "👍"},
	}
}

func TestReactionCounts(t *testing.T) {
	h := newTestHandler(allCached())
	msg := seedMessage(t, h)

	_, r, _ := h.MessageReactionAdd(0, reactionAdd(7))
	assert.Equal(t, 1, r.Count)
	_, r, _ = h.MessageReactionAdd(0, reactionAdd(8))
	assert.Equal(t, 2, r.Count)
	assert.True(t, r.Users.Cache.Exists(7))
	assert.True(t, r.Users.Cache.Exists(8))

	// re-adding the same reactor is a no-op on the count
	_, r, _ = h.MessageReactionAdd(0, reactionAdd(8))
	assert.Equal(t, 2, r.Count)

	_, r, _ = h.MessageReactionRemove(0, reactionRemove(8))
	assert.Equal(t, 1, r.Count)
	assert.False(t, r.Users.Cache.Exists(8))

	// the last reactor going away removes the entry entirely
	_, r, _ = h.MessageReactionRemove(0, reactionRemove(7))
	assert.Zero(t, r.Count)
	assert.False(t, msg.Reactions.Cache.Exists("👍"))
}

func TestReactionOnUncachedMessage(t *testing.T) {
	h := newTestHandler(allCached())
	seedGuild(t, h)

	msg, r, _ := h.MessageReactionAdd(0, &gateway.MessageReactionAddEvent{
		UserID:    7,
		ChannelID: 10,
		MessageID: 200,
		GuildID:   5,
		Emoji:     discord.Emoji{Name: "👍"},
	})

	assert.True(t, msg.Partial)
	// counts aren't meaningful until the message is fully loaded
	assert.False(t, r.CountTracked())
	assert.Zero(t, r.Users.Cache.Len())
}

func TestReactionSelf(t *testing.T) {
	h := newTestHandler(allCached())
	h.State.SetSelf(discord.User{ID: 1, Username: "mirror"})
	seedMessage(t, h)

	_, r, _ := h.MessageReactionAdd(0, reactionAdd(1))
	assert.True(t, r.Me)

	_, r, _ = h.MessageReactionAdd(0, reactionAdd(7))

	_, r, _ = h.MessageReactionRemove(0, reactionRemove(1))
	assert.False(t, r.Me)
	assert.Equal(t, 1, r.Count)
}

func TestReactionRemoveAll(t *testing.T) {
	h := newTestHandler(allCached())
	msg := seedMessage(t, h)

	h.MessageReactionAdd(0, reactionAdd(7))
	h.MessageReactionAdd(0, reactionAdd(8))
	require.Equal(t, 1, msg.Reactions.Cache.Len())

	h.Dispatch(0, &gateway.MessageReactionRemoveAllEvent{
		ChannelID: 10,
		MessageID: 100,
		GuildID:   5,
	})
	assert.Zero(t, msg.Reactions.Cache.Len())
}

func TestReactionRemoveEmoji(t *testing.T) {
	h := newTestHandler(allCached())
	msg := seedMessage(t, h)

	h.MessageReactionAdd(0, reactionAdd(7))

	got, r := h.MessageReactionRemoveEmoji(0, &gateway.MessageReactionRemoveEmojiEvent{
		ChannelID: 10,
		MessageID: 100,
		GuildID:   5,
		Emoji:     discord.Emoji{Name: "👍"},
	})

	assert.Same(t, msg, got)
	require.NotNil(t, r)
	assert.False(t, msg.Reactions.Cache.Exists("👍"))
}
