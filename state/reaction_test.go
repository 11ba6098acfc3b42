package state

import (
	"testing"

	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/stretchr/testify/assert"
)

func TestReactionKey(t *testing.T) {
	assert.Equal(t, "12345", ReactionKey(discord.Emoji{ID: 12345, Name: "blob"}))
	assert.Equal(t, "👍", ReactionKey(discord.Emoji{Name: "👍"}))
	// percent-encoded unicode names collapse to the same key
	assert.Equal(t, "👍", ReactionKey(discord.Emoji{Name: "%F0%9F%91%8D"}))
}

func TestReactionAddExistingUntouched(t *testing.T) {
	s := New(Options{Cache: AllCacheFlags()})
	ch := textChannel(t, s)
	msg := ch.Messages.Add(discord.Message{ID: 100, ChannelID: 10}, true)

	r := msg.Reactions.Add(discord.Emoji{Name: "👍"}, 2, false, true)
	again := msg.Reactions.Add(discord.Emoji{Name: "👍"}, 99, true, true)

	assert.Same(t, r, again)
	assert.Equal(t, 2, r.Count)
	assert.False(t, r.Me)
}

func TestReactionCountTracked(t *testing.T) {
	r := &Reaction{Count: -1}
	assert.False(t, r.CountTracked())
	r.Count = 0
	assert.True(t, r.CountTracked())
}
