package events

import (
	"testing"

	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/diamondburned/arikawa/v3/gateway"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemberUpdateNoop(t *testing.T) {
	h := newTestHandler(allCached())
	seedGuild(t, h)

	var fired int
	h.AddSyncHandler(func(_ *MemberUpdateEvent) { fired++ })

	// the payload matches the cached member exactly
	h.Dispatch(0, &gateway.GuildMemberUpdateEvent{
		GuildID: 5,
		User:    discord.User{ID: 7, Username: "seven"},
	})

	assert.Zero(t, fired)
}

func TestMemberUpdateNick(t *testing.T) {
	h := newTestHandler(allCached())
	seedGuild(t, h)

	var fired *MemberUpdateEvent
	h.AddSyncHandler(func(ev *MemberUpdateEvent) { fired = ev })

	h.Dispatch(0, &gateway.GuildMemberUpdateEvent{
		GuildID: 5,
		User:    discord.User{ID: 7, Username: "seven"},
		Nick:    "lucky",
	})

	require.NotNil(t, fired)
	require.NotNil(t, fired.Old)
	assert.Empty(t, fired.Old.Nick)
	assert.Equal(t, "lucky", fired.Updated.Nick)
}

func TestMemberUpdateRoles(t *testing.T) {
	h := newTestHandler(allCached())
	seedGuild(t, h)

	old, updated, changed := h.GuildMemberUpdate(0, &gateway.GuildMemberUpdateEvent{
		GuildID: 5,
		User:    discord.User{ID: 7, Username: "seven"},
		RoleIDs: []discord.RoleID{9},
	})

	assert.True(t, changed)
	require.NotNil(t, old)
	assert.Empty(t, old.RoleIDs)
	assert.Equal(t, []discord.RoleID{9}, updated.RoleIDs)
}

func TestMemberUpdateUncached(t *testing.T) {
	h := newTestHandler(allCached())
	seedGuild(t, h)

	old, updated, changed := h.GuildMemberUpdate(0, &gateway.GuildMemberUpdateEvent{
		GuildID: 5,
		User:    discord.User{ID: 9, Username: "nine"},
		Nick:    "new",
	})

	assert.True(t, changed)
	assert.Nil(t, old)
	require.NotNil(t, updated)
	assert.Equal(t, "new", updated.Nick)
}

func TestMemberUpdateIdentityChange(t *testing.T) {
	h := newTestHandler(allCached())
	seedGuild(t, h)

	var userUpdates int
	h.AddSyncHandler(func(_ *UserUpdateEvent) { userUpdates++ })

	h.Dispatch(0, &gateway.GuildMemberUpdateEvent{
		GuildID: 5,
		User:    discord.User{ID: 7, Username: "renamed"},
	})

	// a username change routes through the user update action
	assert.Equal(t, 1, userUpdates)
	u, ok := h.State.Users.Cache.Get(7)
	require.True(t, ok)
	assert.Equal(t, "renamed", u.Username)
}

func TestMembersChunk(t *testing.T) {
	h := newTestHandler(allCached())
	seedGuild(t, h)
	g, _ := h.State.Guilds.Cache.Get(5)

	var chunk *MembersChunkEvent
	h.AddSyncHandler(func(ev *MembersChunkEvent) { chunk = ev })

	h.Dispatch(0, &gateway.GuildMembersChunkEvent{
		GuildID: 5,
		Members: []discord.Member{
			{User: discord.User{ID: 20, Username: "twenty"}},
			{User: discord.User{ID: 21, Username: "twentyone"}},
		},
	})

	require.NotNil(t, chunk)
	assert.Equal(t, 2, chunk.Members.Len())
	assert.True(t, g.Members.Cache.Exists(20))
	assert.True(t, g.Members.Cache.Exists(21))
}
