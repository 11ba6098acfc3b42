package state

import (
	"testing"

	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemberAddUpsertsUser(t *testing.T) {
	s := New(Options{Cache: AllCacheFlags()})
	g := s.Guilds.Add(discord.Guild{ID: 5}, 0, true)

	mem := g.Members.Add(discord.Member{
		User: discord.User{ID: 7, Username: "seven"},
		Nick: "numbers",
	}, true)

	assert.Equal(t, discord.GuildID(5), mem.GuildID)
	u, ok := s.Users.Cache.Get(7)
	require.True(t, ok)
	assert.Equal(t, "seven", u.Username)
}

func TestMemberPatchKeepsAbsentFields(t *testing.T) {
	s := New(Options{Cache: AllCacheFlags()})
	g := s.Guilds.Add(discord.Guild{ID: 5}, 0, true)

	mem := g.Members.Add(discord.Member{
		User:    discord.User{ID: 7, Username: "seven"},
		Nick:    "numbers",
		RoleIDs: []discord.RoleID{9},
	}, true)

	again := g.Members.Add(discord.Member{User: discord.User{ID: 7, Username: "seven"}}, true)
	assert.Same(t, mem, again)
	assert.Equal(t, "numbers", mem.Nick)
	require.Len(t, mem.RoleIDs, 1)

	// a bare {id} user must not clobber the cached identity
	g.Members.Add(discord.Member{User: discord.User{ID: 7}}, true)
	assert.Equal(t, "seven", mem.User.Username)
}

func TestMemberStub(t *testing.T) {
	s := New(Options{Cache: AllCacheFlags()})
	g := s.Guilds.Add(discord.Guild{ID: 5}, 0, true)

	mem := g.Members.Stub(7)
	assert.True(t, mem.Partial)
	assert.False(t, g.Members.Cache.Exists(7))
}
