package events

import (
	"testing"
	"time"

	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/diamondburned/arikawa/v3/gateway"

	"github.com/starshine-sys/mirror/state"
)

func newTestHandler(opts state.Options) *Handler {
	return New(state.New(opts), time.Minute)
}

func allCached() state.Options {
	return state.Options{Cache: state.AllCacheFlags()}
}

// seedGuild dispatches a full guild payload: guild 5 with text channel 10,
// members 7 and 8, and member 8 in voice on channel 10.
func seedGuild(t *testing.T, h *Handler) {
	t.Helper()

	h.Dispatch(0, &gateway.GuildCreateEvent{
		Guild: discord.Guild{ID: 5, Name: "den"},
		Channels: []discord.Channel{
			{ID: 10, Type: discord.GuildText},
		},
		Members: []discord.Member{
			{User: discord.User{ID: 7, Username: "seven"}},
			{User: discord.User{ID: 8, Username: "eight"}},
		},
		VoiceStates: []discord.VoiceState{
			{ChannelID: 10, UserID: 8},
		},
		MemberCount: 3,
	})
}
