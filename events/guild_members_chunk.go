package events

import (
	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/diamondburned/arikawa/v3/gateway"

	"github.com/starshine-sys/mirror/common"
	"github.com/starshine-sys/mirror/state"
)

// GuildMembersChunk materializes a requested member chunk. The members are
// returned in payload order; retention follows the member policy flag.
func (h *Handler) GuildMembersChunk(shardID int, ev *gateway.GuildMembersChunkEvent) (*state.Guild, *common.Collection[discord.UserID, *state.Member]) {
	g := h.resolveGuild(shardID, ev.GuildID)

	members := common.NewCollection[discord.UserID, *state.Member]()
	for _, data := range ev.Members {
		members.Set(data.User.ID, g.Members.Add(data, h.State.Flags().Members))
	}

	for _, p := range ev.Presences {
		g.Presences.Add(p, h.State.Flags().Presences)
	}

	return g, members
}
