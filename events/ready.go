package events

import (
	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/diamondburned/arikawa/v3/gateway"

	"github.com/starshine-sys/mirror/common"
	"github.com/starshine-sys/mirror/state"
)

// Ready records the local user and seeds the guild cache from the identify
// payload. Most of the listed guilds arrive unavailable and are filled in by
// later guild create events.
func (h *Handler) Ready(shardID int, ev *gateway.ReadyEvent) *ReadyEvent {
	h.State.SetSelf(ev.User)

	guilds := common.NewCollection[discord.GuildID, *state.Guild]()
	for i := range ev.Guilds {
		g := h.addGuild(shardID, &ev.Guilds[i])
		guilds.Set(g.ID, g)
	}

	return &ReadyEvent{ShardID: shardID, Guilds: guilds}
}
