package events

import (
	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/diamondburned/arikawa/v3/gateway"

	"github.com/starshine-sys/mirror/common"
	"github.com/starshine-sys/mirror/state"
)

// MessageDeleteBulk tombstones every listed message, cached or not, and
// returns them keyed by ID in payload order.
func (h *Handler) MessageDeleteBulk(shardID int, ev *gateway.MessageDeleteBulkEvent) *common.Collection[discord.MessageID, *state.Message] {
	g := h.guildContext(shardID, ev.GuildID)
	ch := h.resolveChannel(ev.ChannelID, g)
	msgs := ch.EnsureMessages()

	deleted := common.NewCollection[discord.MessageID, *state.Message]()
	for _, id := range ev.IDs {
		msg, ok := msgs.Cache.Get(id)
		if ok {
			msgs.Cache.Delete(id)
		} else {
			msg = msgs.Stub(id)
		}

		msg.Deleted = true
		deleted.Set(id, msg)
	}

	return deleted
}
