package events

import (
	"github.com/diamondburned/arikawa/v3/gateway"

	"github.com/starshine-sys/mirror/state"
)

// TypingStart starts or refreshes the user's typing session on the channel.
// There is no "stopped typing" event upstream; the session's own expiry
// timer is the only cleanup, and a repeated signal reschedules it.
func (h *Handler) TypingStart(shardID int, ev *gateway.TypingStartEvent) (*state.Channel, *state.User) {
	g := h.guildContext(shardID, ev.GuildID)
	ch := h.resolveChannel(ev.ChannelID, g)

	u := h.syncMemberUser(g, ev.UserID, ev.Member)
	ch.RefreshTyping(u, ev.Timestamp.Time())
	return ch, u
}
