package events

import (
	"github.com/diamondburned/arikawa/v3/gateway"

	"github.com/starshine-sys/mirror/state"
)

// MessageReactionAdd records a reactor. The per-reaction user set, and the
// count derived from it, are only maintained while the parent message is
// cached; on uncached messages the reaction stays a best-effort signal.
func (h *Handler) MessageReactionAdd(shardID int, ev *gateway.MessageReactionAddEvent) (*state.Message, *state.Reaction, *state.User) {
	g := h.guildContext(shardID, ev.GuildID)
	ch := h.resolveChannel(ev.ChannelID, g)

	user := h.resolveUserFromMember(g, ev.UserID, ev.Member)
	msg := h.resolveMessage(ch, ev.MessageID)

	cached := ch.Messages.Cache.Exists(ev.MessageID)
	r := h.resolveReaction(msg, cached, ev.Emoji)

	if ev.UserID == h.State.SelfID() {
		r.Me = true
	}
	if cached {
		r.Users.Cache.Set(user.ID, user)
		r.Count = r.Users.Cache.Len()
	}

	return msg, r, user
}
