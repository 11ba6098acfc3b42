package events

import (
	"github.com/diamondburned/arikawa/v3/gateway"

	"github.com/starshine-sys/mirror/state"
)

// MessageReactionRemove drops a reactor from the user set and recomputes the
// count from it. A reaction whose last user is removed disappears from the
// message's reaction table entirely.
func (h *Handler) MessageReactionRemove(shardID int, ev *gateway.MessageReactionRemoveEvent) (*state.Message, *state.Reaction, *state.User) {
	g := h.guildContext(shardID, ev.GuildID)
	ch := h.resolveChannel(ev.ChannelID, g)

	user := h.resolveUser(ev.UserID)
	msg := h.resolveMessage(ch, ev.MessageID)

	cached := ch.Messages.Cache.Exists(ev.MessageID)
	r := h.resolveReaction(msg, cached, ev.Emoji)

	if ev.UserID == h.State.SelfID() {
		r.Me = false
	}
	if cached {
		r.Users.Cache.Delete(user.ID)
		r.Count = r.Users.Cache.Len()

		if r.Count == 0 {
			msg.Reactions.Remove(ev.Emoji)
		}
	}

	return msg, r, user
}

func (h *Handler) MessageReactionRemoveAll(shardID int, ev *gateway.MessageReactionRemoveAllEvent) *state.Message {
	g := h.guildContext(shardID, ev.GuildID)
	ch := h.resolveChannel(ev.ChannelID, g)

	msg := h.resolveMessage(ch, ev.MessageID)
	msg.Reactions.Cache.Clear()
	return msg
}

func (h *Handler) MessageReactionRemoveEmoji(shardID int, ev *gateway.MessageReactionRemoveEmojiEvent) (*state.Message, *state.Reaction) {
	g := h.guildContext(shardID, ev.GuildID)
	ch := h.resolveChannel(ev.ChannelID, g)

	msg := h.resolveMessage(ch, ev.MessageID)
	r := h.resolveReaction(msg, ch.Messages.Cache.Exists(ev.MessageID), ev.Emoji)

	msg.Reactions.Remove(ev.Emoji)
	return msg, r
}
