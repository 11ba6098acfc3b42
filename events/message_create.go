package events

import (
	"github.com/diamondburned/arikawa/v3/gateway"

	"github.com/starshine-sys/mirror/state"
)

func (h *Handler) MessageCreate(shardID int, ev *gateway.MessageCreateEvent) *state.Message {
	g := h.guildContext(shardID, ev.GuildID)
	ch := h.resolveChannel(ev.ChannelID, g)

	// keep user identity in step with the author payload
	if ev.Author.ID.IsValid() {
		h.State.Users.Add(ev.Author, h.State.Users.Cache.Exists(ev.Author.ID))
	}
	if g != nil && ev.Member != nil {
		member := *ev.Member
		if !member.User.ID.IsValid() {
			member.User = ev.Author
		}
		g.Members.Add(member, g.Members.Cache.Exists(member.User.ID))
	}

	cache := h.State.Flags().Messages && h.State.Channels.Cache.Exists(ch.ID)
	msg := ch.EnsureMessages().Add(ev.Message, cache)
	ch.LastMessageID = ev.ID
	return msg
}
