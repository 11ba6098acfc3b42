package events

import (
	"github.com/diamondburned/arikawa/v3/discord"

	"github.com/starshine-sys/mirror/state"
)

// The resolvers below are the shared fallback contract of every action:
// resolve against the cache, or materialize an uncached stand-in. None of
// them can fail.

// resolveGuild returns the cached guild, or an uncached stub carrying shard
// attribution.
func (h *Handler) resolveGuild(shardID int, id discord.GuildID) *state.Guild {
	if g, ok := h.State.Guilds.Cache.Get(id); ok {
		return g
	}
	return h.State.Guilds.Stub(id, shardID)
}

// guildContext is resolveGuild for events whose guild reference is optional;
// DM-scoped events have none.
func (h *Handler) guildContext(shardID int, id discord.GuildID) *state.Guild {
	if !id.IsValid() {
		return nil
	}
	return h.resolveGuild(shardID, id)
}

func (h *Handler) resolveChannel(id discord.ChannelID, g *state.Guild) *state.Channel {
	if ch, ok := h.State.Channels.Cache.Get(id); ok {
		return ch
	}
	return h.State.Channels.Stub(id, g)
}

func (h *Handler) resolveMessage(ch *state.Channel, id discord.MessageID) *state.Message {
	msgs := ch.EnsureMessages()
	if msg, ok := msgs.Cache.Get(id); ok {
		return msg
	}
	return msgs.Stub(id)
}

// resolveReaction returns the message's entry for emoji, materializing one
// if needed. A fresh entry starts at zero on a fully loaded message and at
// an unknown count on a partial one, and is retained only while the message
// itself is cached.
func (h *Handler) resolveReaction(msg *state.Message, cached bool, emoji discord.Emoji) *state.Reaction {
	count := 0
	if msg.Partial {
		count = -1
	}
	return msg.Reactions.Add(emoji, count, false, cached)
}

func (h *Handler) resolveUser(id discord.UserID) *state.User {
	if u, ok := h.State.Users.Cache.Get(id); ok {
		return u
	}
	return h.State.Users.Stub(id)
}

// resolveUserFromMember prefers a member payload's embedded user over a bare
// ID. Going through the member manager matters: member-context upserts keep
// the global user cache in step.
func (h *Handler) resolveUserFromMember(g *state.Guild, id discord.UserID, member *discord.Member) *state.User {
	if member != nil && member.User.ID.IsValid() {
		if g != nil && !g.Partial {
			g.Members.Add(*member, true)
			return h.resolveUser(member.User.ID)
		}
		return h.State.Users.Add(member.User, true)
	}
	return h.resolveUser(id)
}

// syncMemberUser reconciles the user and member payloads carried inline on
// typing and voice events. An identity change on a known user routes through
// the user update action before anything else touches the payload, keeping
// identity canonical in one place.
func (h *Handler) syncMemberUser(g *state.Guild, id discord.UserID, member *discord.Member) *state.User {
	u, ok := h.State.Users.Cache.Get(id)
	if !ok {
		if member != nil && member.User.ID.IsValid() {
			return h.State.Users.Add(member.User, h.State.Flags().Members)
		}
		return h.State.Users.Stub(id)
	}

	if member != nil && g != nil {
		if member.User.Username != "" && !u.EqualsData(member.User) {
			h.UserUpdate(member.User)
		}
		g.Members.Add(*member, true)
	}
	return u
}
