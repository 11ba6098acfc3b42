// Package events is the action layer: it translates decoded gateway events
// into mutations of the local state mirror and re-emits normalized public
// events carrying old/new entity pairs.
//
// Handlers are total: an event referencing an entity the client never
// observed resolves to a constructed stand-in instead of failing. Dropping
// a delivered event would desynchronize the mirror with no recovery path,
// so best-effort stubs always win over errors.
package events

import (
	"time"

	"github.com/ReneKroon/ttlcache/v2"
	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/diamondburned/arikawa/v3/gateway"
	"github.com/diamondburned/arikawa/v3/utils/handler"

	"github.com/starshine-sys/mirror/state"
)

// DefaultBridgeTimeout is how long a deleted guild stays queryable, bridging
// the race between a gateway guild delete and in-flight REST responses that
// still reference the guild.
const DefaultBridgeTimeout = 10 * time.Second

// Handler owns the per-event actions and the public event bus. Events for a
// single shard must be dispatched in receipt order; each action runs to
// completion before its public event is emitted. Subscribers that rely on
// that ordering must register with AddSyncHandler; AddHandler subscribers
// run in their own goroutine.
type Handler struct {
	*handler.Handler

	State *state.State

	// DeletedGuilds holds recently deleted guilds for the bridge window,
	// keyed by stringified guild ID.
	DeletedGuilds *ttlcache.Cache
}

// New creates a Handler on top of s. bridgeTimeout <= 0 uses
// DefaultBridgeTimeout.
func New(s *state.State, bridgeTimeout time.Duration) *Handler {
	if bridgeTimeout <= 0 {
		bridgeTimeout = DefaultBridgeTimeout
	}

	h := &Handler{
		Handler:       handler.New(),
		State:         s,
		DeletedGuilds: ttlcache.NewCache(),
	}
	h.DeletedGuilds.SetTTL(bridgeTimeout)
	h.DeletedGuilds.SkipTTLExtensionOnHit(true)
	return h
}

// RecentlyDeletedGuild returns the tombstoned guild for id if it was
// deleted within the bridge window.
func (h *Handler) RecentlyDeletedGuild(id discord.GuildID) (*state.Guild, bool) {
	v, err := h.DeletedGuilds.Get(id.String())
	if err != nil {
		return nil, false
	}

	g, ok := v.(*state.Guild)
	return g, ok
}

// Dispatch routes a decoded gateway event to its action and re-emits the
// resulting public event. Unknown event types are ignored.
func (h *Handler) Dispatch(shardID int, ev interface{}) {
	switch ev := ev.(type) {
	case *gateway.ReadyEvent:
		h.Call(h.Ready(shardID, ev))

	case *gateway.ChannelCreateEvent:
		h.Call(&ChannelCreateEvent{Channel: h.ChannelCreate(shardID, ev)})
	case *gateway.ChannelUpdateEvent:
		old, updated := h.ChannelUpdate(shardID, ev)
		h.Call(&ChannelUpdateEvent{Old: old, Updated: updated})
	case *gateway.ChannelDeleteEvent:
		h.Call(&ChannelDeleteEvent{Channel: h.ChannelDelete(shardID, ev)})
	case *gateway.ChannelPinsUpdateEvent:
		ch := h.ChannelPinsUpdate(shardID, ev)
		h.Call(&ChannelPinsUpdateEvent{Channel: ch, LastPin: ev.LastPin})

	case *gateway.GuildCreateEvent:
		if g, created := h.GuildCreate(shardID, ev); created {
			h.Call(&GuildCreateEvent{Guild: g})
		}
	case *gateway.GuildUpdateEvent:
		old, updated := h.GuildUpdate(shardID, ev)
		h.Call(&GuildUpdateEvent{Old: old, Updated: updated})
	case *gateway.GuildDeleteEvent:
		g, unavailable := h.GuildDelete(shardID, ev)
		if unavailable {
			h.Call(&GuildUnavailableEvent{Guild: g})
		} else {
			h.Call(&GuildDeleteEvent{Guild: g})
		}

	case *gateway.GuildEmojisUpdateEvent:
		diff := h.GuildEmojisUpdate(shardID, ev)
		if diff.Replaced != nil {
			h.Call(&EmojisReplaceEvent{Guild: diff.Guild, Emojis: diff.Replaced})
			return
		}
		for _, e := range diff.Created {
			h.Call(&EmojiCreateEvent{Emoji: e})
		}
		for _, u := range diff.Updated {
			h.Call(&EmojiUpdateEvent{Old: u.Old, Updated: u.Updated})
		}
		for _, e := range diff.Deleted {
			h.Call(&EmojiDeleteEvent{Emoji: e})
		}

	case *gateway.GuildMemberAddEvent:
		h.Call(&MemberAddEvent{Member: h.GuildMemberAdd(shardID, ev)})
	case *gateway.GuildMemberUpdateEvent:
		old, updated, changed := h.GuildMemberUpdate(shardID, ev)
		if changed {
			h.Call(&MemberUpdateEvent{Old: old, Updated: updated})
		}
	case *gateway.GuildMemberRemoveEvent:
		g, mem := h.GuildMemberRemove(shardID, ev)
		h.Call(&MemberRemoveEvent{Guild: g, Member: mem})
	case *gateway.GuildMembersChunkEvent:
		g, members := h.GuildMembersChunk(shardID, ev)
		h.Call(&MembersChunkEvent{Guild: g, Members: members})

	case *gateway.GuildBanAddEvent:
		g, u := h.GuildBanAdd(shardID, ev)
		h.Call(&BanAddEvent{Guild: g, User: u})
	case *gateway.GuildBanRemoveEvent:
		g, u := h.GuildBanRemove(shardID, ev)
		h.Call(&BanRemoveEvent{Guild: g, User: u})

	case *gateway.GuildRoleCreateEvent:
		h.Call(&RoleCreateEvent{Role: h.GuildRoleCreate(shardID, ev)})
	case *gateway.GuildRoleUpdateEvent:
		old, updated := h.GuildRoleUpdate(shardID, ev)
		h.Call(&RoleUpdateEvent{Old: old, Updated: updated})
	case *gateway.GuildRoleDeleteEvent:
		h.Call(&RoleDeleteEvent{Role: h.GuildRoleDelete(shardID, ev)})

	case *gateway.MessageCreateEvent:
		h.Call(&MessageCreateEvent{Message: h.MessageCreate(shardID, ev)})
	case *gateway.MessageUpdateEvent:
		old, updated := h.MessageUpdate(shardID, ev)
		h.Call(&MessageUpdateEvent{Old: old, Updated: updated})
	case *gateway.MessageDeleteEvent:
		h.Call(&MessageDeleteEvent{Message: h.MessageDelete(shardID, ev)})
	case *gateway.MessageDeleteBulkEvent:
		h.Call(&MessageDeleteBulkEvent{Messages: h.MessageDeleteBulk(shardID, ev)})

	case *gateway.MessageReactionAddEvent:
		msg, r, u := h.MessageReactionAdd(shardID, ev)
		h.Call(&ReactionAddEvent{Message: msg, Reaction: r, User: u})
	case *gateway.MessageReactionRemoveEvent:
		msg, r, u := h.MessageReactionRemove(shardID, ev)
		h.Call(&ReactionRemoveEvent{Message: msg, Reaction: r, User: u})
	case *gateway.MessageReactionRemoveAllEvent:
		h.Call(&ReactionRemoveAllEvent{Message: h.MessageReactionRemoveAll(shardID, ev)})
	case *gateway.MessageReactionRemoveEmojiEvent:
		msg, r := h.MessageReactionRemoveEmoji(shardID, ev)
		h.Call(&ReactionRemoveEmojiEvent{Message: msg, Reaction: r})

	case *gateway.PresenceUpdateEvent:
		old, updated := h.PresenceUpdate(shardID, ev)
		h.Call(&PresenceUpdateEvent{Old: old, Updated: updated})
	case *gateway.TypingStartEvent:
		ch, u := h.TypingStart(shardID, ev)
		h.Call(&TypingStartEvent{Channel: ch, User: u})
	case *gateway.UserUpdateEvent:
		old, updated := h.UserUpdate(ev.User)
		h.Call(&UserUpdateEvent{Old: old, Updated: updated})
	case *gateway.VoiceStateUpdateEvent:
		old, updated := h.VoiceStateUpdate(shardID, ev)
		if old != nil || updated != nil {
			h.Call(&VoiceStateUpdateEvent{Old: old, Updated: updated})
		}

	case *gateway.InviteCreateEvent:
		h.Call(&InviteCreateEvent{Invite: h.InviteCreate(shardID, ev)})
	case *gateway.InviteDeleteEvent:
		h.Call(&InviteDeleteEvent{Invite: h.InviteDelete(shardID, ev)})

	case *gateway.WebhooksUpdateEvent:
		h.Call(&WebhooksUpdateEvent{Channel: h.WebhooksUpdate(shardID, ev)})
	case *gateway.GuildIntegrationsUpdateEvent:
		h.Call(&IntegrationsUpdateEvent{Guild: h.GuildIntegrationsUpdate(shardID, ev)})
	}
}
