package events

import (
	"github.com/diamondburned/arikawa/v3/discord"

	"github.com/starshine-sys/mirror/common"
	"github.com/starshine-sys/mirror/state"
)

// Normalized events re-emitted on the Handler's bus after the state mirror
// has been mutated. Update events carry the pre-update entity in Old; Old is
// nil exactly when the entity wasn't cached before the event.

// ReadyEvent is emitted once a shard finishes identifying.
type ReadyEvent struct {
	ShardID int
	Guilds  *common.Collection[discord.GuildID, *state.Guild]
}

type ChannelCreateEvent struct {
	Channel *state.Channel
}

type ChannelUpdateEvent struct {
	Old     *state.Channel
	Updated *state.Channel
}

type ChannelDeleteEvent struct {
	Channel *state.Channel
}

type ChannelPinsUpdateEvent struct {
	Channel *state.Channel
	LastPin discord.Timestamp
}

type GuildCreateEvent struct {
	Guild *state.Guild
}

type GuildUpdateEvent struct {
	Old     *state.Guild
	Updated *state.Guild
}

// GuildDeleteEvent is emitted when the client actually left a guild. An
// outage flip emits GuildUnavailableEvent instead.
type GuildDeleteEvent struct {
	Guild *state.Guild
}

type GuildUnavailableEvent struct {
	Guild *state.Guild
}

type EmojiCreateEvent struct {
	Emoji *state.Emoji
}

type EmojiUpdateEvent struct {
	Old     *state.Emoji
	Updated *state.Emoji
}

type EmojiDeleteEvent struct {
	Emoji *state.Emoji
}

// EmojisReplaceEvent is emitted instead of per-emoji events when the guild
// wasn't tracking emojis before the update, so no diff is possible.
type EmojisReplaceEvent struct {
	Guild  *state.Guild
	Emojis *common.Collection[discord.EmojiID, *state.Emoji]
}

type MemberAddEvent struct {
	Member *state.Member
}

type MemberUpdateEvent struct {
	Old     *state.Member
	Updated *state.Member
}

type MemberRemoveEvent struct {
	Guild  *state.Guild
	Member *state.Member
}

type MembersChunkEvent struct {
	Guild   *state.Guild
	Members *common.Collection[discord.UserID, *state.Member]
}

type BanAddEvent struct {
	Guild *state.Guild
	User  *state.User
}

type BanRemoveEvent struct {
	Guild *state.Guild
	User  *state.User
}

type RoleCreateEvent struct {
	Role *state.Role
}

type RoleUpdateEvent struct {
	Old     *state.Role
	Updated *state.Role
}

type RoleDeleteEvent struct {
	Role *state.Role
}

type MessageCreateEvent struct {
	Message *state.Message
}

type MessageUpdateEvent struct {
	Old     *state.Message
	Updated *state.Message
}

type MessageDeleteEvent struct {
	Message *state.Message
}

// MessageDeleteBulkEvent carries the deleted messages in the order the
// gateway listed them.
type MessageDeleteBulkEvent struct {
	Messages *common.Collection[discord.MessageID, *state.Message]
}

type ReactionAddEvent struct {
	Message  *state.Message
	Reaction *state.Reaction
	User     *state.User
}

type ReactionRemoveEvent struct {
	Message  *state.Message
	Reaction *state.Reaction
	User     *state.User
}

type ReactionRemoveAllEvent struct {
	Message *state.Message
}

type ReactionRemoveEmojiEvent struct {
	Message  *state.Message
	Reaction *state.Reaction
}

type PresenceUpdateEvent struct {
	Old     *state.Presence
	Updated *state.Presence
}

type TypingStartEvent struct {
	Channel *state.Channel
	User    *state.User
}

type UserUpdateEvent struct {
	Old     *state.User
	Updated *state.User
}

type VoiceStateUpdateEvent struct {
	Old     *state.VoiceState
	Updated *state.VoiceState
}

type InviteCreateEvent struct {
	Invite *state.Invite
}

type InviteDeleteEvent struct {
	Invite *state.Invite
}

type WebhooksUpdateEvent struct {
	Channel *state.Channel
}

type IntegrationsUpdateEvent struct {
	Guild *state.Guild
}
