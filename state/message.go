package state

import (
	"emperror.dev/errors"
	"github.com/diamondburned/arikawa/v3/discord"

	"github.com/starshine-sys/mirror/common"
)

// Message is the locally mirrored view of a message. It belongs to exactly
// one channel, reachable through that channel's message manager; there is
// no owning pointer back.
type Message struct {
	discord.Message

	// Deleted is set when the message is removed, instead of invalidating
	// references still held by callers.
	Deleted bool
	// Partial marks a stub constructed from a bare ID, e.g. for a reaction
	// on a message from before the client connected.
	Partial bool

	// Reactions shadows the raw payload slice of the embedded message; the
	// manager is authoritative.
	Reactions *ReactionManager
}

// Update applies an edit payload in place and returns the pre-edit
// snapshot. Edit payloads are partial: absent fields keep their previous
// values.
func (msg *Message) Update(data discord.Message) (old *Message) {
	c := *msg
	old = &c

	if data.Content != "" {
		msg.Content = data.Content
	}
	if data.EditedTimestamp.IsValid() {
		msg.EditedTimestamp = data.EditedTimestamp
	}
	if data.Mentions != nil {
		msg.Mentions = data.Mentions
	}
	if data.MentionRoleIDs != nil {
		msg.MentionRoleIDs = data.MentionRoleIDs
	}
	if data.Attachments != nil {
		msg.Attachments = data.Attachments
	}
	if data.Embeds != nil {
		msg.Embeds = data.Embeds
	}
	if data.Author.ID.IsValid() {
		// a payload carrying the author is a full message object
		msg.Author = data.Author
		msg.Pinned = data.Pinned
		msg.TTS = data.TTS
		msg.MentionEveryone = data.MentionEveryone
	}

	msg.Partial = false
	return old
}

// MessageManager owns one channel's message cache.
type MessageManager struct {
	Cache *common.Collection[discord.MessageID, *Message]

	channel *Channel
	state   *State
}

// Add upserts a message. When a cap on the message cache is configured,
// the oldest entries are evicted to stay under it.
func (m *MessageManager) Add(data discord.Message, cache bool) *Message {
	if existing, ok := m.Cache.Get(data.ID); ok {
		if cache {
			existing.Update(data)
		}
		return existing
	}

	if !data.ChannelID.IsValid() && m.channel != nil {
		data.ChannelID = m.channel.ID
	}

	msg := &Message{Message: data}
	msg.Reactions = &ReactionManager{
		Cache:   common.NewCollection[string, *Reaction](),
		message: msg,
		state:   m.state,
	}

	// seed the reaction table from the wire payload's denormalized counts
	for _, r := range data.Reactions {
		msg.Reactions.Add(r.Emoji, r.Count, r.Me, cache)
	}

	if cache {
		m.Cache.Set(msg.ID, msg)

		if max := m.state.opts.MaxMessages; max > 0 {
			for m.Cache.Len() > max {
				id, _, ok := m.Cache.First()
				if !ok {
					break
				}
				m.Cache.Delete(id)
			}
		}
	}
	return msg
}

// Stub constructs an uncached partial message for an ID the client never
// observed.
func (m *MessageManager) Stub(id discord.MessageID) *Message {
	msg := m.Add(discord.Message{ID: id}, false)
	msg.Partial = true
	return msg
}

// Fetch returns the cached message, or retrieves and caches it through the
// REST collaborator.
func (m *MessageManager) Fetch(id discord.MessageID) (*Message, error) {
	if msg, ok := m.Cache.Get(id); ok && !msg.Partial {
		return msg, nil
	}
	if m.channel == nil {
		return nil, ErrNotFound
	}

	rest, err := m.state.rest()
	if err != nil {
		return nil, err
	}

	data, err := rest.Message(m.channel.ID, id)
	if err != nil {
		return nil, errors.Wrap(err, "fetch message")
	}
	return m.Add(*data, true), nil
}
