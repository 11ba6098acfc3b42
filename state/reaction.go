package state

import (
	"net/url"

	"github.com/diamondburned/arikawa/v3/discord"

	"github.com/starshine-sys/mirror/common"
)

// Reaction tracks one emoji's reactions on a message, with a denormalized
// count and a per-reaction user cache. The user cache is only populated
// while the parent message is cached; tracking reactor sets for messages
// nobody retains is wasted memory.
type Reaction struct {
	Emoji discord.Emoji

	// Count is the denormalized reactor count. It is -1 while the parent
	// message is partial: counts are not meaningful until the message is
	// fully loaded.
	Count int
	// Me is whether the local user is among the reactors.
	Me bool

	Users *ReactionUserManager
}

// CountTracked reports whether Count carries a meaningful value.
func (r *Reaction) CountTracked() bool {
	return r.Count >= 0
}

// ReactionKey derives the reaction-table key for an emoji: the custom emoji
// ID, or the URL-decoded unicode name.
func ReactionKey(e discord.Emoji) string {
	if e.ID.IsValid() {
		return e.ID.String()
	}
	if n, err := url.PathUnescape(e.Name); err == nil {
		return n
	}
	return e.Name
}

// ReactionManager owns one message's reaction table, keyed by ReactionKey.
type ReactionManager struct {
	Cache *common.Collection[string, *Reaction]

	message *Message
	state   *State
}

// Add upserts a reaction entry. An existing entry is returned untouched;
// count reconciliation is event-driven, not payload-driven.
func (m *ReactionManager) Add(emoji discord.Emoji, count int, me bool, cache bool) *Reaction {
	k := ReactionKey(emoji)
	if r, ok := m.Cache.Get(k); ok {
		return r
	}

	r := &Reaction{
		Emoji: emoji,
		Count: count,
		Me:    me,
	}
	r.Users = &ReactionUserManager{
		Cache: common.NewCollection[discord.UserID, *User](),
		state: m.state,
	}

	if cache {
		m.Cache.Set(k, r)
	}
	return r
}

// Remove deletes an emoji's entry from the reaction table.
func (m *ReactionManager) Remove(emoji discord.Emoji) bool {
	return m.Cache.Delete(ReactionKey(emoji))
}

// ReactionUserManager caches the users known to have added one reaction.
type ReactionUserManager struct {
	Cache *common.Collection[discord.UserID, *User]

	state *State
}
