package events

import (
	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/diamondburned/arikawa/v3/gateway"

	"github.com/starshine-sys/mirror/common"
	"github.com/starshine-sys/mirror/state"
)

// EmojiUpdate pairs an emoji's pre-update snapshot with its patched entity.
type EmojiUpdate struct {
	Old     *state.Emoji
	Updated *state.Emoji
}

// EmojiDiff is the result of reconciling a guild's emoji cache against the
// authoritative list the gateway delivers. Either the diff fields or
// Replaced is populated, never both.
type EmojiDiff struct {
	Guild *state.Guild

	Created []*state.Emoji
	Updated []EmojiUpdate
	Deleted []*state.Emoji

	// Replaced is set instead of the diff when the guild wasn't tracking
	// emojis before the update: diffing against an empty cache would just
	// report everything as created.
	Replaced *common.Collection[discord.EmojiID, *state.Emoji]
}

// GuildEmojisUpdate reconciles the authoritative emoji list against the
// guild's cache. Structurally identical entries are left untouched so no
// spurious update fires for them.
func (h *Handler) GuildEmojisUpdate(shardID int, ev *gateway.GuildEmojisUpdateEvent) EmojiDiff {
	g := h.resolveGuild(shardID, ev.GuildID)
	flags := h.State.Flags()
	diff := EmojiDiff{Guild: g}

	if g.Emojis.Cache.Len() == 0 && !flags.Emojis {
		replaced := common.NewCollection[discord.EmojiID, *state.Emoji]()
		for _, data := range ev.Emojis {
			replaced.Set(data.ID, g.Emojis.Add(data, false))
		}
		diff.Replaced = replaced
		return diff
	}

	seen := make(map[discord.EmojiID]struct{}, len(ev.Emojis))
	for _, data := range ev.Emojis {
		seen[data.ID] = struct{}{}

		cached, ok := g.Emojis.Cache.Get(data.ID)
		if !ok {
			e := g.Emojis.Add(data, g.Emojis.Cache.Len() > 0 || flags.Emojis)
			diff.Created = append(diff.Created, e)
			continue
		}

		if !cached.EqualsData(data) {
			old := cached.Update(data)
			diff.Updated = append(diff.Updated, EmojiUpdate{Old: old, Updated: cached})
		}
	}

	for _, e := range g.Emojis.Cache.Values() {
		if _, ok := seen[e.ID]; ok {
			continue
		}
		g.Emojis.Remove(e.ID)
		e.Deleted = true
		diff.Deleted = append(diff.Deleted, e)
	}

	return diff
}
