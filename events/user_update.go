package events

import (
	"github.com/diamondburned/arikawa/v3/discord"

	"github.com/starshine-sys/mirror/state"
)

// UserUpdate is the single place user identity is patched. Sibling actions
// (member, presence, typing, voice) route embedded user payloads through it
// when they disagree with the cache.
func (h *Handler) UserUpdate(data discord.User) (old, updated *state.User) {
	if u, ok := h.State.Users.Cache.Get(data.ID); ok {
		old = u.Update(data)
		return old, u
	}

	return nil, h.State.Users.Add(data, h.State.Flags().Members)
}
