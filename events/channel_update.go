package events

import (
	"github.com/diamondburned/arikawa/v3/gateway"

	"github.com/starshine-sys/mirror/state"
)

// ChannelUpdate patches a cached channel in place, or reclassifies it when
// the payload carries a different variant tag: the new instance inherits the
// old one's message cache and typing state and replaces it in every cache in
// one step.
func (h *Handler) ChannelUpdate(shardID int, ev *gateway.ChannelUpdateEvent) (old, updated *state.Channel) {
	g := h.guildContext(shardID, ev.GuildID)

	ch, ok := h.State.Channels.Cache.Get(ev.ID)
	if !ok {
		return nil, h.State.Channels.Add(ev.Channel, g, h.State.Flags().Channels)
	}

	data := ev.Channel
	// don't adopt overwrites mid-stream when the policy skipped them at
	// creation, that would leave a half-tracked overwrite list
	if g != nil && !h.State.Flags().Overwrites && len(ch.Overwrites) == 0 {
		data.Overwrites = nil
	}

	old = ch.Update(data)
	if old.Type != data.Type {
		return old, h.State.Channels.Reclassify(ch, data)
	}
	return old, ch
}
