package events

import (
	"github.com/diamondburned/arikawa/v3/gateway"

	"github.com/starshine-sys/mirror/state"
)

// VoiceStateUpdate applies an authoritative voice state. A payload with no
// channel is a disconnect and evicts the entry. Both return values nil means
// a no-op on an untracked session; nothing should be emitted for those.
func (h *Handler) VoiceStateUpdate(shardID int, ev *gateway.VoiceStateUpdateEvent) (old, updated *state.VoiceState) {
	g := h.resolveGuild(shardID, ev.GuildID)

	h.syncMemberUser(g, ev.UserID, ev.Member)

	if v, ok := g.VoiceStates.Cache.Get(ev.UserID); ok {
		old = v.Clone()
	}

	if ev.ChannelID.IsValid() {
		updated = g.VoiceStates.Add(ev.VoiceState, h.State.Flags().VoiceStates || old != nil)
	} else if old != nil {
		g.VoiceStates.Remove(ev.UserID)
	}

	return old, updated
}
