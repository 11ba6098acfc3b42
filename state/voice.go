package state

import (
	"github.com/diamondburned/arikawa/v3/discord"

	"github.com/starshine-sys/mirror/common"
)

// VoiceState is the locally mirrored view of one member's voice session.
// A state whose channel reference becomes null is a disconnect and must be
// removed from its guild's cache.
type VoiceState struct {
	discord.VoiceState
}

// Clone returns a snapshot copy.
func (v *VoiceState) Clone() *VoiceState {
	c := *v
	return &c
}

// VoiceStateManager owns one guild's voice-state cache, keyed by user ID.
type VoiceStateManager struct {
	Cache *common.Collection[discord.UserID, *VoiceState]

	guild *Guild
	state *State
}

// Add upserts a voice state. Voice-state payloads are authoritative, so an
// existing entry is replaced wholesale.
func (m *VoiceStateManager) Add(data discord.VoiceState, cache bool) *VoiceState {
	if v, ok := m.Cache.Get(data.UserID); ok {
		v.VoiceState = data
		return v
	}

	v := &VoiceState{VoiceState: data}
	if cache {
		m.Cache.Set(data.UserID, v)
	}
	return v
}

// Remove deletes a user's voice state from the cache.
func (m *VoiceStateManager) Remove(id discord.UserID) bool {
	return m.Cache.Delete(id)
}
