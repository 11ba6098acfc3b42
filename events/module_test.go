package events

import (
	"testing"

	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/diamondburned/arikawa/v3/gateway"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatchEmitsBeforeReturn(t *testing.T) {
	h := newTestHandler(allCached())

	// no synchronization on purpose: the subscriber must have run by the
	// time Dispatch returns
	var fired bool
	h.AddSyncHandler(func(_ *GuildCreateEvent) { fired = true })

	h.Dispatch(0, &gateway.GuildCreateEvent{Guild: discord.Guild{ID: 5}})
	assert.True(t, fired)
}

func TestDispatchIgnoresUnknownEvents(t *testing.T) {
	h := newTestHandler(allCached())

	assert.NotPanics(t, func() {
		h.Dispatch(0, &gateway.ResumedEvent{})
		h.Dispatch(0, nil)
	})
}

func TestWebhooksUpdate(t *testing.T) {
	h := newTestHandler(allCached())
	seedGuild(t, h)

	var fired *WebhooksUpdateEvent
	h.AddSyncHandler(func(ev *WebhooksUpdateEvent) { fired = ev })

	h.Dispatch(0, &gateway.WebhooksUpdateEvent{GuildID: 5, ChannelID: 10})

	require.NotNil(t, fired)
	require.NotNil(t, fired.Channel)
	assert.False(t, fired.Channel.Partial)
}

func TestIntegrationsUpdate(t *testing.T) {
	h := newTestHandler(allCached())

	var fired *IntegrationsUpdateEvent
	h.AddSyncHandler(func(ev *IntegrationsUpdateEvent) { fired = ev })

	// the guild was never observed; the event still resolves to a stand-in
	h.Dispatch(0, &gateway.GuildIntegrationsUpdateEvent{GuildID: 5})

	require.NotNil(t, fired)
	require.NotNil(t, fired.Guild)
	assert.True(t, fired.Guild.Partial)
}
