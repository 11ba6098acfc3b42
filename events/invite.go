package events

import (
	"github.com/diamondburned/arikawa/v3/gateway"

	"github.com/starshine-sys/mirror/state"
)

func (h *Handler) InviteCreate(shardID int, ev *gateway.InviteCreateEvent) *state.Invite {
	g := h.resolveGuild(shardID, ev.GuildID)
	ch := h.resolveChannel(ev.ChannelID, g)

	inv := &state.Invite{
		Code:      ev.Code,
		Channel:   ch,
		Guild:     g,
		CreatedAt: ev.CreatedAt,
		MaxAge:    ev.MaxAge.Duration(),
		MaxUses:   ev.MaxUses,
		Temporary: ev.Temporary,
	}
	if ev.Inviter != nil {
		inv.Inviter = h.State.Users.Add(*ev.Inviter,
			h.State.Users.Cache.Exists(ev.Inviter.ID))
	}

	return g.Invites.Add(inv, h.State.Flags().Invites)
}

func (h *Handler) InviteDelete(shardID int, ev *gateway.InviteDeleteEvent) *state.Invite {
	g := h.resolveGuild(shardID, ev.GuildID)
	ch := h.resolveChannel(ev.ChannelID, g)

	inv, ok := g.Invites.Cache.Get(ev.Code)
	if !ok {
		inv = &state.Invite{Code: ev.Code, Channel: ch, Guild: g}
	}

	g.Invites.Remove(ev.Code)
	inv.Deleted = true
	return inv
}
