package state

import (
	"emperror.dev/errors"
	"github.com/diamondburned/arikawa/v3/api"
	"github.com/diamondburned/arikawa/v3/discord"
)

// ErrNotFound is returned by Fetch methods when an entity is neither cached
// nor retrievable.
const ErrNotFound = errors.Sentinel("entity not found")

// ErrNoREST is returned by Fetch methods when no REST client is configured.
const ErrNoREST = errors.Sentinel("no REST client configured")

// RESTClient is the subset of the REST API that managers fall back to when
// an entity is not cached. arikawa's *api.Client satisfies it.
type RESTClient interface {
	Channel(discord.ChannelID) (*discord.Channel, error)
	Guild(discord.GuildID) (*discord.Guild, error)
	User(discord.UserID) (*discord.User, error)
	Member(discord.GuildID, discord.UserID) (*discord.Member, error)
	Message(discord.ChannelID, discord.MessageID) (*discord.Message, error)
	Roles(discord.GuildID) ([]discord.Role, error)
	Emojis(discord.GuildID) ([]discord.Emoji, error)
}

var _ RESTClient = (*api.Client)(nil)

func (s *State) rest() (RESTClient, error) {
	if s.opts.REST == nil {
		return nil, ErrNoREST
	}
	return s.opts.REST, nil
}
