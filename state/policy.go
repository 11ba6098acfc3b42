package state

// CacheFlags selects, per entity kind, whether newly observed entities are
// inserted into their cache. It never gates lookups: an entity that is
// already cached stays cached and keeps being patched regardless of its
// kind's flag.
type CacheFlags struct {
	Guilds      bool `toml:"guilds"`
	Channels    bool `toml:"channels"`
	Overwrites  bool `toml:"overwrites"`
	Members     bool `toml:"members"`
	Presences   bool `toml:"presences"`
	Roles       bool `toml:"roles"`
	Emojis      bool `toml:"emojis"`
	Messages    bool `toml:"messages"`
	VoiceStates bool `toml:"voice_states"`
	Invites     bool `toml:"invites"`
}

// AllCacheFlags returns a policy that retains everything.
func AllCacheFlags() CacheFlags {
	return CacheFlags{
		Guilds:      true,
		Channels:    true,
		Overwrites:  true,
		Members:     true,
		Presences:   true,
		Roles:       true,
		Emojis:      true,
		Messages:    true,
		VoiceStates: true,
		Invites:     true,
	}
}

// DoCache reports whether the named kind should be retained. Unknown kinds
// are not cached.
func (f CacheFlags) DoCache(kind string) bool {
	switch kind {
	case "guilds":
		return f.Guilds
	case "channels":
		return f.Channels
	case "overwrites":
		return f.Overwrites
	case "members":
		return f.Members
	case "presences":
		return f.Presences
	case "roles":
		return f.Roles
	case "emojis":
		return f.Emojis
	case "messages":
		return f.Messages
	case "voice_states":
		return f.VoiceStates
	case "invites":
		return f.Invites
	}
	return false
}
