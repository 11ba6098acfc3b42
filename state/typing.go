package state

import (
	"time"

	"github.com/diamondburned/arikawa/v3/discord"

	"github.com/starshine-sys/mirror/common"
)

// TypingSession tracks one user's live typing indicator in a channel.
type TypingSession struct {
	User *User
	// Since is when the user was first seen typing.
	Since time.Time
	// LastTimestamp is the timestamp of the most recent typing signal.
	LastTimestamp time.Time
	// Elapsed is how long the user had been typing at the last refresh.
	Elapsed time.Duration

	timer *time.Timer
}

// typingState is a channel's typing table. Expiry is timer-driven: each
// session owns exactly one timer, and a refresh cancels and replaces it.
// The timer callback only does a keyed delete, so it is safe against a
// racing refresh for the same user.
type typingState struct {
	sessions *common.Collection[discord.UserID, *TypingSession]
	timeout  time.Duration
}

func newTypingState(timeout time.Duration) *typingState {
	return &typingState{
		sessions: common.NewCollection[discord.UserID, *TypingSession](),
		timeout:  timeout,
	}
}

func (t *typingState) refresh(u *User, ts time.Time) *TypingSession {
	if s, ok := t.sessions.Get(u.ID); ok {
		s.LastTimestamp = ts
		s.Elapsed = time.Since(s.Since)

		s.timer.Stop()
		s.timer = t.expireLater(u.ID)
		return s
	}

	s := &TypingSession{
		User:          u,
		Since:         time.Now().UTC(),
		LastTimestamp: ts,
	}
	s.timer = t.expireLater(u.ID)
	t.sessions.Set(u.ID, s)
	return s
}

func (t *typingState) expireLater(id discord.UserID) *time.Timer {
	return time.AfterFunc(t.timeout, func() {
		t.sessions.Delete(id)
	})
}

func (t *typingState) stopAll() {
	for _, s := range t.sessions.Values() {
		s.timer.Stop()
	}
	t.sessions.Clear()
}

// RefreshTyping starts or refreshes a typing session for u. It returns nil
// for variants that cannot have typing indicators.
func (ch *Channel) RefreshTyping(u *User, ts time.Time) *TypingSession {
	if ch.typing == nil {
		if !ch.IsText() {
			return nil
		}
		ch.typing = newTypingState(ch.state.opts.TypingTimeout)
	}
	return ch.typing.refresh(u, ts)
}

// TypingSession returns u's live typing session, if any.
func (ch *Channel) TypingSession(id discord.UserID) (*TypingSession, bool) {
	if ch.typing == nil {
		return nil, false
	}
	return ch.typing.sessions.Get(id)
}

// TypingSessions returns all live typing sessions, oldest first.
func (ch *Channel) TypingSessions() []*TypingSession {
	if ch.typing == nil {
		return nil
	}
	return ch.typing.sessions.Values()
}

// StopTyping cancels every live typing session on the channel. Used when
// the channel or its guild goes away.
func (ch *Channel) StopTyping() {
	if ch.typing != nil {
		ch.typing.stopAll()
	}
}
