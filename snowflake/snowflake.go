// Package snowflake extracts the fields packed into snowflake IDs.
package snowflake

import (
	"time"

	"github.com/diamondburned/arikawa/v3/discord"
)

// Parts are the fields of a deconstructed snowflake.
type Parts struct {
	Timestamp time.Time
	WorkerID  uint8
	ProcessID uint8
	Increment uint16
}

// Deconstruct splits a snowflake into its parts. The timestamp is relative
// to the Discord epoch.
func Deconstruct(s discord.Snowflake) Parts {
	i := uint64(s)

	ns := int64(i>>22)*int64(time.Millisecond) + int64(discord.Epoch)

	return Parts{
		Timestamp: time.Unix(0, ns).UTC(),
		WorkerID:  uint8(i >> 17 & 0x1F),
		ProcessID: uint8(i >> 12 & 0x1F),
		Increment: uint16(i & 0xFFF),
	}
}

// Time returns the creation time encoded in s.
func Time(s discord.Snowflake) time.Time {
	return Deconstruct(s).Timestamp
}
