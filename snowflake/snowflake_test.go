package snowflake

import (
	"testing"
	"time"

	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/stretchr/testify/assert"
)

func TestDeconstruct(t *testing.T) {
	p := Deconstruct(discord.Snowflake(175928847299117063))

	assert.Equal(t, time.Date(2016, time.April, 30, 11, 18, 25, 796e6, time.UTC), p.Timestamp)
	assert.Equal(t, uint8(1), p.WorkerID)
	assert.Equal(t, uint8(0), p.ProcessID)
	assert.Equal(t, uint16(7), p.Increment)
}

func TestTimeEpoch(t *testing.T) {
	// a zero snowflake decodes to the epoch itself
	assert.Equal(t, time.Unix(0, int64(discord.Epoch)).UTC(), Time(0))
}
