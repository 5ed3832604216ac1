package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTimeUntil(t *testing.T) {
	now := time.Date(2026, 1, 20, 12, 0, 0, 0, time.UTC)

	r := TimeUntil(now.Add(50*time.Hour+30*time.Minute+15*time.Second), now)
	assert.Equal(t, Remaining{Days: 2, Hours: 2, Minutes: 30, Seconds: 15}, r)
}

func TestTimeUntilSubSecondRemainderTruncates(t *testing.T) {
	now := time.Date(2026, 1, 20, 12, 0, 0, 0, time.UTC)

	r := TimeUntil(now.Add(1500*time.Millisecond), now)
	assert.Equal(t, Remaining{Seconds: 1}, r)
}

func TestTimeUntilEnded(t *testing.T) {
	now := time.Date(2026, 1, 20, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, Remaining{Ended: true}, TimeUntil(now, now))
	assert.Equal(t, Remaining{Ended: true}, TimeUntil(now.Add(-time.Hour), now))
}
