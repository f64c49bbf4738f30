package biztime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateInBizTimezone(t *testing.T) {
	got, err := ParseDateInBizTimezone("2026-01-15")
	require.NoError(t, err)

	// Midnight in the business timezone, expressed in UTC.
	inBiz := got.In(Location())
	assert.Equal(t, 2026, inBiz.Year())
	assert.Equal(t, time.January, inBiz.Month())
	assert.Equal(t, 15, inBiz.Day())
	assert.Equal(t, 0, inBiz.Hour())
	assert.Equal(t, time.UTC, got.Location())
}

func TestParseDateInBizTimezone_InvalidFormat(t *testing.T) {
	for _, input := range []string{"15/01/2026", "2026-1-15", "not-a-date", ""} {
		_, err := ParseDateInBizTimezone(input)
		assert.Error(t, err, "input %q should be rejected", input)
	}
}

func TestStartAndEndOfDayUTC(t *testing.T) {
	ref, err := ParseDateInBizTimezone("2026-06-10")
	require.NoError(t, err)

	start := StartOfDayUTC(ref)
	end := EndOfDayUTC(ref)

	assert.True(t, start.Before(end))
	assert.Equal(t, 24*time.Hour-time.Nanosecond, end.Sub(start))

	startBiz := start.In(Location())
	assert.Equal(t, 0, startBiz.Hour())
	endBiz := end.In(Location())
	assert.Equal(t, 23, endBiz.Hour())
	assert.Equal(t, 59, endBiz.Minute())
}

func TestNowUTC(t *testing.T) {
	assert.Equal(t, time.UTC, NowUTC().Location())
}
