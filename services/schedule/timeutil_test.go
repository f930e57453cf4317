package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeToMinutes(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"00:00", 0},
		{"06:00", 360},
		{"9:15", 555},
		{"23:59", 1439},
	}
	for _, c := range cases {
		got, err := TimeToMinutes(c.in)
		require.NoError(t, err, c.in)
		assert.Equal(t, c.want, got, c.in)
	}

	for _, bad := range []string{"", "10", "24:00", "12:60", "ab:cd", "-1:30", "10:00:00"} {
		_, err := TimeToMinutes(bad)
		assert.Error(t, err, bad)
	}
}

func TestMinutesToTime(t *testing.T) {
	assert.Equal(t, "00:00", MinutesToTime(0))
	assert.Equal(t, "09:05", MinutesToTime(545))
	assert.Equal(t, "00:30", MinutesToTime(1470)) // wraps past midnight
	assert.Equal(t, "23:30", MinutesToTime(-30))
}

func TestShiftDate(t *testing.T) {
	next, err := ShiftDate("2024-06-30", 1)
	require.NoError(t, err)
	assert.Equal(t, "2024-07-01", next)

	prev, err := ShiftDate("2024-03-01", -1)
	require.NoError(t, err)
	assert.Equal(t, "2024-02-29", prev) // leap year

	_, err = ShiftDate("June 1, 2024", 1)
	assert.Error(t, err)
}

func TestEndTimeOf(t *testing.T) {
	end, err := EndTimeOf("10:00", 1.5)
	require.NoError(t, err)
	assert.Equal(t, "11:30", end)

	end, err = EndTimeOf("23:30", 1)
	require.NoError(t, err)
	assert.Equal(t, "00:30", end)

	_, err = EndTimeOf("bogus", 1)
	assert.Error(t, err)
}
