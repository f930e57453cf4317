package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validItem() CartItemInput {
	return CartItemInput{
		CustomerName:  "Ravi",
		Sport:         "Cricket",
		PeopleCount:   6,
		Date:          "2024-06-10",
		StartTime:     "17:30",
		DurationHours: 1.5,
		CourtID:       1,
	}
}

func TestValidateCartItemAccepts(t *testing.T) {
	assert.NoError(t, ValidateCartItem(validItem()))

	// Boundary durations.
	for _, d := range []float64{0.5, 1, 2.5, 4} {
		in := validItem()
		in.DurationHours = d
		assert.NoError(t, ValidateCartItem(in), "duration %v", d)
	}

	// Minimum group size.
	in := validItem()
	in.PeopleCount = 2
	assert.NoError(t, ValidateCartItem(in))
}

func TestValidateCartItemRejects(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*CartItemInput)
		field  string
	}{
		{"blank name", func(in *CartItemInput) { in.CustomerName = "  " }, "customerName"},
		{"blank sport", func(in *CartItemInput) { in.Sport = "" }, "sport"},
		{"solo player", func(in *CartItemInput) { in.PeopleCount = 1 }, "peopleCount"},
		{"bad date format", func(in *CartItemInput) { in.Date = "10-06-2024" }, "date"},
		{"impossible date", func(in *CartItemInput) { in.Date = "2024-02-30" }, "date"},
		{"bad time format", func(in *CartItemInput) { in.StartTime = "5pm" }, "startTime"},
		{"hour out of range", func(in *CartItemInput) { in.StartTime = "24:00" }, "startTime"},
		{"too short", func(in *CartItemInput) { in.DurationHours = 0.25 }, "durationHours"},
		{"too long", func(in *CartItemInput) { in.DurationHours = 4.5 }, "durationHours"},
		{"off the half-hour step", func(in *CartItemInput) { in.DurationHours = 1.2 }, "durationHours"},
		{"zero court", func(in *CartItemInput) { in.CourtID = 0 }, "courtId"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validItem()
			tc.mutate(&in)

			err := ValidateCartItem(in)
			require.Error(t, err)
			verr, ok := err.(*ValidationError)
			require.True(t, ok, "expected a ValidationError, got %T", err)
			assert.Equal(t, tc.field, verr.Field)
		})
	}
}
