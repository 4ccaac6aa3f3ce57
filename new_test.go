package periodic

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_BasicValidation(t *testing.T) {
	begin := time.Date(2008, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2009, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		opts        []Option
		expected    Interval
		expectError error
	}{
		{
			name:     "no options",
			expected: Interval{},
		},
		{
			name:     "explicit counts",
			opts:     []Option{SetDays(1), SetMonths(2), SetYears(3)},
			expected: Interval{Days: 1, Months: 2, Years: 3},
		},
		{
			name:     "weeks count as days",
			opts:     []Option{SetEvery(2, Week)},
			expected: Interval{Days: 14},
		},
		{
			name:     "every adds up",
			opts:     []Option{SetEvery(1, Week), SetEvery(3, Day), SetEvery(1, Quarter), SetEvery(1, Month), SetEvery(2, Year)},
			expected: Interval{Days: 10, Months: 4, Years: 2},
		},
		{
			name:     "range",
			opts:     []Option{SetMonths(1), SetRange(begin, end)},
			expected: Interval{Months: 1, Begin: begin, End: end},
		},
		{
			name:     "empty range",
			opts:     []Option{SetDays(1), SetBegin(begin), SetEnd(begin)},
			expected: Interval{Days: 1, Begin: begin, End: begin},
		},
		{
			name:     "bounds are reduced to dates",
			opts:     []Option{SetBegin(time.Date(2008, 1, 1, 18, 30, 0, 0, time.FixedZone("UTC+3", 3*3600)))},
			expected: Interval{Begin: begin},
		},
		{
			name:     "zero time removes a bound",
			opts:     []Option{SetBegin(begin), SetBegin(time.Time{})},
			expected: Interval{},
		},
		{
			name:        "negative step",
			opts:        []Option{SetDays(-1)},
			expectError: ErrInvalidStep,
		},
		{
			name:        "step too large",
			opts:        []Option{SetYears(maxStep + 1)},
			expectError: ErrInvalidStep,
		},
		{
			name:        "inverted range",
			opts:        []Option{SetRange(end, begin)},
			expectError: ErrInvalidRange,
		},
		{
			name:        "unknown unit",
			opts:        []Option{SetEvery(1, Unit(42))},
			expectError: ErrInvalidUnit,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			iv, err := New(tt.opts...)

			if tt.expectError != nil {
				assert.ErrorIs(t, err, tt.expectError)
				assert.Equal(t, Interval{}, iv)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, iv)
		})
	}
}

func TestUnit_String(t *testing.T) {
	assert.Equal(t, "day", Day.String())
	assert.Equal(t, "week", Week.String())
	assert.Equal(t, "month", Month.String())
	assert.Equal(t, "quarter", Quarter.String())
	assert.Equal(t, "year", Year.String())
	assert.Equal(t, "unknown", Unit(42).String())
}
