package periodic

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func formatDates(dates []time.Time) []string {
	out := make([]string, len(dates))
	for i, d := range dates {
		out[i] = FormatDate(d)
	}
	return out
}

func TestInterval_RRule(t *testing.T) {
	tests := []struct {
		descriptor string
		rule       string
	}{
		{
			descriptor: "every 2 weeks from 2008/01/01 to 2008/06/01",
			rule:       "FREQ=WEEKLY",
		},
		{
			descriptor: "every 3 days from 2008/02/20 to 2008/03/20",
			rule:       "FREQ=DAILY",
		},
		{
			descriptor: "monthly from 2008/01/15 to 2008/12/31",
			rule:       "FREQ=MONTHLY",
		},
		{
			descriptor: "quarterly from 2008/01/28 to 2010/01/01",
			rule:       "FREQ=MONTHLY",
		},
		{
			descriptor: "yearly from 2008/02/28 to 2015/01/01",
			rule:       "FREQ=YEARLY",
		},
	}

	for _, tt := range tests {
		t.Run(tt.descriptor, func(t *testing.T) {
			iv := mustParse(t, tt.descriptor)

			rule, err := iv.RRule()
			require.NoError(t, err)
			assert.Contains(t, rule.String(), tt.rule)

			expected := collect(t, iv, time.Time{}, 1000)
			require.NotEmpty(t, expected)
			assert.Equal(t, formatDates(expected), formatDates(rule.All()))
		})
	}
}

func TestInterval_RRuleZonedBounds(t *testing.T) {
	est := time.FixedZone("UTC-5", -5*3600)
	iv := Interval{
		Months: 1,
		Begin:  time.Date(2008, 1, 31, 22, 0, 0, 0, est),
		End:    time.Date(2008, 4, 1, 0, 0, 0, 0, est),
	}

	_, err := iv.RRule()
	assert.ErrorIs(t, err, ErrNotRepresentable)

	iv.Begin = time.Date(2008, 1, 15, 22, 0, 0, 0, est)
	rule, err := iv.RRule()
	require.NoError(t, err)
	assert.Equal(t, []string{"2008/01/15", "2008/02/15", "2008/03/15"}, formatDates(rule.All()))
	assert.Equal(t, formatDates(collect(t, iv, time.Time{}, 10)), formatDates(rule.All()))
}

func TestInterval_RRuleNotRepresentable(t *testing.T) {
	for _, descriptor := range []string{
		"monthly",
		"every 1 month every 2 days from 2008/01/01",
		"monthly from 2008/01/31",
		"yearly from 2008/02/29",
		"from 2008/01/01",
	} {
		t.Run(descriptor, func(t *testing.T) {
			_, err := mustParse(t, descriptor).RRule()
			assert.ErrorIs(t, err, ErrNotRepresentable)
		})
	}
}
