package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestResolvePeriod(t *testing.T) {
	dhaka := time.FixedZone("Asia/Dhaka", 6*3600)
	now := time.Date(2025, time.March, 10, 15, 4, 5, 0, dhaka)

	cases := []struct {
		token     string
		wantToken string
		start     time.Time
		end       time.Time
	}{
		{"7d", "7d", time.Date(2025, time.March, 4, 0, 0, 0, 0, dhaka), time.Date(2025, time.March, 10, 23, 59, 59, 999999999, dhaka)},
		{"30d", "30d", time.Date(2025, time.February, 9, 0, 0, 0, 0, dhaka), time.Date(2025, time.March, 10, 23, 59, 59, 999999999, dhaka)},
		{"90d", "90d", time.Date(2024, time.December, 11, 0, 0, 0, 0, dhaka), time.Date(2025, time.March, 10, 23, 59, 59, 999999999, dhaka)},
		{"YTD", "YTD", time.Date(2025, time.January, 1, 0, 0, 0, 0, dhaka), time.Date(2025, time.March, 10, 23, 59, 59, 999999999, dhaka)},
		{"7d_prev", "7d_prev", time.Date(2025, time.February, 25, 0, 0, 0, 0, dhaka), time.Date(2025, time.March, 3, 23, 59, 59, 999999999, dhaka)},
		{"30d_prev", "30d_prev", time.Date(2025, time.January, 10, 0, 0, 0, 0, dhaka), time.Date(2025, time.February, 8, 23, 59, 59, 999999999, dhaka)},
		// YTD covers Jan 1..Mar 10 (69 days), so the previous window is the 69 days before Jan 1.
		{"YTD_prev", "YTD_prev", time.Date(2024, time.October, 24, 0, 0, 0, 0, dhaka), time.Date(2024, time.December, 31, 23, 59, 59, 999999999, dhaka)},
		{"", "30d", time.Date(2025, time.February, 9, 0, 0, 0, 0, dhaka), time.Date(2025, time.March, 10, 23, 59, 59, 999999999, dhaka)},
		{"14d", "30d", time.Date(2025, time.February, 9, 0, 0, 0, 0, dhaka), time.Date(2025, time.March, 10, 23, 59, 59, 999999999, dhaka)},
	}

	for _, tc := range cases {
		t.Run("token "+tc.token, func(t *testing.T) {
			got := ResolvePeriod(tc.token, now)
			require.Equal(t, tc.wantToken, got.Token)
			require.True(t, tc.start.Equal(got.Start), "start: want %v got %v", tc.start, got.Start)
			require.True(t, tc.end.Equal(got.End), "end: want %v got %v", tc.end, got.End)
		})
	}
}

func TestResolvePeriod_PrevHasSameLength(t *testing.T) {
	now := time.Date(2024, time.March, 1, 8, 0, 0, 0, time.UTC)
	for _, token := range []string{"7d", "30d", "90d", "YTD"} {
		cur := ResolvePeriod(token, now)
		prev := ResolvePeriod(token+"_prev", now)
		require.Equal(t, cur.Days(), prev.Days(), token)
		require.True(t, cur.Start.Add(-time.Nanosecond).Equal(prev.End), token)
	}
}

func TestPercentChange(t *testing.T) {
	require.Equal(t, 0.0, PercentChange(0, 0))
	require.Equal(t, 100.0, PercentChange(250, 0))
	require.Equal(t, 50.0, PercentChange(150, 100))
	require.Equal(t, -25.0, PercentChange(75, 100))
	require.Equal(t, -100.0, PercentChange(0, 100))
}

func TestFormatRange(t *testing.T) {
	rng := ResolvePeriod("7d", time.Date(2025, time.March, 10, 9, 0, 0, 0, time.UTC))
	require.Equal(t, [2]string{"2025-03-04 00:00:00", "2025-03-10 23:59:59"}, FormatRange(rng))
}
