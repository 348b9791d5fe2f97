package spyce

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestHumanDate(t *testing.T) {
	require.Equal(t, "2000-01-01 12:00:00.000000", FormatHumanDate(0))
	require.Equal(t, "2000-01-01 00:00:00.000000", FormatHumanDate(-43200))
	require.Equal(t, "2000-01-02 12:00:00.000000", FormatHumanDate(86400))

	got, err := ParseHumanDate("2000-01-01 12:00:00.000000")
	require.NoError(t, err)
	require.Zero(t, got)

	// 2017-03-20 00:00 UT is JD 2457832.5, 6288 days past the epoch grid.
	got, err = ParseHumanDate("2017-03-20 14:45:00.000000")
	require.NoError(t, err)
	require.Equal(t, 543293100.0, got)

	for _, tv := range []float64{0, 1.000001, 123456789.654321, -987654321.123456, 1e9 + 0.5} {
		back, err := ParseHumanDate(FormatHumanDate(tv))
		require.NoError(t, err)
		require.InDelta(t, tv, back, 2e-6, FormatHumanDate(tv))
	}

	for _, bad := range []string{
		"yesterday",
		"2000-13-01 00:00:00.0",
		"2000-01-32 00:00:00.0",
		"2000-01-01 24:00:00.0",
		"2000-01-01 10:61:00.0",
		"2000-01-01 10:00:60.0",
	} {
		_, err := ParseHumanDate(bad)
		require.ErrorIs(t, err, ErrValidation, bad)
	}
}

func TestHumanElapsed(t *testing.T) {
	require.Equal(t, "0d 00:00:00.000000", FormatHumanTime(0))
	require.Equal(t, "-2d 03:11:00.250000", FormatHumanTime(-184260.25))

	got, err := ParseHumanTime("-2d 03:11:00.250000")
	require.NoError(t, err)
	require.Equal(t, -184260.25, got)

	got, err = ParseHumanTime("5d 01:02:03.5")
	require.NoError(t, err)
	require.Equal(t, 5*86400+3723.5, got)

	for _, tv := range []float64{0, 59.9999995, 86399.25, -86400.5, 31557600} {
		back, err := ParseHumanTime(FormatHumanTime(tv))
		require.NoError(t, err)
		require.InDelta(t, tv, back, 2e-6)
	}

	for _, bad := range []string{"soon", "-5", "1d -1:00:00.0"} {
		_, err := ParseHumanTime(bad)
		require.ErrorIs(t, err, ErrValidation, bad)
	}
}

func TestKerbalDate(t *testing.T) {
	require.Equal(t, "Y1, D1, 0:00:00.0", FormatKerbalDate(0))
	require.Equal(t, "Y1, D2, 0:00:00.0", FormatKerbalDate(kerbalDay))
	require.Equal(t, "Y2, D1, 0:00:00.0", FormatKerbalDate(kerbalYear))
	require.Equal(t, "Y0, D426, 5:59:59.0", FormatKerbalDate(-1))

	tv := 4*kerbalYear + 99*kerbalDay + 3*3600 + 4*60 + 5.5
	require.Equal(t, "Y5, D100, 3:04:05.5", FormatKerbalDate(tv))
	got, err := ParseKerbalDate("Y5, D100, 3:04:05.5")
	require.NoError(t, err)
	require.Equal(t, tv, got)

	got, err = ParseKerbalDate("Y0, D426, 5:59:59.0")
	require.NoError(t, err)
	require.Equal(t, -1.0, got)

	for _, bad := range []string{
		"day one",
		"Y1, D0, 0:00:00.0",
		"Y1, D427, 0:00:00.0",
		"Y1, D1, 6:00:00.0",
		"Y1, D1, 0:60:00.0",
	} {
		_, err := ParseKerbalDate(bad)
		require.ErrorIs(t, err, ErrValidation, bad)
	}
}

func TestKerbalElapsed(t *testing.T) {
	require.Equal(t, "1d 1:01:01.5", FormatKerbalTime(kerbalDay+3661.5))
	require.Equal(t, "-3d 0:00:00.0", FormatKerbalTime(-3*kerbalDay))

	got, err := ParseKerbalTime("1d 1:01:01.5")
	require.NoError(t, err)
	require.Equal(t, kerbalDay+3661.5, got)

	for _, tv := range []float64{0, 21599.9, -kerbalDay - 0.5, 100 * kerbalDay} {
		back, err := ParseKerbalTime(FormatKerbalTime(tv))
		require.NoError(t, err)
		require.InDelta(t, tv, back, 0.05)
	}

	_, err = ParseKerbalTime("0d 6:00:00.0")
	require.ErrorIs(t, err, ErrValidation)
}

func TestTimeBridge(t *testing.T) {
	epoch := time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC)
	require.Less(t, ToTime(0).Sub(epoch).Abs(), time.Millisecond)
	require.InDelta(t, 0, FromTime(epoch), 1e-3)

	nextNoon := time.Date(2000, 1, 2, 12, 0, 0, 0, time.UTC)
	require.Less(t, ToTime(86400).Sub(nextNoon).Abs(), time.Millisecond)

	for _, tv := range []float64{0, 12345.678, -987654.2, 86400 * 365.25} {
		require.InDelta(t, tv, FromTime(ToTime(tv)), 1e-3)
	}
}
