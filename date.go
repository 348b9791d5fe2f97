package spyce

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/soniakeys/meeus/v3/julian"
)

// Simulation time is seconds past the J2000 epoch, 2000-01-01 12:00:00.
// The human calendar below is the proleptic Gregorian one with fixed
// 86400-second days (no leap seconds); the Kerbal calendar counts
// 21600-second days and 426-day years, one-based.
const (
	// J2000 is the epoch as a Julian date.
	J2000 = 2451545.0

	secondsPerDay  = 86400.0
	kerbalDay      = 21600.0
	kerbalYear     = 426 * kerbalDay
	j2000DayOffset = secondsPerDay / 2 // J2000 sits at noon
)

// FormatHumanDate renders a simulation time as a Gregorian calendar
// date, "2000-01-01 12:00:00.000000" for t=0.
func FormatHumanDate(t float64) string {
	shifted := t + j2000DayOffset
	days := math.Floor(shifted / secondsPerDay)
	secs := shifted - days*secondsPerDay
	if secs >= secondsPerDay {
		days++
		secs -= secondsPerDay
	}
	// Whole days keep the Julian date on the midnight grid, so the
	// calendar split is exact and all sub-day precision stays in secs.
	year, month, day := julian.JDToCalendar(J2000 - j2000DayOffset/secondsPerDay + days)
	h := math.Floor(secs / 3600)
	rem := secs - h*3600
	m := math.Floor(rem / 60)
	s := rem - m*60
	return fmt.Sprintf("%04d-%02d-%02d %02d:%02d:%09.6f", year, month, int(day), int(h), int(m), s)
}

// ParseHumanDate is the inverse of FormatHumanDate. Times round-trip to
// the microsecond.
func ParseHumanDate(date string) (float64, error) {
	var year, month, day, h, m int
	var s float64
	n, err := fmt.Sscanf(strings.TrimSpace(date), "%d-%d-%d %d:%d:%f", &year, &month, &day, &h, &m, &s)
	if err != nil || n != 6 {
		return 0, fmt.Errorf("date %q: %w", date, ErrValidation)
	}
	if month < 1 || month > 12 || day < 1 || day > 31 || h > 23 || m > 59 || s >= 60 || h < 0 || m < 0 || s < 0 {
		return 0, fmt.Errorf("date %q out of range: %w", date, ErrValidation)
	}
	days := julian.CalendarGregorianToJD(year, month, float64(day)) - (J2000 - j2000DayOffset/secondsPerDay)
	return days*secondsPerDay + float64(h)*3600 + float64(m)*60 + s - j2000DayOffset, nil
}

// FormatHumanTime renders an elapsed time as signed days and clock time,
// "-2d 03:11:00.250000" style.
func FormatHumanTime(t float64) string {
	sign := ""
	if t < 0 {
		sign, t = "-", -t
	}
	days := math.Floor(t / secondsPerDay)
	secs := t - days*secondsPerDay
	h := math.Floor(secs / 3600)
	rem := secs - h*3600
	m := math.Floor(rem / 60)
	return fmt.Sprintf("%s%dd %02d:%02d:%09.6f", sign, int64(days), int(h), int(m), rem-m*60)
}

// ParseHumanTime is the inverse of FormatHumanTime.
func ParseHumanTime(elapsed string) (float64, error) {
	text := strings.TrimSpace(elapsed)
	sign := 1.0
	if strings.HasPrefix(text, "-") {
		sign, text = -1, text[1:]
	}
	var days, h, m int
	var s float64
	n, err := fmt.Sscanf(text, "%dd %d:%d:%f", &days, &h, &m, &s)
	if err != nil || n != 4 {
		return 0, fmt.Errorf("elapsed time %q: %w", elapsed, ErrValidation)
	}
	if days < 0 || h < 0 || m < 0 || s < 0 {
		return 0, fmt.Errorf("elapsed time %q: %w", elapsed, ErrValidation)
	}
	return sign * (float64(days)*secondsPerDay + float64(h)*3600 + float64(m)*60 + s), nil
}

// FormatKerbalDate renders a simulation time on the Kerbal calendar,
// "Y1, D1, 0:00:00.0" for t=0. Years and days are one-based.
func FormatKerbalDate(t float64) string {
	yr := math.Floor(t / kerbalYear)
	rem := t - yr*kerbalYear
	day := math.Floor(rem / kerbalDay)
	secs := rem - day*kerbalDay
	h := math.Floor(secs / 3600)
	hrem := secs - h*3600
	m := math.Floor(hrem / 60)
	return fmt.Sprintf("Y%d, D%d, %d:%02d:%04.1f", int64(yr)+1, int64(day)+1, int(h), int(m), hrem-m*60)
}

// ParseKerbalDate is the inverse of FormatKerbalDate. Times round-trip
// within 0.05 seconds.
func ParseKerbalDate(date string) (float64, error) {
	var yr, day, h, m int
	var s float64
	n, err := fmt.Sscanf(strings.TrimSpace(date), "Y%d, D%d, %d:%d:%f", &yr, &day, &h, &m, &s)
	if err != nil || n != 5 {
		return 0, fmt.Errorf("date %q: %w", date, ErrValidation)
	}
	if day < 1 || day > 426 || h < 0 || h > 5 || m < 0 || m > 59 || s < 0 || s >= 60 {
		return 0, fmt.Errorf("date %q out of range: %w", date, ErrValidation)
	}
	return float64(yr-1)*kerbalYear + float64(day-1)*kerbalDay + float64(h)*3600 + float64(m)*60 + s, nil
}

// FormatKerbalTime renders an elapsed time as signed six-hour Kerbal days
// and clock time.
func FormatKerbalTime(t float64) string {
	sign := ""
	if t < 0 {
		sign, t = "-", -t
	}
	days := math.Floor(t / kerbalDay)
	secs := t - days*kerbalDay
	h := math.Floor(secs / 3600)
	rem := secs - h*3600
	m := math.Floor(rem / 60)
	return fmt.Sprintf("%s%dd %d:%02d:%04.1f", sign, int64(days), int(h), int(m), rem-m*60)
}

// ParseKerbalTime is the inverse of FormatKerbalTime.
func ParseKerbalTime(elapsed string) (float64, error) {
	text := strings.TrimSpace(elapsed)
	sign := 1.0
	if strings.HasPrefix(text, "-") {
		sign, text = -1, text[1:]
	}
	var days, h, m int
	var s float64
	n, err := fmt.Sscanf(text, "%dd %d:%d:%f", &days, &h, &m, &s)
	if err != nil || n != 4 {
		return 0, fmt.Errorf("elapsed time %q: %w", elapsed, ErrValidation)
	}
	if days < 0 || h < 0 || h > 5 || m < 0 || m > 59 || s < 0 || s >= 60 {
		return 0, fmt.Errorf("elapsed time %q: %w", elapsed, ErrValidation)
	}
	return sign * (float64(days)*kerbalDay + float64(h)*3600 + float64(m)*60 + s), nil
}

// ToTime converts a simulation time to a stdlib UTC instant, ignoring
// leap seconds. Precision is limited by the Julian date split, roughly a
// microsecond near the epoch.
func ToTime(t float64) time.Time {
	return julian.JDToTime(J2000 + t/secondsPerDay)
}

// FromTime converts a stdlib instant to simulation time.
func FromTime(tm time.Time) float64 {
	return (julian.TimeToJD(tm) - J2000) * secondsPerDay
}
