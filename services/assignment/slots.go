package assignment

import (
	"fmt"
	"strings"
	"time"
)

// GenerateSlots produces the ordered slot-start times between startTime
// (inclusive) and endTime (exclusive), stepping by durationMinutes.
// A final partial slot that would reach or cross endTime is omitted.
func GenerateSlots(startTime, endTime string, durationMinutes int) []string {
	start, err := parseClock(startTime)
	if err != nil {
		return nil
	}
	end, err := parseClock(endTime)
	if err != nil {
		return nil
	}
	if durationMinutes <= 0 {
		return nil
	}

	slots := []string{}
	for cur := start; cur+durationMinutes <= end; cur += durationMinutes {
		slots = append(slots, fmt.Sprintf("%02d:%02d", cur/60, cur%60))
	}
	return slots
}

// parseClock converts "HH:MM" to minutes from midnight.
func parseClock(clock string) (int, error) {
	parts := strings.SplitN(clock, ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid time %q", clock)
	}
	var hour, minute int
	if _, err := fmt.Sscanf(clock, "%d:%d", &hour, &minute); err != nil {
		return 0, fmt.Errorf("invalid time %q: %w", clock, err)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("time %q out of range", clock)
	}
	return hour*60 + minute, nil
}

// windowContains reports whether clock falls inside [start, end).
func windowContains(window DayWindow, clock string) bool {
	t, err := parseClock(clock)
	if err != nil {
		return false
	}
	start, err := parseClock(window.StartTime)
	if err != nil {
		return false
	}
	end, err := parseClock(window.EndTime)
	if err != nil {
		return false
	}
	return t >= start && t < end
}

// dayOfWeek returns the lowercase weekday name for a "YYYY-MM-DD" date.
func dayOfWeek(date string) (string, error) {
	day, err := time.ParseInLocation("2006-01-02", date, time.Local)
	if err != nil {
		return "", fmt.Errorf("invalid date %q: %w", date, err)
	}
	return strings.ToLower(day.Weekday().String()), nil
}
