// Package timeutil formats and validates timer durations. Validation happens
// here, at the input boundary, before anything reaches the timer engine.
package timeutil

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Validation errors surfaced to the user as transient notices.
var (
	ErrNoCustomValue = errors.New("enter a value for hours or minutes")
	ErrNotANumber    = errors.New("enter valid numbers for hours and minutes")
	ErrNegative      = errors.New("hours and minutes must be positive numbers")
	ErrOutOfRange    = errors.New("invalid time range")
	ErrZeroDuration  = errors.New("set at least 1 minute for the timer")
)

// PresetMinutes are the durations offered by the timer picker.
var PresetMinutes = []int{0, 5, 10, 15, 20, 25, 30, 45, 60}

// Custom duration bounds.
const (
	MaxHours   = 24
	MaxMinutes = 59
)

// PresetSeconds converts a preset minute choice into seconds.
func PresetSeconds(minutes int) (int, error) {
	if minutes < 0 {
		return 0, ErrOutOfRange
	}
	return minutes * 60, nil
}

// ParseCustom converts the custom hours/minutes pair from the timer form into
// total seconds. Both fields are free-text inputs; empty means zero, but at
// least one must be filled in.
func ParseCustom(hours, minutes string) (int, error) {
	hours = strings.TrimSpace(hours)
	minutes = strings.TrimSpace(minutes)

	if hours == "" && minutes == "" {
		return 0, ErrNoCustomValue
	}

	h, err := parseField(hours)
	if err != nil {
		return 0, err
	}
	m, err := parseField(minutes)
	if err != nil {
		return 0, err
	}

	if h < 0 || m < 0 {
		return 0, ErrNegative
	}
	if h > MaxHours || m > MaxMinutes {
		return 0, ErrOutOfRange
	}

	total := h*60 + m
	if total == 0 {
		return 0, ErrZeroDuration
	}
	return total * 60, nil
}

func parseField(s string) (int, error) {
	if s == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, ErrNotANumber
	}
	return n, nil
}

// FormatClock renders seconds as HH:MM:SS.
func FormatClock(totalSeconds int) string {
	if totalSeconds < 0 {
		totalSeconds = 0
	}
	hours := totalSeconds / 3600
	minutes := (totalSeconds % 3600) / 60
	seconds := totalSeconds % 60
	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
}

// FormatDuration renders seconds as a compact human duration like "1h 30m".
// Zero (and sub-minute values) come out as "0m".
func FormatDuration(totalSeconds int) string {
	totalMinutes := totalSeconds / 60
	hours := totalMinutes / 60
	minutes := totalMinutes % 60

	var parts []string
	if hours > 0 {
		parts = append(parts, fmt.Sprintf("%dh", hours))
	}
	if minutes > 0 {
		parts = append(parts, fmt.Sprintf("%dm", minutes))
	}
	if len(parts) == 0 {
		return "0m"
	}
	return strings.Join(parts, " ")
}
