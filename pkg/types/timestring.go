package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"
)

// TimeString is a wall-clock time of day in "HH:MM" format.
// Used for slot descriptors and schedule boundaries where only the time of
// day matters, independent of date and timezone.
type TimeString string

// ErrInvalidTimeString returned for values not matching the HH:MM format
var ErrInvalidTimeString = errors.New("invalid time string format, expected HH:MM")

// NewTimeString builds a TimeString from the time-of-day part of t
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format("15:04"))
}

// NewTimeStringFromString parses and validates an "HH:MM" string
func NewTimeStringFromString(s string) (TimeString, error) {
	ts := TimeString(s)
	if err := ts.Validate(); err != nil {
		return "", err
	}
	return ts, nil
}

// Validate checks the HH:MM format
func (t TimeString) Validate() error {
	if _, err := time.Parse("15:04", string(t)); err != nil {
		return ErrInvalidTimeString
	}
	return nil
}

// IsZero reports whether the value is empty
func (t TimeString) IsZero() bool {
	return t == ""
}

// String returns the raw HH:MM value
func (t TimeString) String() string {
	return string(t)
}

// Minutes returns the number of minutes since midnight
func (t TimeString) Minutes() (int, error) {
	parsed, err := time.Parse("15:04", string(t))
	if err != nil {
		return 0, ErrInvalidTimeString
	}
	return parsed.Hour()*60 + parsed.Minute(), nil
}

// IsBefore reports whether t is strictly earlier in the day than other
func (t TimeString) IsBefore(other TimeString) bool {
	return string(t) < string(other)
}

// IsAfter reports whether t is strictly later in the day than other
func (t TimeString) IsAfter(other TimeString) bool {
	return string(t) > string(other)
}

// AddMinutes returns the time m minutes later on the same day.
// Crossing midnight is an error: slots never span two days.
func (t TimeString) AddMinutes(m int) (TimeString, error) {
	total, err := t.Minutes()
	if err != nil {
		return "", err
	}
	total += m
	if total < 0 || total > 24*60 {
		return "", fmt.Errorf("time %s plus %d minutes leaves the day", t, m)
	}
	if total == 24*60 {
		return TimeString("24:00"), nil
	}
	return TimeString(fmt.Sprintf("%02d:%02d", total/60, total%60)), nil
}

// At anchors the time of day onto the given date in the date's location
func (t TimeString) At(date time.Time) (time.Time, error) {
	parsed, err := time.Parse("15:04", string(t))
	if err != nil {
		return time.Time{}, ErrInvalidTimeString
	}
	return time.Date(date.Year(), date.Month(), date.Day(),
		parsed.Hour(), parsed.Minute(), 0, 0, date.Location()), nil
}

// Value implements driver.Valuer
func (t TimeString) Value() (driver.Value, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return string(t), nil
}

// Scan implements sql.Scanner, accepting TIME columns and plain strings
func (t *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*t = ""
		return nil
	case time.Time:
		*t = NewTimeString(v)
		return nil
	case string:
		*t = TimeString(v[:min(len(v), 5)])
		return t.Validate()
	case []byte:
		s := string(v)
		*t = TimeString(s[:min(len(s), 5)])
		return t.Validate()
	default:
		return fmt.Errorf("cannot scan %T into TimeString", src)
	}
}
