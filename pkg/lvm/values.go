package lvm

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	dateLayout = "2006/01/02"
	timeLayout = "15:04:05"
	timeFormat = "15:04:05.999999999"
)

// Date is a calendar date written as YYYY/MM/DD.
type Date struct {
	t time.Time
}

// NewDate returns the date for the given year, month and day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a date in YYYY/MM/DD form.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, err
	}
	return Date{t: t}, nil
}

// Time returns the date as midnight UTC.
func (d Date) Time() time.Time {
	return d.t
}

// String returns the date in YYYY/MM/DD form.
func (d Date) String() string {
	return d.t.Format(dateLayout)
}

// MarshalText implements encoding.TextMarshaler.
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Date) UnmarshalText(b []byte) error {
	v, err := ParseDate(string(b))
	if err != nil {
		return err
	}
	*d = v
	return nil
}

// Time is a time of day written as HH:MM:SS with optional fractional seconds.
type Time struct {
	t time.Time
}

// NewTime returns the time of day with the given components.
func NewTime(hour, min, sec, nsec int) Time {
	return Time{t: time.Date(0, time.January, 1, hour, min, sec, nsec, time.UTC)}
}

// ParseTime parses a time of day in HH:MM:SS[.fraction] form.
// Fractions beyond nanosecond precision are truncated.
func ParseTime(s string) (Time, error) {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return Time{}, err
	}
	return Time{t: t}, nil
}

// SinceMidnight returns the time of day as a duration.
func (t Time) SinceMidnight() time.Duration {
	h, m, s := t.t.Clock()
	return time.Duration(h)*time.Hour + time.Duration(m)*time.Minute +
		time.Duration(s)*time.Second + time.Duration(t.t.Nanosecond())
}

// String returns the time in HH:MM:SS[.fraction] form without trailing zeros.
func (t Time) String() string {
	return t.t.Format(timeFormat)
}

// MarshalText implements encoding.TextMarshaler.
func (t Time) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Time) UnmarshalText(b []byte) error {
	v, err := ParseTime(string(b))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// Version is a file format version, written as major[.minor[.patch]].
type Version struct {
	Major int
	Minor int
	Patch int
}

var errVersion = errors.New("expected major[.minor[.patch]]")

// ParseVersion parses a version number. Missing minor and patch components
// default to zero, so "2" parses as 2.0.0.
func ParseVersion(s string) (Version, error) {
	parts := strings.Split(s, ".")
	if len(parts) > 3 {
		return Version{}, errVersion
	}
	var nums [3]int
	for i, p := range parts {
		n, err := strconv.ParseUint(p, 10, 31)
		if err != nil {
			return Version{}, fmt.Errorf("%w: %v", errVersion, err)
		}
		nums[i] = int(n)
	}
	return Version{Major: nums[0], Minor: nums[1], Patch: nums[2]}, nil
}

// String returns the version as major.minor, with the patch component
// appended when it is not zero.
func (v Version) String() string {
	if v.Patch != 0 {
		return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
	}
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// MarshalText implements encoding.TextMarshaler.
func (v Version) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *Version) UnmarshalText(b []byte) error {
	p, err := ParseVersion(string(b))
	if err != nil {
		return err
	}
	*v = p
	return nil
}

// Unit is a free-text unit label such as "Volts".
type Unit string
