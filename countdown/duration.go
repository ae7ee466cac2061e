// Package countdown holds the timer state machine and its time
// arithmetic, independent of scheduling and rendering so it can be
// driven tick by tick in tests.
package countdown

import (
	"fmt"
	"strconv"
	"strings"
)

// Duration is the remaining time, field by field. Minutes and seconds
// are conventionally 0-59 but direct entry is accepted literally, so
// "99:99:99" stays exactly that until ticks borrow it down.
type Duration struct {
	Hours   int
	Minutes int
	Seconds int
}

// Default is what a fresh timer starts with.
var Default = Duration{Minutes: 5}

// Presets are the quick durations bound to the number keys, in order.
var Presets = []Duration{
	{Minutes: 1},
	{Minutes: 5},
	{Minutes: 10},
	{Minutes: 15},
	{Minutes: 30},
	{Minutes: 60},
}

func (d Duration) IsZero() bool {
	return d.Hours == 0 && d.Minutes == 0 && d.Seconds == 0
}

// String renders MM:SS, or HH:MM:SS once hours are involved. Fields are
// zero-padded to two digits.
func (d Duration) String() string {
	if d.Hours == 0 {
		return fmt.Sprintf("%02d:%02d", d.Minutes, d.Seconds)
	}
	return fmt.Sprintf("%02d:%02d:%02d", d.Hours, d.Minutes, d.Seconds)
}

// decrement takes one second off with borrow arithmetic: seconds borrow
// from minutes, minutes from hours. Zero stays zero.
func (d Duration) decrement() Duration {
	switch {
	case d.Seconds > 0:
		d.Seconds--
	case d.Minutes > 0:
		d.Minutes--
		d.Seconds = 59
	case d.Hours > 0:
		d.Hours--
		d.Minutes = 59
		d.Seconds = 59
	}
	return d
}

// Parse converts free text into a Duration. The text is split on ":":
// two parts read as MM:SS, three as HH:MM:SS, any other count is zero.
// Parts that don't parse as non-negative numbers coerce to 0. Parse
// never fails; malformed input just degrades to zero.
func Parse(s string) Duration {
	parts := strings.Split(s, ":")
	switch len(parts) {
	case 2:
		return Duration{Minutes: field(parts[0]), Seconds: field(parts[1])}
	case 3:
		return Duration{Hours: field(parts[0]), Minutes: field(parts[1]), Seconds: field(parts[2])}
	}
	return Duration{}
}

func field(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0
	}
	return n
}
