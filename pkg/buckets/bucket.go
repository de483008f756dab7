// Package buckets converts "H:MM" runtime strings into minute counts
// and rounds them onto the heatmap's 10-minute column axis.
package buckets

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Width of one runtime bucket in minutes.
const Width = 10

// ErrInvalidRuntime marks a runtime string that cannot be parsed into
// hours and minutes. Rows carrying one are rejected, never coerced.
var ErrInvalidRuntime = errors.New("invalid runtime format")

// Minutes parses an "H:MM" or "HH:MM" runtime string into a total
// minute count.
func Minutes(runtime string) (int, error) {
	parts := strings.Split(runtime, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidRuntime, runtime)
	}

	hours, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, fmt.Errorf("%w: bad hours in %q", ErrInvalidRuntime, runtime)
	}
	minutes, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, fmt.Errorf("%w: bad minutes in %q", ErrInvalidRuntime, runtime)
	}
	if hours < 0 || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("%w: out of range %q", ErrInvalidRuntime, runtime)
	}

	return hours*60 + minutes, nil
}

// Bucket rounds a minute count to the nearest multiple of the bucket
// width, half rounding up.
func Bucket(minutes int) int {
	return (minutes + Width/2) / Width * Width
}
