// Package format holds the small string helpers used to render a presence.
package format

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// Ellipsis is appended by TruncateBytes when it cuts a string
const Ellipsis = "..."

// FormatPosition renders a playback position in seconds as "m:ss".
//
// Minutes are only carried while more than 60 seconds remain, so exactly 60
// seconds renders as "0:60" and 120 as "1:60". Negative input is not
// normalised: -5 renders as "0:-5".
func FormatPosition(secs int64) string {
	var mins int64
	for secs > 60 {
		secs -= 60
		mins++
	}

	s := strconv.FormatInt(secs, 10)
	if len(s) < 2 {
		s = "0" + s
	}
	return strconv.FormatInt(mins, 10) + ":" + s
}

// TruncateBytes cuts s so that its UTF-8 encoding is at most maxBytes long and
// appends Ellipsis when something was cut. Runes are never split. The ellipsis
// itself is not counted against maxBytes.
func TruncateBytes(s string, maxBytes int) string {
	if len(s) <= maxBytes {
		return s
	}

	var b strings.Builder
	n := 0
	for _, r := range s {
		size := utf8.RuneLen(r)
		if n+size > maxBytes {
			b.WriteString(Ellipsis)
			break
		}
		n += size
		b.WriteRune(r)
	}
	return b.String()
}
