// internal/transcode/midicontrol.go
package transcode

import (
	"fmt"
	"strconv"
	"strings"
)

// noteNames is the 12-symbol set used in TSI control names, indexed by
// semitone within the octave.
var noteNames = []string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// Control is the decoded form of a TSI MIDI control name such as
// "Ch01.CC.100" or "Ch09.Note.C2". Note and CC are mutually exclusive;
// a malformed name decodes to channel 1 with neither set.
type Control struct {
	Channel int // 1..16
	Note    *int
	CC      *int
}

// NoteNumber converts a note name like "C4", "C#2" or "C-1" into its MIDI
// number: (octave+1)*12 + semitone, so C4 = 60, A4 = 69 and C-1 = 0.
// Unknown note letters or out-of-range results yield nil rather than an
// error.
func NoteNumber(name string) *int {
	// Longest symbol first so "C#" wins over "C".
	idx := -1
	var sym string
	for i, n := range noteNames {
		if strings.HasPrefix(name, n) && len(n) > len(sym) {
			idx, sym = i, n
		}
	}
	if idx < 0 {
		return nil
	}

	octave, err := strconv.Atoi(name[len(sym):])
	if err != nil {
		return nil
	}
	num := (octave+1)*12 + idx
	if num < 0 || num > 127 {
		return nil
	}
	return &num
}

// NoteName is the inverse of NoteNumber for in-range MIDI numbers.
func NoteName(number int) string {
	return fmt.Sprintf("%s%d", noteNames[((number%12)+12)%12], number/12-1)
}

// ParseControl decodes a TSI control name. The channel is whatever parses
// between "Ch" and the next dot; a missing or malformed channel defaults
// to 1. Malformed names are not an error — they decode to the permissive
// fallback (channel 1, no note, no CC).
func ParseControl(name string) Control {
	c := Control{Channel: 1}

	rest := name
	if strings.HasPrefix(rest, "Ch") {
		dot := strings.IndexByte(rest, '.')
		if dot < 0 {
			return c
		}
		if ch, err := strconv.Atoi(rest[2:dot]); err == nil {
			c.Channel = ch
		}
		rest = rest[dot+1:]
	}

	switch {
	case strings.HasPrefix(rest, "CC."):
		if n, err := strconv.Atoi(rest[len("CC."):]); err == nil && n >= 0 && n <= 127 {
			c.CC = &n
		}
	case strings.HasPrefix(rest, "Note."):
		c.Note = NoteNumber(rest[len("Note."):])
	}
	return c
}

// FormatControl renders a control back to its TSI name. The zero channel
// renders as channel 1.
func FormatControl(c Control) string {
	ch := c.Channel
	if ch < 1 {
		ch = 1
	}
	switch {
	case c.CC != nil:
		return fmt.Sprintf("Ch%02d.CC.%03d", ch, *c.CC)
	case c.Note != nil:
		return fmt.Sprintf("Ch%02d.Note.%s", ch, NoteName(*c.Note))
	default:
		return fmt.Sprintf("Ch%02d", ch)
	}
}
