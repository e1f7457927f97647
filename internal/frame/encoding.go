// internal/frame/encoding.go
package frame

import (
	"encoding/binary"
	"fmt"
	"unicode/utf16"
)

// TSI string leaves hold a uint32 big-endian code-unit count followed by
// that many UTF-16BE code units.

// AppendString appends the TSI wire form of s to dst and returns the
// extended slice.
func AppendString(dst []byte, s string) []byte {
	units := utf16.Encode([]rune(s))
	dst = binary.BigEndian.AppendUint32(dst, uint32(len(units)))
	for _, u := range units {
		dst = binary.BigEndian.AppendUint16(dst, u)
	}
	return dst
}

// DecodeString decodes a TSI string payload. The whole payload must be
// consumed by the string; anything else is a truncation or trailing junk.
func DecodeString(payload []byte) (string, error) {
	if len(payload) < 4 {
		return "", fmt.Errorf("%w: string leaf of %d byte(s)", ErrTruncatedPayload, len(payload))
	}
	count := binary.BigEndian.Uint32(payload[0:4])
	if uint64(len(payload)) != 4+2*uint64(count) {
		return "", fmt.Errorf("%w: string wants %d code unit(s) in %d byte(s)",
			ErrTruncatedPayload, count, len(payload)-4)
	}
	units := make([]uint16, count)
	for i := range units {
		units[i] = binary.BigEndian.Uint16(payload[4+2*i:])
	}
	return string(utf16.Decode(units)), nil
}
