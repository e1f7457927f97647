// Package frame implements the length-prefixed binary frame layout used by
// Traktor TSI controller payloads: a 4-character ASCII identifier, a 32-bit
// big-endian payload size, then the payload itself. All multi-byte integers
// in the format are big-endian.
package frame

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// HeaderLen is the fixed frame header length in bytes: 4 identifier bytes
// plus the uint32 payload size.
const HeaderLen = 8

var (
	ErrTruncatedHeader   = errors.New("truncated frame header")
	ErrTruncatedPayload  = errors.New("truncated frame payload")
	ErrInvalidIdentifier = errors.New("invalid frame identifier")
)

// Frame is one parsed frame. Frames are value types: Parse copies the
// payload out of the source buffer, so a Frame never aliases caller memory.
type Frame struct {
	ID      string // exactly 4 ASCII characters
	Payload []byte
}

// Size returns the payload length in bytes.
func (f Frame) Size() int {
	return len(f.Payload)
}

// TotalSize returns the on-wire size of the frame, header included.
func (f Frame) TotalSize() int {
	return HeaderLen + len(f.Payload)
}

func validIdentifier(id string) bool {
	if len(id) != 4 {
		return false
	}
	for i := 0; i < 4; i++ {
		if id[i] > 0x7F {
			return false
		}
	}
	return true
}

// Parse decodes one frame from buf starting at offset.
func Parse(buf []byte, offset int) (Frame, error) {
	if offset < 0 || len(buf)-offset < HeaderLen {
		return Frame{}, fmt.Errorf("%w: %d byte(s) at offset %d", ErrTruncatedHeader, len(buf)-offset, offset)
	}

	id := string(buf[offset : offset+4])
	if !validIdentifier(id) {
		return Frame{}, fmt.Errorf("%w: % X at offset %d", ErrInvalidIdentifier, buf[offset:offset+4], offset)
	}

	size := binary.BigEndian.Uint32(buf[offset+4 : offset+8])
	if uint64(size) > uint64(len(buf)-offset-HeaderLen) {
		return Frame{}, fmt.Errorf("%w: frame %s wants %d byte(s), %d remain at offset %d",
			ErrTruncatedPayload, id, size, len(buf)-offset-HeaderLen, offset)
	}

	payload := make([]byte, size)
	copy(payload, buf[offset+HeaderLen:offset+HeaderLen+int(size)])
	return Frame{ID: id, Payload: payload}, nil
}

// Serialize encodes the frame as identifier + big-endian size + payload.
// It fails if the identifier is not exactly 4 ASCII characters.
func Serialize(f Frame) ([]byte, error) {
	if !validIdentifier(f.ID) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidIdentifier, f.ID)
	}
	out := make([]byte, HeaderLen+len(f.Payload))
	copy(out[0:4], f.ID)
	binary.BigEndian.PutUint32(out[4:8], uint32(len(f.Payload)))
	copy(out[HeaderLen:], f.Payload)
	return out, nil
}
