// internal/frame/sequence.go
package frame

// ParseSequence walks buf from offset 0 and decodes consecutive frames until
// the buffer is exhausted. Trailing slack shorter than a header (at most 7
// bytes) is tolerated as padding. Any individual frame failure aborts the
// whole parse; partial results are never returned.
//
// The sequence parser is container-agnostic: callers that know a frame's
// identifier marks a container re-apply ParseSequence to that frame's
// payload themselves.
func ParseSequence(buf []byte) ([]Frame, error) {
	var frames []Frame

	offset := 0
	for len(buf)-offset >= HeaderLen {
		f, err := Parse(buf, offset)
		if err != nil {
			return nil, err
		}
		frames = append(frames, f)
		offset += f.TotalSize()
	}
	return frames, nil
}

// SerializeSequence concatenates the serialized frames in order. Order is
// significant: it is preserved through edit/re-save so output stays usable
// for diffing against Traktor-generated files.
func SerializeSequence(frames []Frame) ([]byte, error) {
	var out []byte
	for _, f := range frames {
		b, err := Serialize(f)
		if err != nil {
			return nil, err
		}
		out = append(out, b...)
	}
	return out, nil
}
