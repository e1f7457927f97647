package frame

import (
	"errors"
	"testing"
)

func TestStringRoundTrip(t *testing.T) {
	for _, s := range []string{
		"",
		"Traktor Kontrol X1",
		"Ch01.CC.100",
		"Bar éè 世界", // non-ASCII survives UTF-16
	} {
		payload := AppendString(nil, s)
		got, err := DecodeString(payload)
		if err != nil {
			t.Fatalf("DecodeString(%q): %v", s, err)
		}
		if got != s {
			t.Errorf("round trip: got %q, want %q", got, s)
		}
	}
}

func TestDecodeStringErrors(t *testing.T) {
	tests := []struct {
		name    string
		payload []byte
	}{
		{"too short for count", []byte{0x00, 0x00}},
		{"count past payload", []byte{0x00, 0x00, 0x00, 0x05, 0x00, 'A'}},
		{"trailing junk", append(AppendString(nil, "A"), 0x00)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := DecodeString(tt.payload); !errors.Is(err, ErrTruncatedPayload) {
				t.Errorf("error = %v, want ErrTruncatedPayload", err)
			}
		})
	}
}
