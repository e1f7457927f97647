package interpret

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tsitools/tsikit/internal/frame"
)

func serialize(t *testing.T, f frame.Frame) []byte {
	t.Helper()
	b, err := frame.Serialize(f)
	require.NoError(t, err)
	return b
}

func TestInterpretVersionLeaf(t *testing.T) {
	buf := serialize(t, frame.Frame{
		ID:      IDVersion,
		Payload: binary.BigEndian.AppendUint32(nil, 31),
	})

	file, err := New(nil).Interpret(buf)
	require.NoError(t, err)
	assert.Equal(t, 31, file.Version)
	assert.Empty(t, file.Devices)
}

func TestInterpretShortVersionLeaf(t *testing.T) {
	buf := serialize(t, frame.Frame{ID: IDVersion, Payload: []byte{0x01}})

	_, err := New(nil).Interpret(buf)
	assert.ErrorIs(t, err, ErrUnsupportedFrameGrammar)
}

func TestInterpretSkipsUnknownTopLevel(t *testing.T) {
	buf := serialize(t, frame.Frame{ID: "XYZW", Payload: []byte{0xFF, 0xFE}})

	file, err := New(nil).Interpret(buf)
	require.NoError(t, err)
	assert.Empty(t, file.Devices)
}

func TestInterpretShortMappingRecord(t *testing.T) {
	cmad := serialize(t, frame.Frame{ID: IDMappingData, Payload: make([]byte, MappingDataLen-1)})
	cmai := serialize(t, frame.Frame{ID: IDMapping, Payload: cmad})
	cmas := serialize(t, frame.Frame{ID: IDMappingList, Payload: cmai})
	ddcb := serialize(t, frame.Frame{ID: IDBindingList, Payload: cmas})
	ddat := serialize(t, frame.Frame{ID: IDDeviceData, Payload: ddcb})
	devi := serialize(t, frame.Frame{ID: IDDevice, Payload: ddat})

	_, err := New(nil).Interpret(devi)
	assert.ErrorIs(t, err, ErrUnsupportedFrameGrammar)
}

func TestInterpretContainerWithGarbagePayload(t *testing.T) {
	// A known container whose payload is not a frame sequence cannot be
	// resolved into the grammar.
	devi := serialize(t, frame.Frame{ID: IDDevice, Payload: make([]byte, 32)})

	_, err := New(nil).Interpret(devi)
	assert.ErrorIs(t, err, ErrUnsupportedFrameGrammar)
}
