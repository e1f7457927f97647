package tsi

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tsitools/tsikit/internal/envelope"
	"github.com/tsitools/tsikit/internal/frame"
	"github.com/tsitools/tsikit/internal/interpret"
	"github.com/tsitools/tsikit/pkg/core"
)

func intp(v int) *int { return &v }

// sampleFile builds a model out of in-domain values only: valid channels,
// mutually exclusive note/CC, valid modifier ranges, no raw Encoder type
// (the wire format cannot distinguish it from FaderOrKnob).
func sampleFile() *core.MappingFile {
	return &core.MappingFile{
		Version: 27,
		Devices: []core.Device{
			{
				Name:    "Traktor Kontrol X1",
				Comment: "left deck",
				InPort:  "X1 In",
				OutPort: "X1 Out",
				Mappings: []core.MappingEntry{
					{
						CommandName:    "Play/Pause",
						IOType:         core.IOTypeInput,
						Assignment:     core.AssignDeckA,
						Interaction:    core.InteractionToggle,
						MidiChannel:    1,
						MidiNote:       intp(60),
						ControllerType: core.ControllerButton,
						Comment:        "big play button",
					},
					{
						CommandName:        "Filter Amount",
						IOType:             core.IOTypeInput,
						Assignment:         core.AssignDeckB,
						Interaction:        core.InteractionDirect,
						MidiChannel:        9,
						MidiCC:             intp(16),
						ControllerType:     core.ControllerFaderOrKnob,
						SoftTakeover:       true,
						RotarySensitivity:  0.5,
						RotaryAcceleration: 0.25,
						Modifier1:          &core.ModifierCondition{Modifier: 3, Value: 1},
					},
					{
						CommandName:    "Deck Is Playing",
						IOType:         core.IOTypeOutput,
						Assignment:     core.AssignDeckA,
						Interaction:    core.InteractionOutput,
						MidiChannel:    1,
						MidiNote:       intp(36),
						ControllerType: core.ControllerLED,
						Invert:         true,
						Modifier1:      &core.ModifierCondition{Modifier: 1, Value: 0},
						Modifier2:      &core.ModifierCondition{Modifier: 8, Value: 7},
					},
				},
			},
			{
				Name:   "Generic MIDI",
				InPort: "IAC Bus 1",
				Mappings: []core.MappingEntry{
					{
						CommandName: "Slot 2 Cell 7 Trigger",
						IOType:      core.IOTypeInput,
						Assignment:  core.AssignGlobal,
						Interaction: core.InteractionHold,
						MidiChannel: 16,
						MidiCC:      intp(127),
						EncoderMode: core.Encoder7Fh01h,
					},
					{
						// Unknown command survives through the fallback name.
						CommandName: "Command #31337",
						IOType:      core.IOTypeInput,
						Assignment:  core.AssignFXUnit2,
						Interaction: core.InteractionRelative,
						MidiChannel: 2,
						MidiCC:      intp(1),
						SetToValue:  0.75,
					},
				},
			},
		},
	}
}

func TestFullRoundTrip(t *testing.T) {
	original := sampleFile()

	doc, err := Write(original)
	require.NoError(t, err)

	got, err := Parse(doc)
	require.NoError(t, err)

	// IDs are generated fresh on every decode and are not persisted.
	diff := cmp.Diff(original, got,
		cmpopts.IgnoreFields(core.MappingEntry{}, "ID"),
		cmpopts.EquateEmpty(),
	)
	if diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}

	for _, d := range got.Devices {
		for _, m := range d.Mappings {
			assert.NotEmpty(t, m.ID, "decoded mappings get local IDs")
		}
	}
}

func TestRoundTripTwiceIsStable(t *testing.T) {
	doc, err := Write(sampleFile())
	require.NoError(t, err)

	first, err := Parse(doc)
	require.NoError(t, err)

	doc2, err := Write(first)
	require.NoError(t, err)

	second, err := Parse(doc2)
	require.NoError(t, err)

	diff := cmp.Diff(first, second,
		cmpopts.IgnoreFields(core.MappingEntry{}, "ID"),
		cmpopts.EquateEmpty(),
	)
	assert.Empty(t, diff)
}

func TestParseEmptyPayloadIsEmptyFile(t *testing.T) {
	// "HELLO" decodes to 5 payload bytes: below one frame header, so the
	// sequence parser sees only tolerable slack and no frames at all.
	doc := []byte(`<NIXML><TraktorSettings><Entry Name="DeviceIO.Config.Controller" Value="SEVMTE8="/></TraktorSettings></NIXML>`)

	f, err := Parse(doc)
	require.NoError(t, err)
	assert.Empty(t, f.Devices)
	assert.Equal(t, 0, f.TotalMappings())
}

func TestParseSkipsUnknownFrames(t *testing.T) {
	payload, err := writePayload(sampleFile())
	require.NoError(t, err)

	// Splice a frame from the future in front of the real ones.
	unknown, err := frame.Serialize(frame.Frame{ID: "ZZZZ", Payload: []byte{1, 2, 3}})
	require.NoError(t, err)
	doc := envelope.InjectControllerData(append(unknown, payload...))

	got, err := Parse(doc)
	require.NoError(t, err)
	assert.Len(t, got.Devices, 2)
	assert.Equal(t, 5, got.TotalMappings())
}

func TestParseFailsOnBrokenGrammar(t *testing.T) {
	// A device container without its DDAT child is broken nesting, not an
	// unknown frame.
	devi, err := frame.Serialize(frame.Frame{ID: "DEVI"})
	require.NoError(t, err)
	doc := envelope.InjectControllerData(devi)

	_, err = Parse(doc)
	assert.ErrorIs(t, err, interpret.ErrUnsupportedFrameGrammar)
}

func TestParseFailsOnTruncatedFrame(t *testing.T) {
	payload, err := writePayload(sampleFile())
	require.NoError(t, err)
	doc := envelope.InjectControllerData(payload[:len(payload)-10])

	_, err = Parse(doc)
	require.Error(t, err)
}

func TestWriteRejectsNoteAndCC(t *testing.T) {
	f := New()
	f.Devices = []core.Device{{
		Name: "bad",
		Mappings: []core.MappingEntry{{
			CommandName: "Cue",
			MidiChannel: 1,
			MidiNote:    intp(60),
			MidiCC:      intp(60),
		}},
	}}

	_, err := Write(f)
	require.Error(t, err)
}

// writePayload serializes just the binary controller payload, without the
// XML envelope.
func writePayload(f *core.MappingFile) ([]byte, error) {
	doc, err := Write(f)
	if err != nil {
		return nil, err
	}
	return envelope.ExtractControllerData(doc)
}
