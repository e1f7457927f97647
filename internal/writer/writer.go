// Package writer serializes a MappingFile back into TSI controller payload
// bytes: the inverse of the interpreter. Output re-parses into a model
// equal to the original; byte-for-byte equality with Traktor's own output
// is not promised (Traktor tolerates ordering and padding differences).
package writer

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"

	"github.com/tsitools/tsikit/internal/commands"
	"github.com/tsitools/tsikit/internal/frame"
	"github.com/tsitools/tsikit/internal/interpret"
	"github.com/tsitools/tsikit/internal/transcode"
	"github.com/tsitools/tsikit/pkg/core"
)

// ErrInvalidEntry means a mapping entry holds out-of-domain values and
// cannot be represented in the binary format.
var ErrInvalidEntry = errors.New("invalid mapping entry")

// Options tunes encoding policy.
type Options struct {
	// FaderKnobCode is the wire code written for FaderOrKnob controls.
	// The decode side collapses codes 1 and 2, so the write side has to
	// pick one; zero means the canonical default.
	FaderKnobCode uint32
}

// Writer serializes mapping models. Safe for concurrent use.
type Writer struct {
	opts Options
}

// New creates a writer. The zero Options value gives canonical encoding.
func New(opts Options) *Writer {
	if opts.FaderKnobCode == 0 {
		opts.FaderKnobCode = transcode.DefaultFaderKnobCode
	}
	return &Writer{opts: opts}
}

// Write serializes the whole model: a version leaf followed by one device
// container per device, in order.
func (w *Writer) Write(f *core.MappingFile) ([]byte, error) {
	frames := []frame.Frame{{
		ID:      interpret.IDVersion,
		Payload: binary.BigEndian.AppendUint32(nil, uint32(f.Version)),
	}}

	for i := range f.Devices {
		df, err := w.deviceFrame(&f.Devices[i])
		if err != nil {
			return nil, fmt.Errorf("device %q: %w", f.Devices[i].Name, err)
		}
		frames = append(frames, df)
	}
	return frame.SerializeSequence(frames)
}

func (w *Writer) deviceFrame(d *core.Device) (frame.Frame, error) {
	var mappingFrames []frame.Frame
	for i := range d.Mappings {
		mf, err := w.mappingFrame(&d.Mappings[i])
		if err != nil {
			return frame.Frame{}, err
		}
		mappingFrames = append(mappingFrames, mf)
	}

	mappingList, err := containerFrame(interpret.IDMappingList, mappingFrames)
	if err != nil {
		return frame.Frame{}, err
	}
	bindingList, err := containerFrame(interpret.IDBindingList, []frame.Frame{mappingList})
	if err != nil {
		return frame.Frame{}, err
	}

	data, err := containerFrame(interpret.IDDeviceData, []frame.Frame{
		stringFrame(interpret.IDDeviceName, d.Name),
		stringFrame(interpret.IDDeviceComment, d.Comment),
		stringFrame(interpret.IDDeviceInPort, d.InPort),
		stringFrame(interpret.IDDeviceOutPort, d.OutPort),
		bindingList,
	})
	if err != nil {
		return frame.Frame{}, err
	}
	return containerFrame(interpret.IDDevice, []frame.Frame{data})
}

func (w *Writer) mappingFrame(e *core.MappingEntry) (frame.Frame, error) {
	if err := validateEntry(e); err != nil {
		return frame.Frame{}, err
	}

	data := make([]byte, 0, interpret.MappingDataLen)
	data = binary.BigEndian.AppendUint32(data, uint32(int32(commands.IDForName(e.CommandName))))
	data = binary.BigEndian.AppendUint32(data, ioTypeCode(e.IOType))
	data = binary.BigEndian.AppendUint32(data, uint32(transcode.AssignmentCode(e.Assignment)))
	data = binary.BigEndian.AppendUint32(data, transcode.InteractionModeCode(e.Interaction))
	data = binary.BigEndian.AppendUint32(data, transcode.ControllerTypeCodeWith(e.ControllerType, w.opts.FaderKnobCode))
	data = binary.BigEndian.AppendUint32(data, math.Float32bits(float32(e.SetToValue)))
	data = append(data, boolByte(e.Invert), boolByte(e.SoftTakeover))
	data = binary.BigEndian.AppendUint32(data, math.Float32bits(float32(e.RotarySensitivity)))
	data = binary.BigEndian.AppendUint32(data, math.Float32bits(float32(e.RotaryAcceleration)))
	data = binary.BigEndian.AppendUint32(data, encoderModeCode(e.EncoderMode))
	data = appendModifier(data, e.Modifier1)
	data = appendModifier(data, e.Modifier2)

	control := transcode.Control{Channel: e.MidiChannel, Note: e.MidiNote, CC: e.MidiCC}
	return containerFrame(interpret.IDMapping, []frame.Frame{
		{ID: interpret.IDMappingData, Payload: data},
		stringFrame(interpret.IDMappingBinding, transcode.FormatControl(control)),
		stringFrame(interpret.IDMappingComment, e.Comment),
	})
}

func validateEntry(e *core.MappingEntry) error {
	if e.MidiNote != nil && e.MidiCC != nil {
		return fmt.Errorf("%w: both note and CC set", ErrInvalidEntry)
	}
	if e.MidiChannel < 1 || e.MidiChannel > 16 {
		return fmt.Errorf("%w: MIDI channel %d", ErrInvalidEntry, e.MidiChannel)
	}
	if e.MidiNote != nil && (*e.MidiNote < 0 || *e.MidiNote > 127) {
		return fmt.Errorf("%w: MIDI note %d", ErrInvalidEntry, *e.MidiNote)
	}
	if e.MidiCC != nil && (*e.MidiCC < 0 || *e.MidiCC > 127) {
		return fmt.Errorf("%w: MIDI CC %d", ErrInvalidEntry, *e.MidiCC)
	}
	for _, m := range []*core.ModifierCondition{e.Modifier1, e.Modifier2} {
		if m == nil {
			continue
		}
		if m.Modifier < 1 || m.Modifier > 8 {
			return fmt.Errorf("%w: modifier slot %d", ErrInvalidEntry, m.Modifier)
		}
		if m.Value < 0 || m.Value > 7 {
			return fmt.Errorf("%w: modifier value %d", ErrInvalidEntry, m.Value)
		}
	}
	return nil
}

func containerFrame(id string, children []frame.Frame) (frame.Frame, error) {
	payload, err := frame.SerializeSequence(children)
	if err != nil {
		return frame.Frame{}, err
	}
	return frame.Frame{ID: id, Payload: payload}, nil
}

func stringFrame(id, s string) frame.Frame {
	return frame.Frame{ID: id, Payload: frame.AppendString(nil, s)}
}

func appendModifier(data []byte, m *core.ModifierCondition) []byte {
	if m == nil {
		return binary.BigEndian.AppendUint32(binary.BigEndian.AppendUint32(data, 0), 0)
	}
	data = binary.BigEndian.AppendUint32(data, uint32(m.Modifier))
	return binary.BigEndian.AppendUint32(data, uint32(m.Value))
}

func ioTypeCode(t core.IOType) uint32 {
	if t == core.IOTypeOutput {
		return 1
	}
	return 0
}

func boolByte(b bool) byte {
	if b {
		return 1
	}
	return 0
}

func encoderModeCode(m core.EncoderMode) uint32 {
	if m == core.Encoder7Fh01h {
		return 1
	}
	return 0
}
