// Package interpret walks a parsed TSI frame tree and builds the domain
// mapping model. It owns the frame grammar: which identifiers are
// containers, which leaves carry which fields, and the binary layout of
// the per-mapping data record.
//
// Unrecognized identifiers are skipped, not failed: real-world files from
// newer Traktor versions carry frame types this build has never seen.
package interpret

import (
	"encoding/binary"
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/google/uuid"

	"github.com/tsitools/tsikit/internal/commands"
	"github.com/tsitools/tsikit/internal/frame"
	"github.com/tsitools/tsikit/internal/transcode"
	"github.com/tsitools/tsikit/pkg/core"
)

// ErrUnsupportedFrameGrammar means a known container or leaf did not hold
// what the grammar requires. It is terminal for the whole parse; it is NOT
// raised for unknown-but-well-formed frames, which are skipped.
var ErrUnsupportedFrameGrammar = errors.New("unsupported frame grammar")

// Frame identifiers of the controller-mapping grammar.
const (
	IDVersion        = "DIOI"
	IDDevice         = "DEVI"
	IDDeviceData     = "DDAT"
	IDDeviceName     = "DDIN"
	IDDeviceComment  = "DDIC"
	IDDeviceInPort   = "DDPI"
	IDDeviceOutPort  = "DDPO"
	IDBindingList    = "DDCB"
	IDMappingList    = "CMAS"
	IDMapping        = "CMAI"
	IDMappingData    = "CMAD"
	IDMappingBinding = "CMAB"
	IDMappingComment = "CMAC"
)

// Containers marks the identifiers whose payload is itself a frame
// sequence. The sequence parser is container-agnostic; this table is the
// one place that policy lives.
var Containers = map[string]bool{
	IDDevice:      true,
	IDDeviceData:  true,
	IDBindingList: true,
	IDMappingList: true,
	IDMapping:     true,
}

// MappingDataLen is the minimum CMAD record length in bytes. Longer
// records are tolerated (newer Traktor builds append fields); shorter
// ones are a grammar error.
const MappingDataLen = 54

// CMAD record offsets, all big-endian.
const (
	offCommandID      = 0  // uint32
	offIOType         = 4  // uint32, 0 = in
	offAssignment     = 8  // int32
	offInteraction    = 12 // uint32
	offControllerType = 16 // uint32
	offSetToValue     = 20 // float32
	offInvert         = 24 // uint8
	offSoftTakeover   = 25 // uint8
	offRotarySens     = 26 // float32
	offRotaryAccel    = 30 // float32
	offEncoderMode    = 34 // uint32
	offModifier1      = 38 // uint32 modifier, uint32 value
	offModifier2      = 46 // uint32 modifier, uint32 value
)

// node is one frame in the decoded tree: a leaf, or a container with its
// recursively parsed children. The tree lives only for the duration of one
// Interpret call.
type node struct {
	frame.Frame
	children []node
}

// buildTree parses buf as a frame sequence and recurses into container
// payloads. Sequence errors at the top level propagate as-is; a failure
// inside a known container is a grammar error.
func buildTree(buf []byte) ([]node, error) {
	frames, err := frame.ParseSequence(buf)
	if err != nil {
		return nil, err
	}

	nodes := make([]node, 0, len(frames))
	for _, f := range frames {
		n := node{Frame: f}
		if Containers[f.ID] {
			children, err := buildTree(f.Payload)
			if err != nil {
				return nil, fmt.Errorf("%w: container %s: %v", ErrUnsupportedFrameGrammar, f.ID, err)
			}
			n.children = children
		}
		nodes = append(nodes, n)
	}
	return nodes, nil
}

// Interpreter turns raw controller payload bytes into a MappingFile.
// It is stateless apart from the logger and safe for concurrent use on
// independent buffers.
type Interpreter struct {
	logger *slog.Logger
}

// New creates an interpreter. A nil logger falls back to slog.Default.
func New(logger *slog.Logger) *Interpreter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Interpreter{logger: logger}
}

// Interpret parses data into a MappingFile. Errors are terminal: no
// partial model is returned, so a decode failure is structurally
// distinguishable from a file that simply has no mappings.
func (p *Interpreter) Interpret(data []byte) (*core.MappingFile, error) {
	nodes, err := buildTree(data)
	if err != nil {
		return nil, err
	}

	file := &core.MappingFile{}
	for _, n := range nodes {
		switch n.ID {
		case IDVersion:
			if len(n.Payload) < 4 {
				return nil, fmt.Errorf("%w: %s leaf of %d byte(s)", ErrUnsupportedFrameGrammar, IDVersion, len(n.Payload))
			}
			file.Version = int(binary.BigEndian.Uint32(n.Payload))
		case IDDevice:
			dev, err := p.interpretDevice(n)
			if err != nil {
				return nil, err
			}
			file.Devices = append(file.Devices, dev)
		default:
			p.logger.Debug("skipping unrecognized top-level frame", "id", n.ID, "size", n.Size())
		}
	}
	return file, nil
}

func (p *Interpreter) interpretDevice(dev node) (core.Device, error) {
	var data *node
	for i := range dev.children {
		if dev.children[i].ID == IDDeviceData {
			data = &dev.children[i]
			break
		}
	}
	if data == nil {
		return core.Device{}, fmt.Errorf("%w: %s without %s", ErrUnsupportedFrameGrammar, IDDevice, IDDeviceData)
	}

	var d core.Device
	for _, child := range data.children {
		switch child.ID {
		case IDDeviceName:
			if err := decodeStringLeaf(child, &d.Name); err != nil {
				return core.Device{}, err
			}
		case IDDeviceComment:
			if err := decodeStringLeaf(child, &d.Comment); err != nil {
				return core.Device{}, err
			}
		case IDDeviceInPort:
			if err := decodeStringLeaf(child, &d.InPort); err != nil {
				return core.Device{}, err
			}
		case IDDeviceOutPort:
			if err := decodeStringLeaf(child, &d.OutPort); err != nil {
				return core.Device{}, err
			}
		case IDBindingList:
			mappings, err := p.interpretBindingList(child)
			if err != nil {
				return core.Device{}, err
			}
			d.Mappings = append(d.Mappings, mappings...)
		default:
			p.logger.Debug("skipping unrecognized device frame", "id", child.ID, "size", child.Size())
		}
	}
	return d, nil
}

func (p *Interpreter) interpretBindingList(list node) ([]core.MappingEntry, error) {
	var entries []core.MappingEntry
	for _, child := range list.children {
		if child.ID != IDMappingList {
			p.logger.Debug("skipping unrecognized binding-list frame", "id", child.ID, "size", child.Size())
			continue
		}
		for _, m := range child.children {
			if m.ID != IDMapping {
				p.logger.Debug("skipping unrecognized mapping-list frame", "id", m.ID, "size", m.Size())
				continue
			}
			entry, err := p.interpretMapping(m)
			if err != nil {
				return nil, err
			}
			entries = append(entries, entry)
		}
	}
	return entries, nil
}

func (p *Interpreter) interpretMapping(m node) (core.MappingEntry, error) {
	var (
		data    []byte
		binding string
		comment string
	)
	for _, child := range m.children {
		switch child.ID {
		case IDMappingData:
			data = child.Payload
		case IDMappingBinding:
			if err := decodeStringLeaf(child, &binding); err != nil {
				return core.MappingEntry{}, err
			}
		case IDMappingComment:
			if err := decodeStringLeaf(child, &comment); err != nil {
				return core.MappingEntry{}, err
			}
		default:
			p.logger.Debug("skipping unrecognized mapping frame", "id", child.ID, "size", child.Size())
		}
	}
	if data == nil {
		return core.MappingEntry{}, fmt.Errorf("%w: %s without %s", ErrUnsupportedFrameGrammar, IDMapping, IDMappingData)
	}
	if len(data) < MappingDataLen {
		return core.MappingEntry{}, fmt.Errorf("%w: %s record of %d byte(s), want at least %d",
			ErrUnsupportedFrameGrammar, IDMappingData, len(data), MappingDataLen)
	}

	output := binary.BigEndian.Uint32(data[offIOType:]) != 0
	ioType := core.IOTypeInput
	if output {
		ioType = core.IOTypeOutput
	}

	commandID := int(int32(binary.BigEndian.Uint32(data[offCommandID:])))
	control := transcode.ParseControl(binding)

	entry := core.MappingEntry{
		ID:          uuid.NewString(),
		CommandName: commands.NameForID(commandID),
		IOType:      ioType,
		Assignment:  transcode.AssignmentFromCode(int32(binary.BigEndian.Uint32(data[offAssignment:]))),
		Interaction: transcode.InteractionModeFromCode(binary.BigEndian.Uint32(data[offInteraction:]), output),

		MidiChannel: control.Channel,
		MidiNote:    control.Note,
		MidiCC:      control.CC,

		Modifier1: modifierCondition(data[offModifier1:]),
		Modifier2: modifierCondition(data[offModifier2:]),

		ControllerType: transcode.ControllerTypeFromCode(binary.BigEndian.Uint32(data[offControllerType:])),

		Invert:             data[offInvert] != 0,
		SoftTakeover:       data[offSoftTakeover] != 0,
		SetToValue:         float32At(data, offSetToValue),
		RotarySensitivity:  float32At(data, offRotarySens),
		RotaryAcceleration: float32At(data, offRotaryAccel),
		EncoderMode:        encoderMode(binary.BigEndian.Uint32(data[offEncoderMode:])),

		Comment: comment,
	}
	return entry, nil
}

// modifierCondition decodes one modifier/value pair; modifier slot 0 means
// "no condition".
func modifierCondition(b []byte) *core.ModifierCondition {
	mod := binary.BigEndian.Uint32(b)
	if mod == 0 {
		return nil
	}
	return &core.ModifierCondition{
		Modifier: int(mod),
		Value:    int(binary.BigEndian.Uint32(b[4:])),
	}
}

func encoderMode(code uint32) core.EncoderMode {
	if code == 1 {
		return core.Encoder7Fh01h
	}
	return core.Encoder3Fh41h
}

func float32At(b []byte, off int) float64 {
	return float64(math.Float32frombits(binary.BigEndian.Uint32(b[off:])))
}

func decodeStringLeaf(n node, dst *string) error {
	s, err := frame.DecodeString(n.Payload)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrUnsupportedFrameGrammar, n.ID, err)
	}
	*dst = s
	return nil
}
