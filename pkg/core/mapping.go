// Package core defines the in-memory model of a Traktor controller mapping.
package core

// IOType says whether a mapping listens to incoming MIDI or drives an output.
type IOType int

const (
	IOTypeInput IOType = iota
	IOTypeOutput
)

func (t IOType) String() string {
	if t == IOTypeOutput {
		return "Out"
	}
	return "In"
}

// InteractionMode is how a physical control's motion maps to a command
// invocation. The raw wire codes live in the transcode package.
type InteractionMode int

const (
	InteractionUnknown InteractionMode = iota
	InteractionToggle
	InteractionHold
	InteractionDirect
	InteractionRelative
	InteractionOutput
)

func (m InteractionMode) String() string {
	switch m {
	case InteractionToggle:
		return "Toggle"
	case InteractionHold:
		return "Hold"
	case InteractionDirect:
		return "Direct"
	case InteractionRelative:
		return "Relative"
	case InteractionOutput:
		return "Output"
	default:
		return "Unknown"
	}
}

// ControllerType classifies the physical control a mapping is bound to.
// Traktor uses the same wire code for fader and knob, and a separate code
// for encoders that collapses to FaderOrKnob on decode.
type ControllerType int

const (
	ControllerButton ControllerType = iota
	ControllerFaderOrKnob
	ControllerEncoder
	ControllerLED
)

func (t ControllerType) String() string {
	switch t {
	case ControllerFaderOrKnob:
		return "Fader/Knob"
	case ControllerEncoder:
		return "Encoder"
	case ControllerLED:
		return "LED"
	default:
		return "Button"
	}
}

// EncoderMode selects which relative encoding scheme an encoder speaks.
type EncoderMode int

const (
	Encoder3Fh41h EncoderMode = iota // 3Fh/41h
	Encoder7Fh01h                    // 7Fh/01h
)

func (m EncoderMode) String() string {
	if m == Encoder7Fh01h {
		return "7Fh/01h"
	}
	return "3Fh/41h"
}

// Assignment is the deck, FX unit, or global scope a mapping applies to.
// The numeric values match the signed wire codes.
type Assignment int

const (
	AssignDeviceTarget Assignment = -1
	AssignGlobal       Assignment = 0
	AssignDeckA        Assignment = 1
	AssignDeckB        Assignment = 2
	AssignDeckC        Assignment = 3
	AssignDeckD        Assignment = 4
	AssignFXUnit1      Assignment = 5
	AssignFXUnit2      Assignment = 6
	AssignFXUnit3      Assignment = 7
	AssignFXUnit4      Assignment = 8
)

func (a Assignment) String() string {
	switch a {
	case AssignDeviceTarget:
		return "Device Target"
	case AssignDeckA:
		return "Deck A"
	case AssignDeckB:
		return "Deck B"
	case AssignDeckC:
		return "Deck C"
	case AssignDeckD:
		return "Deck D"
	case AssignFXUnit1:
		return "FX Unit 1"
	case AssignFXUnit2:
		return "FX Unit 2"
	case AssignFXUnit3:
		return "FX Unit 3"
	case AssignFXUnit4:
		return "FX Unit 4"
	default:
		return "Global"
	}
}

// ModifierCondition gates a mapping on one of Traktor's 8 modifier slots.
type ModifierCondition struct {
	Modifier int // 1..8
	Value    int // 0..7
}

// MappingEntry is one controller-to-command binding.
//
// Exactly one of MidiNote or MidiCC is set: a mapping is note-addressed or
// CC-addressed, never both. ID is generated locally on decode and is not
// persisted in the binary format.
type MappingEntry struct {
	ID          string
	CommandName string
	IOType      IOType
	Assignment  Assignment
	Interaction InteractionMode

	MidiChannel int // 1..16
	MidiNote    *int
	MidiCC      *int

	Modifier1 *ModifierCondition
	Modifier2 *ModifierCondition

	ControllerType ControllerType

	// Controller-type-specific behavior.
	Invert             bool
	SoftTakeover       bool
	SetToValue         float64
	RotarySensitivity  float64
	RotaryAcceleration float64
	EncoderMode        EncoderMode

	Comment string
}

// Device is one MIDI controller device and its command mappings.
type Device struct {
	Name     string
	Comment  string
	InPort   string
	OutPort  string
	Mappings []MappingEntry
}

// MappingFile is the decoded controller configuration of one TSI file.
// It is built wholesale by one interpreter pass and re-serialized wholesale
// on save; in-memory edits happen on this model, never on raw frames.
type MappingFile struct {
	Version int
	Devices []Device
}

// TotalMappings counts mapping entries across all devices.
func (f *MappingFile) TotalMappings() int {
	n := 0
	for i := range f.Devices {
		n += len(f.Devices[i].Mappings)
	}
	return n
}
