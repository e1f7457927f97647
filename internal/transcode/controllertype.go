// internal/transcode/controllertype.go
package transcode

import "github.com/tsitools/tsikit/pkg/core"

// LEDCode is the sentinel controller-type code Traktor writes for LED
// output bindings.
const LEDCode uint32 = 0xFFFF

// DefaultFaderKnobCode is the canonical code written for FaderOrKnob.
// Traktor reads both 1 (fader/knob) and 2 (encoder) into the same control
// class; 1 is what current Traktor builds emit for plain faders.
const DefaultFaderKnobCode uint32 = 1

// ControllerTypeFromCode decodes a raw controller-type code. Codes 1 and 2
// deliberately collapse to FaderOrKnob: the wire format distinguishes
// fader from encoder but the control class does not, and this lossy decode
// matches Traktor's own behavior. Unknown codes decode to Button.
func ControllerTypeFromCode(code uint32) core.ControllerType {
	switch code {
	case 0:
		return core.ControllerButton
	case 1, 2:
		return core.ControllerFaderOrKnob
	case LEDCode:
		return core.ControllerLED
	default:
		return core.ControllerButton
	}
}

// ControllerTypeCode encodes a controller type using the canonical
// fader/knob code. ControllerTypeCodeWith exists for callers that need to
// diverge from the canonical choice.
func ControllerTypeCode(t core.ControllerType) uint32 {
	return ControllerTypeCodeWith(t, DefaultFaderKnobCode)
}

// ControllerTypeCodeWith encodes a controller type, writing faderCode for
// FaderOrKnob. Because the decode collapses codes 1 and 2, re-encoding is
// ambiguous; the canonical code is a policy decision owned by the caller.
func ControllerTypeCodeWith(t core.ControllerType, faderCode uint32) uint32 {
	switch t {
	case core.ControllerFaderOrKnob:
		if faderCode != 1 && faderCode != 2 {
			faderCode = DefaultFaderKnobCode
		}
		return faderCode
	case core.ControllerEncoder:
		return 2
	case core.ControllerLED:
		return LEDCode
	default:
		return 0
	}
}
