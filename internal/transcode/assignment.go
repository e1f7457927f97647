// internal/transcode/assignment.go
package transcode

import "github.com/tsitools/tsikit/pkg/core"

// AssignmentFromCode decodes a signed target-assignment code: -1 is the
// device target, 0 is global, 1..4 are decks A..D, 5..8 are FX units 1..4.
// Anything else decodes to Global.
func AssignmentFromCode(code int32) core.Assignment {
	if code >= -1 && code <= 8 {
		return core.Assignment(code)
	}
	return core.AssignGlobal
}

// AssignmentCode encodes a target assignment back to its signed wire code.
func AssignmentCode(a core.Assignment) int32 {
	if a >= core.AssignDeviceTarget && a <= core.AssignFXUnit4 {
		return int32(a)
	}
	return int32(core.AssignGlobal)
}
