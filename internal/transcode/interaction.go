// Package transcode maps between raw TSI wire codes and the domain
// enumerations in pkg/core, and between MIDI control-name strings and
// channel/number pairs. All functions are pure and total over their
// documented domains, with explicit fallback behavior for anything else.
package transcode

import "github.com/tsitools/tsikit/pkg/core"

// Raw interaction-mode codes as Traktor writes them.
const (
	codeToggle   uint32 = 1
	codeHold     uint32 = 2
	codeDirect   uint32 = 3
	codeRelative uint32 = 4
	codeOutput   uint32 = 8
)

// InteractionModeFromCode decodes a raw interaction-mode code. The fallback
// is direction-dependent: an unrecognized code means Hold for an input
// mapping but Output for an output mapping.
func InteractionModeFromCode(code uint32, output bool) core.InteractionMode {
	switch code {
	case codeToggle:
		return core.InteractionToggle
	case codeHold:
		return core.InteractionHold
	case codeDirect:
		return core.InteractionDirect
	case codeRelative:
		return core.InteractionRelative
	case codeOutput:
		return core.InteractionOutput
	}
	if output {
		return core.InteractionOutput
	}
	return core.InteractionHold
}

// InteractionModeCode encodes an interaction mode. Unknown modes fall back
// to Hold, mirroring the decode fallback for inputs.
func InteractionModeCode(m core.InteractionMode) uint32 {
	switch m {
	case core.InteractionToggle:
		return codeToggle
	case core.InteractionDirect:
		return codeDirect
	case core.InteractionRelative:
		return codeRelative
	case core.InteractionOutput:
		return codeOutput
	default:
		return codeHold
	}
}
