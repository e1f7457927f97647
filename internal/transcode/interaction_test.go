package transcode

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tsitools/tsikit/pkg/core"
)

func TestInteractionModeFromCode(t *testing.T) {
	tests := []struct {
		name   string
		code   uint32
		output bool
		want   core.InteractionMode
	}{
		{"toggle", 1, false, core.InteractionToggle},
		{"hold", 2, false, core.InteractionHold},
		{"direct", 3, false, core.InteractionDirect},
		{"relative", 4, false, core.InteractionRelative},
		{"output", 8, true, core.InteractionOutput},
		// Same unknown code, different result depending on direction.
		{"unknown code on input", 99, false, core.InteractionHold},
		{"unknown code on output", 99, true, core.InteractionOutput},
		{"zero on input", 0, false, core.InteractionHold},
		{"zero on output", 0, true, core.InteractionOutput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, InteractionModeFromCode(tt.code, tt.output))
		})
	}
}

func TestInteractionModeCodeInvertsKnownValues(t *testing.T) {
	for _, m := range []core.InteractionMode{
		core.InteractionToggle,
		core.InteractionHold,
		core.InteractionDirect,
		core.InteractionRelative,
		core.InteractionOutput,
	} {
		code := InteractionModeCode(m)
		assert.Equal(t, m, InteractionModeFromCode(code, m == core.InteractionOutput), "mode %v", m)
	}
}
