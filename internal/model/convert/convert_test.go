package convert

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tsitools/tsikit/pkg/core"
)

func intPtr(v int) *int { return &v }

func sampleEntry() core.MappingEntry {
	return core.MappingEntry{
		ID:                 "entry-1",
		CommandName:        "Play/Pause",
		IOType:             core.IOTypeInput,
		Assignment:         core.AssignDeckA,
		Interaction:        core.InteractionToggle,
		MidiChannel:        3,
		MidiNote:           intPtr(60),
		Modifier1:          &core.ModifierCondition{Modifier: 2, Value: 5},
		ControllerType:     core.ControllerButton,
		SetToValue:         0.5,
		RotarySensitivity:  1.0,
		RotaryAcceleration: 0.25,
		Comment:            "play button",
	}
}

func TestMappingEntryRoundTrip(t *testing.T) {
	entry := sampleEntry()

	record := CoreToMappingRecord(entry)
	assert.Equal(t, "Play/Pause", record.CommandName)
	assert.Equal(t, "In", record.IOType)
	assert.Equal(t, "Toggle", record.Interaction)
	assert.Equal(t, "Deck A", record.Assignment)
	assert.Equal(t, "Ch03.Note.C4", record.Control)
	require.NotEmpty(t, record.Details)

	back := MappingRecordToCore(record)
	assert.Equal(t, entry, back)
}

func TestMappingEntryCCControl(t *testing.T) {
	entry := sampleEntry()
	entry.MidiNote = nil
	entry.MidiCC = intPtr(7)
	entry.MidiChannel = 1

	record := CoreToMappingRecord(entry)
	assert.Equal(t, "Ch01.CC.007", record.Control)

	back := MappingRecordToCore(record)
	require.Nil(t, back.MidiNote)
	require.NotNil(t, back.MidiCC)
	assert.Equal(t, 7, *back.MidiCC)
}

func TestFileRecordRoundTrip(t *testing.T) {
	file := &core.MappingFile{
		Version: 1,
		Devices: []core.Device{
			{
				Name:     "Generic MIDI",
				Comment:  "test rig",
				InPort:   "Port 1",
				OutPort:  "Port 1",
				Mappings: []core.MappingEntry{sampleEntry()},
			},
		},
	}

	record := CoreToFileRecord("mappings/test.tsi", file)
	assert.Equal(t, "mappings/test.tsi", record.Source)
	assert.Equal(t, uint32(1), record.Version)
	assert.Equal(t, 1, record.DeviceCount)
	assert.Equal(t, 1, record.MappingCount)
	assert.False(t, record.ImportedAt.IsZero())

	back := FileRecordToCore(record)
	assert.Equal(t, file, back)
}
