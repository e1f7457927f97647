package convert

import (
	"encoding/json"

	"github.com/tsitools/tsikit/internal/model"
	"github.com/tsitools/tsikit/pkg/core"
)

// MappingRecordToCore converts a GORM model.MappingRecord back to a
// core.MappingEntry. The Details JSON is authoritative; the display
// columns exist for querying only.
func MappingRecordToCore(r model.MappingRecord) core.MappingEntry {
	var details EntryDetails
	if len(r.Details) > 0 {
		_ = json.Unmarshal(r.Details, &details)
	}

	return core.MappingEntry{
		ID:                 r.EntryID,
		CommandName:        r.CommandName,
		IOType:             core.IOType(details.IOType),
		Assignment:         core.Assignment(details.Assignment),
		Interaction:        core.InteractionMode(details.Interaction),
		MidiChannel:        details.MidiChannel,
		MidiNote:           details.MidiNote,
		MidiCC:             details.MidiCC,
		Modifier1:          details.Modifier1,
		Modifier2:          details.Modifier2,
		ControllerType:     core.ControllerType(details.ControllerType),
		Invert:             details.Invert,
		SoftTakeover:       details.SoftTakeover,
		SetToValue:         details.SetToValue,
		RotarySensitivity:  details.RotarySensitivity,
		RotaryAcceleration: details.RotaryAcceleration,
		EncoderMode:        core.EncoderMode(details.EncoderMode),
		Comment:            r.Comment,
	}
}

// DeviceRecordToCore converts a GORM model.DeviceRecord to a core.Device.
func DeviceRecordToCore(r model.DeviceRecord) core.Device {
	var mappings []core.MappingEntry
	for _, m := range r.Mappings {
		mappings = append(mappings, MappingRecordToCore(m))
	}

	return core.Device{
		Name:     r.Name,
		Comment:  r.Comment,
		InPort:   r.InPort,
		OutPort:  r.OutPort,
		Mappings: mappings,
	}
}

// FileRecordToCore converts a GORM model.FileRecord to a core.MappingFile.
func FileRecordToCore(r model.FileRecord) *core.MappingFile {
	var devices []core.Device
	for _, d := range r.Devices {
		devices = append(devices, DeviceRecordToCore(d))
	}

	return &core.MappingFile{
		Version: int(r.Version),
		Devices: devices,
	}
}
