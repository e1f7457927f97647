// Package convert provides functions to convert between GORM models and core models
package convert

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"

	"github.com/tsitools/tsikit/internal/model"
	"github.com/tsitools/tsikit/internal/transcode"
	"github.com/tsitools/tsikit/pkg/core"
)

// EntryDetails is the JSON shape stored in MappingRecord.Details. It carries
// the numeric forms of every field so a record converts back to a core entry
// without parsing the display columns.
type EntryDetails struct {
	IOType             int                     `json:"ioType"`
	Assignment         int                     `json:"assignment"`
	Interaction        int                     `json:"interaction"`
	MidiChannel        int                     `json:"midiChannel"`
	MidiNote           *int                    `json:"midiNote,omitempty"`
	MidiCC             *int                    `json:"midiCC,omitempty"`
	Modifier1          *core.ModifierCondition `json:"modifier1,omitempty"`
	Modifier2          *core.ModifierCondition `json:"modifier2,omitempty"`
	ControllerType     int                     `json:"controllerType"`
	Invert             bool                    `json:"invert"`
	SoftTakeover       bool                    `json:"softTakeover"`
	SetToValue         float64                 `json:"setToValue"`
	RotarySensitivity  float64                 `json:"rotarySensitivity"`
	RotaryAcceleration float64                 `json:"rotaryAcceleration"`
	EncoderMode        int                     `json:"encoderMode"`
}

// CoreToMappingRecord converts a core.MappingEntry to a GORM model.MappingRecord.
func CoreToMappingRecord(e core.MappingEntry) model.MappingRecord {
	details := EntryDetails{
		IOType:             int(e.IOType),
		Assignment:         int(e.Assignment),
		Interaction:        int(e.Interaction),
		MidiChannel:        e.MidiChannel,
		MidiNote:           e.MidiNote,
		MidiCC:             e.MidiCC,
		Modifier1:          e.Modifier1,
		Modifier2:          e.Modifier2,
		ControllerType:     int(e.ControllerType),
		Invert:             e.Invert,
		SoftTakeover:       e.SoftTakeover,
		SetToValue:         e.SetToValue,
		RotarySensitivity:  e.RotarySensitivity,
		RotaryAcceleration: e.RotaryAcceleration,
		EncoderMode:        int(e.EncoderMode),
	}
	data, _ := json.Marshal(details)

	control := transcode.FormatControl(transcode.Control{
		Channel: e.MidiChannel,
		Note:    e.MidiNote,
		CC:      e.MidiCC,
	})

	return model.MappingRecord{
		EntryID:     e.ID,
		CommandName: e.CommandName,
		IOType:      e.IOType.String(),
		Interaction: e.Interaction.String(),
		Assignment:  e.Assignment.String(),
		Control:     control,
		Comment:     e.Comment,
		Details:     datatypes.JSON(data),
	}
}

// CoreToDeviceRecord converts a core.Device to a GORM model.DeviceRecord.
func CoreToDeviceRecord(d core.Device) model.DeviceRecord {
	mappings := make([]model.MappingRecord, 0, len(d.Mappings))
	for _, e := range d.Mappings {
		mappings = append(mappings, CoreToMappingRecord(e))
	}

	return model.DeviceRecord{
		Name:     d.Name,
		Comment:  d.Comment,
		InPort:   d.InPort,
		OutPort:  d.OutPort,
		Mappings: mappings,
	}
}

// CoreToFileRecord converts a core.MappingFile to a GORM model.FileRecord.
// source is where the file came from (usually a path).
func CoreToFileRecord(source string, f *core.MappingFile) model.FileRecord {
	devices := make([]model.DeviceRecord, 0, len(f.Devices))
	for _, d := range f.Devices {
		devices = append(devices, CoreToDeviceRecord(d))
	}

	return model.FileRecord{
		Source:       source,
		Version:      uint32(f.Version),
		ImportedAt:   time.Now().UTC(),
		DeviceCount:  len(f.Devices),
		MappingCount: f.TotalMappings(),
		Devices:      devices,
	}
}
