package model

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// DatabaseModels is a list of all the structs exported here which represent tables in the database schema
var DatabaseModels = []interface{}{
	&LibraryInfo{},
	&FileRecord{},
	&DeviceRecord{},
	&MappingRecord{},
}

// LibraryInfo contains information about the mapping library instance
type LibraryInfo struct {
	gorm.Model
	Name        string `json:"name" gorm:"size:127"`
	Description string `json:"description" gorm:"size:255"`
}

func (*LibraryInfo) TableName() string {
	return "library_info"
}

// FileRecord is one imported TSI file.
type FileRecord struct {
	gorm.Model
	Source        string         `json:"source" gorm:"size:512;index:idx_file_source"`
	Version       uint32         `json:"version"`
	ImportedAt    time.Time      `json:"importedAt" gorm:"index:idx_file_imported_at"`
	DeviceCount   int            `json:"deviceCount"`
	MappingCount  int            `json:"mappingCount"`
	Devices       []DeviceRecord `json:"devices" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;foreignkey:FileID"`
}

func (*FileRecord) TableName() string {
	return "files"
}

// DeviceRecord is one controller device within an imported file.
type DeviceRecord struct {
	gorm.Model
	FileID   uint            `json:"fileId" gorm:"index:idx_device_file_id"`
	Name     string          `json:"name" gorm:"size:255"`
	Comment  string          `json:"comment" gorm:"size:255"`
	InPort   string          `json:"inPort" gorm:"size:127"`
	OutPort  string          `json:"outPort" gorm:"size:127"`
	Mappings []MappingRecord `json:"mappings" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;foreignkey:DeviceID"`
}

func (*DeviceRecord) TableName() string {
	return "devices"
}

// MappingRecord is one mapping assignment. The full entry, including fields
// that are only meaningful for some controller types, is kept as JSON in
// Details so the schema does not chase the binary format.
type MappingRecord struct {
	gorm.Model
	DeviceID    uint           `json:"deviceId" gorm:"index:idx_mapping_device_id"`
	EntryID     string         `json:"entryId" gorm:"size:64;index:idx_mapping_entry_id"`
	CommandName string         `json:"commandName" gorm:"size:255;index:idx_mapping_command"`
	IOType      string         `json:"ioType" gorm:"size:16"`
	Interaction string         `json:"interaction" gorm:"size:16"`
	Assignment  string         `json:"assignment" gorm:"size:32"`
	Control     string         `json:"control" gorm:"size:32"`
	Comment     string         `json:"comment" gorm:"size:255"`
	Details     datatypes.JSON `json:"details"`
}

func (*MappingRecord) TableName() string {
	return "mappings"
}
