package memory

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/tsitools/tsikit/internal/transcode"
	"github.com/tsitools/tsikit/pkg/core"
)

// Listing is the exported shape of the whole index. Field order is chosen
// for readable diffs of exported listings.
type Listing struct {
	ExportedAt time.Time     `json:"exportedAt" yaml:"exportedAt"`
	Files      []FileListing `json:"files" yaml:"files"`
}

// FileListing is one imported mapping file.
type FileListing struct {
	Source     string          `json:"source" yaml:"source"`
	ImportedAt time.Time       `json:"importedAt" yaml:"importedAt"`
	Version    int             `json:"version" yaml:"version"`
	Devices    []DeviceListing `json:"devices" yaml:"devices"`
}

// DeviceListing is one controller device.
type DeviceListing struct {
	Name     string           `json:"name" yaml:"name"`
	Comment  string           `json:"comment,omitempty" yaml:"comment,omitempty"`
	InPort   string           `json:"inPort,omitempty" yaml:"inPort,omitempty"`
	OutPort  string           `json:"outPort,omitempty" yaml:"outPort,omitempty"`
	Mappings []MappingListing `json:"mappings" yaml:"mappings"`
}

// MappingListing is one mapping row, flattened to display strings.
type MappingListing struct {
	Command     string `json:"command" yaml:"command"`
	IOType      string `json:"ioType" yaml:"ioType"`
	Control     string `json:"control" yaml:"control"`
	Interaction string `json:"interaction" yaml:"interaction"`
	Assignment  string `json:"assignment" yaml:"assignment"`
	Controller  string `json:"controller" yaml:"controller"`
	Comment     string `json:"comment,omitempty" yaml:"comment,omitempty"`
}

// Export writes the listing in the configured format and returns its path.
func (b *Backend) Export() (string, error) {
	b.mu.RLock()
	listing := Listing{
		ExportedAt: time.Now().UTC(),
		Files:      make([]FileListing, 0, len(b.files)),
	}
	for _, f := range b.files {
		listing.Files = append(listing.Files, buildFileListing(f))
	}
	b.mu.RUnlock()

	if err := os.MkdirAll(b.cfg.OutputDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	var (
		data []byte
		err  error
		name string
	)
	switch b.cfg.Format {
	case "yaml":
		name = "tsikit-listing.yaml"
		data, err = yaml.Marshal(&listing)
	case "json", "":
		name = "tsikit-listing.json"
		data, err = json.MarshalIndent(&listing, "", "  ")
	default:
		return "", fmt.Errorf("unknown export format: %s", b.cfg.Format)
	}
	if err != nil {
		return "", fmt.Errorf("failed to marshal listing: %w", err)
	}

	path := filepath.Join(b.cfg.OutputDir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write listing: %w", err)
	}
	return path, nil
}

func buildFileListing(f indexedFile) FileListing {
	fl := FileListing{
		Source:     f.Source,
		ImportedAt: f.ImportedAt,
		Version:    f.File.Version,
		Devices:    make([]DeviceListing, 0, len(f.File.Devices)),
	}
	for _, d := range f.File.Devices {
		dl := DeviceListing{
			Name:     d.Name,
			Comment:  d.Comment,
			InPort:   d.InPort,
			OutPort:  d.OutPort,
			Mappings: make([]MappingListing, 0, len(d.Mappings)),
		}
		for _, m := range d.Mappings {
			dl.Mappings = append(dl.Mappings, buildMappingListing(m))
		}
		fl.Devices = append(fl.Devices, dl)
	}
	return fl
}

func buildMappingListing(m core.MappingEntry) MappingListing {
	control := transcode.FormatControl(transcode.Control{
		Channel: m.MidiChannel,
		Note:    m.MidiNote,
		CC:      m.MidiCC,
	})

	return MappingListing{
		Command:     m.CommandName,
		IOType:      m.IOType.String(),
		Control:     control,
		Interaction: m.Interaction.String(),
		Assignment:  m.Assignment.String(),
		Controller:  m.ControllerType.String(),
		Comment:     m.Comment,
	}
}
