package memory

import (
	"encoding/json"
	"os"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/tsitools/tsikit/internal/config"
	"github.com/tsitools/tsikit/pkg/core"
)

func intPtr(v int) *int { return &v }

func sampleFile() *core.MappingFile {
	return &core.MappingFile{
		Version: 1,
		Devices: []core.Device{
			{
				Name:   "Generic MIDI",
				InPort: "Port 1",
				Mappings: []core.MappingEntry{
					{
						CommandName: "Play/Pause",
						IOType:      core.IOTypeInput,
						Assignment:  core.AssignDeckA,
						Interaction: core.InteractionToggle,
						MidiChannel: 1,
						MidiNote:    intPtr(60),
					},
					{
						CommandName:    "Volume Fader",
						IOType:         core.IOTypeInput,
						Assignment:     core.AssignDeckB,
						Interaction:    core.InteractionDirect,
						MidiChannel:    2,
						MidiCC:         intPtr(7),
						ControllerType: core.ControllerFaderOrKnob,
					},
				},
			},
		},
	}
}

func TestNew(t *testing.T) {
	b := New(config.MemoryConfig{OutputDir: "/tmp/test", Format: "json"})
	if b == nil {
		t.Fatal("New returned nil")
	}
	if b.cfg.OutputDir != "/tmp/test" {
		t.Errorf("expected OutputDir=/tmp/test, got %s", b.cfg.OutputDir)
	}
}

func TestImportFile_ReplacesBySource(t *testing.T) {
	b := New(config.MemoryConfig{})

	if err := b.ImportFile("a.tsi", sampleFile()); err != nil {
		t.Fatal(err)
	}
	if err := b.ImportFile("b.tsi", sampleFile()); err != nil {
		t.Fatal(err)
	}
	if len(b.files) != 2 {
		t.Fatalf("expected 2 files, got %d", len(b.files))
	}

	replacement := sampleFile()
	replacement.Devices[0].Name = "Replaced"
	if err := b.ImportFile("a.tsi", replacement); err != nil {
		t.Fatal(err)
	}
	if len(b.files) != 2 {
		t.Fatalf("expected 2 files after re-import, got %d", len(b.files))
	}
	if b.files[0].File.Devices[0].Name != "Replaced" {
		t.Errorf("re-import did not replace file for source a.tsi")
	}
}

func TestExport_JSON(t *testing.T) {
	dir := t.TempDir()
	b := New(config.MemoryConfig{OutputDir: dir, Format: "json"})
	if err := b.ImportFile("deck.tsi", sampleFile()); err != nil {
		t.Fatal(err)
	}

	path, err := b.Export()
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasSuffix(path, "tsikit-listing.json") {
		t.Errorf("unexpected export path: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var listing Listing
	if err := json.Unmarshal(data, &listing); err != nil {
		t.Fatalf("export is not valid JSON: %v", err)
	}
	if len(listing.Files) != 1 {
		t.Fatalf("expected 1 file in listing, got %d", len(listing.Files))
	}

	file := listing.Files[0]
	if file.Source != "deck.tsi" {
		t.Errorf("expected source deck.tsi, got %s", file.Source)
	}
	if len(file.Devices) != 1 || len(file.Devices[0].Mappings) != 2 {
		t.Fatalf("unexpected listing shape: %+v", file)
	}

	m := file.Devices[0].Mappings[0]
	if m.Command != "Play/Pause" || m.Control != "Ch01.Note.C4" || m.Interaction != "Toggle" {
		t.Errorf("unexpected mapping row: %+v", m)
	}
	if file.Devices[0].Mappings[1].Control != "Ch02.CC.007" {
		t.Errorf("unexpected CC control: %s", file.Devices[0].Mappings[1].Control)
	}
}

func TestExport_YAML(t *testing.T) {
	dir := t.TempDir()
	b := New(config.MemoryConfig{OutputDir: dir, Format: "yaml"})
	if err := b.ImportFile("deck.tsi", sampleFile()); err != nil {
		t.Fatal(err)
	}

	path, err := b.Export()
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasSuffix(path, "tsikit-listing.yaml") {
		t.Errorf("unexpected export path: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var listing Listing
	if err := yaml.Unmarshal(data, &listing); err != nil {
		t.Fatalf("export is not valid YAML: %v", err)
	}
	if len(listing.Files) != 1 {
		t.Fatalf("expected 1 file in listing, got %d", len(listing.Files))
	}
}

func TestExport_UnknownFormat(t *testing.T) {
	b := New(config.MemoryConfig{OutputDir: t.TempDir(), Format: "xml"})
	if _, err := b.Export(); err == nil {
		t.Error("expected error for unknown format")
	}
}
