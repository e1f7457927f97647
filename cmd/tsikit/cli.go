package main

import (
	"context"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/spf13/viper"
	"go.opentelemetry.io/otel/metric"

	"github.com/tsitools/tsikit/internal/commands"
	"github.com/tsitools/tsikit/internal/envelope"
	"github.com/tsitools/tsikit/internal/frame"
	"github.com/tsitools/tsikit/internal/interpret"
	"github.com/tsitools/tsikit/pkg/core"
	"github.com/tsitools/tsikit/pkg/tsi"
)

func usage() {
	fmt.Fprintf(os.Stderr, `tsikit %s - Traktor controller mapping toolbox

usage: tsikit <command> [args]

commands:
  inspect <file.tsi>...    dump the binary frame tree of each file
  roundtrip <file.tsi>...  verify each file survives parse -> write -> parse
  import <file.tsi>...     index files into the configured storage backend
  export <file.tsi>...     index files and write a listing export
  version                  print version information
`, Version)
}

func run(args []string) int {
	if len(args) == 0 {
		usage()
		return 2
	}

	var err error
	switch strings.ToLower(args[0]) {
	case "inspect":
		err = cmdInspect(args[1:])
	case "roundtrip":
		err = cmdRoundtrip(args[1:])
	case "import":
		err = cmdImport(args[1:])
	case "export":
		err = cmdExport(args[1:])
	case "version":
		fmt.Printf("tsikit %s (built %s)\n", Version, BuildDate)
	default:
		usage()
		return 2
	}

	if err != nil {
		logger.Error("Command failed", "command", args[0], "error", err)
		fmt.Fprintln(os.Stderr, "error:", err)
		return 1
	}
	return 0
}

func requireFiles(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("no files given")
	}
	return nil
}

// newCodec builds a codec honoring the configured canonical fader/knob code.
func newCodec() *tsi.Codec {
	return tsi.NewCodec(
		tsi.WithLogger(logger),
		tsi.WithFaderKnobCode(uint32(viper.GetInt("write.faderKnobCode"))),
	)
}

// codecMeters holds the counters recorded by the import/export commands.
// The counters come from the OTel provider and are no-ops when it is
// disabled.
type codecMeters struct {
	filesParsed      metric.Int64Counter
	mappingsImported metric.Int64Counter
}

func newCodecMeters() codecMeters {
	m := otelProvider.Meter("tsikit")
	filesParsed, _ := m.Int64Counter("tsikit.files.parsed",
		metric.WithDescription("TSI files successfully parsed"))
	mappingsImported, _ := m.Int64Counter("tsikit.mappings.imported",
		metric.WithDescription("Mapping entries indexed into storage"))
	return codecMeters{
		filesParsed:      filesParsed,
		mappingsImported: mappingsImported,
	}
}

func cmdInspect(args []string) error {
	if err := requireFiles(args); err != nil {
		return err
	}

	for _, path := range args {
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		payload, err := envelope.ExtractControllerData(data)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}

		fmt.Printf("%s (%d bytes of frame data)\n", path, len(payload))
		if err := dumpFrames(os.Stdout, payload, 1); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
	}
	return nil
}

// dumpFrames prints one indentation level of the frame tree, recursing into
// known containers.
func dumpFrames(w io.Writer, buf []byte, depth int) error {
	frames, err := frame.ParseSequence(buf)
	if err != nil {
		return err
	}

	indent := strings.Repeat("  ", depth)
	for _, f := range frames {
		switch {
		case interpret.Containers[f.ID]:
			fmt.Fprintf(w, "%s%s (%d bytes)\n", indent, f.ID, f.Size())
			if err := dumpFrames(w, f.Payload, depth+1); err != nil {
				return err
			}
		case f.ID == interpret.IDVersion && f.Size() >= 4:
			fmt.Fprintf(w, "%s%s version=%d\n", indent, f.ID, binary.BigEndian.Uint32(f.Payload))
		case isStringLeaf(f.ID):
			s, err := frame.DecodeString(f.Payload)
			if err != nil {
				return fmt.Errorf("frame %s: %w", f.ID, err)
			}
			fmt.Fprintf(w, "%s%s %q\n", indent, f.ID, s)
		case f.ID == interpret.IDMappingData && f.Size() >= 4:
			commandID := int(binary.BigEndian.Uint32(f.Payload))
			fmt.Fprintf(w, "%s%s command=%q (%d bytes)\n",
				indent, f.ID, commands.NameForID(commandID), f.Size())
		default:
			fmt.Fprintf(w, "%s%s %s\n", indent, f.ID, hexPreview(f.Payload))
		}
	}
	return nil
}

func isStringLeaf(id string) bool {
	switch id {
	case interpret.IDDeviceName, interpret.IDDeviceComment,
		interpret.IDDeviceInPort, interpret.IDDeviceOutPort,
		interpret.IDMappingBinding, interpret.IDMappingComment:
		return true
	}
	return false
}

func hexPreview(payload []byte) string {
	const max = 16
	if len(payload) > max {
		return hex.EncodeToString(payload[:max]) + fmt.Sprintf("... (%d bytes)", len(payload))
	}
	return hex.EncodeToString(payload)
}

func cmdRoundtrip(args []string) error {
	if err := requireFiles(args); err != nil {
		return err
	}

	codec := newCodec()
	for _, path := range args {
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}

		first, err := codec.Parse(data)
		if err != nil {
			return fmt.Errorf("%s: parse failed: %w", path, err)
		}
		rewritten, err := codec.Write(first)
		if err != nil {
			return fmt.Errorf("%s: write failed: %w", path, err)
		}
		second, err := codec.Parse(rewritten)
		if err != nil {
			return fmt.Errorf("%s: re-parse failed: %w", path, err)
		}

		// Entry IDs are generated fresh on every decode.
		diff := cmp.Diff(first, second,
			cmpopts.IgnoreFields(core.MappingEntry{}, "ID"),
			cmpopts.EquateEmpty(),
		)
		if diff != "" {
			return fmt.Errorf("%s: round trip mismatch (-first +second):\n%s", path, diff)
		}

		fmt.Printf("%s: OK (%d devices, %d mappings)\n",
			path, len(first.Devices), first.TotalMappings())
	}
	return nil
}

func cmdImport(args []string) error {
	if err := requireFiles(args); err != nil {
		return err
	}

	backend, err := createStorageBackend()
	if err != nil {
		return err
	}
	defer backend.Close()

	ctx := context.Background()
	meters := newCodecMeters()
	codec := newCodec()
	for _, path := range args {
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		file, err := codec.Parse(data)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		meters.filesParsed.Add(ctx, 1)
		if err := backend.ImportFile(path, file); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		meters.mappingsImported.Add(ctx, int64(file.TotalMappings()))
		logger.Info("Imported mapping file",
			"path", path, "devices", len(file.Devices), "mappings", file.TotalMappings())
	}
	return nil
}

func cmdExport(args []string) error {
	if err := requireFiles(args); err != nil {
		return err
	}

	backend, err := createStorageBackend()
	if err != nil {
		return err
	}
	defer backend.Close()

	ctx := context.Background()
	meters := newCodecMeters()
	codec := newCodec()
	for _, path := range args {
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		file, err := codec.Parse(data)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		meters.filesParsed.Add(ctx, 1)
		if err := backend.ImportFile(path, file); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		meters.mappingsImported.Add(ctx, int64(file.TotalMappings()))
	}

	exportPath, err := backend.Export()
	if err != nil {
		return err
	}
	fmt.Println(exportPath)
	return nil
}
