// Package tsi is the public surface of the TSI controller-mapping codec.
// Host applications hand it raw file bytes on open and take serialized
// bytes back on save; everything in between (editing) happens on the
// core.MappingFile model. The codec itself is pure and synchronous: no
// I/O, no shared mutable state, safe to call concurrently on independent
// buffers.
package tsi

import (
	"log/slog"

	"github.com/tsitools/tsikit/internal/envelope"
	"github.com/tsitools/tsikit/internal/interpret"
	"github.com/tsitools/tsikit/internal/writer"
	"github.com/tsitools/tsikit/pkg/core"
)

// Codec bundles decode/encode policy. The zero value is not usable; use
// NewCodec.
type Codec struct {
	interp *interpret.Interpreter
	writer *writer.Writer
}

// Option configures a Codec.
type Option func(*options)

type options struct {
	logger    *slog.Logger
	writerOpt writer.Options
}

// WithLogger routes the interpreter's skip/debug logging somewhere other
// than slog.Default.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithFaderKnobCode overrides the canonical wire code written for
// fader/knob controls.
func WithFaderKnobCode(code uint32) Option {
	return func(o *options) { o.writerOpt.FaderKnobCode = code }
}

// NewCodec creates a codec with the given options.
func NewCodec(opts ...Option) *Codec {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return &Codec{
		interp: interpret.New(o.logger),
		writer: writer.New(o.writerOpt),
	}
}

// Parse decodes a whole TSI document: XML envelope, Base64 payload, frame
// tree, mapping model. Errors are terminal; no partial model is returned,
// so callers that fall back to an empty file on failure can still tell
// "decode failed" apart from "this file has no mappings".
func (c *Codec) Parse(data []byte) (*core.MappingFile, error) {
	payload, err := envelope.ExtractControllerData(data)
	if err != nil {
		return nil, err
	}
	return c.interp.Interpret(payload)
}

// Write serializes the model back into a full TSI document.
func (c *Codec) Write(f *core.MappingFile) ([]byte, error) {
	payload, err := c.writer.Write(f)
	if err != nil {
		return nil, err
	}
	return envelope.InjectControllerData(payload), nil
}

var defaultCodec = NewCodec()

// Parse decodes data with the default codec.
func Parse(data []byte) (*core.MappingFile, error) {
	return defaultCodec.Parse(data)
}

// Write serializes f with the default codec.
func Write(f *core.MappingFile) ([]byte, error) {
	return defaultCodec.Write(f)
}

// New returns an empty mapping file, the documented fallback a host
// application substitutes when decoding fails.
func New() *core.MappingFile {
	return &core.MappingFile{}
}
