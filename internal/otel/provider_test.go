package otel

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/metric/noop"
)

func TestDisabledProviderIsNoop(t *testing.T) {
	p, err := New(Config{Enabled: false})
	require.NoError(t, err)

	assert.Nil(t, p.LoggerProvider())
	assert.False(t, p.Enabled())
	assert.Equal(t, noop.Meter{}, p.Meter("tsikit"))

	assert.NoError(t, p.Flush(context.Background()))
	assert.NoError(t, p.Shutdown(context.Background()))
}

func TestMeterRecordsCounters(t *testing.T) {
	var buf bytes.Buffer
	p, err := New(Config{
		Enabled:      true,
		ServiceName:  "tsikit-test",
		BatchTimeout: time.Minute,
		LogWriter:    &buf,
	})
	require.NoError(t, err)

	meter := p.Meter("tsikit")
	require.NotEqual(t, noop.Meter{}, meter)

	filesParsed, err := meter.Int64Counter("tsikit.files.parsed")
	require.NoError(t, err)
	mappingsImported, err := meter.Int64Counter("tsikit.mappings.imported")
	require.NoError(t, err)

	ctx := context.Background()
	filesParsed.Add(ctx, 2)
	mappingsImported.Add(ctx, 17)

	require.NoError(t, p.Flush(ctx))
	out := buf.String()
	assert.Contains(t, out, "tsikit.files.parsed")
	assert.Contains(t, out, "tsikit.mappings.imported")

	require.NoError(t, p.Shutdown(ctx))
}

func TestMeterOnNilProvider(t *testing.T) {
	var p *Provider
	assert.Equal(t, noop.Meter{}, p.Meter("tsikit"))
}
