package envelope

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractControllerData(t *testing.T) {
	doc := []byte(`<NIXML><TraktorSettings><Entry Name="DeviceIO.Config.Controller" Value="SEVMTE8="/></TraktorSettings></NIXML>`)

	data, err := ExtractControllerData(doc)
	require.NoError(t, err)
	assert.Equal(t, []byte("HELLO"), data)
}

func TestExtractSkipsOtherEntries(t *testing.T) {
	doc := []byte(`<NIXML><TraktorSettings>` +
		`<Entry Name="Audio.Config" Value="ignored"/>` +
		`<Entry Name="DeviceIO.Config.Controller" Type="3" Value="AQID"/>` +
		`</TraktorSettings></NIXML>`)

	data, err := ExtractControllerData(doc)
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3}, data)
}

func TestExtractErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want error
	}{
		{"not xml", `{"json": true}`, ErrInvalidXML},
		{"unterminated", `<NIXML><TraktorSettings>`, ErrInvalidXML},
		{"no entry", `<NIXML><TraktorSettings></TraktorSettings></NIXML>`, ErrMissingControllerEntry},
		{"wrong entry", `<NIXML><Entry Name="Other" Value="SEVMTE8="/></NIXML>`, ErrMissingControllerEntry},
		{"bad base64", `<NIXML><Entry Name="DeviceIO.Config.Controller" Value="!!!"/></NIXML>`, ErrInvalidBase64},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ExtractControllerData([]byte(tt.doc))
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestInjectExtractRoundTrip(t *testing.T) {
	payload := []byte{0xDE, 0xAD, 0xBE, 0xEF, 0x00, 0x7F}

	doc := InjectControllerData(payload)
	got, err := ExtractControllerData(doc)
	require.NoError(t, err)
	assert.Equal(t, payload, got)
}

func TestInjectEmptyPayload(t *testing.T) {
	doc := InjectControllerData(nil)
	got, err := ExtractControllerData(doc)
	require.NoError(t, err)
	assert.Empty(t, got)
}
