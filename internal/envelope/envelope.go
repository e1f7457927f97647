// Package envelope extracts and injects the Base64 controller payload from
// the XML wrapper of a TSI file. The wrapper is a plain NIXML settings
// document; the single attribute value of the DeviceIO.Config.Controller
// entry is all that matters here.
package envelope

import (
	"bytes"
	"encoding/base64"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
)

// ControllerEntryName is the settings key whose value holds the controller
// mapping payload.
const ControllerEntryName = "DeviceIO.Config.Controller"

var (
	ErrInvalidXML             = errors.New("input is not valid XML")
	ErrMissingControllerEntry = errors.New("no controller configuration entry in document")
	ErrInvalidBase64          = errors.New("controller entry value is not valid Base64")
)

// ExtractControllerData finds the controller entry in doc and returns its
// decoded binary payload.
func ExtractControllerData(doc []byte) ([]byte, error) {
	dec := xml.NewDecoder(bytes.NewReader(doc))
	sawElement := false
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			// A buffer without a single element was never XML to begin
			// with; the decoder happily treats it as character data.
			if !sawElement {
				return nil, fmt.Errorf("%w: no elements", ErrInvalidXML)
			}
			return nil, ErrMissingControllerEntry
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidXML, err)
		}

		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		sawElement = true
		if start.Name.Local != "Entry" {
			continue
		}

		var name, value string
		for _, attr := range start.Attr {
			switch attr.Name.Local {
			case "Name":
				name = attr.Value
			case "Value":
				value = attr.Value
			}
		}
		if name != ControllerEntryName {
			continue
		}

		data, err := base64.StdEncoding.DecodeString(value)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidBase64, err)
		}
		return data, nil
	}
}

// InjectControllerData builds the inverse document: the fixed NIXML
// wrapper around a freshly computed Base64 value. Base64 output never
// needs XML escaping.
func InjectControllerData(payload []byte) []byte {
	var b bytes.Buffer
	b.WriteString(xml.Header)
	b.WriteString("<NIXML><TraktorSettings>")
	fmt.Fprintf(&b, `<Entry Name=%q Type="3" Value=%q></Entry>`,
		ControllerEntryName, base64.StdEncoding.EncodeToString(payload))
	b.WriteString("</TraktorSettings></NIXML>\n")
	return b.Bytes()
}
