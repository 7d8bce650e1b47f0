// Package transport projects glyph sets onto their storage form: a
// JSON-friendly envelope carrying the metadata, the binary layout
// configuration and the packed ROM bytes as text-safe base64.
//
// Decoding is strict: any character outside the base64 grammar, or a
// corrupt filter payload, surfaces as a MalformedEncodingError rather
// than being silently dropped. Tolerance for incomplete *decoded* ROM
// bytes lives in the rom package, not here.
package transport

import (
	"encoding/base64"

	"github.com/retrostack/charrom/rom"
	"golang.org/x/exp/errors/fmt"
)

// MalformedEncodingError reports binary data that can't be decoded back
// into ROM bytes: invalid base64, or a corrupt filter payload.
type MalformedEncodingError struct {
	Encoding string // "base64" or a Filter name
	Cause    error
}

func (e MalformedEncodingError) Error() string {
	return fmt.Sprintf("malformed %s data: %s", e.Encoding, e.Cause)
}

func (e MalformedEncodingError) Unwrap() error { return e.Cause }

// SerializedGlyphSet is the storage projection of a GlyphSet. Metadata
// and config pass through unchanged; the glyph pixels are flattened to
// packed ROM bytes, run through Filters in order, and base64 encoded
// into BinaryData. An empty filter list means plain base64.
type SerializedGlyphSet struct {
	Metadata   rom.Metadata       `json:"metadata"`
	Config     rom.GlyphSetConfig `json:"config"`
	Filters    []Filter           `json:"filters,omitempty"`
	BinaryData string             `json:"binaryData"`
}

// EncodeBase64 encodes to the standard base64 alphabet, with padding.
// Empty input encodes to the empty string.
func EncodeBase64(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}

// DecodeBase64 is the inverse of EncodeBase64. It fails with a
// MalformedEncodingError on any input outside the base64 grammar.
func DecodeBase64(s string) ([]byte, error) {
	out, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, MalformedEncodingError{Encoding: "base64", Cause: err}
	}
	return out, nil
}

// SerializeSet builds the plain base64 envelope of a set. The returned
// value shares no mutable state with the input.
func SerializeSet(set rom.GlyphSet) (SerializedGlyphSet, error) {
	return SerializeSetFiltered(set)
}

// SerializeSetFiltered builds the envelope of a set, compressing the
// payload with the given filters, applied in order.
func SerializeSetFiltered(set rom.GlyphSet, filters ...Filter) (SerializedGlyphSet, error) {
	data, err := rom.SerializeROM(set.Glyphs, set.Config)
	if err != nil {
		return SerializedGlyphSet{}, err
	}
	for _, f := range filters {
		if data, err = f.encode(data); err != nil {
			return SerializedGlyphSet{}, err
		}
	}
	out := SerializedGlyphSet{
		Metadata:   set.Metadata.Clone(),
		Config:     set.Config,
		BinaryData: EncodeBase64(data),
	}
	if len(filters) != 0 {
		out.Filters = append([]Filter(nil), filters...)
	}
	return out, nil
}

// DeserializeSet rebuilds a glyph set from its envelope. It fails with a
// MalformedEncodingError when BinaryData is not valid base64 (or a filter
// payload is corrupt), and with a rom.InvalidConfigError when the config
// is unusable. Decoded bytes that don't fill the last glyph are dropped,
// per the rom codec policy.
func DeserializeSet(s SerializedGlyphSet) (rom.GlyphSet, error) {
	data, err := DecodeBase64(s.BinaryData)
	if err != nil {
		return rom.GlyphSet{}, err
	}
	for i := len(s.Filters) - 1; i >= 0; i-- {
		if data, err = s.Filters[i].decode(data); err != nil {
			return rom.GlyphSet{}, err
		}
	}
	glyphs, err := rom.ParseROM(data, s.Config)
	if err != nil {
		return rom.GlyphSet{}, err
	}
	return rom.GlyphSet{
		Metadata: s.Metadata.Clone(),
		Config:   s.Config,
		Glyphs:   glyphs,
	}, nil
}
