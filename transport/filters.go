package transport

import (
	"bytes"
	"compress/zlib"
	"io"

	"github.com/hhrutter/lzw"
	"github.com/klauspost/compress/zstd"
	"golang.org/x/exp/errors/fmt"
)

// The envelope defines the following payload filters, applied to the raw
// ROM bytes before they are base64 encoded. An envelope lists the filters
// it was written with, in application order; decoding applies them in
// reverse.
const (
	LZW   Filter = "LZWDecode"
	Flate Filter = "FlateDecode"
	Zstd  Filter = "ZstdDecode"
)

// Filter identifies one payload compression scheme, by the name of its
// decoding operation.
type Filter string

// encode compresses `data`, leaving the input untouched.
func (f Filter) encode(data []byte) ([]byte, error) {
	switch f {
	case LZW:
		var buf bytes.Buffer
		w := lzw.NewWriter(&buf, true)
		if _, err := w.Write(data); err != nil {
			return nil, err
		}
		if err := w.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case Flate:
		var buf bytes.Buffer
		w := zlib.NewWriter(&buf)
		if _, err := w.Write(data); err != nil {
			return nil, err
		}
		if err := w.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case Zstd:
		enc, err := zstd.NewWriter(nil)
		if err != nil {
			return nil, err
		}
		out := enc.EncodeAll(data, nil)
		return out, enc.Close()
	default:
		return nil, fmt.Errorf("unsupported payload filter %s", f)
	}
}

// decode is the inverse of encode. A payload the filter can't read is
// reported as a MalformedEncodingError.
func (f Filter) decode(data []byte) ([]byte, error) {
	switch f {
	case LZW:
		r := lzw.NewReader(bytes.NewReader(data), true)
		out, err := io.ReadAll(r)
		if err != nil {
			return nil, MalformedEncodingError{Encoding: string(f), Cause: err}
		}
		return out, r.Close()
	case Flate:
		r, err := zlib.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, MalformedEncodingError{Encoding: string(f), Cause: err}
		}
		out, err := io.ReadAll(r)
		if err != nil {
			return nil, MalformedEncodingError{Encoding: string(f), Cause: err}
		}
		return out, r.Close()
	case Zstd:
		dec, err := zstd.NewReader(nil)
		if err != nil {
			return nil, err
		}
		defer dec.Close()
		out, err := dec.DecodeAll(data, nil)
		if err != nil {
			return nil, MalformedEncodingError{Encoding: string(f), Cause: err}
		}
		return out, nil
	default:
		return nil, fmt.Errorf("unsupported payload filter %s", f)
	}
}
