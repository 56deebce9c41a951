package neatjson

import (
	"bytes"
	"io"

	"pkt.systems/jpact"
)

// CompactTo copies one JSON document from r to w with all insignificant
// whitespace removed. Compaction operates on the JSON text directly and does
// not go through the Value tree, so it inherits jpact's syntax tolerance
// rather than this package's formatting rules.
func CompactTo(w io.Writer, r io.Reader) error {
	return jpact.CompactWriter(w, r, 0)
}

// Compact returns the minified form of a single JSON document.
func Compact(in []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := CompactTo(&buf, bytes.NewReader(in)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
