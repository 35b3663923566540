package prssm

import (
	"bytes"
	"encoding/json"
	"io"
)

// NewDocument returns a document with the fixed defaults filled in.
func NewDocument(beams int) *Document {
	return &Document{
		BeamsNumber:          beams,
		Beams:                make([]Beam, 0, beams),
		SelectedSlab:         Slab{Width: "0"},
		SelectedBeamSpanType: StraightSpan,
	}
}

// Encode writes the document as indented JSON. Non-ASCII names are
// written as-is rather than escaped.
func Encode(w io.Writer, doc *Document) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

// Marshal returns the encoded document.
func Marshal(doc *Document) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, doc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decode reads a document back, mainly for inspection and tests.
func Decode(r io.Reader) (*Document, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, err
	}
	return &doc, nil
}
