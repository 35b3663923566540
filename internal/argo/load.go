package argo

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/text/encoding/charmap"
)

// DecodeText converts raw ARGO bytes from the DOS Cyrillic code page
// (CP866) into a Go string.
func DecodeText(data []byte) (string, error) {
	text, err := charmap.CodePage866.NewDecoder().Bytes(data)
	if err != nil {
		return "", fmt.Errorf("decode cp866: %w", err)
	}
	return string(text), nil
}

// LoadFile reads, decodes and parses one ARGO file.
func LoadFile(path string, trace Tracer) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return LoadBytes(filepath.Base(path), data, trace)
}

// LoadBytes parses ARGO content already read into memory. name is used
// for the file-code metadata only.
func LoadBytes(name string, data []byte, trace Tracer) (*Document, error) {
	text, err := DecodeText(data)
	if err != nil {
		return nil, err
	}
	doc, err := Parse(text, trace)
	if err != nil {
		return nil, err
	}
	doc.SourceName = name
	doc.FileCode = ParseFileCode(name)
	return doc, nil
}
