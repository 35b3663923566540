package diag

import (
	"context"
	"errors"
	"io/fs"

	"github.com/alexiusacademia/argoprssm/internal/argo"
	"github.com/alexiusacademia/argoprssm/internal/convert"
	"github.com/alexiusacademia/argoprssm/internal/section"
)

// Code is a coarse error class used in log events and batch summaries.
type Code string

const (
	CodeUnknown  Code = "unknown"
	CodeFormat   Code = "format"
	CodeEOF      Code = "eof"
	CodeGeometry Code = "geometry"
	CodeIO       Code = "io"
	CodeCancel   Code = "cancel"
)

// Classify maps an error to a Code using sentinels and error types only.
func Classify(err error) Code {
	if err == nil {
		return CodeUnknown
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return CodeCancel
	}
	if errors.Is(err, argo.ErrUnexpectedEnd) {
		return CodeEOF
	}

	var ferr *argo.FormatError
	var perr *argo.ParseError
	if errors.As(err, &ferr) || errors.As(err, &perr) {
		return CodeFormat
	}

	var verr *section.ValidationError
	if errors.Is(err, section.ErrDegenerate) || errors.Is(err, convert.ErrShortContour) || errors.As(err, &verr) {
		return CodeGeometry
	}

	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return CodeIO
	}
	return CodeUnknown
}
