package report

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/alexiusacademia/argoprssm/internal/argo"
	"github.com/alexiusacademia/argoprssm/internal/batch"
	"github.com/alexiusacademia/argoprssm/internal/convert"
	"github.com/alexiusacademia/argoprssm/internal/diag"
)

func sampleSummary(t *testing.T) *batch.Summary {
	t.Helper()
	doc := &argo.Document{
		SourceName: "S2_24.03",
		Params: argo.GlobalParameters{
			ConcreteStrength: 30,
			FullLength:       1200,
			BeamCount:        1,
			BeamCoordinates:  []float64{100},
		},
		Beams: []argo.Beam{{
			Number: 1,
			Contour: []argo.Point{
				{Z: 80, Y: 0}, {Z: 120, Y: 0}, {Z: 120, Y: 80}, {Z: 80, Y: 80},
			},
			TensileBars: []argo.CalculatedBars{{XMin: 0, XMax: 1200, Delta: 5, Area: 12}},
		}},
	}
	res, err := convert.Convert(doc)
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}

	return &batch.Summary{
		Files: []batch.FileResult{
			{Path: "S2_24.03", Document: doc, Result: res, Duration: 12 * time.Millisecond},
			{Path: "A1_10.01", Err: &argo.FormatError{Line: 1, Msg: "bad header"}, Code: diag.CodeFormat},
			{Path: "B1_10.01", Err: errors.New("boom"), Code: diag.CodeUnknown},
		},
		Succeeded: 1,
		Failed:    2,
		Elapsed:   40 * time.Millisecond,
	}
}

func TestWriteWorkbook(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteWorkbook(&buf, sampleSummary(t)); err != nil {
		t.Fatalf("WriteWorkbook: %v", err)
	}

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("OpenReader: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(SummarySheet)
	if err != nil {
		t.Fatalf("GetRows: %v", err)
	}
	if len(rows) != 4 {
		t.Fatalf("summary rows = %d, want 4", len(rows))
	}
	if rows[1][0] != "S2_24.03" || rows[1][1] != "ok" || rows[1][2] != "1" {
		t.Errorf("first file row = %v", rows[1])
	}
	if rows[2][1] != "failed" || rows[2][3] != "format" {
		t.Errorf("failed row = %v", rows[2])
	}

	sections, err := f.GetRows(SectionsSheet)
	if err != nil {
		t.Fatalf("GetRows: %v", err)
	}
	if len(sections) != 2 {
		t.Fatalf("section rows = %d, want 2", len(sections))
	}
	row := sections[1]
	if row[2] != "S2_24_Б1" || row[3] != "320000" || row[8] != "400" || row[12] != "estimated" {
		t.Errorf("section row = %v", row)
	}
}

func TestWritePDF(t *testing.T) {
	var buf bytes.Buffer
	if err := WritePDF(&buf, sampleSummary(t)); err != nil {
		t.Fatalf("WritePDF: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")) {
		t.Errorf("output does not start with a PDF header: %q", buf.Bytes()[:min(8, buf.Len())])
	}
}
