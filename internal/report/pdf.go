package report

import (
	"fmt"
	"io"
	"time"

	"github.com/phpdave11/gofpdf"

	"github.com/alexiusacademia/argoprssm/internal/batch"
)

// Column widths of the file table, mm
var pdfColumns = []struct {
	title string
	width float64
}{
	{"File", 90},
	{"Status", 25},
	{"Beams", 20},
	{"Code", 25},
	{"Time, ms", 25},
}

// WritePDF writes a one-document summary of the run: totals, a table of
// files and the first failures in full.
func WritePDF(w io.Writer, sum *batch.Summary) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "ARGO to PRSSM conversion")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Files: %d, converted: %d, failed: %d", sum.Total(), sum.Succeeded, sum.Failed))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Elapsed: %s", sum.Elapsed.Round(time.Millisecond)))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(230, 230, 230)
	for _, c := range pdfColumns {
		pdf.CellFormat(c.width, 7, c.title, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	for _, fr := range sum.Files {
		status, beams := "ok", ""
		if fr.Err != nil {
			status = "failed"
		}
		if fr.Result != nil {
			beams = fmt.Sprint(len(fr.Result.Beams))
		}
		cells := []string{tr(fr.Path), status, beams, string(fr.Code), fmt.Sprint(fr.Duration.Milliseconds())}
		for i, c := range pdfColumns {
			align := "L"
			if i > 0 {
				align = "C"
			}
			pdf.CellFormat(c.width, 6, cells[i], "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
	}

	if errs := sum.Errors(batch.MaxListedErrors); len(errs) > 0 {
		pdf.Ln(6)
		pdf.SetFont("Helvetica", "B", 11)
		title := "Errors"
		if sum.Failed > len(errs) {
			title = fmt.Sprintf("Errors (%d, first %d shown)", sum.Failed, len(errs))
		}
		pdf.Cell(0, 6, title)
		pdf.Ln(8)
		pdf.SetFont("Helvetica", "", 9)
		for _, e := range errs {
			pdf.MultiCell(0, 5, tr("- "+e), "", "L", false)
		}
	}

	if err := pdf.Error(); err != nil {
		return err
	}
	return pdf.Output(w)
}
