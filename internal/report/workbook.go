// Package report renders batch summaries as an xlsx workbook or a PDF.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/alexiusacademia/argoprssm/internal/batch"
)

// Sheet names
const (
	SummarySheet  = "Summary"
	SectionsSheet = "Sections"
)

var summaryHeader = []any{"File", "Status", "Beams", "Code", "Error", "Warnings", "Time, ms"}

var sectionsHeader = []any{
	"File", "Beam", "Section", "Area, mm²", "Iyy, mm⁴", "Izz, mm⁴", "Iyz, mm⁴", "It, mm⁴",
	"Rib width, mm", "Rib height, mm", "Position, mm", "Mirrored", "Bars", "Long. rows", "Stirrup rows",
}

// WriteWorkbook writes one summary row per file and one section row per
// converted beam.
func WriteWorkbook(w io.Writer, sum *batch.Summary) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SummarySheet); err != nil {
		return err
	}
	if _, err := f.NewSheet(SectionsSheet); err != nil {
		return err
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}

	summary := [][]any{summaryHeader}
	var sections [][]any
	sections = append(sections, sectionsHeader)

	for _, fr := range sum.Files {
		status, beams, code, msg, warnings := "ok", 0, "", "", ""
		if fr.Err != nil {
			status, code, msg = "failed", string(fr.Code), fr.Err.Error()
		}
		if fr.Result != nil {
			beams = len(fr.Result.Beams)
			warnings = strings.Join(fr.Result.Warnings, "; ")
		}
		summary = append(summary, []any{fr.Path, status, beams, code, msg, warnings, fr.Duration.Milliseconds()})

		if fr.Result == nil {
			continue
		}
		for i, b := range fr.Result.Beams {
			sec := fr.Result.Document.Beams[i].BeamParts[0].Section
			bars := "detailed"
			if b.Estimated {
				bars = "estimated"
			}
			sections = append(sections, []any{
				fr.Path, b.Number, b.Name, sec.Area, sec.Iyy, sec.Izz, sec.Iyz, sec.It,
				b.Geometry.RibWidth, b.Geometry.RibHeight(), b.Position, b.Geometry.Mirrored,
				bars, b.Longitudinal, b.Transverse,
			})
		}
	}

	if err := writeRows(f, SummarySheet, summary, bold); err != nil {
		return err
	}
	if err := writeRows(f, SectionsSheet, sections, bold); err != nil {
		return err
	}
	if err := f.SetColWidth(SummarySheet, "A", "A", 30); err != nil {
		return err
	}
	if err := f.SetColWidth(SummarySheet, "E", "F", 50); err != nil {
		return err
	}
	return f.Write(w)
}

// writeRows fills the sheet from A1 and makes the first row bold.
func writeRows(f *excelize.File, sheet string, rows [][]any, headerStyle int) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("%s row %d: %w", sheet, i+1, err)
		}
	}
	last, err := excelize.CoordinatesToCellName(len(rows[0]), 1)
	if err != nil {
		return err
	}
	return f.SetCellStyle(sheet, "A1", last, headerStyle)
}
