package diagram

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/alexiusacademia/argoprssm/internal/argo"
	"github.com/alexiusacademia/argoprssm/internal/convert"
)

func convertedRectangle(t *testing.T) SectionDiagramData {
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
			TensileBars: []argo.CalculatedBars{{XMin: 0, XMax: 1200, Delta: 5, Area: 6}},
		}},
	}
	res, err := convert.Convert(doc)
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	return FromBeam(res.Beams[0], res.Document.Beams[0])
}

func TestFromBeam(t *testing.T) {
	data := convertedRectangle(t)
	if !strings.HasPrefix(data.Title, "S2_24_Б1") {
		t.Errorf("title = %q", data.Title)
	}
	if len(data.Outline) != 4 || data.RibTopY != 400 || data.MinY != -400 {
		t.Errorf("outline %v, rib top %v, min y %v", data.Outline, data.RibTopY, data.MinY)
	}
	if len(data.Bars) == 0 {
		t.Fatal("no bars")
	}
	for _, b := range data.Bars {
		if b.Y != -350 || b.X < -200 || b.X > 200 {
			t.Errorf("bar at (%v, %v) is outside the rib bottom zone", b.X, b.Y)
		}
	}
}

func TestDrawASCIISection(t *testing.T) {
	data := convertedRectangle(t)
	out := DrawASCIISection(data, 20)

	if !strings.Contains(out, "●") || !strings.Contains(out, "+") || !strings.Contains(out, "rib top 400") {
		t.Errorf("missing markers:\n%s", out)
	}
	var body int
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, "  │") {
			body++
			inner := strings.SplitN(strings.TrimPrefix(line, "  │"), "│", 2)[0]
			if n := utf8.RuneCountInString(inner); n != 20 {
				t.Errorf("row has %d columns, want 20: %q", n, line)
			}
		}
	}
	if body != 20 {
		t.Errorf("rows = %d, want 20 for a 400 x 800 section", body)
	}

	if DrawASCIISection(SectionDiagramData{}, 20) != "" {
		t.Error("empty outline should draw nothing")
	}
}

func TestDrawSummaryBox(t *testing.T) {
	out := DrawSummaryBox("Сечение S2_24_Б1", []string{"Area 320000 mm²", "Iyy 1.7e10"})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 6 {
		t.Fatalf("lines = %d, want 6", len(lines))
	}
	width := utf8.RuneCountInString(lines[0])
	for i, l := range lines {
		if utf8.RuneCountInString(l) != width {
			t.Errorf("line %d is %d runes wide, want %d: %q", i, utf8.RuneCountInString(l), width, l)
		}
	}
}

func TestWidthProfile(t *testing.T) {
	data := convertedRectangle(t)
	widths := WidthProfile(data, 10)
	if len(widths) != 10 {
		t.Fatalf("samples = %d, want 10", len(widths))
	}
	for i, w := range widths {
		if w != 400 {
			t.Errorf("width[%d] = %v, want 400", i, w)
		}
	}
	if WidthProfile(SectionDiagramData{}, 10) != nil {
		t.Error("empty outline should have no profile")
	}

	out := DrawWidthProfile(data, 10)
	if !strings.Contains(out, "width (mm) from y=-400 to y=400") {
		t.Errorf("caption missing:\n%s", out)
	}
}

func TestExportBeamSection(t *testing.T) {
	data := convertedRectangle(t)
	dir := t.TempDir()

	for _, name := range []string{"beam.svg", "nested/beam.png"} {
		path := filepath.Join(dir, name)
		if err := ExportBeamSection(data, path); err != nil {
			t.Fatalf("ExportBeamSection(%s): %v", name, err)
		}
		if info, err := os.Stat(path); err != nil || info.Size() == 0 {
			t.Errorf("%s not written: %v", name, err)
		}
	}

	if err := ExportBeamSection(data, filepath.Join(dir, "noext")); err != nil {
		t.Fatalf("ExportBeamSection(noext): %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "noext.png")); err != nil {
		t.Errorf("default format not applied: %v", err)
	}

	if err := ExportBeamSection(SectionDiagramData{Title: "empty"}, filepath.Join(dir, "x.png")); err == nil {
		t.Error("expected an error for an empty outline")
	}
}
