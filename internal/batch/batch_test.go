package batch

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"
	"testing"

	"github.com/alexiusacademia/argoprssm/internal/config"
	"github.com/alexiusacademia/argoprssm/internal/diag"
	"github.com/alexiusacademia/argoprssm/internal/prssm"
)

// One 40 x 80 cm beam on axis 100 cm, 12 m long.
const singleBeamArgo = `2
BEAM S2_24.03
test
1 30 1 1 2 3 0 1200 0 0 1200
1
100
0 0 0 0
0
0.4 150 0.1 180
0
1 600 25.5
2 0 600
1 2 3 4
5 6
7 8
0 0
4
80 0 120 0 120 80 80 80
0
0
1 1200 1.0 10
1 0 1200 5 12.0
1 0 1200 4 3.5
`

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestIsArgoFile(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"S2_24.03", true},
		{"raw/S2_24.02p", true},
		{"bridge.05d", true},
		{"B4_33", true},
		{"n1_12.x", true},
		{"legacy.DAT", true},
		{"S2_24.txt", false},
		{"S2_24.03.prssm", false},
		{"notes.doc", false},
		{"readme", false},
		{"X1_10.abc", false},
		{"S.5", false},
	}
	for _, tt := range tests {
		if got := IsArgoFile(tt.path); got != tt.want {
			t.Errorf("IsArgoFile(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestOutputPath(t *testing.T) {
	if got := OutputName("S2_24.03p"); got != "S2_24_03p.prssm" {
		t.Errorf("OutputName = %q", got)
	}
	got := OutputPath("out", "set1/S2_24.03")
	want := filepath.Join("out", "set1", "S2_24_03.prssm")
	if got != want {
		t.Errorf("OutputPath = %q, want %q", got, want)
	}
	if got := OutputPath("out", "A1_10.01"); got != filepath.Join("out", "A1_10_01.prssm") {
		t.Errorf("OutputPath top level = %q", got)
	}
}

func TestDiscover(t *testing.T) {
	root := t.TempDir()
	for _, name := range []string{"S2_24.03", "sub/B1_12.01p", "sub/readme.txt", "notes.pdf", "legacy.dat"} {
		writeFile(t, filepath.Join(root, filepath.FromSlash(name)), "x")
	}

	files, err := Discover(root)
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	want := []string{"S2_24.03", "legacy.dat", "sub/B1_12.01p"}
	if !slices.Equal(files, want) {
		t.Errorf("Discover = %v, want %v", files, want)
	}

	if _, err := Discover(filepath.Join(root, "missing")); err == nil {
		t.Error("expected an error for a missing directory")
	}
}

func TestWriteAtomic(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "a", "b", "out.prssm")
	if err := writeAtomic(dest, []byte("first")); err != nil {
		t.Fatalf("writeAtomic: %v", err)
	}
	if err := writeAtomic(dest, []byte("second")); err != nil {
		t.Fatalf("writeAtomic overwrite: %v", err)
	}
	data, err := os.ReadFile(dest)
	if err != nil || string(data) != "second" {
		t.Fatalf("content = %q, %v", data, err)
	}
	entries, _ := os.ReadDir(filepath.Dir(dest))
	if len(entries) != 1 {
		t.Errorf("temporary files left behind: %d entries", len(entries))
	}
	if runtime.GOOS != "windows" {
		info, err := os.Stat(dest)
		if err != nil {
			t.Fatal(err)
		}
		if perm := info.Mode().Perm(); perm != filePerm {
			t.Errorf("mode = %o, want %o", perm, filePerm)
		}
	}
}

func TestRunConvertsAndCounts(t *testing.T) {
	raw, out := t.TempDir(), t.TempDir()
	writeFile(t, filepath.Join(raw, "S2_24.03"), singleBeamArgo)
	writeFile(t, filepath.Join(raw, "set", "B2_24.03"), singleBeamArgo)
	writeFile(t, filepath.Join(raw, "A1_10.01"), "x\n")
	writeFile(t, filepath.Join(raw, "N1_10.02"), singleBeamArgo[:len(singleBeamArgo)/2])

	files, err := Discover(raw)
	if err != nil {
		t.Fatal(err)
	}

	var logs bytes.Buffer
	cfg := config.Config{RawDir: raw, OutDir: out, Workers: 3, LogLevel: "info"}
	sum := New(cfg, diag.NewLogger(&logs, "info")).Run(context.Background(), files)

	if sum.Total() != 4 || sum.Succeeded != 2 || sum.Failed != 2 {
		t.Fatalf("total %d, ok %d, failed %d", sum.Total(), sum.Succeeded, sum.Failed)
	}
	codes := sum.CountByCode()
	if codes[diag.CodeFormat] != 1 || codes[diag.CodeEOF] != 1 {
		t.Errorf("codes = %v", codes)
	}
	if errs := sum.Errors(MaxListedErrors); len(errs) != 2 || !strings.HasPrefix(errs[0], "A1_10.01: ") {
		t.Errorf("errors = %v", errs)
	}
	if errs := sum.Errors(1); len(errs) != 1 {
		t.Errorf("limited errors = %v", errs)
	}

	f, err := os.Open(filepath.Join(out, "set", "B2_24_03.prssm"))
	if err != nil {
		t.Fatalf("nested output missing: %v", err)
	}
	defer f.Close()
	doc, err := prssm.Decode(f)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(doc.Beams) != 1 || doc.Beams[0].BeamParts[0].Section.Name != "B2_24_Б1" {
		t.Errorf("decoded document = %+v", doc.Beams)
	}
	if _, err := os.Stat(filepath.Join(out, "A1_10_01.prssm")); !os.IsNotExist(err) {
		t.Error("a failed file produced an output")
	}

	if !strings.Contains(logs.String(), `"stage":"error"`) {
		t.Error("failures were not logged")
	}
}

func TestRunCancelled(t *testing.T) {
	raw := t.TempDir()
	writeFile(t, filepath.Join(raw, "S2_24.03"), singleBeamArgo)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	sum := New(config.Config{RawDir: raw, OutDir: t.TempDir(), Workers: 1}, nil).Run(ctx, []string{"S2_24.03"})
	if sum.Failed != 1 || sum.Files[0].Code != diag.CodeCancel {
		t.Errorf("failed %d, code %q", sum.Failed, sum.Files[0].Code)
	}
}
