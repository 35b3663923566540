package argo

import "testing"

func TestParseFileCode(t *testing.T) {
	tests := []struct {
		name string
		want FileCode
	}{
		{"S2_24.03p", FileCode{LoadCode: "S", LoadName: "1962", LoadYear: 1962, RibCount: 2, SpanLength: 24, Serial: 3, TypeSuffix: "p", Description: "symmetric"}},
		{"raw/A0_9.12e", FileCode{LoadCode: "A", LoadName: "1907", LoadYear: 1907, RibCount: 0, SpanLength: 9, Serial: 12, TypeSuffix: "e", Description: "2 blocks"}},
		{"N4_33.1k", FileCode{LoadCode: "N", LoadName: "1931", LoadYear: 1931, RibCount: 4, SpanLength: 33, Serial: 1, TypeSuffix: "k", Description: "short consoles"}},
		{"n0_6.05K", FileCode{LoadCode: "N", LoadName: "1931", LoadYear: 1931, RibCount: 0, SpanLength: 6, Serial: 5, TypeSuffix: "k", Description: "4 blocks"}},
		{"I2_16.02x", FileCode{LoadCode: "I", LoadName: "individual", RibCount: 2, SpanLength: 16, Serial: 2, TypeSuffix: "x", Description: "X"}},
		{"Q.dat", FileCode{LoadCode: "Q", LoadName: "unknown", TypeSuffix: "t", Description: "T"}},
		{"B2", FileCode{LoadCode: "B", LoadName: "1925", LoadYear: 1925, RibCount: 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseFileCode(tt.name)
			tt.want.FileName = got.FileName
			if got != tt.want {
				t.Errorf("ParseFileCode(%q)\n got %+v\nwant %+v", tt.name, got, tt.want)
			}
		})
	}
}

func TestParseFileCodeBaseName(t *testing.T) {
	if got := ParseFileCode("dir/sub/S2_24.03p").FileName; got != "S2_24.03p" {
		t.Errorf("FileName = %q", got)
	}
	if !ParseFileCode("S0_6.01a").PlateWithoutConsoles() {
		t.Error("rib count 0 should be a plate without consoles")
	}
}
