package argo

import (
	"errors"
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	text := "2\r\nfirst comment\r\n  second  comment \r\n1 2.5\t3\n\n  -4.00  5\r6"
	tok, err := Tokenize(text)
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}

	wantComments := []string{"first comment", "  second  comment "}
	if !reflect.DeepEqual(tok.Comments, wantComments) {
		t.Errorf("comments = %q, want %q", tok.Comments, wantComments)
	}
	wantValues := []string{"1", "2.5", "3", "-4.00", "5", "6"}
	if !reflect.DeepEqual(tok.Values, wantValues) {
		t.Errorf("values = %q, want %q", tok.Values, wantValues)
	}
}

func TestTokenizeZeroComments(t *testing.T) {
	tok, err := Tokenize("0\n7 8")
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	if len(tok.Comments) != 0 {
		t.Errorf("comments = %q, want none", tok.Comments)
	}
	if !reflect.DeepEqual(tok.Values, []string{"7", "8"}) {
		t.Errorf("values = %q", tok.Values)
	}
}

func TestTokenizeBadHeader(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"empty", ""},
		{"not a number", "abc\n1 2"},
		{"negative", "-1\n1 2"},
		{"too many comments", "5\na\nb"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Tokenize(tt.text)
			var fe *FormatError
			if !errors.As(err, &fe) {
				t.Fatalf("err = %v, want *FormatError", err)
			}
			if fe.Line != 1 {
				t.Errorf("line = %d, want 1", fe.Line)
			}
		})
	}
}

func TestReadIntRoundsHalfToEven(t *testing.T) {
	tests := []struct {
		tok  string
		want int
	}{
		{"2.5", 2},
		{"3.5", 4},
		{"-2.5", -2},
		{"2.51", 3},
		{"7.00", 7},
	}
	for _, tt := range tests {
		got, err := NewCursor([]string{tt.tok}).ReadInt("n")
		if err != nil {
			t.Fatalf("ReadInt(%q): %v", tt.tok, err)
		}
		if got != tt.want {
			t.Errorf("ReadInt(%q) = %d, want %d", tt.tok, got, tt.want)
		}
	}
}

func TestCursorReads(t *testing.T) {
	c := NewCursor([]string{"3.00", "2.49", "-1.5", "x", "12"})

	tests := []struct {
		name string
		read func() (float64, error)
		want float64
	}{
		{"int with trailing zeros", func() (float64, error) { v, err := c.ReadInt("a"); return float64(v), err }, 3},
		{"int rounds", func() (float64, error) { v, err := c.ReadInt("b"); return float64(v), err }, 2},
		{"float", func() (float64, error) { return c.ReadFloat("c") }, -1.5},
	}
	for _, tt := range tests {
		got, err := tt.read()
		if err != nil {
			t.Fatalf("%s: %v", tt.name, err)
		}
		if got != tt.want {
			t.Errorf("%s = %v, want %v", tt.name, got, tt.want)
		}
	}

	_, err := c.ReadFloat("bad")
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("err = %v, want *ParseError", err)
	}
	if pe.Pos != 3 || pe.Token != "x" {
		t.Errorf("ParseError = %+v", pe)
	}

	if v, err := c.ReadInt("last"); err != nil || v != 12 {
		t.Fatalf("ReadInt = %d, %v", v, err)
	}
	if !c.Exhausted() {
		t.Fatal("cursor should be exhausted")
	}
	_, err = c.ReadInt("missing")
	if !errors.Is(err, ErrUnexpectedEnd) {
		t.Fatalf("err = %v, want ErrUnexpectedEnd", err)
	}
	var eos *EndOfStreamError
	if !errors.As(err, &eos) || eos.Pos != 5 || eos.Field != "missing" {
		t.Errorf("EndOfStreamError = %+v", eos)
	}
}

func TestCursorPushBack(t *testing.T) {
	c := NewCursor([]string{"0", "1"})

	if err := c.PushBack(); err == nil {
		t.Fatal("PushBack before any read should fail")
	}
	if _, err := c.Next("n"); err != nil {
		t.Fatal(err)
	}
	if err := c.PushBack(); err != nil {
		t.Fatalf("PushBack: %v", err)
	}
	if c.Pos() != 0 {
		t.Fatalf("pos = %d, want 0", c.Pos())
	}
	if err := c.PushBack(); err == nil {
		t.Fatal("second PushBack should fail")
	}
	if tok, ok := c.Peek(); !ok || tok != "0" {
		t.Fatalf("Peek = %q, %v", tok, ok)
	}
	if c.Remaining() != 2 {
		t.Errorf("remaining = %d, want 2", c.Remaining())
	}
}
