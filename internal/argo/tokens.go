package argo

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// Tokens is the result of splitting an ARGO file: the verbatim comment
// header and the whitespace-separated body tokens in file order.
type Tokens struct {
	Comments []string
	Values   []string
}

// Tokenize splits decoded text into comment lines and body tokens.
// The first line holds the number of comment lines that follow it.
func Tokenize(text string) (*Tokens, error) {
	lines := splitLines(text)

	header := strings.TrimSpace(lines[0])
	count, err := strconv.Atoi(header)
	if err != nil || count < 0 {
		return nil, &FormatError{Line: 1, Msg: "comment line count " + strconv.Quote(header) + " is not a non-negative integer"}
	}
	if count > len(lines)-1 {
		return nil, &FormatError{Line: 1, Msg: "comment line count " + header + " exceeds the " + strconv.Itoa(len(lines)-1) + " lines available"}
	}

	t := &Tokens{Comments: make([]string, 0, count)}
	t.Comments = append(t.Comments, lines[1:count+1]...)

	for _, line := range lines[count+1:] {
		t.Values = append(t.Values, strings.FieldsFunc(line, isBlank)...)
	}
	return t, nil
}

func splitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return strings.Split(text, "\n")
}

func isBlank(r rune) bool {
	return r == ' ' || r == '\t'
}

// Cursor walks a token slice forward. The only way back is PushBack,
// which un-reads the token returned by the immediately preceding Next,
// so the pushback depth is always 0 or 1.
type Cursor struct {
	tokens    []string
	pos       int
	canUnread bool
}

// NewCursor returns a cursor positioned at the first token.
func NewCursor(tokens []string) *Cursor {
	return &Cursor{tokens: tokens}
}

// Pos returns the index of the next token to be read.
func (c *Cursor) Pos() int { return c.pos }

// Len returns the total number of tokens.
func (c *Cursor) Len() int { return len(c.tokens) }

// Remaining returns the number of unread tokens.
func (c *Cursor) Remaining() int { return len(c.tokens) - c.pos }

// Exhausted reports whether every token has been consumed.
func (c *Cursor) Exhausted() bool { return c.pos >= len(c.tokens) }

// Peek returns the next token without consuming it.
func (c *Cursor) Peek() (string, bool) {
	if c.Exhausted() {
		return "", false
	}
	return c.tokens[c.pos], true
}

// Next consumes and returns one token.
func (c *Cursor) Next(field string) (string, error) {
	if c.Exhausted() {
		c.canUnread = false
		return "", &EndOfStreamError{Pos: c.pos, Field: field}
	}
	tok := c.tokens[c.pos]
	c.pos++
	c.canUnread = true
	return tok, nil
}

// errNoPushBack is returned when PushBack is not preceded by a successful Next.
var errNoPushBack = errors.New("argo: push back without a preceding read")

// PushBack un-reads the token returned by the last Next.
func (c *Cursor) PushBack() error {
	if !c.canUnread {
		return errNoPushBack
	}
	c.pos--
	c.canUnread = false
	return nil
}

// ReadFloat consumes one token as a float.
func (c *Cursor) ReadFloat(field string) (float64, error) {
	pos := c.pos
	tok, err := c.Next(field)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, &ParseError{Pos: pos, Token: tok, Field: field, Err: err}
	}
	return v, nil
}

// ReadInt consumes one token as an integer. Tokens carrying a decimal
// point ("3.00") are rounded to the nearest integer, halves to even.
func (c *Cursor) ReadInt(field string) (int, error) {
	pos := c.pos
	tok, err := c.Next(field)
	if err != nil {
		return 0, err
	}
	if strings.Contains(tok, ".") {
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return 0, &ParseError{Pos: pos, Token: tok, Field: field, Err: err}
		}
		return int(math.RoundToEven(v)), nil
	}
	v, err := strconv.Atoi(tok)
	if err != nil {
		return 0, &ParseError{Pos: pos, Token: tok, Field: field, Err: err}
	}
	return v, nil
}
