package argo

import (
	"path/filepath"
	"strconv"
	"strings"
	"unicode"
)

// FileCode is the metadata encoded in an ARGO file name, for example
// "S2_24.03p": load code S (1962 standard), two main ribs, 24 m span,
// serial 3, type suffix p.
type FileCode struct {
	FileName    string `json:"file_name"`
	LoadCode    string `json:"load_code"`
	LoadName    string `json:"load_name"`
	LoadYear    int    `json:"load_year,omitempty"`
	RibCount    int    `json:"rib_count"`
	SpanLength  int    `json:"span_length"`
	Serial      int    `json:"serial"`
	TypeSuffix  string `json:"type_suffix,omitempty"`
	Description string `json:"type_description,omitempty"`
}

// PlateWithoutConsoles reports whether the name describes a slab span
// without main ribs.
func (c FileCode) PlateWithoutConsoles() bool { return c.RibCount == 0 }

var loadStandards = map[rune]struct {
	name string
	year int
}{
	'A': {"1907", 1907},
	'B': {"1925", 1925},
	'N': {"1931", 1931},
	'S': {"1962", 1962},
	'I': {"individual", 0},
}

// ParseFileCode extracts metadata from a file name. Fields that cannot be
// recognized are left at their zero value; it never fails.
func ParseFileCode(path string) FileCode {
	name := filepath.Base(path)
	code := FileCode{FileName: name, LoadName: "unknown"}

	runes := []rune(name)
	if len(runes) == 0 {
		return code
	}

	letter := unicode.ToUpper(runes[0])
	code.LoadCode = string(letter)
	if std, ok := loadStandards[letter]; ok {
		code.LoadName = std.name
		code.LoadYear = std.year
	}

	if len(runes) > 1 && runes[1] >= '0' && runes[1] <= '9' {
		code.RibCount = int(runes[1] - '0')
	}

	dot := strings.IndexByte(name, '.')
	if us := strings.IndexByte(name, '_'); us > 0 && dot > us {
		code.SpanLength, _ = strconv.Atoi(name[us+1 : dot])
	}

	if dot > 0 && dot < len(name)-1 {
		var digits, letters []rune
		for _, r := range name[dot+1:] {
			switch {
			case unicode.IsDigit(r):
				digits = append(digits, r)
			case unicode.IsLetter(r):
				letters = append(letters, r)
			}
		}
		if len(digits) > 2 {
			digits = digits[:2]
		}
		if len(digits) > 0 {
			code.Serial, _ = strconv.Atoi(string(digits))
		}
		if len(letters) > 0 {
			suffix := unicode.ToLower(letters[len(letters)-1])
			code.TypeSuffix = string(suffix)
			code.Description = typeDescription(suffix, code.RibCount)
		}
	}
	return code
}

func typeDescription(suffix rune, ribCount int) string {
	if ribCount == 0 {
		switch suffix {
		case 'a', 'b', 'c':
			return "1 block"
		case 'd', 'e', 'f':
			return "2 blocks"
		case 'g', 'h', 'i':
			return "3 blocks"
		case 'j', 'k', 'l':
			return "4 blocks"
		}
	}

	switch suffix {
	case 'k':
		return "short consoles"
	case 'd':
		return "long consoles"
	case 'l':
		return "left long console"
	case 'r':
		return "right long console"
	case 'p':
		return "symmetric"
	case 's':
		return "standard"
	case 'z':
		return "special"
	}
	return strings.ToUpper(string(suffix))
}
