// Package batch converts every ARGO file found under a directory tree.
package batch

import (
	"io/fs"
	"path/filepath"
	"slices"
	"strings"
	"unicode"
)

// Service and document extensions that never hold ARGO data
var skipExtensions = []string{
	".json", ".prssm", ".txt", ".doc", ".docx", ".pdf", ".exe", ".dll",
	".hex", ".bat", ".cmd", ".html", ".htm", ".js", ".css", ".lic", ".sys",
	".aal", ".log", ".tmp", ".bak", ".xml", ".ini", ".cfg", ".gru",
	".xlsx", ".png", ".svg", ".env",
}

// Letters that open an ARGO file name (load code)
const loadCodeLetters = "ABNSI"

// IsArgoFile guesses from the name alone whether path is an ARGO file.
// It accepts extensions starting with two digits (.03, .02p), names
// starting with a load code letter and a digit, and .dat files.
func IsArgoFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	if slices.Contains(skipExtensions, ext) {
		return false
	}

	if n := len(ext); n >= 3 && n <= 4 && isDigit(ext[1]) && isDigit(ext[2]) {
		return true
	}

	stem := strings.ToUpper(strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)))
	if len(stem) >= 2 && strings.ContainsRune(loadCodeLetters, rune(stem[0])) && isDigit(stem[1]) {
		return true
	}
	return ext == ".dat"
}

func isDigit(b byte) bool { return unicode.IsDigit(rune(b)) }

// Discover walks root and returns the ARGO files below it as sorted
// slash-separated paths relative to root.
func Discover(root string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !IsArgoFile(path) {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		files = append(files, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, err
	}
	slices.Sort(files)
	return files, nil
}

// OutputName maps an input file name to its output name: every dot
// becomes an underscore and ".prssm" is appended.
func OutputName(name string) string {
	return strings.ReplaceAll(filepath.Base(name), ".", "_") + ".prssm"
}

// OutputPath places the output of the relative input path rel under
// outDir, keeping its sub-directory.
func OutputPath(outDir, rel string) string {
	rel = filepath.FromSlash(rel)
	return filepath.Join(outDir, filepath.Dir(rel), OutputName(rel))
}
