// Package enumscan finds @objc enum declarations in Swift sources.
//
// Matching is textual. The case-list body ends at the first closing brace
// after the opening one, so enums with nested braces (associated values with
// default arguments, methods, braces inside comments) are cut short or missed.
// Existing generated files depend on this behaviour; it is not a parser.
package enumscan

import (
	"regexp"
	"strings"

	"github.com/teranos/enumgen/errors"
	"github.com/teranos/enumgen/logger"
	"github.com/teranos/enumgen/sourcefs"
)

var (
	// 1: availability annotation, 2: name, 3: raw case-list body
	enumPattern = regexp.MustCompile(`(@available\([^)]*\))?\s*@objc\s+(?:public\s+)*enum\s+(\w+)[^{]*\{([^}]*)\}`)

	casePattern = regexp.MustCompile("case\\s+(`*\\w+`*)")
)

// Enum is one matched declaration
type Enum struct {
	Availability string // verbatim "@available(...)" or empty
	Name         string
	RawCases     string // text between the braces
	File         string // where it was found, for logs
}

// Case is one member of an enum
type Case struct {
	Name string // backticks stripped
}

// Cases extracts the members from the raw body
func (e Enum) Cases() []Case {
	return Cases(e.RawCases)
}

// Cases extracts members from a raw case-list body in order of appearance.
// Only the first name of a comma-separated case line is taken.
func Cases(raw string) []Case {
	matches := casePattern.FindAllStringSubmatch(raw, -1)
	cases := make([]Case, 0, len(matches))
	for _, m := range matches {
		cases = append(cases, Case{Name: strings.Trim(m[1], "`")})
	}
	return cases
}

// ExtractText returns every match in text, in order of appearance
func ExtractText(text, file string) []Enum {
	var enums []Enum
	for _, m := range enumPattern.FindAllStringSubmatch(text, -1) {
		enums = append(enums, Enum{
			Availability: m[1],
			Name:         m[2],
			RawCases:     m[3],
			File:         file,
		})
	}
	return enums
}

// Extract scans every *.<ext> file under root. Files without matches
// contribute nothing; a file that cannot be read fails the whole scan.
// A missing root yields no enums.
func Extract(fsys sourcefs.FS, root, ext string) ([]Enum, error) {
	files, err := fsys.Glob(root, ext)
	if err != nil {
		return nil, errors.WrapSourceRead(err, "failed to list sources under "+root)
	}
	if len(files) == 0 {
		logger.Debugw("No source files", logger.FieldRoot, root)
	}

	var enums []Enum
	for _, file := range files {
		text, err := fsys.ReadFile(file)
		if err != nil {
			return nil, errors.WithHint(
				errors.WrapSourceRead(err, "failed to read "+file),
				"check file permissions; no output was written")
		}

		found := ExtractText(text, file)
		if len(found) > 0 {
			logger.Debugw("Found enums", logger.FieldFile, file, logger.FieldCount, len(found))
		}
		enums = append(enums, found...)
	}
	return enums, nil
}
