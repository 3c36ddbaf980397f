package emit

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Generator name written into every header
const Generator = "enumgen"

var copyrightYear = regexp.MustCompile(`(?m)^//  Copyright © (\d{4}) `)

// Header is the comment block at the top of a generated file
type Header struct {
	FileName string
	Project  string
	Holder   string
	Year     int
}

// String renders the seven header lines followed by a blank line
func (h Header) String() string {
	lines := []string{
		"//",
		"//  " + h.FileName,
		"//  " + h.Project,
		"//",
		"//  Autogenerated by " + Generator,
		fmt.Sprintf("//  Copyright © %d %s. All rights reserved.", h.Year, h.Holder),
		"//",
	}
	return strings.Join(lines, "\n") + "\n\n"
}

// ExistingYear returns the copyright year of a previously generated file, or 0
func ExistingYear(content string) int {
	m := copyrightYear.FindStringSubmatch(content)
	if m == nil {
		return 0
	}
	year, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	return year
}

// ResolveYear picks the copyright year. A configured year wins; otherwise
// the year already in the existing file is kept, so regenerating never
// rewrites a file only because the calendar moved on.
func ResolveYear(configured int, existing string, now time.Time) int {
	if configured > 0 {
		return configured
	}
	if year := ExistingYear(existing); year > 0 {
		return year
	}
	return now.Year()
}
