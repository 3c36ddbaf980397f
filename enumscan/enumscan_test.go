package enumscan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/enumgen/errors"
	"github.com/teranos/enumgen/sourcefs"
)

func caseNames(cases []Case) []string {
	names := make([]string, len(cases))
	for i, c := range cases {
		names[i] = c.Name
	}
	return names
}

func TestExtractText_TwoEnums(t *testing.T) {
	src := `import Foundation

@objc public enum Zebra: Int {
    case b
    case a
}

@objc enum Apple: Int {
    case y
    case x
}
`
	enums := ExtractText(src, "Animals.swift")
	require.Len(t, enums, 2)

	assert.Equal(t, "Zebra", enums[0].Name)
	assert.Equal(t, []string{"b", "a"}, caseNames(enums[0].Cases()))
	assert.Equal(t, "Apple", enums[1].Name)
	assert.Equal(t, []string{"y", "x"}, caseNames(enums[1].Cases()))
	assert.Equal(t, "Animals.swift", enums[1].File)
}

func TestExtractText_Availability(t *testing.T) {
	src := `@available(iOS 13.0, *)
@objc public enum Theme: Int {
    case light
    case dark
}`
	enums := ExtractText(src, "")
	require.Len(t, enums, 1)
	assert.Equal(t, "@available(iOS 13.0, *)", enums[0].Availability)
	assert.Equal(t, "Theme", enums[0].Name)
}

func TestExtractText_NoAvailability(t *testing.T) {
	enums := ExtractText("@objc enum Mode: Int { case on }", "")
	require.Len(t, enums, 1)
	assert.Empty(t, enums[0].Availability)
}

func TestExtractText_Modifiers(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want int
	}{
		{"no modifier", "@objc enum A: Int { case a }", 1},
		{"public", "@objc public enum A: Int { case a }", 1},
		{"repeated public", "@objc public public enum A: Int { case a }", 1},
		{"newline after objc", "@objc\npublic enum A: Int {\n case a\n}", 1},
		{"no objc", "public enum A: Int { case a }", 0},
		{"objc members only", "@objcMembers class A { }", 0},
		{"internal modifier", "@objc internal enum A: Int { case a }", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, ExtractText(tt.src, ""), tt.want)
		})
	}
}

func TestExtractText_UnterminatedBrace(t *testing.T) {
	src := "@objc public enum Broken: Int {\n    case a\n    case b\n"
	assert.Empty(t, ExtractText(src, "Broken.swift"))
}

func TestExtractText_NestedBraceStopsAtFirstClose(t *testing.T) {
	src := `@objc enum Level: Int {
    case low
    var label: String { return "x" }
    case high
}`
	enums := ExtractText(src, "")
	require.Len(t, enums, 1)
	assert.Equal(t, []string{"low"}, caseNames(enums[0].Cases()))
}

func TestExtractText_Completeness(t *testing.T) {
	src := `@objc enum A: Int { case a }
class Foo {}
@objc enum B: Int { case b }
enum NotObjc { case c }
@objc public enum C: Int { case c }`
	enums := ExtractText(src, "")
	require.Len(t, enums, 3)
	assert.Equal(t, "A", enums[0].Name)
	assert.Equal(t, "B", enums[1].Name)
	assert.Equal(t, "C", enums[2].Name)
}

func TestCases(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{"one per line", "\n case a\n case b\n", []string{"a", "b"}},
		{"backticks stripped", "\n case `default`\n case none\n", []string{"default", "none"}},
		{"comma list takes first", "\n case a, b\n", []string{"a"}},
		{"raw values", "\n case low = 1\n case high = 2\n", []string{"low", "high"}},
		{"empty body", "\n", []string{}},
		{"verbatim name", "case HTTPError_2", []string{"HTTPError_2"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, caseNames(Cases(tt.raw)))
		})
	}
}

func TestExtract(t *testing.T) {
	fsys := sourcefs.FromTxtar([]byte(`-- Core/Status.swift --
@objc public enum Status: Int {
    case ok
}
-- Core/Sub/Mode.swift --
@objc enum Mode: Int {
    case on
}
-- Core/.hidden/Secret.swift --
@objc enum Secret: Int { case s }
-- Core/README.md --
@objc enum Docs: Int { case d }
-- Other/Other.swift --
@objc enum Other: Int { case o }
`))

	enums, err := Extract(fsys, "Core", "swift")
	require.NoError(t, err)

	names := make([]string, len(enums))
	for i, e := range enums {
		names[i] = e.Name
	}
	assert.ElementsMatch(t, []string{"Status", "Mode"}, names)
}

func TestExtract_MissingRoot(t *testing.T) {
	enums, err := Extract(sourcefs.NewMem(), "Nowhere", "swift")
	require.NoError(t, err)
	assert.Empty(t, enums)
}

type unreadableFS struct {
	*sourcefs.Mem
}

func (unreadableFS) ReadFile(string) (string, error) {
	return "", errors.New("permission denied")
}

func TestExtract_ReadFailure(t *testing.T) {
	mem := sourcefs.NewMem()
	mem.Add("Core/A.swift", "@objc enum A: Int { case a }")

	_, err := Extract(unreadableFS{mem}, "Core", "swift")
	require.Error(t, err)
	assert.True(t, errors.IsSourceReadError(err))
	assert.Contains(t, err.Error(), "Core/A.swift")
}
