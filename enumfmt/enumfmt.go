// Package enumfmt renders CustomStringConvertible extensions for extracted enums.
package enumfmt

import (
	"fmt"
	"sort"
	"strings"

	"github.com/teranos/enumgen/enumscan"
)

const indent = "    "

// Format renders one block per enum, sorted by name, each followed by a
// blank line. Ties keep discovery order. Output depends only on the input
// set, so regenerating unchanged sources is byte-identical.
func Format(enums []enumscan.Enum) string {
	sorted := make([]enumscan.Enum, len(enums))
	copy(sorted, enums)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Name < sorted[j].Name
	})

	var sb strings.Builder
	for _, e := range sorted {
		writeBlock(&sb, e)
		sb.WriteString("\n")
	}
	return sb.String()
}

// Block renders a single enum's extension without the trailing blank line
func Block(e enumscan.Enum) string {
	var sb strings.Builder
	writeBlock(&sb, e)
	return sb.String()
}

// SortedCases returns the enum's cases ordered by name, ties in source order
func SortedCases(e enumscan.Enum) []enumscan.Case {
	cases := e.Cases()
	sort.SliceStable(cases, func(i, j int) bool {
		return cases[i].Name < cases[j].Name
	})
	return cases
}

func writeBlock(sb *strings.Builder, e enumscan.Enum) {
	sb.WriteString("/// :nodoc:\n")
	if availability := strings.TrimSpace(e.Availability); availability != "" {
		sb.WriteString(availability + "\n")
	}
	sb.WriteString(fmt.Sprintf("extension %s: CustomStringConvertible {\n", e.Name))
	sb.WriteString(indent + "public var description: String {\n")
	sb.WriteString(indent + indent + "switch self {\n")

	for _, c := range SortedCases(e) {
		sb.WriteString(fmt.Sprintf("%[1]s%[1]scase .%[2]s:\n", indent, c.Name))
		sb.WriteString(fmt.Sprintf("%[1]s%[1]s%[1]sreturn \"%[2]s\"\n", indent, c.Name))
	}

	sb.WriteString(indent + indent + "}\n")
	sb.WriteString(indent + "}\n")
	sb.WriteString("}\n")
}
