package report

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/typable/crates/pkg/integrations/crates"
)

const (
	// LabelWidth is the width of the label column in a full report.
	LabelWidth = 15

	// ValueWidth is the minimum width of the value column in a full report.
	ValueWidth = 65

	// Placeholder stands in for optional fields the crate leaves unset.
	Placeholder = "- - -"
)

// Field selects a single value of a crate record.
type Field int

const (
	FieldNone Field = iota
	FieldLatest
	FieldStable
	FieldHomepage
	FieldRepository
	FieldDocumentation
)

var fieldNames = map[Field]string{
	FieldNone:          "none",
	FieldLatest:        "latest",
	FieldStable:        "stable",
	FieldHomepage:      "homepage",
	FieldRepository:    "repository",
	FieldDocumentation: "documentation",
}

func (f Field) String() string {
	if s, ok := fieldNames[f]; ok {
		return s
	}
	return fmt.Sprintf("Field(%d)", int(f))
}

// Render returns the text printed for c: the full report when f is
// [FieldNone], otherwise the single selected value. c must not be nil.
func Render(c *crates.Crate, f Field) string {
	if f == FieldNone {
		return Full(c)
	}
	return Value(c, f)
}

// Full renders every field of c as a fixed-order, two-column report.
// Lines are joined by "\n" with no trailing newline.
func Full(c *crates.Crate) string {
	rows := []struct {
		label string
		value string
	}{
		{"Name:", c.Name},
		{"Description:", c.Description},
		{"Keywords:", strings.Join(c.Keywords, ", ")},
		{"Stable Version:", c.MaxStableVersion},
		{"Latest Version:", c.MaxVersion},
		{"Homepage:", optional(c.Homepage)},
		{"Repository:", optional(c.Repository)},
		{"Documentation:", optional(c.Documentation)},
	}

	lines := make([]string, len(rows))
	for i, r := range rows {
		lines[i] = pad(r.label, LabelWidth) + " " + pad(r.value, ValueWidth)
	}
	return strings.Join(lines, "\n")
}

// Value returns the raw value of field f, without label or padding.
// It returns an empty string for [FieldNone] and unknown fields.
func Value(c *crates.Crate, f Field) string {
	switch f {
	case FieldLatest:
		return c.MaxVersion
	case FieldStable:
		return c.MaxStableVersion
	case FieldHomepage:
		return optional(c.Homepage)
	case FieldRepository:
		return optional(c.Repository)
	case FieldDocumentation:
		return optional(c.Documentation)
	default:
		return ""
	}
}

// NotFound returns the message printed when no crate matches id.
func NotFound(id string) string {
	return fmt.Sprintf("No crate found for '%s'!", id)
}

func optional(s *string) string {
	if s == nil {
		return Placeholder
	}
	return *s
}

// pad replaces newlines with spaces and left-justifies s to width runes.
func pad(s string, width int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	if n := utf8.RuneCountInString(s); n < width {
		s += strings.Repeat(" ", width-n)
	}
	return s
}
