package report

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/typable/crates/pkg/integrations/crates"
)

func strPtr(s string) *string { return &s }

func sampleCrate() *crates.Crate {
	return &crates.Crate{
		Name:             "foo",
		Description:      "A foo\nthat bars",
		Keywords:         []string{"foo", "bar"},
		MaxStableVersion: "1.2.0",
		MaxVersion:       "1.2.3",
		Homepage:         nil,
		Repository:       strPtr("https://github.com/example/foo"),
		Documentation:    strPtr("https://docs.rs/foo"),
	}
}

func TestValue(t *testing.T) {
	c := sampleCrate()

	tests := []struct {
		field Field
		want  string
	}{
		{FieldLatest, "1.2.3"},
		{FieldStable, "1.2.0"},
		{FieldHomepage, Placeholder},
		{FieldRepository, "https://github.com/example/foo"},
		{FieldDocumentation, "https://docs.rs/foo"},
		{FieldNone, ""},
	}

	for _, tt := range tests {
		t.Run(tt.field.String(), func(t *testing.T) {
			if got := Value(c, tt.field); got != tt.want {
				t.Errorf("Value(%s) = %q, want %q", tt.field, got, tt.want)
			}
		})
	}
}

func TestValueAbsentURLs(t *testing.T) {
	c := &crates.Crate{Name: "bare", MaxVersion: "0.1.0", MaxStableVersion: "0.1.0"}

	for _, f := range []Field{FieldHomepage, FieldRepository, FieldDocumentation} {
		if got := Value(c, f); got != "- - -" {
			t.Errorf("Value(%s) = %q, want %q", f, got, "- - -")
		}
	}
}

func TestFull(t *testing.T) {
	got := Full(sampleCrate())
	lines := strings.Split(got, "\n")

	if len(lines) != 8 {
		t.Fatalf("got %d lines, want 8:\n%s", len(lines), got)
	}
	if strings.HasSuffix(got, "\n") {
		t.Error("report should not end with a newline")
	}

	want := []string{
		"Name:           " + "foo" + strings.Repeat(" ", 62),
		"Description:    " + "A foo that bars" + strings.Repeat(" ", 50),
		"Keywords:       " + "foo, bar" + strings.Repeat(" ", 57),
		"Stable Version: " + "1.2.0" + strings.Repeat(" ", 60),
		"Latest Version: " + "1.2.3" + strings.Repeat(" ", 60),
		"Homepage:       " + "- - -" + strings.Repeat(" ", 60),
		"Repository:     " + "https://github.com/example/foo" + strings.Repeat(" ", 35),
		"Documentation:  " + "https://docs.rs/foo" + strings.Repeat(" ", 46),
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestFullColumnWidths(t *testing.T) {
	for i, line := range strings.Split(Full(sampleCrate()), "\n") {
		if n := utf8.RuneCountInString(line); n != LabelWidth+1+ValueWidth {
			t.Errorf("line %d has width %d, want %d", i, n, LabelWidth+1+ValueWidth)
		}
		if line[LabelWidth] != ' ' {
			t.Errorf("line %d: label column is not %d wide", i, LabelWidth)
		}
	}
}

func TestFullDoesNotTruncate(t *testing.T) {
	long := strings.Repeat("x", 100)
	c := sampleCrate()
	c.Description = long

	lines := strings.Split(Full(c), "\n")
	if want := "Description:    " + long; lines[1] != want {
		t.Errorf("line = %q, want %q", lines[1], want)
	}
}

func TestFullIsDeterministic(t *testing.T) {
	c := sampleCrate()
	first := Full(c)
	for i := 0; i < 5; i++ {
		if got := Full(c); got != first {
			t.Fatal("Full() output changed between calls")
		}
	}
}

func TestFullNoKeywords(t *testing.T) {
	c := sampleCrate()
	c.Keywords = nil

	lines := strings.Split(Full(c), "\n")
	if want := "Keywords:       " + strings.Repeat(" ", ValueWidth); lines[2] != want {
		t.Errorf("line = %q, want %q", lines[2], want)
	}
}

func TestPad(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		width int
		want  string
	}{
		{"short", "ab", 5, "ab   "},
		{"exact", "abcde", 5, "abcde"},
		{"long", "abcdefg", 5, "abcdefg"},
		{"newlines", "a\nb\n", 6, "a b   "},
		{"multibyte", "héllo", 7, "héllo  "},
		{"empty", "", 3, "   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := pad(tt.in, tt.width); got != tt.want {
				t.Errorf("pad(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
			}
		})
	}
}

func TestRender(t *testing.T) {
	c := sampleCrate()

	if got := Render(c, FieldNone); got != Full(c) {
		t.Error("Render(FieldNone) should produce the full report")
	}
	if got := Render(c, FieldLatest); got != "1.2.3" {
		t.Errorf("Render(FieldLatest) = %q, want %q", got, "1.2.3")
	}
}

func TestNotFound(t *testing.T) {
	if got, want := NotFound("nope"), "No crate found for 'nope'!"; got != want {
		t.Errorf("NotFound() = %q, want %q", got, want)
	}
}

func TestFieldString(t *testing.T) {
	if got := FieldRepository.String(); got != "repository" {
		t.Errorf("String() = %q, want %q", got, "repository")
	}
	if got := Field(42).String(); got != "Field(42)" {
		t.Errorf("String() = %q, want %q", got, "Field(42)")
	}
}
