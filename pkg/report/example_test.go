package report_test

import (
	"fmt"

	"github.com/typable/crates/pkg/integrations/crates"
	"github.com/typable/crates/pkg/report"
)

func ExampleValue() {
	docs := "https://docs.rs/serde"
	c := &crates.Crate{
		Name:             "serde",
		MaxStableVersion: "1.0.193",
		MaxVersion:       "1.0.194-alpha.1",
		Documentation:    &docs,
	}

	fmt.Println(report.Value(c, report.FieldLatest))
	fmt.Println(report.Value(c, report.FieldStable))
	fmt.Println(report.Value(c, report.FieldHomepage))
	fmt.Println(report.Value(c, report.FieldDocumentation))
	// Output:
	// 1.0.194-alpha.1
	// 1.0.193
	// - - -
	// https://docs.rs/serde
}

func ExampleNotFound() {
	fmt.Println(report.NotFound("serde_json5"))
	// Output:
	// No crate found for 'serde_json5'!
}
