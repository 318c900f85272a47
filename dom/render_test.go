package dom

import (
	"bytes"
	"testing"

	"github.com/sebdah/goldie/v2"
)

func TestRenderGolden(t *testing.T) {
	doc := NewDocument()
	sheet := doc.CreateStyleSheet()
	for _, r := range []string{
		".a { color: red; }",
		"@media print { .a { color: black; } }",
	} {
		if _, err := sheet.InsertRule(r, sheet.Len()); err != nil {
			t.Fatal(err)
		}
	}
	var buf bytes.Buffer
	if err := doc.Render(&buf); err != nil {
		t.Fatal(err)
	}
	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "render", buf.Bytes())
}
