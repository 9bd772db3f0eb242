// core/incidence/loader_test.go
package incidence

import (
	"strings"
	"testing"
)

func TestReadCSV(t *testing.T) {
	in := `date,metro,rural
2020-03-01,0,1
2020-03-02,3,0
2020-03-03,5,2
`
	list, err := ReadCSV(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 geographies, got %d", len(list))
	}
	metro := list[0]
	if metro.Geo != "metro" || metro.Len() != 3 {
		t.Fatalf("unexpected series: %+v", metro)
	}
	if metro.Counts[1] != 3 || list[1].Counts[2] != 2 {
		t.Errorf("counts misaligned: %v / %v", metro.Counts, list[1].Counts)
	}
	if metro.Start != day("2020-03-01") {
		t.Errorf("start: %s", metro.Start.Format(DateLayout))
	}
}

func TestReadCSVRejectsGap(t *testing.T) {
	in := "date,metro\n2020-03-01,1\n2020-03-03,2\n"
	if _, err := ReadCSV(strings.NewReader(in)); err == nil {
		t.Fatal("missing day should be rejected")
	}
}

func TestReadCSVRejectsBadValues(t *testing.T) {
	cases := []string{
		"date,metro\n2020-03-01,-1\n",       // negative count
		"date,metro\n2020-03-01,1.5\n",      // non-integer
		"date,metro\n03/01/2020,1\n",        // bad date format
		"cases,metro\n2020-03-01,1\n",       // wrong first header
		"date,metro\n",                      // no data rows
		"date,metro\n2020-03-01,1,9\n",      // extra field
	}
	for _, in := range cases {
		if _, err := ReadCSV(strings.NewReader(in)); err == nil {
			t.Errorf("expected error for %q", in)
		}
	}
}
