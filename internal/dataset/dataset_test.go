package dataset

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeCSV(t *testing.T, name string, rows []string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(strings.Join(rows, "\n")), 0o644); err != nil {
		t.Fatalf("write csv: %v", err)
	}
	return path
}

func TestLoadResolvesSchema(t *testing.T) {
	path := writeCSV(t, "billionaires.csv", []string{
		"category,country,finalWorth,age",
		"Tech,US,10,40",
		"Finance,UK,20,55",
	})
	tab, err := Load(path, DefaultOptions())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if tab.Frame.Nrow() != 2 {
		t.Fatalf("rows = %d, want 2", tab.Frame.Nrow())
	}
	want := map[string]Kind{
		"category":   KindCategorical,
		"country":    KindCategorical,
		"finalWorth": KindNumeric,
		"age":        KindNumeric,
	}
	for name, kind := range want {
		if !tab.HasColumn(name) {
			t.Fatalf("column %q missing from schema", name)
		}
		if tab.Schema[name] != kind {
			t.Fatalf("schema[%q] = %v, want %v", name, tab.Schema[name], kind)
		}
	}
	if tab.HasColumn("netWorth") {
		t.Fatalf("unexpected column in schema")
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.csv"), DefaultOptions())
	if err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestLoadMalformedCSV(t *testing.T) {
	path := writeCSV(t, "bad.csv", []string{
		"a,b",
		`"unclosed,1`,
	})
	if _, err := Load(path, DefaultOptions()); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestLoadCustomDelimiter(t *testing.T) {
	path := writeCSV(t, "semi.csv", []string{
		"name;worth",
		"Alice;12",
		"Bob;7",
	})
	opt := DefaultOptions()
	opt.Delimiter = ';'
	tab, err := Load(path, opt)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if tab.Frame.Ncol() != 2 || tab.Frame.Nrow() != 2 {
		t.Fatalf("dims = %dx%d, want 2x2", tab.Frame.Nrow(), tab.Frame.Ncol())
	}
	if tab.Schema["worth"] != KindNumeric {
		t.Fatalf("worth kind = %v, want numeric", tab.Schema["worth"])
	}
}

func TestWriteCSVRoundTrip(t *testing.T) {
	path := writeCSV(t, "small.csv", []string{
		"name,worth",
		"Alice,12",
		"Bob,7",
	})
	tab, err := Load(path, DefaultOptions())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	var sb strings.Builder
	if err := tab.WriteCSV(&sb); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}
	out := sb.String()
	if !strings.HasPrefix(out, "name,worth") {
		t.Fatalf("missing header in output: %q", out)
	}
	if !strings.Contains(out, "Alice") || !strings.Contains(out, "Bob") {
		t.Fatalf("missing rows in output: %q", out)
	}
}
