package dataset

import (
	"fmt"
	"io"
	"os"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// Kind classifies a column for cleaning and summarization. It is resolved
// once at load time from the detected series type and never re-inspected.
type Kind int

const (
	KindNumeric Kind = iota
	KindCategorical
)

func (k Kind) String() string {
	if k == KindNumeric {
		return "numeric"
	}
	return "categorical"
}

// Schema maps column names to their resolved Kind.
type Schema map[string]Kind

// Table is an in-memory dataset: a gota frame plus its resolved schema.
type Table struct {
	Frame  dataframe.DataFrame
	Schema Schema
}

// HasColumn reports whether the table contains the named column.
func (t Table) HasColumn(name string) bool {
	_, ok := t.Schema[name]
	return ok
}

// WriteCSV writes the table, including the header row, to w.
func (t Table) WriteCSV(w io.Writer) error {
	if err := t.Frame.WriteCSV(w, dataframe.WriteHeader(true)); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	return nil
}

// Options controls CSV loading.
type Options struct {
	// Delimiter for CSV fields. Defaults to ','.
	Delimiter rune
	// NAValues are cell contents treated as missing.
	NAValues []string
}

// DefaultOptions returns reasonable defaults for loading a dataset.
func DefaultOptions() Options {
	return Options{
		Delimiter: ',',
		NAValues:  []string{"", "NA", "NaN", "null"},
	}
}

// Load reads a delimited file with a header row into a Table. Column types
// are detected by the dataframe library; the schema collapses them into
// numeric vs categorical.
func Load(path string, opt Options) (Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return Table{}, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()
	return Read(f, opt)
}

// Read parses delimited content from r into a Table.
func Read(r io.Reader, opt Options) (Table, error) {
	delim := opt.Delimiter
	if delim == 0 {
		delim = ','
	}
	na := opt.NAValues
	if na == nil {
		na = DefaultOptions().NAValues
	}
	df := dataframe.ReadCSV(r,
		dataframe.WithDelimiter(delim),
		dataframe.HasHeader(true),
		dataframe.NaNValues(na),
	)
	if df.Err != nil {
		return Table{}, fmt.Errorf("parse csv: %w", df.Err)
	}
	return Table{Frame: df, Schema: resolveSchema(df)}, nil
}

func resolveSchema(df dataframe.DataFrame) Schema {
	s := make(Schema, df.Ncol())
	for _, name := range df.Names() {
		switch df.Col(name).Type() {
		case series.Int, series.Float:
			s[name] = KindNumeric
		default:
			s[name] = KindCategorical
		}
	}
	return s
}
