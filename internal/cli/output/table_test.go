package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/DistributedDoge/oss-directory/internal/core/domain"
)

func TestTableFormatter_Format_Table(t *testing.T) {
	table := &Table{
		Headers: []string{"NAME", "VALUE"},
		Rows: [][]string{
			{"key1", "value1"},
			{"key2", "value2"},
		},
	}

	var buf bytes.Buffer
	f := &TableFormatter{}

	if err := f.Format(&buf, table); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, "NAME") {
		t.Error("Format() missing header NAME")
	}
	if !strings.Contains(output, "key1") {
		t.Error("Format() missing row data key1")
	}
}

func TestTableFormatter_Format_TableNoHeaders(t *testing.T) {
	table := Table{
		Headers: []string{"NAME", "VALUE"},
		Rows:    [][]string{{"key1", "value1"}},
	}

	var buf bytes.Buffer
	f := &TableFormatter{NoHeaders: true}

	if err := f.Format(&buf, table); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	if strings.Contains(buf.String(), "NAME") {
		t.Error("Format() with NoHeaders should not include headers")
	}
	if !strings.Contains(buf.String(), "value1") {
		t.Error("Format() missing row data value1")
	}
}

func TestTableFormatter_Format_Map(t *testing.T) {
	var buf bytes.Buffer
	f := &TableFormatter{}

	data := map[string]string{"b": "2", "a": "1", "c": ""}
	if err := f.Format(&buf, data); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("Format() lines = %d, want 4", len(lines))
	}
	if !strings.HasPrefix(lines[1], "a ") || !strings.HasPrefix(lines[2], "b ") {
		t.Errorf("Format() rows not sorted: %q", lines[1:])
	}
	if !strings.HasSuffix(lines[3], "-") {
		t.Errorf("Format() empty value = %q, want -", lines[3])
	}
}

func TestTableFormatter_Format_Resolution(t *testing.T) {
	res := domain.Resolution{
		{Namespace: "uniswap", Slug: "uniswap", Resolved: true, AddressCount: 3},
		{Namespace: "mystery", AddressCount: 1},
	}

	var buf bytes.Buffer
	if err := (&TableFormatter{}).Format(&buf, res); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("Format() lines = %d, want 3", len(lines))
	}
	if fields := strings.Fields(lines[0]); strings.Join(fields, " ") != "NAMESPACE ADDRESSES SLUG" {
		t.Errorf("header = %q", lines[0])
	}
	if fields := strings.Fields(lines[1]); strings.Join(fields, " ") != "uniswap 3 uniswap" {
		t.Errorf("row 1 = %q", lines[1])
	}
	if fields := strings.Fields(lines[2]); strings.Join(fields, " ") != "mystery 1 -" {
		t.Errorf("row 2 = %q", lines[2])
	}
}

func TestTableFormatter_Format_Nil(t *testing.T) {
	var buf bytes.Buffer
	if err := (&TableFormatter{}).Format(&buf, nil); err != nil {
		t.Fatalf("Format(nil) error = %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("Format(nil) wrote %q, want nothing", buf.String())
	}
}

func TestTable_AddRow(t *testing.T) {
	table := &Table{}
	table.SetHeaders("A", "B")
	table.AddRow("1", "2")
	table.AddRow("3", "4")

	if len(table.Headers) != 2 {
		t.Errorf("Headers = %d, want 2", len(table.Headers))
	}
	if len(table.Rows) != 2 {
		t.Errorf("Rows = %d, want 2", len(table.Rows))
	}
}

func TestTable_RenderWithOptions_Alignment(t *testing.T) {
	table := &Table{
		Headers: []string{"NAME", "X"},
		Rows:    [][]string{{"a", "1"}, {"longer", "2"}},
	}

	var buf bytes.Buffer
	if err := table.RenderWithOptions(&buf, false); err != nil {
		t.Fatalf("RenderWithOptions() error = %v", err)
	}

	want := "NAME    X\na       1\nlonger  2\n"
	if buf.String() != want {
		t.Errorf("RenderWithOptions() = %q, want %q", buf.String(), want)
	}
}
