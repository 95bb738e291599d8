package cmd

import (
	"strings"
	"testing"

	finquant "github.com/Magic-Academy/FinQuant"
)

func TestReadMetadata(t *testing.T) {
	in := `Name,FMV,Currency,Sector
GOOG,500,USD,Technology
XOM,250,,Energy
`
	meta, err := ReadMetadata(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ReadMetadata() unexpected error = %v", err)
	}
	if len(meta) != 2 {
		t.Fatalf("ReadMetadata() returned %d holdings, want 2", len(meta))
	}
	if meta[0].Name != "GOOG" || !meta[0].FMV.Equal(finquant.M(500, "USD")) {
		t.Errorf("ReadMetadata() first holding = %+v", meta[0])
	}
	if got := meta[1].FMV.Currency(); got != "USD" {
		t.Errorf("ReadMetadata() empty currency should default to USD, got %q", got)
	}
	if got := meta[1].Attrs["Sector"]; got != "Energy" {
		t.Errorf("ReadMetadata() attrs = %v, want Sector=Energy", meta[1].Attrs)
	}
}

func TestReadMetadata_badHeader(t *testing.T) {
	in := "Ticker,Value\nGOOG,500\n"
	if _, err := ReadMetadata(strings.NewReader(in)); err == nil {
		t.Error("ReadMetadata() expected an error for a header without Name and FMV")
	}
}

func TestPricesRoundTrip(t *testing.T) {
	in := `Date,GOOG,AMZN
2024-01-02,100,50
2024-01-03,101.5,50.25
`
	table, err := ReadPrices(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ReadPrices() unexpected error = %v", err)
	}
	if table.Len() != 2 || table.NumColumns() != 2 {
		t.Fatalf("ReadPrices() table is %dx%d, want 2x2", table.Len(), table.NumColumns())
	}

	var out strings.Builder
	if err := WritePrices(&out, table); err != nil {
		t.Fatalf("WritePrices() unexpected error = %v", err)
	}
	back, err := ReadPrices(strings.NewReader(out.String()))
	if err != nil {
		t.Fatalf("ReadPrices() of written output, unexpected error = %v", err)
	}
	if !table.Equal(back) {
		t.Errorf("price table changed across write/read:\n%s", out.String())
	}
}

func TestReadPrices_badDate(t *testing.T) {
	in := "Date,GOOG\nnot-a-date,100\n"
	if _, err := ReadPrices(strings.NewReader(in)); err == nil {
		t.Error("ReadPrices() expected an error for an invalid date")
	}
}
