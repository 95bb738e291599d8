package cmd

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	finquant "github.com/Magic-Academy/FinQuant"
	"github.com/Magic-Academy/FinQuant/timeseries"
)

// LoadMetadata reads a holdings metadata CSV file. The header must contain a
// Name and an FMV column; a Currency column is optional (USD by default) and
// every other column becomes a holding attribute.
func LoadMetadata(filename string) ([]finquant.Metadata, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("could not open metadata file %q: %w", filename, err)
	}
	defer f.Close()
	return ReadMetadata(f)
}

// ReadMetadata parses holdings metadata from CSV content.
func ReadMetadata(r io.Reader) ([]finquant.Metadata, error) {
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("could not parse metadata: %w", err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("metadata needs a header and at least one holding")
	}

	header := records[0]
	nameCol, fmvCol, curCol := -1, -1, -1
	for i, h := range header {
		switch strings.ToLower(strings.TrimSpace(h)) {
		case "name":
			nameCol = i
		case "fmv":
			fmvCol = i
		case "currency":
			curCol = i
		}
	}
	if nameCol < 0 || fmvCol < 0 {
		return nil, fmt.Errorf("metadata header must contain Name and FMV columns, got %v", header)
	}

	var meta []finquant.Metadata
	for _, rec := range records[1:] {
		fmv, err := strconv.ParseFloat(strings.TrimSpace(rec[fmvCol]), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid FMV %q for holding %q: %w", rec[fmvCol], rec[nameCol], err)
		}
		currency := "USD"
		if curCol >= 0 && strings.TrimSpace(rec[curCol]) != "" {
			currency = strings.TrimSpace(rec[curCol])
		}
		m := finquant.Metadata{
			Name: strings.TrimSpace(rec[nameCol]),
			FMV:  finquant.M(fmv, currency),
		}
		for i, v := range rec {
			if i == nameCol || i == fmvCol || i == curCol || strings.TrimSpace(v) == "" {
				continue
			}
			if m.Attrs == nil {
				m.Attrs = make(map[string]string)
			}
			m.Attrs[strings.TrimSpace(header[i])] = strings.TrimSpace(v)
		}
		meta = append(meta, m)
	}
	return meta, nil
}

// LoadPrices reads a price history CSV file. The first column must be the
// date index, every other column is a price series.
func LoadPrices(filename string) (*timeseries.Table, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("could not open prices file %q: %w", filename, err)
	}
	defer f.Close()
	return ReadPrices(f)
}

// ReadPrices parses a price table from CSV content.
func ReadPrices(r io.Reader) (*timeseries.Table, error) {
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("could not parse prices: %w", err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("prices need a header and at least one row")
	}
	header := records[0]
	if len(header) < 2 {
		return nil, fmt.Errorf("prices need a date column and at least one series")
	}

	days := make([]timeseries.Date, 0, len(records)-1)
	cols := make([][]float64, len(header)-1)
	for _, rec := range records[1:] {
		day, err := timeseries.ParseDate(strings.TrimSpace(rec[0]))
		if err != nil {
			return nil, fmt.Errorf("invalid date %q: %w", rec[0], err)
		}
		days = append(days, day)
		for i, v := range rec[1:] {
			p, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
			if err != nil {
				return nil, fmt.Errorf("invalid price %q on %s: %w", v, day, err)
			}
			cols[i] = append(cols[i], p)
		}
	}

	table := timeseries.NewTable(days)
	for i, label := range header[1:] {
		if err := table.AddColumn(strings.TrimSpace(label), cols[i]); err != nil {
			return nil, err
		}
	}
	return table, nil
}

// WritePrices writes a price table as CSV, the inverse of ReadPrices.
func WritePrices(w io.Writer, t *timeseries.Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(append([]string{timeseries.IndexName}, t.Labels()...)); err != nil {
		return err
	}
	for day, row := range t.Rows() {
		rec := make([]string, 0, len(row)+1)
		rec = append(rec, day.String())
		for _, v := range row {
			rec = append(rec, strconv.FormatFloat(v, 'f', -1, 64))
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
